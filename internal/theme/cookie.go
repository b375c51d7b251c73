package theme

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// cookieMaxAge keeps the preference for a year.
const cookieMaxAge = 365 * 24 * 3600

// CookieStore keeps preferences in cookies on a single request.
type CookieStore struct {
	c *gin.Context
}

func NewCookieStore(c *gin.Context) *CookieStore {
	return &CookieStore{c: c}
}

func (s *CookieStore) Get(key string) (string, bool) {
	v, err := s.c.Cookie(key)
	if err != nil {
		return "", false
	}
	return v, true
}

func (s *CookieStore) Set(key, value string) {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(key, value, cookieMaxAge, "/", "", false, false)
}

// HintHeader is the client hint carrying the system color scheme.
const HintHeader = "Sec-CH-Prefers-Color-Scheme"

// ClientHints asks browsers to send HintHeader. Critical-CH makes the browser
// retry the first navigation with the hint, so the initial render already
// follows the system preference.
func ClientHints() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Accept-CH", HintHeader)
		h.Set("Critical-CH", HintHeader)
		h.Add("Vary", HintHeader)
		c.Next()
	}
}

// FromRequest loads the preference for the request in c.
func FromRequest(c *gin.Context) *Preference {
	return Load(NewCookieStore(c), SystemPreference(c.GetHeader(HintHeader)))
}
