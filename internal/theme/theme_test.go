package theme

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_SavedWins(t *testing.T) {
	store := NewMemoryStore()
	store.Set(StorageKey, "dark")
	assert.Equal(t, Dark, Load(store, Light).Current())
}

func TestLoad_FallsBackToSystem(t *testing.T) {
	assert.Equal(t, Dark, Load(NewMemoryStore(), Dark).Current())
	assert.Equal(t, Light, Load(NewMemoryStore(), Light).Current())
	assert.Equal(t, Light, Load(NewMemoryStore(), "").Current())

	store := NewMemoryStore()
	store.Set(StorageKey, "sepia")
	assert.Equal(t, Dark, Load(store, Dark).Current())
}

func TestToggle_WritesEveryTime(t *testing.T) {
	store := NewMemoryStore()
	p := Load(store, Light)

	assert.Equal(t, Dark, p.Toggle())
	v, ok := store.Get(StorageKey)
	require.True(t, ok)
	assert.Equal(t, "dark", v)

	assert.Equal(t, Light, p.Toggle())
	v, _ = store.Get(StorageKey)
	assert.Equal(t, "light", v)
}

func TestSystemPreference(t *testing.T) {
	assert.Equal(t, Dark, SystemPreference("dark"))
	assert.Equal(t, Dark, SystemPreference(`"dark"`))
	assert.Equal(t, Light, SystemPreference(""))
	assert.Equal(t, Light, SystemPreference("light"))
}

func TestFromRequest_ReadsCookieAndWritesOnToggle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: StorageKey, Value: "dark"})

	p := FromRequest(c)
	assert.Equal(t, Dark, p.Current())

	p.Toggle()
	assert.Contains(t, w.Header().Get("Set-Cookie"), "theme=light")
}

func TestClientHints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ClientHints())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, HintHeader, w.Header().Get("Accept-CH"))
	assert.Equal(t, HintHeader, w.Header().Get("Critical-CH"))
	assert.Equal(t, []string{HintHeader}, w.Header().Values("Vary"))
}
