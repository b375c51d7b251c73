package server

import (
	"html/template"
	"io/fs"
	"log"
	"mime"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/lightbox"
	"github.com/Zachkp/portfolio/internal/portfolio"
	"github.com/Zachkp/portfolio/internal/theme"
)

type galleryView struct {
	Categories  []string
	Active      string
	Projects    []portfolio.ResolvedProject
	Placeholder string
}

type lightboxView struct {
	Open         bool
	Index        int
	Total        int
	Image        lightbox.Image
	NavEnabled   bool
	Focus        bool
	ScrollLocked bool
	Placeholder  string
}

type educationView struct {
	portfolio.Education
	Logo string
}

type pageView struct {
	Site     *portfolio.Site
	About    template.HTML
	Portrait string
	Theme    theme.Theme
	Gallery  galleryView
	Lightbox lightboxView
}

func (s *Server) gallery(filter string) galleryView {
	if filter == "" {
		filter = portfolio.AllCategories
	}
	return galleryView{
		Categories:  s.site.Categories(),
		Active:      filter,
		Projects:    portfolio.FilterProjects(s.projects, filter),
		Placeholder: PlaceholderImage,
	}
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", pageView{
		Site:     s.site,
		About:    s.about,
		Portrait: s.portrait,
		Theme:    theme.FromRequest(c).Current(),
		Gallery:  s.gallery(c.Query("filter")),
	})
}

func (s *Server) handleProjects(c *gin.Context) {
	c.HTML(http.StatusOK, "projects.html", s.gallery(c.Query("filter")))
}

// handleLightbox renders the overlay at :index. Without ?op= or ?key= the
// overlay is being opened from closed. Otherwise it was already open at
// :index and exactly one transition is applied; ?op= takes precedence.
func (s *Server) handleLightbox(c *gin.Context) {
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.String(http.StatusBadRequest, "invalid image index")
		return
	}

	op, key := c.Query("op"), c.Query("key")
	opening := op == "" && key == ""

	doc := lightbox.NewRecorder("")
	if !opening {
		doc = lightbox.NewRecorder(lightbox.OverflowHidden)
	}
	lb := lightbox.New(s.images, doc)
	if opening {
		err = lb.Open(i)
	} else {
		err = lb.Resume(i, "")
	}
	if err != nil {
		c.String(http.StatusNotFound, err.Error())
		return
	}

	switch op {
	case "next":
		lb.Next()
	case "prev":
		lb.Prev()
	case "close":
		lb.Close()
	case "":
		lb.HandleKey(key)
	}

	c.HTML(http.StatusOK, "lightbox.html", lightboxViewOf(lb, doc))
}

func (s *Server) handleLightboxClose(c *gin.Context) {
	c.HTML(http.StatusOK, "lightbox.html", lightboxView{})
}

func lightboxViewOf(lb *lightbox.Controller, doc *lightbox.Recorder) lightboxView {
	img, open := lb.Current()
	if !open {
		return lightboxView{}
	}
	return lightboxView{
		Open:         true,
		Index:        lb.State().CurrentIndex,
		Total:        lb.Len(),
		Image:        img,
		NavEnabled:   lb.NavigationEnabled(),
		Focus:        doc.Focused > 0,
		ScrollLocked: doc.ScrollLocked(),
		Placeholder:  PlaceholderImage,
	}
}

// handleThemeToggle flips the saved theme. With nothing saved, the theme the
// page is currently showing (?current=) is flipped; failing that, the
// system preference.
func (s *Server) handleThemeToggle(c *gin.Context) {
	p := theme.FromRequest(c)
	if shown, ok := theme.Parse(c.Query("current")); ok {
		p = theme.Load(theme.NewCookieStore(c), shown)
	}
	t := p.Toggle()
	c.JSON(http.StatusOK, gin.H{"theme": t})
}

func (s *Server) handleImage(c *gin.Context) {
	p, ok := s.manifest.File(strings.TrimPrefix(c.Param("file"), "/"))
	if !ok {
		c.String(http.StatusNotFound, "image not found")
		return
	}
	data, err := fs.ReadFile(s.files, p)
	if err != nil {
		log.Printf("Error reading image %s: %v", p, err)
		c.String(http.StatusInternalServerError, "failed to read image")
		return
	}
	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.Data(http.StatusOK, mime.TypeByExtension(path.Ext(p)), data)
}

func (s *Server) handleEducation(c *gin.Context) {
	c.HTML(http.StatusOK, "education-content.html", gin.H{
		"education": s.education,
	})
}

func (s *Server) handleContactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"title": "Contact Me",
	})
}

func (s *Server) handleContact(c *gin.Context) {
	form := contact.Form{
		Name:    c.PostForm("fullName"),
		Email:   c.PostForm("email"),
		Message: c.PostForm("message"),
	}
	if err := form.Validate(); err != nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Please fill in your name, a valid email address and a message.",
		})
		return
	}

	if s.sender == nil {
		log.Println("Contact form submitted but no sender is configured")
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}
	if err := s.sender.Send(c.Request.Context(), form); err != nil {
		log.Printf("Error sending contact message: %v", err)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}
