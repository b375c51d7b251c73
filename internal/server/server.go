package server

import (
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/assets"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/lightbox"
	"github.com/Zachkp/portfolio/internal/portfolio"
	"github.com/Zachkp/portfolio/internal/theme"
	"github.com/Zachkp/portfolio/web"
)

// PlaceholderImage is shown wherever an image could not be resolved.
const PlaceholderImage = "/static/placeholder.svg"

type Options struct {
	// FS holds templates/, static/, the image root and the content file.
	FS           fs.FS
	AssetBaseURL string
	Sender       contact.Sender
}

type Server struct {
	files    fs.FS
	manifest *assets.Manifest
	resolver *assets.Resolver
	sender   contact.Sender

	site      *portfolio.Site
	about     template.HTML
	portrait  string
	projects  []portfolio.ResolvedProject
	images    []lightbox.Image
	education []educationView

	engine *gin.Engine
}

func New(opts Options) (*Server, error) {
	manifest, err := assets.BuildManifest(opts.FS, web.ImageRoot, opts.AssetBaseURL)
	if err != nil {
		return nil, fmt.Errorf("build asset manifest: %w", err)
	}
	log.Printf("Asset manifest: %d keys under %s", manifest.Len(), web.ImageRoot)

	site, err := portfolio.Load(opts.FS, web.ContentFile)
	if err != nil {
		return nil, err
	}
	about, err := portfolio.RenderMarkdown(site.About)
	if err != nil {
		return nil, err
	}

	s := &Server{
		files:    opts.FS,
		manifest: manifest,
		resolver: assets.NewResolver(manifest),
		sender:   opts.Sender,
		site:     site,
		about:    about,
	}
	s.portrait = s.imageOrPlaceholder(site.Portrait)
	s.projects = portfolio.ResolveProjects(site.Projects, s.resolver)
	s.images = portfolio.LightboxImages(s.projects)
	for _, p := range s.projects {
		if p.Image == "" {
			log.Printf("Warning: no image found for project %q (%s)", p.Title, site.Projects[p.Index].Image)
		}
	}
	for _, e := range site.Education {
		s.education = append(s.education, educationView{Education: e, Logo: s.imageOrPlaceholder(e.Logo)})
	}

	if err := s.setupRouter(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) imageOrPlaceholder(declared string) string {
	if u := s.resolver.Resolve(declared); u != "" {
		return u
	}
	return PlaceholderImage
}

func (s *Server) setupRouter() error {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"add": func(a, b int) int { return a + b },
	}).ParseFS(s.files, "templates/*.html")
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	static, err := fs.Sub(s.files, "static")
	if err != nil {
		return fmt.Errorf("static files: %w", err)
	}

	r := gin.Default()
	r.Use(theme.ClientHints())
	r.SetHTMLTemplate(tmpl)

	r.StaticFS("/static", http.FS(static))
	r.GET("/img/*file", s.handleImage)

	r.GET("/", s.handleIndex)
	r.GET("/projects", s.handleProjects)
	r.GET("/lightbox", s.handleLightboxClose)
	r.GET("/lightbox/:index", s.handleLightbox)
	r.POST("/theme", s.handleThemeToggle)

	r.GET("/education-content", s.handleEducation)
	r.GET("/contact-form", s.handleContactForm)
	r.POST("/contact", s.handleContact)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.engine = r
	return nil
}

// Router returns the HTTP handler.
func (s *Server) Router() http.Handler { return s.engine }

func (s *Server) Run(addr string) error {
	log.Printf("Portfolio listening on %s", addr)
	return s.engine.Run(addr)
}
