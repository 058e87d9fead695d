// Package site serves the masterclass pages, the JSON API and the websocket
// code runner.
package site

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/masterclass/internal/content"
	"github.com/ziadkadry99/masterclass/internal/logging"
	"github.com/ziadkadry99/masterclass/internal/page"
	"github.com/ziadkadry99/masterclass/internal/practice"
)

// DefaultName is the site title used when none is configured.
const DefaultName = "Masterclass"

// Deps are the collaborators a Site renders with.
type Deps struct {
	Name     string
	Renderer *page.Renderer
	Content  page.DocumentSource
	Catalog  *practice.Catalog
	Runner   practice.Runner
	Logger   *logging.Logger
}

// Site renders pages and serves the API.
type Site struct {
	name      string
	renderer  *page.Renderer
	content   page.DocumentSource
	catalog   *practice.Catalog
	runner    practice.Runner
	logger    *logging.Logger
	templates map[page.Route]*template.Template
}

// view is the data passed to page templates.
type view struct {
	Name   string
	Title  string
	Route  string
	Action string
	Page   *page.Page
}

// New parses the templates and creates a Site.
func New(d Deps) (*Site, error) {
	if d.Renderer == nil || d.Content == nil {
		return nil, fmt.Errorf("site: renderer and content source are required")
	}
	if d.Name == "" {
		d.Name = DefaultName
	}
	if d.Logger == nil {
		d.Logger = logging.Nop()
	}
	if d.Catalog == nil {
		d.Catalog = &practice.Catalog{}
	}

	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	return &Site{
		name:      d.Name,
		renderer:  d.Renderer,
		content:   d.Content,
		catalog:   d.Catalog,
		runner:    d.Runner,
		logger:    d.Logger,
		templates: templates,
	}, nil
}

func parseTemplates() (map[page.Route]*template.Template, error) {
	base, err := template.New("layout").Parse(layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing layout template: %w", err)
	}

	bodies := map[page.Route]string{
		page.RouteHome:     homeTemplate,
		page.RouteSection:  sectionTemplate,
		page.RouteTopic:    topicTemplate,
		page.RoutePractice: practiceTemplate,
	}
	out := make(map[page.Route]*template.Template, len(bodies))
	for route, body := range bodies {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.New("body").Parse(body); err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", route, err)
		}
		out[route] = t
	}
	return out, nil
}

// RegisterRoutes mounts the site's pages and API onto r.
func (s *Site) RegisterRoutes(r chi.Router) {
	for _, p := range []string{"/section", "/section/", "/topic", "/topic/"} {
		r.Get(p, s.handleContentPage)
	}
	r.Get("/", s.handleContentPage)
	r.Get("/practice/", s.handlePractice)
	r.Post("/practice/", s.handlePractice)
	r.Get("/practice", s.handlePractice)

	r.Get("/static/style.css", serveAsset("text/css; charset=utf-8", cssContent))
	r.Get("/static/script.js", serveAsset("application/javascript; charset=utf-8", jsContent))
	r.Get(content.DefaultPath, s.handleDocument)

	r.Get("/api/sections/", s.handleSections)
	r.Get("/api/topics/{sectionID}/", s.handleTopics)
	r.Get("/api/questions/{topicID}/", s.handleQuestions)
	r.Post("/api/run-java/", s.handleRun)
	r.Post("/api/steps/", s.handleSteps)
	r.Get("/ws/run", s.handleWebSocket)
}

// RenderContentPage renders the home, section or topic page for query into w.
func (s *Site) RenderContentPage(ctx context.Context, w io.Writer, route page.Route, query url.Values) error {
	p := page.New(route)
	s.renderer.Render(ctx, p, route, query)
	return s.WritePage(w, p)
}

// WritePage writes an already rendered page as HTML.
func (s *Site) WritePage(w io.Writer, p *page.Page) error {
	return s.write(w, s.viewFor(p, ""))
}

func (s *Site) viewFor(p *page.Page, action string) view {
	v := view{Name: s.name, Route: p.Route().String(), Action: action, Page: p}
	switch p.Route() {
	case page.RouteSection:
		v.Title = p.Text(page.SlotSectionTitle)
	case page.RouteTopic:
		v.Title = p.Text(page.SlotTopicTitle)
	case page.RoutePractice:
		v.Title = p.Text(page.SlotProgramTitle)
		if v.Title == "" {
			v.Title = "Practice"
		}
	}
	return v
}

// write executes the page template into a buffer first so a template error
// never leaves a half-written response.
func (s *Site) write(w io.Writer, v view) error {
	t, ok := s.templates[v.Page.Route()]
	if !ok {
		return fmt.Errorf("no template for route %s", v.Page.Route())
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", v); err != nil {
		return fmt.Errorf("rendering %s page: %w", v.Page.Route(), err)
	}
	_, err := buf.WriteTo(w)
	return err
}
