package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templatesFS embed.FS

// NavLink is a single entry of the navigation bar.
type NavLink struct {
	Path   string
	Title  string
	Active bool
}

type layoutData struct {
	AppTitle    string
	Environment string
	Page        Page
	Nav         []NavLink
}

// Renderer renders views into the shared layout. It is safe for concurrent
// use.
type Renderer struct {
	layout      *template.Template
	appTitle    string
	environment string
}

// NewRenderer parses the embedded layout.
func NewRenderer(appTitle, environment string) (*Renderer, error) {
	layout, err := template.ParseFS(templatesFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	return &Renderer{layout: layout, appTitle: appTitle, environment: environment}, nil
}

// Render writes the document of view id. Returns ErrUnknownView when id has
// no registered page.
func (r *Renderer) Render(w io.Writer, id ID, nav []NavLink) error {
	page, ok := Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownView, id)
	}

	return r.layout.Execute(w, layoutData{
		AppTitle:    r.appTitle,
		Environment: r.environment,
		Page:        page,
		Nav:         nav,
	})
}
