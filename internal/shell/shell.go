// Package shell renders the layout around page content: navigation bar,
// routed content region, and footer.
//
// The navigation bar is rendered on every path except exactly the root
// path; the footer is rendered unconditionally. Page content is opaque to
// the shell.
package shell

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/arvhem/foyer/pkg/routes"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// DefaultAppName is used in the title and footer when none is configured.
const DefaultAppName = "Foyer"

// View carries the per-request data for a shell render.
type View struct {
	// Title of the page, prepended to the app name. Empty for no page.
	Title string
	// Path is the request path; it drives the navigation visibility rule
	// and link highlighting.
	Path string
	// Nav lists the navigation links in order.
	Nav []routes.Route
	// Content is the rendered page body. Empty renders an empty content
	// region (unmatched paths).
	Content template.HTML
}

// Shell renders the layout templates.
type Shell struct {
	appName string
	tmpl    *template.Template
}

// Option defines a functional option for configuring the Shell.
type Option func(*Shell)

// WithAppName sets the application name used in titles and the footer.
func WithAppName(name string) Option {
	return func(s *Shell) {
		s.appName = name
	}
}

// New parses the embedded layout templates.
func New(opts ...Option) (*Shell, error) {
	s := &Shell{appName: DefaultAppName}
	for _, opt := range opts {
		opt(s)
	}

	tmpl, err := template.ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse layout templates: %w", err)
	}
	s.tmpl = tmpl
	return s, nil
}

// viewData is the template root: the caller's View plus derived fields.
type viewData struct {
	View
	AppName string
	ShowNav bool
	Year    int
}

// Render writes the full document for the view.
func (s *Shell) Render(w io.Writer, v View) error {
	data := viewData{
		View:    v,
		AppName: s.appName,
		ShowNav: routes.ShowNav(v.Path),
		Year:    time.Now().Year(),
	}
	if err := s.tmpl.ExecuteTemplate(w, "layout.tmpl", data); err != nil {
		return fmt.Errorf("render shell for %s: %w", v.Path, err)
	}
	return nil
}
