package routes

import (
	"fmt"
	"sort"
	"strings"
)

// Route maps a URL path to a rendered page.
type Route struct {
	// ID is the page identifier (content file stem, e.g. "home").
	ID string
	// Path is the URL path the page is mounted at, e.g. "/study-plan".
	Path string
	// Title is the document title for the page.
	Title string
	// NavLabel is the link text in the navigation bar. Falls back to Title.
	NavLabel string
	// Order controls navigation ordering. Lower comes first.
	Order int
}

// Label returns the navigation link text for the route.
func (r Route) Label() string {
	if r.NavLabel != "" {
		return r.NavLabel
	}
	return r.Title
}

// Table is an ordered set of routes keyed by path.
type Table struct {
	ordered []Route
	byPath  map[string]Route
}

// NewTable builds a table from the given routes, sorted by Order then Path.
// Duplicate paths are rejected.
func NewTable(rs []Route) (*Table, error) {
	t := &Table{
		ordered: make([]Route, 0, len(rs)),
		byPath:  make(map[string]Route, len(rs)),
	}
	for _, r := range rs {
		p := Normalize(r.Path)
		if p == "" {
			return nil, fmt.Errorf("route %q: empty path", r.ID)
		}
		if _, exists := t.byPath[p]; exists {
			return nil, fmt.Errorf("route %q: duplicate path %s", r.ID, p)
		}
		r.Path = p
		t.byPath[p] = r
		t.ordered = append(t.ordered, r)
	}
	sort.SliceStable(t.ordered, func(i, j int) bool {
		if t.ordered[i].Order != t.ordered[j].Order {
			return t.ordered[i].Order < t.ordered[j].Order
		}
		return t.ordered[i].Path < t.ordered[j].Path
	})
	return t, nil
}

// Lookup resolves a request path to its route.
func (t *Table) Lookup(path string) (Route, bool) {
	r, ok := t.byPath[Normalize(path)]
	return r, ok
}

// All returns the routes in navigation order.
func (t *Table) All() []Route {
	out := make([]Route, len(t.ordered))
	copy(out, t.ordered)
	return out
}

// Len returns the number of routes in the table.
func (t *Table) Len() int {
	return len(t.ordered)
}

// ShowNav reports whether the navigation bar is rendered for a request path.
// Navigation is hidden on exactly the root path and shown everywhere else,
// including paths with no matching route.
func ShowNav(path string) bool {
	return Normalize(path) != "/"
}

// Normalize collapses a trailing slash so "/chatbot/" and "/chatbot" address
// the same route. The empty path maps to "/".
func Normalize(path string) string {
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return "/"
	}
	return path
}
