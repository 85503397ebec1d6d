// Package content loads the shell's pages from a directory of Markdown
// documents with YAML front matter. When no directory is configured the
// embedded default pages are served instead.
package content

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/arvhem/foyer/pkg/routes"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

//go:embed defaults/*.md
var defaultsFS embed.FS

// Store loads and holds the page set. It is safe for concurrent reads;
// Reload swaps the whole set atomically.
type Store struct {
	dir      string
	markdown goldmark.Markdown
	logger   *slog.Logger

	mu    sync.RWMutex
	pages map[string]*Page
	table *routes.Table
}

// Option defines a functional option for configuring the Store.
type Option func(*Store)

// WithLogger sets a structured logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a Store and performs the initial load.
// If dir is empty, the embedded default pages are used.
func New(dir string, opts ...Option) (*Store, error) {
	s := &Store{
		dir: dir,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(
				// Page documents are trusted local content.
				htmlrenderer.WithUnsafe(),
			),
		),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Dir returns the content directory, or empty when serving embedded defaults.
func (s *Store) Dir() string {
	return s.dir
}

// Reload re-reads the page set from disk (or the embedded defaults) and
// swaps it in atomically. On error the previous set is kept.
func (s *Store) Reload() error {
	var (
		fsys fs.FS
		root string
	)
	if s.dir == "" {
		fsys = defaultsFS
		root = "defaults"
	} else {
		abs, err := filepath.Abs(s.dir)
		if err != nil {
			return fmt.Errorf("invalid content dir: %w", err)
		}
		fsys = os.DirFS(abs)
		root = "."
	}

	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return fmt.Errorf("read content dir: %w", err)
	}

	pages := make(map[string]*Page)
	var rs []routes.Route
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		name := entry.Name()
		raw, err := fs.ReadFile(fsys, filepath.ToSlash(filepath.Join(root, name)))
		if err != nil {
			return fmt.Errorf("read page %s: %w", name, err)
		}

		meta, body, err := parseDocument(name, raw)
		if err != nil {
			return err
		}

		html, err := s.renderBody(name, body)
		if err != nil {
			return err
		}

		page := &Page{Meta: meta, Markdown: body, HTML: html}
		path := routes.Normalize(meta.Path)
		if prev, exists := pages[path]; exists {
			return fmt.Errorf("page %q: path %s already used by %q", meta.ID, path, prev.ID)
		}
		pages[path] = page
		rs = append(rs, routes.Route{
			ID:       meta.ID,
			Path:     meta.Path,
			Title:    meta.Title,
			NavLabel: meta.NavLabel,
			Order:    meta.Order,
		})
		s.logger.Debug("page loaded", "id", meta.ID, "path", path)
	}

	table, err := routes.NewTable(rs)
	if err != nil {
		return fmt.Errorf("build route table: %w", err)
	}

	s.mu.Lock()
	s.pages = pages
	s.table = table
	s.mu.Unlock()

	s.logger.Info("content loaded", "pages", len(pages))
	return nil
}

// Lookup resolves a request path to its page.
func (s *Store) Lookup(path string) (*Page, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pages[routes.Normalize(path)]
	return p, ok
}

// LookupID resolves a page identifier (content file stem) to its page.
func (s *Store) LookupID(id string) (*Page, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.pages {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Table returns the current route table.
func (s *Store) Table() *routes.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table
}

// Pages returns the pages in navigation order.
func (s *Store) Pages() []*Page {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Page, 0, len(s.pages))
	for _, r := range s.table.All() {
		if p, ok := s.pages[r.Path]; ok {
			out = append(out, p)
		}
	}
	return out
}
