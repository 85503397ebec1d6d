// Package http serves the shell over HTTP. It mounts one route per page,
// renders the layout around the routed content, and leaves unmatched
// paths with an empty content region.
package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/arvhem/foyer/internal/content"
	"github.com/arvhem/foyer/internal/shell"
	"github.com/arvhem/foyer/pkg/ports"
	"github.com/arvhem/foyer/pkg/routes"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server renders pages from the content store through the layout shell.
type Server struct {
	store   *content.Store
	shell   *shell.Shell
	cache   ports.PageCache
	metrics *Metrics
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Server.
type Option func(*Server)

// WithCache sets a rendered-page cache.
func WithCache(cache ports.PageCache) Option {
	return func(s *Server) {
		s.cache = cache
	}
}

// WithMetrics enables request metrics and mounts /metrics.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithLogger sets a structured logger for request logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler for the shell.
func NewHandler(store *content.Store, sh *shell.Shell, opts ...Option) http.Handler {
	s := &Server{store: store, shell: sh}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.StripSlashes)
	if s.logger != nil {
		r.Use(s.requestLogger)
	}
	if s.metrics != nil {
		r.Use(s.metrics.Middleware(store))
	}
	r.Use(middleware.Recoverer)

	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler())
	}
	r.Get("/healthz", s.handleHealth)

	// One route per page. The handler resolves by request path so pages
	// added by a content reload are still served via NotFound below.
	for _, route := range store.Table().All() {
		r.Get(route.Path, s.handlePage)
	}
	r.NotFound(s.handleNotFound)

	return r
}

// handlePage serves a routed page through the shell, consulting the
// rendered-page cache when one is configured.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	path := routes.Normalize(r.URL.Path)

	if s.cache != nil {
		if html, err := s.cache.Get(r.Context(), path); err == nil {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Header().Set("X-Page-Cache", "hit")
			w.Write([]byte(html))
			return
		}
	}

	page, ok := s.store.Lookup(path)
	if !ok {
		s.renderEmpty(w, r, path)
		return
	}

	var buf bytes.Buffer
	view := shell.View{
		Title:   page.Title,
		Path:    path,
		Nav:     s.store.Table().All(),
		Content: page.HTML,
	}
	if err := s.shell.Render(&buf, view); err != nil {
		if s.logger != nil {
			s.logger.Error("render failed", "path", path, "err", err)
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if s.cache != nil {
		if err := s.cache.Set(r.Context(), path, buf.String()); err != nil && s.logger != nil {
			s.logger.Warn("cache write failed", "path", path, "err", err)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if s.cache != nil {
		w.Header().Set("X-Page-Cache", "miss")
	}
	w.Write(buf.Bytes())
}

// handleNotFound still renders the shell (navigation and footer) around
// an empty content region. A page registered after startup, e.g. by a
// content reload, is served normally.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	path := routes.Normalize(r.URL.Path)
	if _, ok := s.store.Lookup(path); ok {
		s.handlePage(w, r)
		return
	}
	s.renderEmpty(w, r, path)
}

func (s *Server) renderEmpty(w http.ResponseWriter, r *http.Request, path string) {
	var buf bytes.Buffer
	view := shell.View{
		Path: path,
		Nav:  s.store.Table().All(),
	}
	if err := s.shell.Render(&buf, view); err != nil {
		if s.logger != nil {
			s.logger.Error("render failed", "path", path, "err", err)
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write(buf.Bytes())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// requestLogger emits one slog record per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
