package foyer

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	foyerhttp "github.com/arvhem/foyer/internal/adapters/http"
	"github.com/arvhem/foyer/internal/content"
	"github.com/arvhem/foyer/internal/logging"
	"github.com/arvhem/foyer/internal/shell"
	"github.com/arvhem/foyer/pkg/ports"
	"github.com/arvhem/foyer/pkg/routes"
)

// Version of the foyer module.
const Version = "0.1.0"

// App is the high-level entry point for the Foyer shell.
// It wires the content store, layout shell, and HTTP adapter behind a
// simplified API for consumers.
type App struct {
	store   *content.Store
	shell   *shell.Shell
	cache   ports.PageCache
	logger  *slog.Logger
	handler http.Handler
	appName string
	metrics *foyerhttp.Metrics
}

// Option defines a functional option for configuring the App.
type Option func(*App)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithCache sets a rendered-page cache.
func WithCache(cache ports.PageCache) Option {
	return func(a *App) {
		a.cache = cache
	}
}

// WithAppName sets the name shown in titles and the footer.
func WithAppName(name string) Option {
	return func(a *App) {
		a.appName = name
	}
}

// WithMetrics enables Prometheus request metrics and the /metrics endpoint.
func WithMetrics() Option {
	return func(a *App) {
		a.metrics = foyerhttp.NewMetrics()
	}
}

// New initializes the Foyer app.
// An empty contentDir serves the embedded default pages.
func New(contentDir string, opts ...Option) (*App, error) {
	a := &App{appName: shell.DefaultAppName}
	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		a.logger = logging.NewNop()
	}

	store, err := content.New(contentDir, content.WithLogger(a.logger))
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	a.store = store

	sh, err := shell.New(shell.WithAppName(a.appName))
	if err != nil {
		return nil, err
	}
	a.shell = sh

	serverOpts := []foyerhttp.Option{foyerhttp.WithLogger(a.logger)}
	if a.cache != nil {
		serverOpts = append(serverOpts, foyerhttp.WithCache(a.cache))
	}
	if a.metrics != nil {
		serverOpts = append(serverOpts, foyerhttp.WithMetrics(a.metrics))
	}
	a.handler = foyerhttp.NewHandler(store, sh, serverOpts...)

	return a, nil
}

// Handler returns the HTTP handler serving the shell.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Routes returns the route table in navigation order.
func (a *App) Routes() []routes.Route {
	return a.store.Table().All()
}

// PageSource returns the raw Markdown body of a page by its identifier.
func (a *App) PageSource(id string) (string, error) {
	page, ok := a.store.LookupID(id)
	if !ok {
		return "", fmt.Errorf("no page with id %q", id)
	}
	return page.Markdown, nil
}

// Reload re-reads the content directory and drops any cached renders.
func (a *App) Reload(ctx context.Context) error {
	if err := a.store.Reload(); err != nil {
		return err
	}
	if a.cache != nil {
		if err := a.cache.Clear(ctx); err != nil {
			return fmt.Errorf("clear cache: %w", err)
		}
	}
	return nil
}

// Watch returns a channel that signals when a page document changes.
// Returns an error when the content source does not support watching.
func (a *App) Watch(ctx context.Context) (<-chan string, error) {
	return a.store.Watch(ctx)
}
