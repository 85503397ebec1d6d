package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/arvhem/foyer/internal/content"
	"github.com/arvhem/foyer/pkg/routes"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the request instrumentation for the shell.
// It carries its own registry so tests and embedding applications don't
// collide on the global default.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates and registers the shell's request metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "foyer_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "foyer_request_duration_seconds",
				Help: "Duration of HTTP requests",
			},
			[]string{"path"},
		),
	}
	m.registry.MustRegister(m.requests, m.duration)
	return m
}

// Handler serves the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records count and duration per request. Paths outside the
// route table collapse into a single "unmatched" label to keep
// cardinality bounded.
func (m *Metrics) Middleware(store *content.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			label := routes.Normalize(r.URL.Path)
			if _, ok := store.Table().Lookup(label); !ok {
				label = "unmatched"
			}
			m.requests.WithLabelValues(label, strconv.Itoa(ww.Status())).Inc()
			m.duration.WithLabelValues(label).Observe(time.Since(start).Seconds())
		})
	}
}
