// ABOUTME: Prometheus metrics for the web server
// ABOUTME: Request counts and latencies per route plus live contact/category gauges
package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/harperreed/rolodex/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// newMetrics uses its own registry so several servers can coexist in tests.
func newMetrics(s *store.Store) *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rolodex_http_requests_total",
			Help: "HTTP requests by method, route, and status code.",
		}, []string{"method", "route", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rolodex_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}

	contacts := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "rolodex_contacts",
		Help: "Contacts currently in the session.",
	}, func() float64 { return float64(s.Len()) })
	categories := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "rolodex_categories",
		Help: "Categories currently in the session.",
	}, func() float64 { return float64(len(s.Categories())) })

	m.registry.MustRegister(m.requests, m.duration, contacts, categories)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *metrics) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		m.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}
