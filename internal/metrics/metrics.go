// Package metrics defines the Prometheus instrumentation for ku2cash.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Mutations counts successful state mutations by intent.
	Mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ku2cash_mutations_total",
		Help: "Number of successful state mutations, by operation.",
	}, []string{"op"})

	// PersistenceFailures counts snapshot writes that failed. Writes are
	// best-effort, so failures only show up here and in the logs.
	PersistenceFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ku2cash_persistence_failures_total",
		Help: "Number of snapshot writes that failed.",
	})

	// RequestDuration observes HTTP request latency.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ku2cash_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// Handler returns the /metrics endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
