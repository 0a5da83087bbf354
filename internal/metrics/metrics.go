package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the scheduler's Prometheus metrics on a private
// registry, so the /metrics endpoint exposes only what the service itself
// registers.
type Collector struct {
	reg *prometheus.Registry

	RequestDuration *prometheus.HistogramVec

	TripsCreated      prometheus.Counter
	ConflictsDetected prometheus.Counter
	DryRunChecks      prometheus.Counter
}

// NewCollector creates and registers all scheduler metrics
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scheduler_http_request_duration_seconds",
			Help:    "HTTP request latency by method, route, and status.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		}, []string{"method", "route", "status"}),
		TripsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scheduler_trips_created_total",
			Help: "Total trips successfully created.",
		}),
		ConflictsDetected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scheduler_conflicts_detected_total",
			Help: "Total conflict records that blocked a write.",
		}),
		DryRunChecks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scheduler_dry_run_checks_total",
			Help: "Total dry-run conflict checks served.",
		}),
	}

	reg.MustRegister(
		c.RequestDuration,
		c.TripsCreated, c.ConflictsDetected, c.DryRunChecks,
	)

	return c
}

// ObserveRequest records one served HTTP request
func (c *Collector) ObserveRequest(method, route, status string, d time.Duration) {
	c.RequestDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
}

// Handler returns the HTTP handler serving the registry
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}
