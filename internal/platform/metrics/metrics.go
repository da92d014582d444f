// Package metrics aggregates the per-request instrumentation every service
// in the fleet records identically: a counter keyed by method, route
// template and status, plus a latency histogram. State is process-lifetime
// scoped and lives in a dedicated registry per service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry owns the collectors for one service process.
type Registry struct {
	registry *prometheus.Registry

	requestCount   *prometheus.CounterVec
	requestLatency prometheus.Histogram
	loginAttempts  *prometheus.CounterVec
}

// NewRegistry builds the collectors under the given namespace
// ("auth", "account", "transaction").
func NewRegistry(namespace string) *Registry {
	reg := prometheus.NewRegistry()

	requestCount := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total requests handled, by method, route and status.",
		},
		[]string{"method", "endpoint", "status"},
	)
	requestLatency := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Request latency distribution.",
			Buckets:   prometheus.DefBuckets,
		},
	)
	loginAttempts := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_attempts_total",
			Help:      "Login attempts by outcome.",
		},
		[]string{"status"},
	)

	reg.MustRegister(requestCount, requestLatency, loginAttempts)

	return &Registry{
		registry:       reg,
		requestCount:   requestCount,
		requestLatency: requestLatency,
		loginAttempts:  loginAttempts,
	}
}

// ObserveRequest records one completed request. Endpoint must be the route
// template, never the raw path, to keep label cardinality bounded.
func (r *Registry) ObserveRequest(method, endpoint string, status int, latency time.Duration) {
	r.requestLatency.Observe(latency.Seconds())
	r.requestCount.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
}

// ObserveLogin counts a login attempt by outcome label only. Usernames are
// deliberately not a label.
func (r *Registry) ObserveLogin(outcome string) {
	r.loginAttempts.WithLabelValues(outcome).Inc()
}

// Handler serves the exposition format snapshot of the registry.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Gatherer exposes the underlying registry for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
