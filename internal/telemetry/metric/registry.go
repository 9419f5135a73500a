// Package metric provides Prometheus metrics for SkillShare.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all application metrics.
type Registry struct {
	// Request metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Session metrics
	SessionEvictions prometheus.Counter
	LoginAttempts    *prometheus.CounterVec

	// Cache metrics
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter

	reg *prometheus.Registry
}

// NewRegistry creates a new metrics registry with all application
// metrics registered on a dedicated Prometheus registry.
func NewRegistry() *Registry {
	r := &Registry{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skillshare",
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Total API requests by method, route and status code.",
		}, []string{"method", "route", "status"}),

		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "skillshare",
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "API request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		SessionEvictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "skillshare",
			Subsystem: "session",
			Name:      "evictions_total",
			Help:      "Sessions evicted after an unauthorized response.",
		}),

		LoginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skillshare",
			Subsystem: "session",
			Name:      "login_attempts_total",
			Help:      "Login attempts by outcome (success, failure).",
		}, []string{"outcome"}),

		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "skillshare",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Local page cache hits.",
		}),

		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "skillshare",
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Local page cache misses.",
		}),

		reg: prometheus.NewRegistry(),
	}

	r.reg.MustRegister(
		r.RequestsTotal,
		r.RequestDuration,
		r.SessionEvictions,
		r.LoginAttempts,
		r.CacheHits,
		r.CacheMisses,
	)

	return r
}

// Gatherer exposes the underlying registry for scraping and dumps.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}
