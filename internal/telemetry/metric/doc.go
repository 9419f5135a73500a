// Package metric provides Prometheus metrics for SkillShare.
//
// It instruments the HTTP client transport and the local cache:
//
//   - registry.go: Metric definitions and registration
//   - prometheus.go: promhttp handler and timing helpers
//
// Metrics track request rates and latencies per route, session
// evictions after authentication failures, and cache effectiveness.
package metric
