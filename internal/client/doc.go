// Package client provides the SkillShare API client.
//
// It contains the HTTP transport, the session manager owning the
// authenticated identity, and typed wrappers for the REST surface:
//
//   - transport.go: JSON-over-HTTP transport with bearer auth,
//     request IDs, metrics and the unauthorized-eviction policy
//   - page.go: pagination envelope normalization
//   - auth.go: session lifecycle (login, register, logout, validate)
//   - resources.go, plans.go, posts.go, users.go, notifications.go:
//     typed API clients
//
// All session state flows through SessionManager; consumers observe it
// via Subscribe and never mutate it directly.
package client
