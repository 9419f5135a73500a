// Package shutdown provides graceful shutdown for SkillShare.
//
// Long-running CLI modes (notification follow, config watch) register
// cleanup hooks here; the handler runs them in reverse order on
// SIGINT/SIGTERM or an explicit Trigger, bounded by a timeout.
package shutdown
