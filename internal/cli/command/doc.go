// Package command defines the skillshare-cli commands.
//
// Commands are built with urfave/cli/v2:
//
//   - root.go: application assembly, global flags, shared runtime
//   - auth.go: login, register, logout, whoami
//   - resource.go: resource library browsing and publishing
//   - post.go: feed, commitments, likes, comments
//   - plan.go: learning plans and milestones
//   - user.go: profiles and the follow graph
//   - notification.go: notification listing and follow mode
//   - config.go: local configuration management
//   - system.go: version and client metrics
//
// Each command parses its flags, calls the matching API client, and hands
// the result to an output formatter. Commands that mutate server state
// check the session first and refuse to run signed out.
package command
