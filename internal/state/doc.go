// Package state provides durable local state for the SkillShare client.
//
// State lives in a Badger key-value store under the user's data
// directory:
//
//   - store.go: Badger engine lifecycle and raw KV access
//   - token.go: encrypted auth token slot
//   - cache.go: TTL page cache for list responses
//
// The auth token is encrypted at rest with an AEAD cipher whose key is
// derived from a machine-local key file. Cached pages are plaintext;
// they hold only data the backend already returned to this user.
package state
