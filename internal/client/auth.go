// Package client provides the SkillShare API client.
package client

import (
	"context"
	"errors"
	"sync"

	"github.com/skillshare/skillshare-go/internal/core/domain"
	"github.com/skillshare/skillshare-go/internal/core/validate"
	"github.com/skillshare/skillshare-go/internal/telemetry/logger"
	"github.com/skillshare/skillshare-go/internal/telemetry/metric"
)

// TokenStorage persists the bearer token between runs.
type TokenStorage interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}

// Snapshot is the observable session state.
type Snapshot struct {
	User    *domain.User
	Loading bool
	Err     *domain.AuthError
}

// Authenticated reports whether a user identity is present.
func (s Snapshot) Authenticated() bool {
	return s.User != nil
}

// SessionManager owns the authenticated-identity lifecycle.
//
// All session mutation funnels through Login, Register, Logout and
// ValidateToken; consumers observe state via Subscribe or Current and
// never mutate it directly.
//
// Concurrent operations are resolved last-issued-wins: every operation
// takes a monotonically increasing sequence number when issued, and a
// response arriving after a newer operation was issued is discarded
// without touching session state.
type SessionManager struct {
	transport *Transport
	tokens    TokenStorage
	metrics   *metric.Registry
	logger    logger.Logger

	mu      sync.Mutex
	user    *domain.User
	loading bool
	err     *domain.AuthError
	seq     uint64

	nextSubID int
	subs      map[int]func(Snapshot)
}

// NewSessionManager creates a session manager over the given transport
// and token storage, and installs itself as the transport's 401 policy.
func NewSessionManager(t *Transport, tokens TokenStorage, m *metric.Registry, log logger.Logger) *SessionManager {
	if log == nil {
		log = logger.Default()
	}
	sm := &SessionManager{
		transport: t,
		tokens:    tokens,
		metrics:   m,
		logger:    log,
		subs:      make(map[int]func(Snapshot)),
	}
	t.onUnauthorized = sm.HandleUnauthorized
	return sm
}

// Current returns the current session snapshot.
func (m *SessionManager) Current() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Subscribe registers a listener invoked on every state change.
// The returned function removes the listener.
func (m *SessionManager) Subscribe(fn func(Snapshot)) func() {
	m.mu.Lock()
	id := m.nextSubID
	m.nextSubID++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// Login authenticates with the backend and establishes a session.
// On failure no token is persisted and the user stays empty; the
// failure is both stored on the session state and returned.
func (m *SessionManager) Login(ctx context.Context, creds domain.LoginCredentials) error {
	op := m.begin()

	var resp domain.AuthResponse
	err := m.transport.Post(ctx, "/api/auth/login", creds, false, &resp)

	if m.metrics != nil {
		m.metrics.ObserveLogin(err == nil)
	}

	if err != nil {
		m.fail(op, err)
		return err
	}

	if serr := m.commit(op, resp.Token, &resp.User); serr != nil {
		return serr
	}
	m.logger.Info("session established", "user_id", resp.User.ID)
	return nil
}

// Register creates an account and establishes a session.
// Password confirmation is checked locally before any network call.
func (m *SessionManager) Register(ctx context.Context, creds domain.RegisterCredentials) error {
	op := m.begin()

	if res := validate.Field(creds.ConfirmPassword, []validate.Rule{validate.Match(creds.Password)}); !res.Valid {
		err := &domain.AuthError{Message: res.Errors[0], Field: "confirmPassword"}
		m.fail(op, err)
		return err
	}

	var resp domain.AuthResponse
	err := m.transport.Post(ctx, "/api/auth/register", creds, false, &resp)
	if err != nil {
		m.fail(op, err)
		return err
	}

	if serr := m.commit(op, resp.Token, &resp.User); serr != nil {
		return serr
	}
	m.logger.Info("account registered", "user_id", resp.User.ID)
	return nil
}

// Logout clears the session and the persisted token.
// Synchronous, idempotent, never touches the network. It also
// supersedes any in-flight operation so a slow response cannot
// resurrect the session.
func (m *SessionManager) Logout() {
	m.mu.Lock()
	m.seq++
	m.user = nil
	m.err = nil
	m.loading = false
	// Token eviction happens under the lock so a concurrently
	// committing login cannot interleave between state clear and clear
	// of the persisted token.
	if err := m.tokens.Clear(); err != nil {
		m.logger.Warn("token clear failed", "error", err)
	}
	snap := m.snapshotLocked()
	subs := m.listenersLocked()
	m.mu.Unlock()

	m.notify(subs, snap)
}

// ValidateToken restores the session from a persisted token at startup.
// Without a stored token it returns immediately with no network call.
// A stored token that fails validation for any reason is evicted.
func (m *SessionManager) ValidateToken(ctx context.Context) error {
	if _, err := m.tokens.Load(); err != nil {
		if errors.Is(err, domain.ErrTokenNotFound) {
			m.clear()
			return nil
		}
		m.clear()
		return err
	}

	op := m.begin()

	var user domain.User
	err := m.transport.Get(ctx, "/api/auth/validate", nil, true, &user)
	if err != nil {
		if cerr := m.tokens.Clear(); cerr != nil {
			m.logger.Warn("token clear failed", "error", cerr)
		}
		m.logger.Info("stored token rejected, session cleared")
		// Eviction clears the session rather than surfacing a form error.
		m.discardErr(op)
		return err
	}

	m.succeed(op, &user)
	m.logger.Debug("session restored", "user_id", user.ID)
	return nil
}

// HandleUnauthorized implements the 401 policy: evict the token and
// clear the session. Installed on the transport at construction.
func (m *SessionManager) HandleUnauthorized() {
	m.logger.Info("unauthorized response, evicting session")
	m.Logout()
}

// begin issues a new operation: bumps the sequence, flips loading on
// and clears the previous error.
func (m *SessionManager) begin() uint64 {
	m.mu.Lock()
	m.seq++
	op := m.seq
	m.loading = true
	m.err = nil
	snap := m.snapshotLocked()
	subs := m.listenersLocked()
	m.mu.Unlock()

	m.notify(subs, snap)
	return op
}

// succeed commits a successful result if op is still the latest.
func (m *SessionManager) succeed(op uint64, user *domain.User) {
	m.mu.Lock()
	if op != m.seq {
		m.mu.Unlock()
		return
	}
	m.user = user
	m.err = nil
	m.loading = false
	snap := m.snapshotLocked()
	subs := m.listenersLocked()
	m.mu.Unlock()

	m.notify(subs, snap)
}

// commit persists the token and commits the user atomically, but only
// if op is still the latest. A superseded login result is discarded
// without persisting anything, so a slow response arriving after a
// logout cannot resurrect the session.
func (m *SessionManager) commit(op uint64, token string, user *domain.User) error {
	m.mu.Lock()
	if op != m.seq {
		m.mu.Unlock()
		return nil
	}

	if err := m.tokens.Save(token); err != nil {
		m.err = domain.AuthErrorFrom(err)
		m.loading = false
		snap := m.snapshotLocked()
		subs := m.listenersLocked()
		m.mu.Unlock()
		m.notify(subs, snap)
		return err
	}

	m.user = user
	m.err = nil
	m.loading = false
	snap := m.snapshotLocked()
	subs := m.listenersLocked()
	m.mu.Unlock()

	m.notify(subs, snap)
	return nil
}

// fail records a failed result if op is still the latest. The user is
// left untouched; only the error slot and loading change.
func (m *SessionManager) fail(op uint64, err error) {
	m.mu.Lock()
	if op != m.seq {
		m.mu.Unlock()
		return
	}
	m.err = domain.AuthErrorFrom(err)
	m.loading = false
	snap := m.snapshotLocked()
	subs := m.listenersLocked()
	m.mu.Unlock()

	m.notify(subs, snap)
}

// discardErr ends a failed operation without recording a form error,
// clearing the user instead. Used by token validation, where failure
// means "anonymous", not "show this near a form".
func (m *SessionManager) discardErr(op uint64) {
	m.mu.Lock()
	if op != m.seq {
		m.mu.Unlock()
		return
	}
	m.user = nil
	m.err = nil
	m.loading = false
	snap := m.snapshotLocked()
	subs := m.listenersLocked()
	m.mu.Unlock()

	m.notify(subs, snap)
}

// clear resets the session to anonymous outside any operation.
func (m *SessionManager) clear() {
	m.mu.Lock()
	m.user = nil
	m.err = nil
	m.loading = false
	snap := m.snapshotLocked()
	subs := m.listenersLocked()
	m.mu.Unlock()

	m.notify(subs, snap)
}

func (m *SessionManager) snapshotLocked() Snapshot {
	return Snapshot{User: m.user, Loading: m.loading, Err: m.err}
}

func (m *SessionManager) listenersLocked() []func(Snapshot) {
	subs := make([]func(Snapshot), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	return subs
}

func (m *SessionManager) notify(subs []func(Snapshot), snap Snapshot) {
	for _, fn := range subs {
		fn(snap)
	}
}
