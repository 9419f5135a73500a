// Package client provides the SkillShare API client.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/skillshare/skillshare-go/internal/core/domain"
	"github.com/skillshare/skillshare-go/internal/telemetry/logger"
	"github.com/skillshare/skillshare-go/internal/telemetry/metric"
)

// userAgent identifies this client to the backend.
const userAgent = "skillshare-cli/1.0"

// defaultTimeout bounds every request.
const defaultTimeout = 30 * time.Second

// TokenSource supplies the persisted bearer token.
// Load returns domain.ErrTokenNotFound when no token is stored.
type TokenSource interface {
	Load() (string, error)
}

// UnauthorizedFunc is invoked once whenever an authenticated call
// receives a 401. It is the single interception point for the
// evict-and-redirect policy.
type UnauthorizedFunc func()

// Transport provides JSON-over-HTTP communication with the backend.
type Transport struct {
	baseURL        string
	client         *http.Client
	tokens         TokenSource
	onUnauthorized UnauthorizedFunc
	metrics        *metric.Registry
	logger         logger.Logger
}

// Option configures a Transport.
type Option func(*Transport)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(t *Transport) { t.client = c }
}

// WithTokenSource sets the bearer token source for authenticated calls.
func WithTokenSource(src TokenSource) Option {
	return func(t *Transport) { t.tokens = src }
}

// WithUnauthorizedFunc sets the 401 policy.
func WithUnauthorizedFunc(fn UnauthorizedFunc) Option {
	return func(t *Transport) { t.onUnauthorized = fn }
}

// WithMetrics enables request instrumentation.
func WithMetrics(m *metric.Registry) Option {
	return func(t *Transport) { t.metrics = m }
}

// WithLogger sets the transport logger.
func WithLogger(l logger.Logger) Option {
	return func(t *Transport) { t.logger = l }
}

// NewTransport creates a transport for the given server address.
func NewTransport(server string, opts ...Option) *Transport {
	baseURL := server
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	t := &Transport{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// BaseURL returns the normalized base URL.
func (t *Transport) BaseURL() string {
	return t.baseURL
}

// Get performs a GET request and decodes the response into target.
func (t *Transport) Get(ctx context.Context, path string, query url.Values, authed bool, target any) error {
	return t.do(ctx, http.MethodGet, path, query, nil, authed, target)
}

// Post performs a POST request with a JSON body.
func (t *Transport) Post(ctx context.Context, path string, body any, authed bool, target any) error {
	return t.do(ctx, http.MethodPost, path, nil, body, authed, target)
}

// Put performs a PUT request with a JSON body.
func (t *Transport) Put(ctx context.Context, path string, body any, authed bool, target any) error {
	return t.do(ctx, http.MethodPut, path, nil, body, authed, target)
}

// Delete performs a DELETE request.
func (t *Transport) Delete(ctx context.Context, path string, authed bool) error {
	return t.do(ctx, http.MethodDelete, path, nil, nil, authed, nil)
}

// GetRaw performs a GET request and returns the raw body.
// Used by list calls that feed the page cache before decoding.
func (t *Transport) GetRaw(ctx context.Context, path string, query url.Values, authed bool) ([]byte, error) {
	var raw json.RawMessage
	if err := t.do(ctx, http.MethodGet, path, query, nil, authed, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (t *Transport) do(ctx context.Context, method, path string, query url.Values, body any, authed bool, target any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return domain.ErrTransport.WithCause(fmt.Errorf("marshal body: %w", err))
		}
		bodyReader = bytes.NewReader(data)
	}

	u := t.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return domain.ErrTransport.WithCause(fmt.Errorf("create request: %w", err))
	}

	requestID := ulid.Make().String()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authed {
		token, err := t.token()
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := t.client.Do(req)
	elapsed := time.Since(start)

	if err != nil {
		t.observe(method, path, 0, elapsed)
		t.logger.Warn("request failed",
			"method", method, "path", path, "request_id", requestID, "error", err)
		return domain.ErrTransport.WithCause(err)
	}
	defer resp.Body.Close()

	t.observe(method, path, resp.StatusCode, elapsed)
	t.logger.Debug("request completed",
		"method", method, "path", path, "status", resp.StatusCode,
		"elapsed", elapsed, "request_id", requestID)

	if resp.StatusCode >= 400 {
		return t.mapError(resp, authed)
	}

	if target != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return domain.ErrTransport.WithCause(fmt.Errorf("parse response: %w", err))
		}
	}
	return nil
}

// token loads the bearer token; absence surfaces as ErrUnauthorized
// since the caller asked for an authenticated request.
func (t *Transport) token() (string, error) {
	if t.tokens == nil {
		return "", domain.ErrUnauthorized
	}
	token, err := t.tokens.Load()
	if err != nil {
		if errors.Is(err, domain.ErrTokenNotFound) {
			return "", domain.ErrUnauthorized
		}
		return "", err
	}
	return token, nil
}

// apiError is the backend error body: {status, message} plus optional
// field-level subErrors on 400 validation responses.
type apiError struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	SubErrors []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"subErrors"`
}

func (t *Transport) mapError(resp *http.Response, authed bool) error {
	var body apiError
	_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&body)

	status := resp.StatusCode

	if status == http.StatusUnauthorized && authed {
		if t.metrics != nil {
			t.metrics.SessionEvictions.Inc()
		}
		if t.onUnauthorized != nil {
			t.onUnauthorized()
		}
		return &statusError{status: status, err: domain.ErrUnauthorized}
	}

	message := body.Message
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", status)
	}

	var err error
	switch {
	case status >= 500:
		err = domain.ErrServer.WithDetails(message)
	case len(body.SubErrors) > 0:
		err = &domain.AuthError{
			Message: body.SubErrors[0].Message,
			Field:   body.SubErrors[0].Field,
		}
	default:
		err = &domain.AuthError{Message: message}
	}
	return &statusError{status: status, err: err}
}

// statusError carries the HTTP status alongside the mapped error so
// typed clients can remap well-known statuses (404) to their sentinels.
type statusError struct {
	status int
	err    error
}

func (e *statusError) Error() string { return e.err.Error() }
func (e *statusError) Unwrap() error { return e.err }

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var se *statusError
	if errors.As(err, &se) {
		return se.status
	}
	return 0
}

// mapNotFound remaps a 404 failure to the given sentinel.
func mapNotFound(err error, sentinel *domain.DomainError) error {
	if StatusCode(err) == http.StatusNotFound {
		return sentinel
	}
	return err
}

func (t *Transport) observe(method, path string, status int, elapsed time.Duration) {
	if t.metrics == nil {
		return
	}
	t.metrics.ObserveRequest(method, routeLabel(path), status, elapsed)
}

// routeLabel collapses ID path segments so metric label cardinality
// stays bounded.
func routeLabel(path string) string {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		if p != "" && isIDSegment(p) {
			parts[i] = ":id"
		}
	}
	return strings.Join(parts, "/")
}

func isIDSegment(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
