// Package domain defines the core domain models for the SkillShare client.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business domain error with a structured error code.
type DomainError struct {
	Code    string // Error code (e.g., "SS-AUTH-4010")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// Authentication Errors (AUTH)
// ============================================================================

var (
	// ErrInvalidCredentials indicates the email/password pair was rejected.
	ErrInvalidCredentials = NewDomainError("SS-AUTH-4010", "invalid email or password")

	// ErrUnauthorized indicates the bearer token was missing, expired, or revoked.
	ErrUnauthorized = NewDomainError("SS-AUTH-4011", "authentication required")

	// ErrEmailTaken indicates the registration email is already in use.
	ErrEmailTaken = NewDomainError("SS-AUTH-4090", "email already registered")

	// ErrPasswordMismatch indicates password and confirmation differ.
	ErrPasswordMismatch = NewDomainError("SS-AUTH-4001", "passwords do not match")

	// ErrTokenNotFound indicates no bearer token is persisted locally.
	ErrTokenNotFound = NewDomainError("SS-AUTH-4040", "no stored token")
)

// ============================================================================
// Resource / Plan / Post / User Errors
// ============================================================================

var (
	// ErrResourceNotFound indicates the requested resource was not found.
	ErrResourceNotFound = NewDomainError("SS-RES-4040", "resource not found")

	// ErrPlanNotFound indicates the requested learning plan was not found.
	ErrPlanNotFound = NewDomainError("SS-PLAN-4040", "learning plan not found")

	// ErrMilestoneNotFound indicates the milestone does not exist in the plan.
	ErrMilestoneNotFound = NewDomainError("SS-PLAN-4041", "milestone not found")

	// ErrPostNotFound indicates the requested post was not found.
	ErrPostNotFound = NewDomainError("SS-POST-4040", "post not found")

	// ErrUserNotFound indicates the requested user was not found.
	ErrUserNotFound = NewDomainError("SS-USER-4040", "user not found")
)

// ============================================================================
// Validation Errors (VAL)
// ============================================================================

var (
	// ErrValidation indicates one or more fields failed validation.
	ErrValidation = NewDomainError("SS-VAL-4000", "validation failed")
)

// ============================================================================
// System / Transport Errors (SYS)
// ============================================================================

var (
	// ErrTransport indicates the backend was unreachable or the response
	// could not be decoded. Callers cannot distinguish it from a server
	// rejection without inspecting the cause.
	ErrTransport = NewDomainError("SS-SYS-5020", "request failed")

	// ErrServer indicates the backend reported an internal failure.
	ErrServer = NewDomainError("SS-SYS-5000", "server error")

	// ErrStorage indicates a local state store failure.
	ErrStorage = NewDomainError("SS-SYS-5001", "storage error")

	// ErrCacheMiss indicates the requested entry is not in the local cache.
	ErrCacheMiss = NewDomainError("SS-SYS-4041", "cache miss")
)

// AuthError is the form-facing authentication failure surfaced on the
// session state. Field is set when the backend attributed the failure to a
// single input (e.g. a duplicate registration email).
type AuthError struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (field: %s)", e.Message, e.Field)
	}
	return e.Message
}

// AuthErrorFrom converts any error into an AuthError for display near a
// form. DomainError details are dropped; the message is kept.
func AuthErrorFrom(err error) *AuthError {
	if err == nil {
		return nil
	}
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae
	}
	var de *DomainError
	if errors.As(err, &de) {
		return &AuthError{Message: de.Message}
	}
	return &AuthError{Message: err.Error()}
}
