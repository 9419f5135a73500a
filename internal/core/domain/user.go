// Package domain defines the core domain models for the SkillShare client.
package domain

import (
	"strings"
	"time"
)

// User profile constraints enforced by the backend. The client checks them
// before issuing a request so obviously invalid input fails fast.
const (
	MinNameLength     = 2
	MaxNameLength     = 50
	MinPasswordLength = 6
	MaxBioLength      = 500
)

// timeLayouts are the timestamp formats the backend is known to emit.
// LocalDateTime fields arrive without a zone offset.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// User represents a SkillShare user profile as served by the backend.
type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Bio            string `json:"bio,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	Location       string `json:"location,omitempty"`
	Occupation     string `json:"occupation,omitempty"`
	Website        string `json:"website,omitempty"`
	FollowersCount int    `json:"followersCount"`
	FollowingCount int    `json:"followingCount"`
	CreatedAt      string `json:"createdAt,omitempty"`
}

// CreatedAtTime parses CreatedAt. Returns the zero time when absent or
// unparseable.
func (u *User) CreatedAtTime() time.Time {
	return parseBackendTime(u.CreatedAt)
}

// DisplayName returns the name to show in listings, falling back to the
// email local part when the profile has no name.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if at := strings.IndexByte(u.Email, '@'); at > 0 {
		return u.Email[:at]
	}
	return u.Email
}

// Validate validates profile fields against backend constraints.
func (u *User) Validate() error {
	var violations []string

	if strings.TrimSpace(u.Name) == "" {
		violations = append(violations, "name is required")
	} else if len(u.Name) < MinNameLength || len(u.Name) > MaxNameLength {
		violations = append(violations, "name must be between 2 and 50 characters")
	}

	if strings.TrimSpace(u.Email) == "" {
		violations = append(violations, "email is required")
	}

	if len(u.Bio) > MaxBioLength {
		violations = append(violations, "bio must not exceed 500 characters")
	}

	if len(violations) > 0 {
		return ErrValidation.WithDetails(strings.Join(violations, "; "))
	}
	return nil
}

// LoginCredentials is the payload for POST /api/auth/login.
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterCredentials is the payload for POST /api/auth/register.
// ConfirmPassword is checked client-side before any network call.
type RegisterCredentials struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// AuthResponse is the success body of the login and register endpoints.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func parseBackendTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
