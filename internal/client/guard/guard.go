// Package guard decides access to protected routes.
//
// It is a pure function of the session's identity presence and the
// requested path: either the request is allowed, or it redirects to
// the login route carrying the originally requested path so the
// session layer can return there after a successful login.
package guard

import (
	"net/url"
	"strings"
)

// LoginPath is the default login route.
const LoginPath = "/login"

// NextParam carries the originally requested path through the login
// redirect.
const NextParam = "next"

// Decision is the outcome of a guard evaluation.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Guard evaluates route access against a set of public routes.
// The zero value guards every route except DefaultPublicRoutes.
type Guard struct {
	loginPath    string
	publicRoutes map[string]bool
}

// DefaultPublicRoutes are reachable without a session.
var DefaultPublicRoutes = []string{"/login", "/register"}

// New creates a guard with the default login path and public routes.
func New() *Guard {
	return NewWithRoutes(LoginPath, DefaultPublicRoutes)
}

// NewWithRoutes creates a guard with a custom login path and public
// route set. The login path is always public.
func NewWithRoutes(loginPath string, publicRoutes []string) *Guard {
	public := make(map[string]bool, len(publicRoutes)+1)
	for _, r := range publicRoutes {
		public[normalize(r)] = true
	}
	public[normalize(loginPath)] = true

	return &Guard{
		loginPath:    normalize(loginPath),
		publicRoutes: public,
	}
}

// Evaluate decides whether the request may proceed.
// Unauthenticated access to a protected path redirects to the login
// route with the requested path preserved in the next parameter.
func (g *Guard) Evaluate(authenticated bool, path string) Decision {
	path = normalize(path)

	if authenticated || g.publicRoutes[path] {
		return Decision{Allow: true}
	}

	return Decision{
		RedirectTo: g.loginPath + "?" + NextParam + "=" + url.QueryEscape(path),
	}
}

// Next extracts the post-login return path from a redirect target.
// Returns "/" when the target carries no usable path.
func Next(redirectTo string) string {
	u, err := url.Parse(redirectTo)
	if err != nil {
		return "/"
	}
	next := u.Query().Get(NextParam)
	if next == "" || !strings.HasPrefix(next, "/") {
		return "/"
	}
	return next
}

func normalize(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}
