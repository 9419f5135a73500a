package guard

import "testing"

func TestEvaluate(t *testing.T) {
	g := New()

	tests := []struct {
		name          string
		authenticated bool
		path          string
		wantAllow     bool
		wantRedirect  string
	}{
		{"authenticated protected", true, "/feed", true, ""},
		{"authenticated public", true, "/login", true, ""},
		{"anonymous public login", false, "/login", true, ""},
		{"anonymous public register", false, "/register", true, ""},
		{"anonymous protected", false, "/feed", false, "/login?next=%2Ffeed"},
		{"anonymous nested path", false, "/plans/42", false, "/login?next=%2Fplans%2F42"},
		{"trailing slash normalized", false, "/feed/", false, "/login?next=%2Ffeed"},
		{"empty path", false, "", false, "/login?next=%2F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := g.Evaluate(tt.authenticated, tt.path)
			if d.Allow != tt.wantAllow {
				t.Errorf("Allow = %v, want %v", d.Allow, tt.wantAllow)
			}
			if d.RedirectTo != tt.wantRedirect {
				t.Errorf("RedirectTo = %q, want %q", d.RedirectTo, tt.wantRedirect)
			}
		})
	}
}

func TestEvaluate_CustomRoutes(t *testing.T) {
	g := NewWithRoutes("/signin", []string{"/about"})

	if d := g.Evaluate(false, "/about"); !d.Allow {
		t.Error("custom public route should be allowed")
	}
	if d := g.Evaluate(false, "/signin"); !d.Allow {
		t.Error("login path itself must always be public")
	}
	if d := g.Evaluate(false, "/feed"); d.RedirectTo != "/signin?next=%2Ffeed" {
		t.Errorf("RedirectTo = %q", d.RedirectTo)
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"round trip", "/login?next=%2Fplans%2F42", "/plans/42"},
		{"missing param", "/login", "/"},
		{"non-path value rejected", "/login?next=https%3A%2F%2Fevil.example", "/"},
		{"unparsable", "://", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Next(tt.in); got != tt.want {
				t.Errorf("Next(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
