package command

import (
	"net/http"
	"strings"
	"testing"
)

func TestSystemCommand_Structure(t *testing.T) {
	cmd := SystemCommand()
	if cmd.Name != "system" {
		t.Errorf("Name = %q, want %q", cmd.Name, "system")
	}

	subNames := make(map[string]bool)
	for _, sub := range cmd.Subcommands {
		subNames[sub.Name] = true
	}
	for _, name := range []string{"version", "ping", "metrics"} {
		if !subNames[name] {
			t.Errorf("missing subcommand: %s", name)
		}
	}
}

func TestSystemVersion(t *testing.T) {
	backend := newMockBackend()
	defer backend.Close()

	tc := newTestCLI(t, backend.URL)

	if err := tc.run("system", "version"); err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.Contains(tc.output(), "version") {
		t.Errorf("version output = %q", tc.output())
	}
}

func TestSystemPing(t *testing.T) {
	backend := newMockBackend()
	defer backend.Close()
	backend.handle("/api/posts/feed", func(w http.ResponseWriter, r *http.Request) {
		// Signed out: the backend answers 401, which still proves
		// reachability.
		errorResponse(w, http.StatusUnauthorized, "authentication required")
	})

	tc := newTestCLI(t, backend.URL)

	if err := tc.run("system", "ping"); err != nil {
		t.Fatalf("ping error = %v", err)
	}
	if !strings.Contains(tc.output(), "reachable") {
		t.Errorf("ping output = %q", tc.output())
	}
}

func TestSystemPing_Unreachable(t *testing.T) {
	backend := newMockBackend()
	url := backend.URL
	backend.Close()

	tc := newTestCLI(t, url)

	err := tc.run("system", "ping")
	if err == nil {
		t.Fatal("expected ping to fail against closed server")
	}
	if !strings.Contains(err.Error(), "unreachable") {
		t.Errorf("error = %v", err)
	}
}

func TestSystemMetrics(t *testing.T) {
	backend := newMockBackend()
	defer backend.Close()
	backend.withAuth("valid-token")

	tc := newTestCLI(t, backend.URL)

	// A login registers request observations worth dumping.
	if err := tc.run("auth", "login", "--email", "ada@example.com", "--password", "hunter22"); err != nil {
		t.Fatalf("login error = %v", err)
	}

	if err := tc.run("system", "metrics"); err != nil {
		t.Fatalf("metrics error = %v", err)
	}
	// The registry is per process run; a fresh run may have nothing
	// observed yet, but the dump itself must succeed.
}
