package command

import (
	"net/http"
	"strings"
	"testing"

	"github.com/skillshare/skillshare-go/internal/core/domain"
)

func TestUserCommand_Structure(t *testing.T) {
	cmd := UserCommand()
	if cmd.Name != "user" {
		t.Errorf("Name = %q, want %q", cmd.Name, "user")
	}

	subNames := make(map[string]bool)
	for _, sub := range cmd.Subcommands {
		subNames[sub.Name] = true
	}
	for _, name := range []string{"get", "search", "update", "follow", "unfollow", "followers", "following"} {
		if !subNames[name] {
			t.Errorf("missing subcommand: %s", name)
		}
	}
}

func TestUserSearch(t *testing.T) {
	backend := newMockBackend()
	defer backend.Close()
	backend.withAuth("valid-token")
	backend.handle("/api/users/search", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != "ada" {
			t.Errorf("query = %q, want %q", got, "ada")
		}
		jsonResponse(w, http.StatusOK, envelope([]domain.User{sampleUser()}, 1))
	})

	tc := newTestCLI(t, backend.URL)

	if err := tc.run("auth", "login", "--email", "ada@example.com", "--password", "hunter22"); err != nil {
		t.Fatalf("login error = %v", err)
	}
	if err := tc.run("user", "search", "ada"); err != nil {
		t.Fatalf("user search error = %v", err)
	}

	out := tc.output()
	if !strings.Contains(out, "Ada") || !strings.Contains(out, "ada@example.com") {
		t.Errorf("search output = %q", out)
	}
}

func TestUserFollow(t *testing.T) {
	backend := newMockBackend()
	defer backend.Close()
	backend.withAuth("valid-token")
	var followPath string
	backend.handle("/api/users/u2/follow", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		followPath = r.URL.Path
		followed := domain.User{ID: "u2", Name: "Grace", FollowersCount: 1}
		jsonResponse(w, http.StatusOK, followed)
	})

	tc := newTestCLI(t, backend.URL)

	if err := tc.run("auth", "login", "--email", "ada@example.com", "--password", "hunter22"); err != nil {
		t.Fatalf("login error = %v", err)
	}
	if err := tc.run("user", "follow", "u2"); err != nil {
		t.Fatalf("follow error = %v", err)
	}

	// The follower rides in the path: /{userId}/follow/{followerId}.
	if followPath != "/api/users/u2/follow/u1" {
		t.Errorf("follow path = %q, want %q", followPath, "/api/users/u2/follow/u1")
	}
	if !strings.Contains(tc.output(), "Now following u2") {
		t.Errorf("follow output = %q", tc.output())
	}
}

func TestUserUpdate_ValidatesLocally(t *testing.T) {
	backend := newMockBackend()
	defer backend.Close()
	backend.withAuth("valid-token")
	// No profile handler: an invalid update must fail before the request.

	tc := newTestCLI(t, backend.URL)

	if err := tc.run("auth", "login", "--email", "ada@example.com", "--password", "hunter22"); err != nil {
		t.Fatalf("login error = %v", err)
	}

	err := tc.run("user", "update", "--name", "X")
	if err == nil {
		t.Fatal("expected update to fail validation")
	}
	if !strings.Contains(err.Error(), "name must be between 2 and 50 characters") {
		t.Errorf("error = %v", err)
	}
}
