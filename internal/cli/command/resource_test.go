package command

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/skillshare/skillshare-go/internal/core/domain"
)

func TestResourceCommand_Structure(t *testing.T) {
	cmd := ResourceCommand()
	if cmd.Name != "resource" {
		t.Errorf("Name = %q, want %q", cmd.Name, "resource")
	}
	if len(cmd.Aliases) == 0 || cmd.Aliases[0] != "res" {
		t.Error("expected alias 'res'")
	}

	subNames := make(map[string]bool)
	for _, sub := range cmd.Subcommands {
		subNames[sub.Name] = true
	}
	for _, name := range []string{"list", "search", "get", "create", "update", "delete", "like"} {
		if !subNames[name] {
			t.Errorf("missing subcommand: %s", name)
		}
	}
}

func TestResourceList(t *testing.T) {
	backend := newMockBackend()
	defer backend.Close()
	backend.withAuth("valid-token")
	backend.handle("/api/resources", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, envelope([]domain.Resource{sampleResource()}, 1))
	})

	tc := newTestCLI(t, backend.URL)

	if err := tc.run("auth", "login", "--email", "ada@example.com", "--password", "hunter22"); err != nil {
		t.Fatalf("login error = %v", err)
	}
	if err := tc.run("resource", "list"); err != nil {
		t.Fatalf("resource list error = %v", err)
	}

	out := tc.output()
	if !strings.Contains(out, "Go Concurrency Patterns") {
		t.Errorf("list output missing title:\n%s", out)
	}
	if !strings.Contains(out, "VIDEO") {
		t.Errorf("list output missing type:\n%s", out)
	}
	if !strings.Contains(out, "Page 1 of 1 (1 total)") {
		t.Errorf("list output missing page footer:\n%s", out)
	}
}

func TestResourceList_JSONOutput(t *testing.T) {
	backend := newMockBackend()
	defer backend.Close()
	backend.withAuth("valid-token")
	backend.handle("/api/resources", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, envelope([]domain.Resource{sampleResource()}, 1))
	})

	tc := newTestCLI(t, backend.URL)

	if err := tc.run("auth", "login", "--email", "ada@example.com", "--password", "hunter22"); err != nil {
		t.Fatalf("login error = %v", err)
	}
	if err := tc.run("--output", "json", "resource", "list"); err != nil {
		t.Fatalf("resource list error = %v", err)
	}

	var items []domain.Resource
	if err := json.Unmarshal([]byte(tc.output()), &items); err != nil {
		t.Fatalf("output is not a JSON array: %v\n%s", err, tc.output())
	}
	if len(items) != 1 || items[0].ID != "r1" {
		t.Errorf("items = %+v", items)
	}
}

func TestResourceList_CategoryAndTypeRoutes(t *testing.T) {
	backend := newMockBackend()
	defer backend.Close()
	backend.withAuth("valid-token")

	var paths []string
	backend.handle("/api/resources", func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		jsonResponse(w, http.StatusOK, envelope([]domain.Resource{sampleResource()}, 1))
	})

	tc := newTestCLI(t, backend.URL)

	if err := tc.run("auth", "login", "--email", "ada@example.com", "--password", "hunter22"); err != nil {
		t.Fatalf("login error = %v", err)
	}
	if err := tc.run("resource", "list", "--category", "programming"); err != nil {
		t.Fatalf("list by category error = %v", err)
	}
	if err := tc.run("resource", "list", "--type", "video"); err != nil {
		t.Fatalf("list by type error = %v", err)
	}

	// Category and type are path segments on the backend, not query params.
	want := []string{"/api/resources/category/programming", "/api/resources/type/VIDEO"}
	if len(paths) != 2 || paths[0] != want[0] || paths[1] != want[1] {
		t.Errorf("paths = %v, want %v", paths, want)
	}
}

func TestResourceCreate_RequiresLogin(t *testing.T) {
	backend := newMockBackend()
	defer backend.Close()

	tc := newTestCLI(t, backend.URL)

	err := tc.run("resource", "create", "--title", "T", "--url", "https://example.com")
	if err == nil {
		t.Fatal("expected create to fail signed out")
	}
	if !strings.Contains(err.Error(), "sign in required") {
		t.Errorf("error = %v, want sign-in requirement", err)
	}
}

func TestResourceCreate_SignedIn(t *testing.T) {
	backend := newMockBackend()
	defer backend.Close()
	backend.withAuth("valid-token")
	backend.handle("/api/resources", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer valid-token" {
			errorResponse(w, http.StatusUnauthorized, "missing token")
			return
		}
		var res domain.Resource
		json.NewDecoder(r.Body).Decode(&res)
		res.ID = "r-new"
		jsonResponse(w, http.StatusCreated, res)
	})

	tc := newTestCLI(t, backend.URL)

	if err := tc.run("auth", "login", "--email", "ada@example.com", "--password", "hunter22"); err != nil {
		t.Fatalf("login error = %v", err)
	}

	err := tc.run("resource", "create",
		"--title", "Go Concurrency Patterns",
		"--url", "https://example.com/go-conc",
		"--type", "video")
	if err != nil {
		t.Fatalf("create error = %v", err)
	}
	if !strings.Contains(tc.output(), "Resource r-new published") {
		t.Errorf("create output = %q", tc.output())
	}
}

func TestResourceCreate_InvalidURLFailsWithoutNetwork(t *testing.T) {
	backend := newMockBackend()
	defer backend.Close()
	backend.withAuth("valid-token")
	backend.handle("/api/resources", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			t.Error("create request reached the backend despite invalid input")
		}
		http.NotFound(w, r)
	})

	tc := newTestCLI(t, backend.URL)

	if err := tc.run("auth", "login", "--email", "ada@example.com", "--password", "hunter22"); err != nil {
		t.Fatalf("login error = %v", err)
	}

	err := tc.run("resource", "create", "--title", "T", "--url", "not a url")
	if err == nil {
		t.Fatal("expected create to fail")
	}
	if !strings.Contains(err.Error(), "valid URL") {
		t.Errorf("error = %v, want URL validation message", err)
	}
}

func TestResourceDelete_Force(t *testing.T) {
	backend := newMockBackend()
	defer backend.Close()
	backend.withAuth("valid-token")
	backend.handle("/api/resources/r1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	tc := newTestCLI(t, backend.URL)

	if err := tc.run("auth", "login", "--email", "ada@example.com", "--password", "hunter22"); err != nil {
		t.Fatalf("login error = %v", err)
	}

	if err := tc.run("resource", "delete", "--force", "r1"); err != nil {
		t.Fatalf("delete error = %v", err)
	}
	if !strings.Contains(tc.output(), "Resource r1 deleted") {
		t.Errorf("delete output = %q", tc.output())
	}
}
