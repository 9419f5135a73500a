package command

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	cliconfig "github.com/skillshare/skillshare-go/internal/cli/config"
	"github.com/skillshare/skillshare-go/internal/core/domain"
)

// mockBackend is a test HTTP server with prefix-matched handlers.
type mockBackend struct {
	*httptest.Server
	handlers map[string]http.HandlerFunc
}

func newMockBackend() *mockBackend {
	m := &mockBackend{handlers: make(map[string]http.HandlerFunc)}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Longest matching prefix wins so overlapping patterns behave
		// predictably.
		var best string
		for pattern := range m.handlers {
			if strings.HasPrefix(r.URL.Path, pattern) && len(pattern) > len(best) {
				best = pattern
			}
		}
		if best != "" {
			m.handlers[best](w, r)
			return
		}
		http.NotFound(w, r)
	}))
	return m
}

func (m *mockBackend) handle(pattern string, handler http.HandlerFunc) {
	m.handlers[pattern] = handler
}

func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResponse(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]any{"status": status, "message": message})
}

// testCLI wires a full application against a mock backend with state in
// a temp directory. Each run shares the same state dir, so later runs
// see tokens persisted by earlier ones.
type testCLI struct {
	t          *testing.T
	configPath string
	out        *bytes.Buffer
}

func newTestCLI(t *testing.T, backendURL string) *testCLI {
	t.Helper()

	dir := t.TempDir()
	cfg := cliconfig.Default()
	cfg.Server.URL = backendURL
	cfg.State.Dir = filepath.Join(dir, "state")
	cfg.State.KeyFile = filepath.Join(dir, "state.key")
	cfg.State.CacheTTL = time.Minute
	cfg.Logging.Level = "error"

	configPath := filepath.Join(dir, "cli.yaml")
	if err := cliconfig.Save(cfg, configPath); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	return &testCLI{t: t, configPath: configPath, out: &bytes.Buffer{}}
}

// run executes one command invocation with a fresh app instance.
func (tc *testCLI) run(args ...string) error {
	tc.t.Helper()
	tc.out.Reset()

	app := App()
	app.Writer = tc.out
	app.ErrWriter = tc.out

	full := append([]string{"skillshare-cli", "--config", tc.configPath}, args...)
	return app.Run(full)
}

func (tc *testCLI) output() string {
	return tc.out.String()
}

// Sample backend data.

func sampleUser() domain.User {
	return domain.User{
		ID:             "u1",
		Name:           "Ada",
		Email:          "ada@example.com",
		FollowersCount: 3,
		FollowingCount: 2,
	}
}

func sampleResource() domain.Resource {
	owner := sampleUser()
	return domain.Resource{
		ID:           "r1",
		Title:        "Go Concurrency Patterns",
		URL:          "https://example.com/go-conc",
		ResourceType: domain.ResourceVideo,
		Owner:        &owner,
		LikeCount:    5,
	}
}

func samplePost() domain.Post {
	author := sampleUser()
	return domain.Post{
		ID:             "p1",
		Title:          "30 days of SQL",
		Content:        "Join me for a month of SQL practice.",
		Author:         &author,
		LikeCount:      4,
		CommitCount:    2,
		CommitmentGoal: 10,
		CreatedAt:      "2026-08-30T10:00:00",
	}
}

func samplePlan() domain.LearningPlan {
	owner := sampleUser()
	return domain.LearningPlan{
		ID:    "pl1",
		Title: "Learn Rust",
		Owner: &owner,
		Milestones: []domain.Milestone{
			{ID: "m1", Title: "Read the book", Completed: true},
			{ID: "m2", Title: "Build a CLI"},
		},
	}
}

// envelope mimics the backend's paged response shape.
func envelope(items any, total int) map[string]any {
	return map[string]any{
		"content":       items,
		"number":        0,
		"size":          20,
		"totalElements": total,
		"totalPages":    1,
		"last":          true,
	}
}

// withAuth registers login and validate handlers so commands behind the
// route guard can sign in first.
func (m *mockBackend) withAuth(token string) {
	m.handle("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, domain.AuthResponse{Token: token, User: sampleUser()})
	})
	m.handle("/api/auth/validate", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			errorResponse(w, http.StatusUnauthorized, "invalid token")
			return
		}
		jsonResponse(w, http.StatusOK, sampleUser())
	})
}
