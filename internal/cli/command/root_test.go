package command

import (
	"strings"
	"testing"
)

func TestApp_Structure(t *testing.T) {
	app := App()
	if app.Name != "skillshare-cli" {
		t.Errorf("Name = %q, want %q", app.Name, "skillshare-cli")
	}

	names := make(map[string]bool)
	for _, cmd := range app.Commands {
		names[cmd.Name] = true
	}

	required := []string{"auth", "resource", "post", "plan", "user", "notification", "config", "system"}
	for _, name := range required {
		if !names[name] {
			t.Errorf("missing command: %s", name)
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	flagNames := make(map[string]bool)
	for _, f := range globalFlags() {
		flagNames[f.Names()[0]] = true
	}

	for _, name := range []string{"config", "server", "output", "wide", "no-headers", "verbose"} {
		if !flagNames[name] {
			t.Errorf("missing global flag: %s", name)
		}
	}
}

func TestTruncateID(t *testing.T) {
	if got := truncateID("short-id"); got != "short-id" {
		t.Errorf("truncateID(short) = %q", got)
	}
	long := "0123456789abcdef0123456789abcdef"
	if got := truncateID(long); got != "0123456789abc..." {
		t.Errorf("truncateID(long) = %q", got)
	}
}

func TestConfigShowAndPath(t *testing.T) {
	backend := newMockBackend()
	defer backend.Close()

	tc := newTestCLI(t, backend.URL)

	if err := tc.run("config", "show"); err != nil {
		t.Fatalf("config show error = %v", err)
	}
	if !strings.Contains(tc.output(), backend.URL) {
		t.Errorf("config show output missing server URL:\n%s", tc.output())
	}

	if err := tc.run("config", "path"); err != nil {
		t.Fatalf("config path error = %v", err)
	}
	if !strings.Contains(tc.output(), tc.configPath) {
		t.Errorf("config path output = %q, want %q", tc.output(), tc.configPath)
	}
}

func TestConfigSet(t *testing.T) {
	backend := newMockBackend()
	defer backend.Close()

	tc := newTestCLI(t, backend.URL)

	if err := tc.run("config", "set", "output.format", "json"); err != nil {
		t.Fatalf("config set error = %v", err)
	}
	if !strings.Contains(tc.output(), "Set output.format = json") {
		t.Errorf("config set output = %q", tc.output())
	}

	// The written value becomes the effective default.
	if err := tc.run("config", "show"); err != nil {
		t.Fatalf("config show error = %v", err)
	}
	if !strings.Contains(tc.output(), `"Format": "json"`) {
		t.Errorf("config show after set should render JSON:\n%s", tc.output())
	}

	if err := tc.run("config", "set", "bogus.key", "x"); err == nil {
		t.Error("unknown key should fail")
	}
}
