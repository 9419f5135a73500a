package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.URL != "http://localhost:8080" {
		t.Errorf("Server.URL = %q", cfg.Server.URL)
	}
	if cfg.Output.Format != "table" {
		t.Errorf("Output.Format = %q", cfg.Output.Format)
	}
	if cfg.Output.PageSize != 20 {
		t.Errorf("Output.PageSize = %d", cfg.Output.PageSize)
	}
	if cfg.State.CacheTTL != 2*time.Minute {
		t.Errorf("State.CacheTTL = %v", cfg.State.CacheTTL)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.yaml")
	content := "server:\n  url: https://api.example.com\noutput:\n  format: json\n  page_size: 50\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.URL != "https://api.example.com" {
		t.Errorf("Server.URL = %q", cfg.Server.URL)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q", cfg.Output.Format)
	}
	if cfg.Output.PageSize != 50 {
		t.Errorf("Output.PageSize = %d", cfg.Output.PageSize)
	}
	// Unset values keep their defaults.
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}

func TestLoad_FlagsOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.yaml")
	if err := os.WriteFile(path, []byte("output:\n  format: json\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path, map[string]any{"output.format": "yaml"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("Output.Format = %q, flag should win", cfg.Output.Format)
	}
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil); err == nil {
		t.Error("explicit missing config file should fail")
	}
}

func TestSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.yaml")
	if err := os.WriteFile(path, []byte("server:\n  url: https://api.example.com\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Set(path, "output.page_size", "50")
	if err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if cfg.Output.PageSize != 50 {
		t.Errorf("Output.PageSize = %d", cfg.Output.PageSize)
	}
	// Existing file values survive the write.
	if cfg.Server.URL != "https://api.example.com" {
		t.Errorf("Server.URL = %q", cfg.Server.URL)
	}

	loaded, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Output.PageSize != 50 {
		t.Errorf("Output.PageSize = %d after reload", loaded.Output.PageSize)
	}
}

func TestSet_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.yaml")

	cfg, err := Set(path, "output.format", "json")
	if err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q", cfg.Output.Format)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}

func TestSet_UnknownKey(t *testing.T) {
	if _, err := Set(filepath.Join(t.TempDir(), "cli.yaml"), "nope.bogus", "x"); err == nil {
		t.Error("unknown key should fail")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.yaml")

	cfg := Default()
	cfg.Server.URL = "https://saved.example.com"
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("config file mode = %o, want 0600", info.Mode().Perm())
	}

	loaded, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Server.URL != "https://saved.example.com" {
		t.Errorf("Server.URL = %q after round trip", loaded.Server.URL)
	}
}
