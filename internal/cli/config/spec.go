// Package config defines the CLI configuration structure.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// CLIConfig is the configuration for skillshare-cli.
type CLIConfig struct {
	Server  ServerConfig  `koanf:"server" yaml:"server"`
	Output  OutputConfig  `koanf:"output" yaml:"output"`
	State   StateConfig   `koanf:"state" yaml:"state"`
	Logging LoggingConfig `koanf:"logging" yaml:"logging"`
}

// ServerConfig holds backend connection settings.
type ServerConfig struct {
	// URL is the backend base URL.
	URL string `koanf:"url" yaml:"url"`
	// CAFile is an optional PEM bundle of extra root CAs trusted for
	// the backend. System roots are always included.
	CAFile string `koanf:"ca_file" yaml:"ca_file"`
}

// OutputConfig holds output preferences.
type OutputConfig struct {
	// Format is the default output format (table, json, yaml).
	Format string `koanf:"format" yaml:"format"`
	// Color enables ANSI colors in table output.
	Color bool `koanf:"color" yaml:"color"`
	// PageSize is the default page size for list commands.
	PageSize int `koanf:"page_size" yaml:"page_size"`
}

// StateConfig holds local state settings.
type StateConfig struct {
	// Dir is the Badger state directory.
	Dir string `koanf:"dir" yaml:"dir"`
	// KeyFile is the master key file for token encryption.
	KeyFile string `koanf:"key_file" yaml:"key_file"`
	// CacheTTL bounds the staleness of cached resource pages.
	CacheTTL time.Duration `koanf:"cache_ttl" yaml:"cache_ttl"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `koanf:"level" yaml:"level"`
	Format string `koanf:"format" yaml:"format"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	home := configHome()
	return &CLIConfig{
		Server: ServerConfig{
			URL: "http://localhost:8080",
		},
		Output: OutputConfig{
			Format:   "table",
			Color:    true,
			PageSize: 20,
		},
		State: StateConfig{
			Dir:      filepath.Join(home, "state"),
			KeyFile:  filepath.Join(home, "state.key"),
			CacheTTL: 2 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// DefaultConfigPath returns the default CLI config file path.
func DefaultConfigPath() string {
	return filepath.Join(configHome(), "cli.yaml")
}

func configHome() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".skillshare")
}
