// Package config defines the CLI configuration structure.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/skillshare/skillshare-go/internal/infra/confloader"
)

// Load resolves CLI configuration from file, environment and flag
// overrides. A missing default config file is not an error; an
// explicitly named one must exist.
func Load(path string, flags map[string]any) (*CLIConfig, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
		if _, err := os.Stat(path); os.IsNotExist(err) {
			path = ""
		}
	}

	cfg := Default()

	l := confloader.NewLoader(confloader.WithConfigFile(path))
	if err := l.Load(cfg); err != nil {
		if explicit {
			return nil, err
		}
		return nil, fmt.Errorf("load config: %w", err)
	}

	if len(flags) > 0 {
		if err := l.LoadMap(flags); err != nil {
			return nil, fmt.Errorf("apply flags: %w", err)
		}
		if err := l.Unmarshal(cfg); err != nil {
			return nil, fmt.Errorf("apply flags: %w", err)
		}
	}

	return cfg, nil
}

// settableKeys lists the dotted keys accepted by Set.
var settableKeys = map[string]bool{
	"server.url":       true,
	"server.ca_file":   true,
	"output.format":    true,
	"output.color":     true,
	"output.page_size": true,
	"state.dir":        true,
	"state.key_file":   true,
	"state.cache_ttl":  true,
	"logging.level":    true,
	"logging.format":   true,
}

// Set applies a single dotted key (e.g. "output.format") on top of the
// existing config file and writes the result back. Environment and flag
// overrides are deliberately not baked into the file.
func Set(path, key, value string) (*CLIConfig, error) {
	if !settableKeys[key] {
		return nil, fmt.Errorf("unknown config key %q", key)
	}
	if path == "" {
		path = DefaultConfigPath()
	}

	cfg := Default()
	l := confloader.NewLoader()
	if _, err := os.Stat(path); err == nil {
		if err := l.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := l.LoadMap(map[string]any{key: value}); err != nil {
		return nil, err
	}
	if err := l.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("apply %s: %w", key, err)
	}

	if err := Save(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML with 0600 permissions.
func Save(cfg *CLIConfig, path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
