// Package config provides CLI configuration for SkillShare.
//
// This package defines CLI-specific configuration:
//
//   - spec.go: CLIConfig struct (~/.skillshare/cli.yaml)
//   - loader.go: Configuration loading and merging
//
// Configuration resolves with priority Flag > Env (SKILLSHARE_*) >
// File > Default, through the shared confloader.
package config
