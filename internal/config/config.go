// Package config loads the ocwt configuration file.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type ctxKey struct{}

// WithConfig attaches the configuration to the context.
func WithConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the configuration from context.
// Returns Default() if none is attached.
func FromContext(ctx context.Context) Config {
	if cfg, ok := ctx.Value(ctxKey{}).(Config); ok {
		return cfg
	}
	return Default()
}

// DefaultWorktreeDir is the reserved directory (relative to the repo
// root) that holds all linked worktrees.
const DefaultWorktreeDir = ".opencode-wt"

// DefaultEditor is the companion session command launched in new
// worktrees.
const DefaultEditor = "opencode"

// Config holds the ocwt configuration.
type Config struct {
	WorktreeDir string `toml:"worktree_dir"` // reserved directory name inside the repo
	Editor      string `toml:"editor"`       // session command, invoked as <editor> <path>
	Color       string `toml:"color"`        // "auto", "always", or "never"
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		WorktreeDir: DefaultWorktreeDir,
		Editor:      DefaultEditor,
		Color:       "auto",
	}
}

// configPath returns the path to the config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ocwt", "config.toml"), nil
}

// Load reads config from ~/.config/ocwt/config.toml.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from an explicit path. Missing keys keep
// their defaults.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("invalid config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Default(), fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.WorktreeDir == "" {
		return fmt.Errorf("worktree_dir must not be empty")
	}
	if filepath.IsAbs(c.WorktreeDir) || c.WorktreeDir != filepath.Base(c.WorktreeDir) {
		return fmt.Errorf("worktree_dir must be a plain directory name, got %q", c.WorktreeDir)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always, or never, got %q", c.Color)
	}
	if c.Editor == "" {
		return fmt.Errorf("editor must not be empty")
	}
	return nil
}
