package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFrom_Missing(t *testing.T) {
	t.Parallel()
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom(missing) = %v, want nil", err)
	}
	if cfg != Default() {
		t.Errorf("LoadFrom(missing) = %+v, want defaults", cfg)
	}
}

func TestLoadFrom_Partial(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `editor = "nvim"`)
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom = %v, want nil", err)
	}
	if cfg.Editor != "nvim" {
		t.Errorf("Editor = %q, want nvim", cfg.Editor)
	}
	if cfg.WorktreeDir != DefaultWorktreeDir {
		t.Errorf("WorktreeDir = %q, want default %q", cfg.WorktreeDir, DefaultWorktreeDir)
	}
	if cfg.Color != "auto" {
		t.Errorf("Color = %q, want auto", cfg.Color)
	}
}

func TestLoadFrom_Full(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
worktree_dir = ".worktrees"
editor = "code"
color = "never"
`)
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom = %v, want nil", err)
	}
	want := Config{WorktreeDir: ".worktrees", Editor: "code", Color: "never"}
	if cfg != want {
		t.Errorf("LoadFrom = %+v, want %+v", cfg, want)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `worktree_dir = [broken`)
	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom(invalid toml) = nil, want error")
	}
}

func TestLoadFrom_Validation(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		content string
	}{
		{"absolute worktree dir", `worktree_dir = "/tmp/wt"`},
		{"nested worktree dir", `worktree_dir = "a/b"`},
		{"bad color", `color = "colorful"`},
		{"empty editor", `editor = ""`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeConfig(t, tc.content)
			if _, err := LoadFrom(path); err == nil {
				t.Errorf("LoadFrom(%s) = nil, want error", tc.name)
			}
		})
	}
}
