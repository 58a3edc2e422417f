package main

import (
	"path/filepath"
	"testing"

	"github.com/opencode-tools/ocwt/internal/git"
)

func TestRelPath(t *testing.T) {
	t.Parallel()

	base := filepath.Join("/", "repo")
	tests := []struct {
		name string
		path string
		want string
	}{
		{"root itself", base, "."},
		{"nested worktree", filepath.Join(base, ".opencode-wt", "feature-x"), filepath.Join(".opencode-wt", "feature-x")},
		{"sibling", filepath.Join("/", "elsewhere"), filepath.Join("..", "elsewhere")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := relPath(base, tt.path); got != tt.want {
				t.Errorf("relPath(%q, %q) = %q, want %q", base, tt.path, got, tt.want)
			}
		})
	}
}

func TestCurrentWorktree(t *testing.T) {
	t.Parallel()

	root := filepath.Join("/", "repo")
	records := []git.Worktree{
		{Path: root, Branch: "main"},
		{Path: filepath.Join(root, ".opencode-wt", "feature-x"), Branch: "feature-x"},
	}

	tests := []struct {
		name string
		dir  string
		want string // branch, "" = nil
	}{
		{"repo root", root, "main"},
		{"subdir of root", filepath.Join(root, "src"), "main"},
		{"worktree root", filepath.Join(root, ".opencode-wt", "feature-x"), "feature-x"},
		{"nested in worktree wins over root", filepath.Join(root, ".opencode-wt", "feature-x", "src"), "feature-x"},
		{"outside any worktree", filepath.Join("/", "tmp"), ""},
		{"prefix but not a child", root + "-other", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := currentWorktree(records, tt.dir)
			if tt.want == "" {
				if got != nil {
					t.Fatalf("expected nil, got %+v", got)
				}
				return
			}
			if got == nil || got.Branch != tt.want {
				t.Fatalf("expected branch %q, got %+v", tt.want, got)
			}
		})
	}
}

func TestDisplayBranch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		wt   git.Worktree
		want string
	}{
		{"branch", git.Worktree{Branch: "feature-x"}, "feature-x"},
		{"detached", git.Worktree{Detached: true}, "(detached)"},
		{"bare", git.Worktree{Bare: true}, "(bare)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := displayBranch(tt.wt); got != tt.want {
				t.Errorf("displayBranch() = %q, want %q", got, tt.want)
			}
		})
	}
}
