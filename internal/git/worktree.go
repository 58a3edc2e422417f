package git

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Worktree is one entry from `git worktree list --porcelain`.
type Worktree struct {
	Path        string // absolute path, primary key
	Head        string // full commit hash
	Branch      string // short name; empty when detached or bare
	Bare        bool
	Detached    bool
	Locked      bool
	LockReason  string
	Prunable    bool
	PruneReason string
}

// ShortHead returns the abbreviated commit hash.
func (w Worktree) ShortHead() string {
	if len(w.Head) > 7 {
		return w.Head[:7]
	}
	return w.Head
}

// IsMain reports whether this is the main checkout at the repository
// root.
func (w Worktree) IsMain(root string) bool {
	return filepath.Clean(w.Path) == filepath.Clean(root)
}

// ParseWorktreeList decodes the porcelain worktree listing. A new
// record starts at each "worktree <path>" line; unknown attribute
// lines are ignored for forward compatibility.
func ParseWorktreeList(output []byte) []Worktree {
	var worktrees []Worktree
	var current Worktree

	flush := func() {
		if current.Path != "" {
			worktrees = append(worktrees, current)
		}
		current = Worktree{}
	}

	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case strings.HasPrefix(line, "worktree "):
			flush()
			current.Path = strings.TrimPrefix(line, "worktree ")
		case strings.HasPrefix(line, "HEAD "):
			current.Head = strings.TrimPrefix(line, "HEAD ")
		case strings.HasPrefix(line, "branch "):
			ref := strings.TrimPrefix(line, "branch ")
			current.Branch = strings.TrimPrefix(ref, "refs/heads/")
		case line == "bare":
			current.Bare = true
		case line == "detached":
			current.Detached = true
		case line == "locked" || strings.HasPrefix(line, "locked "):
			current.Locked = true
			current.LockReason = strings.TrimPrefix(strings.TrimPrefix(line, "locked"), " ")
		case line == "prunable" || strings.HasPrefix(line, "prunable "):
			current.Prunable = true
			current.PruneReason = strings.TrimPrefix(strings.TrimPrefix(line, "prunable"), " ")
		}
	}
	flush()

	return worktrees
}

// ListWorktrees returns all worktrees known to the repository
// containing dir, in the order git reports them (main checkout
// first).
func ListWorktrees(ctx context.Context, dir string) ([]Worktree, error) {
	output, err := outputGit(ctx, dir, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to list worktrees: %v", err)
	}
	return ParseWorktreeList(output), nil
}

// FindWorktree returns the worktree checked out on branch, or nil.
func FindWorktree(worktrees []Worktree, branch string) *Worktree {
	for i := range worktrees {
		if worktrees[i].Branch == branch && worktrees[i].Branch != "" {
			return &worktrees[i]
		}
	}
	return nil
}

// AddWorktree checks out an existing local branch into a new linked
// worktree at path.
func AddWorktree(ctx context.Context, root, path, branch string) error {
	return runGit(ctx, root, "worktree", "add", path, branch)
}

// AddWorktreeTrack creates a new local branch tracking
// origin/<branch>, checked out into a new linked worktree at path.
func AddWorktreeTrack(ctx context.Context, root, path, branch string) error {
	return runGit(ctx, root, "worktree", "add", "--track", "-b", branch, path, "origin/"+branch)
}

// AddWorktreeNew creates a new branch (from base, or HEAD when base
// is empty) checked out into a new linked worktree at path.
func AddWorktreeNew(ctx context.Context, root, path, branch, base string) error {
	args := []string{"worktree", "add", "-b", branch, path}
	if base != "" {
		args = append(args, base)
	}
	return runGit(ctx, root, args...)
}

// RemoveWorktree removes the linked worktree at path.
func RemoveWorktree(ctx context.Context, root, path string, force bool) error {
	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, path)
	return runGit(ctx, root, args...)
}
