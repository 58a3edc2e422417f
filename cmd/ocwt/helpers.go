package main

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/opencode-tools/ocwt/internal/git"
	"github.com/opencode-tools/ocwt/internal/log"
	"github.com/opencode-tools/ocwt/internal/output"
	"github.com/opencode-tools/ocwt/internal/session"
)

// Sentinel errors shared across commands.
var (
	errWorktreeNotFound = errors.New("worktree not found")
	errMainWorktree     = errors.New("cannot remove the main worktree")
	errDirtyWorktree    = errors.New("worktree has uncommitted changes")
)

// relPath returns path relative to base, falling back to the absolute
// path when no relative form exists. The base itself renders as ".".
func relPath(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return rel
}

// currentWorktree returns the worktree record containing dir, or nil.
// When records nest (a worktree directory inside the main checkout) the
// longest matching path wins.
func currentWorktree(records []git.Worktree, dir string) *git.Worktree {
	dir = filepath.Clean(dir)
	var best *git.Worktree
	for i := range records {
		p := filepath.Clean(records[i].Path)
		if dir != p && !strings.HasPrefix(dir, p+string(filepath.Separator)) {
			continue
		}
		if best == nil || len(p) > len(filepath.Clean(best.Path)) {
			best = &records[i]
		}
	}
	return best
}

// launchSession starts a detached editor session in path. Launch
// failures are not fatal: the worktree operation already succeeded, so
// the user just gets told how to open it by hand.
func launchSession(ctx context.Context, editor, path string) {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	launcher := session.New(editor)
	if err := launcher.Launch(path); err != nil {
		l.Warnf("failed to launch %s: %v", editor, err)
		l.Printf("Open manually with: %s\n", launcher.Fallback(path))
		return
	}
	out.Printf("→ Opening %s in %s\n", editor, path)
}
