package git

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrGitNotFound indicates git is not installed or not in PATH.
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// ErrNotARepository indicates the working directory is not inside a
// git repository.
var ErrNotARepository = fmt.Errorf("not inside a git repository")

// CheckGit verifies that git is available in PATH.
func CheckGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return ErrGitNotFound
	}
	return nil
}

// RepoRoot returns the absolute path of the main worktree's top-level
// directory for dir. Resolved through the common git dir so it points
// at the main checkout even when dir is inside a linked worktree. For
// a bare repository the common dir is the repository itself.
// Returns ErrNotARepository when dir is not inside a repository.
func RepoRoot(ctx context.Context, dir string) (string, error) {
	output, err := outputGit(ctx, dir, "rev-parse", "--path-format=absolute", "--git-common-dir")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotARepository, err)
	}
	commonDir := strings.TrimSpace(string(output))
	if filepath.Base(commonDir) == ".git" {
		return filepath.Dir(commonDir), nil
	}
	return commonDir, nil
}

// CurrentBranch returns the current branch name for the checkout at
// path, or "" when HEAD is detached.
func CurrentBranch(ctx context.Context, path string) (string, error) {
	output, err := outputGit(ctx, path, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get branch: %v", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// ValidBranchName reports whether name is a well-formed branch name.
func ValidBranchName(ctx context.Context, name string) bool {
	if name == "" {
		return false
	}
	return runGit(ctx, "", "check-ref-format", "--branch", name) == nil
}

// LocalBranchExists checks if a local branch exists in the repository
// at root.
func LocalBranchExists(ctx context.Context, root, branch string) bool {
	return runGit(ctx, root, "rev-parse", "--verify", "--quiet", "refs/heads/"+branch) == nil
}

// RemoteBranchExists checks if origin/<branch> exists in the
// repository at root. Only already-fetched remote refs are consulted;
// no network access happens here.
func RemoteBranchExists(ctx context.Context, root, branch string) bool {
	return runGit(ctx, root, "rev-parse", "--verify", "--quiet", "refs/remotes/origin/"+branch) == nil
}

// DeleteBranch deletes a local branch. A safe delete (force=false)
// fails if the branch is not fully merged.
func DeleteBranch(ctx context.Context, root, branch string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	if err := runGit(ctx, root, "branch", flag, branch); err != nil {
		return fmt.Errorf("failed to delete branch %s: %v", branch, err)
	}
	return nil
}

// Fetch updates all refs from origin for the repository at root.
func Fetch(ctx context.Context, root string) error {
	return runGit(ctx, root, "fetch", "origin")
}

// PullFastForward runs a fast-forward-only pull in the checkout at
// path. It fails rather than creating a merge commit when local and
// remote history have diverged.
func PullFastForward(ctx context.Context, path string) error {
	return runGit(ctx, path, "pull", "--ff-only")
}
