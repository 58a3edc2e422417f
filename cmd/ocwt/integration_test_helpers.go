//go:build integration

package main

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/opencode-tools/ocwt/internal/config"
	"github.com/opencode-tools/ocwt/internal/log"
	"github.com/opencode-tools/ocwt/internal/output"
	"github.com/opencode-tools/ocwt/internal/styles"
)

// testEnv bundles a command context with the buffers it writes to.
type testEnv struct {
	ctx    context.Context
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// testContext builds a context wired like Execute() does, but with
// buffered output, disabled colors and `true` as the editor command.
func testContext(t *testing.T) testEnv {
	t.Helper()

	var stdout, stderr bytes.Buffer
	ctx := context.Background()
	ctx = config.WithConfig(ctx, testConfig())
	ctx = log.WithLogger(ctx, log.New(&stderr, false, false))
	ctx = output.WithPrinter(ctx, &stdout)
	ctx = styles.WithStyles(ctx, styles.New(false))
	return testEnv{ctx: ctx, stdout: &stdout, stderr: &stderr}
}

func testConfig() config.Config {
	return config.Config{
		WorktreeDir: config.DefaultWorktreeDir,
		Editor:      "true", // exits 0 immediately
		Color:       "never",
	}
}

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// runTestGit runs a git command in dir and fails the test on error.
func runTestGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

// setupTestRepo creates a git repo with an initial commit on main.
// Returns the absolute repo path with symlinks resolved.
func setupTestRepo(t *testing.T) string {
	t.Helper()

	repoPath := resolvePath(t, t.TempDir())

	runTestGit(t, repoPath, "init", "-b", "main")
	runTestGit(t, repoPath, "config", "user.email", "test@test.com")
	runTestGit(t, repoPath, "config", "user.name", "Test User")
	runTestGit(t, repoPath, "config", "commit.gpgsign", "false")

	commitFile(t, repoPath, "README.md", "# test\n", "Initial commit")

	return repoPath
}

// setupClonedRepo creates an origin repo and a clone of it.
// Returns (origin, clone) paths.
func setupClonedRepo(t *testing.T) (string, string) {
	t.Helper()

	origin := setupTestRepo(t)

	cloneParent := resolvePath(t, t.TempDir())
	clonePath := filepath.Join(cloneParent, "clone")
	runTestGit(t, cloneParent, "clone", origin, clonePath)
	runTestGit(t, clonePath, "config", "user.email", "test@test.com")
	runTestGit(t, clonePath, "config", "user.name", "Test User")
	runTestGit(t, clonePath, "config", "commit.gpgsign", "false")

	return origin, clonePath
}

// commitFile writes a file and commits it.
func commitFile(t *testing.T, repoPath, name, content, message string) {
	t.Helper()

	path := filepath.Join(repoPath, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create parent dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	runTestGit(t, repoPath, "add", name)
	runTestGit(t, repoPath, "commit", "-m", message)
}

// addTestWorktree creates a worktree with a new branch via plain git.
// The reserved directory is committed to .gitignore first so the main
// checkout stays clean, matching what runAdd produces.
func addTestWorktree(t *testing.T, repoPath, branch string) string {
	t.Helper()

	if _, err := os.Stat(filepath.Join(repoPath, ".gitignore")); os.IsNotExist(err) {
		commitFile(t, repoPath, ".gitignore", config.DefaultWorktreeDir+"/\n", "Ignore worktree directory")
	}

	path := filepath.Join(repoPath, config.DefaultWorktreeDir, branch)
	runTestGit(t, repoPath, "worktree", "add", "-b", branch, path)
	return path
}
