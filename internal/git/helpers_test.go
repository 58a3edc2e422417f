package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// runTestGit runs a git command in dir, failing the test on error.
func runTestGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

// setupTestRepo creates a git repo with an initial commit and returns
// its path (with symlinks resolved, for macOS temp dirs).
func setupTestRepo(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}
	repo := filepath.Join(dir, "repo")
	if err := os.MkdirAll(repo, 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	runTestGit(t, repo, "init", "-b", "main")
	runTestGit(t, repo, "config", "user.email", "test@test.com")
	runTestGit(t, repo, "config", "user.name", "Test User")
	runTestGit(t, repo, "config", "commit.gpgsign", "false")

	if err := os.WriteFile(filepath.Join(repo, "README.md"), []byte("# repo\n"), 0644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}
	runTestGit(t, repo, "add", "README.md")
	runTestGit(t, repo, "commit", "-m", "Initial commit")

	return repo
}

// setupClonedRepo creates an origin repo and a clone of it, so the
// clone has a configured upstream for main. Returns (origin, clone).
func setupClonedRepo(t *testing.T) (string, string) {
	t.Helper()

	origin := setupTestRepo(t)

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}
	clone := filepath.Join(dir, "clone")
	runTestGit(t, dir, "clone", origin, clone)
	runTestGit(t, clone, "config", "user.email", "test@test.com")
	runTestGit(t, clone, "config", "user.name", "Test User")
	runTestGit(t, clone, "config", "commit.gpgsign", "false")

	return origin, clone
}

// commitFile adds a commit touching name in dir.
func commitFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	runTestGit(t, dir, "add", name)
	runTestGit(t, dir, "commit", "-m", "Add "+name)
}

func testCtx() context.Context {
	return context.Background()
}
