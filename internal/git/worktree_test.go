package git

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestParseWorktreeList(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"worktree /home/user/project",
		"HEAD abcdef1234567890abcdef1234567890abcdef12",
		"branch refs/heads/main",
		"",
		"worktree /home/user/project/.opencode-wt/feature-x",
		"HEAD 1234567890abcdef1234567890abcdef12345678",
		"branch refs/heads/feature-x",
		"",
		"worktree /home/user/project/.opencode-wt/hotfix",
		"HEAD fedcba0987654321fedcba0987654321fedcba09",
		"detached",
		"",
	}, "\n")

	worktrees := ParseWorktreeList([]byte(input))
	if len(worktrees) != 3 {
		t.Fatalf("got %d worktrees, want 3", len(worktrees))
	}

	main := worktrees[0]
	if main.Path != "/home/user/project" {
		t.Errorf("main path = %q", main.Path)
	}
	if main.Branch != "main" {
		t.Errorf("main branch = %q, want main", main.Branch)
	}
	if main.Head != "abcdef1234567890abcdef1234567890abcdef12" {
		t.Errorf("main head = %q", main.Head)
	}

	feature := worktrees[1]
	if feature.Branch != "feature-x" || feature.Detached {
		t.Errorf("feature = %+v, want branch feature-x, not detached", feature)
	}

	detached := worktrees[2]
	if !detached.Detached {
		t.Error("third record should be detached")
	}
	if detached.Branch != "" {
		t.Errorf("detached branch = %q, want empty", detached.Branch)
	}
}

func TestParseWorktreeList_Flags(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"worktree /repos/bare.git",
		"bare",
		"",
		"worktree /repos/locked-wt",
		"HEAD 1111111111111111111111111111111111111111",
		"branch refs/heads/locked-branch",
		"locked reason why it is locked",
		"",
		"worktree /repos/locked-silent",
		"HEAD 2222222222222222222222222222222222222222",
		"branch refs/heads/other",
		"locked",
		"",
		"worktree /repos/gone",
		"HEAD 3333333333333333333333333333333333333333",
		"detached",
		"prunable gitdir file points to non-existent location",
	}, "\n")

	worktrees := ParseWorktreeList([]byte(input))
	if len(worktrees) != 4 {
		t.Fatalf("got %d worktrees, want 4", len(worktrees))
	}

	if !worktrees[0].Bare {
		t.Error("first record should be bare")
	}
	if !worktrees[1].Locked || worktrees[1].LockReason != "reason why it is locked" {
		t.Errorf("locked record = %+v", worktrees[1])
	}
	if !worktrees[2].Locked || worktrees[2].LockReason != "" {
		t.Errorf("silently locked record = %+v", worktrees[2])
	}
	if !worktrees[3].Prunable || worktrees[3].PruneReason != "gitdir file points to non-existent location" {
		t.Errorf("prunable record = %+v", worktrees[3])
	}
}

func TestParseWorktreeList_PathCount(t *testing.T) {
	t.Parallel()

	// One record per "worktree" marker, whatever else the block holds.
	cases := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"single no trailing newline", "worktree /a\nHEAD 1111\nbranch refs/heads/x", 1},
		{"missing blank separators", "worktree /a\nHEAD 1111\nworktree /b\nHEAD 2222", 2},
		{"unknown lines ignored", "worktree /a\nHEAD 1111\nfuture-field value\n", 1},
		{"crlf", "worktree /a\r\nHEAD 1111\r\nbranch refs/heads/x\r\n", 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ParseWorktreeList([]byte(tc.input))
			if len(got) != tc.want {
				t.Errorf("got %d records, want %d", len(got), tc.want)
			}
		})
	}
}

func TestShortHead(t *testing.T) {
	t.Parallel()
	w := Worktree{Head: "abcdef1234567890"}
	if got := w.ShortHead(); got != "abcdef1" {
		t.Errorf("ShortHead = %q, want abcdef1", got)
	}
	w = Worktree{Head: "abc"}
	if got := w.ShortHead(); got != "abc" {
		t.Errorf("ShortHead = %q, want abc", got)
	}
}

func TestIsMain(t *testing.T) {
	t.Parallel()
	w := Worktree{Path: "/home/user/project/"}
	if !w.IsMain("/home/user/project") {
		t.Error("IsMain should ignore trailing separators")
	}
	if w.IsMain("/home/user/other") {
		t.Error("IsMain matched a different root")
	}
}

func TestFindWorktree(t *testing.T) {
	t.Parallel()
	worktrees := []Worktree{
		{Path: "/a", Branch: "main"},
		{Path: "/b", Branch: "feature-x"},
		{Path: "/c", Detached: true},
	}
	if got := FindWorktree(worktrees, "feature-x"); got == nil || got.Path != "/b" {
		t.Errorf("FindWorktree(feature-x) = %+v, want /b", got)
	}
	if got := FindWorktree(worktrees, "missing"); got != nil {
		t.Errorf("FindWorktree(missing) = %+v, want nil", got)
	}
	// A detached record has no branch and must never match.
	if got := FindWorktree(worktrees, ""); got != nil {
		t.Errorf("FindWorktree(\"\") = %+v, want nil", got)
	}
}

func TestListWorktrees(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t)
	ctx := testCtx()

	wtPath := filepath.Join(repo, ".opencode-wt", "feature-x")
	if err := AddWorktreeNew(ctx, repo, wtPath, "feature-x", ""); err != nil {
		t.Fatalf("AddWorktreeNew = %v", err)
	}

	worktrees, err := ListWorktrees(ctx, repo)
	if err != nil {
		t.Fatalf("ListWorktrees = %v", err)
	}
	if len(worktrees) != 2 {
		t.Fatalf("got %d worktrees, want 2", len(worktrees))
	}
	if !worktrees[0].IsMain(repo) {
		t.Errorf("first record %q should be the main checkout", worktrees[0].Path)
	}
	if worktrees[1].Branch != "feature-x" {
		t.Errorf("linked branch = %q, want feature-x", worktrees[1].Branch)
	}
	if worktrees[1].Head == "" {
		t.Error("linked record should have a commit hash")
	}
}

func TestAddAndRemoveWorktree(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t)
	ctx := testCtx()

	// Existing branch, checked out into a linked worktree.
	runTestGit(t, repo, "branch", "existing")
	wtPath := filepath.Join(repo, ".opencode-wt", "existing")
	if err := AddWorktree(ctx, repo, wtPath, "existing"); err != nil {
		t.Fatalf("AddWorktree = %v", err)
	}

	worktrees, err := ListWorktrees(ctx, repo)
	if err != nil {
		t.Fatalf("ListWorktrees = %v", err)
	}
	if FindWorktree(worktrees, "existing") == nil {
		t.Fatal("worktree for existing branch not listed")
	}

	if err := RemoveWorktree(ctx, repo, wtPath, false); err != nil {
		t.Fatalf("RemoveWorktree = %v", err)
	}
	worktrees, err = ListWorktrees(ctx, repo)
	if err != nil {
		t.Fatalf("ListWorktrees = %v", err)
	}
	if FindWorktree(worktrees, "existing") != nil {
		t.Error("worktree still listed after removal")
	}
}

func TestAddWorktreeTrack(t *testing.T) {
	t.Parallel()

	origin, clone := setupClonedRepo(t)

	// Create a branch that only exists on the remote.
	runTestGit(t, origin, "branch", "remote-only")
	ctx := testCtx()
	if err := Fetch(ctx, clone); err != nil {
		t.Fatalf("Fetch = %v", err)
	}
	if !RemoteBranchExists(ctx, clone, "remote-only") {
		t.Fatal("origin/remote-only should exist after fetch")
	}

	wtPath := filepath.Join(clone, ".opencode-wt", "remote-only")
	if err := AddWorktreeTrack(ctx, clone, wtPath, "remote-only"); err != nil {
		t.Fatalf("AddWorktreeTrack = %v", err)
	}

	tracking := TrackingStatus(ctx, wtPath)
	if tracking.State != TrackingOK {
		t.Fatalf("tracking state = %v (err %v), want TrackingOK", tracking.State, tracking.Err)
	}
	if tracking.Upstream != "origin/remote-only" {
		t.Errorf("upstream = %q, want origin/remote-only", tracking.Upstream)
	}
}
