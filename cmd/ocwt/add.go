package main

import (
	"context"
	"fmt"

	"github.com/opencode-tools/ocwt/internal/config"
	"github.com/opencode-tools/ocwt/internal/git"
	"github.com/opencode-tools/ocwt/internal/log"
	"github.com/opencode-tools/ocwt/internal/output"
	"github.com/opencode-tools/ocwt/internal/styles"
	"github.com/opencode-tools/ocwt/internal/worktree"
)

// addOptions holds the parameters for creating a worktree.
type addOptions struct {
	branch string
	from   string
	noOpen bool
}

func runAdd(ctx context.Context, workDir string, opts addOptions) error {
	cfg := config.FromContext(ctx)
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)
	st := styles.FromContext(ctx)

	root, err := git.RepoRoot(ctx, workDir)
	if err != nil {
		return err
	}

	if !git.ValidBranchName(ctx, opts.branch) {
		return fmt.Errorf("invalid branch name %q", opts.branch)
	}

	records, err := git.ListWorktrees(ctx, root)
	if err != nil {
		return fmt.Errorf("list worktrees: %w", err)
	}

	// Re-running add for an existing worktree just reopens it.
	if wt := git.FindWorktree(records, opts.branch); wt != nil {
		out.Printf("%s Worktree already exists at: %s\n", styles.SymArrow, st.Path.Render(wt.Path))
		if !opts.noOpen {
			launchSession(ctx, cfg.Editor, wt.Path)
		}
		return nil
	}

	if err := worktree.EnsureBaseDir(root, cfg.WorktreeDir); err != nil {
		return fmt.Errorf("create %s: %w", cfg.WorktreeDir, err)
	}
	if err := worktree.EnsureIgnored(root, cfg.WorktreeDir); err != nil {
		return fmt.Errorf("update .gitignore: %w", err)
	}

	path := worktree.WorktreePath(root, cfg.WorktreeDir, opts.branch)

	switch {
	case git.LocalBranchExists(ctx, root, opts.branch):
		l.Printf("Checking out existing branch %s\n", opts.branch)
		err = git.AddWorktree(ctx, root, path, opts.branch)
	case git.RemoteBranchExists(ctx, root, opts.branch):
		l.Printf("Creating branch %s tracking origin/%s\n", opts.branch, opts.branch)
		err = git.AddWorktreeTrack(ctx, root, path, opts.branch)
	default:
		if opts.from != "" {
			l.Printf("Creating new branch %s from %s\n", opts.branch, opts.from)
		} else {
			l.Printf("Creating new branch %s\n", opts.branch)
		}
		err = git.AddWorktreeNew(ctx, root, path, opts.branch, opts.from)
	}
	if err != nil {
		return fmt.Errorf("create worktree: %w", err)
	}

	out.Printf("%s Worktree created at: %s\n", st.Success.Render(styles.SymOK), st.Path.Render(path))

	if !opts.noOpen {
		launchSession(ctx, cfg.Editor, path)
	}
	return nil
}
