package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/opencode-tools/ocwt/internal/git"
	"github.com/opencode-tools/ocwt/internal/log"
	"github.com/opencode-tools/ocwt/internal/output"
	"github.com/opencode-tools/ocwt/internal/styles"
)

// removeOptions holds the parameters for removing a worktree.
type removeOptions struct {
	branch       string
	deleteBranch bool
	force        bool
}

func runRemove(ctx context.Context, workDir string, opts removeOptions) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)
	st := styles.FromContext(ctx)

	root, err := git.RepoRoot(ctx, workDir)
	if err != nil {
		return err
	}

	records, err := git.ListWorktrees(ctx, root)
	if err != nil {
		return fmt.Errorf("list worktrees: %w", err)
	}

	// Without a branch argument, show what could be removed.
	if opts.branch == "" {
		return printRemovable(ctx, root, records)
	}

	wt := git.FindWorktree(records, opts.branch)
	if wt == nil {
		return fmt.Errorf("%w for branch %q", errWorktreeNotFound, opts.branch)
	}
	if wt.IsMain(root) {
		return errMainWorktree
	}

	if !opts.force {
		status, err := git.Status(ctx, wt.Path)
		if err != nil {
			return fmt.Errorf("check status of %s: %w", wt.Path, err)
		}
		if !status.Clean() {
			return fmt.Errorf("%w:\n  %s\n(use --force to remove anyway)",
				errDirtyWorktree, strings.Join(status.Files, "\n  "))
		}
	}

	if err := git.RemoveWorktree(ctx, root, wt.Path, opts.force); err != nil {
		return fmt.Errorf("remove worktree: %w", err)
	}
	out.Printf("%s Removed worktree %s\n", st.Success.Render(styles.SymOK), st.Path.Render(wt.Path))

	if opts.deleteBranch {
		if err := git.DeleteBranch(ctx, root, opts.branch, opts.force); err != nil {
			l.Warnf("failed to delete branch %s: %v", opts.branch, err)
		} else {
			out.Printf("%s Deleted branch %s\n", st.Success.Render(styles.SymOK), st.Branch.Render(opts.branch))
		}
	}
	return nil
}

// printRemovable lists the linked worktrees that remove accepts.
func printRemovable(ctx context.Context, root string, records []git.Worktree) error {
	out := output.FromContext(ctx)
	st := styles.FromContext(ctx)

	var linked []git.Worktree
	for _, wt := range records {
		if !wt.IsMain(root) {
			linked = append(linked, wt)
		}
	}
	if len(linked) == 0 {
		out.Println("No linked worktrees.")
		return nil
	}

	out.Println("Linked worktrees:")
	for _, wt := range linked {
		branch := wt.Branch
		if branch == "" {
			branch = "(detached)"
		}
		out.Printf("  %s  %s\n", st.Branch.Render(branch), st.Muted.Render(relPath(root, wt.Path)))
	}
	out.Println()
	out.Println("Remove one with: ocwt remove <branch>")
	return nil
}
