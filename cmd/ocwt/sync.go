package main

import (
	"context"
	"fmt"

	"github.com/opencode-tools/ocwt/internal/git"
	"github.com/opencode-tools/ocwt/internal/log"
	"github.com/opencode-tools/ocwt/internal/output"
	"github.com/opencode-tools/ocwt/internal/styles"
)

// syncOptions holds the parameters for syncing worktrees.
type syncOptions struct {
	pull bool
}

func runSync(ctx context.Context, workDir string, opts syncOptions) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)
	st := styles.FromContext(ctx)

	root, err := git.RepoRoot(ctx, workDir)
	if err != nil {
		return err
	}

	l.Printf("Fetching origin...\n")
	if err := git.Fetch(ctx, root); err != nil {
		return fmt.Errorf("fetch origin: %w", err)
	}

	records, err := git.ListWorktrees(ctx, root)
	if err != nil {
		return fmt.Errorf("list worktrees: %w", err)
	}

	var updated, upToDate, pending, failed int
	for _, wt := range records {
		// Detached and bare worktrees have no upstream to sync.
		if wt.Branch == "" {
			continue
		}
		name := st.Branch.Render(wt.Branch)

		tr := git.TrackingStatus(ctx, wt.Path)
		switch {
		case tr.State == git.TrackingNone:
			out.Printf("  %s: %s\n", name, st.Muted.Render("no upstream"))
		case tr.State == git.TrackingError:
			l.Warnf("failed to compare %s with its upstream: %v", wt.Branch, tr.Err)
			failed++
		case tr.UpToDate():
			out.Printf("%s %s: up to date\n", st.Success.Render(styles.SymOK), name)
			upToDate++
		case tr.Behind > 0:
			if !opts.pull {
				desc := fmt.Sprintf("%d commits behind", tr.Behind)
				if tr.Ahead > 0 {
					desc = fmt.Sprintf("%d commits ahead, %s (diverged)", tr.Ahead, desc)
				}
				out.Printf("%s %s: %s\n", styles.SymArrow, name, desc)
				pending++
				continue
			}
			if pullWorktree(ctx, wt, tr) {
				updated++
			} else {
				failed++
			}
		default:
			// Ahead only: nothing to pull.
			out.Printf("%s %s: %d commits ahead\n", styles.SymArrow, name, tr.Ahead)
			upToDate++
		}
	}

	out.Println()
	switch {
	case opts.pull:
		out.Printf("%d updated, %d up to date, %d errors\n", updated, upToDate, failed)
	case pending > 0:
		out.Printf("%d worktrees have pending updates\n", pending)
		out.Println("Pull them with: ocwt sync --pull")
	default:
		out.Println("All worktrees up to date")
	}
	return nil
}

// pullWorktree fast-forwards one worktree that is behind its upstream.
// Dirty worktrees are skipped; failures are warnings, never fatal.
func pullWorktree(ctx context.Context, wt git.Worktree, tr git.Tracking) bool {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)
	st := styles.FromContext(ctx)

	status, err := git.Status(ctx, wt.Path)
	if err != nil {
		l.Warnf("failed to read status of %s: %v", wt.Path, err)
		return false
	}
	if !status.Clean() {
		l.Warnf("skipping %s: uncommitted changes present", wt.Branch)
		return false
	}

	if err := git.PullFastForward(ctx, wt.Path); err != nil {
		l.Warnf("pull failed for %s: %v", wt.Branch, err)
		return false
	}
	out.Printf("%s %s: %d commits behind. Pull successful\n",
		st.Success.Render(styles.SymOK), st.Branch.Render(wt.Branch), tr.Behind)
	return true
}
