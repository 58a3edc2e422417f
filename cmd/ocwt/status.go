package main

import (
	"context"
	"fmt"

	"github.com/opencode-tools/ocwt/internal/git"
	"github.com/opencode-tools/ocwt/internal/log"
	"github.com/opencode-tools/ocwt/internal/output"
	"github.com/opencode-tools/ocwt/internal/styles"
)

func runStatus(ctx context.Context, workDir string) error {
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

	current := currentWorktree(records, workDir)

	var clean, dirty int
	printed := false
	for _, wt := range records {
		if wt.Bare {
			continue
		}
		if printed {
			out.Println()
		}
		printed = true

		marker := " "
		if current != nil && wt.Path == current.Path {
			marker = "*"
		}
		label := ""
		if wt.IsMain(root) {
			label = "  " + st.Muted.Render("[main worktree]")
		}
		out.Printf("%s %s  %s%s\n", marker, st.Bold.Render(displayBranch(wt)), st.Muted.Render(relPath(root, wt.Path)), label)

		status, err := git.Status(ctx, wt.Path)
		if err != nil {
			l.Warnf("failed to read status of %s: %v", wt.Path, err)
			continue
		}
		if status.Clean() {
			clean++
			out.Printf("  %s\n", st.Success.Render(status.Summary()))
		} else {
			dirty++
			out.Printf("  %s\n", st.Warning.Render(status.Summary()))
		}

		if wt.Branch != "" {
			printTracking(ctx, wt)
		}

		if c, err := git.LastCommit(ctx, wt.Path); err == nil {
			out.Printf("  %s\n", st.Muted.Render(fmt.Sprintf("%s (%s)", c.Subject, c.Relative)))
		}
	}

	out.Printf("\n%d clean, %d dirty\n", clean, dirty)
	return nil
}

// printTracking prints one line describing the upstream relation.
func printTracking(ctx context.Context, wt git.Worktree) {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)
	st := styles.FromContext(ctx)

	tr := git.TrackingStatus(ctx, wt.Path)
	switch tr.State {
	case git.TrackingNone:
		out.Printf("  %s\n", st.Muted.Render("no upstream"))
	case git.TrackingError:
		l.Warnf("failed to compare %s with its upstream: %v", wt.Branch, tr.Err)
	default:
		switch {
		case tr.UpToDate():
			out.Printf("  up to date with %s\n", tr.Upstream)
		case tr.Ahead > 0 && tr.Behind > 0:
			out.Printf("  %d ahead, %d behind %s (diverged)\n", tr.Ahead, tr.Behind, tr.Upstream)
		case tr.Ahead > 0:
			out.Printf("  %d ahead of %s\n", tr.Ahead, tr.Upstream)
		default:
			out.Printf("  %d behind %s\n", tr.Behind, tr.Upstream)
		}
	}
}
