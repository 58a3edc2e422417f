package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/opencode-tools/ocwt/internal/git"
	"github.com/opencode-tools/ocwt/internal/output"
	"github.com/opencode-tools/ocwt/internal/styles"
)

func runList(ctx context.Context, workDir string) error {
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

	width := 0
	for _, wt := range records {
		if n := len([]rune(displayBranch(wt))); n > width {
			width = n
		}
	}

	for _, wt := range records {
		marker := " "
		if current != nil && wt.Path == current.Path {
			marker = "*"
		}

		branch := displayBranch(wt)
		pad := strings.Repeat(" ", width-len([]rune(branch)))

		out.Printf("%s %s%s  %s  %s%s\n",
			marker,
			st.Branch.Render(branch), pad,
			st.Muted.Render(wt.ShortHead()),
			st.Path.Render(relPath(root, wt.Path)),
			worktreeFlags(wt, root, st))
	}
	return nil
}

// displayBranch renders the branch column for a worktree record.
func displayBranch(wt git.Worktree) string {
	switch {
	case wt.Bare:
		return "(bare)"
	case wt.Detached:
		return "(detached)"
	default:
		return wt.Branch
	}
}

// worktreeFlags renders the trailing state annotations for a record.
func worktreeFlags(wt git.Worktree, root string, st styles.Styles) string {
	var flags []string
	if wt.IsMain(root) {
		flags = append(flags, "main")
	}
	if wt.Locked {
		if wt.LockReason != "" {
			flags = append(flags, "locked: "+wt.LockReason)
		} else {
			flags = append(flags, "locked")
		}
	}
	if wt.Prunable {
		flags = append(flags, "prunable")
	}
	if len(flags) == 0 {
		return ""
	}
	return "  " + st.Muted.Render("["+strings.Join(flags, ", ")+"]")
}
