package main

import (
	"context"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"

	"github.com/opencode-tools/ocwt/internal/config"
	"github.com/opencode-tools/ocwt/internal/git"
	"github.com/opencode-tools/ocwt/internal/log"
	"github.com/opencode-tools/ocwt/internal/output"
	"github.com/opencode-tools/ocwt/internal/picker"
	"github.com/opencode-tools/ocwt/internal/styles"
)

// switchOptions holds the parameters for switching worktrees.
type switchOptions struct {
	branch      string
	interactive bool
	copyPath    bool
}

func runSwitch(ctx context.Context, workDir string, opts switchOptions) error {
	cfg := config.FromContext(ctx)
	l := log.FromContext(ctx)

	root, err := git.RepoRoot(ctx, workDir)
	if err != nil {
		return err
	}

	records, err := git.ListWorktrees(ctx, root)
	if err != nil {
		return fmt.Errorf("list worktrees: %w", err)
	}

	var target *git.Worktree
	switch {
	case opts.interactive:
		if !isatty.IsTerminal(os.Stdin.Fd()) {
			l.Warnf("interactive mode needs a terminal")
			return printSwitchable(ctx, root, records, workDir)
		}
		target, err = pickWorktree(root, records)
		if err != nil {
			return err
		}
		if target == nil {
			// Cancelled.
			return nil
		}
	case opts.branch == "":
		return printSwitchable(ctx, root, records, workDir)
	default:
		target = git.FindWorktree(records, opts.branch)
		if target == nil {
			return fmt.Errorf("%w for branch %q", errWorktreeNotFound, opts.branch)
		}
	}

	if opts.copyPath {
		if err := clipboard.WriteAll(target.Path); err != nil {
			l.Warnf("failed to copy path to clipboard: %v", err)
		} else {
			l.Printf("Copied %s to clipboard\n", target.Path)
		}
	}

	launchSession(ctx, cfg.Editor, target.Path)
	return nil
}

// pickWorktree runs the interactive selector over all worktree records.
// A nil result without error means the user cancelled.
func pickWorktree(root string, records []git.Worktree) (*git.Worktree, error) {
	items := make([]picker.Item, 0, len(records))
	for _, wt := range records {
		items = append(items, picker.Item{
			Branch: displayBranch(wt),
			Path:   wt.Path,
			Note:   relPath(root, wt.Path),
		})
	}

	res, err := picker.Pick("Switch to worktree", items)
	if err != nil {
		return nil, err
	}
	if res.Cancelled {
		return nil, nil
	}
	for i := range records {
		if records[i].Path == res.Item.Path {
			return &records[i], nil
		}
	}
	return nil, fmt.Errorf("%w at %s", errWorktreeNotFound, res.Item.Path)
}

// printSwitchable lists all worktrees, highlighting the current one.
func printSwitchable(ctx context.Context, root string, records []git.Worktree, workDir string) error {
	out := output.FromContext(ctx)
	st := styles.FromContext(ctx)

	current := currentWorktree(records, workDir)

	out.Println("Worktrees:")
	for _, wt := range records {
		marker := " "
		branch := displayBranch(wt)
		if current != nil && wt.Path == current.Path {
			marker = "*"
			branch = st.Bold.Render(branch)
		} else {
			branch = st.Branch.Render(branch)
		}
		out.Printf("%s %s  %s\n", marker, branch, st.Muted.Render(relPath(root, wt.Path)))
	}
	out.Println()
	out.Println("Switch with: ocwt switch <branch>")
	return nil
}
