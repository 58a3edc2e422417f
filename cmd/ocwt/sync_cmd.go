package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newSyncCmd() *cobra.Command {
	var pull bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch origin and report how far each worktree is behind",
		Args:  cobra.NoArgs,
		Long: `Fetch from origin and report the upstream relation of every worktree.

With --pull, worktrees that are behind their upstream are fast-forwarded.
Worktrees with uncommitted changes are skipped; a fast-forward that is
not possible (diverged history) is reported as an error. Per-worktree
failures never abort the run.`,
		Example: `  ocwt sync         # report only
  ocwt sync --pull  # fast-forward worktrees that are behind`,
		RunE: func(cmd *cobra.Command, args []string) error {
			workDir, err := os.Getwd()
			if err != nil {
				return err
			}
			return runSync(cmd.Context(), workDir, syncOptions{pull: pull})
		},
	}

	cmd.Flags().BoolVar(&pull, "pull", false, "Fast-forward worktrees that are behind their upstream")

	return cmd
}
