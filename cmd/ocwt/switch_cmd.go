package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newSwitchCmd() *cobra.Command {
	var (
		interactive bool
		copyPath    bool
	)

	cmd := &cobra.Command{
		Use:     "switch [branch]",
		Short:   "Open an editor session in an existing worktree",
		Aliases: []string{"sw"},
		Args:    cobra.MaximumNArgs(1),
		Long: `Open an editor session in the worktree of the given branch.

With no argument the available worktrees are listed; with -i an
interactive fuzzy selector is shown instead.`,
		Example: `  ocwt switch               # list worktrees
  ocwt switch feature-x     # open session in feature-x worktree
  ocwt switch -i            # pick a worktree interactively
  ocwt switch feature-x -c  # also copy the path to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			workDir, err := os.Getwd()
			if err != nil {
				return err
			}
			var branch string
			if len(args) == 1 {
				branch = args[0]
			}
			return runSwitch(cmd.Context(), workDir, switchOptions{
				branch:      branch,
				interactive: interactive,
				copyPath:    copyPath,
			})
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick the worktree with a fuzzy selector")
	cmd.Flags().BoolVarP(&copyPath, "copy", "c", false, "Copy the worktree path to the clipboard")

	return cmd
}
