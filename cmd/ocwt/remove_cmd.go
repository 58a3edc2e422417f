package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	var (
		deleteBranch bool
		force        bool
	)

	cmd := &cobra.Command{
		Use:     "remove [branch]",
		Short:   "Remove a worktree",
		Aliases: []string{"rm"},
		Args:    cobra.MaximumNArgs(1),
		Long: `Remove the worktree for the given branch.

The main worktree is never removed. Worktrees with uncommitted changes
are refused unless --force is given. Without a branch argument the
removable worktrees are listed instead.`,
		Example: `  ocwt remove                       # list removable worktrees
  ocwt remove feature-x             # remove the feature-x worktree
  ocwt remove feature-x -d          # also delete the branch
  ocwt remove feature-x --force     # discard uncommitted changes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			workDir, err := os.Getwd()
			if err != nil {
				return err
			}
			var branch string
			if len(args) == 1 {
				branch = args[0]
			}
			return runRemove(cmd.Context(), workDir, removeOptions{
				branch:       branch,
				deleteBranch: deleteBranch,
				force:        force,
			})
		},
	}

	cmd.Flags().BoolVarP(&deleteBranch, "delete-branch", "d", false, "Delete the branch after removing the worktree")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Remove even with uncommitted changes; with -d, force branch deletion")

	return cmd
}
