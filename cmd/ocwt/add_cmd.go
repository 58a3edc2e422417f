package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	var (
		from   string
		noOpen bool
	)

	cmd := &cobra.Command{
		Use:     "add <branch>",
		Short:   "Create a worktree for a branch and open a session",
		Aliases: []string{"a"},
		Args:    cobra.ExactArgs(1),
		Long: `Create a worktree for the given branch and open an editor session in it.

If a worktree for the branch already exists it is reopened instead. The
branch itself is resolved in order: an existing local branch is checked
out, a branch existing on origin gets a tracking branch, and otherwise
a new branch is created.`,
		Example: `  ocwt add feature-x              # worktree for feature-x
  ocwt add feature-x --from main  # new branch based on main
  ocwt add feature-x --no-open    # create only, no editor session`,
		RunE: func(cmd *cobra.Command, args []string) error {
			workDir, err := os.Getwd()
			if err != nil {
				return err
			}
			return runAdd(cmd.Context(), workDir, addOptions{
				branch: args[0],
				from:   from,
				noOpen: noOpen,
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Base ref for a newly created branch (default: current HEAD)")
	cmd.Flags().BoolVar(&noOpen, "no-open", false, "Create the worktree without launching an editor session")

	return cmd
}
