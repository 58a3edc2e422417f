package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Show working tree status of every worktree",
		Aliases: []string{"st"},
		Args:    cobra.NoArgs,
		Long: `Show a status summary for every worktree of the repository.

For each worktree the working tree state, the relation to its upstream
branch and the last commit are shown. This command never modifies the
repository.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			workDir, err := os.Getwd()
			if err != nil {
				return err
			}
			return runStatus(cmd.Context(), workDir)
		},
	}
	return cmd
}
