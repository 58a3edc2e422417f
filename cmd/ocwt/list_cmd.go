package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List all worktrees of the repository",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		Long: `List all worktrees of the current repository.

Each line shows the branch, short commit hash and path relative to the
repository root. The worktree containing the current directory is
marked with *; locked and prunable worktrees are annotated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			workDir, err := os.Getwd()
			if err != nil {
				return err
			}
			return runList(cmd.Context(), workDir)
		},
	}
	return cmd
}
