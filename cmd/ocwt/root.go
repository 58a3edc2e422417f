package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/opencode-tools/ocwt/internal/config"
	"github.com/opencode-tools/ocwt/internal/git"
	"github.com/opencode-tools/ocwt/internal/log"
	"github.com/opencode-tools/ocwt/internal/output"
	"github.com/opencode-tools/ocwt/internal/styles"
)

// Global flags
var (
	verbose bool
	quiet   bool
	noColor bool
)

// Styles used for fatal error output. Replaced once flags and config
// have been parsed in PersistentPreRunE.
var errStyles = styles.New(false)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ocwt",
	Short: "Manage git worktrees for parallel coding sessions",
	Long: `ocwt manages git worktrees so multiple branches can be worked on
in parallel, each in its own editor session.

Worktrees live under a reserved directory inside the repository root
(.opencode-wt/ by default) which is kept out of version control
automatically.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip setup for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}

		ctx := cmd.Context()
		ctx = config.WithConfig(ctx, cfg)

		// Logger on stderr for diagnostics, printer on stdout for data
		ctx = log.WithLogger(ctx, log.New(os.Stderr, verbose, quiet))
		ctx = output.WithPrinter(ctx, os.Stdout)

		colorMode := cfg.Color
		if noColor {
			colorMode = "never"
		}
		errStyles = styles.New(styles.Enabled(os.Stdout, colorMode))
		ctx = styles.WithStyles(ctx, errStyles)

		cmd.SetContext(ctx)

		return git.CheckGit()
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errStyles.Error.Render(styles.SymError), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newSwitchCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newSyncCmd())
}
