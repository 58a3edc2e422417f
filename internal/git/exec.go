package git

import (
	"context"

	"github.com/opencode-tools/ocwt/internal/cmd"
)

// gitArgs builds the final argument list, targeting dir via -C when
// one is given. An empty dir means git's own working-directory
// resolution applies.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

// runGit invokes git for its side effect, discarding stdout.
func runGit(ctx context.Context, dir string, args ...string) error {
	return cmd.RunContext(ctx, "", "git", gitArgs(dir, args)...)
}

// outputGit invokes git and returns its stdout for parsing.
func outputGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	return cmd.OutputContext(ctx, "", "git", gitArgs(dir, args)...)
}
