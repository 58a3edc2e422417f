package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/opencode-tools/ocwt/internal/log"
)

// RunContext executes a command in dir (empty = current directory)
// and returns stderr in the error message if it fails.
// The command is echoed through the context logger in verbose mode.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	var stderr bytes.Buffer
	c.Stderr = &stderr
	if err := c.Run(); err != nil {
		return wrapError(ctx, err, &stderr)
	}
	return nil
}

// OutputContext executes a command in dir and returns stdout,
// with stderr in the error message if it fails.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	var stderr bytes.Buffer
	c.Stderr = &stderr
	output, err := c.Output()
	if err != nil {
		return nil, wrapError(ctx, err, &stderr)
	}
	return output, nil
}

// wrapError prefers context cancellation over the raw exec error and
// surfaces captured stderr text verbatim.
func wrapError(ctx context.Context, err error, stderr *bytes.Buffer) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return fmt.Errorf("%s", msg)
	}
	return err
}
