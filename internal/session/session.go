// Package session launches the companion editor/agent in a worktree.
package session

import (
	"fmt"
	"os/exec"
	"strings"
	"syscall"
)

// Launcher spawns detached editor sessions. The spawned process is
// fire-and-forget: it must outlive the CLI command that launched it,
// and its exit status is never observed.
type Launcher struct {
	// Command is the editor/agent executable, invoked as
	// "<command> <path>".
	Command string
}

// New creates a launcher for the given editor command.
func New(command string) *Launcher {
	return &Launcher{Command: command}
}

// Launch starts a detached session rooted at path. The child runs in
// its own process group with all standard streams discarded, so it
// survives the parent's exit. Callers treat a failure here as a
// warning, not an error: launching a session is a convenience.
func (l *Launcher) Launch(path string) error {
	cmd := exec.Command(l.Command, path)
	cmd.Dir = path
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch %s: %w", l.Command, err)
	}
	// Detach: we never wait on the child.
	return cmd.Process.Release()
}

// Fallback returns the manual shell invocation for path, printed when
// launching fails.
func (l *Launcher) Fallback(path string) string {
	return strings.Join([]string{l.Command, path}, " ")
}
