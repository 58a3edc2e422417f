package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// WorkStatus summarizes the working tree of one checkout.
type WorkStatus struct {
	Modified  int
	Added     int
	Deleted   int
	Renamed   int
	Untracked int
	Files     []string // raw "XY path" lines, for dirty-refusal output
}

// Clean reports whether the working tree has no changes at all.
func (s WorkStatus) Clean() bool {
	return len(s.Files) == 0
}

// Summary renders the change counts, e.g. "2 modified, 1 untracked".
func (s WorkStatus) Summary() string {
	if s.Clean() {
		return "clean"
	}
	var parts []string
	add := func(n int, label string) {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, label))
		}
	}
	add(s.Modified, "modified")
	add(s.Added, "added")
	add(s.Deleted, "deleted")
	add(s.Renamed, "renamed")
	add(s.Untracked, "untracked")
	return strings.Join(parts, ", ")
}

// ParseStatus decodes `git status --porcelain` output. Each entry is
// counted once: untracked first, otherwise by the more significant of
// the index and worktree status codes.
func ParseStatus(output []byte) WorkStatus {
	var status WorkStatus
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimRight(line, "\r")
		if len(line) < 3 {
			continue
		}
		status.Files = append(status.Files, line)

		x, y := line[0], line[1]
		switch {
		case x == '?' && y == '?':
			status.Untracked++
		case x == 'R' || y == 'R':
			status.Renamed++
		case x == 'A' || y == 'A':
			status.Added++
		case x == 'D' || y == 'D':
			status.Deleted++
		default:
			status.Modified++
		}
	}
	return status
}

// Status returns the working-tree status for the checkout at path.
func Status(ctx context.Context, path string) (WorkStatus, error) {
	output, err := outputGit(ctx, path, "status", "--porcelain")
	if err != nil {
		return WorkStatus{}, fmt.Errorf("failed to get status: %v", err)
	}
	return ParseStatus(output), nil
}

// TrackingState classifies the outcome of an upstream comparison.
type TrackingState int

const (
	// TrackingOK means ahead/behind counts were computed.
	TrackingOK TrackingState = iota
	// TrackingNone means the branch has no upstream configured.
	// This is expected and benign.
	TrackingNone
	// TrackingError means an upstream is configured but the
	// comparison failed; Err holds the underlying failure.
	TrackingError
)

// Tracking is the remote-tracking status of one checkout.
type Tracking struct {
	State    TrackingState
	Upstream string
	Ahead    int
	Behind   int
	Err      error
}

// UpToDate reports whether the branch matches its upstream.
func (t Tracking) UpToDate() bool {
	return t.State == TrackingOK && t.Ahead == 0 && t.Behind == 0
}

// TrackingStatus computes the upstream relationship for the checkout
// at path. An unconfigured upstream is distinguished from a failing
// comparison: only the latter carries an error.
func TrackingStatus(ctx context.Context, path string) Tracking {
	upstream, err := outputGit(ctx, path, "rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{upstream}")
	if err != nil {
		return Tracking{State: TrackingNone}
	}
	ref := strings.TrimSpace(string(upstream))

	output, err := outputGit(ctx, path, "rev-list", "--left-right", "--count", ref+"...HEAD")
	if err != nil {
		return Tracking{State: TrackingError, Upstream: ref, Err: err}
	}

	parts := strings.Fields(strings.TrimSpace(string(output)))
	if len(parts) != 2 {
		return Tracking{
			State:    TrackingError,
			Upstream: ref,
			Err:      fmt.Errorf("unexpected rev-list output: %q", output),
		}
	}
	behind, _ := strconv.Atoi(parts[0])
	ahead, _ := strconv.Atoi(parts[1])
	return Tracking{State: TrackingOK, Upstream: ref, Ahead: ahead, Behind: behind}
}

// Commit is the most recent commit of a checkout.
type Commit struct {
	Subject  string
	Relative string // human-relative committer time, e.g. "2 days ago"
}

// LastCommit returns the most recent commit's subject and relative
// timestamp for the checkout at path.
func LastCommit(ctx context.Context, path string) (Commit, error) {
	output, err := outputGit(ctx, path, "log", "-1", "--format=%s%x00%cr")
	if err != nil {
		return Commit{}, fmt.Errorf("failed to get last commit: %v", err)
	}
	subject, relative, ok := strings.Cut(strings.TrimSuffix(string(output), "\n"), "\x00")
	if !ok {
		return Commit{}, fmt.Errorf("unexpected log output: %q", output)
	}
	return Commit{Subject: subject, Relative: relative}, nil
}
