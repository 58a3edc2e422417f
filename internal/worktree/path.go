// Package worktree computes the reserved worktree directory and
// maintains its entry in the repository's ignore file.
package worktree

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BaseDir returns the directory under the repository root that holds
// all linked worktrees.
func BaseDir(root, dirName string) string {
	return filepath.Join(root, dirName)
}

// WorktreePath returns the checkout path for a branch inside the base
// directory.
func WorktreePath(root, dirName, branch string) string {
	return filepath.Join(BaseDir(root, dirName), branch)
}

// EnsureBaseDir creates the reserved worktree directory if missing.
func EnsureBaseDir(root, dirName string) error {
	return os.MkdirAll(BaseDir(root, dirName), 0755)
}

// EnsureIgnored idempotently appends "<dirName>/" to the repository's
// .gitignore, creating the file if absent. An existing entry (with or
// without the trailing slash) is left alone, and no other lines are
// touched.
func EnsureIgnored(root, dirName string) error {
	ignorePath := filepath.Join(root, ".gitignore")
	entry := dirName + "/"

	data, err := os.ReadFile(ignorePath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read .gitignore: %w", err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == dirName || trimmed == entry {
			return nil
		}
	}

	f, err := os.OpenFile(ignorePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open .gitignore: %w", err)
	}
	defer f.Close()

	text := entry + "\n"
	if len(data) > 0 && !strings.HasSuffix(string(data), "\n") {
		text = "\n" + text
	}
	if _, err := f.WriteString(text); err != nil {
		return fmt.Errorf("failed to update .gitignore: %w", err)
	}
	return nil
}
