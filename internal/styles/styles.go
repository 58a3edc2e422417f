// Package styles provides the shared color and symbol table for
// command output. A Styles value is built once per invocation and
// injected via context, so tests (and --no-color) can substitute a
// plain formatter instead of relying on global state.
package styles

import (
	"context"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Symbols used in command output.
const (
	SymOK      = "✓"
	SymError   = "❌"
	SymWarning = "⚠"
	SymArrow   = "→"
)

type ctxKey struct{}

// Styles holds the render styles for one command invocation.
type Styles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Branch  lipgloss.Style
	Path    lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style

	colored bool
}

// New builds a style table. With colored=false every style renders
// its input unchanged.
func New(colored bool) Styles {
	if !colored {
		plain := lipgloss.NewStyle()
		return Styles{
			Success: plain,
			Error:   plain,
			Warning: plain,
			Branch:  plain,
			Path:    plain,
			Muted:   plain,
			Bold:    plain,
		}
	}
	return Styles{
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Branch:  lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Path:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Bold:    lipgloss.NewStyle().Bold(true),
		colored: true,
	}
}

// Colored reports whether the table renders colors.
func (s Styles) Colored() bool {
	return s.colored
}

// Enabled decides whether color output should be used for f.
// mode is "always", "never", or "auto" (anything else counts as auto).
func Enabled(f *os.File, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	profile := colorprofile.Detect(f, os.Environ())
	return profile != colorprofile.Ascii && profile != colorprofile.NoTTY
}

// WithStyles attaches a style table to the context.
func WithStyles(ctx context.Context, s Styles) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext retrieves the style table from context.
// Returns a plain (uncolored) table if none is attached.
func FromContext(ctx context.Context) Styles {
	if s, ok := ctx.Value(ctxKey{}).(Styles); ok {
		return s
	}
	return New(false)
}
