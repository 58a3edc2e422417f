// Package picker provides an interactive fuzzy selector for
// worktrees, used by `ocwt switch -i`.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// Item is one selectable worktree.
type Item struct {
	Branch string
	Path   string
	Note   string // extra marker, e.g. "main" or "current"
}

// Result is the outcome of an interactive pick.
type Result struct {
	Item      Item
	Cancelled bool
}

var (
	promptStyle   = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	noteStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	noMatchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	maxVisibleLen = 10
)

// itemSource implements fuzzy.Source over item branch names.
type itemSource []Item

func (s itemSource) String(i int) string { return s[i].Branch }
func (s itemSource) Len() int            { return len(s) }

// filterItems ranks items against query. An empty query keeps the
// original order.
func filterItems(items []Item, query string) []int {
	if strings.TrimSpace(query) == "" {
		indexes := make([]int, len(items))
		for i := range items {
			indexes[i] = i
		}
		return indexes
	}
	matches := fuzzy.FindFrom(query, itemSource(items))
	indexes := make([]int, len(matches))
	for i, m := range matches {
		indexes[i] = m.Index
	}
	return indexes
}

type model struct {
	title    string
	items    []Item
	input    textinput.Model
	filtered []int
	cursor   int
	choice   *Item
	quit     bool
}

func newModel(title string, items []Item) model {
	input := textinput.New()
	input.Placeholder = "filter"
	input.Focus()
	return model{
		title:    title,
		items:    items,
		input:    input,
		filtered: filterItems(items, ""),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.quit = true
			return m, tea.Quit
		case "enter":
			if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
				item := m.items[m.filtered[m.cursor]]
				m.choice = &item
			}
			m.quit = true
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.filtered = filterItems(m.items, m.input.Value())
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
	return m, cmd
}

func (m model) View() string {
	if m.quit {
		return ""
	}

	var b strings.Builder
	b.WriteString(promptStyle.Render(m.title) + "\n")
	b.WriteString(m.input.View() + "\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(noMatchStyle.Render("  no matching worktrees") + "\n")
		return b.String()
	}

	start := 0
	if m.cursor >= maxVisibleLen {
		start = m.cursor - maxVisibleLen + 1
	}
	end := min(start+maxVisibleLen, len(m.filtered))

	for i := start; i < end; i++ {
		item := m.items[m.filtered[i]]
		line := item.Branch
		if item.Note != "" {
			line += " " + noteStyle.Render("("+item.Note+")")
		}
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}

// Pick runs the interactive selector and returns the chosen item.
func Pick(title string, items []Item) (Result, error) {
	if len(items) == 0 {
		return Result{}, fmt.Errorf("nothing to pick from")
	}

	final, err := tea.NewProgram(newModel(title, items)).Run()
	if err != nil {
		return Result{}, fmt.Errorf("picker failed: %w", err)
	}

	m := final.(model)
	if m.choice == nil {
		return Result{Cancelled: true}, nil
	}
	return Result{Item: *m.choice}, nil
}
