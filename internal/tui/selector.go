// Package tui provides the interactive grade selector.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kurumalab/carfit/internal/cli"
	"github.com/kurumalab/carfit/internal/model"
)

// KeyMap defines the selector's keyboard shortcuts.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Accept key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "compare selected"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor)
	selectedStyle = lipgloss.NewStyle().Foreground(cli.SuccessColor)
	helpStyle     = lipgloss.NewStyle().Foreground(cli.SubtleColor).MarginTop(1)
)

// Selector is a bubbletea model letting the user toggle grades in a
// search result. It owns a copy of the rows; the caller reads the final
// selection from Selected after the program exits.
type Selector struct {
	keys    KeyMap
	rows    []model.SearchRow
	cursor  int
	aborted bool
}

// NewSelector creates a selector over a copy of the given rows.
func NewSelector(rows []model.SearchRow) *Selector {
	copied := make([]model.SearchRow, len(rows))
	copy(copied, rows)
	return &Selector{
		keys: DefaultKeyMap(),
		rows: copied,
	}
}

// Init implements tea.Model.
func (s *Selector) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (s *Selector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(keyMsg, s.keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(keyMsg, s.keys.Down):
		if s.cursor < len(s.rows)-1 {
			s.cursor++
		}
	case key.Matches(keyMsg, s.keys.Toggle):
		if len(s.rows) > 0 {
			s.rows[s.cursor].Selected = !s.rows[s.cursor].Selected
		}
	case key.Matches(keyMsg, s.keys.Accept):
		return s, tea.Quit
	case key.Matches(keyMsg, s.keys.Quit):
		s.aborted = true
		return s, tea.Quit
	}
	return s, nil
}

// View implements tea.Model.
func (s *Selector) View() string {
	var b strings.Builder
	b.WriteString(cli.FormatTitle("Pick grades to compare"))
	b.WriteString("\n")

	for i, row := range s.rows {
		cursor := "  "
		if i == s.cursor {
			cursor = cursorStyle.Render("> ")
		}
		check := "[ ]"
		line := fmt.Sprintf("%s %s  %s/mo", check, row.NameDesc, cli.FormatMoney(row.MonthlyRealCost))
		if row.Selected {
			line = selectedStyle.Render(fmt.Sprintf("[%s] %s  %s/mo", cli.SuccessIcon, row.NameDesc, cli.FormatMoney(row.MonthlyRealCost)))
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ move · space toggle · enter compare · q quit"))
	return b.String()
}

// Selected returns the rows the user toggled on, in display order. A
// quit/abort returns nothing regardless of toggles.
func (s *Selector) Selected() []model.SearchRow {
	if s.aborted {
		return nil
	}
	var selected []model.SearchRow
	for _, row := range s.rows {
		if row.Selected {
			selected = append(selected, row)
		}
	}
	return selected
}

// RunSelector runs the selector program and returns the chosen rows.
func RunSelector(rows []model.SearchRow) ([]model.SearchRow, error) {
	selector := NewSelector(rows)
	program := tea.NewProgram(selector)
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("selector failed: %w", err)
	}
	result, ok := final.(*Selector)
	if !ok {
		return nil, fmt.Errorf("unexpected selector model type %T", final)
	}
	return result.Selected(), nil
}
