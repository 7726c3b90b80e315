package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Mailbox lists unread messages under a count line.
type Mailbox struct {
	Messages []string
}

// Ensure Mailbox implements View.
var _ View = Mailbox{}

// Init implements View.
func (m Mailbox) Init() tea.Cmd { return nil }

// Update implements View.
func (m Mailbox) Update(tea.Msg) (View, tea.Cmd) { return m, nil }

// CountLine returns the unstyled count line.
func (m Mailbox) CountLine() string {
	return fmt.Sprintf("You have %d unread messages.", len(m.Messages))
}

// Lines returns one unstyled line per message, in input order.
func (m Mailbox) Lines() []string {
	lines := make([]string, len(m.Messages))
	for i, msg := range m.Messages {
		lines[i] = "• " + msg
	}
	return lines
}

// View implements View.
func (m Mailbox) View() string {
	rows := make([]string, 0, len(m.Messages)+1)
	rows = append(rows, Styles.Count.Render(m.CountLine()))
	for _, line := range m.Lines() {
		rows = append(rows, Styles.Message.Render(line))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
