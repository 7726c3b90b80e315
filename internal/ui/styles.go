package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for buttons, keys
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Title    lipgloss.Style // Greeting headline
	Status   lipgloss.Style // "The user is ... logged in." line
	Emphasis lipgloss.Style // currently / not
	Count    lipgloss.Style // Mailbox count line
	Message  lipgloss.Style // One unread message
	Button   lipgloss.Style // Login/Logout control
	Hint     lipgloss.Style // Help bar descriptions
	HintKey  lipgloss.Style // Help bar keys
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		MarginBottom(1),
	Emphasis: lipgloss.NewStyle().
		Bold(true),
	Count: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Message: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		PaddingLeft(2),
	Button: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Padding(0, 2),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	HintKey: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
}
