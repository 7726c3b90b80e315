package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Greeting headlines.
const (
	GreetingLoggedIn  = "Welcome back!"
	GreetingLoggedOut = "Please sign up."
)

// Greeting shows a headline and the login status line for a login flag.
type Greeting struct {
	LoggedIn bool
}

// Ensure Greeting implements View.
var _ View = Greeting{}

// Init implements View.
func (g Greeting) Init() tea.Cmd { return nil }

// Update implements View.
func (g Greeting) Update(tea.Msg) (View, tea.Cmd) { return g, nil }

// Headline returns the greeting text without styling.
func (g Greeting) Headline() string {
	if g.LoggedIn {
		return GreetingLoggedIn
	}
	return GreetingLoggedOut
}

// StatusWord is the interpolated word in the status line.
func (g Greeting) StatusWord() string {
	if g.LoggedIn {
		return "currently"
	}
	return "not"
}

// View implements View.
func (g Greeting) View() string {
	status := "The user is " + Styles.Emphasis.Render(g.StatusWord()) + " logged in."
	return lipgloss.JoinVertical(lipgloss.Left,
		Styles.Title.Render(g.Headline()),
		Styles.Status.Render(status),
	)
}
