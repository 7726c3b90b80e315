package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Button labels.
const (
	LabelLogin  = "Login"
	LabelLogout = "Logout"
)

// Button is a clickable control. Activation (enter, space or a mouse click
// routed by the root) runs OnClick. It holds no state.
type Button struct {
	Label   string
	OnClick func() tea.Msg
}

// Ensure Button implements View.
var _ View = Button{}

// NewLoginButton creates the control that signals a log in.
func NewLoginButton(onClick func() tea.Msg) Button {
	return Button{Label: LabelLogin, OnClick: onClick}
}

// NewLogoutButton creates the control that signals a log out.
func NewLogoutButton(onClick func() tea.Msg) Button {
	return Button{Label: LabelLogout, OnClick: onClick}
}

// Activate returns the click callback as a command. nil if no callback is set.
func (b Button) Activate() tea.Cmd {
	if b.OnClick == nil {
		return nil
	}
	return b.OnClick
}

// Init implements View.
func (b Button) Init() tea.Cmd { return nil }

// Update implements View.
func (b Button) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", " ":
			return b, b.Activate()
		}
	}
	return b, nil
}

// View implements View.
func (b Button) View() string {
	return Styles.Button.Render(b.Label)
}

// Height is the number of terminal rows the rendered control occupies.
func (b Button) Height() int {
	return lipgloss.Height(b.View())
}
