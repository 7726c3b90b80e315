package ui

// Sources of a session transition, recorded in logs and spans.
const (
	SourceButton   = "button"   // button activated by key or mouse
	SourceShortcut = "shortcut" // l / o keys
	SourceAPI      = "api"      // sent programmatically, e.g. tea.Program.Send
)

// LoginMsg asks the root to set the login flag. Sent by LoginButton and the l shortcut.
type LoginMsg struct {
	Source string
}

// LogoutMsg asks the root to clear the login flag. Sent by LogoutButton and the o shortcut.
type LogoutMsg struct {
	Source string
}

// ToggleHelpMsg switches the help bar between short and full form (?).
type ToggleHelpMsg struct{}
