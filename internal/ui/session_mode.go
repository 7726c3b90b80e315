package ui

// SessionMode is the login flag as seen by keybinding hints.
// It is always derived from AppModel.LoggedIn, never stored.
type SessionMode int

const (
	ModeLoggedOut SessionMode = iota
	ModeLoggedIn
)

// ModeFor maps the login flag to a SessionMode.
func ModeFor(loggedIn bool) SessionMode {
	if loggedIn {
		return ModeLoggedIn
	}
	return ModeLoggedOut
}

func (m SessionMode) String() string {
	switch m {
	case ModeLoggedOut:
		return "LoggedOut"
	case ModeLoggedIn:
		return "LoggedIn"
	default:
		return "Unknown"
	}
}
