package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"loginbox/internal/trace"
)

// AppModel is the root model. It owns the only state in the UI: the login
// flag and the unread message list. Every leaf view is derived from these on
// each render.
type AppModel struct {
	LoggedIn     bool
	Messages     []string
	ShowFullHelp bool
	KeyHandler   *KeyHandler
	Logger       *zap.Logger
	Recorder     *trace.SessionRecorder

	width int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model, logged out, with a copy of messages.
func NewAppModel(messages []string) *AppModel {
	msgs := make([]string, len(messages))
	copy(msgs, messages)
	return &AppModel{
		LoggedIn:   false,
		Messages:   msgs,
		KeyHandler: NewKeyHandler(NewDefaultKeybindRegistry()),
		Logger:     zap.NewNop(),
	}
}

// NewDefaultKeybindRegistry returns the bindings used by the loginbox screen.
func NewDefaultKeybindRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("l", func() tea.Msg { return LoginMsg{Source: SourceShortcut} }, "log in", []SessionMode{ModeLoggedOut})
	reg.BindWithDescForMode("o", func() tea.Msg { return LogoutMsg{Source: SourceShortcut} }, "log out", []SessionMode{ModeLoggedIn})
	reg.BindWithDesc("?", func() tea.Msg { return ToggleHelpMsg{} }, "toggle help")
	reg.BindWithDesc("q", tea.Quit, "quit")
	reg.Bind("ctrl+c", tea.Quit)
	reg.Describe("enter", "press button", nil)
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Mode returns the SessionMode for the current login flag.
func (m *AppModel) Mode() SessionMode {
	return ModeFor(m.LoggedIn)
}

// Greeting derives the greeting view.
func (m *AppModel) Greeting() Greeting {
	return Greeting{LoggedIn: m.LoggedIn}
}

// Mailbox derives the mailbox view. ok is false when logged out.
func (m *AppModel) Mailbox() (Mailbox, bool) {
	if !m.LoggedIn {
		return Mailbox{}, false
	}
	return Mailbox{Messages: m.Messages}, true
}

// Button derives the one control shown: Logout when logged in, else Login.
func (m *AppModel) Button() Button {
	if m.LoggedIn {
		return NewLogoutButton(func() tea.Msg { return LogoutMsg{Source: SourceButton} })
	}
	return NewLoginButton(func() tea.Msg { return LoginMsg{Source: SourceButton} })
}

// HandleLogin sets the login flag. Redundant calls are no-ops.
func (m *AppModel) HandleLogin(source string) {
	m.setLoggedIn(true, source)
}

// HandleLogout clears the login flag. Redundant calls are no-ops.
func (m *AppModel) HandleLogout(source string) {
	m.setLoggedIn(false, source)
}

func (m *AppModel) setLoggedIn(v bool, source string) {
	t := trace.Transition{From: m.LoggedIn, To: v, Source: source}
	m.LoggedIn = v
	if mb, ok := m.Mailbox(); ok {
		t.Unread = len(mb.Messages)
	}

	if m.Logger != nil {
		m.Logger.Info("session transition",
			zap.String("from", trace.StateName(t.From)),
			zap.String("to", trace.StateName(t.To)),
			zap.Bool("changed", t.Changed()),
			zap.String("source", source),
		)
	}
	m.Recorder.Record(context.Background(), t)
}

// above renders everything stacked over the button.
func (m *AppModel) above() string {
	sections := []string{m.Greeting().View()}
	if mb, ok := m.Mailbox(); ok {
		sections = append(sections, mb.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// buttonRows returns the first row and row count of the rendered button.
func (m *AppModel) buttonRows() (top, height int) {
	return lipgloss.Height(m.above()), m.Button().Height()
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginMsg:
		a.HandleLogin(msg.Source)
		return a, nil
	case LogoutMsg:
		a.HandleLogout(msg.Source)
		return a, nil
	case ToggleHelpMsg:
		a.ShowFullHelp = !a.ShowFullHelp
		return a, nil
	case tea.WindowSizeMsg:
		a.width = msg.Width
		return a, nil
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return a, nil
		}
		top, height := a.buttonRows()
		if msg.Y >= top && msg.Y < top+height {
			return a, a.Button().Activate()
		}
		return a, nil
	case tea.KeyMsg:
		if a.Logger != nil {
			a.Logger.Debug("key", zap.String("key", msg.String()))
		}
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return a, cmd
		}
		_, cmd := a.Button().Update(msg)
		return a, cmd
	}
	return a, nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	out := lipgloss.JoinVertical(lipgloss.Left, a.above(), a.Button().View())
	if a.KeyHandler != nil {
		if h := RenderKeybindHelp(a.KeyHandler.Registry, a.Mode(), a.ShowFullHelp, a.width); h != "" {
			out += "\n" + h
		}
	}
	return out
}
