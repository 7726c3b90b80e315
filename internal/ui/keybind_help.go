package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp renders the help bar for mode using bubbles/help.
// full selects the expanded listing; width <= 0 means unbounded.
func RenderKeybindHelp(reg *KeybindRegistry, mode SessionMode, full bool, width int) string {
	if reg == nil {
		return ""
	}
	h := help.New()
	h.ShowAll = full
	if width > 0 {
		h.Width = width
	}
	h.Styles.ShortKey = Styles.HintKey
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint
	h.Styles.FullKey = Styles.HintKey
	h.Styles.FullDesc = Styles.Hint
	h.Styles.FullSeparator = Styles.Hint

	content := h.View(NewKeyMap(reg, mode))
	if content == "" {
		return ""
	}
	return lipgloss.NewStyle().MarginTop(1).Render(content)
}
