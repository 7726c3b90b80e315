package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps single keys to commands.
// Keys use tea.KeyMsg.String() notation: "q", "ctrl+c", "enter", "?".
// Space is stored as "space" for display and matched from " ".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	modeFilter   map[string][]SessionMode // nil/empty = applies to all modes
	helpOnly     map[string]bool          // shown in hints, dispatched elsewhere
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		modeFilter:   make(map[string][]SessionMode),
		helpOnly:     make(map[string]bool),
	}
}

// Bind registers a key to a command.
// Overwrites any existing binding for the key.
func (r *KeybindRegistry) Bind(k string, cmd tea.Cmd) {
	r.BindWithDesc(k, cmd, "")
}

// BindWithDesc registers a key with a description for the help bar.
// The binding applies to all modes.
func (r *KeybindRegistry) BindWithDesc(k string, cmd tea.Cmd, desc string) {
	r.BindWithDescForMode(k, cmd, desc, nil)
}

// BindWithDescForMode registers a key with a description and mode filter.
// The mode filter only affects hints: Lookup dispatches in every mode.
func (r *KeybindRegistry) BindWithDescForMode(k string, cmd tea.Cmd, desc string, modes []SessionMode) {
	n := normalizeKey(k)
	r.bindings[n] = cmd
	delete(r.helpOnly, n)
	r.describe(n, desc, modes)
}

// Describe adds a hint for a key that some view handles itself (e.g. enter on a button).
// Lookup never returns a command for it.
func (r *KeybindRegistry) Describe(k string, desc string, modes []SessionMode) {
	n := normalizeKey(k)
	delete(r.bindings, n)
	r.helpOnly[n] = true
	r.describe(n, desc, modes)
}

func (r *KeybindRegistry) describe(n, desc string, modes []SessionMode) {
	if desc != "" {
		r.descriptions[n] = desc
	} else {
		delete(r.descriptions, n)
	}
	if len(modes) > 0 {
		r.modeFilter[n] = modes
	} else {
		delete(r.modeFilter, n)
	}
}

// Lookup returns the command for a key, or nil if not bound.
func (r *KeybindRegistry) Lookup(k string) tea.Cmd {
	return r.bindings[normalizeKey(k)]
}

// Hints returns help bindings for mode, sorted by key.
// Only keys with a description are listed.
func (r *KeybindRegistry) Hints(mode SessionMode) []key.Binding {
	keys := make([]string, 0, len(r.descriptions))
	for k := range r.descriptions {
		if _, bound := r.bindings[k]; !bound && !r.helpOnly[k] {
			continue
		}
		if !r.appliesToMode(k, mode) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]key.Binding, 0, len(keys))
	for _, k := range keys {
		out = append(out, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, r.descriptions[k]),
		))
	}
	return out
}

// appliesToMode returns true if the binding applies to the given mode.
func (r *KeybindRegistry) appliesToMode(k string, mode SessionMode) bool {
	modes, ok := r.modeFilter[k]
	if !ok || len(modes) == 0 {
		return true
	}
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

// normalizeKey converts tea key strings to our canonical format.
// " " -> "space"; everything else is unchanged.
func normalizeKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// KeyHandler dispatches key presses through the registry.
type KeyHandler struct {
	Registry *KeybindRegistry
}

// NewKeyHandler creates a handler for reg.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is false the key should be passed on to views.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	if h == nil || h.Registry == nil {
		return false, nil
	}
	if c := h.Registry.Lookup(msg.String()); c != nil {
		return true, c
	}
	return false, nil
}

// KeyMap implements help.KeyMap over the registry hints for one mode.
type KeyMap struct {
	registry *KeybindRegistry
	mode     SessionMode
}

// NewKeyMap creates a KeyMap for the given registry and mode.
func NewKeyMap(registry *KeybindRegistry, mode SessionMode) *KeyMap {
	return &KeyMap{registry: registry, mode: mode}
}

// shortKeys are the keys shown when full help is off.
var shortKeys = map[string]bool{"enter": true, "?": true, "q": true}

// ShortHelp returns the condensed hints.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	var out []key.Binding
	for _, b := range km.registry.Hints(km.mode) {
		if shortKeys[b.Help().Key] {
			out = append(out, b)
		}
	}
	return out
}

// FullHelp returns every hint for the mode in a single column group.
func (km *KeyMap) FullHelp() [][]key.Binding {
	if km.registry == nil {
		return nil
	}
	all := km.registry.Hints(km.mode)
	if len(all) == 0 {
		return nil
	}
	return [][]key.Binding{all}
}
