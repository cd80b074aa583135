package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts. Plain letters go to the
// confession input, so every action uses enter, a control chord or a
// function key.
type KeyMap struct {
	// Actions
	Submit key.Binding
	Reset  key.Binding
	Accept key.Binding
	Reject key.Binding

	// View modes
	ToggleStats key.Binding
	ToggleHelp  key.Binding

	// Application
	Quit        key.Binding
	ClearScreen key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "beichten"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("Ctrl+R", "Absolution"),
		),
		Accept: key.NewBinding(
			key.WithKeys("y", "j"),
			key.WithHelp("y/j", "ja"),
		),
		Reject: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n/Esc", "nein"),
		),

		ToggleStats: key.NewBinding(
			key.WithKeys("ctrl+s", "tab"),
			key.WithHelp("Tab", "Statistiken"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "Hilfe"),
		),

		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("Esc", "verlassen"),
		),
		ClearScreen: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("Ctrl+L", "Bildschirm leeren"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.ToggleStats, k.Reset, k.ToggleHelp, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.ToggleStats, k.Reset},
		{k.Accept, k.Reject},
		{k.ToggleHelp, k.ClearScreen, k.Quit},
	}
}
