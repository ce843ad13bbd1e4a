package tui

import "github.com/charmbracelet/bubbles/key"

// LiveKeyMap defines the key bindings for the live view.
type LiveKeyMap struct {
	Pause key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LiveKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LiveKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause},
		{k.Help, k.Quit},
	}
}

// DefaultLiveKeyMap returns default key bindings.
func DefaultLiveKeyMap() LiveKeyMap {
	return LiveKeyMap{
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p/space", "pause"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
