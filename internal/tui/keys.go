package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the bindings handled by the model itself. Year and country
// keys belong to the slider and the country filter.
type KeyMap struct {
	Quit  key.Binding
	Help  key.Binding
	Focus key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch focus"),
		),
	}
}
