package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"peoplepicker/internal/ui/autocomplete"
)

// KeyMap holds the application-level bindings; everything else is
// handled by the picker
type KeyMap struct {
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap is the built-in application key binding set
var DefaultKeyMap = KeyMap{
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("F1", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// helpKeys combines the picker and application bindings for the help bar
type helpKeys struct {
	picker autocomplete.KeyMap
	app    KeyMap
}

func (k helpKeys) ShortHelp() []key.Binding {
	return append(k.picker.ShortHelp(), k.app.Help, k.app.Quit)
}

func (k helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.picker.ShortHelp(), {k.app.Help, k.app.Quit}}
}
