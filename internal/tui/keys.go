package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings active while the catalog loads
type KeyMap struct {
	Cancel key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Cancel: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// HelpLine renders the bindings as "key action" pairs
func (k KeyMap) HelpLine() string {
	h := k.Cancel.Help()
	return h.Key + " " + h.Desc
}
