package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every [key.Binding] the browser reacts to. Each view shows its own subset as help.
type keyMap struct {
	up      key.Binding
	down    key.Binding
	open    key.Binding
	back    key.Binding
	remove  key.Binding
	yes     key.Binding
	no      key.Binding
	refresh key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "view recipe")),
		back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to list")),
		remove:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		yes:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "delete it")),
		no:      key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n/esc", "keep it")),
		refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.up, k.down, k.open, k.remove, k.refresh, k.quit}
}

func (k keyMap) detailHelp() []key.Binding {
	return []key.Binding{k.back, k.remove, k.quit}
}

func (k keyMap) confirmHelp() []key.Binding {
	return []key.Binding{k.yes, k.no}
}
