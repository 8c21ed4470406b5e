package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Activate key.Binding
	Add      key.Binding
	Complete key.Binding
	Reload   key.Binding
	Detail   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open/toggle")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
		Complete: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "toggle done")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Detail:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "detail")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.Add, k.Complete, k.Detail, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Activate},
		{k.Add, k.Complete, k.Reload},
		{k.Detail, k.Help, k.Quit},
	}
}
