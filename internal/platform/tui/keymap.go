package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the bindings of the refresh screen.
type KeyMap struct {
	Pull    key.Binding
	Push    key.Binding
	Release key.Binding
	Menu    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default refresh screen bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Pull: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "pull"),
		),
		Push: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "push"),
		),
		Release: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "release"),
		),
		Menu: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pull, k.Release, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pull, k.Push, k.Release},
		{k.Menu, k.Help, k.Quit},
	}
}

// MenuKeyMap defines the bindings of the variant picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns the default picker bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
