// Package tui provides the terminal user interface for LED Board.
// This file contains the key bindings.
package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the key bindings for the board view.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Toggle    key.Binding
	Add       key.Binding
	Remove    key.Binding
	RemoveAll key.Binding
	AllOn     key.Binding
	AllOff    key.Binding
	Color     key.Binding
	Blink     key.Binding
	Timer     key.Binding
	AllColor  key.Binding
	AllBlink  key.Binding
	AllTimer  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add LED"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "remove"),
		),
		RemoveAll: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "remove all"),
		),
		AllOn: key.NewBinding(
			key.WithKeys("O"),
			key.WithHelp("O", "all on"),
		),
		AllOff: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "all off"),
		),
		Color: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "color"),
		),
		Blink: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "blink rate"),
		),
		Timer: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "auto-off"),
		),
		AllColor: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "color all lit"),
		),
		AllBlink: key.NewBinding(
			key.WithKeys("B"),
			key.WithHelp("B", "blink all lit"),
		),
		AllTimer: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "auto-off all lit"),
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

// ShortHelp returns the bindings shown in the collapsed help line.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Add, k.Remove, k.Color, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.Add, k.Remove, k.RemoveAll},
		{k.Color, k.Blink, k.Timer},
		{k.AllOn, k.AllOff, k.AllColor, k.AllBlink, k.AllTimer},
		{k.Help, k.Quit},
	}
}
