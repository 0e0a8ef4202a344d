package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap declares the dashboard key bindings.
type keyMap struct {
	Quit      key.Binding
	SwitchTab key.Binding
	PrevColor key.Binding
	NextColor key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		SwitchTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch view"),
		),
		PrevColor: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous clock color"),
		),
		NextColor: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next clock color"),
		),
	}
}
