package viz

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	generate key.Binding
	start    key.Binding
	next     key.Binding
	prev     key.Binding
	faster   key.Binding
	slower   key.Binding
	shape    key.Binding
	theme    key.Binding
	help     key.Binding
	quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		generate: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate")),
		start:    key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter", "start")),
		next:     key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/l", "next algo")),
		prev:     key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("h", "prev algo")),
		faster:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
		slower:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "slower")),
		shape:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "shape")),
		theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.generate, k.start, k.next, k.faster, k.slower, k.help, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.generate, k.start, k.shape},
		{k.next, k.prev},
		{k.faster, k.slower, k.theme},
		{k.help, k.quit},
	}
}
