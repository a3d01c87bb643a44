package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the filter screen understands.
type KeyMap struct {
	Quit        key.Binding
	Help        key.Binding
	NextFilter  key.Binding
	PrevFilter  key.Binding
	Open        key.Binding
	Escape      key.Binding
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	FocusSearch key.Binding
	ClearAll    key.Binding
	DismissChip key.Binding
}

// DefaultKeyMap returns the standard bindings.
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
		NextFilter: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next filter"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "prev filter"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open/select"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		FocusSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear all"),
		),
		DismissChip: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "remove filter"),
		),
	}
}

// helpBindings are listed in the help modal, in order.
func (k KeyMap) helpBindings() []key.Binding {
	return []key.Binding{
		k.NextFilter, k.PrevFilter, k.Open, k.Escape,
		k.Up, k.Down, k.PageUp, k.PageDown,
		k.FocusSearch, k.ClearAll, k.DismissChip,
		k.Help, k.Quit,
	}
}
