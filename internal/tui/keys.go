package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Navigation
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Enter   key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Home    key.Binding
	Program key.Binding
	Profile key.Binding
	Contact key.Binding

	// Actions
	Quit      key.Binding
	Escape    key.Binding
	Filter    key.Binding
	Refresh   key.Binding
	Like      key.Binding
	Share     key.Binding
	Subscribe key.Binding
	About     key.Binding
	Video     key.Binding
	Edit      key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "previous month"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "next month"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "previous tab"),
		),
		Home: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "home"),
		),
		Program: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "program"),
		),
		Profile: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "company profile"),
		),
		Contact: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "contact us"),
		),

		// Actions
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Like: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "like"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "share"),
		),
		Subscribe: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "subscribe"),
		),
		About: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "see more"),
		),
		Video: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "play video"),
		),
		Edit: key.NewBinding(
			key.WithKeys("i", "enter"),
			key.WithHelp("i", "edit form"),
		),
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
