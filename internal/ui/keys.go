package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yildizm/randy/internal/menu"
)

// keyMap holds the bindings understood by every screen. Letters are not bound to
// navigation so they can be typed into the prompt fields.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Select    key.Binding
	Back      key.Binding
	Backspace key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

var keys = defaultKeyMap()

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Back, k.Backspace, k.Quit},
	}
}

// TranslateKey converts a terminal key press into menu key events. A paste arrives as
// a single message with several runes and yields one event per rune. ctrl+c is not
// translated; the App handles it before any screen sees the key.
func TranslateKey(msg tea.KeyMsg) []menu.Key {
	switch {
	case key.Matches(msg, keys.Up):
		return []menu.Key{menu.Up}
	case key.Matches(msg, keys.Down):
		return []menu.Key{menu.Down}
	case key.Matches(msg, keys.Left):
		return []menu.Key{menu.Left}
	case key.Matches(msg, keys.Right):
		return []menu.Key{menu.Right}
	case key.Matches(msg, keys.Select):
		return []menu.Key{menu.Enter}
	case key.Matches(msg, keys.Back):
		return []menu.Key{menu.Escape}
	case key.Matches(msg, keys.Backspace):
		return []menu.Key{menu.Backspace}
	}

	switch msg.Type {
	case tea.KeyRunes:
		return menu.Chars(string(msg.Runes))
	case tea.KeySpace:
		return []menu.Key{menu.Char(' ')}
	}
	return nil
}
