// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// Up navigates up in the tree or scrolls the page.
	Up key.Binding

	// Down navigates down in the tree or scrolls the page.
	Down key.Binding

	// Select opens the page under the cursor.
	Select key.Binding

	// FocusSearch jumps keyboard focus to the highlight search field.
	FocusSearch key.Binding

	// Submit runs the highlight search.
	Submit key.Binding

	// NextMatch moves to the next match, wrapping at the end.
	NextMatch key.Binding

	// PrevMatch moves to the previous match, wrapping at the start.
	PrevMatch key.Binding

	// Top scrolls to the start of the page.
	Top key.Binding

	// Bottom scrolls to the end of the page.
	Bottom key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		FocusSearch: key.NewBinding(
			key.WithKeys("ctrl+f", "/"),
			key.WithHelp("ctrl+f", "search"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "find"),
		),
		NextMatch: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next match"),
		),
		PrevMatch: key.NewBinding(
			key.WithKeys("N", "p"),
			key.WithHelp("N", "prev match"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
	}
}

// BrowserHelp returns keybindings shown while browsing the tree.
func (k *KeyMap) BrowserHelp() []key.Binding {
	return []key.Binding{k.Up, k.Select, k.Quit}
}

// PagerHelp returns keybindings shown while viewing a page.
func (k *KeyMap) PagerHelp() []key.Binding {
	return []key.Binding{k.FocusSearch, k.NextMatch, k.PrevMatch, k.Back}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
