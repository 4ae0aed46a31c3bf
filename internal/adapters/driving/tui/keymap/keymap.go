// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application from any view.
	Quit key.Binding

	// MenuQuit exits from the menu, where no text is being typed.
	MenuQuit key.Binding

	// Back returns to the menu.
	Back key.Binding

	// Up moves the menu cursor or scrolls a list.
	Up key.Binding

	// Down moves the menu cursor or scrolls a list.
	Down key.Binding

	// Select confirms a menu entry.
	Select key.Binding

	// NextField moves focus to the next form field.
	NextField key.Binding

	// PrevField moves focus to the previous form field.
	PrevField key.Binding

	// Submit advances through a form and submits it from the last field.
	Submit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		MenuQuit: key.NewBinding(
			key.WithKeys("q"),
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
			key.WithHelp("enter", "select"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
	}
}

// MenuHelp returns the bindings shown under the menu.
func (k *KeyMap) MenuHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.MenuQuit}
}

// FormHelp returns the bindings shown under a form.
func (k *KeyMap) FormHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Submit, k.Back, k.Quit}
}

// LookupHelp returns the bindings shown under a lookup.
func (k *KeyMap) LookupHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Back, k.Quit}
}

// RecordsHelp returns the bindings shown under a record list.
func (k *KeyMap) RecordsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}
