// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// ToggleSearch is the global shortcut that opens or closes the overlay.
	ToggleSearch key.Binding

	// OpenSearch opens the overlay from the trigger.
	OpenSearch key.Binding

	// ToggleMode switches the overlay between Search and Ask AI.
	ToggleMode key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select confirms a selection.
	Select key.Binding

	// Cancel clears the query or closes the overlay.
	Cancel key.Binding

	// Back returns to the previous page in the reader.
	Back key.Binding

	// CopyMarkdown copies the current page as markdown.
	CopyMarkdown key.Binding

	// CopyURL copies the focused result's URL.
	CopyURL key.Binding

	// OpenBrowser opens the current page in the system browser.
	OpenBrowser key.Binding

	// Home loads the configured home page.
	Home key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		ToggleSearch: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "search"),
		),
		OpenSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "search/ask ai"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace", "b"),
			key.WithHelp("b", "back"),
		),
		CopyMarkdown: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy markdown"),
		),
		CopyURL: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy link"),
		),
		OpenBrowser: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open in browser"),
		),
		Home: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "home"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.OpenSearch, k.Help, k.Quit}
}

// OverlayHelp returns keybindings shown while the overlay is open.
func (k *KeyMap) OverlayHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.ToggleMode, k.Cancel}
}

// ReaderHelp returns keybindings for the page reader.
func (k *KeyMap) ReaderHelp() []key.Binding {
	return []key.Binding{k.OpenSearch, k.CopyMarkdown, k.OpenBrowser, k.Back, k.Quit}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleSearch, k.OpenSearch, k.ToggleMode},
		{k.Up, k.Down, k.Select, k.Cancel, k.CopyURL},
		{k.CopyMarkdown, k.OpenBrowser, k.Back, k.Home},
		{k.Help, k.Quit},
	}
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
