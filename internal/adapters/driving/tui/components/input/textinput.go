// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/styles"
)

// Placeholder is shown while the query is empty.
const Placeholder = "Search docs"

// SearchInput wraps a bubbles textinput with search styling and a
// select-all state: after SelectAll the next typed rune replaces the value.
type SearchInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	selected  bool
	width     int
}

// NewSearchInput creates a new search input component.
func NewSearchInput(s *styles.Styles) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = Placeholder
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &SearchInput{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Init initialises the search input.
func (s *SearchInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (s *SearchInput) Update(msg tea.Msg) (*SearchInput, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && s.selected {
		s.selected = false
		//nolint:exhaustive // handling only relevant key types
		switch keyMsg.Type {
		case tea.KeyRunes, tea.KeySpace:
			s.textinput.SetValue("")
		case tea.KeyBackspace, tea.KeyDelete:
			s.textinput.SetValue("")
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.textinput, cmd = s.textinput.Update(msg)
	return s, cmd
}

// View renders the search input.
func (s *SearchInput) View() string {
	if s.selected && s.textinput.Value() != "" {
		return s.textinput.Prompt + s.styles.Selected.Render(s.textinput.Value())
	}
	return s.textinput.View()
}

// Value returns the current input value.
func (s *SearchInput) Value() string {
	return s.textinput.Value()
}

// SetValue sets the input value.
func (s *SearchInput) SetValue(value string) {
	s.selected = false
	s.textinput.SetValue(value)
}

// SelectAll marks the whole value as selected.
func (s *SearchInput) SelectAll() {
	s.selected = true
	s.textinput.CursorEnd()
}

// Selected reports whether the value is selected.
func (s *SearchInput) Selected() bool {
	return s.selected
}

// Focus sets focus on the input.
func (s *SearchInput) Focus() tea.Cmd {
	return s.textinput.Focus()
}

// Blur removes focus from the input.
func (s *SearchInput) Blur() {
	s.selected = false
	s.textinput.Blur()
}

// Focused returns whether the input is focused.
func (s *SearchInput) Focused() bool {
	return s.textinput.Focused()
}

// SetWidth sets the width of the input.
func (s *SearchInput) SetWidth(width int) {
	s.width = width
	// Account for prompt and padding
	inputWidth := width - 6
	if inputWidth < 20 {
		inputWidth = 20
	}
	s.textinput.Width = inputWidth
}

// Width returns the current width.
func (s *SearchInput) Width() int {
	return s.width
}

// Reset clears the input.
func (s *SearchInput) Reset() {
	s.selected = false
	s.textinput.Reset()
}
