// Package header provides the overlay's mode header: the query input, the
// stall spinner and the Search / Ask AI toggle.
package header

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// AskAIPrompt replaces the input while the overlay is in Ask AI mode.
const AskAIPrompt = "Ask your question below"

// Results is the part of the result list the header drives.
type Results interface {
	FocusFirstResult() bool
	FocusLastResult() bool
	ClearActiveResult()
}

// Callbacks are the hooks the header invokes on its owner.
type Callbacks struct {
	// Refine issues a query for the new input value.
	Refine func(query string) tea.Cmd

	// Close closes the overlay.
	Close func() tea.Cmd
}

// Header is the top row of the overlay.
type Header struct {
	styles    *styles.Styles
	input     *input.SearchInput
	spinner   spinner.Model
	results   Results
	callbacks Callbacks
	mode      domain.Mode
	stalled   bool
	width     int
}

// New creates a header driving results.
func New(s *styles.Styles, results Results, cb Callbacks) *Header {
	if s == nil {
		s = styles.DefaultStyles()
	}

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(s.Title),
	)

	return &Header{
		styles:    s,
		input:     input.NewSearchInput(s),
		spinner:   sp,
		results:   results,
		callbacks: cb,
		mode:      domain.ModeSearch,
		width:     60,
	}
}

// Init initialises the header.
func (h *Header) Init() tea.Cmd {
	return h.input.Init()
}

// Update handles header messages. Keys are only handled in Search mode.
func (h *Header) Update(msg tea.Msg) (*Header, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !h.stalled {
			return h, nil
		}
		var cmd tea.Cmd
		h.spinner, cmd = h.spinner.Update(msg)
		return h, cmd

	case tea.KeyMsg:
		if h.mode != domain.ModeSearch {
			return h, nil
		}
		return h, h.handleKey(msg)
	}

	var cmd tea.Cmd
	h.input, cmd = h.input.Update(msg)
	return h, cmd
}

func (h *Header) handleKey(msg tea.KeyMsg) tea.Cmd {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEsc:
		if h.input.Value() == "" {
			return h.close()
		}
		h.input.SetValue("")
		h.results.ClearActiveResult()
		return h.refine("")

	case tea.KeyDown:
		if h.results.FocusFirstResult() {
			h.input.Blur()
		}
		return nil

	case tea.KeyUp:
		if h.results.FocusLastResult() {
			h.input.Blur()
		}
		return nil
	}

	before := h.input.Value()
	var cmd tea.Cmd
	h.input, cmd = h.input.Update(msg)
	if after := h.input.Value(); after != before {
		return tea.Batch(cmd, h.refine(after))
	}
	return cmd
}

func (h *Header) refine(query string) tea.Cmd {
	if h.callbacks.Refine == nil {
		return nil
	}
	return h.callbacks.Refine(query)
}

func (h *Header) close() tea.Cmd {
	if h.callbacks.Close == nil {
		return nil
	}
	return h.callbacks.Close()
}

// SetMode switches the header between Search and Ask AI. Entering Search
// focuses the input with its content selected.
func (h *Header) SetMode(mode domain.Mode) tea.Cmd {
	h.mode = mode
	if mode != domain.ModeSearch {
		h.input.Blur()
		return nil
	}
	cmd := h.input.Focus()
	h.input.SelectAll()
	return cmd
}

// Mode returns the current mode.
func (h *Header) Mode() domain.Mode {
	return h.mode
}

// Focus returns keyboard focus to the input without selecting its content.
func (h *Header) Focus() tea.Cmd {
	return h.input.Focus()
}

// Blur removes keyboard focus from the input.
func (h *Header) Blur() {
	h.input.Blur()
}

// Focused reports whether the input holds keyboard focus.
func (h *Header) Focused() bool {
	return h.input.Focused()
}

// SetStalled toggles the stall spinner and returns its first tick.
func (h *Header) SetStalled(stalled bool) tea.Cmd {
	was := h.stalled
	h.stalled = stalled
	if stalled && !was {
		return h.spinner.Tick
	}
	return nil
}

// Stalled reports whether the spinner is showing.
func (h *Header) Stalled() bool {
	return h.stalled
}

// Value returns the query text.
func (h *Header) Value() string {
	return h.input.Value()
}

// SetValue replaces the query text without issuing a query.
func (h *Header) SetValue(value string) {
	h.input.SetValue(value)
}

// Selected reports whether the query text is selected.
func (h *Header) Selected() bool {
	return h.input.Selected()
}

// Reset clears the query text and the spinner.
func (h *Header) Reset() {
	h.input.Reset()
	h.stalled = false
}

// SetWidth sets the header width.
func (h *Header) SetWidth(width int) {
	h.width = width
	h.input.SetWidth(width - lipgloss.Width(h.renderToggle()) - 4)
}

// View renders the header.
func (h *Header) View() string {
	var left string
	if h.mode == domain.ModeAskAI {
		left = h.styles.Muted.Render(AskAIPrompt)
	} else {
		left = h.input.View()
	}
	if h.stalled {
		left = h.spinner.View() + " " + left
	}

	toggle := h.renderToggle()
	gap := h.width - lipgloss.Width(left) - lipgloss.Width(toggle)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + toggle
}

func (h *Header) renderToggle() string {
	modes := []domain.Mode{domain.ModeSearch, domain.ModeAskAI}
	parts := make([]string, 0, len(modes))
	for _, m := range modes {
		if m == h.mode {
			parts = append(parts, h.styles.ModeActive.Render(m.Label()))
		} else {
			parts = append(parts, h.styles.ModeInactive.Render(m.Label()))
		}
	}
	return strings.Join(parts, h.styles.Muted.Render("|"))
}
