// Package list provides the navigable search result list for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// NoCursor is the cursor value when no row is focused.
const NoCursor = -1

// RowHeight is the number of lines every row occupies: title and breadcrumb.
const RowHeight = 2

const (
	loadingText   = "Loading..."
	noResultsText = "No results found."
)

// ResultList displays search hits and owns the navigation cursor.
// A cursor other than NoCursor means keyboard focus is on that row.
type ResultList struct {
	hits      []domain.Hit
	cursor    int
	offset    int
	query     string
	loading   bool
	err       error
	callbacks Callbacks
	focusCmd  tea.Cmd
	styles    *styles.Styles
	width     int
	height    int
}

var _ ResultsHandle = (*ResultList)(nil)

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles, cb Callbacks) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		cursor:    NoCursor,
		callbacks: cb,
		styles:    s,
		width:     80,
		height:    10,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles row-level keys and mouse events. Keys only reach the list
// while a row is focused.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := r.handleKey(msg)
		return r, tea.Batch(r.takeFocusCmd(), cmd)
	case tea.MouseMsg:
		return r, r.handleMouse(msg)
	}
	return r, nil
}

func (r *ResultList) handleKey(msg tea.KeyMsg) tea.Cmd {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyDown:
		r.FocusNextResult()
	case tea.KeyUp:
		if !r.FocusPreviousResult() {
			r.ClearActiveResult()
		}
	case tea.KeyEsc:
		r.ClearActiveResult()
		r.focusInput()
		if r.callbacks.Close != nil {
			return r.callbacks.Close()
		}
	case tea.KeyEnter:
		return r.activate(r.cursor)
	}
	return nil
}

// handleMouse expects Y relative to the top of the list.
func (r *ResultList) handleMouse(msg tea.MouseMsg) tea.Cmd {
	index, ok := r.RowAt(msg.Y)
	if !ok {
		return nil
	}

	switch {
	case msg.Action == tea.MouseActionMotion:
		r.setCursor(index)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		r.setCursor(index)
		return r.activate(index)
	}
	return nil
}

func (r *ResultList) activate(index int) tea.Cmd {
	if index < 0 || index >= len(r.hits) {
		return nil
	}
	url := r.hits[index].URL
	if url == "" || r.callbacks.Select == nil {
		return nil
	}
	return r.callbacks.Select(url)
}

func (r *ResultList) focusInput() {
	if r.callbacks.FocusInput != nil {
		r.focusCmd = tea.Batch(r.focusCmd, r.callbacks.FocusInput())
	}
}

// takeFocusCmd returns and clears the command from the last focusInput.
func (r *ResultList) takeFocusCmd() tea.Cmd {
	cmd := r.focusCmd
	r.focusCmd = nil
	return cmd
}

// FocusFirstResult implements ResultsHandle.
func (r *ResultList) FocusFirstResult() bool {
	if len(r.hits) == 0 {
		return false
	}
	r.setCursor(0)
	return true
}

// FocusLastResult implements ResultsHandle.
func (r *ResultList) FocusLastResult() bool {
	if len(r.hits) == 0 {
		return false
	}
	r.setCursor(len(r.hits) - 1)
	return true
}

// FocusNextResult implements ResultsHandle.
func (r *ResultList) FocusNextResult() bool {
	if len(r.hits) == 0 {
		return false
	}
	if r.cursor == NoCursor {
		r.setCursor(0)
		return true
	}
	next := min(r.cursor+1, len(r.hits)-1)
	if next == r.cursor {
		return false
	}
	r.setCursor(next)
	return true
}

// FocusPreviousResult implements ResultsHandle.
func (r *ResultList) FocusPreviousResult() bool {
	if len(r.hits) == 0 {
		r.focusInput()
		return false
	}
	if r.cursor <= 0 {
		r.focusInput()
		r.cursor = NoCursor
		return false
	}
	r.setCursor(r.cursor - 1)
	return true
}

// ClearActiveResult implements ResultsHandle.
func (r *ResultList) ClearActiveResult() {
	r.cursor = NoCursor
}

// HasHits implements ResultsHandle.
func (r *ResultList) HasHits() bool {
	return len(r.hits) > 0
}

func (r *ResultList) setCursor(index int) {
	r.cursor = index
	visible := r.visibleRows()
	if index < r.offset {
		r.offset = index
	}
	if index >= r.offset+visible {
		r.offset = index - visible + 1
	}
}

func (r *ResultList) visibleRows() int {
	return max(1, r.height/RowHeight)
}

// RowAt maps a Y offset inside the list to a row index.
func (r *ResultList) RowAt(y int) (int, bool) {
	if y < 0 || r.loading || r.err != nil {
		return 0, false
	}
	index := r.offset + y/RowHeight
	if index >= len(r.hits) || y/RowHeight >= r.visibleRows() {
		return 0, false
	}
	return index, true
}

// SetQuery records the query text. Any query change clears the cursor.
func (r *ResultList) SetQuery(query string) {
	if query != r.query {
		r.cursor = NoCursor
	}
	r.query = query
}

// SetHits replaces the hits and clears the cursor.
func (r *ResultList) SetHits(hits []domain.Hit) {
	r.hits = hits
	r.cursor = NoCursor
	r.offset = 0
	r.err = nil
}

// SetLoading marks whether a query is in flight.
func (r *ResultList) SetLoading(loading bool) {
	r.loading = loading
}

// SetError shows a provider error in place of the hits.
func (r *ResultList) SetError(err error) {
	r.err = err
	if err != nil {
		r.hits = nil
		r.cursor = NoCursor
	}
}

// Reset clears hits, query and cursor.
func (r *ResultList) Reset() {
	r.hits = nil
	r.query = ""
	r.cursor = NoCursor
	r.offset = 0
	r.loading = false
	r.err = nil
}

// Cursor returns the focused row index, or NoCursor.
func (r *ResultList) Cursor() int {
	return r.cursor
}

// Focused reports whether a row holds keyboard focus.
func (r *ResultList) Focused() bool {
	return r.cursor != NoCursor
}

// ActiveHit returns the focused hit, or nil.
func (r *ResultList) ActiveHit() *domain.Hit {
	if r.cursor < 0 || r.cursor >= len(r.hits) {
		return nil
	}
	return &r.hits[r.cursor]
}

// Hits returns the current hits.
func (r *ResultList) Hits() []domain.Hit {
	return r.hits
}

// Count returns the number of hits.
func (r *ResultList) Count() int {
	return len(r.hits)
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// View renders the result list.
func (r *ResultList) View() string {
	switch {
	case r.loading:
		return r.styles.Muted.Render(loadingText)
	case r.err != nil:
		return r.styles.Error.Render(fmt.Sprintf("Search failed: %v", r.err))
	case len(r.hits) == 0 && r.query == "":
		return ""
	case len(r.hits) == 0:
		return r.styles.Muted.Render(noResultsText)
	}

	end := min(r.offset+r.visibleRows(), len(r.hits))
	rows := make([]string, 0, end-r.offset)
	for i := r.offset; i < end; i++ {
		rows = append(rows, r.renderRow(i, &r.hits[i]))
	}
	return strings.Join(rows, "\n")
}

// renderRow formats a hit as a title line and a breadcrumb line.
func (r *ResultList) renderRow(index int, hit *domain.Hit) string {
	selected := index == r.cursor

	indicator := "  "
	base := r.styles.Normal
	match := r.styles.Match
	if selected {
		indicator = "> "
		base = r.styles.Selected
		match = r.styles.Match.Inherit(r.styles.Selected)
	}

	var title strings.Builder
	title.WriteString(base.Render(indicator))
	for _, part := range hit.TitleParts() {
		if part.Matched {
			title.WriteString(match.Render(part.Text))
		} else {
			title.WriteString(base.Render(part.Text))
		}
	}

	clip := lipgloss.NewStyle().MaxWidth(r.width)
	crumb := ""
	if hit.URL != "" {
		crumb = r.styles.Breadcrumb.Render("    " + hit.Breadcrumb())
	}
	return clip.Render(title.String()) + "\n" + clip.Render(crumb)
}
