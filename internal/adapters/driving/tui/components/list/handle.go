package list

import tea "github.com/charmbracelet/bubbletea"

// ResultsHandle is the narrow navigation contract the result list exposes
// to the header and the overlay.
type ResultsHandle interface {
	// FocusFirstResult moves the cursor to index 0. It reports false, and
	// changes nothing, when there are no hits.
	FocusFirstResult() bool

	// FocusLastResult moves the cursor to the last index. It reports false,
	// and changes nothing, when there are no hits.
	FocusLastResult() bool

	// FocusNextResult moves the cursor down by one, starting at 0 from no
	// cursor. It reports false when there are no hits or the cursor is
	// already on the last row.
	FocusNextResult() bool

	// FocusPreviousResult moves the cursor up by one. From no cursor or
	// row 0 it clears the cursor, hands focus back to the input and
	// reports false.
	FocusPreviousResult() bool

	// ClearActiveResult sets the cursor to none without moving focus.
	ClearActiveResult()

	// HasHits reports whether the list holds any hits.
	HasHits() bool
}

// Callbacks are the hooks the list invokes on its owner.
type Callbacks struct {
	// FocusInput returns keyboard focus to the query input. The returned
	// command is handed back from the Update that triggered it.
	FocusInput func() tea.Cmd

	// Select activates a row URL.
	Select func(url string) tea.Cmd

	// Close closes the overlay.
	Close func() tea.Cmd
}
