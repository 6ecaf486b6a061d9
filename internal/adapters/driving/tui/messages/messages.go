// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// SearchCompleted carries the response to one refine back to the model.
// Seq identifies the refine that issued it; only the latest is rendered.
type SearchCompleted struct {
	Seq    uint64
	Query  string
	Result *domain.SearchResult
	Err    error
}

// SearchStalled fires when the query with Seq has been in flight longer
// than the stall delay.
type SearchStalled struct {
	Seq uint64
}

// NavigationRequested is delivered one frame after the overlay closes on a
// selection.
type NavigationRequested struct {
	Navigation domain.Navigation
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewHome is the landing screen shown behind the overlay.
	ViewHome ViewType = iota
	// ViewReader shows a docs page.
	ViewReader
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewReader:
		return "reader"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// PageLoaded carries a docs page fetched for the reader.
type PageLoaded struct {
	Target string
	Page   *domain.Page
	Err    error
}

// CopyCompleted reports the outcome of a copy-as-markdown action.
type CopyCompleted struct {
	Err error
}

// CopyReset ends the "Copied" indication started by the copy with Seq.
type CopyReset struct {
	Seq uint64
}

// ActionCompleted reports the outcome of a result action such as opening
// the browser or copying a URL.
type ActionCompleted struct {
	Action string
	Err    error
}

// SettingsChanged is pushed by the config watcher after a reload.
type SettingsChanged struct {
	Settings *domain.Settings
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
