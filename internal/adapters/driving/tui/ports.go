// Package tui provides an interactive terminal user interface for docsearch.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides docs search. Enabled reports whether the provider
	// is configured; the overlay and hotkey follow it.
	Search driving.SearchService

	// Selection resolves a selected result into a navigation.
	Selection driving.SelectionService

	// Pages loads docs pages into the reader.
	Pages driving.PageService

	// Copy copies page markdown and records the click.
	Copy driving.CopyService

	// ResultAction opens URLs in the browser and copies result links.
	ResultAction driving.ResultActionService

	// Settings manages application settings.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the required services.
func NewPorts(
	search driving.SearchService,
	selection driving.SelectionService,
	pages driving.PageService,
) *Ports {
	return &Ports{
		Search:    search,
		Selection: selection,
		Pages:     pages,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Selection == nil {
		return ErrMissingSelectionService
	}
	if p.Pages == nil {
		return ErrMissingPageService
	}
	return nil
}
