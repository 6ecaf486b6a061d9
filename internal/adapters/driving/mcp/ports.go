package mcp

import (
	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides docs search.
	Search driving.SearchService

	// Selection makes result URLs absolute. Optional.
	Selection driving.SelectionService

	// Pages loads docs pages as markdown. Optional; read_page and the page
	// resource fail without it.
	Pages driving.PageService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
