package driving

import (
	"context"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// PageService loads docs pages for the in-app reader.
type PageService interface {
	// Load fetches a site path (optionally with a fragment) and returns it
	// as markdown.
	Load(ctx context.Context, target string) (*domain.Page, error)
}
