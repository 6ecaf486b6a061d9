package driving

import (
	"context"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// SearchService provides docs search to external actors.
type SearchService interface {
	// Search runs a single query. A blank query returns an empty result
	// without contacting the provider.
	Search(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResult, error)

	// Enabled reports whether the provider is configured.
	Enabled() bool
}

// SelectionService resolves a selected result URL into a navigation.
type SelectionService interface {
	// Resolve returns in-app navigation for URLs on the site origin and
	// external navigation for everything else.
	Resolve(rawURL string) domain.Navigation
}
