package driven

import (
	"context"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// SearchClient executes batch queries against the hosted search provider.
type SearchClient interface {
	// Search sends every request in one round trip.
	// Results are returned in request order.
	Search(ctx context.Context, requests []domain.SearchRequest) (*domain.SearchResponse, error)
}

// SearchClientFactory creates a client for the given provider settings.
// Used to rebuild the client when configuration changes at runtime.
type SearchClientFactory func(settings domain.SearchSettings) (SearchClient, error)
