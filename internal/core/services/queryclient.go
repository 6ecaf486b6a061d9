package services

import (
	"context"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch/internal/logger"
)

// Ensure QueryClient implements the interface.
var _ driven.SearchClient = (*QueryClient)(nil)

// QueryClient wraps a provider client and answers all-blank batches locally.
//
// A batch is forwarded unchanged unless every request in it has an absent
// or empty query. Responses are never cached.
type QueryClient struct {
	client driven.SearchClient
}

// NewQueryClient wraps client.
func NewQueryClient(client driven.SearchClient) *QueryClient {
	return &QueryClient{client: client}
}

// Search forwards the batch, or returns one empty result per request when
// no request carries a query.
func (q *QueryClient) Search(ctx context.Context, requests []domain.SearchRequest) (*domain.SearchResponse, error) {
	if allBlank(requests) {
		logger.Debug("Blank batch of %d request(s), answering locally", len(requests))
		results := make([]domain.SearchResult, len(requests))
		for i := range results {
			results[i] = domain.EmptySearchResult()
		}
		return &domain.SearchResponse{Results: results}, nil
	}
	return q.client.Search(ctx, requests)
}

func allBlank(requests []domain.SearchRequest) bool {
	for _, req := range requests {
		if req.HasQuery() {
			return false
		}
	}
	return true
}
