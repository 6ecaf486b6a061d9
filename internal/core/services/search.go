package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
	"github.com/custodia-labs/docsearch/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService runs docs queries through the query client.
// The provider client is rebuilt whenever settings change.
type SearchService struct {
	factory driven.SearchClientFactory

	mu       sync.RWMutex
	settings domain.SearchSettings
	client   driven.SearchClient
}

// NewSearchService creates a search service. It is disabled until
// Configure is called with complete provider settings.
func NewSearchService(factory driven.SearchClientFactory) *SearchService {
	return &SearchService{factory: factory}
}

// Configure applies provider settings. Incomplete settings disable search.
func (s *SearchService) Configure(settings domain.SearchSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = settings
	if !settings.IsConfigured() {
		logger.Debug("Search disabled, missing %v", settings.MissingKeys())
		s.client = nil
		return nil
	}

	client, err := s.factory(settings)
	if err != nil {
		s.client = nil
		return fmt.Errorf("create search client: %w", err)
	}
	s.client = NewQueryClient(client)
	logger.Debug("Search configured for index %q", settings.IndexName)
	return nil
}

// Enabled reports whether the provider is configured.
func (s *SearchService) Enabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client != nil
}

// Search runs a single query against the configured index.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) (*domain.SearchResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	s.mu.RLock()
	client, settings := s.client, s.settings
	s.mu.RUnlock()

	if client == nil {
		return nil, domain.ErrSearchDisabled
	}

	hitsPerPage := opts.HitsPerPage
	if hitsPerPage <= 0 {
		hitsPerPage = settings.HitsPerPage
	}
	if hitsPerPage <= 0 {
		hitsPerPage = domain.DefaultHitsPerPage
	}

	req := domain.NewSearchRequest(settings.IndexName, query, hitsPerPage)
	req.Params.Page = opts.Page

	resp, err := client.Search(ctx, []domain.SearchRequest{req})
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	if resp == nil || len(resp.Results) == 0 {
		empty := domain.EmptySearchResult()
		return &empty, nil
	}

	result := resp.Results[0]
	logger.Debug("Hits: %d of %d (%dms)", len(result.Hits), result.NbHits, result.ProcessingTimeMS)
	return &result, nil
}
