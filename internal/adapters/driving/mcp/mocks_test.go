package mcp

import (
	"context"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	result   *domain.SearchResult
	err      error
	disabled bool
	opts     domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	_ string,
	opts domain.SearchOptions,
) (*domain.SearchResult, error) {
	m.opts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.result == nil {
		r := domain.EmptySearchResult()
		return &r, nil
	}
	return m.result, nil
}

func (m *mockSearchService) Enabled() bool {
	return !m.disabled
}

// mockPageService is a mock implementation of driving.PageService.
type mockPageService struct {
	page   *domain.Page
	err    error
	target string
}

func (m *mockPageService) Load(_ context.Context, target string) (*domain.Page, error) {
	m.target = target
	return m.page, m.err
}

// mockSelectionService is a mock implementation of driving.SelectionService.
type mockSelectionService struct {
	origin string
}

func (m *mockSelectionService) Resolve(rawURL string) domain.Navigation {
	return domain.Navigation{Kind: domain.NavigateInApp, Path: rawURL, URL: m.origin + rawURL}
}
