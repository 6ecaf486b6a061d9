package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockSearchClient implements driven.SearchClient for testing.
type mockSearchClient struct {
	mu       sync.Mutex
	calls    [][]domain.SearchRequest
	response *domain.SearchResponse
	err      error
}

func (m *mockSearchClient) Search(_ context.Context, requests []domain.SearchRequest) (*domain.SearchResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, requests)
	if m.err != nil {
		return nil, m.err
	}
	if m.response != nil {
		return m.response, nil
	}
	results := make([]domain.SearchResult, len(requests))
	for i, req := range requests {
		results[i] = domain.SearchResult{
			Hits:   []domain.Hit{{ObjectID: "1", Title: "hit for " + req.Params.QueryText()}},
			NbHits: 1,
			Query:  req.Params.QueryText(),
		}
	}
	return &domain.SearchResponse{Results: results}, nil
}

func (m *mockSearchClient) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func mockFactory(client driven.SearchClient) driven.SearchClientFactory {
	return func(domain.SearchSettings) (driven.SearchClient, error) {
		return client, nil
	}
}

// mockClipboard implements driven.Clipboard for testing.
type mockClipboard struct {
	text string
	err  error
}

func (m *mockClipboard) WriteText(text string) error {
	if m.err != nil {
		return m.err
	}
	m.text = text
	return nil
}

// mockOpener implements driven.URLOpener for testing.
type mockOpener struct {
	opened []string
}

func (m *mockOpener) Open(url string) error {
	m.opened = append(m.opened, url)
	return nil
}

// mockSink implements driven.EventSink for testing.
type mockSink struct {
	events  []domain.Event
	queries []map[string]string
	err     error
}

func (m *mockSink) Send(_ context.Context, event domain.Event, query map[string]string) error {
	m.events = append(m.events, event)
	m.queries = append(m.queries, query)
	return m.err
}

// mockAnalytics implements driving.AnalyticsService for testing.
type mockAnalytics struct {
	events []domain.Event
}

func (m *mockAnalytics) LogEvent(_ context.Context, event domain.Event) {
	m.events = append(m.events, event)
}

func (m *mockAnalytics) CaptureAttribution(string, string) {}

func (m *mockAnalytics) Attribution() domain.Attribution { return domain.Attribution{} }

func (m *mockAnalytics) InitialReferrer() string { return "" }

// failingSessionStore implements driven.SessionStore and fails every call.
type failingSessionStore struct{}

var errStorage = errors.New("storage unavailable")

func (failingSessionStore) Get(string) (string, bool, error) { return "", false, errStorage }

func (failingSessionStore) Set(string, string) error { return errStorage }

func (failingSessionStore) Close() error { return nil }

// mockFetcher implements driven.PageFetcher for testing.
type mockFetcher struct {
	html    string
	fetched []string
	err     error
}

func (m *mockFetcher) Fetch(_ context.Context, url string) (string, error) {
	m.fetched = append(m.fetched, url)
	return m.html, m.err
}

type mockExtractor struct{}

func (mockExtractor) Extract(html string) (*driven.ExtractedContent, error) {
	return &driven.ExtractedContent{Title: "Page", ContentHTML: html}, nil
}

type mockConverter struct{}

func (mockConverter) Convert(html string) (string, error) {
	return "md:" + html, nil
}
