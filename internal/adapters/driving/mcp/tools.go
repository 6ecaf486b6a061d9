package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

// SearchInput is the input schema for the search_docs tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the text to search the documentation for"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchOutput is the output schema for the search_docs tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
	Total   int                  `json:"total"`
}

// SearchResultOutput represents a single search hit.
type SearchResultOutput struct {
	Title      string `json:"title"`
	URL        string `json:"url"`
	Breadcrumb string `json:"breadcrumb,omitempty"`
	Content    string `json:"content,omitempty"`
}

// ReadPageInput is the input schema for the read_page tool.
type ReadPageInput struct {
	Path string `json:"path" jsonschema:"site path or absolute URL of the docs page, e.g. /docs/install"`
}

// ReadPageOutput is the output schema for the read_page tool.
type ReadPageOutput struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Markdown string `json:"markdown"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_docs",
		Description: "Search the documentation index",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "read_page",
		Description: "Read a documentation page as markdown",
	}, s.handleReadPage)
}

// handleSearch handles the search_docs tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return nil, SearchOutput{}, ErrEmptyQuery
	}
	if !s.ports.Search.Enabled() {
		return nil, SearchOutput{}, domain.ErrSearchDisabled
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)

	result, err := s.ports.Search.Search(ctx, input.Query, domain.SearchOptions{HitsPerPage: limit})
	if err != nil {
		return nil, SearchOutput{}, err
	}

	hits := result.Hits
	if len(hits) > limit {
		hits = hits[:limit]
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(hits)),
		Count:   len(hits),
		Total:   result.NbHits,
	}

	for i := range hits {
		output.Results[i] = SearchResultOutput{
			Title:      hits[i].DisplayTitle(),
			URL:        s.absoluteURL(hits[i].URL),
			Breadcrumb: hits[i].Breadcrumb(),
			Content:    hits[i].Content,
		}
	}

	return nil, output, nil
}

// handleReadPage handles the read_page tool invocation.
func (s *Server) handleReadPage(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReadPageInput,
) (*mcp.CallToolResult, ReadPageOutput, error) {
	page, err := s.loadPage(ctx, input.Path)
	if err != nil {
		return nil, ReadPageOutput{}, err
	}

	return nil, ReadPageOutput{
		Title:    page.Title,
		URL:      page.URL,
		Markdown: page.Markdown,
	}, nil
}

func (s *Server) loadPage(ctx context.Context, path string) (*domain.Page, error) {
	if s.ports.Pages == nil {
		return nil, ErrMissingPageService
	}
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: path is required", domain.ErrInvalidInput)
	}

	page, err := s.ports.Pages.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading page: %w", err)
	}
	return page, nil
}

// absoluteURL resolves a hit URL against the site origin when a selection
// service is available.
func (s *Server) absoluteURL(rawURL string) string {
	if s.ports.Selection == nil || rawURL == "" {
		return rawURL
	}
	nav := s.ports.Selection.Resolve(rawURL)
	if nav.URL == "" {
		return rawURL
	}
	return nav.URL
}
