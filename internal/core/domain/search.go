package domain

// DefaultHitsPerPage is the page size used when none is configured.
const DefaultHitsPerPage = 20

// SearchParams holds the per-request query parameters.
type SearchParams struct {
	// Query is the query text. Nil means the parameter is absent.
	Query *string

	// HitsPerPage is the page size. Zero leaves it to the provider.
	HitsPerPage int

	// Page is the zero-based page number.
	Page int
}

// QueryText returns the query, or "" when absent.
func (p SearchParams) QueryText() string {
	if p.Query == nil {
		return ""
	}
	return *p.Query
}

// SearchRequest is one entry in a batch sent to the search provider.
type SearchRequest struct {
	// IndexName is the index to query.
	IndexName string

	// Params holds the query parameters.
	Params SearchParams
}

// HasQuery reports whether the request carries a non-empty query.
func (r SearchRequest) HasQuery() bool {
	return r.Params.QueryText() != ""
}

// NewSearchRequest builds a request for a single query.
func NewSearchRequest(indexName, query string, hitsPerPage int) SearchRequest {
	q := query
	return SearchRequest{
		IndexName: indexName,
		Params: SearchParams{
			Query:       &q,
			HitsPerPage: hitsPerPage,
		},
	}
}

// SearchResult is the provider's response to one request.
type SearchResult struct {
	Hits             []Hit
	NbHits           int
	Page             int
	NbPages          int
	HitsPerPage      int
	ProcessingTimeMS int
	ExhaustiveNbHits bool
	Query            string
	Params           string
}

// SearchResponse is the provider's response to a batch.
// Results are in request order.
type SearchResponse struct {
	Results []SearchResult
}

// EmptySearchResult returns the locally built result used in place of a
// network round trip for blank queries.
func EmptySearchResult() SearchResult {
	return SearchResult{
		Hits:             []Hit{},
		NbHits:           0,
		Page:             0,
		NbPages:          0,
		HitsPerPage:      DefaultHitsPerPage,
		ProcessingTimeMS: 0,
		ExhaustiveNbHits: true,
		Query:            "",
		Params:           "",
	}
}

// SearchOptions configures a single query issued through the search service.
type SearchOptions struct {
	// HitsPerPage overrides the configured page size when > 0.
	HitsPerPage int

	// Page is the zero-based page number.
	Page int
}
