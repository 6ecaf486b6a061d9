package algolia

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch/internal/logger"
)

const (
	// DefaultTimeout bounds a single multi-query round trip.
	DefaultTimeout = 10 * time.Second

	// HeaderApplicationID carries the application id.
	HeaderApplicationID = "X-Algolia-Application-Id"

	// HeaderAPIKey carries the search-only api key.
	HeaderAPIKey = "X-Algolia-API-Key" //nolint:gosec // G101: header name, not a credential.

	queriesPath = "/1/indexes/*/queries"
)

// Ensure Client implements driven.SearchClient at compile time.
var _ driven.SearchClient = (*Client)(nil)

// Client sends batch queries to the provider.
type Client struct {
	appID   string
	apiKey  string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithTimeout sets the request timeout.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithRateLimit throttles outgoing requests to perSecond.
// Zero or negative disables throttling.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		burst := int(perSecond)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// NewClient creates a client for the given provider settings.
func NewClient(settings domain.SearchSettings, opts ...Option) (*Client, error) {
	if settings.AppID == "" || settings.APIKey == "" {
		return nil, ErrMissingCredentials
	}

	c := &Client{
		appID:   settings.AppID,
		apiKey:  settings.APIKey,
		baseURL: strings.TrimSuffix(settings.BaseURL, "/"),
		timeout: DefaultTimeout,
	}
	if c.baseURL == "" {
		c.baseURL = fmt.Sprintf("https://%s-dsn.algolia.net", strings.ToLower(settings.AppID))
	}
	WithRateLimit(settings.RateLimit)(c)
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = &http.Client{Timeout: c.timeout}
	}
	return c, nil
}

// NewFactory returns a driven.SearchClientFactory that builds clients with
// the given options.
func NewFactory(opts ...Option) driven.SearchClientFactory {
	return func(settings domain.SearchSettings) (driven.SearchClient, error) {
		return NewClient(settings, opts...)
	}
}

// Search sends every request in one multi-query round trip.
func (c *Client) Search(ctx context.Context, requests []domain.SearchRequest) (*domain.SearchResponse, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	payload, err := json.Marshal(toRequest(requests))
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+queriesPath, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderApplicationID, c.appID)
	req.Header.Set(HeaderAPIKey, c.apiKey)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	logger.Debug("Provider responded %d in %v", resp.StatusCode, time.Since(start))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb errorBody
		_ = json.Unmarshal(body, &eb)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: eb.Message}
	}

	var decoded multiQueryResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	results := make([]domain.SearchResult, 0, len(decoded.Results))
	for i := range decoded.Results {
		results = append(results, decoded.Results[i].toDomain())
	}
	return &domain.SearchResponse{Results: results}, nil
}
