package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
)

// DefaultTimeout bounds a single event delivery.
const DefaultTimeout = 5 * time.Second

// Ensure HTTPSink implements driven.EventSink at compile time.
var _ driven.EventSink = (*HTTPSink)(nil)

// HTTPSink posts events to a collector endpoint.
type HTTPSink struct {
	endpoint string
	client   *http.Client
}

// Option configures an HTTPSink.
type Option func(*HTTPSink)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *HTTPSink) {
		s.client = c
	}
}

// NewHTTPSink creates a sink for endpoint.
func NewHTTPSink(endpoint string, opts ...Option) (*HTTPSink, error) {
	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: analytics endpoint %q", domain.ErrInvalidInput, endpoint)
	}

	s := &HTTPSink{
		endpoint: endpoint,
		client:   &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Send posts event as JSON. Query parameters are merged into the endpoint
// URL's query string.
func (s *HTTPSink) Send(ctx context.Context, event domain.Event, query map[string]string) error {
	target, err := url.Parse(s.endpoint)
	if err != nil {
		return err
	}
	if len(query) > 0 {
		values := target.Query()
		for k, v := range query {
			values.Set(k, v)
		}
		target.RawQuery = values.Encode()
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("analytics: HTTP %d", resp.StatusCode)
	}
	return nil
}
