package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
	"github.com/custodia-labs/docsearch/internal/logger"
)

// Ensure PageService implements the interface.
var _ driving.PageService = (*PageService)(nil)

// errNoPageReader indicates the reader adapters were not provided.
var errNoPageReader = errors.New("page reader not configured")

// PageService loads site pages as markdown for the in-app reader.
type PageService struct {
	fetcher   driven.PageFetcher
	extractor driven.ContentExtractor
	converter driven.MarkdownConverter
	origin    *siteOrigin
}

// NewPageService creates a page service scoped to origin.
func NewPageService(
	fetcher driven.PageFetcher,
	extractor driven.ContentExtractor,
	converter driven.MarkdownConverter,
	origin string,
) *PageService {
	return &PageService{
		fetcher:   fetcher,
		extractor: extractor,
		converter: converter,
		origin:    newSiteOrigin(origin),
	}
}

// SetOrigin replaces the site origin.
func (s *PageService) SetOrigin(origin string) {
	s.origin.set(origin)
}

// Load fetches target (a site path, optionally with a fragment, or an
// absolute URL on the site origin) and converts its main content.
func (s *PageService) Load(ctx context.Context, target string) (*domain.Page, error) {
	if s.fetcher == nil || s.extractor == nil || s.converter == nil {
		return nil, errNoPageReader
	}

	base := s.origin.get()
	if base == nil {
		return nil, fmt.Errorf("%w: site origin", domain.ErrInvalidInput)
	}

	ref, err := url.Parse(strings.TrimSpace(target))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	resolved := base.ResolveReference(ref)
	if !sameOrigin(resolved, base) {
		return nil, domain.ErrExternalPage
	}

	anchor := resolved.Fragment
	resolved.Fragment = ""
	pageURL := resolved.String()

	logger.Debug("Loading page %s", pageURL)

	html, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}

	content, err := s.extractor.Extract(html)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", pageURL, err)
	}

	markdown, err := s.converter.Convert(content.ContentHTML)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", pageURL, err)
	}

	path := resolved.EscapedPath()
	if path == "" {
		path = "/"
	}

	return &domain.Page{
		Path:     path,
		URL:      pageURL,
		Title:    content.Title,
		Markdown: markdown,
		Anchor:   anchor,
	}, nil
}
