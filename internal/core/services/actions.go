package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
)

// Ensure ResultActionService implements the interface.
var _ driving.ResultActionService = (*ResultActionService)(nil)

// errNoOpener indicates no browser opener is available.
var errNoOpener = errors.New("browser unavailable")

// ResultActionService provides actions on search results.
type ResultActionService struct {
	clipboard driven.Clipboard
	opener    driven.URLOpener
	origin    *siteOrigin
}

// NewResultActionService creates a new result action service.
func NewResultActionService(clipboard driven.Clipboard, opener driven.URLOpener, origin string) *ResultActionService {
	return &ResultActionService{
		clipboard: clipboard,
		opener:    opener,
		origin:    newSiteOrigin(origin),
	}
}

// SetOrigin replaces the site origin used to absolutise relative hit URLs.
func (s *ResultActionService) SetOrigin(origin string) {
	s.origin.set(origin)
}

// CopyURL copies the hit's absolute URL to the system clipboard.
func (s *ResultActionService) CopyURL(_ context.Context, hit *domain.Hit) error {
	if hit == nil {
		return fmt.Errorf("hit is nil")
	}
	if hit.URL == "" {
		return domain.ErrNoNavigation
	}
	if s.clipboard == nil {
		return errNoClipboard
	}
	return s.clipboard.WriteText(s.absolute(hit.URL))
}

// OpenExternal opens a URL in the system browser.
func (s *ResultActionService) OpenExternal(_ context.Context, rawURL string) error {
	if rawURL == "" {
		return domain.ErrNoNavigation
	}
	if s.opener == nil {
		return errNoOpener
	}
	return s.opener.Open(s.absolute(rawURL))
}

func (s *ResultActionService) absolute(rawURL string) string {
	base := s.origin.get()
	if base == nil {
		return rawURL
	}
	ref, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return base.ResolveReference(ref).String()
}
