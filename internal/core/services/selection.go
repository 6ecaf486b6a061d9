package services

import (
	"net/url"
	"strings"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
	"github.com/custodia-labs/docsearch/internal/logger"
)

// Ensure SelectionService implements the interface.
var _ driving.SelectionService = (*SelectionService)(nil)

// SelectionService resolves selected result URLs against the site origin.
type SelectionService struct {
	origin *siteOrigin
}

// NewSelectionService creates a selection service scoped to origin.
func NewSelectionService(origin string) *SelectionService {
	return &SelectionService{origin: newSiteOrigin(origin)}
}

// SetOrigin replaces the site origin.
func (s *SelectionService) SetOrigin(origin string) {
	s.origin.set(origin)
}

// Resolve returns in-app navigation to path+hash when rawURL resolves to the
// site origin, and external navigation to the literal rawURL otherwise.
// Parse failures fall back to external navigation with rawURL unchanged.
func (s *SelectionService) Resolve(rawURL string) domain.Navigation {
	if strings.TrimSpace(rawURL) == "" {
		return domain.Navigation{Kind: domain.NavigateNone}
	}

	external := domain.Navigation{Kind: domain.NavigateExternal, URL: rawURL}

	base := s.origin.get()
	if base == nil {
		return external
	}

	ref, err := url.Parse(rawURL)
	if err != nil {
		logger.Debug("Selection %q is not a valid URL: %v", rawURL, err)
		return external
	}

	resolved := base.ResolveReference(ref)
	if !sameOrigin(resolved, base) {
		return external
	}

	path := resolved.EscapedPath()
	if path == "" {
		path = "/"
	}
	hash := ""
	if resolved.Fragment != "" {
		hash = "#" + resolved.EscapedFragment()
	}

	return domain.Navigation{
		Kind: domain.NavigateInApp,
		Path: path,
		Hash: hash,
		URL:  resolved.String(),
	}
}
