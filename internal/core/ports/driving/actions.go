package driving

import (
	"context"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// ResultActionService provides actions on search results for external actors.
// This is used by TUI, CLI, and MCP adapters.
type ResultActionService interface {
	// CopyURL copies the hit's absolute URL to the system clipboard.
	CopyURL(ctx context.Context, hit *domain.Hit) error

	// OpenExternal opens a URL in the system browser.
	OpenExternal(ctx context.Context, url string) error
}

// CopyRequest describes a copy-as-markdown action.
type CopyRequest struct {
	// Content is the markdown to copy.
	Content string

	// Label is the button text reported in the click event.
	Label string

	// DocSlug identifies the page the content came from.
	DocSlug string
}

// CopyService copies page content and records the click.
type CopyService interface {
	// CopyMarkdown writes content to the clipboard and emits a click event
	// on success. Empty content returns domain.ErrEmptyContent.
	CopyMarkdown(ctx context.Context, req CopyRequest) error
}
