package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
	"github.com/custodia-labs/docsearch/internal/logger"
)

// Ensure CopyService implements the interface.
var _ driving.CopyService = (*CopyService)(nil)

// Click attributes reported for copy-as-markdown.
const (
	copyClickType     = "button"
	copyClickName     = "copy_markdown"
	copyClickLocation = "docs_header"
)

// errNoClipboard indicates no clipboard is available.
var errNoClipboard = errors.New("clipboard unavailable")

// CopyService copies page markdown and records the click.
type CopyService struct {
	clipboard driven.Clipboard
	analytics driving.AnalyticsService
}

// NewCopyService creates a copy service. analytics may be nil.
func NewCopyService(clipboard driven.Clipboard, analytics driving.AnalyticsService) *CopyService {
	return &CopyService{
		clipboard: clipboard,
		analytics: analytics,
	}
}

// CopyMarkdown writes req.Content to the clipboard and emits a click event.
// No event is emitted when the write fails.
func (s *CopyService) CopyMarkdown(ctx context.Context, req driving.CopyRequest) error {
	if req.Content == "" {
		return domain.ErrEmptyContent
	}
	if s.clipboard == nil {
		logger.Warn("Copy markdown failed: %v", errNoClipboard)
		return errNoClipboard
	}

	if err := s.clipboard.WriteText(req.Content); err != nil {
		logger.Warn("Copy markdown failed: %v", err)
		return fmt.Errorf("write clipboard: %w", err)
	}

	if s.analytics != nil {
		s.analytics.LogEvent(ctx, domain.ClickEvent(map[string]any{
			"clickType":     copyClickType,
			"clickName":     copyClickName,
			"clickLocation": copyClickLocation,
			"clickText":     req.Label,
			"docSlug":       req.DocSlug,
		}))
	}
	return nil
}
