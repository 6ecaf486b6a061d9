package driven

import (
	"context"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// EventSink delivers analytics events.
type EventSink interface {
	// Send delivers one event. Query parameters are forwarded alongside the
	// event (the attribution bundle).
	Send(ctx context.Context, event domain.Event, query map[string]string) error
}
