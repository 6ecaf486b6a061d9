package analytics

import (
	"context"
	"encoding/json"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch/internal/logger"
)

// Ensure LogSink implements driven.EventSink at compile time.
var _ driven.EventSink = (*LogSink)(nil)

// LogSink writes events to the diagnostic logger.
type LogSink struct{}

// NewLogSink creates a LogSink.
func NewLogSink() *LogSink {
	return &LogSink{}
}

// Send logs the event at debug level.
func (s *LogSink) Send(_ context.Context, event domain.Event, query map[string]string) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	logger.Debug("Event: %s query=%v", data, query)
	return nil
}
