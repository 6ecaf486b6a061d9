package driving

import (
	"context"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// AnalyticsService is the shared logging entry point for events.
type AnalyticsService interface {
	// LogEvent enriches and emits an event. Delivery failures are logged,
	// never returned to the caller's UI.
	LogEvent(ctx context.Context, event domain.Event)

	// CaptureAttribution records UTM parameters from the landing URL and
	// the initial referrer. Both are captured once per session.
	CaptureAttribution(landingURL, referrer string)

	// Attribution returns the stored UTM bundle, or an empty one.
	Attribution() domain.Attribution

	// InitialReferrer returns the stored referrer, or "" when unavailable.
	InitialReferrer() string
}
