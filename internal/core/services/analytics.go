package services

import (
	"context"
	"encoding/json"
	"net/url"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
	"github.com/custodia-labs/docsearch/internal/logger"
)

// Ensure AnalyticsService implements the interface.
var _ driving.AnalyticsService = (*AnalyticsService)(nil)

// Session storage keys.
const (
	sessionKeyAttribution = "utm_params"
	sessionKeyReferrer    = "initial_referrer"
	sessionKeyAnonymousID = "anonymous_id"
)

// AnalyticsService enriches events with session attribution and client
// details, then hands them to the event sink.
//
// Storage failures are swallowed: attribution reads return empty values and
// writes are skipped.
type AnalyticsService struct {
	sessions  driven.SessionStore
	sink      driven.EventSink
	userID    string
	userAgent string
	now       func() time.Time
}

// NewAnalyticsService creates an analytics service. sink may be nil, in
// which case events are only logged.
func NewAnalyticsService(sessions driven.SessionStore, sink driven.EventSink, userAgent string) *AnalyticsService {
	return &AnalyticsService{
		sessions:  sessions,
		sink:      sink,
		userAgent: userAgent,
		now:       time.Now,
	}
}

// SetUserID sets the identified user. Email ids also set the group id.
func (s *AnalyticsService) SetUserID(userID string) {
	s.userID = userID
}

// CaptureAttribution records allow-listed UTM parameters from landingURL and
// the initial referrer. Values already captured in this session are kept.
func (s *AnalyticsService) CaptureAttribution(landingURL, referrer string) {
	if s.sessions == nil {
		return
	}

	if _, ok := s.lookup(sessionKeyAttribution); !ok {
		if params := parseAttribution(landingURL); !params.IsEmpty() {
			data, err := json.Marshal(params)
			if err == nil {
				s.store(sessionKeyAttribution, string(data))
			}
		}
	}

	if _, ok := s.lookup(sessionKeyReferrer); !ok {
		if referrer == "" {
			referrer = domain.DirectReferrer
		}
		s.store(sessionKeyReferrer, referrer)
	}
}

// Attribution returns the stored UTM bundle, or an empty one.
func (s *AnalyticsService) Attribution() domain.Attribution {
	raw, ok := s.lookup(sessionKeyAttribution)
	if !ok {
		return domain.Attribution{}
	}
	var params domain.Attribution
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		logger.Warn("Discarding unreadable attribution: %v", err)
		return domain.Attribution{}
	}
	return params
}

// InitialReferrer returns the stored referrer, or "" when unavailable.
func (s *AnalyticsService) InitialReferrer() string {
	raw, _ := s.lookup(sessionKeyReferrer)
	return raw
}

// LogEvent enriches event and sends it through the sink.
func (s *AnalyticsService) LogEvent(ctx context.Context, event domain.Event) {
	attribution := s.Attribution()

	attrs := make(map[string]any, len(event.Attributes)+len(attribution)+5)
	for k, v := range event.Attributes {
		attrs[k] = v
	}
	attrs["custom_os"] = runtime.GOOS
	attrs["custom_timezone"] = s.now().Location().String()
	attrs["custom_initial_referrer"] = s.InitialReferrer()
	attrs["custom_user_agent"] = s.userAgent
	attrs["custom_source"] = domain.EventSource
	for k, v := range attribution {
		attrs[k] = v
	}
	event.Attributes = attrs

	if event.UserID == "" {
		event.UserID = s.userID
	}
	if event.GroupID == "" {
		event.GroupID = domain.GroupIDFromUserID(event.UserID)
	}
	if event.AnonymousID == "" {
		event.AnonymousID = s.anonymousID()
	}

	if s.sink == nil {
		logger.Debug("Event %q dropped, no sink configured", event.EventName)
		return
	}
	if err := s.sink.Send(ctx, event, attribution); err != nil {
		logger.Warn("Failed to send event %q: %v", event.EventName, err)
	}
}

func (s *AnalyticsService) anonymousID() string {
	if id, ok := s.lookup(sessionKeyAnonymousID); ok && id != "" {
		return id
	}
	id := uuid.New().String()
	s.store(sessionKeyAnonymousID, id)
	return id
}

func (s *AnalyticsService) lookup(key string) (string, bool) {
	if s.sessions == nil {
		return "", false
	}
	val, ok, err := s.sessions.Get(key)
	if err != nil {
		logger.Warn("Session storage read %q failed: %v", key, err)
		return "", false
	}
	return val, ok
}

func (s *AnalyticsService) store(key, value string) {
	if s.sessions == nil {
		return
	}
	if err := s.sessions.Set(key, value); err != nil {
		logger.Warn("Session storage write %q failed: %v", key, err)
	}
}

func parseAttribution(landingURL string) domain.Attribution {
	params := domain.Attribution{}
	if landingURL == "" {
		return params
	}
	parsed, err := url.Parse(landingURL)
	if err != nil {
		return params
	}
	query := parsed.Query()
	for _, name := range domain.UTMParamNames {
		if val := query.Get(name); val != "" {
			params[name] = val
		}
	}
	return params
}
