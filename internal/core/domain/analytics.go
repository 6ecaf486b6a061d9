package domain

import "strings"

// Event type and name constants used by the click instrumentation.
const (
	EventTypeTrack    = "track"
	EventWebsiteClick = "Website Click"
)

// DirectReferrer is recorded when no initial referrer is known.
const DirectReferrer = "direct"

// EventSource tags every event emitted by this application.
const EventSource = "cli"

// UTMParamNames is the allow-list of attribution parameters captured from
// the landing location.
var UTMParamNames = []string{
	"utm_source",
	"utm_medium",
	"utm_campaign",
	"utm_term",
	"utm_content",
	"gclid",
}

// Event is a structured analytics event.
type Event struct {
	EventName   string         `json:"eventName"`
	EventType   string         `json:"eventType"`
	Attributes  map[string]any `json:"attributes,omitempty"`
	UserID      string         `json:"userId,omitempty"`
	AnonymousID string         `json:"anonymousId,omitempty"`
	GroupID     string         `json:"groupId,omitempty"`
}

// ClickEvent builds a "Website Click" track event.
func ClickEvent(attributes map[string]any) Event {
	return Event{
		EventName:  EventWebsiteClick,
		EventType:  EventTypeTrack,
		Attributes: attributes,
	}
}

// Attribution is the UTM bundle captured once per session.
// Keys are restricted to UTMParamNames.
type Attribution map[string]string

// IsEmpty reports whether no parameter was captured.
func (a Attribution) IsEmpty() bool {
	return len(a) == 0
}

// GroupIDFromUserID derives an organisation id from an email user id.
// Returns "" when the id is not an email address.
func GroupIDFromUserID(userID string) string {
	at := strings.LastIndex(userID, "@")
	if at < 0 || at == len(userID)-1 {
		return ""
	}
	return strings.ToLower(userID[at+1:])
}
