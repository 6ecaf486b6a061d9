package domain

import "time"

// Default values applied when a setting is absent.
const (
	DefaultSiteOrigin      = "https://signoz.io"
	DefaultHomePath        = "/docs/introduction"
	DefaultAssistantURL    = "https://signoz.io/docs/ask-ai"
	DefaultStallDelay      = 200 * time.Millisecond
	DefaultRateLimit       = 10.0
	DevelopmentEnvironment = "development"
)

// SearchSettings holds the search provider identifiers and tuning.
// All three identifiers must be present for search to be enabled.
type SearchSettings struct {
	AppID       string
	APIKey      string
	IndexName   string
	BaseURL     string
	HitsPerPage int
	StallDelay  time.Duration
	RateLimit   float64
}

// IsConfigured reports whether the provider identifiers are all present.
func (s SearchSettings) IsConfigured() bool {
	return s.AppID != "" && s.APIKey != "" && s.IndexName != ""
}

// MissingKeys returns the names of absent provider identifiers.
func (s SearchSettings) MissingKeys() []string {
	var missing []string
	if s.AppID == "" {
		missing = append(missing, "app_id")
	}
	if s.APIKey == "" {
		missing = append(missing, "api_key")
	}
	if s.IndexName == "" {
		missing = append(missing, "index_name")
	}
	return missing
}

// SiteSettings describes the docs site the reader browses.
type SiteSettings struct {
	// Origin is the scheme://host[:port] that in-app navigation is scoped to.
	Origin string

	// HomePath is the page opened on startup.
	HomePath string

	// ContentSelector overrides the main content selector for page extraction.
	ContentSelector string
}

// AssistantSettings configures the Ask AI panel.
type AssistantSettings struct {
	URL string
}

// ShortcutSettings configures the global search hotkey.
type ShortcutSettings struct {
	Disabled bool
}

// AnalyticsSettings configures event delivery.
type AnalyticsSettings struct {
	// Endpoint receives events over HTTP. Empty means events are only logged.
	Endpoint string
}

// Settings is the complete application configuration.
type Settings struct {
	Search      SearchSettings
	Site        SiteSettings
	Assistant   AssistantSettings
	Shortcut    ShortcutSettings
	Analytics   AnalyticsSettings
	Environment string
}

// DefaultSettings returns settings with every default applied and no
// provider credentials.
func DefaultSettings() Settings {
	return Settings{
		Search: SearchSettings{
			HitsPerPage: DefaultHitsPerPage,
			StallDelay:  DefaultStallDelay,
			RateLimit:   DefaultRateLimit,
		},
		Site: SiteSettings{
			Origin:   DefaultSiteOrigin,
			HomePath: DefaultHomePath,
		},
		Assistant: AssistantSettings{
			URL: DefaultAssistantURL,
		},
	}
}

// IsDevelopment reports whether diagnostics should be shown.
func (s Settings) IsDevelopment() bool {
	return s.Environment == DevelopmentEnvironment
}

// ShortcutEnabled reports whether the global hotkey should be registered.
func (s Settings) ShortcutEnabled() bool {
	return !s.Shortcut.Disabled && s.Search.IsConfigured()
}
