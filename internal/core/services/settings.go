package services

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeySearchAppID        = "search.app_id"
	KeySearchAPIKey       = "search.api_key"
	KeySearchIndexName    = "search.index_name"
	KeySearchBaseURL      = "search.base_url"
	KeySearchHitsPerPage  = "search.hits_per_page"
	KeySearchStallDelayMS = "search.stall_delay_ms"
	KeySearchRateLimit    = "search.rate_limit"
	KeySiteOrigin         = "site.origin"
	KeySiteHomePath       = "site.home_path"
	KeySiteContentSel     = "site.content_selector"
	KeyAssistantURL       = "assistant.url"
	KeyShortcutDisabled   = "shortcut.disabled"
	KeyAnalyticsEndpoint  = "analytics.endpoint"
	KeyEnv                = "env"
)

// Environment variables that override file values.
//
//nolint:gosec // G101: These are variable names, not actual credentials.
const (
	EnvAppID     = "DOCSEARCH_ALGOLIA_APP_ID"
	EnvAPIKey    = "DOCSEARCH_ALGOLIA_SEARCH_API_KEY"
	EnvIndexName = "DOCSEARCH_ALGOLIA_INDEX_NAME"
	EnvEnv       = "DOCSEARCH_ENV"
)

type keyKind int

const (
	kindString keyKind = iota
	kindInt
	kindFloat
	kindBool
)

var knownKeys = map[string]keyKind{
	KeySearchAppID:        kindString,
	KeySearchAPIKey:       kindString,
	KeySearchIndexName:    kindString,
	KeySearchBaseURL:      kindString,
	KeySearchHitsPerPage:  kindInt,
	KeySearchStallDelayMS: kindInt,
	KeySearchRateLimit:    kindFloat,
	KeySiteOrigin:         kindString,
	KeySiteHomePath:       kindString,
	KeySiteContentSel:     kindString,
	KeyAssistantURL:       kindString,
	KeyShortcutDisabled:   kindBool,
	KeyAnalyticsEndpoint:  kindString,
	KeyEnv:                kindString,
}

// KnownKeys returns every recognised configuration key, sorted.
func KnownKeys() []string {
	keys := make([]string, 0, len(knownKeys))
	for k := range knownKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	lookupEnv   func(string) (string, bool)
}

// NewSettingsService creates a new settings service that reads environment
// overrides from the process environment.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		lookupEnv:   os.LookupEnv,
	}
}

// SetEnvLookup replaces the environment lookup.
func (s *SettingsService) SetEnvLookup(lookup func(string) (string, bool)) {
	s.lookupEnv = lookup
}

// Get returns the effective settings.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Search: domain.SearchSettings{
			AppID:       s.getEnvOrString(EnvAppID, KeySearchAppID),
			APIKey:      s.getEnvOrString(EnvAPIKey, KeySearchAPIKey),
			IndexName:   s.getEnvOrString(EnvIndexName, KeySearchIndexName),
			BaseURL:     s.configStore.GetString(KeySearchBaseURL),
			HitsPerPage: s.getInt(KeySearchHitsPerPage, defaults.Search.HitsPerPage),
			StallDelay:  s.getDuration(KeySearchStallDelayMS, defaults.Search.StallDelay),
			RateLimit:   s.getFloat(KeySearchRateLimit, defaults.Search.RateLimit),
		},
		Site: domain.SiteSettings{
			Origin:          s.getString(KeySiteOrigin, defaults.Site.Origin),
			HomePath:        s.getString(KeySiteHomePath, defaults.Site.HomePath),
			ContentSelector: s.configStore.GetString(KeySiteContentSel),
		},
		Assistant: domain.AssistantSettings{
			URL: s.getString(KeyAssistantURL, defaults.Assistant.URL),
		},
		Shortcut: domain.ShortcutSettings{
			Disabled: s.configStore.GetBool(KeyShortcutDisabled),
		},
		Analytics: domain.AnalyticsSettings{
			Endpoint: s.configStore.GetString(KeyAnalyticsEndpoint),
		},
		Environment: s.getEnvOrString(EnvEnv, KeyEnv),
	}

	return settings, nil
}

// Set validates and stores a single configuration key.
// String values are converted to the key's type.
func (s *SettingsService) Set(key string, value any) error {
	kind, ok := knownKeys[key]
	if !ok {
		return fmt.Errorf("%w: unknown config key %q", domain.ErrInvalidInput, key)
	}

	converted, err := convertValue(kind, value)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
	}

	if err := s.configStore.Set(key, converted); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Reload re-reads configuration from storage.
func (s *SettingsService) Reload() (*domain.Settings, error) {
	if err := s.configStore.Load(); err != nil {
		return nil, fmt.Errorf("reload config: %w", err)
	}
	return s.Get()
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func convertValue(kind keyKind, value any) (any, error) {
	str, isString := value.(string)
	switch kind {
	case kindInt:
		if !isString {
			return value, nil
		}
		return strconv.Atoi(strings.TrimSpace(str))
	case kindFloat:
		if !isString {
			return value, nil
		}
		return strconv.ParseFloat(strings.TrimSpace(str), 64)
	case kindBool:
		if !isString {
			return value, nil
		}
		return strconv.ParseBool(strings.TrimSpace(str))
	default:
		if !isString {
			return fmt.Sprint(value), nil
		}
		return str, nil
	}
}

func (s *SettingsService) getEnvOrString(envKey, key string) string {
	if s.lookupEnv != nil {
		if val, ok := s.lookupEnv(envKey); ok && val != "" {
			return val
		}
	}
	return s.configStore.GetString(key)
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if val := s.configStore.GetInt(key); val > 0 {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if val := s.configStore.GetFloat(key); val > 0 {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	if ms := s.configStore.GetInt(key); ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return defaultVal
}
