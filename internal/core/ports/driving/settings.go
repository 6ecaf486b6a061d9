package driving

import "github.com/custodia-labs/docsearch/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get returns the effective settings: file values, environment
	// overrides, then defaults.
	Get() (*domain.Settings, error)

	// Set stores a single configuration key.
	Set(key string, value any) error

	// Reload re-reads configuration from storage.
	Reload() (*domain.Settings, error)

	// Path returns the configuration file path.
	Path() string
}
