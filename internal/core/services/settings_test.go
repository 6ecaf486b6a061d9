package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsearch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docsearch/internal/core/domain"
)

func noEnv(string) (string, bool) { return "", false }

func newTestSettingsService(store *memory.ConfigStore, env map[string]string) *SettingsService {
	service := NewSettingsService(store)
	service.SetEnvLookup(func(key string) (string, bool) {
		val, ok := env[key]
		return val, ok
	})
	return service
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	service.SetEnvLookup(noEnv)

	settings, err := service.Get()

	require.NoError(t, err)
	defaults := domain.DefaultSettings()
	assert.Equal(t, defaults, *settings)
	assert.False(t, settings.Search.IsConfigured())
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeySearchAppID, "APP")
	_ = store.Set(KeySearchAPIKey, "key")
	_ = store.Set(KeySearchIndexName, "docs")
	_ = store.Set(KeySearchHitsPerPage, 5)
	_ = store.Set(KeySearchStallDelayMS, 350)
	_ = store.Set(KeySiteOrigin, "http://localhost:3000")
	_ = store.Set(KeyShortcutDisabled, true)
	_ = store.Set(KeyEnv, "development")

	settings, err := newTestSettingsService(store, nil).Get()

	require.NoError(t, err)
	assert.True(t, settings.Search.IsConfigured())
	assert.Equal(t, 5, settings.Search.HitsPerPage)
	assert.Equal(t, 350*time.Millisecond, settings.Search.StallDelay)
	assert.Equal(t, "http://localhost:3000", settings.Site.Origin)
	assert.True(t, settings.Shortcut.Disabled)
	assert.True(t, settings.IsDevelopment())
}

func TestSettingsService_Get_EnvironmentOverrides(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeySearchAppID, "FILE")

	service := newTestSettingsService(store, map[string]string{
		EnvAppID:     "ENVAPP",
		EnvAPIKey:    "envkey",
		EnvIndexName: "envdocs",
		EnvEnv:       "development",
	})

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "ENVAPP", settings.Search.AppID)
	assert.Equal(t, "envkey", settings.Search.APIKey)
	assert.Equal(t, "envdocs", settings.Search.IndexName)
	assert.Equal(t, "development", settings.Environment)
}

func TestSettingsService_Get_EmptyEnvDoesNotOverride(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeySearchAppID, "FILE")

	settings, err := newTestSettingsService(store, map[string]string{EnvAppID: ""}).Get()

	require.NoError(t, err)
	assert.Equal(t, "FILE", settings.Search.AppID)
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    any
		expected any
		wantErr  bool
	}{
		{name: "string", key: KeySearchIndexName, value: "docs", expected: "docs"},
		{name: "int from string", key: KeySearchHitsPerPage, value: "15", expected: 15},
		{name: "float from string", key: KeySearchRateLimit, value: "2.5", expected: 2.5},
		{name: "bool from string", key: KeyShortcutDisabled, value: "true", expected: true},
		{name: "typed int", key: KeySearchStallDelayMS, value: 100, expected: 100},
		{name: "bad int", key: KeySearchHitsPerPage, value: "many", wantErr: true},
		{name: "unknown key", key: "search.mode", value: "hybrid", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := newTestSettingsService(store, nil)

			err := service.Set(tt.key, tt.value)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			val, ok := store.Get(tt.key)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, val)
		})
	}
}

func TestSettingsService_ReloadAndPath(t *testing.T) {
	store := memory.NewConfigStore()
	service := newTestSettingsService(store, nil)

	settings, err := service.Reload()

	require.NoError(t, err)
	assert.NotNil(t, settings)
	assert.Equal(t, ":memory:", service.Path())
}

func TestKnownKeys(t *testing.T) {
	keys := KnownKeys()

	assert.Contains(t, keys, KeySearchAppID)
	assert.Contains(t, keys, KeyAssistantURL)
	assert.IsIncreasing(t, keys)
}
