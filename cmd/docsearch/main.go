// Command docsearch searches and reads a hosted documentation site from the
// terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"

	"github.com/custodia-labs/docsearch/internal/adapters/driven/algolia"
	"github.com/custodia-labs/docsearch/internal/adapters/driven/analytics"
	"github.com/custodia-labs/docsearch/internal/adapters/driven/browser"
	"github.com/custodia-labs/docsearch/internal/adapters/driven/clipboard"
	"github.com/custodia-labs/docsearch/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docsearch/internal/adapters/driven/pages"
	"github.com/custodia-labs/docsearch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docsearch/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/docsearch/internal/adapters/driving/cli"
	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch/internal/core/services"
	"github.com/custodia-labs/docsearch/internal/logger"
)

// Environment variables read at startup.
const (
	envHome      = "DOCSEARCH_HOME"
	envSessionID = "DOCSEARCH_SESSION_ID"
	envUserID    = "DOCSEARCH_USER_ID"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configDir := os.Getenv(envHome)
	if configDir == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: resolving config directory: %v\n", err)
			return err
		}
		configDir = dir
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: opening config: %v\n", err)
		return err
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: reading settings: %v\n", err)
		return err
	}
	if settings.IsDevelopment() {
		logger.SetDevelopment(true)
	}

	searchService := services.NewSearchService(
		algolia.NewFactory(algolia.WithRateLimit(settings.Search.RateLimit)),
	)
	if err := searchService.Configure(settings.Search); err != nil {
		logger.Warn("search disabled: %v", err)
	}

	origin := settings.Site.Origin
	selectionService := services.NewSelectionService(origin)

	clip := clipboard.New()
	opener := browser.New()

	pageService := services.NewPageService(
		pages.NewFetcher(pages.WithUserAgent("docsearch/"+version)),
		pages.NewExtractor(settings.Site.ContentSelector),
		pages.NewConverter(),
		origin,
	)
	resultActionService := services.NewResultActionService(clip, opener, origin)

	sessions, closeSessions := openSessionStore(ctx, configDir)
	defer closeSessions()

	analyticsService := services.NewAnalyticsService(sessions, newEventSink(settings.Analytics), "docsearch/"+version)
	if userID := os.Getenv(envUserID); userID != "" {
		analyticsService.SetUserID(userID)
	}
	copyService := services.NewCopyService(clip, analyticsService)

	cli.SetServices(&cli.Services{
		Search:       searchService,
		Selection:    selectionService,
		Pages:        pageService,
		Copy:         copyService,
		ResultAction: resultActionService,
		Settings:     settingsService,
		Analytics:    analyticsService,
	})

	cli.SetTUIConfig(&cli.TUIConfig{
		Watcher: file.NewWatcher(configStore),
		Reload: func() (*domain.Settings, error) {
			reloaded, err := settingsService.Reload()
			if err != nil {
				return nil, err
			}
			if err := searchService.Configure(reloaded.Search); err != nil {
				logger.Warn("search disabled: %v", err)
			}
			selectionService.SetOrigin(reloaded.Site.Origin)
			pageService.SetOrigin(reloaded.Site.Origin)
			resultActionService.SetOrigin(reloaded.Site.Origin)
			return reloaded, nil
		},
		LogPath: filepath.Join(configDir, "docsearch.log"),
	})
	cli.SetVersion(version)

	// cobra prints the error.
	return cli.Execute(ctx)
}

// openSessionStore opens the persistent session store, falling back to an
// in-memory one when the database is unavailable.
func openSessionStore(ctx context.Context, configDir string) (driven.SessionStore, func()) {
	sessionID := os.Getenv(envSessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	store, err := sqlite.NewStore(filepath.Join(configDir, "data"))
	if err != nil {
		logger.Warn("session store unavailable, using memory: %v", err)
		return memory.NewSessionStore(), func() {}
	}

	if _, err := store.Prune(ctx, sqlite.DefaultSessionTTL); err != nil {
		logger.Warn("pruning sessions: %v", err)
	}

	sessions, err := store.SessionStore(ctx, sessionID)
	if err != nil {
		logger.Warn("opening session %s, using memory: %v", sessionID, err)
		store.Close() //nolint:errcheck
		return memory.NewSessionStore(), func() {}
	}

	return sessions, func() {
		sessions.Close() //nolint:errcheck
		store.Close()    //nolint:errcheck
	}
}

func newEventSink(cfg domain.AnalyticsSettings) driven.EventSink {
	if cfg.Endpoint == "" {
		return analytics.NewLogSink()
	}
	sink, err := analytics.NewHTTPSink(cfg.Endpoint)
	if err != nil {
		logger.Warn("analytics endpoint %q rejected, logging events instead: %v", cfg.Endpoint, err)
		return analytics.NewLogSink()
	}
	return sink
}
