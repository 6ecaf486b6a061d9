package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui"
	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/logger"
)

// ConfigWatcher notifies after the configuration file changes.
type ConfigWatcher interface {
	OnChange(callback func())
	Start() error
	Close() error
}

// TUIConfig holds configuration for the TUI command.
type TUIConfig struct {
	// Watcher reloads the configuration while the TUI runs. Optional.
	Watcher ConfigWatcher

	// Reload re-reads settings and reconfigures services after a change.
	Reload func() (*domain.Settings, error)

	// LogPath receives log output while the TUI owns the terminal.
	LogPath string
}

// tuiConfig holds the current TUI configuration.
var tuiConfig *TUIConfig

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for docsearch.

The TUI opens the docs home page in a reader. The search overlay queries the
docs index as you type; selected results open in the reader or the browser.

Controls:
  ctrl+k, /  - Open search
  ↑/↓        - Move through results
  Enter      - Open result
  Tab        - Switch Search / Ask AI
  Esc        - Clear query, then close
  c          - Copy page as markdown
  o          - Open page in browser
  b          - Back
  ?          - Toggle help
  q          - Quit`,
	RunE: runTUI,
}

// SetTUIConfig sets the configuration for the TUI command.
func SetTUIConfig(config *TUIConfig) {
	tuiConfig = config
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{
		Search:       searchService,
		Selection:    selectionService,
		Pages:        pageService,
		Copy:         copyService,
		ResultAction: resultActionService,
		Settings:     settingsService,
	}

	var opts []tui.Option
	if noShortcut {
		opts = append(opts, tui.WithShortcutDisabled())
	}

	app, err := tui.NewApp(ports, opts...)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())
	defer app.Close()

	if tuiConfig != nil && tuiConfig.LogPath != "" {
		restore, err := redirectLog(tuiConfig.LogPath)
		if err != nil {
			return err
		}
		defer restore()
	}

	p := app.NewProgram()

	if tuiConfig != nil && tuiConfig.Watcher != nil && tuiConfig.Reload != nil {
		reload := tuiConfig.Reload
		tuiConfig.Watcher.OnChange(func() {
			settings, err := reload()
			if err != nil {
				logger.Warn("reload settings: %v", err)
				return
			}
			p.Send(messages.SettingsChanged{Settings: settings})
		})
		if err := tuiConfig.Watcher.Start(); err != nil {
			logger.Warn("config watcher: %v", err)
		} else {
			defer tuiConfig.Watcher.Close() //nolint:errcheck
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// redirectLog sends log output to path until the returned func is called.
func redirectLog(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	previous := logger.Output()
	logger.SetOutput(f)
	return func() {
		logger.SetOutput(previous)
		f.Close() //nolint:errcheck
	}, nil
}
