// Package cli provides the cobra command tree for docsearch.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
	"github.com/custodia-labs/docsearch/internal/logger"
)

// EnvLandingURL supplies the landing URL when --landing is not given.
const EnvLandingURL = "DOCSEARCH_LANDING_URL"

// version is set at build time.
var version = "dev"

// Services holds the driving ports the commands use.
type Services struct {
	Search       driving.SearchService
	Selection    driving.SelectionService
	Pages        driving.PageService
	Copy         driving.CopyService
	ResultAction driving.ResultActionService
	Settings     driving.SettingsService
	Analytics    driving.AnalyticsService
}

var (
	searchService       driving.SearchService
	selectionService    driving.SelectionService
	pageService         driving.PageService
	copyService         driving.CopyService
	resultActionService driving.ResultActionService
	settingsService     driving.SettingsService
	analyticsService    driving.AnalyticsService
)

var (
	verbose    bool
	noShortcut bool
	landingURL string
	referrer   string
)

var rootCmd = &cobra.Command{
	Use:   "docsearch",
	Short: "Search and read the docs from your terminal",
	Long: `docsearch searches a hosted documentation index as you type and opens
pages in a terminal reader or your browser.

Run without a subcommand to start the interactive UI. Press ctrl+k or / to
open search, tab to switch to Ask AI.`,
	SilenceUsage:      true,
	PersistentPreRunE: preRun,
	RunE:              runTUI,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "show diagnostic output")
	flags.BoolVar(&noShortcut, "no-shortcut", false, "do not register the ctrl+k search shortcut")
	flags.StringVar(&landingURL, "landing", "", "landing URL whose UTM parameters are attributed to this session")
	flags.StringVar(&referrer, "referrer", "", "initial referrer recorded for this session")
}

// SetServices sets the services used by all commands.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	searchService = s.Search
	selectionService = s.Selection
	pageService = s.Pages
	copyService = s.Copy
	resultActionService = s.ResultAction
	settingsService = s.Settings
	analyticsService = s.Analytics
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func preRun(_ *cobra.Command, _ []string) error {
	if verbose {
		logger.SetDevelopment(true)
	}
	captureAttribution()
	return nil
}

// captureAttribution records the landing UTM parameters and referrer once
// per session. Later sessions with the same id keep the first values.
func captureAttribution() {
	if analyticsService == nil {
		return
	}
	landing := landingURL
	if landing == "" {
		landing = os.Getenv(EnvLandingURL)
	}
	analyticsService.CaptureAttribution(landing, referrer)
}
