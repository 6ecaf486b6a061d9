package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/services"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change docsearch configuration.

Settings live in a TOML file; the DOCSEARCH_ALGOLIA_* and DOCSEARCH_ENV
environment variables override it. A running TUI picks up changes to the
file without restarting.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a single configuration key.

Pass "-" as the value to type it without echo, e.g. for search.api_key.

Keys:
  ` + strings.Join(services.KnownKeys(), "\n  "),
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Configuration")
	cmd.Println("=====================")
	cmd.Printf("File: %s\n", settingsService.Path())
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  App ID: %s\n", orNotSet(settings.Search.AppID))
	if settings.Search.APIKey != "" {
		cmd.Printf("  API Key: %s\n", maskAPIKey(settings.Search.APIKey))
	} else {
		cmd.Printf("  API Key: (not set)\n")
	}
	cmd.Printf("  Index: %s\n", orNotSet(settings.Search.IndexName))
	if settings.Search.BaseURL != "" {
		cmd.Printf("  Base URL: %s\n", settings.Search.BaseURL)
	}
	cmd.Printf("  Hits per page: %d\n", settings.Search.HitsPerPage)
	cmd.Printf("  Stall delay: %s\n", settings.Search.StallDelay)
	cmd.Printf("  Rate limit: %.1f/s\n", settings.Search.RateLimit)
	if settings.Search.IsConfigured() {
		cmd.Printf("  Status: configured\n")
	} else {
		cmd.Printf("  Status: disabled (missing %s)\n", strings.Join(settings.Search.MissingKeys(), ", "))
	}
	cmd.Println()

	cmd.Println("[Site]")
	cmd.Printf("  Origin: %s\n", settings.Site.Origin)
	cmd.Printf("  Home: %s\n", settings.Site.HomePath)
	if settings.Site.ContentSelector != "" {
		cmd.Printf("  Content selector: %s\n", settings.Site.ContentSelector)
	}
	cmd.Println()

	cmd.Println("[Assistant]")
	cmd.Printf("  URL: %s\n", settings.Assistant.URL)
	cmd.Println()

	cmd.Println("[Shortcut]")
	cmd.Printf("  ctrl+k: %s\n", enabledText(!settings.Shortcut.Disabled))
	cmd.Println()

	cmd.Println("[Analytics]")
	cmd.Printf("  Endpoint: %s\n", orNotSet(settings.Analytics.Endpoint))
	cmd.Println()

	if settings.IsDevelopment() {
		cmd.Printf("Environment: %s\n", domain.DevelopmentEnvironment)
	}

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if value == "-" {
		cmd.Printf("%s: ", key)
		value = readPassword()
		cmd.Println()
	}

	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	shown := value
	if key == services.KeySearchAPIKey {
		shown = maskAPIKey(value)
	}
	cmd.Printf("Set %s = %s\n", key, shown)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	cmd.Println(settingsService.Path())
	return nil
}

// Helper functions.

func orNotSet(v string) string {
	if v == "" {
		return "(not set)"
	}
	return v
}

func enabledText(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
