package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

var openInBrowser bool

var openCmd = &cobra.Command{
	Use:   "open [url]",
	Short: "Open a docs URL",
	Long: `Resolves a URL the way a selected search result is resolved.

Pages on the docs site are printed as markdown; anything else opens in the
system browser. Use --browser to open docs pages in the browser too.`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	openCmd.Flags().BoolVarP(&openInBrowser, "browser", "b", false, "open docs pages in the browser")
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	if selectionService == nil {
		return errors.New("selection service not configured")
	}

	nav := selectionService.Resolve(args[0])
	switch nav.Kind {
	case domain.NavigateNone:
		return domain.ErrNoNavigation
	case domain.NavigateInApp:
		if !openInBrowser {
			return printPage(cmd, nav.Target())
		}
	case domain.NavigateExternal:
	}

	if resultActionService == nil {
		return errors.New("result action service not configured")
	}
	if err := resultActionService.OpenExternal(cmd.Context(), nav.URL); err != nil {
		return fmt.Errorf("failed to open %s: %w", nav.URL, err)
	}
	cmd.Printf("Opened %s\n", nav.URL)
	return nil
}

func printPage(cmd *cobra.Command, target string) error {
	if pageService == nil {
		return errors.New("page service not configured")
	}

	page, err := pageService.Load(cmd.Context(), target)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", target, err)
	}

	cmd.Println(page.Markdown)
	return nil
}
