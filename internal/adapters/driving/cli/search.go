package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docsearch/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the docs",
	Long: `Queries the hosted docs index once and prints the hits.

Requires search.app_id, search.api_key and search.index_name (see
'docsearch config'). Output is styled on a terminal and plain otherwise.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

// searchHit is the printed form of a hit.
type searchHit struct {
	Title      string `json:"title"`
	URL        string `json:"url"`
	Breadcrumb string `json:"breadcrumb,omitempty"`
	Content    string `json:"content,omitempty"`
}

type searchOutput struct {
	Query string      `json:"query"`
	Total int         `json:"total"`
	Hits  []searchHit `json:"hits"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}
	if !searchService.Enabled() {
		return searchDisabledError()
	}

	opts := domain.SearchOptions{
		HitsPerPage: searchLimit,
	}

	result, err := searchService.Search(cmd.Context(), query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	hits := result.Hits
	if searchLimit > 0 && len(hits) > searchLimit {
		hits = hits[:searchLimit]
	}

	if searchJSON {
		return outputSearchJSON(cmd, query, result.NbHits, hits)
	}

	return outputSearchList(cmd, query, result.NbHits, hits, isTerminal(cmd.OutOrStdout()))
}

func searchDisabledError() error {
	if settingsService == nil {
		return domain.ErrSearchDisabled
	}
	settings, err := settingsService.Get()
	if err != nil {
		return domain.ErrSearchDisabled
	}
	return fmt.Errorf("%w (missing %s; set with 'docsearch config set')",
		domain.ErrSearchDisabled, strings.Join(settings.Search.MissingKeys(), ", "))
}

func toSearchHit(hit *domain.Hit) searchHit {
	return searchHit{
		Title:      hit.DisplayTitle(),
		URL:        absoluteURL(hit.URL),
		Breadcrumb: hit.Breadcrumb(),
		Content:    hit.Content,
	}
}

// absoluteURL resolves a hit URL against the site origin.
func absoluteURL(rawURL string) string {
	if selectionService == nil || rawURL == "" {
		return rawURL
	}
	if nav := selectionService.Resolve(rawURL); nav.URL != "" {
		return nav.URL
	}
	return rawURL
}

func outputSearchJSON(cmd *cobra.Command, query string, total int, hits []domain.Hit) error {
	out := searchOutput{Query: query, Total: total, Hits: make([]searchHit, len(hits))}
	for i := range hits {
		out.Hits[i] = toSearchHit(&hits[i])
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchList(cmd *cobra.Command, query string, total int, hits []domain.Hit, styled bool) error {
	if len(hits) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	s := styles.DefaultStyles()
	render := func(style lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return style.Render(text)
	}

	cmd.Printf("Results for %q (%d total):\n", query, total)
	cmd.Println()
	for i := range hits {
		hit := toSearchHit(&hits[i])

		title := hit.Title
		if styled {
			title = highlightedTitle(&hits[i])
		}

		cmd.Printf("  [%d] %s\n", i+1, title)
		if hit.Breadcrumb != "" && hit.URL != "" {
			cmd.Printf("      %s\n", render(s.Breadcrumb, hit.Breadcrumb))
		}
		if hit.URL != "" {
			cmd.Printf("      %s\n", render(s.Muted, hit.URL))
		}
		cmd.Println()
	}

	return nil
}

// highlightedTitle renders the title with matched runs styled.
func highlightedTitle(hit *domain.Hit) string {
	s := styles.DefaultStyles()
	var b strings.Builder
	for _, part := range hit.TitleParts() {
		if part.Matched {
			b.WriteString(s.Match.Render(part.Text))
		} else {
			b.WriteString(s.Normal.Render(part.Text))
		}
	}
	return b.String()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
