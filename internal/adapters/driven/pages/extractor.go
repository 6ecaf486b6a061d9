package pages

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
)

// ErrNoContent is returned when no main content region is found.
var ErrNoContent = errors.New("no main content found")

// Ensure Extractor implements driven.ContentExtractor at compile time.
var _ driven.ContentExtractor = (*Extractor)(nil)

// defaultContentSelectors are tried in order until one matches.
var defaultContentSelectors = []string{
	"article .markdown",
	".theme-doc-markdown",
	"article",
	"main",
	"[role=main]",
	"body",
}

// noiseSelectors are removed from the content before conversion.
var noiseSelectors = []string{
	"script",
	"style",
	"noscript",
	"nav",
	"aside",
	"footer",
	"button",
	".hash-link",
	".theme-doc-toc-mobile",
	".pagination-nav",
	".theme-doc-footer",
}

// Extractor isolates the main content of a docs page.
type Extractor struct {
	selectors []string
}

// NewExtractor creates an Extractor. A non-empty contentSelector is tried
// before the defaults.
func NewExtractor(contentSelector string) *Extractor {
	selectors := defaultContentSelectors
	if s := strings.TrimSpace(contentSelector); s != "" {
		selectors = append([]string{s}, defaultContentSelectors...)
	}
	return &Extractor{selectors: selectors}
}

// Extract returns the page title and the main content HTML.
func (e *Extractor) Extract(html string) (*driven.ExtractedContent, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var content *goquery.Selection
	for _, selector := range e.selectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			content = sel
			break
		}
	}
	if content == nil {
		return nil, ErrNoContent
	}

	content.Find(strings.Join(noiseSelectors, ", ")).Remove()

	contentHTML, err := content.Html()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(contentHTML) == "" {
		return nil, ErrNoContent
	}

	return &driven.ExtractedContent{
		Title:       pageTitle(doc, content),
		ContentHTML: contentHTML,
	}, nil
}

// pageTitle prefers the first h1 of the content, then the document title
// without its " | Site" suffix.
func pageTitle(doc *goquery.Document, content *goquery.Selection) string {
	if h1 := strings.TrimSpace(content.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if i := strings.Index(title, " | "); i > 0 {
		title = title[:i]
	}
	return title
}
