package driven

import "context"

// PageFetcher retrieves raw HTML from a URL.
type PageFetcher interface {
	// Fetch retrieves the HTML content at the given URL.
	Fetch(ctx context.Context, url string) (string, error)
}

// ExtractedContent is the main content of a page.
type ExtractedContent struct {
	Title       string
	ContentHTML string
}

// ContentExtractor isolates the main content of a docs page.
type ContentExtractor interface {
	// Extract returns the title and main content HTML.
	Extract(html string) (*ExtractedContent, error)
}

// MarkdownConverter converts HTML to markdown.
type MarkdownConverter interface {
	// Convert transforms HTML content to markdown.
	Convert(html string) (string, error)
}
