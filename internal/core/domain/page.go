package domain

import "strings"

// Page is a docs page loaded into the reader.
type Page struct {
	// Path is the site path the page was loaded from.
	Path string

	// URL is the absolute URL of the page.
	URL string

	// Title is the page title.
	Title string

	// Markdown is the extracted main content.
	Markdown string

	// Anchor is the fragment the reader should scroll to, if any.
	Anchor string
}

// Slug returns the docs slug of the page: its path without the leading
// "/docs/" prefix and trailing slash.
func (p *Page) Slug() string {
	slug := strings.TrimSuffix(p.Path, "/")
	slug = strings.TrimPrefix(slug, "/")
	slug = strings.TrimPrefix(slug, "docs/")
	return slug
}

// HeadingSlug converts a heading into the anchor id the docs site generates.
func HeadingSlug(heading string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(heading)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case r == ' ' || r == '-' || r == '_':
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
