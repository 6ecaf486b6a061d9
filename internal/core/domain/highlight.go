package domain

import "strings"

// Default highlight markers used by the search provider.
const (
	HighlightPreTag  = "<em>"
	HighlightPostTag = "</em>"
)

// HighlightPart is a run of text that either matched the query or not.
type HighlightPart struct {
	Text    string
	Matched bool
}

// ParseHighlight splits a highlighted value into runs.
// An unterminated marker highlights the rest of the value.
func ParseHighlight(value string) []HighlightPart {
	var parts []HighlightPart
	rest := value
	for rest != "" {
		start := strings.Index(rest, HighlightPreTag)
		if start < 0 {
			parts = append(parts, HighlightPart{Text: rest})
			break
		}
		if start > 0 {
			parts = append(parts, HighlightPart{Text: rest[:start]})
		}
		rest = rest[start+len(HighlightPreTag):]

		end := strings.Index(rest, HighlightPostTag)
		if end < 0 {
			parts = append(parts, HighlightPart{Text: rest, Matched: true})
			break
		}
		if end > 0 {
			parts = append(parts, HighlightPart{Text: rest[:end], Matched: true})
		}
		rest = rest[end+len(HighlightPostTag):]
	}
	return parts
}

// PlainText joins highlight parts back into unmarked text.
func PlainText(parts []HighlightPart) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p.Text)
	}
	return b.String()
}
