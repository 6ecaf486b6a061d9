package domain

import (
	"net/url"
	"strings"
)

// Attribute paths used for highlighting and display fallbacks.
const (
	AttrTitle   = "title"
	AttrContent = "content"
	AttrURL     = "url"
	AttrLvl0    = "hierarchy.lvl0"
	AttrLvl1    = "hierarchy.lvl1"
	AttrLvl2    = "hierarchy.lvl2"
	AttrLvl3    = "hierarchy.lvl3"
)

// UntitledResult is shown when a hit has no displayable field at all.
const UntitledResult = "Untitled result"

// BreadcrumbSeparator joins breadcrumb segments.
const BreadcrumbSeparator = " › "

// Hierarchy holds the ordered breadcrumb levels of a docs record.
// Lvl0 is the most general. An empty string means the level is absent.
type Hierarchy struct {
	Lvl0 string
	Lvl1 string
	Lvl2 string
	Lvl3 string
}

// Levels returns the four levels in order, absent levels included.
func (h Hierarchy) Levels() []string {
	return []string{h.Lvl0, h.Lvl1, h.Lvl2, h.Lvl3}
}

// Segments returns the trimmed, non-empty levels in order.
func (h Hierarchy) Segments() []string {
	segments := make([]string, 0, 4)
	for _, level := range h.Levels() {
		if s := strings.TrimSpace(level); s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

// Hit represents a single search result record.
// ObjectID is unique within one response; hits are discarded on the next query.
type Hit struct {
	// ObjectID identifies the hit within its response.
	ObjectID string

	// URL is the destination of the hit, if any.
	URL string

	// Title is the record title, if any.
	Title string

	// Content is the matched text body, if any.
	Content string

	// Type is the provider record type (e.g. "lvl1", "content").
	Type string

	// Hierarchy holds the breadcrumb levels.
	Hierarchy Hierarchy

	// Highlights maps attribute paths to the provider's highlighted value.
	// Matched runs are wrapped in HighlightPreTag / HighlightPostTag.
	Highlights map[string]string
}

// DisplayTitle returns the first non-empty field by priority:
// title, lvl1, lvl0, lvl2, lvl3, content, url, then UntitledResult.
func (h *Hit) DisplayTitle() string {
	candidates := []string{
		h.Title,
		h.Hierarchy.Lvl1,
		h.Hierarchy.Lvl0,
		h.Hierarchy.Lvl2,
		h.Hierarchy.Lvl3,
		h.Content,
		h.URL,
	}
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return UntitledResult
}

// HighlightAttribute returns the attribute whose highlight renders the title.
// Only title, lvl1 and lvl0 are highlightable; for anything further down the
// DisplayTitle priority it returns "" and the title renders as plain text.
func (h *Hit) HighlightAttribute() string {
	switch {
	case h.Title != "":
		return AttrTitle
	case h.Hierarchy.Lvl1 != "":
		return AttrLvl1
	case h.Hierarchy.Lvl0 != "":
		return AttrLvl0
	default:
		return ""
	}
}

// AttributeValue returns the raw value of an attribute path.
func (h *Hit) AttributeValue(attr string) string {
	switch attr {
	case AttrTitle:
		return h.Title
	case AttrContent:
		return h.Content
	case AttrURL:
		return h.URL
	case AttrLvl0:
		return h.Hierarchy.Lvl0
	case AttrLvl1:
		return h.Hierarchy.Lvl1
	case AttrLvl2:
		return h.Hierarchy.Lvl2
	case AttrLvl3:
		return h.Hierarchy.Lvl3
	default:
		return ""
	}
}

// TitleParts returns the display title split into matched and unmatched runs.
func (h *Hit) TitleParts() []HighlightPart {
	attr := h.HighlightAttribute()
	if attr == "" {
		return []HighlightPart{{Text: h.DisplayTitle()}}
	}
	if value, ok := h.Highlights[attr]; ok && value != "" {
		return ParseHighlight(value)
	}
	return []HighlightPart{{Text: h.AttributeValue(attr)}}
}

// Breadcrumb returns the breadcrumb line for the hit.
func (h *Hit) Breadcrumb() string {
	return Breadcrumb(h.URL, h.Hierarchy)
}

// Breadcrumb derives a breadcrumb from hierarchy segments, falling back to
// the URL host and path segments, and finally to the raw URL string.
func Breadcrumb(rawURL string, hierarchy Hierarchy) string {
	if segments := hierarchy.Segments(); len(segments) > 0 {
		return strings.Join(segments, BreadcrumbSeparator)
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return rawURL
	}

	parts := []string{strings.TrimPrefix(parsed.Hostname(), "www.")}
	for _, segment := range strings.Split(parsed.Path, "/") {
		if segment == "" {
			continue
		}
		parts = append(parts, strings.ReplaceAll(segment, "-", " "))
	}
	return strings.Join(parts, BreadcrumbSeparator)
}
