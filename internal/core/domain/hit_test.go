package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestHit_DisplayTitle tests the title fallback priority
func TestHit_DisplayTitle(t *testing.T) {
	tests := []struct {
		name     string
		hit      Hit
		expected string
	}{
		{
			name:     "title wins",
			hit:      Hit{Title: "Install", Hierarchy: Hierarchy{Lvl0: "Docs", Lvl1: "Guides"}},
			expected: "Install",
		},
		{
			name:     "lvl1 when title missing",
			hit:      Hit{Hierarchy: Hierarchy{Lvl1: "Guides"}},
			expected: "Guides",
		},
		{
			name:     "lvl1 before lvl0",
			hit:      Hit{Hierarchy: Hierarchy{Lvl0: "Docs", Lvl1: "Guides"}},
			expected: "Guides",
		},
		{
			name:     "lvl0 before lvl2",
			hit:      Hit{Hierarchy: Hierarchy{Lvl0: "Docs", Lvl2: "Setup"}},
			expected: "Docs",
		},
		{
			name:     "lvl2 before lvl3",
			hit:      Hit{Hierarchy: Hierarchy{Lvl2: "Setup", Lvl3: "Docker"}},
			expected: "Setup",
		},
		{
			name:     "lvl3",
			hit:      Hit{Hierarchy: Hierarchy{Lvl3: "Docker"}},
			expected: "Docker",
		},
		{
			name:     "content before url",
			hit:      Hit{Content: "Run the collector", URL: "https://signoz.io/docs/x"},
			expected: "Run the collector",
		},
		{
			name:     "url as last field",
			hit:      Hit{URL: "https://signoz.io/docs/x"},
			expected: "https://signoz.io/docs/x",
		},
		{
			name:     "nothing at all",
			hit:      Hit{ObjectID: "1"},
			expected: UntitledResult,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.hit.DisplayTitle())
		})
	}
}

// TestHit_HighlightAttribute tests that only three fields are highlightable
func TestHit_HighlightAttribute(t *testing.T) {
	assert.Equal(t, AttrTitle, (&Hit{Title: "a", Hierarchy: Hierarchy{Lvl1: "b"}}).HighlightAttribute())
	assert.Equal(t, AttrLvl1, (&Hit{Hierarchy: Hierarchy{Lvl0: "a", Lvl1: "b"}}).HighlightAttribute())
	assert.Equal(t, AttrLvl0, (&Hit{Hierarchy: Hierarchy{Lvl0: "a", Lvl2: "c"}}).HighlightAttribute())
	assert.Empty(t, (&Hit{Hierarchy: Hierarchy{Lvl2: "c"}}).HighlightAttribute())
	assert.Empty(t, (&Hit{Content: "body"}).HighlightAttribute())
}

// TestHit_TitleParts tests highlight rendering of the chosen title
func TestHit_TitleParts(t *testing.T) {
	t.Run("uses provider highlight", func(t *testing.T) {
		hit := Hit{
			Title:      "Install locally",
			Highlights: map[string]string{AttrTitle: "<em>Install</em> locally"},
		}
		parts := hit.TitleParts()
		assert.Equal(t, []HighlightPart{
			{Text: "Install", Matched: true},
			{Text: " locally"},
		}, parts)
	})

	t.Run("falls back to raw value without highlight", func(t *testing.T) {
		hit := Hit{Hierarchy: Hierarchy{Lvl1: "Guides"}}
		assert.Equal(t, []HighlightPart{{Text: "Guides"}}, hit.TitleParts())
	})

	t.Run("plain text beyond highlightable fields", func(t *testing.T) {
		hit := Hit{
			Hierarchy:  Hierarchy{Lvl2: "Setup"},
			Highlights: map[string]string{AttrLvl2: "<em>Set</em>up"},
		}
		assert.Equal(t, []HighlightPart{{Text: "Setup"}}, hit.TitleParts())
	})
}

// TestBreadcrumb tests hierarchy and URL derived breadcrumbs
func TestBreadcrumb(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		hierarchy Hierarchy
		expected  string
	}{
		{
			name:      "hierarchy segments",
			hierarchy: Hierarchy{Lvl0: "Docs", Lvl1: "Guides"},
			expected:  "Docs › Guides",
		},
		{
			name:      "blank segments skipped and trimmed",
			hierarchy: Hierarchy{Lvl0: " Docs ", Lvl1: "  ", Lvl2: "Setup"},
			expected:  "Docs › Setup",
		},
		{
			name:     "url host and path",
			url:      "https://www.signoz.io/docs/install-locally",
			expected: "signoz.io › docs › install locally",
		},
		{
			name:     "url with trailing slash",
			url:      "https://signoz.io/docs/",
			expected: "signoz.io › docs",
		},
		{
			name:     "relative url is shown raw",
			url:      "/docs/foo",
			expected: "/docs/foo",
		},
		{
			name:     "unparsable url is shown raw",
			url:      "http://[::1",
			expected: "http://[::1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Breadcrumb(tt.url, tt.hierarchy))
		})
	}
}
