package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_QuitBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Quit.Keys()
	assert.Contains(t, keys, "q")
	assert.Contains(t, keys, "ctrl+c")
}

func TestDefaultKeyMap_ToggleSearchBinding(t *testing.T) {
	km := DefaultKeyMap()

	assert.Equal(t, []string{"ctrl+k"}, km.ToggleSearch.Keys())
}

func TestDefaultKeyMap_ArrowsOnly(t *testing.T) {
	km := DefaultKeyMap()

	// Letters must reach the query input, so list navigation is arrows only.
	assert.Equal(t, []string{"up"}, km.Up.Keys())
	assert.Equal(t, []string{"down"}, km.Down.Keys())
}

func TestDefaultKeyMap_CancelBinding(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Cancel.Keys(), "esc")
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ShortHelp()

	require.Len(t, bindings, 3)
	assert.Equal(t, km.OpenSearch, bindings[0])
	assert.Equal(t, km.Quit, bindings[2])
}

func TestOverlayHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.OverlayHelp()

	assert.Len(t, bindings, 5)
	assert.Equal(t, km.ToggleMode, bindings[3])
}

func TestFullHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.FullHelp()

	assert.Len(t, bindings, 4)
	assert.Len(t, bindings[0], 3)
	assert.Len(t, bindings[3], 2)
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+k", km.ToggleSearch))
	assert.True(t, Matches("tab", km.ToggleMode))
	assert.True(t, Matches("b", km.Back))

	assert.False(t, Matches("x", km.Quit))
	assert.False(t, Matches("k", km.Up))
	assert.False(t, Matches("down", km.Up))
}

func TestBindings_HaveHelp(t *testing.T) {
	km := DefaultKeyMap()

	testCases := []struct {
		name    string
		binding key.Binding
	}{
		{"Quit", km.Quit},
		{"Help", km.Help},
		{"ToggleSearch", km.ToggleSearch},
		{"OpenSearch", km.OpenSearch},
		{"ToggleMode", km.ToggleMode},
		{"Up", km.Up},
		{"Down", km.Down},
		{"Select", km.Select},
		{"Cancel", km.Cancel},
		{"Back", km.Back},
		{"CopyMarkdown", km.CopyMarkdown},
		{"CopyURL", km.CopyURL},
		{"OpenBrowser", km.OpenBrowser},
		{"Home", km.Home},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			help := tc.binding.Help()
			assert.NotEmpty(t, help.Key, "binding should have help key")
			assert.NotEmpty(t, help.Desc)
		})
	}
}
