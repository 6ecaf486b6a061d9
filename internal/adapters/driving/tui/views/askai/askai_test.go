package askai

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanel_EnterOpensAssistant(t *testing.T) {
	var opened []string
	p := New(nil, "https://signoz.io/docs/ask-ai", func(url string) tea.Cmd {
		opened = append(opened, url)
		return func() tea.Msg { return nil }
	})

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, []string{"https://signoz.io/docs/ask-ai"}, opened)
}

func TestPanel_OtherKeysIgnored(t *testing.T) {
	called := false
	p := New(nil, "https://signoz.io/docs/ask-ai", func(string) tea.Cmd {
		called = true
		return nil
	})

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	assert.Nil(t, cmd)
	assert.False(t, called)
}

func TestPanel_NoURL(t *testing.T) {
	p := New(nil, "", func(string) tea.Cmd {
		t.Fatal("open must not be called without a URL")
		return nil
	})

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestPanel_View(t *testing.T) {
	p := New(nil, "https://example.com/assistant", nil)

	view := p.View()

	assert.Contains(t, view, "Ask AI")
	assert.Contains(t, view, "https://example.com/assistant")
	assert.Contains(t, view, "can be wrong")
}

func TestPanel_SetURL(t *testing.T) {
	p := New(nil, "a", nil)

	p.SetURL("b")

	assert.Equal(t, "b", p.URL())
}
