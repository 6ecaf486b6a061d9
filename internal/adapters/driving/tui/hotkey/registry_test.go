package hotkey

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

var ctrlK = key.NewBinding(key.WithKeys("ctrl+k"))

func TestRegistry_DispatchCallsHandler(t *testing.T) {
	r := NewRegistry()
	calls := 0
	r.Register(ctrlK, func() tea.Cmd {
		calls++
		return nil
	})

	_, handled := r.Dispatch(tea.KeyMsg{Type: tea.KeyCtrlK})

	assert.True(t, handled)
	assert.Equal(t, 1, calls)
}

func TestRegistry_DispatchIgnoresOtherKeys(t *testing.T) {
	r := NewRegistry()
	r.Register(ctrlK, func() tea.Cmd { return nil })

	cmd, handled := r.Dispatch(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})

	assert.False(t, handled)
	assert.Nil(t, cmd)
}

func TestRegistry_ReleaseMakesShortcutInert(t *testing.T) {
	r := NewRegistry()
	calls := 0
	release := r.Register(ctrlK, func() tea.Cmd {
		calls++
		return nil
	})

	release()
	_, handled := r.Dispatch(tea.KeyMsg{Type: tea.KeyCtrlK})

	assert.False(t, handled)
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_ReleaseIsIdempotent(t *testing.T) {
	r := NewRegistry()
	first := r.Register(ctrlK, func() tea.Cmd { return nil })
	r.Register(ctrlK, func() tea.Cmd { return nil })

	first()
	first()

	assert.Equal(t, 1, r.Len())
}

func TestRegistry_ReturnsHandlerCommand(t *testing.T) {
	r := NewRegistry()
	r.Register(ctrlK, func() tea.Cmd {
		return func() tea.Msg { return "toggled" }
	})

	cmd, handled := r.Dispatch(tea.KeyMsg{Type: tea.KeyCtrlK})

	assert.True(t, handled)
	if assert.NotNil(t, cmd) {
		assert.Equal(t, "toggled", cmd())
	}
}
