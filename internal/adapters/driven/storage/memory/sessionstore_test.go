package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_SetGet(t *testing.T) {
	store := NewSessionStore()

	_, ok, err := store.Get("utm_params")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("utm_params", `{"utm_source":"x"}`))

	val, ok, err := store.Get("utm_params")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"utm_source":"x"}`, val)
}

func TestSessionStore_Closed(t *testing.T) {
	store := NewSessionStore()
	require.NoError(t, store.Close())

	_, _, err := store.Get("k")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, store.Set("k", "v"), ErrClosed)
}
