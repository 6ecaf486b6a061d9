package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil search service returns error", func(t *testing.T) {
		ports := &Ports{}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingSearchService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Search: &mockSearchService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestServer_Instructions(t *testing.T) {
	t.Run("enabled search with pages", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Search: &mockSearchService{},
			Pages:  &mockPageService{},
		})
		require.NoError(t, err)

		assert.Contains(t, server.Instructions(), "Use search_docs")
		assert.Contains(t, server.Instructions(), "read_page")
		assert.NotContains(t, server.Instructions(), "not configured")
	})

	t.Run("disabled search names missing keys", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Search: &mockSearchService{disabled: true},
		})
		require.NoError(t, err)

		assert.Contains(t, server.Instructions(), "Search is not configured")
		assert.Contains(t, server.Instructions(), "search.api_key")
		assert.NotContains(t, server.Instructions(), "read_page")
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil search service returns error", func(t *testing.T) {
		ports := &Ports{}
		err := ports.Validate()
		assert.ErrorIs(t, err, ErrMissingSearchService)
	})

	t.Run("search only is valid", func(t *testing.T) {
		ports := &Ports{
			Search: &mockSearchService{},
		}
		err := ports.Validate()
		assert.NoError(t, err)
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			Search:    &mockSearchService{},
			Selection: &mockSelectionService{},
			Pages:     &mockPageService{},
		}
		err := ports.Validate()
		assert.NoError(t, err)
	})
}
