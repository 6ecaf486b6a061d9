package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
)

var configured = domain.SearchSettings{
	AppID:       "APP",
	APIKey:      "key",
	IndexName:   "docs",
	HitsPerPage: 7,
}

func TestSearchService_DisabledUntilConfigured(t *testing.T) {
	service := NewSearchService(mockFactory(&mockSearchClient{}))

	assert.False(t, service.Enabled())
	_, err := service.Search(context.Background(), "trace", domain.SearchOptions{})
	assert.ErrorIs(t, err, domain.ErrSearchDisabled)
}

func TestSearchService_Search(t *testing.T) {
	network := &mockSearchClient{}
	service := NewSearchService(mockFactory(network))
	require.NoError(t, service.Configure(configured))
	require.True(t, service.Enabled())

	result, err := service.Search(context.Background(), "trace", domain.SearchOptions{Page: 2})

	require.NoError(t, err)
	assert.Equal(t, "trace", result.Query)
	require.Equal(t, 1, network.callCount())
	req := network.calls[0][0]
	assert.Equal(t, "docs", req.IndexName)
	assert.Equal(t, 7, req.Params.HitsPerPage)
	assert.Equal(t, 2, req.Params.Page)
}

func TestSearchService_HitsPerPageOverride(t *testing.T) {
	network := &mockSearchClient{}
	service := NewSearchService(mockFactory(network))
	require.NoError(t, service.Configure(configured))

	_, err := service.Search(context.Background(), "trace", domain.SearchOptions{HitsPerPage: 3})

	require.NoError(t, err)
	assert.Equal(t, 3, network.calls[0][0].Params.HitsPerPage)
}

func TestSearchService_BlankQueryIsLocal(t *testing.T) {
	network := &mockSearchClient{}
	service := NewSearchService(mockFactory(network))
	require.NoError(t, service.Configure(configured))

	result, err := service.Search(context.Background(), "", domain.SearchOptions{})

	require.NoError(t, err)
	assert.Empty(t, result.Hits)
	assert.Zero(t, network.callCount())
}

func TestSearchService_ProviderError(t *testing.T) {
	network := &mockSearchClient{err: errors.New("boom")}
	service := NewSearchService(mockFactory(network))
	require.NoError(t, service.Configure(configured))

	_, err := service.Search(context.Background(), "trace", domain.SearchOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestSearchService_ReconfigureDisables(t *testing.T) {
	service := NewSearchService(mockFactory(&mockSearchClient{}))
	require.NoError(t, service.Configure(configured))

	require.NoError(t, service.Configure(domain.SearchSettings{AppID: "APP"}))

	assert.False(t, service.Enabled())
}

func TestSearchService_FactoryError(t *testing.T) {
	factory := func(domain.SearchSettings) (driven.SearchClient, error) {
		return nil, errors.New("bad base url")
	}
	service := NewSearchService(factory)

	err := service.Configure(configured)

	require.Error(t, err)
	assert.False(t, service.Enabled())
}
