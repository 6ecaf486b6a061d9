package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

func TestResultActionService_CopyURL(t *testing.T) {
	clipboard := &mockClipboard{}
	service := NewResultActionService(clipboard, nil, "https://signoz.io")

	err := service.CopyURL(context.Background(), &domain.Hit{URL: "/docs/foo#bar"})

	require.NoError(t, err)
	assert.Equal(t, "https://signoz.io/docs/foo#bar", clipboard.text)
}

func TestResultActionService_CopyURL_Errors(t *testing.T) {
	service := NewResultActionService(&mockClipboard{}, nil, "https://signoz.io")

	assert.Error(t, service.CopyURL(context.Background(), nil))
	assert.ErrorIs(t, service.CopyURL(context.Background(), &domain.Hit{}), domain.ErrNoNavigation)
}

func TestResultActionService_OpenExternal(t *testing.T) {
	opener := &mockOpener{}
	service := NewResultActionService(nil, opener, "https://signoz.io")

	require.NoError(t, service.OpenExternal(context.Background(), "https://other.example/x"))
	require.NoError(t, service.OpenExternal(context.Background(), "/docs/x"))

	assert.Equal(t, []string{"https://other.example/x", "https://signoz.io/docs/x"}, opener.opened)
}

func TestResultActionService_OpenExternal_NoOpener(t *testing.T) {
	service := NewResultActionService(nil, nil, "https://signoz.io")

	assert.Error(t, service.OpenExternal(context.Background(), "https://x.example"))
	assert.ErrorIs(t, service.OpenExternal(context.Background(), ""), domain.ErrNoNavigation)
}
