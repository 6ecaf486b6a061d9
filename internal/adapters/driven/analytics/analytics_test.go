package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/logger"
)

func TestHTTPSink_Send(t *testing.T) {
	var got domain.Event
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotQuery = r.URL.Query().Get("utm_source")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	sink, err := NewHTTPSink(server.URL + "/v1/events")
	require.NoError(t, err)

	event := domain.ClickEvent(map[string]any{"clickName": "copy_markdown"})
	event.AnonymousID = "anon"
	err = sink.Send(context.Background(), event, map[string]string{"utm_source": "news"})

	require.NoError(t, err)
	assert.Equal(t, "Website Click", got.EventName)
	assert.Equal(t, "track", got.EventType)
	assert.Equal(t, "copy_markdown", got.Attributes["clickName"])
	assert.Equal(t, "anon", got.AnonymousID)
	assert.Equal(t, "news", gotQuery)
}

func TestHTTPSink_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	sink, err := NewHTTPSink(server.URL)
	require.NoError(t, err)

	err = sink.Send(context.Background(), domain.ClickEvent(nil), nil)
	assert.EqualError(t, err, "analytics: HTTP 502")
}

func TestNewHTTPSink_InvalidEndpoint(t *testing.T) {
	_, err := NewHTTPSink("not-a-url")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogSink_Send(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetDevelopment(true)
	t.Cleanup(func() {
		logger.SetDevelopment(false)
		logger.SetOutput(os.Stderr)
	})

	err := NewLogSink().Send(context.Background(), domain.ClickEvent(nil), map[string]string{"gclid": "x"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Website Click")
	assert.Contains(t, buf.String(), "gclid")
}
