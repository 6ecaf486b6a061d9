package algolia

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

const sampleResponse = `{
  "results": [{
    "hits": [{
      "objectID": "abc",
      "url": "https://signoz.io/docs/install/docker/#step-1",
      "content": null,
      "type": "lvl2",
      "hierarchy": {"lvl0": "Docs", "lvl1": "Install", "lvl2": "Docker", "lvl3": null},
      "_highlightResult": {
        "hierarchy": {
          "lvl0": {"value": "Docs", "matchLevel": "none"},
          "lvl1": {"value": "<em>Inst</em>all", "matchLevel": "full"}
        },
        "url": {"value": "https://signoz.io/docs/install/docker/", "matchLevel": "none"}
      }
    }],
    "nbHits": 1,
    "page": 0,
    "nbPages": 1,
    "hitsPerPage": 20,
    "processingTimeMS": 3,
    "exhaustiveNbHits": true,
    "query": "inst",
    "params": "query=inst&hitsPerPage=20"
  }]
}`

func testSettings(baseURL string) domain.SearchSettings {
	return domain.SearchSettings{
		AppID:     "APPID",
		APIKey:    "search-key",
		IndexName: "signoz",
		BaseURL:   baseURL,
	}
}

func TestClient_Search(t *testing.T) {
	var gotBody multiQueryRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/1/indexes/*/queries", r.URL.Path)
		assert.Equal(t, "APPID", r.Header.Get(HeaderApplicationID))
		assert.Equal(t, "search-key", r.Header.Get(HeaderAPIKey))

		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	client, err := NewClient(testSettings(server.URL))
	require.NoError(t, err)

	resp, err := client.Search(context.Background(), []domain.SearchRequest{
		domain.NewSearchRequest("signoz", "inst", 20),
	})
	require.NoError(t, err)

	require.Len(t, gotBody.Requests, 1)
	assert.Equal(t, "signoz", gotBody.Requests[0].IndexName)
	params, err := url.ParseQuery(gotBody.Requests[0].Params)
	require.NoError(t, err)
	assert.Equal(t, "inst", params.Get("query"))
	assert.Equal(t, "20", params.Get("hitsPerPage"))

	require.Len(t, resp.Results, 1)
	result := resp.Results[0]
	assert.Equal(t, 1, result.NbHits)
	assert.Equal(t, "inst", result.Query)
	assert.True(t, result.ExhaustiveNbHits)
	require.Len(t, result.Hits, 1)

	hit := result.Hits[0]
	assert.Equal(t, "abc", hit.ObjectID)
	assert.Empty(t, hit.Content)
	assert.Equal(t, "Install", hit.DisplayTitle())
	assert.Equal(t, "Docs › Install › Docker", hit.Breadcrumb())
	assert.Equal(t, "<em>Inst</em>all", hit.Highlights["hierarchy.lvl1"])
	assert.Equal(t, []domain.HighlightPart{
		{Text: "Inst", Matched: true},
		{Text: "all"},
	}, hit.TitleParts())
}

func TestClient_Search_AbsentQueryOmitted(t *testing.T) {
	body := toRequest([]domain.SearchRequest{{IndexName: "docs", Params: domain.SearchParams{HitsPerPage: 5}}})

	params, err := url.ParseQuery(body.Requests[0].Params)
	require.NoError(t, err)
	_, hasQuery := params["query"]
	assert.False(t, hasQuery)
	assert.Equal(t, "5", params.Get("hitsPerPage"))
}

func TestClient_Search_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"Invalid Application-ID or API key","status":403}`))
	}))
	defer server.Close()

	client, err := NewClient(testSettings(server.URL))
	require.NoError(t, err)

	_, err = client.Search(context.Background(), []domain.SearchRequest{domain.NewSearchRequest("signoz", "x", 20)})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "Invalid Application-ID")
}

func TestClient_Search_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client, err := NewClient(testSettings(server.URL))
	require.NoError(t, err)

	_, err = client.Search(context.Background(), []domain.SearchRequest{domain.NewSearchRequest("signoz", "x", 20)})
	assert.Error(t, err)
}

func TestClient_Search_ContextCancelled(t *testing.T) {
	client, err := NewClient(testSettings("http://127.0.0.1:1"), WithRateLimit(1))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.Search(ctx, []domain.SearchRequest{domain.NewSearchRequest("signoz", "x", 20)})
	assert.Error(t, err)
}

func TestNewClient(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		_, err := NewClient(domain.SearchSettings{IndexName: "docs"})
		assert.ErrorIs(t, err, ErrMissingCredentials)
	})

	t.Run("default host derived from app id", func(t *testing.T) {
		client, err := NewClient(domain.SearchSettings{AppID: "ABC123", APIKey: "k"})
		require.NoError(t, err)
		assert.Equal(t, "https://abc123-dsn.algolia.net", client.baseURL)
		assert.Nil(t, client.limiter)
	})

	t.Run("rate limit from settings", func(t *testing.T) {
		client, err := NewClient(domain.SearchSettings{AppID: "A", APIKey: "k", RateLimit: 5})
		require.NoError(t, err)
		require.NotNil(t, client.limiter)
		assert.Equal(t, 5, client.limiter.Burst())
	})
}

func TestNewFactory(t *testing.T) {
	factory := NewFactory(WithTimeout(0))

	client, err := factory(domain.SearchSettings{AppID: "A", APIKey: "k"})

	require.NoError(t, err)
	assert.NotNil(t, client)
}
