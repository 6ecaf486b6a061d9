package pages

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const docsPage = `<!DOCTYPE html>
<html>
<head><title>Install with Docker | SigNoz</title></head>
<body>
<nav class="navbar"><a href="/docs">Docs</a></nav>
<main>
<article>
<div class="theme-doc-markdown markdown">
<h1>Install with Docker</h1>
<p>Run the <strong>install</strong> script.</p>
<h2 id="step-1">Step 1<a class="hash-link" href="#step-1">#</a></h2>
<pre><code>docker compose up -d</code></pre>
<script>track()</script>
</div>
</article>
</main>
<footer>Footer links</footer>
</body>
</html>`

func TestFetcher_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "docsearch-test", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(docsPage))
	}))
	defer server.Close()

	fetcher := NewFetcher(WithUserAgent("docsearch-test"))

	html, err := fetcher.Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Contains(t, html, "Install with Docker")
}

func TestFetcher_Fetch_NotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := NewFetcher().Fetch(context.Background(), server.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestExtractor_Extract(t *testing.T) {
	content, err := NewExtractor("").Extract(docsPage)

	require.NoError(t, err)
	assert.Equal(t, "Install with Docker", content.Title)
	assert.Contains(t, content.ContentHTML, "docker compose up -d")
	assert.NotContains(t, content.ContentHTML, "track()")
	assert.NotContains(t, content.ContentHTML, "hash-link")
	assert.NotContains(t, content.ContentHTML, "Footer links")
}

func TestExtractor_CustomSelector(t *testing.T) {
	html := `<html><body><div id="doc"><p>custom</p></div><main><p>main</p></main></body></html>`

	content, err := NewExtractor("#doc").Extract(html)

	require.NoError(t, err)
	assert.Contains(t, content.ContentHTML, "custom")
	assert.NotContains(t, content.ContentHTML, "main")
}

func TestExtractor_TitleFallback(t *testing.T) {
	html := `<html><head><title>Overview | SigNoz</title></head><body><main><p>x</p></main></body></html>`

	content, err := NewExtractor("").Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "Overview", content.Title)
}

func TestExtractor_EmptyBody(t *testing.T) {
	_, err := NewExtractor("").Extract(`<html><body><main><script>x</script></main></body></html>`)

	assert.ErrorIs(t, err, ErrNoContent)
}

func TestConverter_Convert(t *testing.T) {
	md, err := NewConverter().Convert(`<h2>Step 1</h2><p>Run the <strong>install</strong> script.</p>`)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(md, "## Step 1"), md)
	assert.Contains(t, md, "**install**")
}

func TestConverter_Empty(t *testing.T) {
	_, err := NewConverter().Convert("   ")
	assert.Error(t, err)
}

func TestPipeline(t *testing.T) {
	content, err := NewExtractor("").Extract(docsPage)
	require.NoError(t, err)

	md, err := NewConverter().Convert(content.ContentHTML)

	require.NoError(t, err)
	assert.Contains(t, md, "# Install with Docker")
	assert.Contains(t, md, "docker compose up -d")
}
