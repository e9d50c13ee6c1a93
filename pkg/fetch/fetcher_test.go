package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PrefersMainElement(t *testing.T) {
	page := `<html><body>
		<nav>Site navigation</nav>
		<main>
			<h1>Plasma Physics</h1>
			<p>Magnetic confinement holds plasma away from the walls.</p>
			<script>trackPageView();</script>
		</main>
		<footer>Copyright</footer>
	</body></html>`

	text := ExtractText(page)
	assert.Contains(t, text, "Plasma Physics")
	assert.Contains(t, text, "Magnetic confinement")
	assert.NotContains(t, text, "Site navigation")
	assert.NotContains(t, text, "Copyright")
	assert.NotContains(t, text, "trackPageView")
}

func TestExtractText_ContentClassFallback(t *testing.T) {
	page := `<html><body>
		<div class="sidebar">Related posts</div>
		<div class="content"><p>The article body lives here.</p></div>
	</body></html>`

	text := ExtractText(page)
	assert.Contains(t, text, "The article body lives here.")
	assert.NotContains(t, text, "Related posts")
}

func TestExtractText_BodyFallback(t *testing.T) {
	page := `<html><body>
		<style>.x { color: red }</style>
		<p>Plain page without landmarks.</p>
	</body></html>`

	text := ExtractText(page)
	assert.Contains(t, text, "Plain page without landmarks.")
	assert.NotContains(t, text, "color: red")
}

func TestExtractText_Truncation(t *testing.T) {
	long := strings.Repeat("science ", 3000)
	page := "<html><body><main><p>" + long + "</p></main></body></html>"

	text := ExtractText(page)
	assert.Contains(t, text, "[Content truncated. Original:")
	assert.LessOrEqual(t, len(text), maxContentLength+100)
}

func TestExtractText_Empty(t *testing.T) {
	assert.Equal(t, "", ExtractText(""))
}

func TestFetchContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><body><article><p>Fetched article text.</p></article></body></html>`))
	}))
	defer srv.Close()

	f := NewContentFetcher()
	text, err := f.FetchContent(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, text, "Fetched article text.")
}

func TestFetchContent_NonHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4"))
	}))
	defer srv.Close()

	f := NewContentFetcher()
	_, err := f.FetchContent(context.Background(), srv.URL)
	require.ErrorIs(t, err, ErrNotHTML)
}

func TestFetchContent_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewContentFetcher()
	_, err := f.FetchContent(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch returned 404")
}

func TestFetchContent_InvalidURL(t *testing.T) {
	f := NewContentFetcher()

	_, err := f.FetchContent(context.Background(), "ftp://example.com/file")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid URL")

	_, err = f.FetchContent(context.Background(), "not a url")
	require.Error(t, err)
}

func TestIsFetchable(t *testing.T) {
	assert.True(t, isFetchable("https://example.com/page"))
	assert.True(t, isFetchable("http://example.com"))
	assert.False(t, isFetchable("ftp://example.com"))
	assert.False(t, isFetchable("/relative/path"))
	assert.False(t, isFetchable(""))
}
