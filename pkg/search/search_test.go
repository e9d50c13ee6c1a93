package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resultsPage = `<html><body>
<div class="results">
  <div class="result">
    <a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fplasma&amp;rut=abc123">
      Plasma Confinement Basics
    </a>
    <a class="result__snippet" href="#">How magnetic fields hold plasma in place.</a>
  </div>
  <div class="result">
    <a class="result__a" href="https://fusion.edu/tokamak">Tokamak Design</a>
    <div class="result__snippet">An overview of tokamak geometry.</div>
  </div>
  <div class="result">
    <a class="result__a" href="javascript:void(0)">Not a real link</a>
  </div>
</div>
</body></html>`

func TestParseResults(t *testing.T) {
	results := parseResults(resultsPage)
	require.Len(t, results, 2)

	assert.Equal(t, "Plasma Confinement Basics", results[0].Title)
	assert.Equal(t, "https://example.com/plasma", results[0].URL)
	assert.Equal(t, "How magnetic fields hold plasma in place.", results[0].Snippet)

	assert.Equal(t, "Tokamak Design", results[1].Title)
	assert.Equal(t, "https://fusion.edu/tokamak", results[1].URL)
	assert.Equal(t, "An overview of tokamak geometry.", results[1].Snippet)
}

func TestParseResults_NoResults(t *testing.T) {
	assert.Empty(t, parseResults("<html><body><p>No results.</p></body></html>"))
}

func TestResolveRedirect(t *testing.T) {
	tests := []struct {
		name string
		href string
		want string
	}{
		{
			name: "uddg redirect",
			href: "//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fpage&rut=xyz",
			want: "https://example.com/page",
		},
		{
			name: "direct https link",
			href: "https://example.com/direct",
			want: "https://example.com/direct",
		},
		{
			name: "protocol relative without redirect",
			href: "//example.com/page",
			want: "https://example.com/page",
		},
		{
			name: "javascript link",
			href: "javascript:void(0)",
			want: "",
		},
		{
			name: "mailto link",
			href: "mailto:someone@example.com",
			want: "",
		},
		{
			name: "empty",
			href: "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveRedirect(tt.href))
		})
	}
}

func TestSearch(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		gotQuery = r.PostFormValue("q")
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(resultsPage))
	}))
	defer srv.Close()

	d := NewDuckDuckGo(srv.URL)
	results, err := d.Search(context.Background(), "plasma confinement", 10)
	require.NoError(t, err)
	assert.Equal(t, "plasma confinement", gotQuery)
	assert.Len(t, results, 2)
}

func TestSearch_MaxResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(resultsPage))
	}))
	defer srv.Close()

	d := NewDuckDuckGo(srv.URL)
	results, err := d.Search(context.Background(), "plasma", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Plasma Confinement Basics", results[0].Title)
}

func TestSearch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	d := NewDuckDuckGo(srv.URL)
	_, err := d.Search(context.Background(), "plasma", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search returned 429")
}

func TestNewDuckDuckGo_DefaultBaseURL(t *testing.T) {
	d := NewDuckDuckGo("")
	assert.Equal(t, "https://html.duckduckgo.com/html/", d.baseURL)
}
