// Package fetch retrieves web pages and extracts readable article text.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// Content longer than this is cut with a truncation marker to keep prompts
// within token limits.
const maxContentLength = 15000

// ErrNotHTML is returned when a URL serves something other than an HTML
// document.
var ErrNotHTML = errors.New("non-HTML content type")

// Fetcher is the content retrieval interface the summarizer depends on.
type Fetcher interface {
	FetchContent(ctx context.Context, rawURL string) (string, error)
}

// ContentFetcher fetches pages with browser-like headers and strips them
// down to main article text.
type ContentFetcher struct {
	httpClient *http.Client
}

// NewContentFetcher creates a fetcher with a 30 second timeout. Redirects
// are followed.
func NewContentFetcher() *ContentFetcher {
	return &ContentFetcher{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchContent downloads a page and returns its cleaned main text.
func (f *ContentFetcher) FetchContent(ctx context.Context, rawURL string) (string, error) {
	if !isFetchable(rawURL) {
		return "", fmt.Errorf("invalid URL: %s", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	setBrowserHeaders(req)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetch returned %d", resp.StatusCode)
	}

	contentType := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(contentType, "text/html") && !strings.Contains(contentType, "application/xhtml") {
		return "", fmt.Errorf("%w: %s", ErrNotHTML, contentType)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read body: %w", err)
	}

	text := ExtractText(string(body))
	if text == "" {
		return "", errors.New("no content extracted")
	}
	return text, nil
}

func isFetchable(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Host != "" && (u.Scheme == "http" || u.Scheme == "https")
}

func setBrowserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 "+
		"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("DNT", "1")
	req.Header.Set("Connection", "keep-alive")
}

// Tags whose subtrees never contain article text.
var strippedTags = map[string]bool{
	"script": true, "style": true, "nav": true, "header": true,
	"footer": true, "aside": true, "iframe": true, "noscript": true,
	"form": true, "button": true, "input": true, "select": true,
	"textarea": true,
}

// ExtractText parses HTML and returns the cleaned text of the main content
// area, falling back to the whole body. Boilerplate elements are dropped,
// lines are trimmed, and the result is capped at maxContentLength.
func ExtractText(page string) string {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return ""
	}

	root := findMainContent(doc)
	if root == nil {
		root = findElement(doc, func(n *html.Node) bool { return n.Data == "body" })
	}
	if root == nil {
		return ""
	}

	var lines []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && strippedTags[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				lines = append(lines, s)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	text := strings.Join(lines, "\n")
	if len(text) > maxContentLength {
		text = text[:maxContentLength] + fmt.Sprintf("\n\n[Content truncated. Original: %d chars]", len(text))
	}
	return text
}

// findMainContent tries the common main-content markers in preference order.
func findMainContent(doc *html.Node) *html.Node {
	matchers := []func(*html.Node) bool{
		func(n *html.Node) bool { return n.Data == "main" },
		func(n *html.Node) bool { return n.Data == "article" },
		func(n *html.Node) bool { return attrValue(n, "role") == "main" },
		classMatcher("content"),
		classMatcher("main-content"),
		classMatcher("article-content"),
		classMatcher("post-content"),
		idMatcher("content"),
		idMatcher("main-content"),
		classMatcher("entry-content"),
		classMatcher("page-content"),
	}
	for _, match := range matchers {
		if n := findElement(doc, match); n != nil {
			return n
		}
	}
	return nil
}

func findElement(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, match); found != nil {
			return found
		}
	}
	return nil
}

func classMatcher(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		for _, f := range strings.Fields(attrValue(n, "class")) {
			if f == class {
				return true
			}
		}
		return false
	}
}

func idMatcher(id string) func(*html.Node) bool {
	return func(n *html.Node) bool { return attrValue(n, "id") == id }
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
