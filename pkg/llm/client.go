// Package llm provides the chat client for Ollama-compatible endpoints.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request describes one chat completion call.
type Request struct {
	Messages []Message
	// EnableThinking asks the model for an explicit reasoning phase.
	EnableThinking bool
	// Format constrains the output format; "json" forces valid JSON.
	Format string
}

// Response is a normalized chat completion: reasoning separated from the
// content the caller should parse.
type Response struct {
	Content   string
	Reasoning string
}

// Caller is the chat interface agents depend on. Satisfied by *Client and
// by scripted fakes in tests.
type Caller interface {
	ChatCompletion(ctx context.Context, req Request) (Response, error)
}

// Client talks to an Ollama-compatible /api/chat endpoint.
type Client struct {
	baseURL     string
	model       string
	temperature float64
	maxTokens   int
	httpClient  *http.Client
}

// NewClient creates a new chat client. Generation can take minutes on local
// models, so the HTTP timeout is generous; callers bound individual runs via
// context.
func NewClient(baseURL, model string, temperature float64, maxTokens int) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		httpClient: &http.Client{
			Timeout: 300 * time.Second,
		},
	}
}

type chatOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

type thinkingConfig struct {
	Type string `json:"type"`
}

type chatPayload struct {
	Model    string          `json:"model"`
	Messages []Message       `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  chatOptions     `json:"options"`
	Format   string          `json:"format,omitempty"`
	Thinking *thinkingConfig `json:"thinking,omitempty"`
}

type chatResult struct {
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
}

// ChatCompletion sends a non-streaming chat request and returns the
// normalized response.
func (c *Client) ChatCompletion(ctx context.Context, req Request) (Response, error) {
	payload := chatPayload{
		Model:    c.model,
		Messages: req.Messages,
		Stream:   false,
		Options: chatOptions{
			Temperature: c.temperature,
			NumPredict:  c.maxTokens,
		},
		Format: req.Format,
	}
	if req.EnableThinking {
		payload.Thinking = &thinkingConfig{Type: "enabled"}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Response{}, fmt.Errorf("failed to marshal chat payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("failed to read chat response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Response{}, fmt.Errorf("chat request returned %d: %s", resp.StatusCode, truncate(string(raw), 200))
	}

	var result chatResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return Response{}, fmt.Errorf("failed to decode chat response: %w", err)
	}

	reasoning, content := SplitThinking(result.Message.Content)
	return Response{Content: content, Reasoning: reasoning}, nil
}

// SplitThinking separates an explicit <think>...</think> block from the rest
// of a model response. Responses without a complete, correctly ordered block
// pass through unchanged.
func SplitThinking(raw string) (reasoning, content string) {
	start := strings.Index(raw, "<think>")
	end := strings.Index(raw, "</think>")
	if start < 0 || end < start {
		return "", raw
	}
	reasoning = strings.TrimSpace(raw[start+len("<think>") : end])
	content = strings.TrimSpace(raw[:start] + raw[end+len("</think>"):])
	return reasoning, content
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
