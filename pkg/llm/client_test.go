package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatServer(t *testing.T, content string, capture *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": map[string]any{"role": "assistant", "content": content},
		})
	}))
}

func TestChatCompletion(t *testing.T) {
	var payload map[string]any
	srv := chatServer(t, "Hello there.", &payload)
	defer srv.Close()

	c := NewClient(srv.URL, "qwen3:8b", 0.3, 4096)
	resp, err := c.ChatCompletion(context.Background(), Request{
		Messages: []Message{
			{Role: RoleSystem, Content: "You are helpful."},
			{Role: RoleUser, Content: "Say hello."},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello there.", resp.Content)
	assert.Empty(t, resp.Reasoning)

	assert.Equal(t, "qwen3:8b", payload["model"])
	assert.Equal(t, false, payload["stream"])
	opts := payload["options"].(map[string]any)
	assert.Equal(t, 0.3, opts["temperature"])
	assert.Equal(t, float64(4096), opts["num_predict"])
	_, hasFormat := payload["format"]
	assert.False(t, hasFormat)
	_, hasThinking := payload["thinking"]
	assert.False(t, hasThinking)
}

func TestChatCompletion_JSONFormatAndThinking(t *testing.T) {
	var payload map[string]any
	srv := chatServer(t, `{"ok": true}`, &payload)
	defer srv.Close()

	c := NewClient(srv.URL, "qwen3:8b", 0.1, 1024)
	_, err := c.ChatCompletion(context.Background(), Request{
		Messages:       []Message{{Role: RoleUser, Content: "json please"}},
		Format:         "json",
		EnableThinking: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "json", payload["format"])
	thinking := payload["thinking"].(map[string]any)
	assert.Equal(t, "enabled", thinking["type"])
}

func TestChatCompletion_StripsThinkingBlock(t *testing.T) {
	srv := chatServer(t, "<think>working through it</think>The answer is 4.", nil)
	defer srv.Close()

	c := NewClient(srv.URL, "qwen3:8b", 0.3, 4096)
	resp, err := c.ChatCompletion(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "2+2?"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "The answer is 4.", resp.Content)
	assert.Equal(t, "working through it", resp.Reasoning)
}

func TestChatCompletion_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("model not loaded"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "qwen3:8b", 0.3, 4096)
	_, err := c.ChatCompletion(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat request returned 500")
	assert.Contains(t, err.Error(), "model not loaded")
}

func TestSplitThinking(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		wantReasoning string
		wantContent   string
	}{
		{
			name:          "complete block",
			raw:           "<think>step one</think>final answer",
			wantReasoning: "step one",
			wantContent:   "final answer",
		},
		{
			name:        "no block",
			raw:         "just an answer",
			wantContent: "just an answer",
		},
		{
			name:        "unterminated block passes through",
			raw:         "<think>never closed",
			wantContent: "<think>never closed",
		},
		{
			name:        "close tag before open tag passes through",
			raw:         "</think>answer<think>reasoning",
			wantContent: "</think>answer<think>reasoning",
		},
		{
			name:        "close tag only passes through",
			raw:         "</think>answer",
			wantContent: "</think>answer",
		},
		{
			name:          "content before and after",
			raw:           "prefix <think>reasoning</think> suffix",
			wantReasoning: "reasoning",
			wantContent:   "prefix  suffix",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reasoning, content := SplitThinking(tt.raw)
			assert.Equal(t, tt.wantReasoning, reasoning)
			assert.Equal(t, tt.wantContent, content)
		})
	}
}

func TestNewClient_TrimsBaseURL(t *testing.T) {
	c := NewClient("http://localhost:11434/", "m", 0, 0)
	assert.Equal(t, "http://localhost:11434", c.baseURL)
}
