package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{
		"HTTP_PORT", "DATABASE_PATH", "OLLAMA_HOST", "OLLAMA_MODEL",
		"LLM_TEMPERATURE", "LLM_MAX_TOKENS", "MAX_RESEARCH_TIME_MINUTES",
		"SEARCH_BASE_URL", "SESSION_CACHE_MAX_AGE_HOURS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.HTTPPort)
	assert.Equal(t, "data/research.db", cfg.DatabasePath)
	assert.Equal(t, "http://localhost:11434", cfg.OllamaHost)
	assert.Equal(t, "qwen3:8b", cfg.OllamaModel)
	assert.Equal(t, 0.3, cfg.LLMTemperature)
	assert.Equal(t, 4096, cfg.LLMMaxTokens)
	assert.Equal(t, 30*time.Minute, cfg.MaxResearchTime)
	assert.Equal(t, "https://html.duckduckgo.com/html/", cfg.SearchBaseURL)
	assert.Equal(t, 24*time.Hour, cfg.SessionCacheMaxAge)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("DATABASE_PATH", "/tmp/r.db")
	t.Setenv("OLLAMA_MODEL", "llama3.1:70b")
	t.Setenv("LLM_TEMPERATURE", "0.7")
	t.Setenv("MAX_RESEARCH_TIME_MINUTES", "5")
	t.Setenv("SESSION_CACHE_MAX_AGE_HOURS", "6")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.HTTPPort)
	assert.Equal(t, "/tmp/r.db", cfg.DatabasePath)
	assert.Equal(t, "llama3.1:70b", cfg.OllamaModel)
	assert.Equal(t, 0.7, cfg.LLMTemperature)
	assert.Equal(t, 5*time.Minute, cfg.MaxResearchTime)
	assert.Equal(t, 6*time.Hour, cfg.SessionCacheMaxAge)
}

func TestLoadFromEnv_ResearchTimeFloor(t *testing.T) {
	t.Setenv("MAX_RESEARCH_TIME_MINUTES", "0.1")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, time.Minute, cfg.MaxResearchTime)
}

func TestLoadFromEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"HTTP_PORT", "not-a-port"},
		{"LLM_TEMPERATURE", "warm"},
		{"LLM_MAX_TOKENS", "many"},
		{"MAX_RESEARCH_TIME_MINUTES", "soon"},
		{"SESSION_CACHE_MAX_AGE_HOURS", "later"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadFromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
