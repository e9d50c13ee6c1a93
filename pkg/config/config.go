// Package config loads runtime configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the full runtime configuration.
type Config struct {
	// HTTPPort is the port the API server listens on.
	HTTPPort int

	// DatabasePath is the SQLite database file path.
	DatabasePath string

	// OllamaHost is the base URL of the Ollama-compatible LLM endpoint.
	OllamaHost string
	// OllamaModel is the model name sent with every chat request.
	OllamaModel string
	// LLMTemperature is the sampling temperature for all agents.
	LLMTemperature float64
	// LLMMaxTokens caps generation length per call.
	LLMMaxTokens int

	// MaxResearchTime bounds a single research run end to end. Runs get at
	// least one minute regardless of how low it is set.
	MaxResearchTime time.Duration

	// SearchBaseURL is the HTML search endpoint queried by the finder.
	SearchBaseURL string

	// SessionCacheMaxAge controls when finished sessions are evicted from
	// the in-memory cache. Persisted rows are never touched.
	SessionCacheMaxAge time.Duration
}

// LoadFromEnv loads configuration from environment variables, filling
// defaults for everything unset.
func LoadFromEnv() (Config, error) {
	port, err := strconv.Atoi(getEnvOrDefault("HTTP_PORT", "8000"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid HTTP_PORT: %w", err)
	}

	temperature, err := strconv.ParseFloat(getEnvOrDefault("LLM_TEMPERATURE", "0.3"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("invalid LLM_TEMPERATURE: %w", err)
	}

	maxTokens, err := strconv.Atoi(getEnvOrDefault("LLM_MAX_TOKENS", "4096"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid LLM_MAX_TOKENS: %w", err)
	}

	maxMinutes, err := strconv.ParseFloat(getEnvOrDefault("MAX_RESEARCH_TIME_MINUTES", "30"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("invalid MAX_RESEARCH_TIME_MINUTES: %w", err)
	}
	maxResearch := time.Duration(maxMinutes * float64(time.Minute))
	if maxResearch < time.Minute {
		maxResearch = time.Minute
	}

	cacheHours, err := strconv.Atoi(getEnvOrDefault("SESSION_CACHE_MAX_AGE_HOURS", "24"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid SESSION_CACHE_MAX_AGE_HOURS: %w", err)
	}

	return Config{
		HTTPPort:           port,
		DatabasePath:       getEnvOrDefault("DATABASE_PATH", "data/research.db"),
		OllamaHost:         getEnvOrDefault("OLLAMA_HOST", "http://localhost:11434"),
		OllamaModel:        getEnvOrDefault("OLLAMA_MODEL", "qwen3:8b"),
		LLMTemperature:     temperature,
		LLMMaxTokens:       maxTokens,
		MaxResearchTime:    maxResearch,
		SearchBaseURL:      getEnvOrDefault("SEARCH_BASE_URL", "https://html.duckduckgo.com/html/"),
		SessionCacheMaxAge: time.Duration(cacheHours) * time.Hour,
	}, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
