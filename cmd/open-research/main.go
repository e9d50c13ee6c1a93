// Deep research server: exposes the HTTP API, runs the research graph,
// and persists sessions, events, and reports to SQLite.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/hector-oviedo/open-research/pkg/api"
	"github.com/hector-oviedo/open-research/pkg/config"
	"github.com/hector-oviedo/open-research/pkg/database"
	"github.com/hector-oviedo/open-research/pkg/fetch"
	"github.com/hector-oviedo/open-research/pkg/graph"
	"github.com/hector-oviedo/open-research/pkg/llm"
	"github.com/hector-oviedo/open-research/pkg/search"
	"github.com/hector-oviedo/open-research/pkg/services"
	"github.com/hector-oviedo/open-research/pkg/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using existing environment")
	}

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.TimeOnly,
	}))
	slog.SetDefault(logger)

	cfg, err := config.LoadFromEnv()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("Starting open-research",
		"http_port", cfg.HTTPPort,
		"database_path", cfg.DatabasePath,
		"ollama_host", cfg.OllamaHost,
		"ollama_model", cfg.OllamaModel)

	ctx := context.Background()

	dbClient, err := database.NewClient(ctx, database.Config{Path: cfg.DatabasePath})
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logger.Error("Error closing database client", "error", err)
		}
	}()
	logger.Info("Connected to SQLite database", "path", cfg.DatabasePath)

	store := services.NewSessionService(dbClient.Client)

	llmClient := llm.NewClient(cfg.OllamaHost, cfg.OllamaModel, cfg.LLMTemperature, cfg.LLMMaxTokens)
	searcher := search.NewDuckDuckGo(cfg.SearchBaseURL)
	fetcher := fetch.NewContentFetcher()

	factory := func(emit graph.Emitter, checkpoint graph.Checkpointer) session.Runner {
		return graph.NewResearch(graph.Deps{
			LLM:          llmClient,
			Searcher:     searcher,
			Fetcher:      fetcher,
			Emitter:      emit,
			Checkpointer: checkpoint,
			Logger:       logger,
		})
	}

	manager := session.NewManager(store, factory, cfg.MaxResearchTime, logger)
	if err := manager.EnsureInitialized(ctx); err != nil {
		logger.Error("Failed to load persisted sessions", "error", err)
		os.Exit(1)
	}

	// Periodic memory-cache cleanup. Persisted rows are never aged out.
	cleanupCtx, cleanupCancel := context.WithCancel(ctx)
	defer cleanupCancel()
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-cleanupCtx.Done():
				return
			case <-ticker.C:
				if _, err := manager.CleanupOldSessions(cleanupCtx, cfg.SessionCacheMaxAge); err != nil {
					logger.Error("Session cache cleanup failed", "error", err)
				}
			}
		}
	}()

	gin.SetMode(gin.ReleaseMode)
	server := api.NewServer(manager, store, &cfg, logger)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		logger.Info("Shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		logger.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	logger.Info("Shutdown complete")
}
