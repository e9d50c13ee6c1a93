// Package api exposes the research HTTP surface: session start/stop/status,
// SSE event streaming, and persisted report retrieval.
package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hector-oviedo/open-research/pkg/config"
	"github.com/hector-oviedo/open-research/pkg/services"
	"github.com/hector-oviedo/open-research/pkg/session"
)

// Server represents the HTTP server
type Server struct {
	manager *session.Manager
	store   *services.SessionService
	cfg     *config.Config
	logger  *slog.Logger
}

// NewServer creates a new API server
func NewServer(manager *session.Manager, store *services.SessionService, cfg *config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		manager: manager,
		store:   store,
		cfg:     cfg,
		logger:  logger,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", s.Health)

	research := router.Group("/api/research")
	{
		research.POST("/start", s.StartResearch)
		research.GET("/:id/events", s.StreamEvents)
		research.POST("/:id/stop", s.StopResearch)
		research.GET("/:id/status", s.GetStatus)

		research.GET("/sessions", s.ListSessions)
		research.DELETE("/sessions/:id", s.DeleteSession)
		research.GET("/sessions/:id/report", s.GetReport)
		research.GET("/sessions/:id/documents", s.ListDocuments)
		research.GET("/sessions/:id/documents/:doc_id", s.GetDocument)
	}

	return router
}

// Health handles GET /health
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": "0.1.0",
		"services": gin.H{
			"api": "online",
		},
		"config": gin.H{
			"ollama_model":   s.cfg.OllamaModel,
			"max_iterations": "per-session option",
		},
	})
}
