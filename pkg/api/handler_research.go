package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hector-oviedo/open-research/pkg/models"
)

// Query length bounds enforced on start.
const (
	minQueryLength = 3
	maxQueryLength = 2000
)

// StartResearchRequest represents the request body for starting research
type StartResearchRequest struct {
	Query   string         `json:"query"`
	Options models.Options `json:"options"`
}

// StartResearch handles POST /api/research/start
func (s *Server) StartResearch(c *gin.Context) {
	var req StartResearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := strings.TrimSpace(req.Query)
	if len(query) < minQueryLength || len(query) > maxQueryLength {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": fmt.Sprintf("query must be between %d and %d characters", minQueryLength, maxQueryLength),
		})
		return
	}

	opts := req.Options
	opts.Normalize()

	sessionID := uuid.NewString()
	if err := s.manager.Start(c.Request.Context(), query, sessionID, opts); err != nil {
		s.logger.Error("failed to start research", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "started",
		"session_id": sessionID,
		"query":      query,
		"options":    opts,
		"stream_url": fmt.Sprintf("/api/research/%s/events", sessionID),
		"stop_url":   fmt.Sprintf("/api/research/%s/stop", sessionID),
		"status_url": fmt.Sprintf("/api/research/%s/status", sessionID),
	})
}

// StreamEvents handles GET /api/research/:id/events. Events are written as
// SSE data frames, one JSON object per event, terminated by a done event.
func (s *Server) StreamEvents(c *gin.Context) {
	sessionID := c.Param("id")

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		s.logger.Error("response writer does not support streaming")
		return
	}

	events := s.manager.StreamEvents(c.Request.Context(), sessionID)
	for event := range events {
		if err := writeSSE(c, flusher, event); err != nil {
			return
		}
	}

	done := models.NewEvent(models.EventDone, sessionID, "")
	_ = writeSSE(c, flusher, done)
}

func writeSSE(c *gin.Context, flusher http.Flusher, event models.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", data); err != nil {
		return err
	}
	flusher.Flush()
	return nil
}

// StopResearch handles POST /api/research/:id/stop
func (s *Server) StopResearch(c *gin.Context) {
	sessionID := c.Param("id")

	stopped, err := s.manager.Stop(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !stopped {
		c.JSON(http.StatusOK, gin.H{
			"status":     "not_found_or_completed",
			"session_id": sessionID,
			"message":    "Session is not running",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "stopped",
		"session_id": sessionID,
		"message":    "Research stopped",
	})
}

// GetStatus handles GET /api/research/:id/status
func (s *Server) GetStatus(c *gin.Context) {
	sessionID := c.Param("id")

	sess, ok := s.manager.GetSession(c.Request.Context(), sessionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	state := sess.Snapshot()
	body := gin.H{
		"session_id": sessionID,
		"query":      state.Query,
		"status":     state.Status,
		"is_running": sess.IsRunning(),
		"options":    state.Options,
		"created_at": sess.CreatedAt,
		"updated_at": sess.UpdatedAt(),
		"progress": gin.H{
			"iteration":      state.Iteration,
			"plan_count":     len(state.Plan),
			"sources_count":  len(state.Sources),
			"findings_count": len(state.Findings),
		},
	}
	if state.FinalReport != nil && !state.FinalReport.IsEmpty() {
		body["result"] = gin.H{
			"title":      state.FinalReport.Title,
			"word_count": state.FinalReport.WordCount,
		}
	}
	if state.Error != "" {
		body["error"] = state.Error
	}

	c.JSON(http.StatusOK, body)
}
