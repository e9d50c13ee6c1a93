package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hector-oviedo/open-research/pkg/services"
	"github.com/hector-oviedo/open-research/pkg/session"
)

// sessionListLimit caps the session list response.
const sessionListLimit = 30

// ListSessions handles GET /api/research/sessions
func (s *Server) ListSessions(c *gin.Context) {
	sessions, err := s.manager.ListSessions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(sessions) > sessionListLimit {
		sessions = sessions[:sessionListLimit]
	}

	items := make([]gin.H, 0, len(sessions))
	for _, sess := range sessions {
		state := sess.Snapshot()
		items = append(items, gin.H{
			"session_id": sess.ID,
			"query":      state.Query,
			"status":     state.Status,
			"is_running": sess.IsRunning(),
			"iteration":  state.Iteration,
			"has_report": state.FinalReport != nil && !state.FinalReport.IsEmpty(),
			"created_at": sess.CreatedAt,
			"updated_at": sess.UpdatedAt(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"sessions": items,
		"count":    len(items),
	})
}

// DeleteSession handles DELETE /api/research/sessions/:id
func (s *Server) DeleteSession(c *gin.Context) {
	sessionID := c.Param("id")

	outcome, err := s.manager.Delete(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	switch outcome {
	case session.DeleteOutcomeRunning:
		c.JSON(http.StatusConflict, gin.H{
			"status":     "running",
			"session_id": sessionID,
			"message":    "Stop the session before deleting it",
		})
	case session.DeleteOutcomeNotFound:
		c.JSON(http.StatusNotFound, gin.H{
			"status":     "not_found",
			"session_id": sessionID,
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"status":     "deleted",
			"session_id": sessionID,
		})
	}
}

// GetReport handles GET /api/research/sessions/:id/report
func (s *Server) GetReport(c *gin.Context) {
	sessionID := c.Param("id")

	report, err := s.store.GetReport(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No report for this session"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"report":     report,
	})
}

// ListDocuments handles GET /api/research/sessions/:id/documents
func (s *Server) ListDocuments(c *gin.Context) {
	sessionID := c.Param("id")

	docs, err := s.store.ListDocuments(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]gin.H, 0, len(docs))
	for _, doc := range docs {
		items = append(items, gin.H{
			"document_id": doc.ID,
			"session_id":  doc.SessionID,
			"doc_type":    doc.DocType,
			"metadata":    doc.Metadata,
			"created_at":  doc.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"documents":  items,
	})
}

// GetDocument handles GET /api/research/sessions/:id/documents/:doc_id
func (s *Server) GetDocument(c *gin.Context) {
	sessionID := c.Param("id")
	docID := c.Param("doc_id")

	doc, err := s.store.GetDocument(c.Request.Context(), docID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if doc.SessionID != sessionID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"document_id": doc.ID,
		"session_id":  doc.SessionID,
		"doc_type":    doc.DocType,
		"metadata":    doc.Metadata,
		"created_at":  doc.CreatedAt,
		"content":     doc.Content,
	})
}
