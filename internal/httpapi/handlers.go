package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MuratKramin/nlp-hw1/internal/apperr"
	"github.com/MuratKramin/nlp-hw1/internal/recognizer"
)

// detectRequest is the POST /detect request body.
type detectRequest struct {
	Text string `json:"text" binding:"required"`
}

// citationLink mirrors spec §6's /detect response shape: absent components
// marshal as JSON null, never an omitted key.
type citationLink struct {
	LawID    int     `json:"law_id"`
	Article  *string `json:"article"`
	Point    *string `json:"point_article"`
	Subpoint *string `json:"subpoint_article"`
}

type detectResponse struct {
	Links []citationLink `json:"links"`
}

func toCitationLinks(refs []recognizer.ParsedRef) []citationLink {
	links := make([]citationLink, 0, len(refs))
	for _, r := range refs {
		links = append(links, citationLink{
			LawID:    r.LawID,
			Article:  r.Article,
			Point:    r.Point,
			Subpoint: r.Subpoint,
		})
	}
	return links
}

// handleDetect implements POST /detect.
func (s *Server) handleDetect(c *gin.Context) {
	var req detectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, apperr.NewValidationError("request body must be JSON with a non-empty \"text\" field", err))
		return
	}

	cr := s.Recognizer()
	if cr == nil {
		s.respondError(c, apperr.NewServiceUnavailableError("recognizer is not ready", nil))
		return
	}

	refs := recognizer.Recognize(req.Text, cr)
	c.JSON(http.StatusOK, detectResponse{Links: toCitationLinks(refs)})
}

// handleHealth implements GET /health.
func (s *Server) handleHealth(c *gin.Context) {
	result := s.health.Check(c.Request.Context())
	if result.Status == HealthStatusUnhealthy {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// handleHealthDetail exposes the full component breakdown, useful for
// operators beyond the minimal contract spec §6 requires of GET /health.
func (s *Server) handleHealthDetail(c *gin.Context) {
	c.JSON(http.StatusOK, s.health.Check(c.Request.Context()))
}

// handleVersion implements GET /version.
func (s *Server) handleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version":    s.build.Version,
		"go_version": s.build.GoVersion,
		"metrics":    s.requestStats.snapshot(),
		"errors":     s.errorMetrics.Snapshot(),
	})
}

// handleReload implements POST /reload. Disabled unless cfg.ReloadEnabled.
func (s *Server) handleReload(c *gin.Context) {
	if !s.cfg.ReloadEnabled {
		s.respondError(c, apperr.NewNotFoundError("reload endpoint is disabled", nil))
		return
	}

	if err := s.Reload(); err != nil {
		s.respondError(c, apperr.WrapError(err, "failed to reload alias dictionary"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "reloaded"})
}

// respondError records err against the error metrics collector, then writes
// the response body spec §7 defines: {"detail": "<user-facing message>"}.
func (s *Server) respondError(c *gin.Context, err *apperr.AppError) {
	s.errorMetrics.Record(err, c.FullPath(), GetRequestID(c.Request.Context()))
	c.JSON(err.StatusCode(), gin.H{"detail": err.UserMessage()})
}
