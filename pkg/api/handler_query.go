package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cityworks/cityagent/pkg/jobmanager"
	"github.com/cityworks/cityagent/pkg/models"
)

// maxBodySize bounds submission payloads before deserialization.
const maxBodySize = 1 << 20 // 1 MB

// submitQuery handles POST /api/v1/query: validate, dispatch to the
// owning agent via the Coordinator, return the queued job.
func (s *Server) submitQuery(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodySize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable request body"})
		return
	}
	if len(body) > maxBodySize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body exceeds 1MB"})
		return
	}

	req, err := parseSubmission(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := s.coordinator.Dispatch(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, SubmitResponse{
		JobID:     job.ID,
		Status:    string(models.JobQueued),
		AgentType: string(job.AgentType),
	})
}

// getQuery handles GET /api/v1/query/:id.
func (s *Server) getQuery(c *gin.Context) {
	job, err := s.jobs.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, jobmanager.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, jobResponse(job))
}

// getQueryResult handles GET /api/v1/query/:id/result — the polling
// shortcut. A failed job is a 200 with its structured error inside the
// job body, not an HTTP failure.
func (s *Server) getQueryResult(c *gin.Context) {
	job, err := s.jobs.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, jobmanager.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ResultResponse{
		Status: string(job.Status),
		Result: job.Result,
	})
}
