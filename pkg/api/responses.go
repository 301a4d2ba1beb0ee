package api

import (
	"time"

	"github.com/cityworks/cityagent/pkg/database"
	"github.com/cityworks/cityagent/pkg/models"
)

// SubmitResponse is POST /api/v1/query's body.
type SubmitResponse struct {
	JobID     string `json:"job_id"`
	Status    string `json:"status"`
	AgentType string `json:"agent_type"`
}

// JobResponse is GET /api/v1/query/{job_id}'s body.
type JobResponse struct {
	ID         string           `json:"id"`
	AgentType  string           `json:"agent_type"`
	Status     string           `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
	FinishedAt *time.Time       `json:"finished_at,omitempty"`
	Result     *models.Output   `json:"result,omitempty"`
	Error      *models.JobError `json:"error,omitempty"`
}

// ResultResponse is the GET /api/v1/query/{job_id}/result shortcut.
type ResultResponse struct {
	Status string         `json:"status"`
	Result *models.Output `json:"result,omitempty"`
}

// HealthResponse is GET /api/v1/health's body. Database diagnostics
// (pool stats, decision-table gauges) appear when Postgres is wired.
type HealthResponse struct {
	Status      string                 `json:"status"`
	Coordinator string                 `json:"coordinator"`
	Version     string                 `json:"version"`
	Database    *database.HealthStatus `json:"database,omitempty"`
}

func jobResponse(job *models.Job) JobResponse {
	return JobResponse{
		ID:         job.ID,
		AgentType:  string(job.AgentType),
		Status:     string(job.Status),
		CreatedAt:  job.CreatedAt,
		FinishedAt: job.FinishedAt,
		Result:     job.Result,
		Error:      job.Error,
	}
}
