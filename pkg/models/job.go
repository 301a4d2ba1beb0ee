package models

import "time"

// JobStatus is the Job Manager's monotonic lifecycle state.
type JobStatus string

const (
	JobQueued    JobStatus = "queued"
	JobRunning   JobStatus = "running"
	JobSucceeded JobStatus = "succeeded"
	JobFailed    JobStatus = "failed"
	JobCancelled JobStatus = "cancelled"
)

// Job is the Job Manager's view of one submitted request.
type Job struct {
	ID         string     `json:"id"`
	AgentType  Department `json:"agent_type"`
	Status     JobStatus  `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	Result     *Output    `json:"result,omitempty"`
	Error      *JobError  `json:"error,omitempty"`
}

// JobError is the structured error attached to a failed job. A failed
// job is not an HTTP failure; it carries this in the body.
type JobError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
