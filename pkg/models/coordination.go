package models

import "time"

// CoordinationStatus mirrors the ent enum on CoordinationDecision.
type CoordinationStatus string

const (
	CoordinationActive     CoordinationStatus = "active"
	CoordinationCompleted  CoordinationStatus = "completed"
	CoordinationSuperseded CoordinationStatus = "superseded"
)

// CoordinationDecision is the Go-side view of the persisted row. It is
// the single shared-mutable datum all conflict logic
// queries; application code should prefer the generated ent type for
// persistence and use this type for in-memory conflict-detection logic
// that must stay unit-testable without a live database.
type CoordinationDecision struct {
	ID              string
	AgentType       string
	Location        string
	ResourcesNeeded []string
	EstimatedCost   Money
	FiscalScope     string
	WaitsFor        []string
	Status          CoordinationStatus
	Decision        string
	PlanSummary     string
	CreatedAt       time.Time
	CompletedAt     *time.Time
}

// Active reports whether the row still counts toward conflict detection
// within the configured lookback window.
func (d CoordinationDecision) Active(now time.Time, window time.Duration) bool {
	return d.Status == CoordinationActive && d.CreatedAt.After(now.Add(-window))
}
