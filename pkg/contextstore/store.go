// Package contextstore adapts the external per-department context
// databases into the read-only snapshot the pipeline's context loader
// (Phase 2) consumes. The store is strictly read-only from the agents'
// perspective; a failed read degrades to an empty snapshot, never an
// abort.
package contextstore

import (
	"context"
	"time"

	"github.com/cityworks/cityagent/pkg/models"
)

// Project is one active project row at a location.
type Project struct {
	Name      string       `json:"name"`
	Owner     string       `json:"owner"` // department running the project
	StartedAt time.Time    `json:"started_at"`
	Budget    models.Money `json:"budget"`
}

// ShiftSchedule is one scheduled work shift at a location.
type ShiftSchedule struct {
	Shift   string    `json:"shift"` // "morning", "evening", "night"
	Date    time.Time `json:"date"`
	Workers int       `json:"workers"`
}

// Incident is one recent incident row at a location.
type Incident struct {
	Kind       string    `json:"kind"`
	Severity   string    `json:"severity"`
	ReportedAt time.Time `json:"reported_at"`
}

// Snapshot is the bulk read Phase 2 performs for one location. Zero
// values are valid and mean "no data" — the pipeline flags
// context_degraded when the read itself failed, not when rows are
// merely absent.
type Snapshot struct {
	Location             string            `json:"location"`
	ActiveProjects       []Project         `json:"active_projects,omitempty"`
	Schedules            []ShiftSchedule   `json:"schedules,omitempty"`
	WorkerAvailability   map[string]int    `json:"worker_availability,omitempty"` // crew kind → headcount
	InfrastructureHealth map[string]string `json:"infrastructure_health,omitempty"`
	BudgetAllocated      models.Money      `json:"budget_allocated"`
	BudgetRemaining      models.Money      `json:"budget_remaining"`
	RecentIncidents      []Incident        `json:"recent_incidents,omitempty"`

	// Metrics holds the per-department numeric gauges the domain
	// databases expose as (location, metric, value) rows, e.g.
	// "inspection_backlog_days", "disposal_utilization",
	// "reported_case_count".
	Metrics map[string]float64 `json:"metrics,omitempty"`

	RetrievedAt time.Time `json:"retrieved_at"`
}

// Metric returns a named gauge, 0 when absent.
func (s Snapshot) Metric(name string) float64 {
	return s.Metrics[name]
}

// Map flattens the snapshot into the AgentState.Context shape the
// prompt builder and audit snapshot serialize.
func (s Snapshot) Map() map[string]any {
	return map[string]any{
		"location":              s.Location,
		"active_projects":       s.ActiveProjects,
		"schedules":             s.Schedules,
		"worker_availability":   s.WorkerAvailability,
		"infrastructure_health": s.InfrastructureHealth,
		"budget_allocated":      s.BudgetAllocated,
		"budget_remaining":      s.BudgetRemaining,
		"recent_incidents":      s.RecentIncidents,
		"metrics":               s.Metrics,
	}
}

// BudgetUtilization returns the committed fraction of the allocated
// budget, 0 when no allocation is known.
func (s Snapshot) BudgetUtilization() float64 {
	if s.BudgetAllocated <= 0 {
		return 0
	}
	return float64(s.BudgetAllocated-s.BudgetRemaining) / float64(s.BudgetAllocated)
}

// Store is the read-only boundary to the external domain databases.
type Store interface {
	// Snapshot bulk-reads the context for one location. Implementations
	// must honor ctx cancellation; a returned error means the snapshot
	// is unusable and the caller continues degraded.
	Snapshot(ctx context.Context, location string) (Snapshot, error)
}
