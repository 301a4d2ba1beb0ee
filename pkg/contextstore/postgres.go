package contextstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cityworks/cityagent/pkg/models"
)

// PostgresStore reads the documented row shapes out of the external
// domain database. The tables are owned by the departments' own
// systems — this adapter never writes to them.
type PostgresStore struct {
	pool *pgxpool.Pool
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore wraps an existing pgx pool. The pool's lifecycle
// belongs to the caller.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Snapshot implements Store with one round of bulk reads per section.
// Any failed read aborts the whole snapshot: Phase 2 treats a partial
// snapshot the same as an absent one and continues degraded.
func (s *PostgresStore) Snapshot(ctx context.Context, location string) (Snapshot, error) {
	snap := Snapshot{Location: location, RetrievedAt: time.Now()}

	rows, err := s.pool.Query(ctx,
		`SELECT name, owner, started_at, budget FROM active_projects WHERE location = $1`, location)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading active projects: %w", err)
	}
	for rows.Next() {
		var p Project
		var budget int64
		if err := rows.Scan(&p.Name, &p.Owner, &p.StartedAt, &budget); err != nil {
			rows.Close()
			return Snapshot{}, fmt.Errorf("scanning active project: %w", err)
		}
		p.Budget = models.Money(budget)
		snap.ActiveProjects = append(snap.ActiveProjects, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("reading active projects: %w", err)
	}

	rows, err = s.pool.Query(ctx,
		`SELECT shift, date, workers FROM shift_schedules WHERE location = $1 AND date >= now() - interval '1 day'`, location)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading schedules: %w", err)
	}
	for rows.Next() {
		var sch ShiftSchedule
		if err := rows.Scan(&sch.Shift, &sch.Date, &sch.Workers); err != nil {
			rows.Close()
			return Snapshot{}, fmt.Errorf("scanning schedule: %w", err)
		}
		snap.Schedules = append(snap.Schedules, sch)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("reading schedules: %w", err)
	}

	snap.WorkerAvailability = map[string]int{}
	rows, err = s.pool.Query(ctx,
		`SELECT crew_kind, headcount FROM worker_availability WHERE location = $1`, location)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading worker availability: %w", err)
	}
	for rows.Next() {
		var kind string
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			rows.Close()
			return Snapshot{}, fmt.Errorf("scanning worker availability: %w", err)
		}
		snap.WorkerAvailability[kind] = count
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("reading worker availability: %w", err)
	}

	health := map[string]string{}
	rows, err = s.pool.Query(ctx,
		`SELECT asset, condition FROM infrastructure_health WHERE location = $1`, location)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading infrastructure health: %w", err)
	}
	for rows.Next() {
		var asset, condition string
		if err := rows.Scan(&asset, &condition); err != nil {
			rows.Close()
			return Snapshot{}, fmt.Errorf("scanning infrastructure health: %w", err)
		}
		health[asset] = condition
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("reading infrastructure health: %w", err)
	}
	snap.InfrastructureHealth = health

	var allocated, remaining int64
	err = s.pool.QueryRow(ctx,
		`SELECT COALESCE(allocated, 0), COALESCE(remaining, 0) FROM location_budgets WHERE location = $1`, location).
		Scan(&allocated, &remaining)
	switch {
	case err == nil:
		snap.BudgetAllocated = models.Money(allocated)
		snap.BudgetRemaining = models.Money(remaining)
	case errors.Is(err, pgx.ErrNoRows):
		// No budget row for this location; leave zero values.
	default:
		return Snapshot{}, fmt.Errorf("reading location budget: %w", err)
	}

	snap.Metrics = map[string]float64{}
	rows, err = s.pool.Query(ctx,
		`SELECT metric, value FROM location_metrics WHERE location = $1`, location)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading location metrics: %w", err)
	}
	for rows.Next() {
		var metric string
		var value float64
		if err := rows.Scan(&metric, &value); err != nil {
			rows.Close()
			return Snapshot{}, fmt.Errorf("scanning location metric: %w", err)
		}
		snap.Metrics[metric] = value
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("reading location metrics: %w", err)
	}

	rows, err = s.pool.Query(ctx,
		`SELECT kind, severity, reported_at FROM incidents WHERE location = $1 AND reported_at >= now() - interval '7 days'`, location)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading incidents: %w", err)
	}
	for rows.Next() {
		var inc Incident
		if err := rows.Scan(&inc.Kind, &inc.Severity, &inc.ReportedAt); err != nil {
			rows.Close()
			return Snapshot{}, fmt.Errorf("scanning incident: %w", err)
		}
		snap.RecentIncidents = append(snap.RecentIncidents, inc)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("reading incidents: %w", err)
	}

	return snap, nil
}
