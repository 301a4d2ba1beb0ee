package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes let operators grep audit history by rationale text without
// a separate search index.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for audit rationale full-text search
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_agent_decisions_rationale_gin
		ON agent_decisions USING gin(to_tsvector('english', rationale))`)
	if err != nil {
		return fmt.Errorf("failed to create rationale GIN index: %w", err)
	}

	return nil
}
