package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/cityworks/cityagent/ent/coordinationdecision"
)

// newTestClient starts a throwaway PostgreSQL container and connects a
// fully migrated client to it.
func newTestClient(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	client, err := NewClient(ctx, Config{
		Host:            host,
		Port:            port.Int(),
		User:            "test",
		Password:        "test",
		Database:        "test",
		SSLMode:         "disable",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: 15 * time.Minute,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestNewClient_MigratesAndRoundTrips(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	client := newTestClient(t)
	ctx := context.Background()

	err := client.CoordinationDecision.Create().
		SetID("cd-1").
		SetAgentType("water").
		SetLocation("Downtown").
		SetResourcesNeeded([]string{"pump-2"}).
		SetEstimatedCost(50_000).
		SetPlanSummary("shift negotiation at Downtown").
		SetCreatedAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	row, err := client.CoordinationDecision.Query().
		Where(coordinationdecision.LocationEQ("Downtown")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "water", row.AgentType)
	assert.Equal(t, coordinationdecision.StatusActive, row.Status)
}

func TestHealth(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	client := newTestClient(t)
	ctx := context.Background()

	err := client.CoordinationDecision.Create().
		SetID("cd-health").
		SetAgentType("fire").
		SetLocation("Industrial Zone").
		SetPlanSummary("inspection sweep").
		SetCreatedAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	status, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
	assert.Greater(t, status.OpenConnections, 0)
	assert.Equal(t, 1, status.ActiveCoordinationDecisions)
	assert.Zero(t, status.AuditedDecisions)
}
