package contextstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticStore_KnownLocation(t *testing.T) {
	store := NewStaticStore(Snapshot{
		Location:        "Downtown",
		BudgetAllocated: 1000,
		BudgetRemaining: 400,
	})

	snap, err := store.Snapshot(context.Background(), "Downtown")
	require.NoError(t, err)
	assert.Equal(t, "Downtown", snap.Location)
	assert.False(t, snap.RetrievedAt.IsZero())
	assert.InDelta(t, 0.6, snap.BudgetUtilization(), 1e-9)
}

func TestStaticStore_UnknownLocationIsEmptyNotError(t *testing.T) {
	store := NewStaticStore()

	snap, err := store.Snapshot(context.Background(), "Nowhere")
	require.NoError(t, err)
	assert.Equal(t, "Nowhere", snap.Location)
	assert.Empty(t, snap.ActiveProjects)
}

func TestStaticStore_FailWith(t *testing.T) {
	store := NewStaticStore()
	store.FailWith(errors.New("connection refused"))

	_, err := store.Snapshot(context.Background(), "Downtown")
	assert.Error(t, err)
}

func TestBudgetUtilization_ZeroAllocation(t *testing.T) {
	assert.Zero(t, Snapshot{}.BudgetUtilization())
}

func TestSnapshotMapCarriesMetrics(t *testing.T) {
	snap := Snapshot{Location: "Downtown", Metrics: map[string]float64{"disposal_utilization": 0.7}}
	m := snap.Map()
	assert.Equal(t, snap.Metrics, m["metrics"])
}
