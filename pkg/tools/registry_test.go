package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityworks/cityagent/pkg/contextstore"
	"github.com/cityworks/cityagent/pkg/models"
)

func TestRegistry_UnknownTool(t *testing.T) {
	r := NewRegistry()
	_, err := r.Get("no_such_tool")
	assert.Error(t, err)
}

func TestForDepartment_AllDepartmentsHaveTools(t *testing.T) {
	depts := []models.Department{
		models.DepartmentWater, models.DepartmentEngineering, models.DepartmentFire,
		models.DepartmentSanitation, models.DepartmentHealth, models.DepartmentFinance,
	}
	for _, d := range depts {
		r := ForDepartment(d)
		assert.Greater(t, r.Len(), 0, "department %s has no tools", d)

		// Every department carries the shared budget read.
		_, err := r.Get("check_budget_remaining")
		assert.NoError(t, err, "department %s missing check_budget_remaining", d)
	}
}

func TestCheckManpower_Shortfall(t *testing.T) {
	r := ForDepartment(models.DepartmentWater)
	tool, err := r.Get("check_manpower")
	require.NoError(t, err)

	snap := contextstore.Snapshot{
		Location:           "Downtown",
		WorkerAvailability: map[string]int{"water_crew": 2},
		Metrics:            map[string]float64{"crew_shortfall_days": 2},
	}
	out, err := tool.Execute(context.Background(), snap, map[string]any{"required_workers": 4.0})
	require.NoError(t, err)

	assert.Equal(t, false, out["manpower_available"])
	assert.Equal(t, 2.0, out["shortfall_days"])
}

func TestCheckBudgetRemaining_Utilization(t *testing.T) {
	tool := checkBudgetRemaining()
	snap := contextstore.Snapshot{
		BudgetAllocated: 100_000,
		BudgetRemaining: 25_000,
	}
	out, err := tool.Execute(context.Background(), snap, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, out["budget_utilization"], 1e-9)
}

func TestToolHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tool := StaticTool("anything", map[string]any{"x": 1})
	_, err := tool.Execute(ctx, contextstore.Snapshot{}, nil)
	assert.Error(t, err)
}
