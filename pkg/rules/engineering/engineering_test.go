package engineering

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cityworks/cityagent/pkg/models"
)

func TestFeasibility_ProjectConcurrencyCap(t *testing.T) {
	eng := Engine{}
	plan := models.Plan{Intent: "project_planning"}

	result := eng.Feasibility(plan, models.Observations{Values: map[string]any{"active_project_count": 2.0}})
	assert.True(t, result.Feasible)

	result = eng.Feasibility(plan, models.Observations{Values: map[string]any{"active_project_count": 4.0}})
	assert.False(t, result.Feasible)
	assert.False(t, result.Repairable, "a saturated location cannot be repaired by replanning")
}

func TestFeasibility_QueriesAlwaysFeasible(t *testing.T) {
	eng := Engine{}
	result := eng.Feasibility(models.Plan{Intent: "infrastructure_query"}, models.Observations{})
	assert.True(t, result.Feasible)
}

func TestPolicy_BudgetUtilizationCap(t *testing.T) {
	eng := Engine{}

	result := eng.Policy(models.Plan{Intent: "project_planning"},
		models.Observations{Values: map[string]any{"budget_utilization": 0.80}})
	assert.False(t, result.OK)
	assert.NotEmpty(t, result.Violations)

	result = eng.Policy(models.Plan{Intent: "project_planning"},
		models.Observations{Values: map[string]any{"budget_utilization": 0.50}})
	assert.True(t, result.OK)
}
