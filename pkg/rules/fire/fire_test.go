package fire

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cityworks/cityagent/pkg/models"
)

func TestFeasibility_InspectionRequest(t *testing.T) {
	tests := []struct {
		name     string
		obs      models.Observations
		feasible bool
	}{
		{"within backlog window", models.Observations{Values: map[string]any{"inspection_backlog_days": 30.0}}, true},
		{"over backlog, crew available", models.Observations{Values: map[string]any{"inspection_backlog_days": 200.0, "crew_available": true}}, true},
		{"over backlog, no crew", models.Observations{Values: map[string]any{"inspection_backlog_days": 200.0, "crew_available": false}}, false},
	}

	eng := Engine{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := models.Plan{Intent: "inspection_request"}
			result := eng.Feasibility(plan, tt.obs)
			assert.Equal(t, tt.feasible, result.Feasible)
			if !tt.feasible {
				assert.True(t, result.Repairable)
			}
		})
	}
}

func TestFeasibility_RespondEmergency(t *testing.T) {
	eng := Engine{}
	plan := models.Plan{Intent: "respond_emergency"}

	result := eng.Feasibility(plan, models.Observations{Values: map[string]any{"available_crew_count": 0.0}})
	assert.False(t, result.Feasible)

	result = eng.Feasibility(plan, models.Observations{Values: map[string]any{"available_crew_count": 2.0}})
	assert.True(t, result.Feasible)
}

func TestPolicy_BudgetUtilizationSkippedForEmergency(t *testing.T) {
	eng := Engine{}
	obs := models.Observations{Values: map[string]any{"budget_utilization": 0.99, "available_crew_count": 3.0}}

	result := eng.Policy(models.Plan{Intent: "respond_emergency"}, obs)
	assert.True(t, result.OK, "emergency dispatch should not be blocked by budget policy")

	result = eng.Policy(models.Plan{Intent: "inspection_request"}, obs)
	assert.False(t, result.OK)
	assert.NotEmpty(t, result.Violations)
}
