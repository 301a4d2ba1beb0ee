package water

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cityworks/cityagent/pkg/models"
)

func TestFeasibility_NegotiateSchedule(t *testing.T) {
	tests := []struct {
		name       string
		obs        models.Observations
		feasible   bool
		repairable bool
	}{
		{"manpower available", models.Observations{Values: map[string]any{"manpower_available": true}}, true, false},
		{"shortfall within window", models.Observations{Values: map[string]any{"manpower_available": false, "shortfall_days": 2.0}}, false, true},
		{"shortfall at window edge", models.Observations{Values: map[string]any{"shortfall_days": 3.0}}, false, true},
		{"shortfall beyond window", models.Observations{Values: map[string]any{"shortfall_days": 5.0}}, false, false},
		{"no shortfall data", models.Observations{Values: map[string]any{}}, false, false},
	}

	eng := Engine{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eng.Feasibility(models.Plan{Intent: "negotiate_schedule"}, tt.obs)
			assert.Equal(t, tt.feasible, result.Feasible)
			assert.Equal(t, tt.repairable, result.Repairable)
		})
	}
}

func TestFeasibility_ScheduleMaintenanceNotice(t *testing.T) {
	eng := Engine{}

	result := eng.Feasibility(models.Plan{Intent: "schedule_maintenance"},
		models.Observations{Values: map[string]any{"notice_hours": 12.0}})
	assert.False(t, result.Feasible)
	assert.True(t, result.Repairable)

	result = eng.Feasibility(models.Plan{Intent: "schedule_maintenance"},
		models.Observations{Values: map[string]any{"notice_hours": 48.0}})
	assert.True(t, result.Feasible)
}

func TestFeasibility_ReadOnlyIntentsAlwaysFeasible(t *testing.T) {
	eng := Engine{}
	result := eng.Feasibility(models.Plan{Intent: "capacity_query"}, models.Observations{})
	assert.True(t, result.Feasible)
}

func TestPolicy_BudgetCapWithEmergencyOverride(t *testing.T) {
	eng := Engine{}
	obs := models.Observations{Values: map[string]any{"budget_utilization": 0.95}}

	result := eng.Policy(models.Plan{Intent: "negotiate_schedule"}, obs)
	assert.False(t, result.OK)
	assert.NotEmpty(t, result.Violations)

	// The emergency override is itself a declared rule, not a skip.
	result = eng.Policy(models.Plan{Intent: "respond_emergency"}, obs)
	assert.True(t, result.OK)
}
