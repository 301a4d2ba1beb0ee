package sanitation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cityworks/cityagent/pkg/models"
)

func TestFeasibility_CollectionScheduleRequest(t *testing.T) {
	eng := Engine{}
	plan := models.Plan{Intent: "collection_schedule_request"}

	result := eng.Feasibility(plan, models.Observations{Values: map[string]any{"route_deviation_stops": 5.0}})
	assert.True(t, result.Feasible)

	result = eng.Feasibility(plan, models.Observations{Values: map[string]any{"route_deviation_stops": 30.0}})
	assert.False(t, result.Feasible)
	assert.True(t, result.Repairable)
}

func TestFeasibility_DisposalCapacityQuery(t *testing.T) {
	eng := Engine{}
	plan := models.Plan{Intent: "disposal_capacity_query"}

	result := eng.Feasibility(plan, models.Observations{Values: map[string]any{"disposal_utilization": 0.5}})
	assert.True(t, result.Feasible)

	result = eng.Feasibility(plan, models.Observations{Values: map[string]any{"disposal_utilization": 1.0}})
	assert.False(t, result.Feasible)
}

func TestPolicy_DisposalAndBudgetCaps(t *testing.T) {
	eng := Engine{}
	obs := models.Observations{Values: map[string]any{
		"disposal_utilization": 0.95,
		"budget_utilization":   0.5,
	}}
	result := eng.Policy(models.Plan{Intent: "collection_schedule_request"}, obs)
	assert.False(t, result.OK)
	assert.Len(t, result.Violations, 1)
}
