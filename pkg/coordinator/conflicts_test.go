package coordinator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cityworks/cityagent/pkg/models"
)

func activeRow(agent, location string, cost models.Money, resources, waitsFor []string) models.CoordinationDecision {
	return models.CoordinationDecision{
		ID:              agent + "-" + location,
		AgentType:       agent,
		Location:        location,
		ResourcesNeeded: resources,
		EstimatedCost:   cost,
		WaitsFor:        waitsFor,
		Status:          models.CoordinationActive,
		CreatedAt:       time.Now(),
	}
}

func kinds(conflicts []models.Conflict) []models.ConflictKind {
	out := make([]models.ConflictKind, 0, len(conflicts))
	for _, c := range conflicts {
		out = append(out, c.Kind)
	}
	return out
}

func TestDetectConflicts_NoActiveRows(t *testing.T) {
	p := PlanSubmission{AgentType: "water", Location: "Downtown", EstimatedCost: 50_000}
	assert.Empty(t, detectConflicts(p, nil, 1_000_000))
}

func TestDetectConflicts_LocationConflict(t *testing.T) {
	active := []models.CoordinationDecision{
		activeRow("engineering", "Downtown", 100, nil, nil),
	}
	p := PlanSubmission{AgentType: "water", Location: "Downtown"}

	conflicts := detectConflicts(p, active, 0)
	assert.Contains(t, kinds(conflicts), models.ConflictLocation)
}

func TestDetectConflicts_SameAgentSameLocationIsNotLocationConflict(t *testing.T) {
	active := []models.CoordinationDecision{
		activeRow("water", "Downtown", 100, nil, nil),
	}
	p := PlanSubmission{AgentType: "water", Location: "Downtown"}

	conflicts := detectConflicts(p, active, 0)
	assert.NotContains(t, kinds(conflicts), models.ConflictLocation)
}

func TestDetectConflicts_ResourceConflictSpansLocations(t *testing.T) {
	active := []models.CoordinationDecision{
		activeRow("sanitation", "Uptown", 100, []string{"crane-1"}, nil),
	}
	p := PlanSubmission{AgentType: "water", Location: "Downtown", ResourcesNeeded: []string{"crane-1", "pump-2"}}

	conflicts := detectConflicts(p, active, 0)
	assert.Contains(t, kinds(conflicts), models.ConflictResource)
}

func TestDetectConflicts_BudgetCeiling(t *testing.T) {
	active := []models.CoordinationDecision{
		activeRow("engineering", "Uptown", 700, nil, nil),
	}
	p := PlanSubmission{AgentType: "water", Location: "Downtown", EstimatedCost: 400}

	conflicts := detectConflicts(p, active, 1000)
	assert.Contains(t, kinds(conflicts), models.ConflictBudget)

	// Under the ceiling there is no conflict.
	p.EstimatedCost = 200
	conflicts = detectConflicts(p, active, 1000)
	assert.NotContains(t, kinds(conflicts), models.ConflictBudget)
}

func TestDetectConflicts_CircularDependency(t *testing.T) {
	// fire waits for water; the incoming water plan waits for fire.
	active := []models.CoordinationDecision{
		activeRow("fire", "Downtown", 100, nil, []string{"water"}),
	}
	p := PlanSubmission{AgentType: "water", Location: "Downtown", WaitsFor: []string{"fire"}}

	conflicts := detectConflicts(p, active, 0)
	assert.Contains(t, kinds(conflicts), models.ConflictCircular)
}

func TestDetectConflicts_WaitsForChainWithoutCycle(t *testing.T) {
	active := []models.CoordinationDecision{
		activeRow("fire", "Downtown", 100, nil, []string{"engineering"}),
	}
	p := PlanSubmission{AgentType: "water", Location: "Downtown", WaitsFor: []string{"fire"}}

	conflicts := detectConflicts(p, active, 0)
	assert.NotContains(t, kinds(conflicts), models.ConflictCircular)
}

func TestRecommendationsCoverEachConflictKindOnce(t *testing.T) {
	conflicts := []models.Conflict{
		{Kind: models.ConflictLocation, WithAgentType: "fire"},
		{Kind: models.ConflictLocation, WithAgentType: "health"},
		{Kind: models.ConflictBudget},
	}
	recs := recommendationsFor(conflicts)
	assert.Len(t, recs, 2)
}
