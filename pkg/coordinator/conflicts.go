package coordinator

import (
	"fmt"

	"github.com/cityworks/cityagent/pkg/models"
)

// PlanSubmission is what an agent sends at its coordination checkpoint.
type PlanSubmission struct {
	AgentType       string
	Location        string
	ResourcesNeeded []string
	EstimatedCost   models.Money
	FiscalScope     string
	WaitsFor        []string
	PlanSummary     string
}

// detectConflicts evaluates the incoming plan against the active row
// set, returning every conflict found. Pure function — the serialized
// query/insert around it lives in Service.CheckPlanConflicts.
func detectConflicts(p PlanSubmission, active []models.CoordinationDecision, budgetCeiling models.Money) []models.Conflict {
	var conflicts []models.Conflict

	needed := make(map[string]bool, len(p.ResourcesNeeded))
	for _, r := range p.ResourcesNeeded {
		needed[r] = true
	}

	var committedInScope models.Money
	for _, d := range active {
		if d.Location == p.Location && d.AgentType != p.AgentType {
			conflicts = append(conflicts, models.Conflict{
				Kind:           models.ConflictLocation,
				WithDecisionID: d.ID,
				WithAgentType:  d.AgentType,
				Detail:         fmt.Sprintf("%s already has an active plan at %s", d.AgentType, d.Location),
			})
		}

		for _, r := range d.ResourcesNeeded {
			if needed[r] {
				conflicts = append(conflicts, models.Conflict{
					Kind:           models.ConflictResource,
					WithDecisionID: d.ID,
					WithAgentType:  d.AgentType,
					Detail:         fmt.Sprintf("resource %q is committed to %s's active plan", r, d.AgentType),
				})
				break
			}
		}

		if sameFiscalScope(p.FiscalScope, d.FiscalScope) {
			committedInScope += d.EstimatedCost
		}
	}

	if budgetCeiling > 0 && committedInScope+p.EstimatedCost > budgetCeiling {
		conflicts = append(conflicts, models.Conflict{
			Kind: models.ConflictBudget,
			Detail: fmt.Sprintf("committed cost %d + plan cost %d exceeds budget ceiling %d",
				committedInScope, p.EstimatedCost, budgetCeiling),
		})
	}

	if cycle := findCircularDependency(p, active); cycle != nil {
		conflicts = append(conflicts, *cycle)
	}

	return conflicts
}

func sameFiscalScope(a, b string) bool {
	// An empty scope means the location-independent general fund; two
	// empty scopes share it.
	return a == b
}

// findCircularDependency reports whether the agents active at this
// location, plus the incoming plan, form a cycle under the "waits-for"
// relation carried in plan metadata.
func findCircularDependency(p PlanSubmission, active []models.CoordinationDecision) *models.Conflict {
	waits := map[string][]string{p.AgentType: p.WaitsFor}
	for _, d := range active {
		if d.Location == p.Location {
			waits[d.AgentType] = append(waits[d.AgentType], d.WaitsFor...)
		}
	}

	// DFS from the incoming agent over the waits-for edges.
	const (
		visiting = 1
		done     = 2
	)
	state := map[string]int{}

	var visit func(agent string) []string
	visit = func(agent string) []string {
		switch state[agent] {
		case visiting:
			return []string{agent}
		case done:
			return nil
		}
		state[agent] = visiting
		for _, dep := range waits[agent] {
			if path := visit(dep); path != nil {
				return append([]string{agent}, path...)
			}
		}
		state[agent] = done
		return nil
	}

	if path := visit(p.AgentType); path != nil {
		return &models.Conflict{
			Kind:   models.ConflictCircular,
			Detail: fmt.Sprintf("waits-for cycle at %s: %v", p.Location, path),
		}
	}
	return nil
}

// recommendationsFor renders human-readable repair suggestions per
// conflict kind, consumed by the planner on a retry verdict.
func recommendationsFor(conflicts []models.Conflict) []string {
	var recs []string
	seen := map[models.ConflictKind]bool{}
	for _, c := range conflicts {
		if seen[c.Kind] {
			continue
		}
		seen[c.Kind] = true

		switch c.Kind {
		case models.ConflictLocation:
			recs = append(recs, fmt.Sprintf("defer by one shift or coordinate with %s before starting work", c.WithAgentType))
		case models.ConflictResource:
			recs = append(recs, "replan with alternate resources or wait for the committed plan to finish")
		case models.ConflictBudget:
			recs = append(recs, "reduce estimated cost or request an emergency fund allocation")
		case models.ConflictCircular:
			recs = append(recs, "drop the waits-for dependency or defer to the emergency-priority agent")
		}
	}
	return recs
}
