package rules

import (
	"github.com/cityworks/cityagent/pkg/models"
)

// Get resolves a department's Engine, falling back to a permissive no-op
// engine if the department is unregistered, so a missing entry degrades to
// "always feasible, no violations" rather than a nil-pointer panic.
func (r Registry) Get(dept models.Department) Engine {
	if e, ok := r[dept]; ok {
		return e
	}
	return noopEngine{}
}

type noopEngine struct{}

func (noopEngine) Feasibility(models.Plan, models.Observations) FeasibilityResult {
	return FeasibilityResult{Feasible: true}
}

func (noopEngine) Policy(models.Plan, models.Observations) PolicyResult {
	return PolicyResult{OK: true}
}
