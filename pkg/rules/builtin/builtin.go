// Package builtin wires every department's rules.Engine into a
// rules.Registry. It exists separately from package rules because the
// department packages (engineering, finance, ...) import package rules for
// the Engine/FeasibilityResult/PolicyResult types — package rules itself
// cannot import them back without an import cycle.
package builtin

import (
	"github.com/cityworks/cityagent/pkg/models"
	"github.com/cityworks/cityagent/pkg/rules"
	"github.com/cityworks/cityagent/pkg/rules/engineering"
	"github.com/cityworks/cityagent/pkg/rules/finance"
	"github.com/cityworks/cityagent/pkg/rules/fire"
	"github.com/cityworks/cityagent/pkg/rules/health"
	"github.com/cityworks/cityagent/pkg/rules/sanitation"
	"github.com/cityworks/cityagent/pkg/rules/water"
)

// Registry returns the rules.Registry wiring every department's rules
// Engine, used by the pipeline wherever a department-specific Feasibility
// or Policy evaluation is needed.
func Registry() rules.Registry {
	return rules.Registry{
		models.DepartmentWater:       water.Engine{},
		models.DepartmentEngineering: engineering.Engine{},
		models.DepartmentFire:        fire.Engine{},
		models.DepartmentSanitation:  sanitation.Engine{},
		models.DepartmentHealth:      health.Engine{},
		models.DepartmentFinance:     finance.Engine{},
	}
}
