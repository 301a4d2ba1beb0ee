package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cityworks/cityagent/pkg/models"
)

func TestRegistry_GetFallsBackToNoop(t *testing.T) {
	reg := Registry{}
	eng := reg.Get(models.Department("unregistered"))

	result := eng.Feasibility(models.Plan{}, models.Observations{})
	assert.True(t, result.Feasible)

	policy := eng.Policy(models.Plan{}, models.Observations{})
	assert.True(t, policy.OK)
}
