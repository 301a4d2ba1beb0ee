package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cityworks/cityagent/pkg/models"
)

func TestConfidence_HealthyRunScoresAtThreshold(t *testing.T) {
	// feasible (+0.25) + policy (+0.20) + low risk (+0.15) + full data
	// (+0.10) is the deterministic ceiling.
	score := Confidence(true, true, models.RiskLow, 1.0, 0, 0)
	assert.InDelta(t, 0.70, score, 1e-9)
}

func TestConfidence_RetriesAndViolationsSubtract(t *testing.T) {
	base := Confidence(true, true, models.RiskLow, 1.0, 0, 0)
	withRetry := Confidence(true, true, models.RiskLow, 1.0, 1, 0)
	withViolations := Confidence(true, true, models.RiskLow, 1.0, 0, 2)

	assert.InDelta(t, base-0.10, withRetry, 1e-9)
	assert.InDelta(t, base-0.10, withViolations, 1e-9)
}

func TestConfidence_RiskGrades(t *testing.T) {
	low := Confidence(true, true, models.RiskLow, 1.0, 0, 0)
	medium := Confidence(true, true, models.RiskMedium, 1.0, 0, 0)
	high := Confidence(true, true, models.RiskHigh, 1.0, 0, 0)
	critical := Confidence(true, true, models.RiskCritical, 1.0, 0, 0)

	assert.Greater(t, low, medium)
	assert.Greater(t, medium, high)
	assert.Greater(t, high, critical)
}

func TestConfidence_ClampedToUnitInterval(t *testing.T) {
	// Heavily penalized runs clamp at 0, never go negative.
	score := Confidence(false, false, models.RiskCritical, 0, 3, 10)
	assert.Equal(t, 0.0, score)

	score = Confidence(true, true, models.RiskLow, 1.0, 0, 0)
	assert.LessOrEqual(t, score, 1.0)
}

func TestConfidence_DataCompletenessBand(t *testing.T) {
	empty := Confidence(true, true, models.RiskMedium, 0, 0, 0)
	full := Confidence(true, true, models.RiskMedium, 1.0, 0, 0)
	assert.InDelta(t, 0.05, full-empty, 1e-9)
}
