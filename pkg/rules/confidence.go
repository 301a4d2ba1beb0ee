package rules

import "github.com/cityworks/cityagent/pkg/models"

// Confidence implements the weighted deterministic calculator from spec
// §4.3. Every department engine composes this rather than reimplementing
// the formula; departments only supply the risk level and violation count.
func Confidence(feasible, policyOK bool, risk models.RiskLevel, dataCompleteness float64, retryCount int, violationCount int) float64 {
	score := 0.0

	if feasible {
		score += 0.25
	}
	if policyOK {
		score += 0.20
	}

	switch risk {
	case models.RiskLow:
		score += 0.15
	case models.RiskMedium:
		score += 0
	case models.RiskHigh:
		score -= 0.15
	case models.RiskCritical:
		score -= 0.25
	}

	// data completeness contributes a small bonus proportional to how
	// complete Phase 8's observations were, scaled into the 0.05-0.10 band.
	score += 0.05 + 0.05*clamp01(dataCompleteness)

	score -= 0.10 * float64(retryCount)
	score -= 0.05 * float64(violationCount)

	return clamp01(score)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
