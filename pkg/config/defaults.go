package config

import "time"

// PhaseFlags is the USE_LLM_FOR_{PLANNER,OBSERVER,POLICY,CONFIDENCE,INTENT,GOAL}
// set. A false flag means that phase always uses its deterministic fallback.
type PhaseFlags struct {
	Planner    bool `yaml:"planner"`
	Observer   bool `yaml:"observer"`
	Policy     bool `yaml:"policy"`
	Confidence bool `yaml:"confidence"`
	Intent     bool `yaml:"intent"`
	Goal       bool `yaml:"goal"`
}

// Defaults contains the system-wide settings.
type Defaults struct {
	// ConfidenceThreshold gates decision=recommend.
	ConfidenceThreshold float64 `yaml:"confidence_threshold" validate:"required,min=0,max=1"`

	// MaxRetries bounds the shared Planner/Feasibility replanning budget.
	MaxRetries int `yaml:"max_retries" validate:"required,min=0"`

	// CostEscalationLimit is the Money threshold above which Coordinator
	// conflicts escalate to a human rather than retrying (minor units).
	CostEscalationLimit int64 `yaml:"cost_escalation_limit" validate:"required,min=0"`

	// BudgetCeiling caps the summed estimated cost of active plans in
	// one fiscal scope (minor units). 0 disables budget-conflict
	// detection.
	BudgetCeiling int64 `yaml:"budget_ceiling"`

	// CoordinationAutoApprove selects the human-intervention channel's test
	// mode (auto-approve) vs its interactive-terminal production mode.
	CoordinationAutoApprove bool `yaml:"coordination_auto_approve"`

	// UseLLMFor gates each LLM-backed phase independently.
	UseLLMFor PhaseFlags `yaml:"use_llm_for"`

	// ConflictWindow is the lookback window for "active" CoordinationDecision rows.
	ConflictWindow time.Duration `yaml:"conflict_window"`

	// JobTimeout is the wall-clock cap on one pipeline run; exceeding it
	// fails the job.
	JobTimeout time.Duration `yaml:"job_timeout"`
}

// DefaultSettings returns the compiled-in defaults.
func DefaultSettings() *Defaults {
	return &Defaults{
		ConfidenceThreshold:     0.7,
		MaxRetries:              3,
		CostEscalationLimit:     50_00_00_000,    // ₹50L in paise
		BudgetCeiling:           5_00_00_00_000,  // ₹5Cr in paise, per fiscal scope
		CoordinationAutoApprove: false,
		UseLLMFor: PhaseFlags{
			Planner:    true,
			Observer:   true,
			Policy:     true,
			Confidence: true,
			Intent:     true,
			Goal:       true,
		},
		ConflictWindow: 24 * time.Hour,
		JobTimeout:     5 * time.Minute,
	}
}
