package models

import "errors"

// Error kinds. Phases map every failure into one of these;
// the pipeline itself never aborts — it always reaches Output or is
// cancelled/failed by the Job Manager.
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrContextDegraded      = errors.New("context store degraded")
	ErrToolStep             = errors.New("tool step error")
	ErrLLMNoAnswer          = errors.New("llm: no answer")
	ErrCoordinatorUnavailable = errors.New("coordinator unavailable")
	ErrPolicyViolation      = errors.New("policy violation")
	ErrFeasibilityFailure   = errors.New("feasibility failure")
	ErrHumanRejection       = errors.New("human rejection")
	ErrJobTimeout           = errors.New("job timeout")
	ErrInternal             = errors.New("internal error")
)
