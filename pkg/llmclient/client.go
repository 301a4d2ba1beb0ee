// Package llmclient encapsulates the JSON-in/JSON-out oracle contract
// every LLM-backed pipeline phase relies on. The adapter never throws
// past its boundary: any failure — disabled flag, network, timeout,
// unparseable output — surfaces as ErrNoAnswer and the calling phase
// engages its deterministic fallback.
package llmclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cityworks/cityagent/pkg/config"
	"github.com/cityworks/cityagent/pkg/models"
)

// Phase names the LLM-backed pipeline phases, matching the
// USE_LLM_FOR_* flag set.
type Phase string

const (
	PhaseIntent     Phase = "intent"
	PhaseGoal       Phase = "goal"
	PhasePlanner    Phase = "planner"
	PhaseObserver   Phase = "observer"
	PhasePolicy     Phase = "policy"
	PhaseConfidence Phase = "confidence"
)

// ErrNoAnswer is the adapter's single failure mode. Callers must treat
// it as "use the deterministic fallback", never as a pipeline abort.
var ErrNoAnswer = models.ErrLLMNoAnswer

// ErrDisabled wraps ErrNoAnswer for calls whose phase flag is off, so
// logs can tell configuration from outage while callers stay on the
// single errors.Is(err, ErrNoAnswer) path.
var ErrDisabled = fmt.Errorf("%w: phase disabled", ErrNoAnswer)

// Client is the per-phase oracle interface.
type Client interface {
	// Call sends prompt to the oracle and parses the response into out
	// (a pointer to the phase's expected JSON shape). Returns an error
	// wrapping ErrNoAnswer on any failure.
	Call(ctx context.Context, phase Phase, prompt string, out any) error
}

// enabled resolves a phase against the flag set.
func enabled(flags config.PhaseFlags, phase Phase) bool {
	switch phase {
	case PhaseIntent:
		return flags.Intent
	case PhaseGoal:
		return flags.Goal
	case PhasePlanner:
		return flags.Planner
	case PhaseObserver:
		return flags.Observer
	case PhasePolicy:
		return flags.Policy
	case PhaseConfidence:
		return flags.Confidence
	default:
		return false
	}
}

// stripCodeFences removes the common ```json ... ``` framings models
// wrap structured answers in, returning the inner payload.
func stripCodeFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	// Drop a language tag on the opening fence ("json", "JSON", ...).
	if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
		firstLine := strings.TrimSpace(trimmed[:idx])
		if len(firstLine) <= 10 && !strings.ContainsAny(firstLine, "{[") {
			trimmed = trimmed[idx+1:]
		}
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// parseJSON strips fences and unmarshals into out.
func parseJSON(raw string, out any) error {
	payload := stripCodeFences(raw)
	if payload == "" {
		return fmt.Errorf("%w: empty response", ErrNoAnswer)
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return fmt.Errorf("%w: %v", ErrNoAnswer, err)
	}
	return nil
}

// IsNoAnswer reports whether err is the adapter's no-answer outcome.
func IsNoAnswer(err error) bool {
	return errors.Is(err, ErrNoAnswer)
}
