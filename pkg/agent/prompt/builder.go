// Package prompt builds the per-phase prompt text the LLM-backed
// phases send to the oracle. Stateless — all state comes from
// parameters. Thread-safe — no mutable state.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cityworks/cityagent/pkg/models"
)

// Builder composes phase prompts for one department agent.
type Builder struct {
	department models.Department
	focus      string
}

// NewBuilder creates a Builder for a department. The department's
// focus line anchors every prompt so the oracle stays in-domain.
func NewBuilder(department models.Department) *Builder {
	return &Builder{
		department: department,
		focus:      departmentFocus[department],
	}
}

// header renders the shared preamble: role, department focus, and the
// JSON-only output contract.
func (b *Builder) header(task string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are the %s department's municipal decision-support agent.\n", b.department)
	if b.focus != "" {
		sb.WriteString(b.focus)
		sb.WriteString("\n")
	}
	sb.WriteString(task)
	sb.WriteString("\n\nAnswer with a single JSON object and nothing else.\n")
	return sb.String()
}

// requestBlock renders the request for inclusion in a prompt.
func requestBlock(req models.Request) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Request type: %s\nLocation: %s\n", req.Type, req.Location)
	if req.Originator != "" {
		fmt.Fprintf(&sb, "Originator: %s\n", req.Originator)
	}
	if req.EstimatedCost != nil {
		fmt.Fprintf(&sb, "Estimated cost (minor units): %d\n", *req.EstimatedCost)
	}
	if len(req.ResourcesNeeded) > 0 {
		fmt.Fprintf(&sb, "Resources needed: %s\n", strings.Join(req.ResourcesNeeded, ", "))
	}
	if len(req.Fields) > 0 {
		raw, err := json.Marshal(req.Fields)
		if err == nil {
			fmt.Fprintf(&sb, "Additional fields: %s\n", raw)
		}
	}
	return sb.String()
}

// contextBlock renders the loaded context snapshot, bounded so a large
// snapshot cannot blow up the prompt.
func contextBlock(context map[string]any) string {
	if len(context) == 0 {
		return "No context data is available for this location.\n"
	}
	raw, err := json.Marshal(context)
	if err != nil {
		return "No context data is available for this location.\n"
	}
	const maxContextBytes = 8192
	if len(raw) > maxContextBytes {
		raw = raw[:maxContextBytes]
	}
	return fmt.Sprintf("Location context:\n%s\n", raw)
}

// Intent builds the Phase 3 classification prompt.
func (b *Builder) Intent(req models.Request) string {
	return b.header(intentTask) + "\n" + requestBlock(req)
}

// Goal builds the Phase 4 objective prompt.
func (b *Builder) Goal(req models.Request, intent string, context map[string]any) string {
	return b.header(goalTask) + "\n" + requestBlock(req) +
		fmt.Sprintf("Classified intent: %s\n", intent) + contextBlock(context)
}

// Planner builds the Phase 5 planning prompt. On a replanning loop the
// prior plan and the coordinator's or feasibility evaluator's notes are
// appended as constraints; the tool selection should be kept where the
// notes don't require otherwise.
func (b *Builder) Planner(in models.PlannerInput, toolNames []string) string {
	var sb strings.Builder
	sb.WriteString(b.header(plannerTask))
	fmt.Fprintf(&sb, "\nIntent: %s\nGoal: %s\n", in.Intent, in.Goal)
	fmt.Fprintf(&sb, "Available tools: %s\n", strings.Join(toolNames, ", "))
	sb.WriteString(contextBlock(in.Context))

	if in.PriorPlan != nil {
		raw, err := json.Marshal(in.PriorPlan)
		if err == nil {
			fmt.Fprintf(&sb, "\nPrevious plan attempt:\n%s\n", raw)
		}
		sb.WriteString("Keep the same tool selection unless a note below requires a change.\n")
	}
	for _, note := range in.CoordinatorNotes {
		fmt.Fprintf(&sb, "Coordinator recommendation: %s\n", note)
	}
	for _, note := range in.FeasibilityNotes {
		fmt.Fprintf(&sb, "Feasibility finding: %s\n", note)
	}
	return sb.String()
}

// Observer builds the Phase 8 normalization prompt.
func (b *Builder) Observer(results []models.ToolResult) string {
	var sb strings.Builder
	sb.WriteString(b.header(observerTask))
	sb.WriteString("\nTool results:\n")
	for _, r := range results {
		raw, err := json.Marshal(r)
		if err != nil {
			continue
		}
		sb.Write(raw)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Policy builds the Phase 10 violation-narration prompt. The pass/fail
// verdict is rules-owned; the oracle only phrases the violations.
func (b *Builder) Policy(req models.Request, violations []string) string {
	var sb strings.Builder
	sb.WriteString(b.header(policyTask))
	sb.WriteString("\n")
	sb.WriteString(requestBlock(req))
	for _, v := range violations {
		fmt.Fprintf(&sb, "Violation: %s\n", v)
	}
	return sb.String()
}

// Confidence builds the Phase 12 scoring prompt.
func (b *Builder) Confidence(st *models.AgentState) string {
	var sb strings.Builder
	sb.WriteString(b.header(confidenceTask))
	fmt.Fprintf(&sb, "\nIntent: %s\nRisk level: %s\nFeasible: %t\nPolicy OK: %t\nRetries: %d\nViolations: %d\n",
		st.Intent, st.RiskLevel, st.Feasible, st.PolicyOK, st.RetryCount, len(st.PolicyViolations))
	return sb.String()
}
