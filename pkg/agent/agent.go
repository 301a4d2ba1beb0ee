// Package agent implements the per-department reasoning pipeline: a
// deterministic state machine over one AgentState, from input
// validation through the coordination checkpoint to the terminal
// decision. Every department shares the graph; differences are
// confined to the Tool Layer, Rules Engine, and prompt templates
// injected here.
package agent

import (
	"context"

	"github.com/cityworks/cityagent/pkg/agent/prompt"
	"github.com/cityworks/cityagent/pkg/config"
	"github.com/cityworks/cityagent/pkg/contextstore"
	"github.com/cityworks/cityagent/pkg/coordinator"
	"github.com/cityworks/cityagent/pkg/llmclient"
	"github.com/cityworks/cityagent/pkg/models"
	"github.com/cityworks/cityagent/pkg/rules"
	"github.com/cityworks/cityagent/pkg/tools"
)

// CheckpointClient is the Coordinator surface the Phase 6 rendezvous
// needs. Agents call the Coordinator; the Coordinator holds no
// references back.
type CheckpointClient interface {
	CheckPlanConflicts(ctx context.Context, p coordinator.PlanSubmission) (models.Verdict, error)
}

// AuditLog is the memory logger's boundary, implemented by
// audit.Service.
type AuditLog interface {
	AllocateID() string
	Record(ctx context.Context, rec models.AuditRecord) (string, error)
}

// Deps carries everything an Agent needs. Coordinator may be nil
// (checkpoint degrades to proceed); Audit may be nil only in tests.
type Deps struct {
	Store       contextstore.Store
	Tools       *tools.Registry
	Rules       rules.Engine
	LLM         llmclient.Client
	Coordinator CheckpointClient
	Audit       AuditLog
	Defaults    *config.Defaults
}

// Agent is one department's pipeline instance.
type Agent struct {
	dept     models.Department
	accepted map[string]bool
	prompts  *prompt.Builder
	deps     Deps
}

// New creates an Agent for dept. acceptedTypes is the Phase 1
// validation set, normally config.AcceptedTypes(dept).
func New(dept models.Department, acceptedTypes []string, deps Deps) *Agent {
	accepted := make(map[string]bool, len(acceptedTypes))
	for _, t := range acceptedTypes {
		accepted[t] = true
	}
	if deps.Defaults == nil {
		deps.Defaults = config.DefaultSettings()
	}
	return &Agent{
		dept:     dept,
		accepted: accepted,
		prompts:  prompt.NewBuilder(dept),
		deps:     deps,
	}
}

// Department returns the department this agent serves.
func (a *Agent) Department() models.Department {
	return a.dept
}
