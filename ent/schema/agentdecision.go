package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentDecision holds the schema definition for the AgentDecision entity —
// the append-only audit record written once per completed pipeline run
// by the output generator (Phase 14), under the ID the memory logger
// (Phase 11) allocates.
type AgentDecision struct {
	ent.Schema
}

// Fields of the AgentDecision.
func (AgentDecision) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("job_id").
			Unique().
			Immutable(),
		field.String("agent_type"),
		field.String("request_type"),
		field.String("location"),
		field.Enum("decision").
			Values("recommend", "escalate", "reject"),
		field.Text("reason").
			Optional(),
		field.Text("rationale").
			Optional(),
		field.Bool("feasible").
			Default(false),
		field.Bool("policy_ok").
			Default(false),
		field.Float("confidence").
			Default(0),
		field.Enum("risk_level").
			Values("low", "medium", "high", "critical").
			Default("low"),
		field.Int("retry_count").
			Default(0),
		field.Strings("policies_referenced").
			Optional(),
		field.Strings("policy_violations").
			Optional(),
		field.Int("affected_citizens").
			Optional().
			Nillable(),
		field.Int64("cost_impact").
			Optional().
			Nillable(),
		field.String("coordination_id").
			Optional().
			Comment("CoordinationDecision row this job's checkpoint inserted, empty when none"),
		field.Bool("coordination_degraded").
			Default(false),
		field.Bool("context_degraded").
			Default(false),
		field.JSON("snapshot", map[string]interface{}{}).
			Optional().
			Comment("Full AgentState at terminal phase, for the trace/debug endpoints"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AgentDecision.
func (AgentDecision) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_type"),
		index.Fields("decision"),
		index.Fields("created_at"),
	}
}
