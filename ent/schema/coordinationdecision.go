package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CoordinationDecision holds the schema definition for the CoordinationDecision
// entity — the single shared-mutable datum the Coordinator's conflict
// detection queries. Rows are inserted only when a checkpoint resolves to
// "proceed" and are never deleted; status transitions in place.
type CoordinationDecision struct {
	ent.Schema
}

// Fields of the CoordinationDecision.
func (CoordinationDecision) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("agent_type").
			Comment("Department that owns this plan (water, engineering, fire, sanitation, health, finance)"),
		field.String("location").
			Comment("Location/zone this plan commits against"),
		field.Strings("resources_needed").
			Optional(),
		field.Int64("estimated_cost").
			Default(0).
			Comment("Minor currency units (paise)"),
		field.String("fiscal_scope").
			Optional().
			Comment("Budget ceiling bucket this cost counts against"),
		field.Strings("waits_for").
			Optional().
			Comment("Agent types this plan is blocked on, for circular-dependency detection"),
		field.Enum("status").
			Values("active", "completed", "superseded").
			Default("active"),
		field.String("decision").
			Optional().
			Nillable().
			Comment("Populated when status leaves active: how the row was resolved"),
		field.Text("plan_summary").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the CoordinationDecision.
func (CoordinationDecision) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("location"),
		index.Fields("status"),
		index.Fields("status", "created_at"),
		index.Fields("location", "status"),
	}
}
