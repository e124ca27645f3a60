package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunTelemetry holds the schema definition for the RunTelemetry entity:
// recorded trace spans for a run, keyed by (run_id, span_id).
type RunTelemetry struct {
	ent.Schema
}

// Fields of the RunTelemetry.
func (RunTelemetry) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Immutable(),
		field.String("span_id").
			Immutable(),
		field.String("trace_id").
			Immutable(),
		field.String("parent_span_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("name").
			Immutable(),
		field.String("status_code").
			Optional(),
		field.Text("status_message").
			Optional().
			Nillable(),
		field.JSON("attributes", map[string]interface{}{}).
			Optional(),
		field.Time("started_at").
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RunTelemetry.
func (RunTelemetry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", RunSummary.Type).
			Ref("telemetry").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RunTelemetry.
func (RunTelemetry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "span_id").
			Unique(),
		index.Fields("trace_id"),
	}
}
