package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunNodeMetric holds the schema definition for the RunNodeMetric entity:
// per-node usage and outcome for a run, keyed by (run_id, node_id).
type RunNodeMetric struct {
	ent.Schema
}

// Fields of the RunNodeMetric.
func (RunNodeMetric) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Immutable(),
		field.String("node_id").
			Immutable(),
		field.String("status").
			Optional().
			Comment("Last observed node status"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int("total_tokens").
			Default(0),
		field.Int("execution_count").
			Default(0),
		field.Int("stream_event_count").
			Default(0).
			Comment("All stream events seen, including ones past the persistence cap"),
		field.Bool("capture_capped").
			Default(false),
		field.Int64("duration_ms").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RunNodeMetric.
func (RunNodeMetric) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", RunSummary.Type).
			Ref("node_metrics").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RunNodeMetric.
func (RunNodeMetric) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "node_id").
			Unique(),
	}
}
