package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunSummary holds the schema definition for the RunSummary entity.
// One row per orchestration run, keyed by run id.
type RunSummary struct {
	ent.Schema
}

// Fields of the RunSummary.
func (RunSummary) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.Enum("mode").
			Values("single", "swarm", "graph"),
		field.Enum("status").
			Values("running", "completed", "failed", "interrupted").
			Default("running"),
		field.Text("prompt").
			Comment("Original task text"),
		field.String("session_id").
			Optional().
			Nillable(),
		field.String("preset_key").
			Optional().
			Nillable(),
		field.String("structured_output_schema").
			Optional().
			Nillable(),
		field.String("model_id").
			Optional().
			Nillable().
			Comment("First-seen display form, not the normalized key"),
		field.Text("result_text").
			Optional().
			Nillable(),
		field.JSON("structured_output", map[string]interface{}{}).
			Optional(),
		field.String("error_code").
			Optional().
			Nillable(),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.JSON("agents", []string{}).
			Optional().
			Comment("Agent names in declaration order"),
		field.JSON("node_history", []string{}).
			Optional(),
		field.JSON("execution_order", []string{}).
			Optional(),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int("total_tokens").
			Default(0).
			Comment("Observed run-scoped total, max semantics"),
		field.Int("tool_use_count").
			Default(0),
		field.Int("node_start_count").
			Default(0),
		field.Int64("execution_time_ms").
			Default(0),
		field.Float("estimated_cost_usd").
			Default(0),
		field.Float("risk_score").
			Default(0).
			Comment("0..1, computed at finalization from failure codes and budget pressure"),
		field.Bool("anomaly").
			Default(false).
			Comment("Run tripped a budget, policy, or contract guard"),
		field.Bool("client_disconnected").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the RunSummary.
func (RunSummary) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("events", RunEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("node_metrics", RunNodeMetric.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("telemetry", RunTelemetry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the RunSummary.
func (RunSummary) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("mode"),
		index.Fields("status", "created_at"),
		index.Fields("risk_score"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
