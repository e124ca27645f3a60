// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// RunEventsColumns holds the columns for the "run_events" table.
	RunEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "event_type", Type: field.TypeString},
		{Name: "node_id", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// RunEventsTable holds the schema information for the "run_events" table.
	RunEventsTable = &schema.Table{
		Name:       "run_events",
		Columns:    RunEventsColumns,
		PrimaryKey: []*schema.Column{RunEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "run_events_run_summaries_events",
				Columns:    []*schema.Column{RunEventsColumns[6]},
				RefColumns: []*schema.Column{RunSummariesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "runevent_run_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{RunEventsColumns[6], RunEventsColumns[1]},
			},
			{
				Name:    "runevent_run_id_event_type",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[6], RunEventsColumns[2]},
			},
		},
	}
	// RunNodeMetricsColumns holds the columns for the "run_node_metrics" table.
	RunNodeMetricsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "node_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
		{Name: "execution_count", Type: field.TypeInt, Default: 0},
		{Name: "stream_event_count", Type: field.TypeInt, Default: 0},
		{Name: "capture_capped", Type: field.TypeBool, Default: false},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// RunNodeMetricsTable holds the schema information for the "run_node_metrics" table.
	RunNodeMetricsTable = &schema.Table{
		Name:       "run_node_metrics",
		Columns:    RunNodeMetricsColumns,
		PrimaryKey: []*schema.Column{RunNodeMetricsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "run_node_metrics_run_summaries_node_metrics",
				Columns:    []*schema.Column{RunNodeMetricsColumns[11]},
				RefColumns: []*schema.Column{RunSummariesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "runnodemetric_run_id_node_id",
				Unique:  true,
				Columns: []*schema.Column{RunNodeMetricsColumns[11], RunNodeMetricsColumns[1]},
			},
		},
	}
	// RunSummariesColumns holds the columns for the "run_summaries" table.
	RunSummariesColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"single", "swarm", "graph"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed", "interrupted"}, Default: "running"},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "preset_key", Type: field.TypeString, Nullable: true},
		{Name: "structured_output_schema", Type: field.TypeString, Nullable: true},
		{Name: "model_id", Type: field.TypeString, Nullable: true},
		{Name: "result_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "structured_output", Type: field.TypeJSON, Nullable: true},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "agents", Type: field.TypeJSON, Nullable: true},
		{Name: "node_history", Type: field.TypeJSON, Nullable: true},
		{Name: "execution_order", Type: field.TypeJSON, Nullable: true},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
		{Name: "tool_use_count", Type: field.TypeInt, Default: 0},
		{Name: "node_start_count", Type: field.TypeInt, Default: 0},
		{Name: "execution_time_ms", Type: field.TypeInt64, Default: 0},
		{Name: "estimated_cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "risk_score", Type: field.TypeFloat64, Default: 0},
		{Name: "anomaly", Type: field.TypeBool, Default: false},
		{Name: "client_disconnected", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// RunSummariesTable holds the schema information for the "run_summaries" table.
	RunSummariesTable = &schema.Table{
		Name:       "run_summaries",
		Columns:    RunSummariesColumns,
		PrimaryKey: []*schema.Column{RunSummariesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "runsummary_status",
				Unique:  false,
				Columns: []*schema.Column{RunSummariesColumns[2]},
			},
			{
				Name:    "runsummary_mode",
				Unique:  false,
				Columns: []*schema.Column{RunSummariesColumns[1]},
			},
			{
				Name:    "runsummary_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{RunSummariesColumns[2], RunSummariesColumns[25]},
			},
			{
				Name:    "runsummary_risk_score",
				Unique:  false,
				Columns: []*schema.Column{RunSummariesColumns[22]},
			},
			{
				Name:    "runsummary_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{RunSummariesColumns[27]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// RunTelemetriesColumns holds the columns for the "run_telemetries" table.
	RunTelemetriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "span_id", Type: field.TypeString},
		{Name: "trace_id", Type: field.TypeString},
		{Name: "parent_span_id", Type: field.TypeString, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "status_code", Type: field.TypeString, Nullable: true},
		{Name: "status_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "attributes", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// RunTelemetriesTable holds the schema information for the "run_telemetries" table.
	RunTelemetriesTable = &schema.Table{
		Name:       "run_telemetries",
		Columns:    RunTelemetriesColumns,
		PrimaryKey: []*schema.Column{RunTelemetriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "run_telemetries_run_summaries_telemetry",
				Columns:    []*schema.Column{RunTelemetriesColumns[11]},
				RefColumns: []*schema.Column{RunSummariesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "runtelemetry_run_id_span_id",
				Unique:  true,
				Columns: []*schema.Column{RunTelemetriesColumns[11], RunTelemetriesColumns[1]},
			},
			{
				Name:    "runtelemetry_trace_id",
				Unique:  false,
				Columns: []*schema.Column{RunTelemetriesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		RunEventsTable,
		RunNodeMetricsTable,
		RunSummariesTable,
		RunTelemetriesTable,
	}
)

func init() {
	RunEventsTable.ForeignKeys[0].RefTable = RunSummariesTable
	RunNodeMetricsTable.ForeignKeys[0].RefTable = RunSummariesTable
	RunTelemetriesTable.ForeignKeys[0].RefTable = RunSummariesTable
}
