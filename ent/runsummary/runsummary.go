// Code generated by ent, DO NOT EDIT.

package runsummary

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the runsummary type in the database.
	Label = "run_summary"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldPresetKey holds the string denoting the preset_key field in the database.
	FieldPresetKey = "preset_key"
	// FieldStructuredOutputSchema holds the string denoting the structured_output_schema field in the database.
	FieldStructuredOutputSchema = "structured_output_schema"
	// FieldModelID holds the string denoting the model_id field in the database.
	FieldModelID = "model_id"
	// FieldResultText holds the string denoting the result_text field in the database.
	FieldResultText = "result_text"
	// FieldStructuredOutput holds the string denoting the structured_output field in the database.
	FieldStructuredOutput = "structured_output"
	// FieldErrorCode holds the string denoting the error_code field in the database.
	FieldErrorCode = "error_code"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldAgents holds the string denoting the agents field in the database.
	FieldAgents = "agents"
	// FieldNodeHistory holds the string denoting the node_history field in the database.
	FieldNodeHistory = "node_history"
	// FieldExecutionOrder holds the string denoting the execution_order field in the database.
	FieldExecutionOrder = "execution_order"
	// FieldInputTokens holds the string denoting the input_tokens field in the database.
	FieldInputTokens = "input_tokens"
	// FieldOutputTokens holds the string denoting the output_tokens field in the database.
	FieldOutputTokens = "output_tokens"
	// FieldTotalTokens holds the string denoting the total_tokens field in the database.
	FieldTotalTokens = "total_tokens"
	// FieldToolUseCount holds the string denoting the tool_use_count field in the database.
	FieldToolUseCount = "tool_use_count"
	// FieldNodeStartCount holds the string denoting the node_start_count field in the database.
	FieldNodeStartCount = "node_start_count"
	// FieldExecutionTimeMs holds the string denoting the execution_time_ms field in the database.
	FieldExecutionTimeMs = "execution_time_ms"
	// FieldEstimatedCostUsd holds the string denoting the estimated_cost_usd field in the database.
	FieldEstimatedCostUsd = "estimated_cost_usd"
	// FieldRiskScore holds the string denoting the risk_score field in the database.
	FieldRiskScore = "risk_score"
	// FieldAnomaly holds the string denoting the anomaly field in the database.
	FieldAnomaly = "anomaly"
	// FieldClientDisconnected holds the string denoting the client_disconnected field in the database.
	FieldClientDisconnected = "client_disconnected"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgeNodeMetrics holds the string denoting the node_metrics edge name in mutations.
	EdgeNodeMetrics = "node_metrics"
	// EdgeTelemetry holds the string denoting the telemetry edge name in mutations.
	EdgeTelemetry = "telemetry"
	// RunEventFieldID holds the string denoting the ID field of the RunEvent.
	RunEventFieldID = "id"
	// RunNodeMetricFieldID holds the string denoting the ID field of the RunNodeMetric.
	RunNodeMetricFieldID = "id"
	// RunTelemetryFieldID holds the string denoting the ID field of the RunTelemetry.
	RunTelemetryFieldID = "id"
	// Table holds the table name of the runsummary in the database.
	Table = "run_summaries"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "run_events"
	// EventsInverseTable is the table name for the RunEvent entity.
	// It exists in this package in order to avoid circular dependency with the "runevent" package.
	EventsInverseTable = "run_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "run_id"
	// NodeMetricsTable is the table that holds the node_metrics relation/edge.
	NodeMetricsTable = "run_node_metrics"
	// NodeMetricsInverseTable is the table name for the RunNodeMetric entity.
	// It exists in this package in order to avoid circular dependency with the "runnodemetric" package.
	NodeMetricsInverseTable = "run_node_metrics"
	// NodeMetricsColumn is the table column denoting the node_metrics relation/edge.
	NodeMetricsColumn = "run_id"
	// TelemetryTable is the table that holds the telemetry relation/edge.
	TelemetryTable = "run_telemetries"
	// TelemetryInverseTable is the table name for the RunTelemetry entity.
	// It exists in this package in order to avoid circular dependency with the "runtelemetry" package.
	TelemetryInverseTable = "run_telemetries"
	// TelemetryColumn is the table column denoting the telemetry relation/edge.
	TelemetryColumn = "run_id"
)

// Columns holds all SQL columns for runsummary fields.
var Columns = []string{
	FieldID,
	FieldMode,
	FieldStatus,
	FieldPrompt,
	FieldSessionID,
	FieldPresetKey,
	FieldStructuredOutputSchema,
	FieldModelID,
	FieldResultText,
	FieldStructuredOutput,
	FieldErrorCode,
	FieldErrorMessage,
	FieldAgents,
	FieldNodeHistory,
	FieldExecutionOrder,
	FieldInputTokens,
	FieldOutputTokens,
	FieldTotalTokens,
	FieldToolUseCount,
	FieldNodeStartCount,
	FieldExecutionTimeMs,
	FieldEstimatedCostUsd,
	FieldRiskScore,
	FieldAnomaly,
	FieldClientDisconnected,
	FieldCreatedAt,
	FieldCompletedAt,
	FieldDeletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultInputTokens holds the default value on creation for the "input_tokens" field.
	DefaultInputTokens int
	// DefaultOutputTokens holds the default value on creation for the "output_tokens" field.
	DefaultOutputTokens int
	// DefaultTotalTokens holds the default value on creation for the "total_tokens" field.
	DefaultTotalTokens int
	// DefaultToolUseCount holds the default value on creation for the "tool_use_count" field.
	DefaultToolUseCount int
	// DefaultNodeStartCount holds the default value on creation for the "node_start_count" field.
	DefaultNodeStartCount int
	// DefaultExecutionTimeMs holds the default value on creation for the "execution_time_ms" field.
	DefaultExecutionTimeMs int64
	// DefaultEstimatedCostUsd holds the default value on creation for the "estimated_cost_usd" field.
	DefaultEstimatedCostUsd float64
	// DefaultRiskScore holds the default value on creation for the "risk_score" field.
	DefaultRiskScore float64
	// DefaultAnomaly holds the default value on creation for the "anomaly" field.
	DefaultAnomaly bool
	// DefaultClientDisconnected holds the default value on creation for the "client_disconnected" field.
	DefaultClientDisconnected bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Mode defines the type for the "mode" enum field.
type Mode string

// Mode values.
const (
	ModeSingle Mode = "single"
	ModeSwarm  Mode = "swarm"
	ModeGraph  Mode = "graph"
)

func (m Mode) String() string {
	return string(m)
}

// ModeValidator is a validator for the "mode" field enum values. It is called by the builders before save.
func ModeValidator(m Mode) error {
	switch m {
	case ModeSingle, ModeSwarm, ModeGraph:
		return nil
	default:
		return fmt.Errorf("runsummary: invalid enum value for mode field: %q", m)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusRunning     Status = "running"
	StatusCompleted   Status = "completed"
	StatusFailed      Status = "failed"
	StatusInterrupted Status = "interrupted"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusCompleted, StatusFailed, StatusInterrupted:
		return nil
	default:
		return fmt.Errorf("runsummary: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the RunSummary queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByPresetKey orders the results by the preset_key field.
func ByPresetKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPresetKey, opts...).ToFunc()
}

// ByStructuredOutputSchema orders the results by the structured_output_schema field.
func ByStructuredOutputSchema(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStructuredOutputSchema, opts...).ToFunc()
}

// ByModelID orders the results by the model_id field.
func ByModelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelID, opts...).ToFunc()
}

// ByResultText orders the results by the result_text field.
func ByResultText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultText, opts...).ToFunc()
}

// ByErrorCode orders the results by the error_code field.
func ByErrorCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCode, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByInputTokens orders the results by the input_tokens field.
func ByInputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputTokens, opts...).ToFunc()
}

// ByOutputTokens orders the results by the output_tokens field.
func ByOutputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputTokens, opts...).ToFunc()
}

// ByTotalTokens orders the results by the total_tokens field.
func ByTotalTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTokens, opts...).ToFunc()
}

// ByToolUseCount orders the results by the tool_use_count field.
func ByToolUseCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolUseCount, opts...).ToFunc()
}

// ByNodeStartCount orders the results by the node_start_count field.
func ByNodeStartCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNodeStartCount, opts...).ToFunc()
}

// ByExecutionTimeMs orders the results by the execution_time_ms field.
func ByExecutionTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionTimeMs, opts...).ToFunc()
}

// ByEstimatedCostUsd orders the results by the estimated_cost_usd field.
func ByEstimatedCostUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedCostUsd, opts...).ToFunc()
}

// ByRiskScore orders the results by the risk_score field.
func ByRiskScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskScore, opts...).ToFunc()
}

// ByAnomaly orders the results by the anomaly field.
func ByAnomaly(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnomaly, opts...).ToFunc()
}

// ByClientDisconnected orders the results by the client_disconnected field.
func ByClientDisconnected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientDisconnected, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByNodeMetricsCount orders the results by node_metrics count.
func ByNodeMetricsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newNodeMetricsStep(), opts...)
	}
}

// ByNodeMetrics orders the results by node_metrics terms.
func ByNodeMetrics(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNodeMetricsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTelemetryCount orders the results by telemetry count.
func ByTelemetryCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTelemetryStep(), opts...)
	}
}

// ByTelemetry orders the results by telemetry terms.
func ByTelemetry(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTelemetryStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, RunEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newNodeMetricsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NodeMetricsInverseTable, RunNodeMetricFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, NodeMetricsTable, NodeMetricsColumn),
	)
}
func newTelemetryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TelemetryInverseTable, RunTelemetryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TelemetryTable, TelemetryColumn),
	)
}
