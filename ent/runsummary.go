// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentfleet/agentfleet/ent/runsummary"
)

// RunSummary is the model entity for the RunSummary schema.
type RunSummary struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Mode holds the value of the "mode" field.
	Mode runsummary.Mode `json:"mode,omitempty"`
	// Status holds the value of the "status" field.
	Status runsummary.Status `json:"status,omitempty"`
	// Original task text
	Prompt string `json:"prompt,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID *string `json:"session_id,omitempty"`
	// PresetKey holds the value of the "preset_key" field.
	PresetKey *string `json:"preset_key,omitempty"`
	// StructuredOutputSchema holds the value of the "structured_output_schema" field.
	StructuredOutputSchema *string `json:"structured_output_schema,omitempty"`
	// First-seen display form, not the normalized key
	ModelID *string `json:"model_id,omitempty"`
	// ResultText holds the value of the "result_text" field.
	ResultText *string `json:"result_text,omitempty"`
	// StructuredOutput holds the value of the "structured_output" field.
	StructuredOutput map[string]interface{} `json:"structured_output,omitempty"`
	// ErrorCode holds the value of the "error_code" field.
	ErrorCode *string `json:"error_code,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Agent names in declaration order
	Agents []string `json:"agents,omitempty"`
	// NodeHistory holds the value of the "node_history" field.
	NodeHistory []string `json:"node_history,omitempty"`
	// ExecutionOrder holds the value of the "execution_order" field.
	ExecutionOrder []string `json:"execution_order,omitempty"`
	// InputTokens holds the value of the "input_tokens" field.
	InputTokens int `json:"input_tokens,omitempty"`
	// OutputTokens holds the value of the "output_tokens" field.
	OutputTokens int `json:"output_tokens,omitempty"`
	// Observed run-scoped total, max semantics
	TotalTokens int `json:"total_tokens,omitempty"`
	// ToolUseCount holds the value of the "tool_use_count" field.
	ToolUseCount int `json:"tool_use_count,omitempty"`
	// NodeStartCount holds the value of the "node_start_count" field.
	NodeStartCount int `json:"node_start_count,omitempty"`
	// ExecutionTimeMs holds the value of the "execution_time_ms" field.
	ExecutionTimeMs int64 `json:"execution_time_ms,omitempty"`
	// EstimatedCostUsd holds the value of the "estimated_cost_usd" field.
	EstimatedCostUsd float64 `json:"estimated_cost_usd,omitempty"`
	// 0..1, computed at finalization from failure codes and budget pressure
	RiskScore float64 `json:"risk_score,omitempty"`
	// Run tripped a budget, policy, or contract guard
	Anomaly bool `json:"anomaly,omitempty"`
	// ClientDisconnected holds the value of the "client_disconnected" field.
	ClientDisconnected bool `json:"client_disconnected,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RunSummaryQuery when eager-loading is set.
	Edges        RunSummaryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RunSummaryEdges holds the relations/edges for other nodes in the graph.
type RunSummaryEdges struct {
	// Events holds the value of the events edge.
	Events []*RunEvent `json:"events,omitempty"`
	// NodeMetrics holds the value of the node_metrics edge.
	NodeMetrics []*RunNodeMetric `json:"node_metrics,omitempty"`
	// Telemetry holds the value of the telemetry edge.
	Telemetry []*RunTelemetry `json:"telemetry,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e RunSummaryEdges) EventsOrErr() ([]*RunEvent, error) {
	if e.loadedTypes[0] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// NodeMetricsOrErr returns the NodeMetrics value or an error if the edge
// was not loaded in eager-loading.
func (e RunSummaryEdges) NodeMetricsOrErr() ([]*RunNodeMetric, error) {
	if e.loadedTypes[1] {
		return e.NodeMetrics, nil
	}
	return nil, &NotLoadedError{edge: "node_metrics"}
}

// TelemetryOrErr returns the Telemetry value or an error if the edge
// was not loaded in eager-loading.
func (e RunSummaryEdges) TelemetryOrErr() ([]*RunTelemetry, error) {
	if e.loadedTypes[2] {
		return e.Telemetry, nil
	}
	return nil, &NotLoadedError{edge: "telemetry"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RunSummary) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case runsummary.FieldStructuredOutput, runsummary.FieldAgents, runsummary.FieldNodeHistory, runsummary.FieldExecutionOrder:
			values[i] = new([]byte)
		case runsummary.FieldAnomaly, runsummary.FieldClientDisconnected:
			values[i] = new(sql.NullBool)
		case runsummary.FieldEstimatedCostUsd, runsummary.FieldRiskScore:
			values[i] = new(sql.NullFloat64)
		case runsummary.FieldInputTokens, runsummary.FieldOutputTokens, runsummary.FieldTotalTokens, runsummary.FieldToolUseCount, runsummary.FieldNodeStartCount, runsummary.FieldExecutionTimeMs:
			values[i] = new(sql.NullInt64)
		case runsummary.FieldID, runsummary.FieldMode, runsummary.FieldStatus, runsummary.FieldPrompt, runsummary.FieldSessionID, runsummary.FieldPresetKey, runsummary.FieldStructuredOutputSchema, runsummary.FieldModelID, runsummary.FieldResultText, runsummary.FieldErrorCode, runsummary.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case runsummary.FieldCreatedAt, runsummary.FieldCompletedAt, runsummary.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RunSummary fields.
func (_m *RunSummary) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case runsummary.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case runsummary.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = runsummary.Mode(value.String)
			}
		case runsummary.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = runsummary.Status(value.String)
			}
		case runsummary.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case runsummary.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = new(string)
				*_m.SessionID = value.String
			}
		case runsummary.FieldPresetKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preset_key", values[i])
			} else if value.Valid {
				_m.PresetKey = new(string)
				*_m.PresetKey = value.String
			}
		case runsummary.FieldStructuredOutputSchema:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field structured_output_schema", values[i])
			} else if value.Valid {
				_m.StructuredOutputSchema = new(string)
				*_m.StructuredOutputSchema = value.String
			}
		case runsummary.FieldModelID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_id", values[i])
			} else if value.Valid {
				_m.ModelID = new(string)
				*_m.ModelID = value.String
			}
		case runsummary.FieldResultText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_text", values[i])
			} else if value.Valid {
				_m.ResultText = new(string)
				*_m.ResultText = value.String
			}
		case runsummary.FieldStructuredOutput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field structured_output", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StructuredOutput); err != nil {
					return fmt.Errorf("unmarshal field structured_output: %w", err)
				}
			}
		case runsummary.FieldErrorCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_code", values[i])
			} else if value.Valid {
				_m.ErrorCode = new(string)
				*_m.ErrorCode = value.String
			}
		case runsummary.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case runsummary.FieldAgents:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field agents", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Agents); err != nil {
					return fmt.Errorf("unmarshal field agents: %w", err)
				}
			}
		case runsummary.FieldNodeHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field node_history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.NodeHistory); err != nil {
					return fmt.Errorf("unmarshal field node_history: %w", err)
				}
			}
		case runsummary.FieldExecutionOrder:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field execution_order", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExecutionOrder); err != nil {
					return fmt.Errorf("unmarshal field execution_order: %w", err)
				}
			}
		case runsummary.FieldInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_tokens", values[i])
			} else if value.Valid {
				_m.InputTokens = int(value.Int64)
			}
		case runsummary.FieldOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_tokens", values[i])
			} else if value.Valid {
				_m.OutputTokens = int(value.Int64)
			}
		case runsummary.FieldTotalTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tokens", values[i])
			} else if value.Valid {
				_m.TotalTokens = int(value.Int64)
			}
		case runsummary.FieldToolUseCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tool_use_count", values[i])
			} else if value.Valid {
				_m.ToolUseCount = int(value.Int64)
			}
		case runsummary.FieldNodeStartCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field node_start_count", values[i])
			} else if value.Valid {
				_m.NodeStartCount = int(value.Int64)
			}
		case runsummary.FieldExecutionTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field execution_time_ms", values[i])
			} else if value.Valid {
				_m.ExecutionTimeMs = value.Int64
			}
		case runsummary.FieldEstimatedCostUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_cost_usd", values[i])
			} else if value.Valid {
				_m.EstimatedCostUsd = value.Float64
			}
		case runsummary.FieldRiskScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field risk_score", values[i])
			} else if value.Valid {
				_m.RiskScore = value.Float64
			}
		case runsummary.FieldAnomaly:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field anomaly", values[i])
			} else if value.Valid {
				_m.Anomaly = value.Bool
			}
		case runsummary.FieldClientDisconnected:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field client_disconnected", values[i])
			} else if value.Valid {
				_m.ClientDisconnected = value.Bool
			}
		case runsummary.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case runsummary.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case runsummary.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RunSummary.
// This includes values selected through modifiers, order, etc.
func (_m *RunSummary) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvents queries the "events" edge of the RunSummary entity.
func (_m *RunSummary) QueryEvents() *RunEventQuery {
	return NewRunSummaryClient(_m.config).QueryEvents(_m)
}

// QueryNodeMetrics queries the "node_metrics" edge of the RunSummary entity.
func (_m *RunSummary) QueryNodeMetrics() *RunNodeMetricQuery {
	return NewRunSummaryClient(_m.config).QueryNodeMetrics(_m)
}

// QueryTelemetry queries the "telemetry" edge of the RunSummary entity.
func (_m *RunSummary) QueryTelemetry() *RunTelemetryQuery {
	return NewRunSummaryClient(_m.config).QueryTelemetry(_m)
}

// Update returns a builder for updating this RunSummary.
// Note that you need to call RunSummary.Unwrap() before calling this method if this RunSummary
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RunSummary) Update() *RunSummaryUpdateOne {
	return NewRunSummaryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RunSummary entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RunSummary) Unwrap() *RunSummary {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RunSummary is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RunSummary) String() string {
	var builder strings.Builder
	builder.WriteString("RunSummary(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mode))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	if v := _m.SessionID; v != nil {
		builder.WriteString("session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PresetKey; v != nil {
		builder.WriteString("preset_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StructuredOutputSchema; v != nil {
		builder.WriteString("structured_output_schema=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ModelID; v != nil {
		builder.WriteString("model_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ResultText; v != nil {
		builder.WriteString("result_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("structured_output=")
	builder.WriteString(fmt.Sprintf("%v", _m.StructuredOutput))
	builder.WriteString(", ")
	if v := _m.ErrorCode; v != nil {
		builder.WriteString("error_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("agents=")
	builder.WriteString(fmt.Sprintf("%v", _m.Agents))
	builder.WriteString(", ")
	builder.WriteString("node_history=")
	builder.WriteString(fmt.Sprintf("%v", _m.NodeHistory))
	builder.WriteString(", ")
	builder.WriteString("execution_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecutionOrder))
	builder.WriteString(", ")
	builder.WriteString("input_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputTokens))
	builder.WriteString(", ")
	builder.WriteString("output_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputTokens))
	builder.WriteString(", ")
	builder.WriteString("total_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTokens))
	builder.WriteString(", ")
	builder.WriteString("tool_use_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToolUseCount))
	builder.WriteString(", ")
	builder.WriteString("node_start_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.NodeStartCount))
	builder.WriteString(", ")
	builder.WriteString("execution_time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecutionTimeMs))
	builder.WriteString(", ")
	builder.WriteString("estimated_cost_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedCostUsd))
	builder.WriteString(", ")
	builder.WriteString("risk_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskScore))
	builder.WriteString(", ")
	builder.WriteString("anomaly=")
	builder.WriteString(fmt.Sprintf("%v", _m.Anomaly))
	builder.WriteString(", ")
	builder.WriteString("client_disconnected=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClientDisconnected))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// RunSummaries is a parsable slice of RunSummary.
type RunSummaries []*RunSummary
