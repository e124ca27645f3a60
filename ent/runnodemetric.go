// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentfleet/agentfleet/ent/runnodemetric"
	"github.com/agentfleet/agentfleet/ent/runsummary"
)

// RunNodeMetric is the model entity for the RunNodeMetric schema.
type RunNodeMetric struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// NodeID holds the value of the "node_id" field.
	NodeID string `json:"node_id,omitempty"`
	// Last observed node status
	Status string `json:"status,omitempty"`
	// InputTokens holds the value of the "input_tokens" field.
	InputTokens int `json:"input_tokens,omitempty"`
	// OutputTokens holds the value of the "output_tokens" field.
	OutputTokens int `json:"output_tokens,omitempty"`
	// TotalTokens holds the value of the "total_tokens" field.
	TotalTokens int `json:"total_tokens,omitempty"`
	// ExecutionCount holds the value of the "execution_count" field.
	ExecutionCount int `json:"execution_count,omitempty"`
	// All stream events seen, including ones past the persistence cap
	StreamEventCount int `json:"stream_event_count,omitempty"`
	// CaptureCapped holds the value of the "capture_capped" field.
	CaptureCapped bool `json:"capture_capped,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs int64 `json:"duration_ms,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RunNodeMetricQuery when eager-loading is set.
	Edges        RunNodeMetricEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RunNodeMetricEdges holds the relations/edges for other nodes in the graph.
type RunNodeMetricEdges struct {
	// Run holds the value of the run edge.
	Run *RunSummary `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RunNodeMetricEdges) RunOrErr() (*RunSummary, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: runsummary.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RunNodeMetric) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case runnodemetric.FieldCaptureCapped:
			values[i] = new(sql.NullBool)
		case runnodemetric.FieldID, runnodemetric.FieldInputTokens, runnodemetric.FieldOutputTokens, runnodemetric.FieldTotalTokens, runnodemetric.FieldExecutionCount, runnodemetric.FieldStreamEventCount, runnodemetric.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case runnodemetric.FieldRunID, runnodemetric.FieldNodeID, runnodemetric.FieldStatus:
			values[i] = new(sql.NullString)
		case runnodemetric.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RunNodeMetric fields.
func (_m *RunNodeMetric) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case runnodemetric.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case runnodemetric.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case runnodemetric.FieldNodeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field node_id", values[i])
			} else if value.Valid {
				_m.NodeID = value.String
			}
		case runnodemetric.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case runnodemetric.FieldInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_tokens", values[i])
			} else if value.Valid {
				_m.InputTokens = int(value.Int64)
			}
		case runnodemetric.FieldOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_tokens", values[i])
			} else if value.Valid {
				_m.OutputTokens = int(value.Int64)
			}
		case runnodemetric.FieldTotalTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tokens", values[i])
			} else if value.Valid {
				_m.TotalTokens = int(value.Int64)
			}
		case runnodemetric.FieldExecutionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field execution_count", values[i])
			} else if value.Valid {
				_m.ExecutionCount = int(value.Int64)
			}
		case runnodemetric.FieldStreamEventCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stream_event_count", values[i])
			} else if value.Valid {
				_m.StreamEventCount = int(value.Int64)
			}
		case runnodemetric.FieldCaptureCapped:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field capture_capped", values[i])
			} else if value.Valid {
				_m.CaptureCapped = value.Bool
			}
		case runnodemetric.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		case runnodemetric.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RunNodeMetric.
// This includes values selected through modifiers, order, etc.
func (_m *RunNodeMetric) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the RunNodeMetric entity.
func (_m *RunNodeMetric) QueryRun() *RunSummaryQuery {
	return NewRunNodeMetricClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this RunNodeMetric.
// Note that you need to call RunNodeMetric.Unwrap() before calling this method if this RunNodeMetric
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RunNodeMetric) Update() *RunNodeMetricUpdateOne {
	return NewRunNodeMetricClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RunNodeMetric entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RunNodeMetric) Unwrap() *RunNodeMetric {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RunNodeMetric is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RunNodeMetric) String() string {
	var builder strings.Builder
	builder.WriteString("RunNodeMetric(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("node_id=")
	builder.WriteString(_m.NodeID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
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
	builder.WriteString("execution_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecutionCount))
	builder.WriteString(", ")
	builder.WriteString("stream_event_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.StreamEventCount))
	builder.WriteString(", ")
	builder.WriteString("capture_capped=")
	builder.WriteString(fmt.Sprintf("%v", _m.CaptureCapped))
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RunNodeMetrics is a parsable slice of RunNodeMetric.
type RunNodeMetrics []*RunNodeMetric
