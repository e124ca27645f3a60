// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentfleet/agentfleet/ent/runevent"
	"github.com/agentfleet/agentfleet/ent/runnodemetric"
	"github.com/agentfleet/agentfleet/ent/runsummary"
	"github.com/agentfleet/agentfleet/ent/runtelemetry"
)

// RunSummaryCreate is the builder for creating a RunSummary entity.
type RunSummaryCreate struct {
	config
	mutation *RunSummaryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetMode sets the "mode" field.
func (_c *RunSummaryCreate) SetMode(v runsummary.Mode) *RunSummaryCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RunSummaryCreate) SetStatus(v runsummary.Status) *RunSummaryCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RunSummaryCreate) SetNillableStatus(v *runsummary.Status) *RunSummaryCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *RunSummaryCreate) SetPrompt(v string) *RunSummaryCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *RunSummaryCreate) SetSessionID(v string) *RunSummaryCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *RunSummaryCreate) SetNillableSessionID(v *string) *RunSummaryCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetPresetKey sets the "preset_key" field.
func (_c *RunSummaryCreate) SetPresetKey(v string) *RunSummaryCreate {
	_c.mutation.SetPresetKey(v)
	return _c
}

// SetNillablePresetKey sets the "preset_key" field if the given value is not nil.
func (_c *RunSummaryCreate) SetNillablePresetKey(v *string) *RunSummaryCreate {
	if v != nil {
		_c.SetPresetKey(*v)
	}
	return _c
}

// SetStructuredOutputSchema sets the "structured_output_schema" field.
func (_c *RunSummaryCreate) SetStructuredOutputSchema(v string) *RunSummaryCreate {
	_c.mutation.SetStructuredOutputSchema(v)
	return _c
}

// SetNillableStructuredOutputSchema sets the "structured_output_schema" field if the given value is not nil.
func (_c *RunSummaryCreate) SetNillableStructuredOutputSchema(v *string) *RunSummaryCreate {
	if v != nil {
		_c.SetStructuredOutputSchema(*v)
	}
	return _c
}

// SetModelID sets the "model_id" field.
func (_c *RunSummaryCreate) SetModelID(v string) *RunSummaryCreate {
	_c.mutation.SetModelID(v)
	return _c
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_c *RunSummaryCreate) SetNillableModelID(v *string) *RunSummaryCreate {
	if v != nil {
		_c.SetModelID(*v)
	}
	return _c
}

// SetResultText sets the "result_text" field.
func (_c *RunSummaryCreate) SetResultText(v string) *RunSummaryCreate {
	_c.mutation.SetResultText(v)
	return _c
}

// SetNillableResultText sets the "result_text" field if the given value is not nil.
func (_c *RunSummaryCreate) SetNillableResultText(v *string) *RunSummaryCreate {
	if v != nil {
		_c.SetResultText(*v)
	}
	return _c
}

// SetStructuredOutput sets the "structured_output" field.
func (_c *RunSummaryCreate) SetStructuredOutput(v map[string]interface{}) *RunSummaryCreate {
	_c.mutation.SetStructuredOutput(v)
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *RunSummaryCreate) SetErrorCode(v string) *RunSummaryCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *RunSummaryCreate) SetNillableErrorCode(v *string) *RunSummaryCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *RunSummaryCreate) SetErrorMessage(v string) *RunSummaryCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *RunSummaryCreate) SetNillableErrorMessage(v *string) *RunSummaryCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetAgents sets the "agents" field.
func (_c *RunSummaryCreate) SetAgents(v []string) *RunSummaryCreate {
	_c.mutation.SetAgents(v)
	return _c
}

// SetNodeHistory sets the "node_history" field.
func (_c *RunSummaryCreate) SetNodeHistory(v []string) *RunSummaryCreate {
	_c.mutation.SetNodeHistory(v)
	return _c
}

// SetExecutionOrder sets the "execution_order" field.
func (_c *RunSummaryCreate) SetExecutionOrder(v []string) *RunSummaryCreate {
	_c.mutation.SetExecutionOrder(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *RunSummaryCreate) SetInputTokens(v int) *RunSummaryCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *RunSummaryCreate) SetNillableInputTokens(v *int) *RunSummaryCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *RunSummaryCreate) SetOutputTokens(v int) *RunSummaryCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *RunSummaryCreate) SetNillableOutputTokens(v *int) *RunSummaryCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *RunSummaryCreate) SetTotalTokens(v int) *RunSummaryCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *RunSummaryCreate) SetNillableTotalTokens(v *int) *RunSummaryCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetToolUseCount sets the "tool_use_count" field.
func (_c *RunSummaryCreate) SetToolUseCount(v int) *RunSummaryCreate {
	_c.mutation.SetToolUseCount(v)
	return _c
}

// SetNillableToolUseCount sets the "tool_use_count" field if the given value is not nil.
func (_c *RunSummaryCreate) SetNillableToolUseCount(v *int) *RunSummaryCreate {
	if v != nil {
		_c.SetToolUseCount(*v)
	}
	return _c
}

// SetNodeStartCount sets the "node_start_count" field.
func (_c *RunSummaryCreate) SetNodeStartCount(v int) *RunSummaryCreate {
	_c.mutation.SetNodeStartCount(v)
	return _c
}

// SetNillableNodeStartCount sets the "node_start_count" field if the given value is not nil.
func (_c *RunSummaryCreate) SetNillableNodeStartCount(v *int) *RunSummaryCreate {
	if v != nil {
		_c.SetNodeStartCount(*v)
	}
	return _c
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_c *RunSummaryCreate) SetExecutionTimeMs(v int64) *RunSummaryCreate {
	_c.mutation.SetExecutionTimeMs(v)
	return _c
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_c *RunSummaryCreate) SetNillableExecutionTimeMs(v *int64) *RunSummaryCreate {
	if v != nil {
		_c.SetExecutionTimeMs(*v)
	}
	return _c
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (_c *RunSummaryCreate) SetEstimatedCostUsd(v float64) *RunSummaryCreate {
	_c.mutation.SetEstimatedCostUsd(v)
	return _c
}

// SetNillableEstimatedCostUsd sets the "estimated_cost_usd" field if the given value is not nil.
func (_c *RunSummaryCreate) SetNillableEstimatedCostUsd(v *float64) *RunSummaryCreate {
	if v != nil {
		_c.SetEstimatedCostUsd(*v)
	}
	return _c
}

// SetRiskScore sets the "risk_score" field.
func (_c *RunSummaryCreate) SetRiskScore(v float64) *RunSummaryCreate {
	_c.mutation.SetRiskScore(v)
	return _c
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_c *RunSummaryCreate) SetNillableRiskScore(v *float64) *RunSummaryCreate {
	if v != nil {
		_c.SetRiskScore(*v)
	}
	return _c
}

// SetAnomaly sets the "anomaly" field.
func (_c *RunSummaryCreate) SetAnomaly(v bool) *RunSummaryCreate {
	_c.mutation.SetAnomaly(v)
	return _c
}

// SetNillableAnomaly sets the "anomaly" field if the given value is not nil.
func (_c *RunSummaryCreate) SetNillableAnomaly(v *bool) *RunSummaryCreate {
	if v != nil {
		_c.SetAnomaly(*v)
	}
	return _c
}

// SetClientDisconnected sets the "client_disconnected" field.
func (_c *RunSummaryCreate) SetClientDisconnected(v bool) *RunSummaryCreate {
	_c.mutation.SetClientDisconnected(v)
	return _c
}

// SetNillableClientDisconnected sets the "client_disconnected" field if the given value is not nil.
func (_c *RunSummaryCreate) SetNillableClientDisconnected(v *bool) *RunSummaryCreate {
	if v != nil {
		_c.SetClientDisconnected(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunSummaryCreate) SetCreatedAt(v time.Time) *RunSummaryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunSummaryCreate) SetNillableCreatedAt(v *time.Time) *RunSummaryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *RunSummaryCreate) SetCompletedAt(v time.Time) *RunSummaryCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *RunSummaryCreate) SetNillableCompletedAt(v *time.Time) *RunSummaryCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *RunSummaryCreate) SetDeletedAt(v time.Time) *RunSummaryCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *RunSummaryCreate) SetNillableDeletedAt(v *time.Time) *RunSummaryCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunSummaryCreate) SetID(v string) *RunSummaryCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddEventIDs adds the "events" edge to the RunEvent entity by IDs.
func (_c *RunSummaryCreate) AddEventIDs(ids ...int) *RunSummaryCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the RunEvent entity.
func (_c *RunSummaryCreate) AddEvents(v ...*RunEvent) *RunSummaryCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddNodeMetricIDs adds the "node_metrics" edge to the RunNodeMetric entity by IDs.
func (_c *RunSummaryCreate) AddNodeMetricIDs(ids ...int) *RunSummaryCreate {
	_c.mutation.AddNodeMetricIDs(ids...)
	return _c
}

// AddNodeMetrics adds the "node_metrics" edges to the RunNodeMetric entity.
func (_c *RunSummaryCreate) AddNodeMetrics(v ...*RunNodeMetric) *RunSummaryCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddNodeMetricIDs(ids...)
}

// AddTelemetryIDs adds the "telemetry" edge to the RunTelemetry entity by IDs.
func (_c *RunSummaryCreate) AddTelemetryIDs(ids ...int) *RunSummaryCreate {
	_c.mutation.AddTelemetryIDs(ids...)
	return _c
}

// AddTelemetry adds the "telemetry" edges to the RunTelemetry entity.
func (_c *RunSummaryCreate) AddTelemetry(v ...*RunTelemetry) *RunSummaryCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTelemetryIDs(ids...)
}

// Mutation returns the RunSummaryMutation object of the builder.
func (_c *RunSummaryCreate) Mutation() *RunSummaryMutation {
	return _c.mutation
}

// Save creates the RunSummary in the database.
func (_c *RunSummaryCreate) Save(ctx context.Context) (*RunSummary, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunSummaryCreate) SaveX(ctx context.Context) *RunSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunSummaryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunSummaryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunSummaryCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := runsummary.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := runsummary.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := runsummary.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		v := runsummary.DefaultTotalTokens
		_c.mutation.SetTotalTokens(v)
	}
	if _, ok := _c.mutation.ToolUseCount(); !ok {
		v := runsummary.DefaultToolUseCount
		_c.mutation.SetToolUseCount(v)
	}
	if _, ok := _c.mutation.NodeStartCount(); !ok {
		v := runsummary.DefaultNodeStartCount
		_c.mutation.SetNodeStartCount(v)
	}
	if _, ok := _c.mutation.ExecutionTimeMs(); !ok {
		v := runsummary.DefaultExecutionTimeMs
		_c.mutation.SetExecutionTimeMs(v)
	}
	if _, ok := _c.mutation.EstimatedCostUsd(); !ok {
		v := runsummary.DefaultEstimatedCostUsd
		_c.mutation.SetEstimatedCostUsd(v)
	}
	if _, ok := _c.mutation.RiskScore(); !ok {
		v := runsummary.DefaultRiskScore
		_c.mutation.SetRiskScore(v)
	}
	if _, ok := _c.mutation.Anomaly(); !ok {
		v := runsummary.DefaultAnomaly
		_c.mutation.SetAnomaly(v)
	}
	if _, ok := _c.mutation.ClientDisconnected(); !ok {
		v := runsummary.DefaultClientDisconnected
		_c.mutation.SetClientDisconnected(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := runsummary.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunSummaryCreate) check() error {
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "RunSummary.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := runsummary.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "RunSummary.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RunSummary.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := runsummary.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RunSummary.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "RunSummary.prompt"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "RunSummary.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "RunSummary.output_tokens"`)}
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		return &ValidationError{Name: "total_tokens", err: errors.New(`ent: missing required field "RunSummary.total_tokens"`)}
	}
	if _, ok := _c.mutation.ToolUseCount(); !ok {
		return &ValidationError{Name: "tool_use_count", err: errors.New(`ent: missing required field "RunSummary.tool_use_count"`)}
	}
	if _, ok := _c.mutation.NodeStartCount(); !ok {
		return &ValidationError{Name: "node_start_count", err: errors.New(`ent: missing required field "RunSummary.node_start_count"`)}
	}
	if _, ok := _c.mutation.ExecutionTimeMs(); !ok {
		return &ValidationError{Name: "execution_time_ms", err: errors.New(`ent: missing required field "RunSummary.execution_time_ms"`)}
	}
	if _, ok := _c.mutation.EstimatedCostUsd(); !ok {
		return &ValidationError{Name: "estimated_cost_usd", err: errors.New(`ent: missing required field "RunSummary.estimated_cost_usd"`)}
	}
	if _, ok := _c.mutation.RiskScore(); !ok {
		return &ValidationError{Name: "risk_score", err: errors.New(`ent: missing required field "RunSummary.risk_score"`)}
	}
	if _, ok := _c.mutation.Anomaly(); !ok {
		return &ValidationError{Name: "anomaly", err: errors.New(`ent: missing required field "RunSummary.anomaly"`)}
	}
	if _, ok := _c.mutation.ClientDisconnected(); !ok {
		return &ValidationError{Name: "client_disconnected", err: errors.New(`ent: missing required field "RunSummary.client_disconnected"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RunSummary.created_at"`)}
	}
	return nil
}

func (_c *RunSummaryCreate) sqlSave(ctx context.Context) (*RunSummary, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected RunSummary.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunSummaryCreate) createSpec() (*RunSummary, *sqlgraph.CreateSpec) {
	var (
		_node = &RunSummary{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(runsummary.Table, sqlgraph.NewFieldSpec(runsummary.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(runsummary.FieldMode, field.TypeEnum, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(runsummary.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(runsummary.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(runsummary.FieldSessionID, field.TypeString, value)
		_node.SessionID = &value
	}
	if value, ok := _c.mutation.PresetKey(); ok {
		_spec.SetField(runsummary.FieldPresetKey, field.TypeString, value)
		_node.PresetKey = &value
	}
	if value, ok := _c.mutation.StructuredOutputSchema(); ok {
		_spec.SetField(runsummary.FieldStructuredOutputSchema, field.TypeString, value)
		_node.StructuredOutputSchema = &value
	}
	if value, ok := _c.mutation.ModelID(); ok {
		_spec.SetField(runsummary.FieldModelID, field.TypeString, value)
		_node.ModelID = &value
	}
	if value, ok := _c.mutation.ResultText(); ok {
		_spec.SetField(runsummary.FieldResultText, field.TypeString, value)
		_node.ResultText = &value
	}
	if value, ok := _c.mutation.StructuredOutput(); ok {
		_spec.SetField(runsummary.FieldStructuredOutput, field.TypeJSON, value)
		_node.StructuredOutput = value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(runsummary.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(runsummary.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Agents(); ok {
		_spec.SetField(runsummary.FieldAgents, field.TypeJSON, value)
		_node.Agents = value
	}
	if value, ok := _c.mutation.NodeHistory(); ok {
		_spec.SetField(runsummary.FieldNodeHistory, field.TypeJSON, value)
		_node.NodeHistory = value
	}
	if value, ok := _c.mutation.ExecutionOrder(); ok {
		_spec.SetField(runsummary.FieldExecutionOrder, field.TypeJSON, value)
		_node.ExecutionOrder = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(runsummary.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(runsummary.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(runsummary.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = value
	}
	if value, ok := _c.mutation.ToolUseCount(); ok {
		_spec.SetField(runsummary.FieldToolUseCount, field.TypeInt, value)
		_node.ToolUseCount = value
	}
	if value, ok := _c.mutation.NodeStartCount(); ok {
		_spec.SetField(runsummary.FieldNodeStartCount, field.TypeInt, value)
		_node.NodeStartCount = value
	}
	if value, ok := _c.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(runsummary.FieldExecutionTimeMs, field.TypeInt64, value)
		_node.ExecutionTimeMs = value
	}
	if value, ok := _c.mutation.EstimatedCostUsd(); ok {
		_spec.SetField(runsummary.FieldEstimatedCostUsd, field.TypeFloat64, value)
		_node.EstimatedCostUsd = value
	}
	if value, ok := _c.mutation.RiskScore(); ok {
		_spec.SetField(runsummary.FieldRiskScore, field.TypeFloat64, value)
		_node.RiskScore = value
	}
	if value, ok := _c.mutation.Anomaly(); ok {
		_spec.SetField(runsummary.FieldAnomaly, field.TypeBool, value)
		_node.Anomaly = value
	}
	if value, ok := _c.mutation.ClientDisconnected(); ok {
		_spec.SetField(runsummary.FieldClientDisconnected, field.TypeBool, value)
		_node.ClientDisconnected = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(runsummary.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(runsummary.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(runsummary.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   runsummary.EventsTable,
			Columns: []string{runsummary.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.NodeMetricsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   runsummary.NodeMetricsTable,
			Columns: []string{runsummary.NodeMetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runnodemetric.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TelemetryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   runsummary.TelemetryTable,
			Columns: []string{runsummary.TelemetryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runtelemetry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RunSummary.Create().
//		SetMode(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunSummaryUpsert) {
//			SetMode(v+v).
//		}).
//		Exec(ctx)
func (_c *RunSummaryCreate) OnConflict(opts ...sql.ConflictOption) *RunSummaryUpsertOne {
	_c.conflict = opts
	return &RunSummaryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RunSummary.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunSummaryCreate) OnConflictColumns(columns ...string) *RunSummaryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunSummaryUpsertOne{
		create: _c,
	}
}

type (
	// RunSummaryUpsertOne is the builder for "upsert"-ing
	//  one RunSummary node.
	RunSummaryUpsertOne struct {
		create *RunSummaryCreate
	}

	// RunSummaryUpsert is the "OnConflict" setter.
	RunSummaryUpsert struct {
		*sql.UpdateSet
	}
)

// SetMode sets the "mode" field.
func (u *RunSummaryUpsert) SetMode(v runsummary.Mode) *RunSummaryUpsert {
	u.Set(runsummary.FieldMode, v)
	return u
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *RunSummaryUpsert) UpdateMode() *RunSummaryUpsert {
	u.SetExcluded(runsummary.FieldMode)
	return u
}

// SetStatus sets the "status" field.
func (u *RunSummaryUpsert) SetStatus(v runsummary.Status) *RunSummaryUpsert {
	u.Set(runsummary.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RunSummaryUpsert) UpdateStatus() *RunSummaryUpsert {
	u.SetExcluded(runsummary.FieldStatus)
	return u
}

// SetPrompt sets the "prompt" field.
func (u *RunSummaryUpsert) SetPrompt(v string) *RunSummaryUpsert {
	u.Set(runsummary.FieldPrompt, v)
	return u
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *RunSummaryUpsert) UpdatePrompt() *RunSummaryUpsert {
	u.SetExcluded(runsummary.FieldPrompt)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *RunSummaryUpsert) SetSessionID(v string) *RunSummaryUpsert {
	u.Set(runsummary.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *RunSummaryUpsert) UpdateSessionID() *RunSummaryUpsert {
	u.SetExcluded(runsummary.FieldSessionID)
	return u
}

// ClearSessionID clears the value of the "session_id" field.
func (u *RunSummaryUpsert) ClearSessionID() *RunSummaryUpsert {
	u.SetNull(runsummary.FieldSessionID)
	return u
}

// SetPresetKey sets the "preset_key" field.
func (u *RunSummaryUpsert) SetPresetKey(v string) *RunSummaryUpsert {
	u.Set(runsummary.FieldPresetKey, v)
	return u
}

// UpdatePresetKey sets the "preset_key" field to the value that was provided on create.
func (u *RunSummaryUpsert) UpdatePresetKey() *RunSummaryUpsert {
	u.SetExcluded(runsummary.FieldPresetKey)
	return u
}

// ClearPresetKey clears the value of the "preset_key" field.
func (u *RunSummaryUpsert) ClearPresetKey() *RunSummaryUpsert {
	u.SetNull(runsummary.FieldPresetKey)
	return u
}

// SetStructuredOutputSchema sets the "structured_output_schema" field.
func (u *RunSummaryUpsert) SetStructuredOutputSchema(v string) *RunSummaryUpsert {
	u.Set(runsummary.FieldStructuredOutputSchema, v)
	return u
}

// UpdateStructuredOutputSchema sets the "structured_output_schema" field to the value that was provided on create.
func (u *RunSummaryUpsert) UpdateStructuredOutputSchema() *RunSummaryUpsert {
	u.SetExcluded(runsummary.FieldStructuredOutputSchema)
	return u
}

// ClearStructuredOutputSchema clears the value of the "structured_output_schema" field.
func (u *RunSummaryUpsert) ClearStructuredOutputSchema() *RunSummaryUpsert {
	u.SetNull(runsummary.FieldStructuredOutputSchema)
	return u
}

// SetModelID sets the "model_id" field.
func (u *RunSummaryUpsert) SetModelID(v string) *RunSummaryUpsert {
	u.Set(runsummary.FieldModelID, v)
	return u
}

// UpdateModelID sets the "model_id" field to the value that was provided on create.
func (u *RunSummaryUpsert) UpdateModelID() *RunSummaryUpsert {
	u.SetExcluded(runsummary.FieldModelID)
	return u
}

// ClearModelID clears the value of the "model_id" field.
func (u *RunSummaryUpsert) ClearModelID() *RunSummaryUpsert {
	u.SetNull(runsummary.FieldModelID)
	return u
}

// SetResultText sets the "result_text" field.
func (u *RunSummaryUpsert) SetResultText(v string) *RunSummaryUpsert {
	u.Set(runsummary.FieldResultText, v)
	return u
}

// UpdateResultText sets the "result_text" field to the value that was provided on create.
func (u *RunSummaryUpsert) UpdateResultText() *RunSummaryUpsert {
	u.SetExcluded(runsummary.FieldResultText)
	return u
}

// ClearResultText clears the value of the "result_text" field.
func (u *RunSummaryUpsert) ClearResultText() *RunSummaryUpsert {
	u.SetNull(runsummary.FieldResultText)
	return u
}

// SetStructuredOutput sets the "structured_output" field.
func (u *RunSummaryUpsert) SetStructuredOutput(v map[string]interface{}) *RunSummaryUpsert {
	u.Set(runsummary.FieldStructuredOutput, v)
	return u
}

// UpdateStructuredOutput sets the "structured_output" field to the value that was provided on create.
func (u *RunSummaryUpsert) UpdateStructuredOutput() *RunSummaryUpsert {
	u.SetExcluded(runsummary.FieldStructuredOutput)
	return u
}

// ClearStructuredOutput clears the value of the "structured_output" field.
func (u *RunSummaryUpsert) ClearStructuredOutput() *RunSummaryUpsert {
	u.SetNull(runsummary.FieldStructuredOutput)
	return u
}

// SetErrorCode sets the "error_code" field.
func (u *RunSummaryUpsert) SetErrorCode(v string) *RunSummaryUpsert {
	u.Set(runsummary.FieldErrorCode, v)
	return u
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *RunSummaryUpsert) UpdateErrorCode() *RunSummaryUpsert {
	u.SetExcluded(runsummary.FieldErrorCode)
	return u
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *RunSummaryUpsert) ClearErrorCode() *RunSummaryUpsert {
	u.SetNull(runsummary.FieldErrorCode)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *RunSummaryUpsert) SetErrorMessage(v string) *RunSummaryUpsert {
	u.Set(runsummary.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *RunSummaryUpsert) UpdateErrorMessage() *RunSummaryUpsert {
	u.SetExcluded(runsummary.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *RunSummaryUpsert) ClearErrorMessage() *RunSummaryUpsert {
	u.SetNull(runsummary.FieldErrorMessage)
	return u
}

// SetAgents sets the "agents" field.
func (u *RunSummaryUpsert) SetAgents(v []string) *RunSummaryUpsert {
	u.Set(runsummary.FieldAgents, v)
	return u
}

// UpdateAgents sets the "agents" field to the value that was provided on create.
func (u *RunSummaryUpsert) UpdateAgents() *RunSummaryUpsert {
	u.SetExcluded(runsummary.FieldAgents)
	return u
}

// ClearAgents clears the value of the "agents" field.
func (u *RunSummaryUpsert) ClearAgents() *RunSummaryUpsert {
	u.SetNull(runsummary.FieldAgents)
	return u
}

// SetNodeHistory sets the "node_history" field.
func (u *RunSummaryUpsert) SetNodeHistory(v []string) *RunSummaryUpsert {
	u.Set(runsummary.FieldNodeHistory, v)
	return u
}

// UpdateNodeHistory sets the "node_history" field to the value that was provided on create.
func (u *RunSummaryUpsert) UpdateNodeHistory() *RunSummaryUpsert {
	u.SetExcluded(runsummary.FieldNodeHistory)
	return u
}

// ClearNodeHistory clears the value of the "node_history" field.
func (u *RunSummaryUpsert) ClearNodeHistory() *RunSummaryUpsert {
	u.SetNull(runsummary.FieldNodeHistory)
	return u
}

// SetExecutionOrder sets the "execution_order" field.
func (u *RunSummaryUpsert) SetExecutionOrder(v []string) *RunSummaryUpsert {
	u.Set(runsummary.FieldExecutionOrder, v)
	return u
}

// UpdateExecutionOrder sets the "execution_order" field to the value that was provided on create.
func (u *RunSummaryUpsert) UpdateExecutionOrder() *RunSummaryUpsert {
	u.SetExcluded(runsummary.FieldExecutionOrder)
	return u
}

// ClearExecutionOrder clears the value of the "execution_order" field.
func (u *RunSummaryUpsert) ClearExecutionOrder() *RunSummaryUpsert {
	u.SetNull(runsummary.FieldExecutionOrder)
	return u
}

// SetInputTokens sets the "input_tokens" field.
func (u *RunSummaryUpsert) SetInputTokens(v int) *RunSummaryUpsert {
	u.Set(runsummary.FieldInputTokens, v)
	return u
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *RunSummaryUpsert) UpdateInputTokens() *RunSummaryUpsert {
	u.SetExcluded(runsummary.FieldInputTokens)
	return u
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *RunSummaryUpsert) AddInputTokens(v int) *RunSummaryUpsert {
	u.Add(runsummary.FieldInputTokens, v)
	return u
}

// SetOutputTokens sets the "output_tokens" field.
func (u *RunSummaryUpsert) SetOutputTokens(v int) *RunSummaryUpsert {
	u.Set(runsummary.FieldOutputTokens, v)
	return u
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *RunSummaryUpsert) UpdateOutputTokens() *RunSummaryUpsert {
	u.SetExcluded(runsummary.FieldOutputTokens)
	return u
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *RunSummaryUpsert) AddOutputTokens(v int) *RunSummaryUpsert {
	u.Add(runsummary.FieldOutputTokens, v)
	return u
}

// SetTotalTokens sets the "total_tokens" field.
func (u *RunSummaryUpsert) SetTotalTokens(v int) *RunSummaryUpsert {
	u.Set(runsummary.FieldTotalTokens, v)
	return u
}

// UpdateTotalTokens sets the "total_tokens" field to the value that was provided on create.
func (u *RunSummaryUpsert) UpdateTotalTokens() *RunSummaryUpsert {
	u.SetExcluded(runsummary.FieldTotalTokens)
	return u
}

// AddTotalTokens adds v to the "total_tokens" field.
func (u *RunSummaryUpsert) AddTotalTokens(v int) *RunSummaryUpsert {
	u.Add(runsummary.FieldTotalTokens, v)
	return u
}

// SetToolUseCount sets the "tool_use_count" field.
func (u *RunSummaryUpsert) SetToolUseCount(v int) *RunSummaryUpsert {
	u.Set(runsummary.FieldToolUseCount, v)
	return u
}

// UpdateToolUseCount sets the "tool_use_count" field to the value that was provided on create.
func (u *RunSummaryUpsert) UpdateToolUseCount() *RunSummaryUpsert {
	u.SetExcluded(runsummary.FieldToolUseCount)
	return u
}

// AddToolUseCount adds v to the "tool_use_count" field.
func (u *RunSummaryUpsert) AddToolUseCount(v int) *RunSummaryUpsert {
	u.Add(runsummary.FieldToolUseCount, v)
	return u
}

// SetNodeStartCount sets the "node_start_count" field.
func (u *RunSummaryUpsert) SetNodeStartCount(v int) *RunSummaryUpsert {
	u.Set(runsummary.FieldNodeStartCount, v)
	return u
}

// UpdateNodeStartCount sets the "node_start_count" field to the value that was provided on create.
func (u *RunSummaryUpsert) UpdateNodeStartCount() *RunSummaryUpsert {
	u.SetExcluded(runsummary.FieldNodeStartCount)
	return u
}

// AddNodeStartCount adds v to the "node_start_count" field.
func (u *RunSummaryUpsert) AddNodeStartCount(v int) *RunSummaryUpsert {
	u.Add(runsummary.FieldNodeStartCount, v)
	return u
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (u *RunSummaryUpsert) SetExecutionTimeMs(v int64) *RunSummaryUpsert {
	u.Set(runsummary.FieldExecutionTimeMs, v)
	return u
}

// UpdateExecutionTimeMs sets the "execution_time_ms" field to the value that was provided on create.
func (u *RunSummaryUpsert) UpdateExecutionTimeMs() *RunSummaryUpsert {
	u.SetExcluded(runsummary.FieldExecutionTimeMs)
	return u
}

// AddExecutionTimeMs adds v to the "execution_time_ms" field.
func (u *RunSummaryUpsert) AddExecutionTimeMs(v int64) *RunSummaryUpsert {
	u.Add(runsummary.FieldExecutionTimeMs, v)
	return u
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (u *RunSummaryUpsert) SetEstimatedCostUsd(v float64) *RunSummaryUpsert {
	u.Set(runsummary.FieldEstimatedCostUsd, v)
	return u
}

// UpdateEstimatedCostUsd sets the "estimated_cost_usd" field to the value that was provided on create.
func (u *RunSummaryUpsert) UpdateEstimatedCostUsd() *RunSummaryUpsert {
	u.SetExcluded(runsummary.FieldEstimatedCostUsd)
	return u
}

// AddEstimatedCostUsd adds v to the "estimated_cost_usd" field.
func (u *RunSummaryUpsert) AddEstimatedCostUsd(v float64) *RunSummaryUpsert {
	u.Add(runsummary.FieldEstimatedCostUsd, v)
	return u
}

// SetRiskScore sets the "risk_score" field.
func (u *RunSummaryUpsert) SetRiskScore(v float64) *RunSummaryUpsert {
	u.Set(runsummary.FieldRiskScore, v)
	return u
}

// UpdateRiskScore sets the "risk_score" field to the value that was provided on create.
func (u *RunSummaryUpsert) UpdateRiskScore() *RunSummaryUpsert {
	u.SetExcluded(runsummary.FieldRiskScore)
	return u
}

// AddRiskScore adds v to the "risk_score" field.
func (u *RunSummaryUpsert) AddRiskScore(v float64) *RunSummaryUpsert {
	u.Add(runsummary.FieldRiskScore, v)
	return u
}

// SetAnomaly sets the "anomaly" field.
func (u *RunSummaryUpsert) SetAnomaly(v bool) *RunSummaryUpsert {
	u.Set(runsummary.FieldAnomaly, v)
	return u
}

// UpdateAnomaly sets the "anomaly" field to the value that was provided on create.
func (u *RunSummaryUpsert) UpdateAnomaly() *RunSummaryUpsert {
	u.SetExcluded(runsummary.FieldAnomaly)
	return u
}

// SetClientDisconnected sets the "client_disconnected" field.
func (u *RunSummaryUpsert) SetClientDisconnected(v bool) *RunSummaryUpsert {
	u.Set(runsummary.FieldClientDisconnected, v)
	return u
}

// UpdateClientDisconnected sets the "client_disconnected" field to the value that was provided on create.
func (u *RunSummaryUpsert) UpdateClientDisconnected() *RunSummaryUpsert {
	u.SetExcluded(runsummary.FieldClientDisconnected)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *RunSummaryUpsert) SetCompletedAt(v time.Time) *RunSummaryUpsert {
	u.Set(runsummary.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *RunSummaryUpsert) UpdateCompletedAt() *RunSummaryUpsert {
	u.SetExcluded(runsummary.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *RunSummaryUpsert) ClearCompletedAt() *RunSummaryUpsert {
	u.SetNull(runsummary.FieldCompletedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *RunSummaryUpsert) SetDeletedAt(v time.Time) *RunSummaryUpsert {
	u.Set(runsummary.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *RunSummaryUpsert) UpdateDeletedAt() *RunSummaryUpsert {
	u.SetExcluded(runsummary.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *RunSummaryUpsert) ClearDeletedAt() *RunSummaryUpsert {
	u.SetNull(runsummary.FieldDeletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RunSummary.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(runsummary.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RunSummaryUpsertOne) UpdateNewValues() *RunSummaryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(runsummary.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(runsummary.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RunSummary.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RunSummaryUpsertOne) Ignore() *RunSummaryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunSummaryUpsertOne) DoNothing() *RunSummaryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunSummaryCreate.OnConflict
// documentation for more info.
func (u *RunSummaryUpsertOne) Update(set func(*RunSummaryUpsert)) *RunSummaryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunSummaryUpsert{UpdateSet: update})
	}))
	return u
}

// SetMode sets the "mode" field.
func (u *RunSummaryUpsertOne) SetMode(v runsummary.Mode) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetMode(v)
	})
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *RunSummaryUpsertOne) UpdateMode() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateMode()
	})
}

// SetStatus sets the "status" field.
func (u *RunSummaryUpsertOne) SetStatus(v runsummary.Status) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RunSummaryUpsertOne) UpdateStatus() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateStatus()
	})
}

// SetPrompt sets the "prompt" field.
func (u *RunSummaryUpsertOne) SetPrompt(v string) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *RunSummaryUpsertOne) UpdatePrompt() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdatePrompt()
	})
}

// SetSessionID sets the "session_id" field.
func (u *RunSummaryUpsertOne) SetSessionID(v string) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *RunSummaryUpsertOne) UpdateSessionID() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *RunSummaryUpsertOne) ClearSessionID() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.ClearSessionID()
	})
}

// SetPresetKey sets the "preset_key" field.
func (u *RunSummaryUpsertOne) SetPresetKey(v string) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetPresetKey(v)
	})
}

// UpdatePresetKey sets the "preset_key" field to the value that was provided on create.
func (u *RunSummaryUpsertOne) UpdatePresetKey() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdatePresetKey()
	})
}

// ClearPresetKey clears the value of the "preset_key" field.
func (u *RunSummaryUpsertOne) ClearPresetKey() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.ClearPresetKey()
	})
}

// SetStructuredOutputSchema sets the "structured_output_schema" field.
func (u *RunSummaryUpsertOne) SetStructuredOutputSchema(v string) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetStructuredOutputSchema(v)
	})
}

// UpdateStructuredOutputSchema sets the "structured_output_schema" field to the value that was provided on create.
func (u *RunSummaryUpsertOne) UpdateStructuredOutputSchema() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateStructuredOutputSchema()
	})
}

// ClearStructuredOutputSchema clears the value of the "structured_output_schema" field.
func (u *RunSummaryUpsertOne) ClearStructuredOutputSchema() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.ClearStructuredOutputSchema()
	})
}

// SetModelID sets the "model_id" field.
func (u *RunSummaryUpsertOne) SetModelID(v string) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetModelID(v)
	})
}

// UpdateModelID sets the "model_id" field to the value that was provided on create.
func (u *RunSummaryUpsertOne) UpdateModelID() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateModelID()
	})
}

// ClearModelID clears the value of the "model_id" field.
func (u *RunSummaryUpsertOne) ClearModelID() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.ClearModelID()
	})
}

// SetResultText sets the "result_text" field.
func (u *RunSummaryUpsertOne) SetResultText(v string) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetResultText(v)
	})
}

// UpdateResultText sets the "result_text" field to the value that was provided on create.
func (u *RunSummaryUpsertOne) UpdateResultText() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateResultText()
	})
}

// ClearResultText clears the value of the "result_text" field.
func (u *RunSummaryUpsertOne) ClearResultText() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.ClearResultText()
	})
}

// SetStructuredOutput sets the "structured_output" field.
func (u *RunSummaryUpsertOne) SetStructuredOutput(v map[string]interface{}) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetStructuredOutput(v)
	})
}

// UpdateStructuredOutput sets the "structured_output" field to the value that was provided on create.
func (u *RunSummaryUpsertOne) UpdateStructuredOutput() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateStructuredOutput()
	})
}

// ClearStructuredOutput clears the value of the "structured_output" field.
func (u *RunSummaryUpsertOne) ClearStructuredOutput() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.ClearStructuredOutput()
	})
}

// SetErrorCode sets the "error_code" field.
func (u *RunSummaryUpsertOne) SetErrorCode(v string) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetErrorCode(v)
	})
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *RunSummaryUpsertOne) UpdateErrorCode() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateErrorCode()
	})
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *RunSummaryUpsertOne) ClearErrorCode() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.ClearErrorCode()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *RunSummaryUpsertOne) SetErrorMessage(v string) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *RunSummaryUpsertOne) UpdateErrorMessage() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *RunSummaryUpsertOne) ClearErrorMessage() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.ClearErrorMessage()
	})
}

// SetAgents sets the "agents" field.
func (u *RunSummaryUpsertOne) SetAgents(v []string) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetAgents(v)
	})
}

// UpdateAgents sets the "agents" field to the value that was provided on create.
func (u *RunSummaryUpsertOne) UpdateAgents() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateAgents()
	})
}

// ClearAgents clears the value of the "agents" field.
func (u *RunSummaryUpsertOne) ClearAgents() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.ClearAgents()
	})
}

// SetNodeHistory sets the "node_history" field.
func (u *RunSummaryUpsertOne) SetNodeHistory(v []string) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetNodeHistory(v)
	})
}

// UpdateNodeHistory sets the "node_history" field to the value that was provided on create.
func (u *RunSummaryUpsertOne) UpdateNodeHistory() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateNodeHistory()
	})
}

// ClearNodeHistory clears the value of the "node_history" field.
func (u *RunSummaryUpsertOne) ClearNodeHistory() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.ClearNodeHistory()
	})
}

// SetExecutionOrder sets the "execution_order" field.
func (u *RunSummaryUpsertOne) SetExecutionOrder(v []string) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetExecutionOrder(v)
	})
}

// UpdateExecutionOrder sets the "execution_order" field to the value that was provided on create.
func (u *RunSummaryUpsertOne) UpdateExecutionOrder() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateExecutionOrder()
	})
}

// ClearExecutionOrder clears the value of the "execution_order" field.
func (u *RunSummaryUpsertOne) ClearExecutionOrder() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.ClearExecutionOrder()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *RunSummaryUpsertOne) SetInputTokens(v int) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *RunSummaryUpsertOne) AddInputTokens(v int) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *RunSummaryUpsertOne) UpdateInputTokens() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *RunSummaryUpsertOne) SetOutputTokens(v int) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *RunSummaryUpsertOne) AddOutputTokens(v int) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *RunSummaryUpsertOne) UpdateOutputTokens() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetTotalTokens sets the "total_tokens" field.
func (u *RunSummaryUpsertOne) SetTotalTokens(v int) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetTotalTokens(v)
	})
}

// AddTotalTokens adds v to the "total_tokens" field.
func (u *RunSummaryUpsertOne) AddTotalTokens(v int) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.AddTotalTokens(v)
	})
}

// UpdateTotalTokens sets the "total_tokens" field to the value that was provided on create.
func (u *RunSummaryUpsertOne) UpdateTotalTokens() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateTotalTokens()
	})
}

// SetToolUseCount sets the "tool_use_count" field.
func (u *RunSummaryUpsertOne) SetToolUseCount(v int) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetToolUseCount(v)
	})
}

// AddToolUseCount adds v to the "tool_use_count" field.
func (u *RunSummaryUpsertOne) AddToolUseCount(v int) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.AddToolUseCount(v)
	})
}

// UpdateToolUseCount sets the "tool_use_count" field to the value that was provided on create.
func (u *RunSummaryUpsertOne) UpdateToolUseCount() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateToolUseCount()
	})
}

// SetNodeStartCount sets the "node_start_count" field.
func (u *RunSummaryUpsertOne) SetNodeStartCount(v int) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetNodeStartCount(v)
	})
}

// AddNodeStartCount adds v to the "node_start_count" field.
func (u *RunSummaryUpsertOne) AddNodeStartCount(v int) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.AddNodeStartCount(v)
	})
}

// UpdateNodeStartCount sets the "node_start_count" field to the value that was provided on create.
func (u *RunSummaryUpsertOne) UpdateNodeStartCount() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateNodeStartCount()
	})
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (u *RunSummaryUpsertOne) SetExecutionTimeMs(v int64) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetExecutionTimeMs(v)
	})
}

// AddExecutionTimeMs adds v to the "execution_time_ms" field.
func (u *RunSummaryUpsertOne) AddExecutionTimeMs(v int64) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.AddExecutionTimeMs(v)
	})
}

// UpdateExecutionTimeMs sets the "execution_time_ms" field to the value that was provided on create.
func (u *RunSummaryUpsertOne) UpdateExecutionTimeMs() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateExecutionTimeMs()
	})
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (u *RunSummaryUpsertOne) SetEstimatedCostUsd(v float64) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetEstimatedCostUsd(v)
	})
}

// AddEstimatedCostUsd adds v to the "estimated_cost_usd" field.
func (u *RunSummaryUpsertOne) AddEstimatedCostUsd(v float64) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.AddEstimatedCostUsd(v)
	})
}

// UpdateEstimatedCostUsd sets the "estimated_cost_usd" field to the value that was provided on create.
func (u *RunSummaryUpsertOne) UpdateEstimatedCostUsd() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateEstimatedCostUsd()
	})
}

// SetRiskScore sets the "risk_score" field.
func (u *RunSummaryUpsertOne) SetRiskScore(v float64) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetRiskScore(v)
	})
}

// AddRiskScore adds v to the "risk_score" field.
func (u *RunSummaryUpsertOne) AddRiskScore(v float64) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.AddRiskScore(v)
	})
}

// UpdateRiskScore sets the "risk_score" field to the value that was provided on create.
func (u *RunSummaryUpsertOne) UpdateRiskScore() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateRiskScore()
	})
}

// SetAnomaly sets the "anomaly" field.
func (u *RunSummaryUpsertOne) SetAnomaly(v bool) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetAnomaly(v)
	})
}

// UpdateAnomaly sets the "anomaly" field to the value that was provided on create.
func (u *RunSummaryUpsertOne) UpdateAnomaly() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateAnomaly()
	})
}

// SetClientDisconnected sets the "client_disconnected" field.
func (u *RunSummaryUpsertOne) SetClientDisconnected(v bool) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetClientDisconnected(v)
	})
}

// UpdateClientDisconnected sets the "client_disconnected" field to the value that was provided on create.
func (u *RunSummaryUpsertOne) UpdateClientDisconnected() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateClientDisconnected()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *RunSummaryUpsertOne) SetCompletedAt(v time.Time) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *RunSummaryUpsertOne) UpdateCompletedAt() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *RunSummaryUpsertOne) ClearCompletedAt() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *RunSummaryUpsertOne) SetDeletedAt(v time.Time) *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *RunSummaryUpsertOne) UpdateDeletedAt() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *RunSummaryUpsertOne) ClearDeletedAt() *RunSummaryUpsertOne {
	return u.Update(func(s *RunSummaryUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *RunSummaryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunSummaryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunSummaryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RunSummaryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RunSummaryUpsertOne.ID is not supported by MySQL driver. Use RunSummaryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RunSummaryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RunSummaryCreateBulk is the builder for creating many RunSummary entities in bulk.
type RunSummaryCreateBulk struct {
	config
	err      error
	builders []*RunSummaryCreate
	conflict []sql.ConflictOption
}

// Save creates the RunSummary entities in the database.
func (_c *RunSummaryCreateBulk) Save(ctx context.Context) ([]*RunSummary, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RunSummary, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunSummaryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RunSummaryCreateBulk) SaveX(ctx context.Context) []*RunSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunSummaryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunSummaryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RunSummary.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunSummaryUpsert) {
//			SetMode(v+v).
//		}).
//		Exec(ctx)
func (_c *RunSummaryCreateBulk) OnConflict(opts ...sql.ConflictOption) *RunSummaryUpsertBulk {
	_c.conflict = opts
	return &RunSummaryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RunSummary.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunSummaryCreateBulk) OnConflictColumns(columns ...string) *RunSummaryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunSummaryUpsertBulk{
		create: _c,
	}
}

// RunSummaryUpsertBulk is the builder for "upsert"-ing
// a bulk of RunSummary nodes.
type RunSummaryUpsertBulk struct {
	create *RunSummaryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RunSummary.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(runsummary.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RunSummaryUpsertBulk) UpdateNewValues() *RunSummaryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(runsummary.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(runsummary.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RunSummary.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RunSummaryUpsertBulk) Ignore() *RunSummaryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunSummaryUpsertBulk) DoNothing() *RunSummaryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunSummaryCreateBulk.OnConflict
// documentation for more info.
func (u *RunSummaryUpsertBulk) Update(set func(*RunSummaryUpsert)) *RunSummaryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunSummaryUpsert{UpdateSet: update})
	}))
	return u
}

// SetMode sets the "mode" field.
func (u *RunSummaryUpsertBulk) SetMode(v runsummary.Mode) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetMode(v)
	})
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *RunSummaryUpsertBulk) UpdateMode() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateMode()
	})
}

// SetStatus sets the "status" field.
func (u *RunSummaryUpsertBulk) SetStatus(v runsummary.Status) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RunSummaryUpsertBulk) UpdateStatus() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateStatus()
	})
}

// SetPrompt sets the "prompt" field.
func (u *RunSummaryUpsertBulk) SetPrompt(v string) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *RunSummaryUpsertBulk) UpdatePrompt() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdatePrompt()
	})
}

// SetSessionID sets the "session_id" field.
func (u *RunSummaryUpsertBulk) SetSessionID(v string) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *RunSummaryUpsertBulk) UpdateSessionID() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *RunSummaryUpsertBulk) ClearSessionID() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.ClearSessionID()
	})
}

// SetPresetKey sets the "preset_key" field.
func (u *RunSummaryUpsertBulk) SetPresetKey(v string) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetPresetKey(v)
	})
}

// UpdatePresetKey sets the "preset_key" field to the value that was provided on create.
func (u *RunSummaryUpsertBulk) UpdatePresetKey() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdatePresetKey()
	})
}

// ClearPresetKey clears the value of the "preset_key" field.
func (u *RunSummaryUpsertBulk) ClearPresetKey() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.ClearPresetKey()
	})
}

// SetStructuredOutputSchema sets the "structured_output_schema" field.
func (u *RunSummaryUpsertBulk) SetStructuredOutputSchema(v string) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetStructuredOutputSchema(v)
	})
}

// UpdateStructuredOutputSchema sets the "structured_output_schema" field to the value that was provided on create.
func (u *RunSummaryUpsertBulk) UpdateStructuredOutputSchema() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateStructuredOutputSchema()
	})
}

// ClearStructuredOutputSchema clears the value of the "structured_output_schema" field.
func (u *RunSummaryUpsertBulk) ClearStructuredOutputSchema() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.ClearStructuredOutputSchema()
	})
}

// SetModelID sets the "model_id" field.
func (u *RunSummaryUpsertBulk) SetModelID(v string) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetModelID(v)
	})
}

// UpdateModelID sets the "model_id" field to the value that was provided on create.
func (u *RunSummaryUpsertBulk) UpdateModelID() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateModelID()
	})
}

// ClearModelID clears the value of the "model_id" field.
func (u *RunSummaryUpsertBulk) ClearModelID() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.ClearModelID()
	})
}

// SetResultText sets the "result_text" field.
func (u *RunSummaryUpsertBulk) SetResultText(v string) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetResultText(v)
	})
}

// UpdateResultText sets the "result_text" field to the value that was provided on create.
func (u *RunSummaryUpsertBulk) UpdateResultText() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateResultText()
	})
}

// ClearResultText clears the value of the "result_text" field.
func (u *RunSummaryUpsertBulk) ClearResultText() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.ClearResultText()
	})
}

// SetStructuredOutput sets the "structured_output" field.
func (u *RunSummaryUpsertBulk) SetStructuredOutput(v map[string]interface{}) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetStructuredOutput(v)
	})
}

// UpdateStructuredOutput sets the "structured_output" field to the value that was provided on create.
func (u *RunSummaryUpsertBulk) UpdateStructuredOutput() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateStructuredOutput()
	})
}

// ClearStructuredOutput clears the value of the "structured_output" field.
func (u *RunSummaryUpsertBulk) ClearStructuredOutput() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.ClearStructuredOutput()
	})
}

// SetErrorCode sets the "error_code" field.
func (u *RunSummaryUpsertBulk) SetErrorCode(v string) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetErrorCode(v)
	})
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *RunSummaryUpsertBulk) UpdateErrorCode() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateErrorCode()
	})
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *RunSummaryUpsertBulk) ClearErrorCode() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.ClearErrorCode()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *RunSummaryUpsertBulk) SetErrorMessage(v string) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *RunSummaryUpsertBulk) UpdateErrorMessage() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *RunSummaryUpsertBulk) ClearErrorMessage() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.ClearErrorMessage()
	})
}

// SetAgents sets the "agents" field.
func (u *RunSummaryUpsertBulk) SetAgents(v []string) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetAgents(v)
	})
}

// UpdateAgents sets the "agents" field to the value that was provided on create.
func (u *RunSummaryUpsertBulk) UpdateAgents() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateAgents()
	})
}

// ClearAgents clears the value of the "agents" field.
func (u *RunSummaryUpsertBulk) ClearAgents() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.ClearAgents()
	})
}

// SetNodeHistory sets the "node_history" field.
func (u *RunSummaryUpsertBulk) SetNodeHistory(v []string) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetNodeHistory(v)
	})
}

// UpdateNodeHistory sets the "node_history" field to the value that was provided on create.
func (u *RunSummaryUpsertBulk) UpdateNodeHistory() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateNodeHistory()
	})
}

// ClearNodeHistory clears the value of the "node_history" field.
func (u *RunSummaryUpsertBulk) ClearNodeHistory() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.ClearNodeHistory()
	})
}

// SetExecutionOrder sets the "execution_order" field.
func (u *RunSummaryUpsertBulk) SetExecutionOrder(v []string) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetExecutionOrder(v)
	})
}

// UpdateExecutionOrder sets the "execution_order" field to the value that was provided on create.
func (u *RunSummaryUpsertBulk) UpdateExecutionOrder() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateExecutionOrder()
	})
}

// ClearExecutionOrder clears the value of the "execution_order" field.
func (u *RunSummaryUpsertBulk) ClearExecutionOrder() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.ClearExecutionOrder()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *RunSummaryUpsertBulk) SetInputTokens(v int) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *RunSummaryUpsertBulk) AddInputTokens(v int) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *RunSummaryUpsertBulk) UpdateInputTokens() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *RunSummaryUpsertBulk) SetOutputTokens(v int) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *RunSummaryUpsertBulk) AddOutputTokens(v int) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *RunSummaryUpsertBulk) UpdateOutputTokens() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetTotalTokens sets the "total_tokens" field.
func (u *RunSummaryUpsertBulk) SetTotalTokens(v int) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetTotalTokens(v)
	})
}

// AddTotalTokens adds v to the "total_tokens" field.
func (u *RunSummaryUpsertBulk) AddTotalTokens(v int) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.AddTotalTokens(v)
	})
}

// UpdateTotalTokens sets the "total_tokens" field to the value that was provided on create.
func (u *RunSummaryUpsertBulk) UpdateTotalTokens() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateTotalTokens()
	})
}

// SetToolUseCount sets the "tool_use_count" field.
func (u *RunSummaryUpsertBulk) SetToolUseCount(v int) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetToolUseCount(v)
	})
}

// AddToolUseCount adds v to the "tool_use_count" field.
func (u *RunSummaryUpsertBulk) AddToolUseCount(v int) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.AddToolUseCount(v)
	})
}

// UpdateToolUseCount sets the "tool_use_count" field to the value that was provided on create.
func (u *RunSummaryUpsertBulk) UpdateToolUseCount() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateToolUseCount()
	})
}

// SetNodeStartCount sets the "node_start_count" field.
func (u *RunSummaryUpsertBulk) SetNodeStartCount(v int) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetNodeStartCount(v)
	})
}

// AddNodeStartCount adds v to the "node_start_count" field.
func (u *RunSummaryUpsertBulk) AddNodeStartCount(v int) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.AddNodeStartCount(v)
	})
}

// UpdateNodeStartCount sets the "node_start_count" field to the value that was provided on create.
func (u *RunSummaryUpsertBulk) UpdateNodeStartCount() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateNodeStartCount()
	})
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (u *RunSummaryUpsertBulk) SetExecutionTimeMs(v int64) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetExecutionTimeMs(v)
	})
}

// AddExecutionTimeMs adds v to the "execution_time_ms" field.
func (u *RunSummaryUpsertBulk) AddExecutionTimeMs(v int64) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.AddExecutionTimeMs(v)
	})
}

// UpdateExecutionTimeMs sets the "execution_time_ms" field to the value that was provided on create.
func (u *RunSummaryUpsertBulk) UpdateExecutionTimeMs() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateExecutionTimeMs()
	})
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (u *RunSummaryUpsertBulk) SetEstimatedCostUsd(v float64) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetEstimatedCostUsd(v)
	})
}

// AddEstimatedCostUsd adds v to the "estimated_cost_usd" field.
func (u *RunSummaryUpsertBulk) AddEstimatedCostUsd(v float64) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.AddEstimatedCostUsd(v)
	})
}

// UpdateEstimatedCostUsd sets the "estimated_cost_usd" field to the value that was provided on create.
func (u *RunSummaryUpsertBulk) UpdateEstimatedCostUsd() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateEstimatedCostUsd()
	})
}

// SetRiskScore sets the "risk_score" field.
func (u *RunSummaryUpsertBulk) SetRiskScore(v float64) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetRiskScore(v)
	})
}

// AddRiskScore adds v to the "risk_score" field.
func (u *RunSummaryUpsertBulk) AddRiskScore(v float64) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.AddRiskScore(v)
	})
}

// UpdateRiskScore sets the "risk_score" field to the value that was provided on create.
func (u *RunSummaryUpsertBulk) UpdateRiskScore() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateRiskScore()
	})
}

// SetAnomaly sets the "anomaly" field.
func (u *RunSummaryUpsertBulk) SetAnomaly(v bool) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetAnomaly(v)
	})
}

// UpdateAnomaly sets the "anomaly" field to the value that was provided on create.
func (u *RunSummaryUpsertBulk) UpdateAnomaly() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateAnomaly()
	})
}

// SetClientDisconnected sets the "client_disconnected" field.
func (u *RunSummaryUpsertBulk) SetClientDisconnected(v bool) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetClientDisconnected(v)
	})
}

// UpdateClientDisconnected sets the "client_disconnected" field to the value that was provided on create.
func (u *RunSummaryUpsertBulk) UpdateClientDisconnected() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateClientDisconnected()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *RunSummaryUpsertBulk) SetCompletedAt(v time.Time) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *RunSummaryUpsertBulk) UpdateCompletedAt() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *RunSummaryUpsertBulk) ClearCompletedAt() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *RunSummaryUpsertBulk) SetDeletedAt(v time.Time) *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *RunSummaryUpsertBulk) UpdateDeletedAt() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *RunSummaryUpsertBulk) ClearDeletedAt() *RunSummaryUpsertBulk {
	return u.Update(func(s *RunSummaryUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *RunSummaryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RunSummaryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunSummaryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunSummaryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
