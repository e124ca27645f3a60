// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/agentfleet/agentfleet/ent/predicate"
	"github.com/agentfleet/agentfleet/ent/runevent"
	"github.com/agentfleet/agentfleet/ent/runnodemetric"
	"github.com/agentfleet/agentfleet/ent/runsummary"
	"github.com/agentfleet/agentfleet/ent/runtelemetry"
)

// RunSummaryUpdate is the builder for updating RunSummary entities.
type RunSummaryUpdate struct {
	config
	hooks    []Hook
	mutation *RunSummaryMutation
}

// Where appends a list predicates to the RunSummaryUpdate builder.
func (_u *RunSummaryUpdate) Where(ps ...predicate.RunSummary) *RunSummaryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMode sets the "mode" field.
func (_u *RunSummaryUpdate) SetMode(v runsummary.Mode) *RunSummaryUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *RunSummaryUpdate) SetNillableMode(v *runsummary.Mode) *RunSummaryUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunSummaryUpdate) SetStatus(v runsummary.Status) *RunSummaryUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunSummaryUpdate) SetNillableStatus(v *runsummary.Status) *RunSummaryUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *RunSummaryUpdate) SetPrompt(v string) *RunSummaryUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *RunSummaryUpdate) SetNillablePrompt(v *string) *RunSummaryUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *RunSummaryUpdate) SetSessionID(v string) *RunSummaryUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RunSummaryUpdate) SetNillableSessionID(v *string) *RunSummaryUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *RunSummaryUpdate) ClearSessionID() *RunSummaryUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetPresetKey sets the "preset_key" field.
func (_u *RunSummaryUpdate) SetPresetKey(v string) *RunSummaryUpdate {
	_u.mutation.SetPresetKey(v)
	return _u
}

// SetNillablePresetKey sets the "preset_key" field if the given value is not nil.
func (_u *RunSummaryUpdate) SetNillablePresetKey(v *string) *RunSummaryUpdate {
	if v != nil {
		_u.SetPresetKey(*v)
	}
	return _u
}

// ClearPresetKey clears the value of the "preset_key" field.
func (_u *RunSummaryUpdate) ClearPresetKey() *RunSummaryUpdate {
	_u.mutation.ClearPresetKey()
	return _u
}

// SetStructuredOutputSchema sets the "structured_output_schema" field.
func (_u *RunSummaryUpdate) SetStructuredOutputSchema(v string) *RunSummaryUpdate {
	_u.mutation.SetStructuredOutputSchema(v)
	return _u
}

// SetNillableStructuredOutputSchema sets the "structured_output_schema" field if the given value is not nil.
func (_u *RunSummaryUpdate) SetNillableStructuredOutputSchema(v *string) *RunSummaryUpdate {
	if v != nil {
		_u.SetStructuredOutputSchema(*v)
	}
	return _u
}

// ClearStructuredOutputSchema clears the value of the "structured_output_schema" field.
func (_u *RunSummaryUpdate) ClearStructuredOutputSchema() *RunSummaryUpdate {
	_u.mutation.ClearStructuredOutputSchema()
	return _u
}

// SetModelID sets the "model_id" field.
func (_u *RunSummaryUpdate) SetModelID(v string) *RunSummaryUpdate {
	_u.mutation.SetModelID(v)
	return _u
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_u *RunSummaryUpdate) SetNillableModelID(v *string) *RunSummaryUpdate {
	if v != nil {
		_u.SetModelID(*v)
	}
	return _u
}

// ClearModelID clears the value of the "model_id" field.
func (_u *RunSummaryUpdate) ClearModelID() *RunSummaryUpdate {
	_u.mutation.ClearModelID()
	return _u
}

// SetResultText sets the "result_text" field.
func (_u *RunSummaryUpdate) SetResultText(v string) *RunSummaryUpdate {
	_u.mutation.SetResultText(v)
	return _u
}

// SetNillableResultText sets the "result_text" field if the given value is not nil.
func (_u *RunSummaryUpdate) SetNillableResultText(v *string) *RunSummaryUpdate {
	if v != nil {
		_u.SetResultText(*v)
	}
	return _u
}

// ClearResultText clears the value of the "result_text" field.
func (_u *RunSummaryUpdate) ClearResultText() *RunSummaryUpdate {
	_u.mutation.ClearResultText()
	return _u
}

// SetStructuredOutput sets the "structured_output" field.
func (_u *RunSummaryUpdate) SetStructuredOutput(v map[string]interface{}) *RunSummaryUpdate {
	_u.mutation.SetStructuredOutput(v)
	return _u
}

// ClearStructuredOutput clears the value of the "structured_output" field.
func (_u *RunSummaryUpdate) ClearStructuredOutput() *RunSummaryUpdate {
	_u.mutation.ClearStructuredOutput()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *RunSummaryUpdate) SetErrorCode(v string) *RunSummaryUpdate {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *RunSummaryUpdate) SetNillableErrorCode(v *string) *RunSummaryUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *RunSummaryUpdate) ClearErrorCode() *RunSummaryUpdate {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RunSummaryUpdate) SetErrorMessage(v string) *RunSummaryUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RunSummaryUpdate) SetNillableErrorMessage(v *string) *RunSummaryUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RunSummaryUpdate) ClearErrorMessage() *RunSummaryUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetAgents sets the "agents" field.
func (_u *RunSummaryUpdate) SetAgents(v []string) *RunSummaryUpdate {
	_u.mutation.SetAgents(v)
	return _u
}

// AppendAgents appends value to the "agents" field.
func (_u *RunSummaryUpdate) AppendAgents(v []string) *RunSummaryUpdate {
	_u.mutation.AppendAgents(v)
	return _u
}

// ClearAgents clears the value of the "agents" field.
func (_u *RunSummaryUpdate) ClearAgents() *RunSummaryUpdate {
	_u.mutation.ClearAgents()
	return _u
}

// SetNodeHistory sets the "node_history" field.
func (_u *RunSummaryUpdate) SetNodeHistory(v []string) *RunSummaryUpdate {
	_u.mutation.SetNodeHistory(v)
	return _u
}

// AppendNodeHistory appends value to the "node_history" field.
func (_u *RunSummaryUpdate) AppendNodeHistory(v []string) *RunSummaryUpdate {
	_u.mutation.AppendNodeHistory(v)
	return _u
}

// ClearNodeHistory clears the value of the "node_history" field.
func (_u *RunSummaryUpdate) ClearNodeHistory() *RunSummaryUpdate {
	_u.mutation.ClearNodeHistory()
	return _u
}

// SetExecutionOrder sets the "execution_order" field.
func (_u *RunSummaryUpdate) SetExecutionOrder(v []string) *RunSummaryUpdate {
	_u.mutation.SetExecutionOrder(v)
	return _u
}

// AppendExecutionOrder appends value to the "execution_order" field.
func (_u *RunSummaryUpdate) AppendExecutionOrder(v []string) *RunSummaryUpdate {
	_u.mutation.AppendExecutionOrder(v)
	return _u
}

// ClearExecutionOrder clears the value of the "execution_order" field.
func (_u *RunSummaryUpdate) ClearExecutionOrder() *RunSummaryUpdate {
	_u.mutation.ClearExecutionOrder()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *RunSummaryUpdate) SetInputTokens(v int) *RunSummaryUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *RunSummaryUpdate) SetNillableInputTokens(v *int) *RunSummaryUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *RunSummaryUpdate) AddInputTokens(v int) *RunSummaryUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *RunSummaryUpdate) SetOutputTokens(v int) *RunSummaryUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *RunSummaryUpdate) SetNillableOutputTokens(v *int) *RunSummaryUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *RunSummaryUpdate) AddOutputTokens(v int) *RunSummaryUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *RunSummaryUpdate) SetTotalTokens(v int) *RunSummaryUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *RunSummaryUpdate) SetNillableTotalTokens(v *int) *RunSummaryUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *RunSummaryUpdate) AddTotalTokens(v int) *RunSummaryUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetToolUseCount sets the "tool_use_count" field.
func (_u *RunSummaryUpdate) SetToolUseCount(v int) *RunSummaryUpdate {
	_u.mutation.ResetToolUseCount()
	_u.mutation.SetToolUseCount(v)
	return _u
}

// SetNillableToolUseCount sets the "tool_use_count" field if the given value is not nil.
func (_u *RunSummaryUpdate) SetNillableToolUseCount(v *int) *RunSummaryUpdate {
	if v != nil {
		_u.SetToolUseCount(*v)
	}
	return _u
}

// AddToolUseCount adds value to the "tool_use_count" field.
func (_u *RunSummaryUpdate) AddToolUseCount(v int) *RunSummaryUpdate {
	_u.mutation.AddToolUseCount(v)
	return _u
}

// SetNodeStartCount sets the "node_start_count" field.
func (_u *RunSummaryUpdate) SetNodeStartCount(v int) *RunSummaryUpdate {
	_u.mutation.ResetNodeStartCount()
	_u.mutation.SetNodeStartCount(v)
	return _u
}

// SetNillableNodeStartCount sets the "node_start_count" field if the given value is not nil.
func (_u *RunSummaryUpdate) SetNillableNodeStartCount(v *int) *RunSummaryUpdate {
	if v != nil {
		_u.SetNodeStartCount(*v)
	}
	return _u
}

// AddNodeStartCount adds value to the "node_start_count" field.
func (_u *RunSummaryUpdate) AddNodeStartCount(v int) *RunSummaryUpdate {
	_u.mutation.AddNodeStartCount(v)
	return _u
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_u *RunSummaryUpdate) SetExecutionTimeMs(v int64) *RunSummaryUpdate {
	_u.mutation.ResetExecutionTimeMs()
	_u.mutation.SetExecutionTimeMs(v)
	return _u
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_u *RunSummaryUpdate) SetNillableExecutionTimeMs(v *int64) *RunSummaryUpdate {
	if v != nil {
		_u.SetExecutionTimeMs(*v)
	}
	return _u
}

// AddExecutionTimeMs adds value to the "execution_time_ms" field.
func (_u *RunSummaryUpdate) AddExecutionTimeMs(v int64) *RunSummaryUpdate {
	_u.mutation.AddExecutionTimeMs(v)
	return _u
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (_u *RunSummaryUpdate) SetEstimatedCostUsd(v float64) *RunSummaryUpdate {
	_u.mutation.ResetEstimatedCostUsd()
	_u.mutation.SetEstimatedCostUsd(v)
	return _u
}

// SetNillableEstimatedCostUsd sets the "estimated_cost_usd" field if the given value is not nil.
func (_u *RunSummaryUpdate) SetNillableEstimatedCostUsd(v *float64) *RunSummaryUpdate {
	if v != nil {
		_u.SetEstimatedCostUsd(*v)
	}
	return _u
}

// AddEstimatedCostUsd adds value to the "estimated_cost_usd" field.
func (_u *RunSummaryUpdate) AddEstimatedCostUsd(v float64) *RunSummaryUpdate {
	_u.mutation.AddEstimatedCostUsd(v)
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *RunSummaryUpdate) SetRiskScore(v float64) *RunSummaryUpdate {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *RunSummaryUpdate) SetNillableRiskScore(v *float64) *RunSummaryUpdate {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *RunSummaryUpdate) AddRiskScore(v float64) *RunSummaryUpdate {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetAnomaly sets the "anomaly" field.
func (_u *RunSummaryUpdate) SetAnomaly(v bool) *RunSummaryUpdate {
	_u.mutation.SetAnomaly(v)
	return _u
}

// SetNillableAnomaly sets the "anomaly" field if the given value is not nil.
func (_u *RunSummaryUpdate) SetNillableAnomaly(v *bool) *RunSummaryUpdate {
	if v != nil {
		_u.SetAnomaly(*v)
	}
	return _u
}

// SetClientDisconnected sets the "client_disconnected" field.
func (_u *RunSummaryUpdate) SetClientDisconnected(v bool) *RunSummaryUpdate {
	_u.mutation.SetClientDisconnected(v)
	return _u
}

// SetNillableClientDisconnected sets the "client_disconnected" field if the given value is not nil.
func (_u *RunSummaryUpdate) SetNillableClientDisconnected(v *bool) *RunSummaryUpdate {
	if v != nil {
		_u.SetClientDisconnected(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunSummaryUpdate) SetCompletedAt(v time.Time) *RunSummaryUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunSummaryUpdate) SetNillableCompletedAt(v *time.Time) *RunSummaryUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunSummaryUpdate) ClearCompletedAt() *RunSummaryUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *RunSummaryUpdate) SetDeletedAt(v time.Time) *RunSummaryUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *RunSummaryUpdate) SetNillableDeletedAt(v *time.Time) *RunSummaryUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *RunSummaryUpdate) ClearDeletedAt() *RunSummaryUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddEventIDs adds the "events" edge to the RunEvent entity by IDs.
func (_u *RunSummaryUpdate) AddEventIDs(ids ...int) *RunSummaryUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the RunEvent entity.
func (_u *RunSummaryUpdate) AddEvents(v ...*RunEvent) *RunSummaryUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddNodeMetricIDs adds the "node_metrics" edge to the RunNodeMetric entity by IDs.
func (_u *RunSummaryUpdate) AddNodeMetricIDs(ids ...int) *RunSummaryUpdate {
	_u.mutation.AddNodeMetricIDs(ids...)
	return _u
}

// AddNodeMetrics adds the "node_metrics" edges to the RunNodeMetric entity.
func (_u *RunSummaryUpdate) AddNodeMetrics(v ...*RunNodeMetric) *RunSummaryUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNodeMetricIDs(ids...)
}

// AddTelemetryIDs adds the "telemetry" edge to the RunTelemetry entity by IDs.
func (_u *RunSummaryUpdate) AddTelemetryIDs(ids ...int) *RunSummaryUpdate {
	_u.mutation.AddTelemetryIDs(ids...)
	return _u
}

// AddTelemetry adds the "telemetry" edges to the RunTelemetry entity.
func (_u *RunSummaryUpdate) AddTelemetry(v ...*RunTelemetry) *RunSummaryUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTelemetryIDs(ids...)
}

// Mutation returns the RunSummaryMutation object of the builder.
func (_u *RunSummaryUpdate) Mutation() *RunSummaryMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the RunEvent entity.
func (_u *RunSummaryUpdate) ClearEvents() *RunSummaryUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to RunEvent entities by IDs.
func (_u *RunSummaryUpdate) RemoveEventIDs(ids ...int) *RunSummaryUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to RunEvent entities.
func (_u *RunSummaryUpdate) RemoveEvents(v ...*RunEvent) *RunSummaryUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearNodeMetrics clears all "node_metrics" edges to the RunNodeMetric entity.
func (_u *RunSummaryUpdate) ClearNodeMetrics() *RunSummaryUpdate {
	_u.mutation.ClearNodeMetrics()
	return _u
}

// RemoveNodeMetricIDs removes the "node_metrics" edge to RunNodeMetric entities by IDs.
func (_u *RunSummaryUpdate) RemoveNodeMetricIDs(ids ...int) *RunSummaryUpdate {
	_u.mutation.RemoveNodeMetricIDs(ids...)
	return _u
}

// RemoveNodeMetrics removes "node_metrics" edges to RunNodeMetric entities.
func (_u *RunSummaryUpdate) RemoveNodeMetrics(v ...*RunNodeMetric) *RunSummaryUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNodeMetricIDs(ids...)
}

// ClearTelemetry clears all "telemetry" edges to the RunTelemetry entity.
func (_u *RunSummaryUpdate) ClearTelemetry() *RunSummaryUpdate {
	_u.mutation.ClearTelemetry()
	return _u
}

// RemoveTelemetryIDs removes the "telemetry" edge to RunTelemetry entities by IDs.
func (_u *RunSummaryUpdate) RemoveTelemetryIDs(ids ...int) *RunSummaryUpdate {
	_u.mutation.RemoveTelemetryIDs(ids...)
	return _u
}

// RemoveTelemetry removes "telemetry" edges to RunTelemetry entities.
func (_u *RunSummaryUpdate) RemoveTelemetry(v ...*RunTelemetry) *RunSummaryUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTelemetryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunSummaryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunSummaryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunSummaryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunSummaryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunSummaryUpdate) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := runsummary.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "RunSummary.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := runsummary.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RunSummary.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RunSummaryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runsummary.Table, runsummary.Columns, sqlgraph.NewFieldSpec(runsummary.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(runsummary.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(runsummary.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(runsummary.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(runsummary.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(runsummary.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.PresetKey(); ok {
		_spec.SetField(runsummary.FieldPresetKey, field.TypeString, value)
	}
	if _u.mutation.PresetKeyCleared() {
		_spec.ClearField(runsummary.FieldPresetKey, field.TypeString)
	}
	if value, ok := _u.mutation.StructuredOutputSchema(); ok {
		_spec.SetField(runsummary.FieldStructuredOutputSchema, field.TypeString, value)
	}
	if _u.mutation.StructuredOutputSchemaCleared() {
		_spec.ClearField(runsummary.FieldStructuredOutputSchema, field.TypeString)
	}
	if value, ok := _u.mutation.ModelID(); ok {
		_spec.SetField(runsummary.FieldModelID, field.TypeString, value)
	}
	if _u.mutation.ModelIDCleared() {
		_spec.ClearField(runsummary.FieldModelID, field.TypeString)
	}
	if value, ok := _u.mutation.ResultText(); ok {
		_spec.SetField(runsummary.FieldResultText, field.TypeString, value)
	}
	if _u.mutation.ResultTextCleared() {
		_spec.ClearField(runsummary.FieldResultText, field.TypeString)
	}
	if value, ok := _u.mutation.StructuredOutput(); ok {
		_spec.SetField(runsummary.FieldStructuredOutput, field.TypeJSON, value)
	}
	if _u.mutation.StructuredOutputCleared() {
		_spec.ClearField(runsummary.FieldStructuredOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(runsummary.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(runsummary.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(runsummary.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(runsummary.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Agents(); ok {
		_spec.SetField(runsummary.FieldAgents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAgents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, runsummary.FieldAgents, value)
		})
	}
	if _u.mutation.AgentsCleared() {
		_spec.ClearField(runsummary.FieldAgents, field.TypeJSON)
	}
	if value, ok := _u.mutation.NodeHistory(); ok {
		_spec.SetField(runsummary.FieldNodeHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNodeHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, runsummary.FieldNodeHistory, value)
		})
	}
	if _u.mutation.NodeHistoryCleared() {
		_spec.ClearField(runsummary.FieldNodeHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExecutionOrder(); ok {
		_spec.SetField(runsummary.FieldExecutionOrder, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExecutionOrder(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, runsummary.FieldExecutionOrder, value)
		})
	}
	if _u.mutation.ExecutionOrderCleared() {
		_spec.ClearField(runsummary.FieldExecutionOrder, field.TypeJSON)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(runsummary.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(runsummary.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(runsummary.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(runsummary.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(runsummary.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(runsummary.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToolUseCount(); ok {
		_spec.SetField(runsummary.FieldToolUseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToolUseCount(); ok {
		_spec.AddField(runsummary.FieldToolUseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NodeStartCount(); ok {
		_spec.SetField(runsummary.FieldNodeStartCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNodeStartCount(); ok {
		_spec.AddField(runsummary.FieldNodeStartCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(runsummary.FieldExecutionTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedExecutionTimeMs(); ok {
		_spec.AddField(runsummary.FieldExecutionTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.EstimatedCostUsd(); ok {
		_spec.SetField(runsummary.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCostUsd(); ok {
		_spec.AddField(runsummary.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(runsummary.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(runsummary.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Anomaly(); ok {
		_spec.SetField(runsummary.FieldAnomaly, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ClientDisconnected(); ok {
		_spec.SetField(runsummary.FieldClientDisconnected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(runsummary.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(runsummary.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(runsummary.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(runsummary.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NodeMetricsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNodeMetricsIDs(); len(nodes) > 0 && !_u.mutation.NodeMetricsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NodeMetricsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TelemetryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTelemetryIDs(); len(nodes) > 0 && !_u.mutation.TelemetryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TelemetryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runsummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunSummaryUpdateOne is the builder for updating a single RunSummary entity.
type RunSummaryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunSummaryMutation
}

// SetMode sets the "mode" field.
func (_u *RunSummaryUpdateOne) SetMode(v runsummary.Mode) *RunSummaryUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *RunSummaryUpdateOne) SetNillableMode(v *runsummary.Mode) *RunSummaryUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunSummaryUpdateOne) SetStatus(v runsummary.Status) *RunSummaryUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunSummaryUpdateOne) SetNillableStatus(v *runsummary.Status) *RunSummaryUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *RunSummaryUpdateOne) SetPrompt(v string) *RunSummaryUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *RunSummaryUpdateOne) SetNillablePrompt(v *string) *RunSummaryUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *RunSummaryUpdateOne) SetSessionID(v string) *RunSummaryUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RunSummaryUpdateOne) SetNillableSessionID(v *string) *RunSummaryUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *RunSummaryUpdateOne) ClearSessionID() *RunSummaryUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetPresetKey sets the "preset_key" field.
func (_u *RunSummaryUpdateOne) SetPresetKey(v string) *RunSummaryUpdateOne {
	_u.mutation.SetPresetKey(v)
	return _u
}

// SetNillablePresetKey sets the "preset_key" field if the given value is not nil.
func (_u *RunSummaryUpdateOne) SetNillablePresetKey(v *string) *RunSummaryUpdateOne {
	if v != nil {
		_u.SetPresetKey(*v)
	}
	return _u
}

// ClearPresetKey clears the value of the "preset_key" field.
func (_u *RunSummaryUpdateOne) ClearPresetKey() *RunSummaryUpdateOne {
	_u.mutation.ClearPresetKey()
	return _u
}

// SetStructuredOutputSchema sets the "structured_output_schema" field.
func (_u *RunSummaryUpdateOne) SetStructuredOutputSchema(v string) *RunSummaryUpdateOne {
	_u.mutation.SetStructuredOutputSchema(v)
	return _u
}

// SetNillableStructuredOutputSchema sets the "structured_output_schema" field if the given value is not nil.
func (_u *RunSummaryUpdateOne) SetNillableStructuredOutputSchema(v *string) *RunSummaryUpdateOne {
	if v != nil {
		_u.SetStructuredOutputSchema(*v)
	}
	return _u
}

// ClearStructuredOutputSchema clears the value of the "structured_output_schema" field.
func (_u *RunSummaryUpdateOne) ClearStructuredOutputSchema() *RunSummaryUpdateOne {
	_u.mutation.ClearStructuredOutputSchema()
	return _u
}

// SetModelID sets the "model_id" field.
func (_u *RunSummaryUpdateOne) SetModelID(v string) *RunSummaryUpdateOne {
	_u.mutation.SetModelID(v)
	return _u
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_u *RunSummaryUpdateOne) SetNillableModelID(v *string) *RunSummaryUpdateOne {
	if v != nil {
		_u.SetModelID(*v)
	}
	return _u
}

// ClearModelID clears the value of the "model_id" field.
func (_u *RunSummaryUpdateOne) ClearModelID() *RunSummaryUpdateOne {
	_u.mutation.ClearModelID()
	return _u
}

// SetResultText sets the "result_text" field.
func (_u *RunSummaryUpdateOne) SetResultText(v string) *RunSummaryUpdateOne {
	_u.mutation.SetResultText(v)
	return _u
}

// SetNillableResultText sets the "result_text" field if the given value is not nil.
func (_u *RunSummaryUpdateOne) SetNillableResultText(v *string) *RunSummaryUpdateOne {
	if v != nil {
		_u.SetResultText(*v)
	}
	return _u
}

// ClearResultText clears the value of the "result_text" field.
func (_u *RunSummaryUpdateOne) ClearResultText() *RunSummaryUpdateOne {
	_u.mutation.ClearResultText()
	return _u
}

// SetStructuredOutput sets the "structured_output" field.
func (_u *RunSummaryUpdateOne) SetStructuredOutput(v map[string]interface{}) *RunSummaryUpdateOne {
	_u.mutation.SetStructuredOutput(v)
	return _u
}

// ClearStructuredOutput clears the value of the "structured_output" field.
func (_u *RunSummaryUpdateOne) ClearStructuredOutput() *RunSummaryUpdateOne {
	_u.mutation.ClearStructuredOutput()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *RunSummaryUpdateOne) SetErrorCode(v string) *RunSummaryUpdateOne {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *RunSummaryUpdateOne) SetNillableErrorCode(v *string) *RunSummaryUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *RunSummaryUpdateOne) ClearErrorCode() *RunSummaryUpdateOne {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RunSummaryUpdateOne) SetErrorMessage(v string) *RunSummaryUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RunSummaryUpdateOne) SetNillableErrorMessage(v *string) *RunSummaryUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RunSummaryUpdateOne) ClearErrorMessage() *RunSummaryUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetAgents sets the "agents" field.
func (_u *RunSummaryUpdateOne) SetAgents(v []string) *RunSummaryUpdateOne {
	_u.mutation.SetAgents(v)
	return _u
}

// AppendAgents appends value to the "agents" field.
func (_u *RunSummaryUpdateOne) AppendAgents(v []string) *RunSummaryUpdateOne {
	_u.mutation.AppendAgents(v)
	return _u
}

// ClearAgents clears the value of the "agents" field.
func (_u *RunSummaryUpdateOne) ClearAgents() *RunSummaryUpdateOne {
	_u.mutation.ClearAgents()
	return _u
}

// SetNodeHistory sets the "node_history" field.
func (_u *RunSummaryUpdateOne) SetNodeHistory(v []string) *RunSummaryUpdateOne {
	_u.mutation.SetNodeHistory(v)
	return _u
}

// AppendNodeHistory appends value to the "node_history" field.
func (_u *RunSummaryUpdateOne) AppendNodeHistory(v []string) *RunSummaryUpdateOne {
	_u.mutation.AppendNodeHistory(v)
	return _u
}

// ClearNodeHistory clears the value of the "node_history" field.
func (_u *RunSummaryUpdateOne) ClearNodeHistory() *RunSummaryUpdateOne {
	_u.mutation.ClearNodeHistory()
	return _u
}

// SetExecutionOrder sets the "execution_order" field.
func (_u *RunSummaryUpdateOne) SetExecutionOrder(v []string) *RunSummaryUpdateOne {
	_u.mutation.SetExecutionOrder(v)
	return _u
}

// AppendExecutionOrder appends value to the "execution_order" field.
func (_u *RunSummaryUpdateOne) AppendExecutionOrder(v []string) *RunSummaryUpdateOne {
	_u.mutation.AppendExecutionOrder(v)
	return _u
}

// ClearExecutionOrder clears the value of the "execution_order" field.
func (_u *RunSummaryUpdateOne) ClearExecutionOrder() *RunSummaryUpdateOne {
	_u.mutation.ClearExecutionOrder()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *RunSummaryUpdateOne) SetInputTokens(v int) *RunSummaryUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *RunSummaryUpdateOne) SetNillableInputTokens(v *int) *RunSummaryUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *RunSummaryUpdateOne) AddInputTokens(v int) *RunSummaryUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *RunSummaryUpdateOne) SetOutputTokens(v int) *RunSummaryUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *RunSummaryUpdateOne) SetNillableOutputTokens(v *int) *RunSummaryUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *RunSummaryUpdateOne) AddOutputTokens(v int) *RunSummaryUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *RunSummaryUpdateOne) SetTotalTokens(v int) *RunSummaryUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *RunSummaryUpdateOne) SetNillableTotalTokens(v *int) *RunSummaryUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *RunSummaryUpdateOne) AddTotalTokens(v int) *RunSummaryUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetToolUseCount sets the "tool_use_count" field.
func (_u *RunSummaryUpdateOne) SetToolUseCount(v int) *RunSummaryUpdateOne {
	_u.mutation.ResetToolUseCount()
	_u.mutation.SetToolUseCount(v)
	return _u
}

// SetNillableToolUseCount sets the "tool_use_count" field if the given value is not nil.
func (_u *RunSummaryUpdateOne) SetNillableToolUseCount(v *int) *RunSummaryUpdateOne {
	if v != nil {
		_u.SetToolUseCount(*v)
	}
	return _u
}

// AddToolUseCount adds value to the "tool_use_count" field.
func (_u *RunSummaryUpdateOne) AddToolUseCount(v int) *RunSummaryUpdateOne {
	_u.mutation.AddToolUseCount(v)
	return _u
}

// SetNodeStartCount sets the "node_start_count" field.
func (_u *RunSummaryUpdateOne) SetNodeStartCount(v int) *RunSummaryUpdateOne {
	_u.mutation.ResetNodeStartCount()
	_u.mutation.SetNodeStartCount(v)
	return _u
}

// SetNillableNodeStartCount sets the "node_start_count" field if the given value is not nil.
func (_u *RunSummaryUpdateOne) SetNillableNodeStartCount(v *int) *RunSummaryUpdateOne {
	if v != nil {
		_u.SetNodeStartCount(*v)
	}
	return _u
}

// AddNodeStartCount adds value to the "node_start_count" field.
func (_u *RunSummaryUpdateOne) AddNodeStartCount(v int) *RunSummaryUpdateOne {
	_u.mutation.AddNodeStartCount(v)
	return _u
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_u *RunSummaryUpdateOne) SetExecutionTimeMs(v int64) *RunSummaryUpdateOne {
	_u.mutation.ResetExecutionTimeMs()
	_u.mutation.SetExecutionTimeMs(v)
	return _u
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_u *RunSummaryUpdateOne) SetNillableExecutionTimeMs(v *int64) *RunSummaryUpdateOne {
	if v != nil {
		_u.SetExecutionTimeMs(*v)
	}
	return _u
}

// AddExecutionTimeMs adds value to the "execution_time_ms" field.
func (_u *RunSummaryUpdateOne) AddExecutionTimeMs(v int64) *RunSummaryUpdateOne {
	_u.mutation.AddExecutionTimeMs(v)
	return _u
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (_u *RunSummaryUpdateOne) SetEstimatedCostUsd(v float64) *RunSummaryUpdateOne {
	_u.mutation.ResetEstimatedCostUsd()
	_u.mutation.SetEstimatedCostUsd(v)
	return _u
}

// SetNillableEstimatedCostUsd sets the "estimated_cost_usd" field if the given value is not nil.
func (_u *RunSummaryUpdateOne) SetNillableEstimatedCostUsd(v *float64) *RunSummaryUpdateOne {
	if v != nil {
		_u.SetEstimatedCostUsd(*v)
	}
	return _u
}

// AddEstimatedCostUsd adds value to the "estimated_cost_usd" field.
func (_u *RunSummaryUpdateOne) AddEstimatedCostUsd(v float64) *RunSummaryUpdateOne {
	_u.mutation.AddEstimatedCostUsd(v)
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *RunSummaryUpdateOne) SetRiskScore(v float64) *RunSummaryUpdateOne {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *RunSummaryUpdateOne) SetNillableRiskScore(v *float64) *RunSummaryUpdateOne {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *RunSummaryUpdateOne) AddRiskScore(v float64) *RunSummaryUpdateOne {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetAnomaly sets the "anomaly" field.
func (_u *RunSummaryUpdateOne) SetAnomaly(v bool) *RunSummaryUpdateOne {
	_u.mutation.SetAnomaly(v)
	return _u
}

// SetNillableAnomaly sets the "anomaly" field if the given value is not nil.
func (_u *RunSummaryUpdateOne) SetNillableAnomaly(v *bool) *RunSummaryUpdateOne {
	if v != nil {
		_u.SetAnomaly(*v)
	}
	return _u
}

// SetClientDisconnected sets the "client_disconnected" field.
func (_u *RunSummaryUpdateOne) SetClientDisconnected(v bool) *RunSummaryUpdateOne {
	_u.mutation.SetClientDisconnected(v)
	return _u
}

// SetNillableClientDisconnected sets the "client_disconnected" field if the given value is not nil.
func (_u *RunSummaryUpdateOne) SetNillableClientDisconnected(v *bool) *RunSummaryUpdateOne {
	if v != nil {
		_u.SetClientDisconnected(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunSummaryUpdateOne) SetCompletedAt(v time.Time) *RunSummaryUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunSummaryUpdateOne) SetNillableCompletedAt(v *time.Time) *RunSummaryUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunSummaryUpdateOne) ClearCompletedAt() *RunSummaryUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *RunSummaryUpdateOne) SetDeletedAt(v time.Time) *RunSummaryUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *RunSummaryUpdateOne) SetNillableDeletedAt(v *time.Time) *RunSummaryUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *RunSummaryUpdateOne) ClearDeletedAt() *RunSummaryUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddEventIDs adds the "events" edge to the RunEvent entity by IDs.
func (_u *RunSummaryUpdateOne) AddEventIDs(ids ...int) *RunSummaryUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the RunEvent entity.
func (_u *RunSummaryUpdateOne) AddEvents(v ...*RunEvent) *RunSummaryUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddNodeMetricIDs adds the "node_metrics" edge to the RunNodeMetric entity by IDs.
func (_u *RunSummaryUpdateOne) AddNodeMetricIDs(ids ...int) *RunSummaryUpdateOne {
	_u.mutation.AddNodeMetricIDs(ids...)
	return _u
}

// AddNodeMetrics adds the "node_metrics" edges to the RunNodeMetric entity.
func (_u *RunSummaryUpdateOne) AddNodeMetrics(v ...*RunNodeMetric) *RunSummaryUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNodeMetricIDs(ids...)
}

// AddTelemetryIDs adds the "telemetry" edge to the RunTelemetry entity by IDs.
func (_u *RunSummaryUpdateOne) AddTelemetryIDs(ids ...int) *RunSummaryUpdateOne {
	_u.mutation.AddTelemetryIDs(ids...)
	return _u
}

// AddTelemetry adds the "telemetry" edges to the RunTelemetry entity.
func (_u *RunSummaryUpdateOne) AddTelemetry(v ...*RunTelemetry) *RunSummaryUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTelemetryIDs(ids...)
}

// Mutation returns the RunSummaryMutation object of the builder.
func (_u *RunSummaryUpdateOne) Mutation() *RunSummaryMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the RunEvent entity.
func (_u *RunSummaryUpdateOne) ClearEvents() *RunSummaryUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to RunEvent entities by IDs.
func (_u *RunSummaryUpdateOne) RemoveEventIDs(ids ...int) *RunSummaryUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to RunEvent entities.
func (_u *RunSummaryUpdateOne) RemoveEvents(v ...*RunEvent) *RunSummaryUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearNodeMetrics clears all "node_metrics" edges to the RunNodeMetric entity.
func (_u *RunSummaryUpdateOne) ClearNodeMetrics() *RunSummaryUpdateOne {
	_u.mutation.ClearNodeMetrics()
	return _u
}

// RemoveNodeMetricIDs removes the "node_metrics" edge to RunNodeMetric entities by IDs.
func (_u *RunSummaryUpdateOne) RemoveNodeMetricIDs(ids ...int) *RunSummaryUpdateOne {
	_u.mutation.RemoveNodeMetricIDs(ids...)
	return _u
}

// RemoveNodeMetrics removes "node_metrics" edges to RunNodeMetric entities.
func (_u *RunSummaryUpdateOne) RemoveNodeMetrics(v ...*RunNodeMetric) *RunSummaryUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNodeMetricIDs(ids...)
}

// ClearTelemetry clears all "telemetry" edges to the RunTelemetry entity.
func (_u *RunSummaryUpdateOne) ClearTelemetry() *RunSummaryUpdateOne {
	_u.mutation.ClearTelemetry()
	return _u
}

// RemoveTelemetryIDs removes the "telemetry" edge to RunTelemetry entities by IDs.
func (_u *RunSummaryUpdateOne) RemoveTelemetryIDs(ids ...int) *RunSummaryUpdateOne {
	_u.mutation.RemoveTelemetryIDs(ids...)
	return _u
}

// RemoveTelemetry removes "telemetry" edges to RunTelemetry entities.
func (_u *RunSummaryUpdateOne) RemoveTelemetry(v ...*RunTelemetry) *RunSummaryUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTelemetryIDs(ids...)
}

// Where appends a list predicates to the RunSummaryUpdate builder.
func (_u *RunSummaryUpdateOne) Where(ps ...predicate.RunSummary) *RunSummaryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunSummaryUpdateOne) Select(field string, fields ...string) *RunSummaryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RunSummary entity.
func (_u *RunSummaryUpdateOne) Save(ctx context.Context) (*RunSummary, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunSummaryUpdateOne) SaveX(ctx context.Context) *RunSummary {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunSummaryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunSummaryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunSummaryUpdateOne) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := runsummary.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "RunSummary.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := runsummary.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RunSummary.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RunSummaryUpdateOne) sqlSave(ctx context.Context) (_node *RunSummary, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runsummary.Table, runsummary.Columns, sqlgraph.NewFieldSpec(runsummary.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RunSummary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runsummary.FieldID)
		for _, f := range fields {
			if !runsummary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != runsummary.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(runsummary.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(runsummary.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(runsummary.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(runsummary.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(runsummary.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.PresetKey(); ok {
		_spec.SetField(runsummary.FieldPresetKey, field.TypeString, value)
	}
	if _u.mutation.PresetKeyCleared() {
		_spec.ClearField(runsummary.FieldPresetKey, field.TypeString)
	}
	if value, ok := _u.mutation.StructuredOutputSchema(); ok {
		_spec.SetField(runsummary.FieldStructuredOutputSchema, field.TypeString, value)
	}
	if _u.mutation.StructuredOutputSchemaCleared() {
		_spec.ClearField(runsummary.FieldStructuredOutputSchema, field.TypeString)
	}
	if value, ok := _u.mutation.ModelID(); ok {
		_spec.SetField(runsummary.FieldModelID, field.TypeString, value)
	}
	if _u.mutation.ModelIDCleared() {
		_spec.ClearField(runsummary.FieldModelID, field.TypeString)
	}
	if value, ok := _u.mutation.ResultText(); ok {
		_spec.SetField(runsummary.FieldResultText, field.TypeString, value)
	}
	if _u.mutation.ResultTextCleared() {
		_spec.ClearField(runsummary.FieldResultText, field.TypeString)
	}
	if value, ok := _u.mutation.StructuredOutput(); ok {
		_spec.SetField(runsummary.FieldStructuredOutput, field.TypeJSON, value)
	}
	if _u.mutation.StructuredOutputCleared() {
		_spec.ClearField(runsummary.FieldStructuredOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(runsummary.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(runsummary.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(runsummary.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(runsummary.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Agents(); ok {
		_spec.SetField(runsummary.FieldAgents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAgents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, runsummary.FieldAgents, value)
		})
	}
	if _u.mutation.AgentsCleared() {
		_spec.ClearField(runsummary.FieldAgents, field.TypeJSON)
	}
	if value, ok := _u.mutation.NodeHistory(); ok {
		_spec.SetField(runsummary.FieldNodeHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNodeHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, runsummary.FieldNodeHistory, value)
		})
	}
	if _u.mutation.NodeHistoryCleared() {
		_spec.ClearField(runsummary.FieldNodeHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExecutionOrder(); ok {
		_spec.SetField(runsummary.FieldExecutionOrder, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExecutionOrder(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, runsummary.FieldExecutionOrder, value)
		})
	}
	if _u.mutation.ExecutionOrderCleared() {
		_spec.ClearField(runsummary.FieldExecutionOrder, field.TypeJSON)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(runsummary.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(runsummary.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(runsummary.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(runsummary.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(runsummary.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(runsummary.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToolUseCount(); ok {
		_spec.SetField(runsummary.FieldToolUseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToolUseCount(); ok {
		_spec.AddField(runsummary.FieldToolUseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NodeStartCount(); ok {
		_spec.SetField(runsummary.FieldNodeStartCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNodeStartCount(); ok {
		_spec.AddField(runsummary.FieldNodeStartCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(runsummary.FieldExecutionTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedExecutionTimeMs(); ok {
		_spec.AddField(runsummary.FieldExecutionTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.EstimatedCostUsd(); ok {
		_spec.SetField(runsummary.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCostUsd(); ok {
		_spec.AddField(runsummary.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(runsummary.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(runsummary.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Anomaly(); ok {
		_spec.SetField(runsummary.FieldAnomaly, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ClientDisconnected(); ok {
		_spec.SetField(runsummary.FieldClientDisconnected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(runsummary.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(runsummary.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(runsummary.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(runsummary.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NodeMetricsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNodeMetricsIDs(); len(nodes) > 0 && !_u.mutation.NodeMetricsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NodeMetricsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TelemetryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTelemetryIDs(); len(nodes) > 0 && !_u.mutation.TelemetryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TelemetryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RunSummary{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runsummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
