// Code generated by ent, DO NOT EDIT.

package runnodemetric

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agentfleet/agentfleet/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldEQ(FieldRunID, v))
}

// NodeID applies equality check predicate on the "node_id" field. It's identical to NodeIDEQ.
func NodeID(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldEQ(FieldNodeID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldEQ(FieldStatus, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldEQ(FieldOutputTokens, v))
}

// TotalTokens applies equality check predicate on the "total_tokens" field. It's identical to TotalTokensEQ.
func TotalTokens(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldEQ(FieldTotalTokens, v))
}

// ExecutionCount applies equality check predicate on the "execution_count" field. It's identical to ExecutionCountEQ.
func ExecutionCount(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldEQ(FieldExecutionCount, v))
}

// StreamEventCount applies equality check predicate on the "stream_event_count" field. It's identical to StreamEventCountEQ.
func StreamEventCount(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldEQ(FieldStreamEventCount, v))
}

// CaptureCapped applies equality check predicate on the "capture_capped" field. It's identical to CaptureCappedEQ.
func CaptureCapped(v bool) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldEQ(FieldCaptureCapped, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldEQ(FieldDurationMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldEQ(FieldCreatedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldContainsFold(FieldRunID, v))
}

// NodeIDEQ applies the EQ predicate on the "node_id" field.
func NodeIDEQ(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldEQ(FieldNodeID, v))
}

// NodeIDNEQ applies the NEQ predicate on the "node_id" field.
func NodeIDNEQ(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldNEQ(FieldNodeID, v))
}

// NodeIDIn applies the In predicate on the "node_id" field.
func NodeIDIn(vs ...string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldIn(FieldNodeID, vs...))
}

// NodeIDNotIn applies the NotIn predicate on the "node_id" field.
func NodeIDNotIn(vs ...string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldNotIn(FieldNodeID, vs...))
}

// NodeIDGT applies the GT predicate on the "node_id" field.
func NodeIDGT(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldGT(FieldNodeID, v))
}

// NodeIDGTE applies the GTE predicate on the "node_id" field.
func NodeIDGTE(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldGTE(FieldNodeID, v))
}

// NodeIDLT applies the LT predicate on the "node_id" field.
func NodeIDLT(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldLT(FieldNodeID, v))
}

// NodeIDLTE applies the LTE predicate on the "node_id" field.
func NodeIDLTE(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldLTE(FieldNodeID, v))
}

// NodeIDContains applies the Contains predicate on the "node_id" field.
func NodeIDContains(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldContains(FieldNodeID, v))
}

// NodeIDHasPrefix applies the HasPrefix predicate on the "node_id" field.
func NodeIDHasPrefix(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldHasPrefix(FieldNodeID, v))
}

// NodeIDHasSuffix applies the HasSuffix predicate on the "node_id" field.
func NodeIDHasSuffix(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldHasSuffix(FieldNodeID, v))
}

// NodeIDEqualFold applies the EqualFold predicate on the "node_id" field.
func NodeIDEqualFold(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldEqualFold(FieldNodeID, v))
}

// NodeIDContainsFold applies the ContainsFold predicate on the "node_id" field.
func NodeIDContainsFold(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldContainsFold(FieldNodeID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusIsNil applies the IsNil predicate on the "status" field.
func StatusIsNil() predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldIsNull(FieldStatus))
}

// StatusNotNil applies the NotNil predicate on the "status" field.
func StatusNotNil() predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldNotNull(FieldStatus))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldContainsFold(FieldStatus, v))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldLTE(FieldOutputTokens, v))
}

// TotalTokensEQ applies the EQ predicate on the "total_tokens" field.
func TotalTokensEQ(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalTokensNEQ applies the NEQ predicate on the "total_tokens" field.
func TotalTokensNEQ(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldNEQ(FieldTotalTokens, v))
}

// TotalTokensIn applies the In predicate on the "total_tokens" field.
func TotalTokensIn(vs ...int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldIn(FieldTotalTokens, vs...))
}

// TotalTokensNotIn applies the NotIn predicate on the "total_tokens" field.
func TotalTokensNotIn(vs ...int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldNotIn(FieldTotalTokens, vs...))
}

// TotalTokensGT applies the GT predicate on the "total_tokens" field.
func TotalTokensGT(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldGT(FieldTotalTokens, v))
}

// TotalTokensGTE applies the GTE predicate on the "total_tokens" field.
func TotalTokensGTE(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldGTE(FieldTotalTokens, v))
}

// TotalTokensLT applies the LT predicate on the "total_tokens" field.
func TotalTokensLT(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldLT(FieldTotalTokens, v))
}

// TotalTokensLTE applies the LTE predicate on the "total_tokens" field.
func TotalTokensLTE(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldLTE(FieldTotalTokens, v))
}

// ExecutionCountEQ applies the EQ predicate on the "execution_count" field.
func ExecutionCountEQ(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldEQ(FieldExecutionCount, v))
}

// ExecutionCountNEQ applies the NEQ predicate on the "execution_count" field.
func ExecutionCountNEQ(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldNEQ(FieldExecutionCount, v))
}

// ExecutionCountIn applies the In predicate on the "execution_count" field.
func ExecutionCountIn(vs ...int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldIn(FieldExecutionCount, vs...))
}

// ExecutionCountNotIn applies the NotIn predicate on the "execution_count" field.
func ExecutionCountNotIn(vs ...int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldNotIn(FieldExecutionCount, vs...))
}

// ExecutionCountGT applies the GT predicate on the "execution_count" field.
func ExecutionCountGT(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldGT(FieldExecutionCount, v))
}

// ExecutionCountGTE applies the GTE predicate on the "execution_count" field.
func ExecutionCountGTE(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldGTE(FieldExecutionCount, v))
}

// ExecutionCountLT applies the LT predicate on the "execution_count" field.
func ExecutionCountLT(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldLT(FieldExecutionCount, v))
}

// ExecutionCountLTE applies the LTE predicate on the "execution_count" field.
func ExecutionCountLTE(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldLTE(FieldExecutionCount, v))
}

// StreamEventCountEQ applies the EQ predicate on the "stream_event_count" field.
func StreamEventCountEQ(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldEQ(FieldStreamEventCount, v))
}

// StreamEventCountNEQ applies the NEQ predicate on the "stream_event_count" field.
func StreamEventCountNEQ(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldNEQ(FieldStreamEventCount, v))
}

// StreamEventCountIn applies the In predicate on the "stream_event_count" field.
func StreamEventCountIn(vs ...int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldIn(FieldStreamEventCount, vs...))
}

// StreamEventCountNotIn applies the NotIn predicate on the "stream_event_count" field.
func StreamEventCountNotIn(vs ...int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldNotIn(FieldStreamEventCount, vs...))
}

// StreamEventCountGT applies the GT predicate on the "stream_event_count" field.
func StreamEventCountGT(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldGT(FieldStreamEventCount, v))
}

// StreamEventCountGTE applies the GTE predicate on the "stream_event_count" field.
func StreamEventCountGTE(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldGTE(FieldStreamEventCount, v))
}

// StreamEventCountLT applies the LT predicate on the "stream_event_count" field.
func StreamEventCountLT(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldLT(FieldStreamEventCount, v))
}

// StreamEventCountLTE applies the LTE predicate on the "stream_event_count" field.
func StreamEventCountLTE(v int) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldLTE(FieldStreamEventCount, v))
}

// CaptureCappedEQ applies the EQ predicate on the "capture_capped" field.
func CaptureCappedEQ(v bool) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldEQ(FieldCaptureCapped, v))
}

// CaptureCappedNEQ applies the NEQ predicate on the "capture_capped" field.
func CaptureCappedNEQ(v bool) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldNEQ(FieldCaptureCapped, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldLTE(FieldDurationMs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.RunNodeMetric {
	return predicate.RunNodeMetric(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.RunSummary) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RunNodeMetric) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RunNodeMetric) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RunNodeMetric) predicate.RunNodeMetric {
	return predicate.RunNodeMetric(sql.NotPredicates(p))
}
