// Code generated by ent, DO NOT EDIT.

package runtelemetry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agentfleet/agentfleet/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldEQ(FieldRunID, v))
}

// SpanID applies equality check predicate on the "span_id" field. It's identical to SpanIDEQ.
func SpanID(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldEQ(FieldSpanID, v))
}

// TraceID applies equality check predicate on the "trace_id" field. It's identical to TraceIDEQ.
func TraceID(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldEQ(FieldTraceID, v))
}

// ParentSpanID applies equality check predicate on the "parent_span_id" field. It's identical to ParentSpanIDEQ.
func ParentSpanID(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldEQ(FieldParentSpanID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldEQ(FieldName, v))
}

// StatusCode applies equality check predicate on the "status_code" field. It's identical to StatusCodeEQ.
func StatusCode(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldEQ(FieldStatusCode, v))
}

// StatusMessage applies equality check predicate on the "status_message" field. It's identical to StatusMessageEQ.
func StatusMessage(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldEQ(FieldStatusMessage, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldEQ(FieldEndedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldEQ(FieldCreatedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldContainsFold(FieldRunID, v))
}

// SpanIDEQ applies the EQ predicate on the "span_id" field.
func SpanIDEQ(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldEQ(FieldSpanID, v))
}

// SpanIDNEQ applies the NEQ predicate on the "span_id" field.
func SpanIDNEQ(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldNEQ(FieldSpanID, v))
}

// SpanIDIn applies the In predicate on the "span_id" field.
func SpanIDIn(vs ...string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldIn(FieldSpanID, vs...))
}

// SpanIDNotIn applies the NotIn predicate on the "span_id" field.
func SpanIDNotIn(vs ...string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldNotIn(FieldSpanID, vs...))
}

// SpanIDGT applies the GT predicate on the "span_id" field.
func SpanIDGT(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldGT(FieldSpanID, v))
}

// SpanIDGTE applies the GTE predicate on the "span_id" field.
func SpanIDGTE(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldGTE(FieldSpanID, v))
}

// SpanIDLT applies the LT predicate on the "span_id" field.
func SpanIDLT(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldLT(FieldSpanID, v))
}

// SpanIDLTE applies the LTE predicate on the "span_id" field.
func SpanIDLTE(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldLTE(FieldSpanID, v))
}

// SpanIDContains applies the Contains predicate on the "span_id" field.
func SpanIDContains(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldContains(FieldSpanID, v))
}

// SpanIDHasPrefix applies the HasPrefix predicate on the "span_id" field.
func SpanIDHasPrefix(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldHasPrefix(FieldSpanID, v))
}

// SpanIDHasSuffix applies the HasSuffix predicate on the "span_id" field.
func SpanIDHasSuffix(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldHasSuffix(FieldSpanID, v))
}

// SpanIDEqualFold applies the EqualFold predicate on the "span_id" field.
func SpanIDEqualFold(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldEqualFold(FieldSpanID, v))
}

// SpanIDContainsFold applies the ContainsFold predicate on the "span_id" field.
func SpanIDContainsFold(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldContainsFold(FieldSpanID, v))
}

// TraceIDEQ applies the EQ predicate on the "trace_id" field.
func TraceIDEQ(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldEQ(FieldTraceID, v))
}

// TraceIDNEQ applies the NEQ predicate on the "trace_id" field.
func TraceIDNEQ(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldNEQ(FieldTraceID, v))
}

// TraceIDIn applies the In predicate on the "trace_id" field.
func TraceIDIn(vs ...string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldIn(FieldTraceID, vs...))
}

// TraceIDNotIn applies the NotIn predicate on the "trace_id" field.
func TraceIDNotIn(vs ...string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldNotIn(FieldTraceID, vs...))
}

// TraceIDGT applies the GT predicate on the "trace_id" field.
func TraceIDGT(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldGT(FieldTraceID, v))
}

// TraceIDGTE applies the GTE predicate on the "trace_id" field.
func TraceIDGTE(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldGTE(FieldTraceID, v))
}

// TraceIDLT applies the LT predicate on the "trace_id" field.
func TraceIDLT(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldLT(FieldTraceID, v))
}

// TraceIDLTE applies the LTE predicate on the "trace_id" field.
func TraceIDLTE(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldLTE(FieldTraceID, v))
}

// TraceIDContains applies the Contains predicate on the "trace_id" field.
func TraceIDContains(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldContains(FieldTraceID, v))
}

// TraceIDHasPrefix applies the HasPrefix predicate on the "trace_id" field.
func TraceIDHasPrefix(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldHasPrefix(FieldTraceID, v))
}

// TraceIDHasSuffix applies the HasSuffix predicate on the "trace_id" field.
func TraceIDHasSuffix(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldHasSuffix(FieldTraceID, v))
}

// TraceIDEqualFold applies the EqualFold predicate on the "trace_id" field.
func TraceIDEqualFold(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldEqualFold(FieldTraceID, v))
}

// TraceIDContainsFold applies the ContainsFold predicate on the "trace_id" field.
func TraceIDContainsFold(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldContainsFold(FieldTraceID, v))
}

// ParentSpanIDEQ applies the EQ predicate on the "parent_span_id" field.
func ParentSpanIDEQ(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldEQ(FieldParentSpanID, v))
}

// ParentSpanIDNEQ applies the NEQ predicate on the "parent_span_id" field.
func ParentSpanIDNEQ(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldNEQ(FieldParentSpanID, v))
}

// ParentSpanIDIn applies the In predicate on the "parent_span_id" field.
func ParentSpanIDIn(vs ...string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldIn(FieldParentSpanID, vs...))
}

// ParentSpanIDNotIn applies the NotIn predicate on the "parent_span_id" field.
func ParentSpanIDNotIn(vs ...string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldNotIn(FieldParentSpanID, vs...))
}

// ParentSpanIDGT applies the GT predicate on the "parent_span_id" field.
func ParentSpanIDGT(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldGT(FieldParentSpanID, v))
}

// ParentSpanIDGTE applies the GTE predicate on the "parent_span_id" field.
func ParentSpanIDGTE(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldGTE(FieldParentSpanID, v))
}

// ParentSpanIDLT applies the LT predicate on the "parent_span_id" field.
func ParentSpanIDLT(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldLT(FieldParentSpanID, v))
}

// ParentSpanIDLTE applies the LTE predicate on the "parent_span_id" field.
func ParentSpanIDLTE(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldLTE(FieldParentSpanID, v))
}

// ParentSpanIDContains applies the Contains predicate on the "parent_span_id" field.
func ParentSpanIDContains(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldContains(FieldParentSpanID, v))
}

// ParentSpanIDHasPrefix applies the HasPrefix predicate on the "parent_span_id" field.
func ParentSpanIDHasPrefix(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldHasPrefix(FieldParentSpanID, v))
}

// ParentSpanIDHasSuffix applies the HasSuffix predicate on the "parent_span_id" field.
func ParentSpanIDHasSuffix(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldHasSuffix(FieldParentSpanID, v))
}

// ParentSpanIDIsNil applies the IsNil predicate on the "parent_span_id" field.
func ParentSpanIDIsNil() predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldIsNull(FieldParentSpanID))
}

// ParentSpanIDNotNil applies the NotNil predicate on the "parent_span_id" field.
func ParentSpanIDNotNil() predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldNotNull(FieldParentSpanID))
}

// ParentSpanIDEqualFold applies the EqualFold predicate on the "parent_span_id" field.
func ParentSpanIDEqualFold(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldEqualFold(FieldParentSpanID, v))
}

// ParentSpanIDContainsFold applies the ContainsFold predicate on the "parent_span_id" field.
func ParentSpanIDContainsFold(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldContainsFold(FieldParentSpanID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldContainsFold(FieldName, v))
}

// StatusCodeEQ applies the EQ predicate on the "status_code" field.
func StatusCodeEQ(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldEQ(FieldStatusCode, v))
}

// StatusCodeNEQ applies the NEQ predicate on the "status_code" field.
func StatusCodeNEQ(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldNEQ(FieldStatusCode, v))
}

// StatusCodeIn applies the In predicate on the "status_code" field.
func StatusCodeIn(vs ...string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldIn(FieldStatusCode, vs...))
}

// StatusCodeNotIn applies the NotIn predicate on the "status_code" field.
func StatusCodeNotIn(vs ...string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldNotIn(FieldStatusCode, vs...))
}

// StatusCodeGT applies the GT predicate on the "status_code" field.
func StatusCodeGT(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldGT(FieldStatusCode, v))
}

// StatusCodeGTE applies the GTE predicate on the "status_code" field.
func StatusCodeGTE(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldGTE(FieldStatusCode, v))
}

// StatusCodeLT applies the LT predicate on the "status_code" field.
func StatusCodeLT(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldLT(FieldStatusCode, v))
}

// StatusCodeLTE applies the LTE predicate on the "status_code" field.
func StatusCodeLTE(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldLTE(FieldStatusCode, v))
}

// StatusCodeContains applies the Contains predicate on the "status_code" field.
func StatusCodeContains(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldContains(FieldStatusCode, v))
}

// StatusCodeHasPrefix applies the HasPrefix predicate on the "status_code" field.
func StatusCodeHasPrefix(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldHasPrefix(FieldStatusCode, v))
}

// StatusCodeHasSuffix applies the HasSuffix predicate on the "status_code" field.
func StatusCodeHasSuffix(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldHasSuffix(FieldStatusCode, v))
}

// StatusCodeIsNil applies the IsNil predicate on the "status_code" field.
func StatusCodeIsNil() predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldIsNull(FieldStatusCode))
}

// StatusCodeNotNil applies the NotNil predicate on the "status_code" field.
func StatusCodeNotNil() predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldNotNull(FieldStatusCode))
}

// StatusCodeEqualFold applies the EqualFold predicate on the "status_code" field.
func StatusCodeEqualFold(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldEqualFold(FieldStatusCode, v))
}

// StatusCodeContainsFold applies the ContainsFold predicate on the "status_code" field.
func StatusCodeContainsFold(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldContainsFold(FieldStatusCode, v))
}

// StatusMessageEQ applies the EQ predicate on the "status_message" field.
func StatusMessageEQ(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldEQ(FieldStatusMessage, v))
}

// StatusMessageNEQ applies the NEQ predicate on the "status_message" field.
func StatusMessageNEQ(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldNEQ(FieldStatusMessage, v))
}

// StatusMessageIn applies the In predicate on the "status_message" field.
func StatusMessageIn(vs ...string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldIn(FieldStatusMessage, vs...))
}

// StatusMessageNotIn applies the NotIn predicate on the "status_message" field.
func StatusMessageNotIn(vs ...string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldNotIn(FieldStatusMessage, vs...))
}

// StatusMessageGT applies the GT predicate on the "status_message" field.
func StatusMessageGT(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldGT(FieldStatusMessage, v))
}

// StatusMessageGTE applies the GTE predicate on the "status_message" field.
func StatusMessageGTE(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldGTE(FieldStatusMessage, v))
}

// StatusMessageLT applies the LT predicate on the "status_message" field.
func StatusMessageLT(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldLT(FieldStatusMessage, v))
}

// StatusMessageLTE applies the LTE predicate on the "status_message" field.
func StatusMessageLTE(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldLTE(FieldStatusMessage, v))
}

// StatusMessageContains applies the Contains predicate on the "status_message" field.
func StatusMessageContains(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldContains(FieldStatusMessage, v))
}

// StatusMessageHasPrefix applies the HasPrefix predicate on the "status_message" field.
func StatusMessageHasPrefix(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldHasPrefix(FieldStatusMessage, v))
}

// StatusMessageHasSuffix applies the HasSuffix predicate on the "status_message" field.
func StatusMessageHasSuffix(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldHasSuffix(FieldStatusMessage, v))
}

// StatusMessageIsNil applies the IsNil predicate on the "status_message" field.
func StatusMessageIsNil() predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldIsNull(FieldStatusMessage))
}

// StatusMessageNotNil applies the NotNil predicate on the "status_message" field.
func StatusMessageNotNil() predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldNotNull(FieldStatusMessage))
}

// StatusMessageEqualFold applies the EqualFold predicate on the "status_message" field.
func StatusMessageEqualFold(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldEqualFold(FieldStatusMessage, v))
}

// StatusMessageContainsFold applies the ContainsFold predicate on the "status_message" field.
func StatusMessageContainsFold(v string) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldContainsFold(FieldStatusMessage, v))
}

// AttributesIsNil applies the IsNil predicate on the "attributes" field.
func AttributesIsNil() predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldIsNull(FieldAttributes))
}

// AttributesNotNil applies the NotNil predicate on the "attributes" field.
func AttributesNotNil() predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldNotNull(FieldAttributes))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldLTE(FieldStartedAt, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldNotNull(FieldEndedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.RunTelemetry {
	return predicate.RunTelemetry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.RunSummary) predicate.RunTelemetry {
	return predicate.RunTelemetry(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RunTelemetry) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RunTelemetry) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RunTelemetry) predicate.RunTelemetry {
	return predicate.RunTelemetry(sql.NotPredicates(p))
}
