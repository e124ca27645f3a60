// Code generated by ent, DO NOT EDIT.

package runsummary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agentfleet/agentfleet/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldContainsFold(FieldID, id))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldPrompt, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldSessionID, v))
}

// PresetKey applies equality check predicate on the "preset_key" field. It's identical to PresetKeyEQ.
func PresetKey(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldPresetKey, v))
}

// StructuredOutputSchema applies equality check predicate on the "structured_output_schema" field. It's identical to StructuredOutputSchemaEQ.
func StructuredOutputSchema(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldStructuredOutputSchema, v))
}

// ModelID applies equality check predicate on the "model_id" field. It's identical to ModelIDEQ.
func ModelID(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldModelID, v))
}

// ResultText applies equality check predicate on the "result_text" field. It's identical to ResultTextEQ.
func ResultText(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldResultText, v))
}

// ErrorCode applies equality check predicate on the "error_code" field. It's identical to ErrorCodeEQ.
func ErrorCode(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldErrorMessage, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldOutputTokens, v))
}

// TotalTokens applies equality check predicate on the "total_tokens" field. It's identical to TotalTokensEQ.
func TotalTokens(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldTotalTokens, v))
}

// ToolUseCount applies equality check predicate on the "tool_use_count" field. It's identical to ToolUseCountEQ.
func ToolUseCount(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldToolUseCount, v))
}

// NodeStartCount applies equality check predicate on the "node_start_count" field. It's identical to NodeStartCountEQ.
func NodeStartCount(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldNodeStartCount, v))
}

// ExecutionTimeMs applies equality check predicate on the "execution_time_ms" field. It's identical to ExecutionTimeMsEQ.
func ExecutionTimeMs(v int64) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldExecutionTimeMs, v))
}

// EstimatedCostUsd applies equality check predicate on the "estimated_cost_usd" field. It's identical to EstimatedCostUsdEQ.
func EstimatedCostUsd(v float64) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldEstimatedCostUsd, v))
}

// RiskScore applies equality check predicate on the "risk_score" field. It's identical to RiskScoreEQ.
func RiskScore(v float64) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldRiskScore, v))
}

// Anomaly applies equality check predicate on the "anomaly" field. It's identical to AnomalyEQ.
func Anomaly(v bool) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldAnomaly, v))
}

// ClientDisconnected applies equality check predicate on the "client_disconnected" field. It's identical to ClientDisconnectedEQ.
func ClientDisconnected(v bool) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldClientDisconnected, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldCompletedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldDeletedAt, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v Mode) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v Mode) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...Mode) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...Mode) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotIn(FieldMode, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotIn(FieldStatus, vs...))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldContainsFold(FieldPrompt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldContainsFold(FieldSessionID, v))
}

// PresetKeyEQ applies the EQ predicate on the "preset_key" field.
func PresetKeyEQ(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldPresetKey, v))
}

// PresetKeyNEQ applies the NEQ predicate on the "preset_key" field.
func PresetKeyNEQ(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNEQ(FieldPresetKey, v))
}

// PresetKeyIn applies the In predicate on the "preset_key" field.
func PresetKeyIn(vs ...string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIn(FieldPresetKey, vs...))
}

// PresetKeyNotIn applies the NotIn predicate on the "preset_key" field.
func PresetKeyNotIn(vs ...string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotIn(FieldPresetKey, vs...))
}

// PresetKeyGT applies the GT predicate on the "preset_key" field.
func PresetKeyGT(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGT(FieldPresetKey, v))
}

// PresetKeyGTE applies the GTE predicate on the "preset_key" field.
func PresetKeyGTE(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGTE(FieldPresetKey, v))
}

// PresetKeyLT applies the LT predicate on the "preset_key" field.
func PresetKeyLT(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLT(FieldPresetKey, v))
}

// PresetKeyLTE applies the LTE predicate on the "preset_key" field.
func PresetKeyLTE(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLTE(FieldPresetKey, v))
}

// PresetKeyContains applies the Contains predicate on the "preset_key" field.
func PresetKeyContains(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldContains(FieldPresetKey, v))
}

// PresetKeyHasPrefix applies the HasPrefix predicate on the "preset_key" field.
func PresetKeyHasPrefix(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldHasPrefix(FieldPresetKey, v))
}

// PresetKeyHasSuffix applies the HasSuffix predicate on the "preset_key" field.
func PresetKeyHasSuffix(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldHasSuffix(FieldPresetKey, v))
}

// PresetKeyIsNil applies the IsNil predicate on the "preset_key" field.
func PresetKeyIsNil() predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIsNull(FieldPresetKey))
}

// PresetKeyNotNil applies the NotNil predicate on the "preset_key" field.
func PresetKeyNotNil() predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotNull(FieldPresetKey))
}

// PresetKeyEqualFold applies the EqualFold predicate on the "preset_key" field.
func PresetKeyEqualFold(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEqualFold(FieldPresetKey, v))
}

// PresetKeyContainsFold applies the ContainsFold predicate on the "preset_key" field.
func PresetKeyContainsFold(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldContainsFold(FieldPresetKey, v))
}

// StructuredOutputSchemaEQ applies the EQ predicate on the "structured_output_schema" field.
func StructuredOutputSchemaEQ(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldStructuredOutputSchema, v))
}

// StructuredOutputSchemaNEQ applies the NEQ predicate on the "structured_output_schema" field.
func StructuredOutputSchemaNEQ(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNEQ(FieldStructuredOutputSchema, v))
}

// StructuredOutputSchemaIn applies the In predicate on the "structured_output_schema" field.
func StructuredOutputSchemaIn(vs ...string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIn(FieldStructuredOutputSchema, vs...))
}

// StructuredOutputSchemaNotIn applies the NotIn predicate on the "structured_output_schema" field.
func StructuredOutputSchemaNotIn(vs ...string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotIn(FieldStructuredOutputSchema, vs...))
}

// StructuredOutputSchemaGT applies the GT predicate on the "structured_output_schema" field.
func StructuredOutputSchemaGT(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGT(FieldStructuredOutputSchema, v))
}

// StructuredOutputSchemaGTE applies the GTE predicate on the "structured_output_schema" field.
func StructuredOutputSchemaGTE(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGTE(FieldStructuredOutputSchema, v))
}

// StructuredOutputSchemaLT applies the LT predicate on the "structured_output_schema" field.
func StructuredOutputSchemaLT(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLT(FieldStructuredOutputSchema, v))
}

// StructuredOutputSchemaLTE applies the LTE predicate on the "structured_output_schema" field.
func StructuredOutputSchemaLTE(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLTE(FieldStructuredOutputSchema, v))
}

// StructuredOutputSchemaContains applies the Contains predicate on the "structured_output_schema" field.
func StructuredOutputSchemaContains(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldContains(FieldStructuredOutputSchema, v))
}

// StructuredOutputSchemaHasPrefix applies the HasPrefix predicate on the "structured_output_schema" field.
func StructuredOutputSchemaHasPrefix(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldHasPrefix(FieldStructuredOutputSchema, v))
}

// StructuredOutputSchemaHasSuffix applies the HasSuffix predicate on the "structured_output_schema" field.
func StructuredOutputSchemaHasSuffix(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldHasSuffix(FieldStructuredOutputSchema, v))
}

// StructuredOutputSchemaIsNil applies the IsNil predicate on the "structured_output_schema" field.
func StructuredOutputSchemaIsNil() predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIsNull(FieldStructuredOutputSchema))
}

// StructuredOutputSchemaNotNil applies the NotNil predicate on the "structured_output_schema" field.
func StructuredOutputSchemaNotNil() predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotNull(FieldStructuredOutputSchema))
}

// StructuredOutputSchemaEqualFold applies the EqualFold predicate on the "structured_output_schema" field.
func StructuredOutputSchemaEqualFold(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEqualFold(FieldStructuredOutputSchema, v))
}

// StructuredOutputSchemaContainsFold applies the ContainsFold predicate on the "structured_output_schema" field.
func StructuredOutputSchemaContainsFold(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldContainsFold(FieldStructuredOutputSchema, v))
}

// ModelIDEQ applies the EQ predicate on the "model_id" field.
func ModelIDEQ(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldModelID, v))
}

// ModelIDNEQ applies the NEQ predicate on the "model_id" field.
func ModelIDNEQ(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNEQ(FieldModelID, v))
}

// ModelIDIn applies the In predicate on the "model_id" field.
func ModelIDIn(vs ...string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIn(FieldModelID, vs...))
}

// ModelIDNotIn applies the NotIn predicate on the "model_id" field.
func ModelIDNotIn(vs ...string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotIn(FieldModelID, vs...))
}

// ModelIDGT applies the GT predicate on the "model_id" field.
func ModelIDGT(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGT(FieldModelID, v))
}

// ModelIDGTE applies the GTE predicate on the "model_id" field.
func ModelIDGTE(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGTE(FieldModelID, v))
}

// ModelIDLT applies the LT predicate on the "model_id" field.
func ModelIDLT(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLT(FieldModelID, v))
}

// ModelIDLTE applies the LTE predicate on the "model_id" field.
func ModelIDLTE(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLTE(FieldModelID, v))
}

// ModelIDContains applies the Contains predicate on the "model_id" field.
func ModelIDContains(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldContains(FieldModelID, v))
}

// ModelIDHasPrefix applies the HasPrefix predicate on the "model_id" field.
func ModelIDHasPrefix(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldHasPrefix(FieldModelID, v))
}

// ModelIDHasSuffix applies the HasSuffix predicate on the "model_id" field.
func ModelIDHasSuffix(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldHasSuffix(FieldModelID, v))
}

// ModelIDIsNil applies the IsNil predicate on the "model_id" field.
func ModelIDIsNil() predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIsNull(FieldModelID))
}

// ModelIDNotNil applies the NotNil predicate on the "model_id" field.
func ModelIDNotNil() predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotNull(FieldModelID))
}

// ModelIDEqualFold applies the EqualFold predicate on the "model_id" field.
func ModelIDEqualFold(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEqualFold(FieldModelID, v))
}

// ModelIDContainsFold applies the ContainsFold predicate on the "model_id" field.
func ModelIDContainsFold(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldContainsFold(FieldModelID, v))
}

// ResultTextEQ applies the EQ predicate on the "result_text" field.
func ResultTextEQ(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldResultText, v))
}

// ResultTextNEQ applies the NEQ predicate on the "result_text" field.
func ResultTextNEQ(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNEQ(FieldResultText, v))
}

// ResultTextIn applies the In predicate on the "result_text" field.
func ResultTextIn(vs ...string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIn(FieldResultText, vs...))
}

// ResultTextNotIn applies the NotIn predicate on the "result_text" field.
func ResultTextNotIn(vs ...string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotIn(FieldResultText, vs...))
}

// ResultTextGT applies the GT predicate on the "result_text" field.
func ResultTextGT(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGT(FieldResultText, v))
}

// ResultTextGTE applies the GTE predicate on the "result_text" field.
func ResultTextGTE(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGTE(FieldResultText, v))
}

// ResultTextLT applies the LT predicate on the "result_text" field.
func ResultTextLT(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLT(FieldResultText, v))
}

// ResultTextLTE applies the LTE predicate on the "result_text" field.
func ResultTextLTE(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLTE(FieldResultText, v))
}

// ResultTextContains applies the Contains predicate on the "result_text" field.
func ResultTextContains(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldContains(FieldResultText, v))
}

// ResultTextHasPrefix applies the HasPrefix predicate on the "result_text" field.
func ResultTextHasPrefix(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldHasPrefix(FieldResultText, v))
}

// ResultTextHasSuffix applies the HasSuffix predicate on the "result_text" field.
func ResultTextHasSuffix(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldHasSuffix(FieldResultText, v))
}

// ResultTextIsNil applies the IsNil predicate on the "result_text" field.
func ResultTextIsNil() predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIsNull(FieldResultText))
}

// ResultTextNotNil applies the NotNil predicate on the "result_text" field.
func ResultTextNotNil() predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotNull(FieldResultText))
}

// ResultTextEqualFold applies the EqualFold predicate on the "result_text" field.
func ResultTextEqualFold(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEqualFold(FieldResultText, v))
}

// ResultTextContainsFold applies the ContainsFold predicate on the "result_text" field.
func ResultTextContainsFold(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldContainsFold(FieldResultText, v))
}

// StructuredOutputIsNil applies the IsNil predicate on the "structured_output" field.
func StructuredOutputIsNil() predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIsNull(FieldStructuredOutput))
}

// StructuredOutputNotNil applies the NotNil predicate on the "structured_output" field.
func StructuredOutputNotNil() predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotNull(FieldStructuredOutput))
}

// ErrorCodeEQ applies the EQ predicate on the "error_code" field.
func ErrorCodeEQ(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorCodeNEQ applies the NEQ predicate on the "error_code" field.
func ErrorCodeNEQ(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNEQ(FieldErrorCode, v))
}

// ErrorCodeIn applies the In predicate on the "error_code" field.
func ErrorCodeIn(vs ...string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIn(FieldErrorCode, vs...))
}

// ErrorCodeNotIn applies the NotIn predicate on the "error_code" field.
func ErrorCodeNotIn(vs ...string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotIn(FieldErrorCode, vs...))
}

// ErrorCodeGT applies the GT predicate on the "error_code" field.
func ErrorCodeGT(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGT(FieldErrorCode, v))
}

// ErrorCodeGTE applies the GTE predicate on the "error_code" field.
func ErrorCodeGTE(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGTE(FieldErrorCode, v))
}

// ErrorCodeLT applies the LT predicate on the "error_code" field.
func ErrorCodeLT(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLT(FieldErrorCode, v))
}

// ErrorCodeLTE applies the LTE predicate on the "error_code" field.
func ErrorCodeLTE(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLTE(FieldErrorCode, v))
}

// ErrorCodeContains applies the Contains predicate on the "error_code" field.
func ErrorCodeContains(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldContains(FieldErrorCode, v))
}

// ErrorCodeHasPrefix applies the HasPrefix predicate on the "error_code" field.
func ErrorCodeHasPrefix(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldHasPrefix(FieldErrorCode, v))
}

// ErrorCodeHasSuffix applies the HasSuffix predicate on the "error_code" field.
func ErrorCodeHasSuffix(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldHasSuffix(FieldErrorCode, v))
}

// ErrorCodeIsNil applies the IsNil predicate on the "error_code" field.
func ErrorCodeIsNil() predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIsNull(FieldErrorCode))
}

// ErrorCodeNotNil applies the NotNil predicate on the "error_code" field.
func ErrorCodeNotNil() predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotNull(FieldErrorCode))
}

// ErrorCodeEqualFold applies the EqualFold predicate on the "error_code" field.
func ErrorCodeEqualFold(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEqualFold(FieldErrorCode, v))
}

// ErrorCodeContainsFold applies the ContainsFold predicate on the "error_code" field.
func ErrorCodeContainsFold(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldContainsFold(FieldErrorCode, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldContainsFold(FieldErrorMessage, v))
}

// AgentsIsNil applies the IsNil predicate on the "agents" field.
func AgentsIsNil() predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIsNull(FieldAgents))
}

// AgentsNotNil applies the NotNil predicate on the "agents" field.
func AgentsNotNil() predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotNull(FieldAgents))
}

// NodeHistoryIsNil applies the IsNil predicate on the "node_history" field.
func NodeHistoryIsNil() predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIsNull(FieldNodeHistory))
}

// NodeHistoryNotNil applies the NotNil predicate on the "node_history" field.
func NodeHistoryNotNil() predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotNull(FieldNodeHistory))
}

// ExecutionOrderIsNil applies the IsNil predicate on the "execution_order" field.
func ExecutionOrderIsNil() predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIsNull(FieldExecutionOrder))
}

// ExecutionOrderNotNil applies the NotNil predicate on the "execution_order" field.
func ExecutionOrderNotNil() predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotNull(FieldExecutionOrder))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLTE(FieldOutputTokens, v))
}

// TotalTokensEQ applies the EQ predicate on the "total_tokens" field.
func TotalTokensEQ(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalTokensNEQ applies the NEQ predicate on the "total_tokens" field.
func TotalTokensNEQ(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNEQ(FieldTotalTokens, v))
}

// TotalTokensIn applies the In predicate on the "total_tokens" field.
func TotalTokensIn(vs ...int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIn(FieldTotalTokens, vs...))
}

// TotalTokensNotIn applies the NotIn predicate on the "total_tokens" field.
func TotalTokensNotIn(vs ...int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotIn(FieldTotalTokens, vs...))
}

// TotalTokensGT applies the GT predicate on the "total_tokens" field.
func TotalTokensGT(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGT(FieldTotalTokens, v))
}

// TotalTokensGTE applies the GTE predicate on the "total_tokens" field.
func TotalTokensGTE(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGTE(FieldTotalTokens, v))
}

// TotalTokensLT applies the LT predicate on the "total_tokens" field.
func TotalTokensLT(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLT(FieldTotalTokens, v))
}

// TotalTokensLTE applies the LTE predicate on the "total_tokens" field.
func TotalTokensLTE(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLTE(FieldTotalTokens, v))
}

// ToolUseCountEQ applies the EQ predicate on the "tool_use_count" field.
func ToolUseCountEQ(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldToolUseCount, v))
}

// ToolUseCountNEQ applies the NEQ predicate on the "tool_use_count" field.
func ToolUseCountNEQ(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNEQ(FieldToolUseCount, v))
}

// ToolUseCountIn applies the In predicate on the "tool_use_count" field.
func ToolUseCountIn(vs ...int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIn(FieldToolUseCount, vs...))
}

// ToolUseCountNotIn applies the NotIn predicate on the "tool_use_count" field.
func ToolUseCountNotIn(vs ...int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotIn(FieldToolUseCount, vs...))
}

// ToolUseCountGT applies the GT predicate on the "tool_use_count" field.
func ToolUseCountGT(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGT(FieldToolUseCount, v))
}

// ToolUseCountGTE applies the GTE predicate on the "tool_use_count" field.
func ToolUseCountGTE(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGTE(FieldToolUseCount, v))
}

// ToolUseCountLT applies the LT predicate on the "tool_use_count" field.
func ToolUseCountLT(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLT(FieldToolUseCount, v))
}

// ToolUseCountLTE applies the LTE predicate on the "tool_use_count" field.
func ToolUseCountLTE(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLTE(FieldToolUseCount, v))
}

// NodeStartCountEQ applies the EQ predicate on the "node_start_count" field.
func NodeStartCountEQ(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldNodeStartCount, v))
}

// NodeStartCountNEQ applies the NEQ predicate on the "node_start_count" field.
func NodeStartCountNEQ(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNEQ(FieldNodeStartCount, v))
}

// NodeStartCountIn applies the In predicate on the "node_start_count" field.
func NodeStartCountIn(vs ...int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIn(FieldNodeStartCount, vs...))
}

// NodeStartCountNotIn applies the NotIn predicate on the "node_start_count" field.
func NodeStartCountNotIn(vs ...int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotIn(FieldNodeStartCount, vs...))
}

// NodeStartCountGT applies the GT predicate on the "node_start_count" field.
func NodeStartCountGT(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGT(FieldNodeStartCount, v))
}

// NodeStartCountGTE applies the GTE predicate on the "node_start_count" field.
func NodeStartCountGTE(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGTE(FieldNodeStartCount, v))
}

// NodeStartCountLT applies the LT predicate on the "node_start_count" field.
func NodeStartCountLT(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLT(FieldNodeStartCount, v))
}

// NodeStartCountLTE applies the LTE predicate on the "node_start_count" field.
func NodeStartCountLTE(v int) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLTE(FieldNodeStartCount, v))
}

// ExecutionTimeMsEQ applies the EQ predicate on the "execution_time_ms" field.
func ExecutionTimeMsEQ(v int64) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsNEQ applies the NEQ predicate on the "execution_time_ms" field.
func ExecutionTimeMsNEQ(v int64) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNEQ(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsIn applies the In predicate on the "execution_time_ms" field.
func ExecutionTimeMsIn(vs ...int64) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIn(FieldExecutionTimeMs, vs...))
}

// ExecutionTimeMsNotIn applies the NotIn predicate on the "execution_time_ms" field.
func ExecutionTimeMsNotIn(vs ...int64) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotIn(FieldExecutionTimeMs, vs...))
}

// ExecutionTimeMsGT applies the GT predicate on the "execution_time_ms" field.
func ExecutionTimeMsGT(v int64) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGT(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsGTE applies the GTE predicate on the "execution_time_ms" field.
func ExecutionTimeMsGTE(v int64) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGTE(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsLT applies the LT predicate on the "execution_time_ms" field.
func ExecutionTimeMsLT(v int64) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLT(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsLTE applies the LTE predicate on the "execution_time_ms" field.
func ExecutionTimeMsLTE(v int64) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLTE(FieldExecutionTimeMs, v))
}

// EstimatedCostUsdEQ applies the EQ predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdEQ(v float64) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdNEQ applies the NEQ predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdNEQ(v float64) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNEQ(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdIn applies the In predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdIn(vs ...float64) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIn(FieldEstimatedCostUsd, vs...))
}

// EstimatedCostUsdNotIn applies the NotIn predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdNotIn(vs ...float64) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotIn(FieldEstimatedCostUsd, vs...))
}

// EstimatedCostUsdGT applies the GT predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdGT(v float64) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGT(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdGTE applies the GTE predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdGTE(v float64) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGTE(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdLT applies the LT predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdLT(v float64) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLT(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdLTE applies the LTE predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdLTE(v float64) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLTE(FieldEstimatedCostUsd, v))
}

// RiskScoreEQ applies the EQ predicate on the "risk_score" field.
func RiskScoreEQ(v float64) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldRiskScore, v))
}

// RiskScoreNEQ applies the NEQ predicate on the "risk_score" field.
func RiskScoreNEQ(v float64) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNEQ(FieldRiskScore, v))
}

// RiskScoreIn applies the In predicate on the "risk_score" field.
func RiskScoreIn(vs ...float64) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIn(FieldRiskScore, vs...))
}

// RiskScoreNotIn applies the NotIn predicate on the "risk_score" field.
func RiskScoreNotIn(vs ...float64) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotIn(FieldRiskScore, vs...))
}

// RiskScoreGT applies the GT predicate on the "risk_score" field.
func RiskScoreGT(v float64) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGT(FieldRiskScore, v))
}

// RiskScoreGTE applies the GTE predicate on the "risk_score" field.
func RiskScoreGTE(v float64) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGTE(FieldRiskScore, v))
}

// RiskScoreLT applies the LT predicate on the "risk_score" field.
func RiskScoreLT(v float64) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLT(FieldRiskScore, v))
}

// RiskScoreLTE applies the LTE predicate on the "risk_score" field.
func RiskScoreLTE(v float64) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLTE(FieldRiskScore, v))
}

// AnomalyEQ applies the EQ predicate on the "anomaly" field.
func AnomalyEQ(v bool) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldAnomaly, v))
}

// AnomalyNEQ applies the NEQ predicate on the "anomaly" field.
func AnomalyNEQ(v bool) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNEQ(FieldAnomaly, v))
}

// ClientDisconnectedEQ applies the EQ predicate on the "client_disconnected" field.
func ClientDisconnectedEQ(v bool) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldClientDisconnected, v))
}

// ClientDisconnectedNEQ applies the NEQ predicate on the "client_disconnected" field.
func ClientDisconnectedNEQ(v bool) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNEQ(FieldClientDisconnected, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotNull(FieldCompletedAt))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.RunSummary {
	return predicate.RunSummary(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.RunSummary {
	return predicate.RunSummary(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.RunSummary {
	return predicate.RunSummary(sql.FieldNotNull(FieldDeletedAt))
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.RunSummary {
	return predicate.RunSummary(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.RunEvent) predicate.RunSummary {
	return predicate.RunSummary(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasNodeMetrics applies the HasEdge predicate on the "node_metrics" edge.
func HasNodeMetrics() predicate.RunSummary {
	return predicate.RunSummary(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, NodeMetricsTable, NodeMetricsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNodeMetricsWith applies the HasEdge predicate on the "node_metrics" edge with a given conditions (other predicates).
func HasNodeMetricsWith(preds ...predicate.RunNodeMetric) predicate.RunSummary {
	return predicate.RunSummary(func(s *sql.Selector) {
		step := newNodeMetricsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTelemetry applies the HasEdge predicate on the "telemetry" edge.
func HasTelemetry() predicate.RunSummary {
	return predicate.RunSummary(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TelemetryTable, TelemetryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTelemetryWith applies the HasEdge predicate on the "telemetry" edge with a given conditions (other predicates).
func HasTelemetryWith(preds ...predicate.RunTelemetry) predicate.RunSummary {
	return predicate.RunSummary(func(s *sql.Selector) {
		step := newTelemetryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RunSummary) predicate.RunSummary {
	return predicate.RunSummary(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RunSummary) predicate.RunSummary {
	return predicate.RunSummary(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RunSummary) predicate.RunSummary {
	return predicate.RunSummary(sql.NotPredicates(p))
}
