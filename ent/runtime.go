// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/agentfleet/agentfleet/ent/runevent"
	"github.com/agentfleet/agentfleet/ent/runnodemetric"
	"github.com/agentfleet/agentfleet/ent/runsummary"
	"github.com/agentfleet/agentfleet/ent/runtelemetry"
	"github.com/agentfleet/agentfleet/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	runeventFields := schema.RunEvent{}.Fields()
	_ = runeventFields
	// runeventDescCreatedAt is the schema descriptor for created_at field.
	runeventDescCreatedAt := runeventFields[5].Descriptor()
	// runevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	runevent.DefaultCreatedAt = runeventDescCreatedAt.Default.(func() time.Time)
	runnodemetricFields := schema.RunNodeMetric{}.Fields()
	_ = runnodemetricFields
	// runnodemetricDescInputTokens is the schema descriptor for input_tokens field.
	runnodemetricDescInputTokens := runnodemetricFields[3].Descriptor()
	// runnodemetric.DefaultInputTokens holds the default value on creation for the input_tokens field.
	runnodemetric.DefaultInputTokens = runnodemetricDescInputTokens.Default.(int)
	// runnodemetricDescOutputTokens is the schema descriptor for output_tokens field.
	runnodemetricDescOutputTokens := runnodemetricFields[4].Descriptor()
	// runnodemetric.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	runnodemetric.DefaultOutputTokens = runnodemetricDescOutputTokens.Default.(int)
	// runnodemetricDescTotalTokens is the schema descriptor for total_tokens field.
	runnodemetricDescTotalTokens := runnodemetricFields[5].Descriptor()
	// runnodemetric.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	runnodemetric.DefaultTotalTokens = runnodemetricDescTotalTokens.Default.(int)
	// runnodemetricDescExecutionCount is the schema descriptor for execution_count field.
	runnodemetricDescExecutionCount := runnodemetricFields[6].Descriptor()
	// runnodemetric.DefaultExecutionCount holds the default value on creation for the execution_count field.
	runnodemetric.DefaultExecutionCount = runnodemetricDescExecutionCount.Default.(int)
	// runnodemetricDescStreamEventCount is the schema descriptor for stream_event_count field.
	runnodemetricDescStreamEventCount := runnodemetricFields[7].Descriptor()
	// runnodemetric.DefaultStreamEventCount holds the default value on creation for the stream_event_count field.
	runnodemetric.DefaultStreamEventCount = runnodemetricDescStreamEventCount.Default.(int)
	// runnodemetricDescCaptureCapped is the schema descriptor for capture_capped field.
	runnodemetricDescCaptureCapped := runnodemetricFields[8].Descriptor()
	// runnodemetric.DefaultCaptureCapped holds the default value on creation for the capture_capped field.
	runnodemetric.DefaultCaptureCapped = runnodemetricDescCaptureCapped.Default.(bool)
	// runnodemetricDescDurationMs is the schema descriptor for duration_ms field.
	runnodemetricDescDurationMs := runnodemetricFields[9].Descriptor()
	// runnodemetric.DefaultDurationMs holds the default value on creation for the duration_ms field.
	runnodemetric.DefaultDurationMs = runnodemetricDescDurationMs.Default.(int64)
	// runnodemetricDescCreatedAt is the schema descriptor for created_at field.
	runnodemetricDescCreatedAt := runnodemetricFields[10].Descriptor()
	// runnodemetric.DefaultCreatedAt holds the default value on creation for the created_at field.
	runnodemetric.DefaultCreatedAt = runnodemetricDescCreatedAt.Default.(func() time.Time)
	runsummaryFields := schema.RunSummary{}.Fields()
	_ = runsummaryFields
	// runsummaryDescInputTokens is the schema descriptor for input_tokens field.
	runsummaryDescInputTokens := runsummaryFields[15].Descriptor()
	// runsummary.DefaultInputTokens holds the default value on creation for the input_tokens field.
	runsummary.DefaultInputTokens = runsummaryDescInputTokens.Default.(int)
	// runsummaryDescOutputTokens is the schema descriptor for output_tokens field.
	runsummaryDescOutputTokens := runsummaryFields[16].Descriptor()
	// runsummary.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	runsummary.DefaultOutputTokens = runsummaryDescOutputTokens.Default.(int)
	// runsummaryDescTotalTokens is the schema descriptor for total_tokens field.
	runsummaryDescTotalTokens := runsummaryFields[17].Descriptor()
	// runsummary.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	runsummary.DefaultTotalTokens = runsummaryDescTotalTokens.Default.(int)
	// runsummaryDescToolUseCount is the schema descriptor for tool_use_count field.
	runsummaryDescToolUseCount := runsummaryFields[18].Descriptor()
	// runsummary.DefaultToolUseCount holds the default value on creation for the tool_use_count field.
	runsummary.DefaultToolUseCount = runsummaryDescToolUseCount.Default.(int)
	// runsummaryDescNodeStartCount is the schema descriptor for node_start_count field.
	runsummaryDescNodeStartCount := runsummaryFields[19].Descriptor()
	// runsummary.DefaultNodeStartCount holds the default value on creation for the node_start_count field.
	runsummary.DefaultNodeStartCount = runsummaryDescNodeStartCount.Default.(int)
	// runsummaryDescExecutionTimeMs is the schema descriptor for execution_time_ms field.
	runsummaryDescExecutionTimeMs := runsummaryFields[20].Descriptor()
	// runsummary.DefaultExecutionTimeMs holds the default value on creation for the execution_time_ms field.
	runsummary.DefaultExecutionTimeMs = runsummaryDescExecutionTimeMs.Default.(int64)
	// runsummaryDescEstimatedCostUsd is the schema descriptor for estimated_cost_usd field.
	runsummaryDescEstimatedCostUsd := runsummaryFields[21].Descriptor()
	// runsummary.DefaultEstimatedCostUsd holds the default value on creation for the estimated_cost_usd field.
	runsummary.DefaultEstimatedCostUsd = runsummaryDescEstimatedCostUsd.Default.(float64)
	// runsummaryDescRiskScore is the schema descriptor for risk_score field.
	runsummaryDescRiskScore := runsummaryFields[22].Descriptor()
	// runsummary.DefaultRiskScore holds the default value on creation for the risk_score field.
	runsummary.DefaultRiskScore = runsummaryDescRiskScore.Default.(float64)
	// runsummaryDescAnomaly is the schema descriptor for anomaly field.
	runsummaryDescAnomaly := runsummaryFields[23].Descriptor()
	// runsummary.DefaultAnomaly holds the default value on creation for the anomaly field.
	runsummary.DefaultAnomaly = runsummaryDescAnomaly.Default.(bool)
	// runsummaryDescClientDisconnected is the schema descriptor for client_disconnected field.
	runsummaryDescClientDisconnected := runsummaryFields[24].Descriptor()
	// runsummary.DefaultClientDisconnected holds the default value on creation for the client_disconnected field.
	runsummary.DefaultClientDisconnected = runsummaryDescClientDisconnected.Default.(bool)
	// runsummaryDescCreatedAt is the schema descriptor for created_at field.
	runsummaryDescCreatedAt := runsummaryFields[25].Descriptor()
	// runsummary.DefaultCreatedAt holds the default value on creation for the created_at field.
	runsummary.DefaultCreatedAt = runsummaryDescCreatedAt.Default.(func() time.Time)
	runtelemetryFields := schema.RunTelemetry{}.Fields()
	_ = runtelemetryFields
	// runtelemetryDescCreatedAt is the schema descriptor for created_at field.
	runtelemetryDescCreatedAt := runtelemetryFields[10].Descriptor()
	// runtelemetry.DefaultCreatedAt holds the default value on creation for the created_at field.
	runtelemetry.DefaultCreatedAt = runtelemetryDescCreatedAt.Default.(func() time.Time)
}
