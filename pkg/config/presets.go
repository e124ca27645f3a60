package config

import "time"

// Preset keys that carry their own run constraints.
const (
	PresetOrchestratorFactory  = "orchestrator_factory"
	PresetOrchestratorContract = "orchestrator_contract"
	PresetAgentReviewJudge     = "agent_review_judge"
)

// SchemaAgentReviewVerdictV1 lowers the wall-clock ceiling when requested
// as a structured output, same as the judge preset.
const SchemaAgentReviewVerdictV1 = "agent_review_verdict_v1"

var presetWallClock = map[string]time.Duration{
	PresetOrchestratorFactory:  120 * time.Second,
	PresetOrchestratorContract: 180 * time.Second,
	PresetAgentReviewJudge:     180 * time.Second,
}

// WallClockLimit returns the effective wall-clock limit for a run: the
// global limit intersected with any preset or schema ceiling.
func (c Config) WallClockLimit(preset, schemaID string) time.Duration {
	limit := c.RunWallClock
	if ceiling, ok := presetWallClock[preset]; ok && ceiling < limit {
		limit = ceiling
	}
	if schemaID == SchemaAgentReviewVerdictV1 && 180*time.Second < limit {
		limit = 180 * time.Second
	}
	return limit
}

// ContractRequired reports whether the run must satisfy the agent-review
// contract: exactly two coordination-tool calls and at most twenty node
// starts, checked when the run ends.
func ContractRequired(preset, schemaID string) bool {
	return preset == PresetAgentReviewJudge || schemaID == SchemaAgentReviewVerdictV1
}
