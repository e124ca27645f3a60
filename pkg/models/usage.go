package models

// TokenUsage aggregates token consumption across LLM calls.
type TokenUsage struct {
	InputTokens  int `json:"inputTokens"`
	OutputTokens int `json:"outputTokens"`
	TotalTokens  int `json:"totalTokens"`
}

// Add accumulates other into u.
func (u *TokenUsage) Add(other TokenUsage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.TotalTokens += other.TotalTokens
}

// IsZero reports whether no tokens were recorded.
func (u TokenUsage) IsZero() bool {
	return u.InputTokens == 0 && u.OutputTokens == 0 && u.TotalTokens == 0
}

// NodeMetrics captures per-node accumulated execution metrics.
type NodeMetrics struct {
	Usage          TokenUsage `json:"usage"`
	LatencyMs      int64      `json:"latencyMs"`
	ExecutionCount int        `json:"executionCount"`
}

// ModelUsage is the per-model accumulator bucket. ModelID keeps the
// first-seen display form; accumulation keys by the canonical id.
type ModelUsage struct {
	ModelID string     `json:"modelId"`
	Usage   TokenUsage `json:"usage"`
}
