// Package agent provides the agent runtime: a named unit binding a model,
// a system prompt, and a tool registry into a streaming execution loop.
// Orchestrators treat agents as opaque streaming executors.
package agent

import (
	"context"
	"errors"

	"github.com/agentfleet/agentfleet/pkg/models"
)

// StopReason reports why a model request (or an agent turn) ended.
type StopReason string

const (
	StopReasonEndTurn   StopReason = "endTurn"
	StopReasonToolUse   StopReason = "toolUse"
	StopReasonMaxTokens StopReason = "maxTokens"
	StopReasonInterrupt StopReason = "interrupt"
)

// ErrModelStreamIncomplete is returned when a provider stream ends before
// delivering its aggregated result. Surfaced to consumers with a hint to
// retry — see the supervisor's error-code mapping.
var ErrModelStreamIncomplete = errors.New("model stream ended before aggregated result")

// ModelRequest is one streaming completion request.
type ModelRequest struct {
	System   string
	Messages []models.Message
	Tools    []ToolDefinition
	// MaxTokens caps the completion length. Zero lets the provider decide.
	MaxTokens int
}

// ModelChunk is one element of a model's lazy output sequence.
// Concrete types: *ContentDelta, *ToolUseChunk, *UsageChunk,
// *ModelResult, *ModelError.
type ModelChunk interface {
	isModelChunk()
}

// ContentDelta is an incremental text fragment.
type ContentDelta struct {
	Text string `json:"text"`
}

// ToolUseChunk announces a tool invocation requested by the model.
type ToolUseChunk struct {
	ToolUseID string         `json:"toolUseId"`
	ToolName  string         `json:"toolName"`
	Input     map[string]any `json:"input,omitempty"`
}

// UsageChunk carries the provider's cumulative usage counters for the
// current request window. Providers may reset the counters between retries;
// the supervisor's counter-delta accounting tolerates that.
type UsageChunk struct {
	Usage models.TokenUsage `json:"usage"`
}

// ModelResult is the terminal aggregated result of a model request.
type ModelResult struct {
	StopReason StopReason        `json:"stopReason"`
	Message    models.Message    `json:"message"`
	Usage      models.TokenUsage `json:"usage"`
}

// ModelError terminates the stream with a provider failure.
type ModelError struct {
	Err error
}

func (*ContentDelta) isModelChunk() {}
func (*ToolUseChunk) isModelChunk() {}
func (*UsageChunk) isModelChunk()   {}
func (*ModelResult) isModelChunk()  {}
func (*ModelError) isModelChunk()   {}

// Model is the LLM provider capability consumed by agents. Implementations
// yield a lazy sequence of chunks terminated by exactly one *ModelResult or
// *ModelError; a channel that closes without either is treated as an
// incomplete stream.
type Model interface {
	// ModelID returns the provider model identifier bound to this instance.
	ModelID() string

	// Stream starts a completion and returns its chunk sequence.
	// The channel is closed after the terminal chunk.
	Stream(ctx context.Context, req *ModelRequest) (<-chan ModelChunk, error)
}
