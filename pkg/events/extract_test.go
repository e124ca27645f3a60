package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfleet/agentfleet/pkg/agent"
	"github.com/agentfleet/agentfleet/pkg/models"
)

func TestExtractEventNodeID(t *testing.T) {
	tests := []struct {
		name   string
		event  Event
		nodeID string
		found  bool
	}{
		{"start", &NodeStartEvent{NodeID: "alpha"}, "alpha", true},
		{"input", &NodeInputEvent{NodeID: "alpha"}, "alpha", true},
		{"stream", &NodeStreamEvent{NodeID: "beta"}, "beta", true},
		{"stop", &NodeStopEvent{NodeID: "beta"}, "beta", true},
		{"cancel", &NodeCancelEvent{NodeID: "gamma"}, "gamma", true},
		{"interrupt", &NodeInterruptEvent{NodeID: "gamma"}, "gamma", true},
		{"capped", &NodeStreamCappedEvent{NodeID: "delta"}, "delta", true},
		{"handoff has no single node", &HandoffEvent{FromNodeIDs: []string{"a"}}, "", false},
		{"result has no node", &ResultEvent{}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractEventNodeID(tt.event)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.nodeID, id)
		})
	}
}

func TestExtractToolUseStart(t *testing.T) {
	t.Run("from forwarded tool use chunk", func(t *testing.T) {
		evt := &NodeStreamEvent{
			NodeID: "alpha",
			Event:  &agent.ToolUseChunk{ToolUseID: "tu-1", ToolName: "calculator"},
		}
		use, ok := ExtractToolUseStart(evt)
		require.True(t, ok)
		assert.Equal(t, "tu-1", use.ToolUseID)
		assert.Equal(t, "calculator", use.ToolName)
	})

	t.Run("from dynamic record", func(t *testing.T) {
		evt := &NodeStreamEvent{
			NodeID: "alpha",
			Event:  map[string]any{"toolUseId": "tu-2", "toolName": "word_count"},
		}
		use, ok := ExtractToolUseStart(evt)
		require.True(t, ok)
		assert.Equal(t, "tu-2", use.ToolUseID)
		assert.Equal(t, "word_count", use.ToolName)
	})

	t.Run("dynamic record missing id", func(t *testing.T) {
		evt := &NodeStreamEvent{NodeID: "alpha", Event: map[string]any{"toolName": "calculator"}}
		_, ok := ExtractToolUseStart(evt)
		assert.False(t, ok)
	})

	t.Run("non-stream event", func(t *testing.T) {
		_, ok := ExtractToolUseStart(&NodeStartEvent{NodeID: "alpha"})
		assert.False(t, ok)
	})

	t.Run("content delta carries no tool use", func(t *testing.T) {
		evt := &NodeStreamEvent{NodeID: "alpha", Event: &agent.ContentDelta{Text: "hi"}}
		_, ok := ExtractToolUseStart(evt)
		assert.False(t, ok)
	})
}

func TestExtractTokenUsageSnapshot(t *testing.T) {
	t.Run("usage chunk is node scoped", func(t *testing.T) {
		evt := &NodeStreamEvent{
			NodeID: "alpha",
			Event:  &agent.UsageChunk{Usage: models.TokenUsage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		}
		snap, ok := ExtractTokenUsageSnapshot(evt)
		require.True(t, ok)
		assert.Equal(t, "alpha", snap.NodeID)
		assert.False(t, snap.RunScoped)
		assert.Equal(t, 15, snap.Usage.TotalTokens)
	})

	t.Run("agent result carries accumulated usage", func(t *testing.T) {
		evt := &NodeStreamEvent{
			NodeID: "alpha",
			Event: &agent.Result{Metrics: agent.Metrics{
				AccumulatedUsage: models.TokenUsage{InputTokens: 20, OutputTokens: 10, TotalTokens: 30},
			}},
		}
		snap, ok := ExtractTokenUsageSnapshot(evt)
		require.True(t, ok)
		assert.Equal(t, 30, snap.Usage.TotalTokens)
		assert.False(t, snap.RunScoped)
	})

	t.Run("agent result with zero usage is skipped", func(t *testing.T) {
		evt := &NodeStreamEvent{NodeID: "alpha", Event: &agent.Result{}}
		_, ok := ExtractTokenUsageSnapshot(evt)
		assert.False(t, ok)
	})

	t.Run("dynamic record totals default to input plus output", func(t *testing.T) {
		evt := &NodeStreamEvent{
			NodeID: "alpha",
			Event: map[string]any{"usage": map[string]any{
				"inputTokens":  float64(7),
				"outputTokens": float64(3),
			}},
		}
		snap, ok := ExtractTokenUsageSnapshot(evt)
		require.True(t, ok)
		assert.Equal(t, 10, snap.Usage.TotalTokens)
	})

	t.Run("terminal result event is run scoped", func(t *testing.T) {
		evt := &ResultEvent{Result: &models.OrchestrationResult{
			AccumulatedUsage: models.TokenUsage{InputTokens: 50, OutputTokens: 25, TotalTokens: 75},
		}}
		snap, ok := ExtractTokenUsageSnapshot(evt)
		require.True(t, ok)
		assert.True(t, snap.RunScoped)
		assert.Equal(t, 75, snap.Usage.TotalTokens)
	})

	t.Run("empty result event is skipped", func(t *testing.T) {
		_, ok := ExtractTokenUsageSnapshot(&ResultEvent{})
		assert.False(t, ok)
	})
}
