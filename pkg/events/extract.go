package events

import (
	"github.com/agentfleet/agentfleet/pkg/agent"
	"github.com/agentfleet/agentfleet/pkg/models"
)

// ToolUseStart identifies one tool invocation inside a forwarded agent
// event. Deduplicated by ToolUseID in the supervisor's tool-use guard.
type ToolUseStart struct {
	ToolUseID string
	ToolName  string
}

// UsageSnapshot is a token-usage reading extracted from an event.
// RunScoped snapshots carry run totals and use max semantics; per-node
// snapshots are cumulative counters subject to counter-delta accumulation.
type UsageSnapshot struct {
	NodeID    string
	Usage     models.TokenUsage
	RunScoped bool
}

// ExtractEventNodeID returns the node id an event belongs to, when it has one.
func ExtractEventNodeID(evt Event) (string, bool) {
	switch e := evt.(type) {
	case *NodeStartEvent:
		return e.NodeID, true
	case *NodeInputEvent:
		return e.NodeID, true
	case *NodeStreamEvent:
		return e.NodeID, true
	case *NodeStopEvent:
		return e.NodeID, true
	case *NodeCancelEvent:
		return e.NodeID, true
	case *NodeInterruptEvent:
		return e.NodeID, true
	case *NodeStreamCappedEvent:
		return e.NodeID, true
	}
	return "", false
}

// ExtractToolUseStart finds a tool-use start inside a forwarded stream
// event. Only one level is inspected; the supervisor flattens nested
// orchestrator events before calling extractors.
func ExtractToolUseStart(evt Event) (*ToolUseStart, bool) {
	stream, ok := evt.(*NodeStreamEvent)
	if !ok {
		return nil, false
	}
	switch inner := stream.Event.(type) {
	case *agent.ToolUseChunk:
		return &ToolUseStart{ToolUseID: inner.ToolUseID, ToolName: inner.ToolName}, true
	case map[string]any:
		id, _ := inner["toolUseId"].(string)
		name, _ := inner["toolName"].(string)
		if id != "" && name != "" {
			return &ToolUseStart{ToolUseID: id, ToolName: name}, true
		}
	}
	return nil, false
}

// ExtractTokenUsageSnapshot finds a usage reading in an event. Per-node
// readings come from forwarded usage chunks and aggregated agent results;
// the run-scoped reading comes from the terminal result event.
func ExtractTokenUsageSnapshot(evt Event) (*UsageSnapshot, bool) {
	switch e := evt.(type) {
	case *NodeStreamEvent:
		switch inner := e.Event.(type) {
		case *agent.UsageChunk:
			return &UsageSnapshot{NodeID: e.NodeID, Usage: inner.Usage}, true
		case *agent.Result:
			if inner.Metrics.AccumulatedUsage.IsZero() {
				return nil, false
			}
			return &UsageSnapshot{NodeID: e.NodeID, Usage: inner.Metrics.AccumulatedUsage}, true
		case map[string]any:
			if usage, ok := usageFromMap(inner); ok {
				return &UsageSnapshot{NodeID: e.NodeID, Usage: usage}, true
			}
		}
	case *ResultEvent:
		if e.Result == nil || e.Result.AccumulatedUsage.IsZero() {
			return nil, false
		}
		return &UsageSnapshot{Usage: e.Result.AccumulatedUsage, RunScoped: true}, true
	}
	return nil, false
}

// usageFromMap probes a dynamic record for usage counters. Events replayed
// from persistence arrive as plain maps.
func usageFromMap(record map[string]any) (models.TokenUsage, bool) {
	raw, ok := record["usage"].(map[string]any)
	if !ok {
		return models.TokenUsage{}, false
	}
	usage := models.TokenUsage{
		InputTokens:  intField(raw, "inputTokens"),
		OutputTokens: intField(raw, "outputTokens"),
		TotalTokens:  intField(raw, "totalTokens"),
	}
	if usage.TotalTokens == 0 {
		usage.TotalTokens = usage.InputTokens + usage.OutputTokens
	}
	return usage, !usage.IsZero()
}

func intField(record map[string]any, key string) int {
	switch v := record[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}
