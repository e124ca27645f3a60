package multiagent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agentfleet/agentfleet/pkg/agent"
	"github.com/agentfleet/agentfleet/pkg/events"
	"github.com/agentfleet/agentfleet/pkg/models"
)

// scriptedModel replays a fixed chunk sequence per Stream call. Calls past
// the script repeat the last turn.
type scriptedModel struct {
	id       string
	turns    [][]agent.ModelChunk
	calls    int
	requests []*agent.ModelRequest
}

func (m *scriptedModel) ModelID() string {
	if m.id == "" {
		return "test-model"
	}
	return m.id
}

func (m *scriptedModel) Stream(_ context.Context, req *agent.ModelRequest) (<-chan agent.ModelChunk, error) {
	m.requests = append(m.requests, req)
	idx := m.calls
	m.calls++
	if idx >= len(m.turns) {
		idx = len(m.turns) - 1
	}
	turn := m.turns[idx]
	out := make(chan agent.ModelChunk, len(turn))
	for _, chunk := range turn {
		out <- chunk
	}
	close(out)
	return out, nil
}

// blockingModel never produces a chunk; only context cancellation ends it.
type blockingModel struct{}

func (blockingModel) ModelID() string { return "blocking-model" }

func (blockingModel) Stream(_ context.Context, _ *agent.ModelRequest) (<-chan agent.ModelChunk, error) {
	return make(chan agent.ModelChunk), nil
}

func textTurn(text string, usage models.TokenUsage) []agent.ModelChunk {
	return []agent.ModelChunk{
		&agent.ContentDelta{Text: text},
		&agent.UsageChunk{Usage: usage},
		&agent.ModelResult{
			StopReason: agent.StopReasonEndTurn,
			Message:    models.Message{Role: models.RoleAssistant, Content: []models.ContentBlock{models.TextBlock(text)}},
			Usage:      usage,
		},
	}
}

func toolTurn(toolUseID, toolName string, input map[string]any) []agent.ModelChunk {
	return []agent.ModelChunk{
		&agent.ToolUseChunk{ToolUseID: toolUseID, ToolName: toolName, Input: input},
		&agent.ModelResult{
			StopReason: agent.StopReasonToolUse,
			Message:    models.Message{Role: models.RoleAssistant, Content: []models.ContentBlock{models.TextBlock("")}},
		},
	}
}

// collectStream drains an orchestrator stream into its events and terminal.
func collectStream(t *testing.T, ch <-chan StreamItem) ([]events.Event, *models.OrchestrationResult, error) {
	t.Helper()
	var evts []events.Event
	var result *models.OrchestrationResult
	var err error
	deadline := time.After(5 * time.Second)
	for {
		select {
		case item, ok := <-ch:
			if !ok {
				return evts, result, err
			}
			switch {
			case item.Event != nil:
				evts = append(evts, item.Event)
			case item.Result != nil:
				result = item.Result
			case item.Err != nil:
				err = item.Err
			}
		case <-deadline:
			t.Fatal("orchestrator stream did not terminate")
		}
	}
}

// eventIndex returns the position of the first event matching pred, or -1.
func eventIndex(evts []events.Event, pred func(events.Event) bool) int {
	for i, evt := range evts {
		if pred(evt) {
			return i
		}
	}
	return -1
}

func startIndex(evts []events.Event, nodeID string) int {
	return eventIndex(evts, func(e events.Event) bool {
		start, ok := e.(*events.NodeStartEvent)
		return ok && start.NodeID == nodeID
	})
}

func stopIndex(evts []events.Event, nodeID string) int {
	return eventIndex(evts, func(e events.Event) bool {
		stop, ok := e.(*events.NodeStopEvent)
		return ok && stop.NodeID == nodeID
	})
}

func countStarts(evts []events.Event, nodeID string) int {
	n := 0
	for _, evt := range evts {
		if start, ok := evt.(*events.NodeStartEvent); ok && start.NodeID == nodeID {
			n++
		}
	}
	return n
}

func requireCompleted(t *testing.T, result *models.OrchestrationResult, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, models.RunStatusCompleted, result.Status)
}
