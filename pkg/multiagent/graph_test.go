package multiagent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfleet/agentfleet/pkg/agent"
	"github.com/agentfleet/agentfleet/pkg/events"
	"github.com/agentfleet/agentfleet/pkg/models"
)

func simpleAgent(name, reply string) *agent.Agent {
	return agent.New(name, "", &scriptedModel{turns: [][]agent.ModelChunk{
		textTurn(reply, models.TokenUsage{InputTokens: 5, OutputTokens: 5, TotalTokens: 10}),
	}})
}

func TestGraph_BatchTriggeredReadiness(t *testing.T) {
	g, err := NewGraphBuilder("graph-1", GraphConfig{}).
		AddAgent(simpleAgent("A", "a done")).
		AddAgent(simpleAgent("B", "b done")).
		AddAgent(simpleAgent("C", "c done")).
		AddAgent(simpleAgent("D", "d done")).
		AddEdge("A", "C", nil).
		AddEdge("B", "C", nil).
		AddEdge("C", "D", nil).
		Build()
	require.NoError(t, err)

	evts, result, streamErr := collectStream(t, g.Stream(context.Background(), Task{Text: "task"}))
	requireCompleted(t, result, streamErr)

	// Each node starts exactly once; C and D are never re-triggered.
	for _, id := range []string{"A", "B", "C", "D"} {
		assert.Equal(t, 1, countStarts(evts, id), "starts for %s", id)
	}
	assert.Equal(t, 4, result.ExecutionCount)

	// C starts only after both A and B stopped; D only after C stopped.
	cStart := startIndex(evts, "C")
	assert.Greater(t, cStart, stopIndex(evts, "A"))
	assert.Greater(t, cStart, stopIndex(evts, "B"))
	assert.Greater(t, startIndex(evts, "D"), stopIndex(evts, "C"))

	assert.Len(t, result.Results, 4)
	assert.Equal(t, "d done", result.FinalText())
}

func TestGraph_HandoffBetweenBatches(t *testing.T) {
	g, err := NewGraphBuilder("graph-1", GraphConfig{}).
		AddAgent(simpleAgent("A", "a done")).
		AddAgent(simpleAgent("B", "b done")).
		AddEdge("A", "B", nil).
		Build()
	require.NoError(t, err)

	evts, result, streamErr := collectStream(t, g.Stream(context.Background(), Task{Text: "task"}))
	requireCompleted(t, result, streamErr)

	idx := eventIndex(evts, func(e events.Event) bool {
		_, ok := e.(*events.HandoffEvent)
		return ok
	})
	require.GreaterOrEqual(t, idx, 0)
	handoff := evts[idx].(*events.HandoffEvent)
	assert.Equal(t, []string{"A"}, handoff.FromNodeIDs)
	assert.Equal(t, []string{"B"}, handoff.ToNodeIDs)
	assert.Less(t, stopIndex(evts, "A"), idx)
	assert.Greater(t, startIndex(evts, "B"), idx)
}

func TestGraph_ConditionalEdgeSkipsTarget(t *testing.T) {
	g, err := NewGraphBuilder("graph-1", GraphConfig{}).
		AddAgent(simpleAgent("A", "a done")).
		AddAgent(simpleAgent("B", "b done")).
		AddEdge("A", "B", func(*GraphState) bool { return false }).
		Build()
	require.NoError(t, err)

	evts, result, streamErr := collectStream(t, g.Stream(context.Background(), Task{Text: "task"}))
	requireCompleted(t, result, streamErr)

	assert.Equal(t, 1, countStarts(evts, "A"))
	assert.Equal(t, 0, countStarts(evts, "B"))
	assert.NotContains(t, result.Results, "B")
}

func TestGraph_DependencyInputSynthesis(t *testing.T) {
	g, err := NewGraphBuilder("graph-1", GraphConfig{}).
		AddAgent(simpleAgent("A", "upstream findings")).
		AddAgent(simpleAgent("B", "b done")).
		AddEdge("A", "B", nil).
		Build()
	require.NoError(t, err)

	evts, result, streamErr := collectStream(t, g.Stream(context.Background(), Task{Text: "investigate"}))
	requireCompleted(t, result, streamErr)

	idx := eventIndex(evts, func(e events.Event) bool {
		input, ok := e.(*events.NodeInputEvent)
		return ok && input.NodeID == "B"
	})
	require.GreaterOrEqual(t, idx, 0)
	payload := evts[idx].(*events.NodeInputEvent).Input.(map[string]any)
	assert.Contains(t, payload["text"], "Original Task: investigate")
	assert.Contains(t, payload["text"], "[A]")
	assert.Contains(t, payload["text"], "upstream findings")
}

func TestGraph_NodeFailurePropagates(t *testing.T) {
	failing := agent.New("A", "", &scriptedModel{turns: [][]agent.ModelChunk{
		{&agent.ModelError{Err: assert.AnError}},
	}})
	g, err := NewGraphBuilder("graph-1", GraphConfig{}).
		AddAgent(failing).
		AddAgent(simpleAgent("B", "b done")).
		AddEdge("A", "B", nil).
		Build()
	require.NoError(t, err)

	evts, result, streamErr := collectStream(t, g.Stream(context.Background(), Task{Text: "task"}))
	require.Error(t, streamErr)
	assert.Nil(t, result)
	assert.Equal(t, models.NodeStatusFailed, g.Status())

	// The stop event with the failed result precedes the run failure.
	idx := stopIndex(evts, "A")
	require.GreaterOrEqual(t, idx, 0)
	stop := evts[idx].(*events.NodeStopEvent)
	assert.Equal(t, models.NodeStatusFailed, stop.NodeResult.Status)
	assert.Equal(t, 0, countStarts(evts, "B"))
}

func TestGraph_NodeTimeout(t *testing.T) {
	stuck := agent.New("A", "", blockingModel{})
	g, err := NewGraphBuilder("graph-1", GraphConfig{NodeTimeout: 50 * time.Millisecond}).
		AddAgent(stuck).
		Build()
	require.NoError(t, err)

	evts, _, streamErr := collectStream(t, g.Stream(context.Background(), Task{Text: "task"}))
	require.Error(t, streamErr)
	assert.Contains(t, streamErr.Error(), "timed out")

	idx := stopIndex(evts, "A")
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, models.NodeStatusFailed, evts[idx].(*events.NodeStopEvent).NodeResult.Status)
}

func TestGraph_ResetOnRevisit(t *testing.T) {
	revisitA := func(state *GraphState) bool { return len(state.ExecutionOrder) < 3 }
	g, err := NewGraphBuilder("graph-1", GraphConfig{ResetOnRevisit: true, MaxNodeExecutions: 10}).
		AddAgent(agent.New("A", "", &scriptedModel{turns: [][]agent.ModelChunk{
			textTurn("a pass", models.TokenUsage{}),
		}})).
		AddAgent(agent.New("B", "", &scriptedModel{turns: [][]agent.ModelChunk{
			textTurn("b pass", models.TokenUsage{}),
		}})).
		AddEdge("A", "B", nil).
		AddEdge("B", "A", revisitA).
		SetEntryPoints("A").
		Build()
	require.NoError(t, err)

	evts, result, streamErr := collectStream(t, g.Stream(context.Background(), Task{Text: "task"}))
	requireCompleted(t, result, streamErr)

	assert.Equal(t, 2, countStarts(evts, "A"))
	assert.Equal(t, 2, countStarts(evts, "B"))
	assert.Equal(t, 4, result.ExecutionCount)
}

func TestGraph_MaxNodeExecutions(t *testing.T) {
	g, err := NewGraphBuilder("graph-1", GraphConfig{ResetOnRevisit: true, MaxNodeExecutions: 3}).
		AddAgent(simpleAgent("A", "a")).
		AddAgent(simpleAgent("B", "b")).
		AddEdge("A", "B", nil).
		AddEdge("B", "A", nil).
		SetEntryPoints("A").
		Build()
	require.NoError(t, err)

	_, _, streamErr := collectStream(t, g.Stream(context.Background(), Task{Text: "task"}))
	require.Error(t, streamErr)
	assert.Contains(t, streamErr.Error(), "max node executions")
}

func TestGraph_BuildValidation(t *testing.T) {
	_, err := NewGraphBuilder("g", GraphConfig{}).
		AddAgent(simpleAgent("A", "a")).
		AddEdge("A", "missing", nil).
		Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown node")

	_, err = NewGraphBuilder("g", GraphConfig{}).Build()
	require.Error(t, err)

	// A pure cycle with no entry points has an empty initial ready set.
	_, err = NewGraphBuilder("g", GraphConfig{}).
		AddAgent(simpleAgent("A", "a")).
		AddAgent(simpleAgent("B", "b")).
		AddEdge("A", "B", nil).
		AddEdge("B", "A", nil).
		Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no entry points")
}

func TestGraph_ResumeDoesNotDuplicateCompletedNodes(t *testing.T) {
	// A and B run as one batch; A completes, B interrupts. Resuming
	// re-executes both, so A must not be listed as completed twice.
	interrupting := agent.New("B", "", &scriptedModel{turns: [][]agent.ModelChunk{
		toolTurn("tu-1", "ask_user", map[string]any{"question": "go on?"}),
		textTurn("b done", models.TokenUsage{}),
	}})
	require.NoError(t, interrupting.Tools().Register(&agent.Tool{
		Definition: agent.ToolDefinition{Name: "ask_user"},
		Execute: func(_ context.Context, input map[string]any) (any, error) {
			return models.Interrupt{ID: "int-1", Name: "approval", Value: input["question"]}, nil
		},
	}))

	g, err := NewGraphBuilder("graph-1", GraphConfig{}).
		AddAgent(simpleAgent("A", "a done")).
		AddAgent(interrupting).
		Build()
	require.NoError(t, err)

	_, result, streamErr := collectStream(t, g.Stream(context.Background(), Task{Text: "task"}))
	require.NoError(t, streamErr)
	require.NotNil(t, result)
	require.Equal(t, models.RunStatusInterrupted, result.Status)
	assert.Contains(t, g.State().CompletedNodes, "A")

	_, resumed, resumeErr := collectStream(t, g.Stream(context.Background(), Task{
		Responses: []models.InterruptResponse{{InterruptID: "int-1", Response: "yes"}},
	}))
	requireCompleted(t, resumed, resumeErr)

	assert.ElementsMatch(t, []string{"A", "B"}, g.State().CompletedNodes)
}

func TestGraph_HookInterruptPausesBatch(t *testing.T) {
	interruptOnB := func(_ context.Context, nodeID string) (*HookDecision, error) {
		if nodeID == "B" {
			return &HookDecision{Interrupts: []models.Interrupt{{ID: "int-1", Name: "gate"}}}, nil
		}
		return nil, nil
	}
	g, err := NewGraphBuilder("graph-1", GraphConfig{Hook: interruptOnB}).
		AddAgent(simpleAgent("A", "a done")).
		AddAgent(simpleAgent("B", "b done")).
		AddEdge("A", "B", nil).
		Build()
	require.NoError(t, err)

	evts, result, streamErr := collectStream(t, g.Stream(context.Background(), Task{Text: "task"}))
	require.NoError(t, streamErr)
	require.NotNil(t, result)
	assert.Equal(t, models.RunStatusInterrupted, result.Status)
	assert.True(t, g.Interrupts().Activated())
	assert.Equal(t, 0, countStarts(evts, "B"))

	// Resume re-executes the paused batch; the hook passes this time.
	g.cfg.Hook = func(context.Context, string) (*HookDecision, error) { return nil, nil }
	_, resumed, resumeErr := collectStream(t, g.Stream(context.Background(), Task{
		Responses: []models.InterruptResponse{{InterruptID: "int-1", Response: "approved"}},
	}))
	requireCompleted(t, resumed, resumeErr)
	assert.Equal(t, "b done", resumed.FinalText())
	assert.False(t, g.Interrupts().Activated())
}
