package multiagent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfleet/agentfleet/pkg/agent"
	"github.com/agentfleet/agentfleet/pkg/events"
	"github.com/agentfleet/agentfleet/pkg/models"
)

func TestSingle_HappyPath(t *testing.T) {
	a := agent.New("writer", "You write.", &scriptedModel{turns: [][]agent.ModelChunk{
		textTurn("hello world", models.TokenUsage{InputTokens: 12, OutputTokens: 4, TotalTokens: 16}),
	}})
	single := NewSingle(a, nil)

	evts, result, streamErr := collectStream(t, single.Stream(context.Background(), Task{Text: "say hello"}))
	requireCompleted(t, result, streamErr)
	assert.Equal(t, "hello world", result.FinalText())
	assert.Equal(t, models.TokenUsage{InputTokens: 12, OutputTokens: 4, TotalTokens: 16}, result.AccumulatedUsage)

	// start -> input -> stream* -> stop -> result, all for the agent's name.
	startIdx := startIndex(evts, "writer")
	require.GreaterOrEqual(t, startIdx, 0)
	assert.Equal(t, events.NodeTypeAgent, evts[startIdx].(*events.NodeStartEvent).NodeType)

	inputIdx := eventIndex(evts, func(e events.Event) bool {
		_, ok := e.(*events.NodeInputEvent)
		return ok
	})
	streamIdx := eventIndex(evts, func(e events.Event) bool {
		_, ok := e.(*events.NodeStreamEvent)
		return ok
	})
	stopIdx := stopIndex(evts, "writer")
	resultIdx := eventIndex(evts, func(e events.Event) bool {
		_, ok := e.(*events.ResultEvent)
		return ok
	})
	require.GreaterOrEqual(t, streamIdx, 0)
	assert.Less(t, startIdx, inputIdx)
	assert.Less(t, inputIdx, streamIdx)
	assert.Less(t, streamIdx, stopIdx)
	assert.Less(t, stopIdx, resultIdx)

	stop := evts[stopIdx].(*events.NodeStopEvent)
	assert.Equal(t, models.NodeStatusCompleted, stop.NodeResult.Status)
}

func TestSingle_ModelFailure(t *testing.T) {
	a := agent.New("writer", "", &scriptedModel{turns: [][]agent.ModelChunk{
		{&agent.ModelError{Err: assert.AnError}},
	}})
	single := NewSingle(a, nil)

	evts, result, streamErr := collectStream(t, single.Stream(context.Background(), Task{Text: "say hello"}))
	require.Error(t, streamErr)
	assert.Nil(t, result)

	idx := stopIndex(evts, "writer")
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, models.NodeStatusFailed, evts[idx].(*events.NodeStopEvent).NodeResult.Status)
}

func TestSingle_InterruptAndResume(t *testing.T) {
	a := agent.New("writer", "", &scriptedModel{turns: [][]agent.ModelChunk{
		toolTurn("tu-1", "ask_user", map[string]any{"question": "publish?"}),
		textTurn("published", models.TokenUsage{}),
	}})
	require.NoError(t, a.Tools().Register(&agent.Tool{
		Definition: agent.ToolDefinition{Name: "ask_user"},
		Execute: func(_ context.Context, input map[string]any) (any, error) {
			return models.Interrupt{ID: "int-9", Name: "approval", Value: input["question"]}, nil
		},
	}))
	single := NewSingle(a, nil)

	_, result, streamErr := collectStream(t, single.Stream(context.Background(), Task{Text: "write"}))
	require.NoError(t, streamErr)
	require.NotNil(t, result)
	require.Equal(t, models.RunStatusInterrupted, result.Status)
	require.True(t, single.Interrupts().Activated())

	_, resumed, resumeErr := collectStream(t, single.Stream(context.Background(), Task{
		Responses: []models.InterruptResponse{{InterruptID: "int-9", Response: "yes"}},
	}))
	requireCompleted(t, resumed, resumeErr)
	assert.Equal(t, "published", resumed.FinalText())
	assert.False(t, single.Interrupts().Activated())
}
