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

func TestSwarm_HandoffSequence(t *testing.T) {
	alpha := agent.New("alpha", "You research.", &scriptedModel{turns: [][]agent.ModelChunk{
		toolTurn("tu-1", HandoffToolName, map[string]any{"agent_name": "beta", "message": "over to you"}),
		textTurn("handing off", models.TokenUsage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}),
	}})
	beta := agent.New("beta", "You write.", &scriptedModel{turns: [][]agent.ModelChunk{
		textTurn("final answer", models.TokenUsage{InputTokens: 20, OutputTokens: 8, TotalTokens: 28}),
	}})

	swarm, err := NewSwarm("swarm-1", []*agent.Agent{alpha, beta}, SwarmConfig{})
	require.NoError(t, err)

	evts, result, streamErr := collectStream(t, swarm.Stream(context.Background(), Task{Text: "write a report"}))
	requireCompleted(t, result, streamErr)

	assert.Equal(t, []string{"alpha", "beta"}, swarm.NodeHistory())
	assert.Equal(t, []string{"alpha", "beta"}, result.ExecutionOrder)
	assert.Equal(t, "final answer", result.FinalText())

	handoffIdx := eventIndex(evts, func(e events.Event) bool {
		_, ok := e.(*events.HandoffEvent)
		return ok
	})
	require.GreaterOrEqual(t, handoffIdx, 0)
	handoff := evts[handoffIdx].(*events.HandoffEvent)
	assert.Equal(t, []string{"alpha"}, handoff.FromNodeIDs)
	assert.Equal(t, []string{"beta"}, handoff.ToNodeIDs)
	assert.Equal(t, "over to you", handoff.Message)

	// Stop(alpha) -> handoff -> start(beta).
	assert.Less(t, stopIndex(evts, "alpha"), handoffIdx)
	assert.Greater(t, startIndex(evts, "beta"), handoffIdx)
}

func TestSwarm_RejectsReservedToolName(t *testing.T) {
	alpha := agent.New("alpha", "", &scriptedModel{turns: [][]agent.ModelChunk{textTurn("x", models.TokenUsage{})}})
	require.NoError(t, alpha.Tools().Register(&agent.Tool{
		Definition: agent.ToolDefinition{Name: HandoffToolName},
		Execute:    func(context.Context, map[string]any) (any, error) { return nil, nil },
	}))

	_, err := NewSwarm("swarm-1", []*agent.Agent{alpha}, SwarmConfig{})
	require.ErrorIs(t, err, agent.ErrToolExists)
}

func TestSwarm_UnknownHandoffTargetKeepsControl(t *testing.T) {
	// The tool rejects the unknown target; the agent sees the error and
	// finishes its turn, completing the swarm with its own response.
	alpha := agent.New("alpha", "", &scriptedModel{turns: [][]agent.ModelChunk{
		toolTurn("tu-1", HandoffToolName, map[string]any{"agent_name": "ghost", "message": "hi"}),
		textTurn("done alone", models.TokenUsage{}),
	}})

	swarm, err := NewSwarm("swarm-1", []*agent.Agent{alpha}, SwarmConfig{})
	require.NoError(t, err)

	_, result, streamErr := collectStream(t, swarm.Stream(context.Background(), Task{Text: "task"}))
	requireCompleted(t, result, streamErr)
	assert.Equal(t, []string{"alpha"}, swarm.NodeHistory())
	assert.Equal(t, "done alone", result.FinalText())
}

func TestSwarm_MaxHandoffsExceeded(t *testing.T) {
	model := func(other string) *scriptedModel {
		return &scriptedModel{turns: [][]agent.ModelChunk{
			toolTurn("tu", HandoffToolName, map[string]any{"agent_name": other, "message": "ping"}),
			textTurn("pong", models.TokenUsage{}),
		}}
	}
	alpha := agent.New("alpha", "", model("beta"))
	beta := agent.New("beta", "", model("alpha"))

	swarm, err := NewSwarm("swarm-1", []*agent.Agent{alpha, beta}, SwarmConfig{MaxHandoffs: 2, MaxIterations: 50})
	require.NoError(t, err)

	_, result, streamErr := collectStream(t, swarm.Stream(context.Background(), Task{Text: "task"}))
	require.Error(t, streamErr)
	assert.Contains(t, streamErr.Error(), "max handoffs")
	assert.Nil(t, result)
	assert.Equal(t, models.NodeStatusFailed, swarm.Status())
}

func TestSwarm_RepetitiveHandoffDetection(t *testing.T) {
	// Every turn hands back to alpha: tool call, then the closing text.
	alpha := agent.New("alpha", "", &scriptedModel{turns: [][]agent.ModelChunk{
		toolTurn("tu-1", HandoffToolName, map[string]any{"agent_name": "alpha", "message": "again"}),
		textTurn("looping", models.TokenUsage{}),
		toolTurn("tu-2", HandoffToolName, map[string]any{"agent_name": "alpha", "message": "again"}),
		textTurn("looping", models.TokenUsage{}),
		toolTurn("tu-3", HandoffToolName, map[string]any{"agent_name": "alpha", "message": "again"}),
		textTurn("looping", models.TokenUsage{}),
	}})

	swarm, err := NewSwarm("swarm-1", []*agent.Agent{alpha}, SwarmConfig{
		MaxHandoffs:                10,
		MaxIterations:              10,
		RepetitiveHandoffWindow:    2,
		RepetitiveHandoffMinUnique: 2,
	})
	require.NoError(t, err)

	_, _, streamErr := collectStream(t, swarm.Stream(context.Background(), Task{Text: "task"}))
	require.Error(t, streamErr)
	assert.Contains(t, streamErr.Error(), "repetitive handoff")
}

func TestSwarm_SharedContextMerge(t *testing.T) {
	alpha := agent.New("alpha", "", &scriptedModel{turns: [][]agent.ModelChunk{
		toolTurn("tu-1", HandoffToolName, map[string]any{
			"agent_name": "beta",
			"message":    "take over",
			"context":    map[string]any{"finding": "rate limit is 429"},
		}),
		textTurn("handing off", models.TokenUsage{}),
	}})
	beta := agent.New("beta", "", &scriptedModel{turns: [][]agent.ModelChunk{
		textTurn("used the finding", models.TokenUsage{}),
	}})

	swarm, err := NewSwarm("swarm-1", []*agent.Agent{alpha, beta}, SwarmConfig{})
	require.NoError(t, err)

	evts, result, streamErr := collectStream(t, swarm.Stream(context.Background(), Task{Text: "task"}))
	requireCompleted(t, result, streamErr)

	require.Contains(t, swarm.SharedContext(), "alpha")
	assert.Equal(t, "rate limit is 429", swarm.SharedContext()["alpha"]["finding"])

	// Beta's synthesized input carries the shared-context dump.
	idx := eventIndex(evts, func(e events.Event) bool {
		input, ok := e.(*events.NodeInputEvent)
		return ok && input.NodeID == "beta"
	})
	require.GreaterOrEqual(t, idx, 0)
	payload := evts[idx].(*events.NodeInputEvent).Input.(map[string]any)
	assert.Contains(t, payload["text"], "Shared knowledge")
	assert.Contains(t, payload["text"], "rate limit is 429")
	assert.Contains(t, payload["text"], "Handoff message: take over")
}

func TestSwarm_HookCancelFailsRun(t *testing.T) {
	alpha := agent.New("alpha", "", &scriptedModel{turns: [][]agent.ModelChunk{textTurn("x", models.TokenUsage{})}})
	hook := func(_ context.Context, _ string) (*HookDecision, error) {
		return &HookDecision{Cancel: true, CancelMessage: "blocked by review"}, nil
	}

	swarm, err := NewSwarm("swarm-1", []*agent.Agent{alpha}, SwarmConfig{Hook: hook})
	require.NoError(t, err)

	evts, result, streamErr := collectStream(t, swarm.Stream(context.Background(), Task{Text: "task"}))
	require.Error(t, streamErr)
	assert.Contains(t, streamErr.Error(), "blocked by review")
	assert.Nil(t, result)

	idx := eventIndex(evts, func(e events.Event) bool {
		_, ok := e.(*events.NodeCancelEvent)
		return ok
	})
	assert.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, -1, startIndex(evts, "alpha"))
}

func TestSwarm_AgentInterruptAndResume(t *testing.T) {
	alpha := agent.New("alpha", "", &scriptedModel{turns: [][]agent.ModelChunk{
		toolTurn("tu-1", "ask_user", map[string]any{"question": "proceed?"}),
		textTurn("resumed and done", models.TokenUsage{}),
	}})
	require.NoError(t, alpha.Tools().Register(&agent.Tool{
		Definition: agent.ToolDefinition{Name: "ask_user"},
		Execute: func(_ context.Context, input map[string]any) (any, error) {
			return models.Interrupt{ID: "int-1", Name: "approval", Value: input["question"]}, nil
		},
	}))

	swarm, err := NewSwarm("swarm-1", []*agent.Agent{alpha}, SwarmConfig{})
	require.NoError(t, err)

	evts, result, streamErr := collectStream(t, swarm.Stream(context.Background(), Task{Text: "task"}))
	require.NoError(t, streamErr)
	require.NotNil(t, result)
	require.Equal(t, models.RunStatusInterrupted, result.Status)
	require.Len(t, result.Interrupts, 1)
	assert.Equal(t, "approval", result.Interrupts[0].Name)
	assert.True(t, swarm.Interrupts().Activated())

	idx := eventIndex(evts, func(e events.Event) bool {
		_, ok := e.(*events.NodeInterruptEvent)
		return ok
	})
	assert.GreaterOrEqual(t, idx, 0)

	// Resume with the matching response; the node completes and the
	// interrupt state deactivates.
	_, resumed, resumeErr := collectStream(t, swarm.Stream(context.Background(), Task{
		Responses: []models.InterruptResponse{{InterruptID: "int-1", Response: "yes"}},
	}))
	requireCompleted(t, resumed, resumeErr)
	assert.Equal(t, "resumed and done", resumed.FinalText())
	assert.False(t, swarm.Interrupts().Activated())
}

func TestSwarm_ExecutionTimeout(t *testing.T) {
	alpha := agent.New("alpha", "", &scriptedModel{turns: [][]agent.ModelChunk{textTurn("x", models.TokenUsage{})}})

	swarm, err := NewSwarm("swarm-1", []*agent.Agent{alpha}, SwarmConfig{ExecutionTimeout: time.Nanosecond})
	require.NoError(t, err)

	_, _, streamErr := collectStream(t, swarm.Stream(context.Background(), Task{Text: "task"}))
	require.Error(t, streamErr)
	assert.Contains(t, streamErr.Error(), "execution timeout")
}
