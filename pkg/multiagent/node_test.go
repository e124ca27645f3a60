package multiagent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfleet/agentfleet/pkg/agent"
	"github.com/agentfleet/agentfleet/pkg/models"
)

func forwardAll(any) bool { return true }

func TestNode_ExecutionLeavesAgentUntouched(t *testing.T) {
	model := &scriptedModel{turns: [][]agent.ModelChunk{
		textTurn("hello", models.TokenUsage{InputTokens: 2, OutputTokens: 1, TotalTokens: 3}),
	}}
	a := agent.New("alpha", "", model)
	node := NewAgentNode("alpha", a)

	before := a.Snapshot()
	result := node.execute(context.Background(),
		agent.Input{Blocks: []models.ContentBlock{models.TextBlock("hi")}}, forwardAll)

	require.Equal(t, models.NodeStatusCompleted, result.Status)
	assert.Equal(t, "hello", result.Content[0].Text)

	after := a.Snapshot()
	assert.Len(t, after.Messages, len(before.Messages),
		"the invocation's conversation must not stick to the wrapped agent")
}

func TestNode_InterruptStashesConversationForResume(t *testing.T) {
	model := &scriptedModel{turns: [][]agent.ModelChunk{
		toolTurn("tu-1", "ask_user", map[string]any{"question": "proceed?"}),
	}}
	a := agent.New("alpha", "", model)
	require.NoError(t, a.Tools().Register(&agent.Tool{
		Definition: agent.ToolDefinition{Name: "ask_user"},
		Execute: func(_ context.Context, input map[string]any) (any, error) {
			return models.Interrupt{ID: "int-1", Name: "approval", Value: input["question"]}, nil
		},
	}))
	node := NewAgentNode("alpha", a)

	result := node.execute(context.Background(),
		agent.Input{Blocks: []models.ContentBlock{models.TextBlock("go")}}, forwardAll)
	require.Equal(t, models.NodeStatusInterrupted, result.Status)

	// The agent itself is rolled back to its entry state.
	assert.Empty(t, a.Snapshot().Messages)

	// The interrupt context still carries the mid-run conversation.
	nodeCtx := node.InterruptContext(false)
	assert.NotEmpty(t, nodeCtx.Messages)

	// Resuming reinstalls that conversation for the next invocation.
	node.RestoreForResume(nodeCtx)
	assert.Equal(t, nodeCtx.Messages, a.Snapshot().Messages)
}

func TestSwarm_RevisitStartsFreshConversation(t *testing.T) {
	// alpha -> beta -> alpha; alpha's second invocation must not carry its
	// first-turn conversation.
	alphaModel := &scriptedModel{turns: [][]agent.ModelChunk{
		toolTurn("tu-1", HandoffToolName, map[string]any{"agent_name": "beta", "message": "over"}),
		textTurn("alpha final", models.TokenUsage{}),
	}}
	alpha := agent.New("alpha", "", alphaModel)
	beta := agent.New("beta", "", &scriptedModel{turns: [][]agent.ModelChunk{
		toolTurn("tu-2", HandoffToolName, map[string]any{"agent_name": "alpha", "message": "back"}),
		textTurn("beta done", models.TokenUsage{}),
	}})

	swarm, err := NewSwarm("swarm-1", []*agent.Agent{alpha, beta}, SwarmConfig{})
	require.NoError(t, err)

	_, result, streamErr := collectStream(t, swarm.Stream(context.Background(), Task{Text: "task"}))
	requireCompleted(t, result, streamErr)
	assert.Equal(t, []string{"alpha", "beta", "alpha"}, swarm.NodeHistory())

	// alpha's model saw three calls: first visit's tool turn and closing
	// turn, then the revisit. The revisit opens a fresh conversation with
	// just the synthesized swarm input.
	require.Len(t, alphaModel.requests, 3)
	assert.Len(t, alphaModel.requests[2].Messages, 1)
}
