package multiagent

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfleet/agentfleet/pkg/agent"
	"github.com/agentfleet/agentfleet/pkg/models"
)

func TestSwarm_SerializeRoundTripResume(t *testing.T) {
	buildSwarm := func() *Swarm {
		alpha := agent.New("alpha", "", &scriptedModel{turns: [][]agent.ModelChunk{
			toolTurn("tu-1", "ask_user", map[string]any{"question": "go on?"}),
			textTurn("after resume", models.TokenUsage{}),
		}})
		require.NoError(t, alpha.Tools().Register(&agent.Tool{
			Definition: agent.ToolDefinition{Name: "ask_user"},
			Execute: func(_ context.Context, input map[string]any) (any, error) {
				return models.Interrupt{ID: "int-1", Name: "approval", Value: input["question"]}, nil
			},
		}))
		swarm, err := NewSwarm("swarm-1", []*agent.Agent{alpha}, SwarmConfig{})
		require.NoError(t, err)
		return swarm
	}

	first := buildSwarm()
	_, result, streamErr := collectStream(t, first.Stream(context.Background(), Task{Text: "task"}))
	require.NoError(t, streamErr)
	require.Equal(t, models.RunStatusInterrupted, result.Status)

	st := first.Serialize()
	assert.Equal(t, StateTypeSwarm, st.Type)
	assert.Equal(t, models.NodeStatusInterrupted, st.Status)
	assert.Equal(t, []string{"alpha"}, st.NextNodesToExecute)
	require.NotNil(t, st.InternalState.InterruptState)
	assert.True(t, st.InternalState.InterruptState.Activated)

	// Through JSON, as the session store does it.
	raw, err := json.Marshal(st)
	require.NoError(t, err)
	var restored SerializedState
	require.NoError(t, json.Unmarshal(raw, &restored))

	second := buildSwarm()
	// The fresh swarm's model starts from turn zero; the resume turn is
	// the tool turn's successor, so skip the scripted tool call.
	second.nodes["alpha"].agentExec.Model.(*scriptedModel).calls = 1
	require.NoError(t, second.RestoreState(&restored))
	require.True(t, second.Interrupts().Activated())

	_, resumed, resumeErr := collectStream(t, second.Stream(context.Background(), Task{
		Responses: []models.InterruptResponse{{InterruptID: "int-1", Response: "yes"}},
	}))
	requireCompleted(t, resumed, resumeErr)
	assert.Equal(t, "after resume", resumed.FinalText())
}

func TestSwarm_RestoreStateWithoutNextNodesResetsToPending(t *testing.T) {
	alpha := agent.New("alpha", "", &scriptedModel{turns: [][]agent.ModelChunk{textTurn("x", models.TokenUsage{})}})
	swarm, err := NewSwarm("swarm-1", []*agent.Agent{alpha}, SwarmConfig{})
	require.NoError(t, err)

	require.NoError(t, swarm.RestoreState(&SerializedState{
		Type:   StateTypeSwarm,
		ID:     "swarm-1",
		Status: models.NodeStatusInterrupted,
	}))
	assert.Equal(t, models.NodeStatusPending, swarm.Status())
}

func TestGraph_SerializeRoundTripResume(t *testing.T) {
	interruptGate := func(_ context.Context, nodeID string) (*HookDecision, error) {
		if nodeID == "B" {
			return &HookDecision{Interrupts: []models.Interrupt{{ID: "int-2", Name: "gate"}}}, nil
		}
		return nil, nil
	}
	buildGraph := func(hook BeforeNodeCall) *Graph {
		g, err := NewGraphBuilder("graph-1", GraphConfig{Hook: hook}).
			AddAgent(simpleAgent("A", "a done")).
			AddAgent(simpleAgent("B", "b done")).
			AddEdge("A", "B", nil).
			Build()
		require.NoError(t, err)
		return g
	}

	first := buildGraph(interruptGate)
	_, result, streamErr := collectStream(t, first.Stream(context.Background(), Task{Text: "task"}))
	require.NoError(t, streamErr)
	require.Equal(t, models.RunStatusInterrupted, result.Status)

	st := first.Serialize()
	assert.Equal(t, StateTypeGraph, st.Type)
	assert.Equal(t, []string{"A"}, st.CompletedNodes)
	assert.Equal(t, []string{"B"}, st.NextNodesToExecute)

	raw, err := json.Marshal(st)
	require.NoError(t, err)
	var restored SerializedState
	require.NoError(t, json.Unmarshal(raw, &restored))

	second := buildGraph(func(context.Context, string) (*HookDecision, error) { return nil, nil })
	require.NoError(t, second.RestoreState(&restored))
	require.True(t, second.Interrupts().Activated())

	_, resumed, resumeErr := collectStream(t, second.Stream(context.Background(), Task{
		Responses: []models.InterruptResponse{{InterruptID: "int-2", Response: "approved"}},
	}))
	requireCompleted(t, resumed, resumeErr)
	assert.Equal(t, "b done", resumed.FinalText())
	assert.ElementsMatch(t, []string{"A", "B"}, resumed.ExecutionOrder)
}

func TestGraph_RestoreStateRejectsUnknownNodes(t *testing.T) {
	g, err := NewGraphBuilder("graph-1", GraphConfig{}).
		AddAgent(simpleAgent("A", "a")).
		Build()
	require.NoError(t, err)

	err = g.RestoreState(&SerializedState{
		Type:        StateTypeGraph,
		NodeResults: map[string]*models.NodeResult{"ghost": {Status: models.NodeStatusCompleted}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown node")
}
