package supervisor

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfleet/agentfleet/pkg/agent"
	"github.com/agentfleet/agentfleet/pkg/events"
	"github.com/agentfleet/agentfleet/pkg/models"
	"github.com/agentfleet/agentfleet/pkg/services"
	testdb "github.com/agentfleet/agentfleet/test/database"
)

func newTestHistory(t *testing.T) (*services.HistoryService, string) {
	t.Helper()
	client := testdb.NewTestClient(t)
	svc := services.NewHistoryService(client.Client)

	runID := uuid.New().String()
	_, err := svc.StartRun(context.Background(), services.StartRunParams{
		RunID:  runID,
		Mode:   "single",
		Prompt: "summarize the incident",
	})
	require.NoError(t, err)
	return svc, runID
}

func TestCapture_CapsStreamEventsPerNode(t *testing.T) {
	svc, runID := newTestHistory(t)
	ctx := context.Background()

	c := NewCapture(svc, runID, 2)
	c.Persist(ctx, &events.NodeStartEvent{NodeID: "solo", NodeType: "agent"})
	for i := 0; i < 4; i++ {
		c.Persist(ctx, &events.NodeStreamEvent{NodeID: "solo", Event: &agent.ContentDelta{Text: "chunk"}})
	}
	c.Persist(ctx, &events.NodeStopEvent{NodeID: "solo", NodeResult: &models.NodeResult{Status: models.NodeStatusCompleted}})

	run, err := svc.GetRunDetail(ctx, runID)
	require.NoError(t, err)
	// start + 2 stream + 1 capped marker + stop; the 3rd and 4th stream
	// events are dropped from storage.
	require.Len(t, run.Edges.Events, 5)
	assert.Equal(t, events.TypeNodeStart, run.Edges.Events[0].EventType)
	assert.Equal(t, events.TypeNodeStream, run.Edges.Events[1].EventType)
	assert.Equal(t, events.TypeNodeStream, run.Edges.Events[2].EventType)
	assert.Equal(t, events.TypeNodeStreamCapped, run.Edges.Events[3].EventType)
	assert.Equal(t, events.TypeNodeStop, run.Edges.Events[4].EventType)

	assert.Equal(t, 4, c.StreamEventCount("solo"))
	assert.True(t, c.Capped("solo"))
	assert.Equal(t, "completed", c.NodeStatus("solo"))
	assert.Equal(t, 5, c.Sequence())
}

func TestCapture_NonStreamEventsAlwaysPersisted(t *testing.T) {
	svc, runID := newTestHistory(t)
	ctx := context.Background()

	c := NewCapture(svc, runID, 1)
	c.Persist(ctx, &events.NodeStreamEvent{NodeID: "a", Event: &agent.ContentDelta{Text: "one"}})
	c.Persist(ctx, &events.NodeStreamEvent{NodeID: "a", Event: &agent.ContentDelta{Text: "two"}})
	// Handoffs are not stream events and never hit the cap.
	c.Persist(ctx, &events.HandoffEvent{FromNodeIDs: []string{"a"}, ToNodeIDs: []string{"b"}, Message: "next"})
	c.Persist(ctx, &events.NodeStreamEvent{NodeID: "b", Event: &agent.ContentDelta{Text: "fresh node"}})

	run, err := svc.GetRunDetail(ctx, runID)
	require.NoError(t, err)
	// stream(a) + capped(a) + handoff + stream(b): the cap is per node.
	require.Len(t, run.Edges.Events, 4)
	assert.Equal(t, events.TypeHandoff, run.Edges.Events[2].EventType)
	assert.Equal(t, events.TypeNodeStream, run.Edges.Events[3].EventType)
	assert.False(t, c.Capped("b"))
}
