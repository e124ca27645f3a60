package supervisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfleet/agentfleet/pkg/agent"
	"github.com/agentfleet/agentfleet/pkg/config"
	"github.com/agentfleet/agentfleet/pkg/events"
	"github.com/agentfleet/agentfleet/pkg/models"
	"github.com/agentfleet/agentfleet/pkg/multiagent"
	"github.com/agentfleet/agentfleet/pkg/services"
	"github.com/agentfleet/agentfleet/pkg/session"
	testdb "github.com/agentfleet/agentfleet/test/database"
)

type sseRecord struct {
	eventType string
	data      []byte
}

type fakeConsumer struct {
	mu      sync.Mutex
	records []sseRecord
	gone    chan struct{}
	sendErr error
}

func newFakeConsumer() *fakeConsumer {
	return &fakeConsumer{gone: make(chan struct{})}
}

func (c *fakeConsumer) Send(eventType string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sendErr != nil {
		return c.sendErr
	}
	c.records = append(c.records, sseRecord{eventType, append([]byte(nil), data...)})
	return nil
}

func (c *fakeConsumer) Disconnected() <-chan struct{} { return c.gone }

func (c *fakeConsumer) types() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.records))
	for i, r := range c.records {
		out[i] = r.eventType
	}
	return out
}

func (c *fakeConsumer) last() sseRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.records[len(c.records)-1]
}

// scriptedOrchestrator replays a fixed item sequence; with block set it
// emits nothing until cancelled.
type scriptedOrchestrator struct {
	id    string
	items []multiagent.StreamItem
	state *multiagent.SerializedState
	block bool
}

func (o *scriptedOrchestrator) ID() string { return o.id }

func (o *scriptedOrchestrator) Interrupts() *multiagent.InterruptState {
	return multiagent.NewInterruptState()
}

func (o *scriptedOrchestrator) Serialize() *multiagent.SerializedState { return o.state }

func (o *scriptedOrchestrator) Stream(ctx context.Context, _ multiagent.Task) <-chan multiagent.StreamItem {
	ch := make(chan multiagent.StreamItem)
	go func() {
		defer close(ch)
		if o.block {
			<-ctx.Done()
			return
		}
		for _, item := range o.items {
			select {
			case ch <- item:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

func testConfig() config.Config {
	return config.Config{
		RunWallClock:                    5 * time.Second,
		StreamIdle:                      2 * time.Second,
		MaxRunTotalTokens:               100_000,
		MaxToolUsesPerRun:               24,
		MaxToolUsesPerTool:              8,
		MaxPersistedStreamEventsPerNode: 120,
	}
}

func testRunParams(t *testing.T, svc *services.HistoryService, cfg config.Config, orch multiagent.Orchestrator) RunParams {
	t.Helper()
	runID := uuid.New().String()
	_, err := svc.StartRun(context.Background(), services.StartRunParams{
		RunID:  runID,
		Mode:   "single",
		Prompt: "summarize the incident",
	})
	require.NoError(t, err)

	return RunParams{
		RunID:        runID,
		Mode:         models.RunModeSingle,
		Prompt:       "summarize the incident",
		ModelID:      "anthropic.claude-sonnet-4-20250514-v1:0",
		Orchestrator: orch,
		Task:         multiagent.Task{Text: "summarize the incident"},
		Policy:       cfg.ResolveToolPolicy("single", nil),
	}
}

func completedResult(nodeID, text string, usage models.TokenUsage) *models.OrchestrationResult {
	return &models.OrchestrationResult{
		Status: models.RunStatusCompleted,
		Results: map[string]*models.NodeResult{
			nodeID: {
				Status:           models.NodeStatusCompleted,
				Content:          []models.ContentBlock{{Text: text}},
				AccumulatedUsage: usage,
			},
		},
		AccumulatedUsage: usage,
		ExecutionOrder:   []string{nodeID},
		ExecutionTimeMs:  1234,
	}
}

func TestDriver_HappyPath(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewHistoryService(client.Client)
	cfg := testConfig()

	usage := models.TokenUsage{InputTokens: 50, OutputTokens: 20, TotalTokens: 70}
	orch := &scriptedOrchestrator{
		id: "solo",
		items: []multiagent.StreamItem{
			{Event: &events.NodeStartEvent{NodeID: "solo", NodeType: "agent"}},
			{Event: &events.NodeStreamEvent{NodeID: "solo", Event: &agent.UsageChunk{Usage: usage}}},
			{Event: &events.NodeStopEvent{NodeID: "solo", NodeResult: &models.NodeResult{Status: models.NodeStatusCompleted}}},
			{Result: completedResult("solo", "The answer.", usage)},
		},
		state: &multiagent.SerializedState{NodeHistory: []string{"solo"}},
	}

	consumer := newFakeConsumer()
	params := testRunParams(t, svc, cfg, orch)
	NewDriver(cfg, svc, nil, nil).Drive(context.Background(), params, consumer)

	require.Equal(t, []string{
		events.TypeNodeStart,
		events.TypeNodeStream,
		events.TypeNodeStop,
		RecordDone,
	}, consumer.types())

	var done DonePayload
	require.NoError(t, json.Unmarshal(consumer.last().data, &done))
	assert.Equal(t, params.RunID, done.RunID)
	assert.Equal(t, models.RunStatusCompleted, done.Status)
	assert.Equal(t, "The answer.", done.Text)
	assert.Equal(t, 70, done.Usage.TotalTokens)
	assert.Equal(t, []string{"solo"}, done.NodeHistory)
	assert.Equal(t, []string{"solo"}, done.ExecutionOrder)

	run, err := svc.GetRunDetail(context.Background(), params.RunID)
	require.NoError(t, err)
	assert.Equal(t, "completed", string(run.Status))
	assert.Equal(t, 70, run.TotalTokens)
	assert.Equal(t, 1, run.NodeStartCount)
	assert.False(t, run.Anomaly)
	require.Len(t, run.Edges.NodeMetrics, 1)
	assert.Equal(t, "solo", run.Edges.NodeMetrics[0].NodeID)
	assert.Equal(t, 70, run.Edges.NodeMetrics[0].TotalTokens)
}

func TestDriver_BudgetBreachFailsRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewHistoryService(client.Client)
	cfg := testConfig()
	cfg.MaxRunTotalTokens = 100

	orch := &scriptedOrchestrator{
		id: "solo",
		items: []multiagent.StreamItem{
			{Event: &events.NodeStreamEvent{NodeID: "solo", Event: &agent.UsageChunk{Usage: models.TokenUsage{TotalTokens: 60}}}},
			{Event: &events.NodeStreamEvent{NodeID: "solo", Event: &agent.UsageChunk{Usage: models.TokenUsage{TotalTokens: 120}}}},
			{Result: completedResult("solo", "never reached", models.TokenUsage{TotalTokens: 120})},
		},
	}

	consumer := newFakeConsumer()
	params := testRunParams(t, svc, cfg, orch)
	NewDriver(cfg, svc, nil, nil).Drive(context.Background(), params, consumer)

	types := consumer.types()
	require.Equal(t, RecordError, types[len(types)-1])
	assert.NotContains(t, types, RecordDone)

	var errPayload ErrorPayload
	require.NoError(t, json.Unmarshal(consumer.last().data, &errPayload))
	assert.Equal(t, CodeTokenBudgetExceeded, errPayload.Code)
	assert.Contains(t, errPayload.Message, "120")

	run, err := svc.GetRunDetail(context.Background(), params.RunID)
	require.NoError(t, err)
	assert.Equal(t, "failed", string(run.Status))
	assert.True(t, run.Anomaly)
	require.NotNil(t, run.ErrorCode)
	assert.Equal(t, CodeTokenBudgetExceeded, *run.ErrorCode)
}

func TestDriver_ToolPolicyBreachFailsRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewHistoryService(client.Client)
	cfg := testConfig()

	orch := &scriptedOrchestrator{
		id: "solo",
		items: []multiagent.StreamItem{
			{Event: &events.NodeStreamEvent{NodeID: "solo", Event: &agent.ToolUseChunk{ToolUseID: "tu-1", ToolName: "search"}}},
			{Event: &events.NodeStreamEvent{NodeID: "solo", Event: &agent.ToolUseChunk{ToolUseID: "tu-2", ToolName: "search"}}},
			{Result: completedResult("solo", "never reached", models.TokenUsage{})},
		},
	}

	consumer := newFakeConsumer()
	params := testRunParams(t, svc, cfg, orch)
	params.Policy.PerToolLimits = map[string]int{"search": 1}
	NewDriver(cfg, svc, nil, nil).Drive(context.Background(), params, consumer)

	var errPayload ErrorPayload
	require.NoError(t, json.Unmarshal(consumer.last().data, &errPayload))
	assert.Equal(t, CodeToolPolicyExceeded, errPayload.Code)

	run, err := svc.GetRunDetail(context.Background(), params.RunID)
	require.NoError(t, err)
	assert.Equal(t, "failed", string(run.Status))
	assert.Equal(t, 2, run.ToolUseCount)
}

func TestDriver_IdleTimeout(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewHistoryService(client.Client)
	cfg := testConfig()
	cfg.StreamIdle = 50 * time.Millisecond

	consumer := newFakeConsumer()
	params := testRunParams(t, svc, cfg, &scriptedOrchestrator{id: "solo", block: true})
	NewDriver(cfg, svc, nil, nil).Drive(context.Background(), params, consumer)

	var errPayload ErrorPayload
	require.NoError(t, json.Unmarshal(consumer.last().data, &errPayload))
	assert.Equal(t, CodeRunIdleTimeoutExceeded, errPayload.Code)

	run, err := svc.GetRunDetail(context.Background(), params.RunID)
	require.NoError(t, err)
	assert.Equal(t, "failed", string(run.Status))
}

func TestDriver_WallClockTimeout(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewHistoryService(client.Client)
	cfg := testConfig()
	cfg.RunWallClock = 50 * time.Millisecond
	cfg.StreamIdle = time.Second

	consumer := newFakeConsumer()
	params := testRunParams(t, svc, cfg, &scriptedOrchestrator{id: "solo", block: true})
	NewDriver(cfg, svc, nil, nil).Drive(context.Background(), params, consumer)

	var errPayload ErrorPayload
	require.NoError(t, json.Unmarshal(consumer.last().data, &errPayload))
	assert.Equal(t, CodeRunTimeoutExceeded, errPayload.Code)
}

func TestDriver_ClientDisconnect(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewHistoryService(client.Client)
	cfg := testConfig()

	consumer := newFakeConsumer()
	close(consumer.gone)

	params := testRunParams(t, svc, cfg, &scriptedOrchestrator{id: "solo", block: true})
	NewDriver(cfg, svc, nil, nil).Drive(context.Background(), params, consumer)

	// No done or error record reaches a disconnected consumer.
	assert.Empty(t, consumer.types())

	run, err := svc.GetRunDetail(context.Background(), params.RunID)
	require.NoError(t, err)
	assert.Equal(t, "interrupted", string(run.Status))
	assert.True(t, run.ClientDisconnected)
	require.NotNil(t, run.ErrorCode)
	assert.Equal(t, CodeClientDisconnected, *run.ErrorCode)
	require.NotNil(t, run.ErrorMessage)
	assert.Equal(t, DisconnectReason, *run.ErrorMessage)
}

// stuckOrchestrator ignores cancellation entirely; its stream never yields.
type stuckOrchestrator struct{ scriptedOrchestrator }

func (o *stuckOrchestrator) Stream(context.Context, multiagent.Task) <-chan multiagent.StreamItem {
	return make(chan multiagent.StreamItem)
}

func TestDriver_DisconnectWithCanceledRequestContext(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewHistoryService(client.Client)
	cfg := testConfig()

	consumer := newFakeConsumer()
	close(consumer.gone)

	// The SSE consumer reports disconnects through the request context's
	// done channel, so the context the driver holds is already canceled by
	// the time it sees the signal. The run must still be finalized.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	params := testRunParams(t, svc, cfg, &stuckOrchestrator{})
	NewDriver(cfg, svc, nil, nil).Drive(ctx, params, consumer)

	run, err := svc.GetRunDetail(context.Background(), params.RunID)
	require.NoError(t, err)
	assert.Equal(t, "interrupted", string(run.Status))
	assert.True(t, run.ClientDisconnected)
	require.NotNil(t, run.ErrorCode)
	assert.Equal(t, CodeClientDisconnected, *run.ErrorCode)
	require.NotNil(t, run.ErrorMessage)
	assert.Equal(t, DisconnectReason, *run.ErrorMessage)
}

func TestDriver_SendFailureTreatedAsDisconnect(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewHistoryService(client.Client)
	cfg := testConfig()

	consumer := newFakeConsumer()
	consumer.sendErr = errors.New("broken pipe")

	orch := &scriptedOrchestrator{
		id: "solo",
		items: []multiagent.StreamItem{
			{Event: &events.NodeStartEvent{NodeID: "solo", NodeType: "agent"}},
			{Result: completedResult("solo", "never reached", models.TokenUsage{})},
		},
	}
	params := testRunParams(t, svc, cfg, orch)
	NewDriver(cfg, svc, nil, nil).Drive(context.Background(), params, consumer)

	run, err := svc.GetRunDetail(context.Background(), params.RunID)
	require.NoError(t, err)
	assert.Equal(t, "interrupted", string(run.Status))
	assert.True(t, run.ClientDisconnected)
}

func TestDriver_ModelStreamIncompleteCode(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewHistoryService(client.Client)
	cfg := testConfig()

	orch := &scriptedOrchestrator{
		id: "solo",
		items: []multiagent.StreamItem{
			{Err: fmt.Errorf("bedrock stream: %w", agent.ErrModelStreamIncomplete)},
		},
	}

	consumer := newFakeConsumer()
	params := testRunParams(t, svc, cfg, orch)
	NewDriver(cfg, svc, nil, nil).Drive(context.Background(), params, consumer)

	var errPayload ErrorPayload
	require.NoError(t, json.Unmarshal(consumer.last().data, &errPayload))
	assert.Equal(t, CodeModelStreamIncomplete, errPayload.Code)
}

func TestDriver_NestedEventsAccountedNotResent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewHistoryService(client.Client)
	cfg := testConfig()

	// A nested orchestrator's node-start rides inside the outer node's
	// stream event.
	orch := &scriptedOrchestrator{
		id: "coordinator",
		items: []multiagent.StreamItem{
			{Event: &events.NodeStartEvent{NodeID: "coordinator", NodeType: "swarm"}},
			{Event: &events.NodeStreamEvent{NodeID: "coordinator", Event: &events.NodeStartEvent{NodeID: "inner", NodeType: "agent"}}},
			{Result: completedResult("coordinator", "done", models.TokenUsage{TotalTokens: 10})},
		},
	}

	consumer := newFakeConsumer()
	params := testRunParams(t, svc, cfg, orch)
	NewDriver(cfg, svc, nil, nil).Drive(context.Background(), params, consumer)

	// The wire carries the outer events only.
	require.Equal(t, []string{events.TypeNodeStart, events.TypeNodeStream, RecordDone}, consumer.types())

	// Both node starts count, and both land in the event log.
	run, err := svc.GetRunDetail(context.Background(), params.RunID)
	require.NoError(t, err)
	assert.Equal(t, 2, run.NodeStartCount)

	var starts int
	for _, evt := range run.Edges.Events {
		if evt.EventType == events.TypeNodeStart {
			starts++
		}
	}
	assert.Equal(t, 2, starts)
}

func TestDriver_ReviewContractViolation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewHistoryService(client.Client)
	cfg := testConfig()

	orch := &scriptedOrchestrator{
		id: "judge",
		items: []multiagent.StreamItem{
			{Event: &events.NodeStreamEvent{NodeID: "judge", Event: &agent.ToolUseChunk{ToolUseID: "tu-1", ToolName: "swarm"}}},
			{Result: completedResult("judge", "verdict text", models.TokenUsage{TotalTokens: 10})},
		},
	}

	consumer := newFakeConsumer()
	params := testRunParams(t, svc, cfg, orch)
	params.PresetKey = config.PresetAgentReviewJudge
	NewDriver(cfg, svc, nil, nil).Drive(context.Background(), params, consumer)

	var errPayload ErrorPayload
	require.NoError(t, json.Unmarshal(consumer.last().data, &errPayload))
	assert.Equal(t, CodeAgentReviewContractViolation, errPayload.Code)

	run, err := svc.GetRunDetail(context.Background(), params.RunID)
	require.NoError(t, err)
	assert.Equal(t, "failed", string(run.Status))
	assert.True(t, run.Anomaly)
}

func TestDriver_InterruptedRunCheckpointsSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewHistoryService(client.Client)
	cfg := testConfig()

	store, err := session.NewFileStore(t.TempDir())
	require.NoError(t, err)

	interrupts := []models.Interrupt{{ID: "int-1", Name: "approval", NodeID: "solo"}}
	result := &models.OrchestrationResult{
		Status: models.RunStatusInterrupted,
		Results: map[string]*models.NodeResult{
			"solo": {Status: models.NodeStatusInterrupted, Interrupts: interrupts},
		},
		ExecutionOrder: []string{"solo"},
		Interrupts:     interrupts,
	}
	orch := &scriptedOrchestrator{
		id:    "solo",
		items: []multiagent.StreamItem{{Result: result}},
		state: &multiagent.SerializedState{
			Type:        multiagent.StateTypeSingle,
			ID:          "solo",
			Status:      models.NodeStatusInterrupted,
			NodeHistory: []string{"solo"},
		},
	}

	consumer := newFakeConsumer()
	params := testRunParams(t, svc, cfg, orch)
	params.SessionID = "sess-interrupt"
	NewDriver(cfg, svc, store, nil).Drive(context.Background(), params, consumer)

	var done DonePayload
	require.NoError(t, json.Unmarshal(consumer.last().data, &done))
	assert.Equal(t, models.RunStatusInterrupted, done.Status)
	require.Len(t, done.Interrupts, 1)
	assert.Equal(t, "int-1", done.Interrupts[0].ID)

	run, err := svc.GetRunDetail(context.Background(), params.RunID)
	require.NoError(t, err)
	assert.Equal(t, "interrupted", string(run.Status))
	assert.False(t, run.ClientDisconnected)

	state, err := store.Load(context.Background(), "sess-interrupt")
	require.NoError(t, err)
	assert.Equal(t, []string{"solo"}, state.NodeHistory)
}
