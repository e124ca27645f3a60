package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfleet/agentfleet/ent/runsummary"
	testdb "github.com/agentfleet/agentfleet/test/database"
)

func startTestRun(t *testing.T, svc *HistoryService, mode string) string {
	t.Helper()
	runID := uuid.New().String()
	_, err := svc.StartRun(context.Background(), StartRunParams{
		RunID:  runID,
		Mode:   mode,
		Prompt: "investigate the outage",
		Agents: []string{"researcher", "writer"},
	})
	require.NoError(t, err)
	return runID
}

func TestHistoryService_StartRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewHistoryService(client.Client)
	ctx := context.Background()

	t.Run("creates running row", func(t *testing.T) {
		runID := startTestRun(t, svc, "single")

		run, err := svc.GetRunDetail(ctx, runID)
		require.NoError(t, err)
		assert.Equal(t, runsummary.StatusRunning, run.Status)
		assert.Equal(t, runsummary.ModeSingle, run.Mode)
		assert.Equal(t, []string{"researcher", "writer"}, run.Agents)
	})

	t.Run("rejects duplicate run id", func(t *testing.T) {
		runID := startTestRun(t, svc, "single")
		_, err := svc.StartRun(ctx, StartRunParams{RunID: runID, Mode: "single", Prompt: "again"})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("rejects missing prompt", func(t *testing.T) {
		_, err := svc.StartRun(ctx, StartRunParams{RunID: uuid.New().String(), Mode: "single"})
		assert.True(t, IsValidationError(err))
	})
}

func TestHistoryService_CompleteRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewHistoryService(client.Client)
	ctx := context.Background()

	runID := startTestRun(t, svc, "swarm")

	err := svc.CompleteRun(ctx, runID, RunOutcome{
		ResultText:       "all good",
		ModelID:          "anthropic.claude-sonnet-4-20250514-v1:0",
		NodeHistory:      []string{"researcher", "writer"},
		InputTokens:      120,
		OutputTokens:     45,
		TotalTokens:      165,
		ToolUseCount:     3,
		NodeStartCount:   2,
		ExecutionTimeMs:  842,
		EstimatedCostUSD: 0.0012,
	})
	require.NoError(t, err)

	run, err := svc.GetRunDetail(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, runsummary.StatusCompleted, run.Status)
	assert.Equal(t, 165, run.TotalTokens)
	assert.Equal(t, []string{"researcher", "writer"}, run.NodeHistory)
	assert.NotNil(t, run.CompletedAt)
}

func TestHistoryService_TerminalTransitionsAreIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewHistoryService(client.Client)
	ctx := context.Background()

	runID := startTestRun(t, svc, "single")
	require.NoError(t, svc.CompleteRun(ctx, runID, RunOutcome{ResultText: "first"}))

	// A second terminal transition is a no-op, not an error.
	require.NoError(t, svc.FailRun(ctx, runID, "TOKEN_BUDGET_EXCEEDED", "too late", RunOutcome{}))

	run, err := svc.GetRunDetail(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, runsummary.StatusCompleted, run.Status)
	assert.Nil(t, run.ErrorCode)
}

func TestHistoryService_FailRunRecordsCode(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewHistoryService(client.Client)
	ctx := context.Background()

	runID := startTestRun(t, svc, "graph")
	err := svc.FailRun(ctx, runID, "TOOL_POLICY_EXCEEDED", "search: 9/8", RunOutcome{
		Anomaly:   true,
		RiskScore: 0.8,
	})
	require.NoError(t, err)

	run, err := svc.GetRunDetail(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, runsummary.StatusFailed, run.Status)
	require.NotNil(t, run.ErrorCode)
	assert.Equal(t, "TOOL_POLICY_EXCEEDED", *run.ErrorCode)
	assert.True(t, run.Anomaly)
}

func TestHistoryService_MinimalFallbacks(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewHistoryService(client.Client)
	ctx := context.Background()

	completed := startTestRun(t, svc, "single")
	require.NoError(t, svc.MarkRunCompletedMinimal(ctx, completed))

	failed := startTestRun(t, svc, "single")
	require.NoError(t, svc.MarkRunFailedMinimal(ctx, failed, "storage error during finalization"))

	run, err := svc.GetRunDetail(ctx, completed)
	require.NoError(t, err)
	assert.Equal(t, runsummary.StatusCompleted, run.Status)

	run, err = svc.GetRunDetail(ctx, failed)
	require.NoError(t, err)
	assert.Equal(t, runsummary.StatusFailed, run.Status)
	require.NotNil(t, run.ErrorMessage)
	assert.Equal(t, "storage error during finalization", *run.ErrorMessage)
}

func TestHistoryService_InterruptRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewHistoryService(client.Client)
	ctx := context.Background()

	runID := startTestRun(t, svc, "swarm")
	require.NoError(t, svc.InterruptRun(ctx, runID, "CLIENT_DISCONNECTED", "Client disconnected before run finalized.", true))

	run, err := svc.GetRunDetail(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, runsummary.StatusInterrupted, run.Status)
	assert.True(t, run.ClientDisconnected)
	require.NotNil(t, run.ErrorCode)
	assert.Equal(t, "CLIENT_DISCONNECTED", *run.ErrorCode)
}

func TestHistoryService_RecoverRunningRuns(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewHistoryService(client.Client)
	ctx := context.Background()

	orphan1 := startTestRun(t, svc, "single")
	orphan2 := startTestRun(t, svc, "graph")
	done := startTestRun(t, svc, "single")
	require.NoError(t, svc.CompleteRun(ctx, done, RunOutcome{}))

	n, err := svc.RecoverRunningRuns(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, runID := range []string{orphan1, orphan2} {
		run, err := svc.GetRunDetail(ctx, runID)
		require.NoError(t, err)
		assert.Equal(t, runsummary.StatusInterrupted, run.Status)
		require.NotNil(t, run.ErrorMessage)
		assert.Equal(t, RecoveryMessage, *run.ErrorMessage)
	}

	run, err := svc.GetRunDetail(ctx, done)
	require.NoError(t, err)
	assert.Equal(t, runsummary.StatusCompleted, run.Status)
}

func TestHistoryService_AppendEventAndDetail(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewHistoryService(client.Client)
	ctx := context.Background()

	runID := startTestRun(t, svc, "single")
	require.NoError(t, svc.AppendEvent(ctx, runID, 0, "multiAgentNodeStartEvent", "researcher", map[string]any{"nodeId": "researcher"}))
	require.NoError(t, svc.AppendEvent(ctx, runID, 1, "multiAgentNodeStopEvent", "researcher", map[string]any{"status": "completed"}))

	// Replaying a sequence number collides.
	err := svc.AppendEvent(ctx, runID, 1, "multiAgentResultEvent", "", nil)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	require.NoError(t, svc.WriteNodeMetrics(ctx, runID, []NodeMetric{
		{NodeID: "researcher", Status: "completed", TotalTokens: 40, ExecutionCount: 1, StreamEventCount: 2},
	}))

	run, err := svc.GetRunDetail(ctx, runID)
	require.NoError(t, err)
	require.Len(t, run.Edges.Events, 2)
	assert.Equal(t, "multiAgentNodeStartEvent", run.Edges.Events[0].EventType)
	require.Len(t, run.Edges.NodeMetrics, 1)
	assert.Equal(t, 40, run.Edges.NodeMetrics[0].TotalTokens)
}

func TestHistoryService_ListRuns(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewHistoryService(client.Client)
	ctx := context.Background()

	normal := startTestRun(t, svc, "single")
	require.NoError(t, svc.CompleteRun(ctx, normal, RunOutcome{RiskScore: 0.1}))

	risky := startTestRun(t, svc, "swarm")
	require.NoError(t, svc.FailRun(ctx, risky, "TOKEN_BUDGET_EXCEEDED", "budget", RunOutcome{Anomaly: true, RiskScore: 0.9}))

	t.Run("anomalies only", func(t *testing.T) {
		resp, err := svc.ListRuns(ctx, RunFilters{AnomaliesOnly: true})
		require.NoError(t, err)
		require.Len(t, resp.Runs, 1)
		assert.Equal(t, risky, resp.Runs[0].ID)
	})

	t.Run("sorted by risk", func(t *testing.T) {
		resp, err := svc.ListRuns(ctx, RunFilters{Sort: "risk"})
		require.NoError(t, err)
		require.Len(t, resp.Runs, 2)
		assert.Equal(t, risky, resp.Runs[0].ID)
	})

	t.Run("pagination", func(t *testing.T) {
		resp, err := svc.ListRuns(ctx, RunFilters{Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalCount)
		assert.Len(t, resp.Runs, 1)
	})
}

func TestHistoryService_GetStats(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewHistoryService(client.Client)
	ctx := context.Background()

	a := startTestRun(t, svc, "single")
	require.NoError(t, svc.CompleteRun(ctx, a, RunOutcome{TotalTokens: 100, ToolUseCount: 2, ExecutionTimeMs: 1000}))
	b := startTestRun(t, svc, "swarm")
	require.NoError(t, svc.FailRun(ctx, b, "RUN_TIMEOUT_EXCEEDED", "slow", RunOutcome{TotalTokens: 50, ExecutionTimeMs: 3000, Anomaly: true}))

	stats, err := svc.GetStats(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalRuns)
	assert.Equal(t, 1, stats.AnomalyCount)
	assert.Equal(t, 150, stats.TotalTokens)
	assert.Equal(t, 2, stats.TotalToolUses)
	assert.Equal(t, 1, stats.ByStatus["completed"])
	assert.Equal(t, 1, stats.ByStatus["failed"])
	assert.Equal(t, 1, stats.ByMode["swarm"])
	assert.InDelta(t, 2000, stats.AvgExecutionMs, 0.1)
}
