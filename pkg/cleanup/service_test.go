package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfleet/agentfleet/ent/runsummary"
	"github.com/agentfleet/agentfleet/pkg/config"
	"github.com/agentfleet/agentfleet/pkg/database"
	"github.com/agentfleet/agentfleet/pkg/services"
	testdb "github.com/agentfleet/agentfleet/test/database"
)

func testRetention() config.RetentionConfig {
	return config.RetentionConfig{
		RunRetentionDays: 90,
		PurgeGraceDays:   30,
		CleanupInterval:  time.Hour,
	}
}

func createRun(t *testing.T, svc *services.HistoryService) string {
	t.Helper()
	runID := uuid.New().String()
	_, err := svc.StartRun(context.Background(), services.StartRunParams{
		RunID:  runID,
		Mode:   "single",
		Prompt: "old run",
	})
	require.NoError(t, err)
	return runID
}

func TestService_SoftDeletesOldTerminalRuns(t *testing.T) {
	client := testdb.NewTestClient(t)
	history := services.NewHistoryService(client.Client)
	ctx := context.Background()

	old := createRun(t, history)
	require.NoError(t, history.CompleteRun(ctx, old, services.RunOutcome{}))
	require.NoError(t, client.RunSummary.UpdateOneID(old).
		SetCompletedAt(time.Now().Add(-100*24*time.Hour)).
		Exec(ctx))

	fresh := createRun(t, history)
	require.NoError(t, history.CompleteRun(ctx, fresh, services.RunOutcome{}))

	// Still-running rows belong to recovery, not retention.
	running := createRun(t, history)

	svc := NewService(testRetention(), history)
	svc.runAll(ctx)

	assertDeleted(t, client, old, true)
	assertDeleted(t, client, fresh, false)
	assertDeleted(t, client, running, false)
}

func TestService_PurgesSoftDeletedRunsWithEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	history := services.NewHistoryService(client.Client)
	ctx := context.Background()

	runID := createRun(t, history)
	require.NoError(t, history.AppendEvent(ctx, runID, 0, "multiAgentNodeStartEvent", "solo", nil))
	require.NoError(t, history.CompleteRun(ctx, runID, services.RunOutcome{}))
	require.NoError(t, client.RunSummary.UpdateOneID(runID).
		SetDeletedAt(time.Now().Add(-40*24*time.Hour)).
		Exec(ctx))

	recent := createRun(t, history)
	require.NoError(t, history.CompleteRun(ctx, recent, services.RunOutcome{}))
	require.NoError(t, client.RunSummary.UpdateOneID(recent).
		SetDeletedAt(time.Now()).
		Exec(ctx))

	svc := NewService(testRetention(), history)
	svc.runAll(ctx)

	_, err := history.GetRunDetail(ctx, runID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	// Inside the grace window the row survives.
	_, err = history.GetRunDetail(ctx, recent)
	assert.NoError(t, err)
}

func TestService_StartStop(t *testing.T) {
	client := testdb.NewTestClient(t)
	history := services.NewHistoryService(client.Client)

	svc := NewService(testRetention(), history)
	svc.Start(context.Background())
	svc.Stop()
}

func assertDeleted(t *testing.T, client *database.Client, runID string, want bool) {
	t.Helper()
	run, err := client.RunSummary.Query().Where(runsummary.IDEQ(runID)).Only(context.Background())
	require.NoError(t, err)
	if want {
		assert.NotNil(t, run.DeletedAt)
	} else {
		assert.Nil(t, run.DeletedAt)
	}
}
