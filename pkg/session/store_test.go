package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfleet/agentfleet/pkg/multiagent"
)

func TestFileStore_SaveLoadDelete(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	state := &multiagent.SerializedState{
		Type:               multiagent.StateTypeSwarm,
		ID:                 "swarm-1",
		Status:             "interrupted",
		NodeHistory:        []string{"alpha"},
		NextNodesToExecute: []string{"alpha"},
		CurrentTask:        &multiagent.Task{Text: "finish the report"},
	}
	require.NoError(t, store.Save(ctx, "sess-1", state))

	loaded, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, state.Type, loaded.Type)
	assert.Equal(t, state.NodeHistory, loaded.NodeHistory)
	assert.Equal(t, state.NextNodesToExecute, loaded.NextNodesToExecute)

	require.NoError(t, store.Delete(ctx, "sess-1"))
	_, err = store.Load(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again is a no-op.
	require.NoError(t, store.Delete(ctx, "sess-1"))
}

func TestFileStore_OverwriteKeepsLatest(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-1", &multiagent.SerializedState{ID: "first"}))
	require.NoError(t, store.Save(ctx, "sess-1", &multiagent.SerializedState{ID: "second"}))

	loaded, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "second", loaded.ID)
}

func TestFileStore_RejectsPathEscapes(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	for _, id := range []string{"", "../evil", "a/b", `a\b`} {
		assert.Error(t, store.Save(ctx, id, &multiagent.SerializedState{}), "id %q", id)
	}
}
