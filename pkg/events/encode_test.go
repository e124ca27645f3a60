package events

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfleet/agentfleet/pkg/models"
)

type cyclic struct {
	Name string  `json:"name"`
	Next *cyclic `json:"next,omitempty"`
}

func TestMarshalCycleSafe(t *testing.T) {
	t.Run("plain event round-trips", func(t *testing.T) {
		data, err := MarshalCycleSafe(&NodeStartEvent{NodeID: "alpha", NodeType: NodeTypeAgent})
		require.NoError(t, err)

		var out map[string]any
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, "alpha", out["nodeId"])
		assert.Equal(t, "agent", out["nodeType"])
	})

	t.Run("self cycle serializes as null", func(t *testing.T) {
		a := &cyclic{Name: "a"}
		a.Next = a

		data, err := MarshalCycleSafe(a)
		require.NoError(t, err)

		var out map[string]any
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, "a", out["name"])
		assert.Nil(t, out["next"])
	})

	t.Run("two-node cycle terminates", func(t *testing.T) {
		a := &cyclic{Name: "a"}
		b := &cyclic{Name: "b", Next: a}
		a.Next = b

		data, err := MarshalCycleSafe(a)
		require.NoError(t, err)

		var out map[string]any
		require.NoError(t, json.Unmarshal(data, &out))
		next := out["next"].(map[string]any)
		assert.Equal(t, "b", next["name"])
		assert.Nil(t, next["next"])
	})

	t.Run("cyclic map value", func(t *testing.T) {
		m := map[string]any{"name": "root"}
		m["self"] = m

		data, err := MarshalCycleSafe(m)
		require.NoError(t, err)

		var out map[string]any
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, "root", out["name"])
		assert.Nil(t, out["self"])
	})

	t.Run("json tags and omitempty honored", func(t *testing.T) {
		data, err := MarshalCycleSafe(&HandoffEvent{
			FromNodeIDs: []string{"alpha"},
			ToNodeIDs:   []string{"beta"},
		})
		require.NoError(t, err)

		var out map[string]any
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, []any{"alpha"}, out["fromNodeIds"])
		_, hasMessage := out["message"]
		assert.False(t, hasMessage, "empty message should be omitted")
	})

	t.Run("errors render as strings", func(t *testing.T) {
		data, err := MarshalCycleSafe(map[string]any{"error": errors.New("boom")})
		require.NoError(t, err)
		assert.JSONEq(t, `{"error":"boom"}`, string(data))
	})

	t.Run("nested result payload", func(t *testing.T) {
		result := &models.OrchestrationResult{
			Status: models.RunStatusCompleted,
			Results: map[string]*models.NodeResult{
				"alpha": {Status: models.NodeStatusCompleted, Content: []models.ContentBlock{models.TextBlock("done")}},
			},
			ExecutionOrder: []string{"alpha"},
		}
		data, err := MarshalCycleSafe(&ResultEvent{Result: result})
		require.NoError(t, err)

		var out struct {
			Result models.OrchestrationResult `json:"result"`
		}
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, models.RunStatusCompleted, out.Result.Status)
		assert.Equal(t, "done", out.Result.Results["alpha"].Content[0].Text)
	})

	t.Run("shared non-cyclic pointer appears once", func(t *testing.T) {
		leaf := &cyclic{Name: "leaf"}
		data, err := MarshalCycleSafe(map[string]any{"first": leaf, "second": leaf})
		require.NoError(t, err)

		var out map[string]any
		require.NoError(t, json.Unmarshal(data, &out))
		// One of the two references survives; the duplicate is omitted.
		count := 0
		for _, v := range out {
			if v != nil {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})
}
