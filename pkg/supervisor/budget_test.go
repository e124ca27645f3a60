package supervisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfleet/agentfleet/pkg/models"
)

func TestCounterDelta(t *testing.T) {
	tests := []struct {
		name                string
		prev, current       int
		wantDelta, wantPrev int
	}{
		{"first reading", 0, 10, 10, 10},
		{"monotonic increase", 10, 25, 15, 25},
		{"repeat reading", 25, 25, 0, 25},
		{"reset folds baseline", 25, 5, 5, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delta, next := counterDelta(tt.prev, tt.current)
			assert.Equal(t, tt.wantDelta, delta)
			assert.Equal(t, tt.wantPrev, next)
		})
	}
}

func TestBudgetTracker_CounterResetSequence(t *testing.T) {
	b := NewBudgetTracker(0)

	// Cumulative readings with a counter reset between the second and
	// third. Totals are derived as input+output when absent.
	readings := []models.TokenUsage{
		{InputTokens: 10, OutputTokens: 5},
		{InputTokens: 20, OutputTokens: 10},
		{InputTokens: 5, OutputTokens: 2},
		{InputTokens: 10, OutputTokens: 5},
	}
	for _, usage := range readings {
		require.NoError(t, b.ObserveNode("solo", "claude-sonnet", usage))
	}

	acc := b.Accumulated()
	assert.Equal(t, 35, acc.InputTokens)
	assert.Equal(t, 17, acc.OutputTokens)
	assert.Equal(t, 52, acc.TotalTokens)
	assert.Equal(t, 52, b.Observed())
	assert.Equal(t, acc, b.NodeUsage("solo"))
}

func TestBudgetTracker_LimitBreach(t *testing.T) {
	b := NewBudgetTracker(100)

	require.NoError(t, b.ObserveNode("solo", "m", models.TokenUsage{TotalTokens: 60}))
	err := b.ObserveNode("solo", "m", models.TokenUsage{TotalTokens: 120})
	require.Error(t, err)

	re, ok := AsRunError(err)
	require.True(t, ok)
	assert.Equal(t, CodeTokenBudgetExceeded, re.Code)
	assert.Contains(t, re.Message, "120")
	assert.Contains(t, re.Message, "100")
}

func TestBudgetTracker_RunTotalMaxSemantics(t *testing.T) {
	b := NewBudgetTracker(0)

	require.NoError(t, b.ObserveRunTotal(models.TokenUsage{TotalTokens: 80}))
	require.NoError(t, b.ObserveRunTotal(models.TokenUsage{TotalTokens: 50}))
	assert.Equal(t, 80, b.Observed())

	require.NoError(t, b.ObserveRunTotal(models.TokenUsage{TotalTokens: 90}))
	assert.Equal(t, 90, b.Observed())
}

func TestBudgetTracker_RunTotalDoesNotDoubleCountNodes(t *testing.T) {
	b := NewBudgetTracker(100)

	require.NoError(t, b.ObserveNode("a", "m", models.TokenUsage{TotalTokens: 70}))
	// The terminal aggregated result restates what the nodes reported.
	require.NoError(t, b.ObserveRunTotal(models.TokenUsage{TotalTokens: 70}))
	assert.Equal(t, 70, b.Observed())
}

func TestBudgetTracker_PerModelNormalizesRegionPrefix(t *testing.T) {
	b := NewBudgetTracker(0)

	require.NoError(t, b.ObserveNode("a", "us.anthropic.claude-sonnet-4-20250514-v1:0", models.TokenUsage{TotalTokens: 10}))
	require.NoError(t, b.ObserveNode("b", "anthropic.claude-sonnet-4-20250514-v1:0", models.TokenUsage{TotalTokens: 5}))
	require.NoError(t, b.ObserveNode("c", "anthropic.claude-haiku-3-5-20241022-v1:0", models.TokenUsage{TotalTokens: 3}))

	perModel := b.PerModel()
	require.Len(t, perModel, 2)
	// First-seen display form wins for the shared bucket.
	assert.Equal(t, "us.anthropic.claude-sonnet-4-20250514-v1:0", perModel[0].ModelID)
	assert.Equal(t, 15, perModel[0].Usage.TotalTokens)
	assert.Equal(t, 3, perModel[1].Usage.TotalTokens)
}
