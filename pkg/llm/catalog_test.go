package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfleet/agentfleet/pkg/models"
)

func TestNormalizeModelID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"us prefix", "us.anthropic.claude-sonnet-4-20250514-v1:0", "anthropic.claude-sonnet-4-20250514-v1:0"},
		{"eu prefix", "eu.anthropic.claude-sonnet-4-20250514-v1:0", "anthropic.claude-sonnet-4-20250514-v1:0"},
		{"apac prefix", "apac.anthropic.claude-3-5-haiku-20241022-v1:0", "anthropic.claude-3-5-haiku-20241022-v1:0"},
		{"global prefix", "global.anthropic.claude-opus-4-20250514-v1:0", "anthropic.claude-opus-4-20250514-v1:0"},
		{"no prefix", "anthropic.claude-sonnet-4-20250514-v1:0", "anthropic.claude-sonnet-4-20250514-v1:0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeModelID(tt.in)
			assert.Equal(t, tt.want, got)
			// Idempotent.
			assert.Equal(t, got, NormalizeModelID(got))
		})
	}
}

func TestResolve(t *testing.T) {
	entry, err := Resolve("", "")
	require.NoError(t, err)
	assert.Equal(t, profiles[DefaultProfile].ModelID, entry.ModelID)

	entry, err = Resolve(ProfileFast, "")
	require.NoError(t, err)
	assert.Equal(t, "anthropic.claude-3-5-haiku-20241022-v1:0", entry.ModelID)

	// Explicit id wins over profile and tolerates a region prefix.
	entry, err = Resolve(ProfileFast, "us.anthropic.claude-sonnet-4-20250514-v1:0")
	require.NoError(t, err)
	assert.Equal(t, "anthropic.claude-sonnet-4-20250514-v1:0", entry.ModelID)

	_, err = Resolve("", "mystery-model")
	require.Error(t, err)
	_, err = Resolve("turbo", "")
	require.Error(t, err)
}

func TestEntryForModelID_SharedBucketAcrossRegions(t *testing.T) {
	us, ok := EntryForModelID("us.anthropic.claude-sonnet-4-20250514-v1:0")
	require.True(t, ok)
	eu, ok := EntryForModelID("eu.anthropic.claude-sonnet-4-20250514-v1:0")
	require.True(t, ok)
	assert.Equal(t, us.ModelID, eu.ModelID)
}

func TestEstimateCostUSD(t *testing.T) {
	entry := CatalogEntry{InputPricePerMTok: 3.0, OutputPricePerMTok: 15.0}
	cost := EstimateCostUSD(entry, models.TokenUsage{InputTokens: 1_000_000, OutputTokens: 200_000})
	assert.InDelta(t, 3.0+0.2*15.0, cost, 1e-9)

	_, ok := EstimateCostForModel("mystery-model", models.TokenUsage{TotalTokens: 10})
	assert.False(t, ok)
}
