package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, 300*time.Second, cfg.RunWallClock)
	assert.Equal(t, 60*time.Second, cfg.StreamIdle)
	assert.Equal(t, 100_000, cfg.MaxRunTotalTokens)
	assert.Equal(t, 24, cfg.MaxToolUsesPerRun)
	assert.Equal(t, 8, cfg.MaxToolUsesPerTool)
	assert.Equal(t, 120, cfg.MaxPersistedStreamEventsPerNode)
	assert.Equal(t, "us-west-2", cfg.AWSRegion)
}

func TestLoadClampsBelowMinimum(t *testing.T) {
	t.Setenv("MAX_RUN_WALL_CLOCK_MS", "50")
	t.Setenv("MAX_STREAM_IDLE_MS", "1")
	t.Setenv("MAX_RUN_TOTAL_TOKENS", "7")

	cfg := Load()

	assert.Equal(t, 10*time.Second, cfg.RunWallClock)
	assert.Equal(t, 5*time.Second, cfg.StreamIdle)
	assert.Equal(t, 1_000, cfg.MaxRunTotalTokens)
}

func TestLoadIgnoresGarbage(t *testing.T) {
	t.Setenv("MAX_TOOL_USES_PER_RUN", "many")

	cfg := Load()

	assert.Equal(t, 24, cfg.MaxToolUsesPerRun)
}

func TestWallClockLimit(t *testing.T) {
	cfg := Config{RunWallClock: 300 * time.Second}

	assert.Equal(t, 300*time.Second, cfg.WallClockLimit("", ""))
	assert.Equal(t, 120*time.Second, cfg.WallClockLimit(PresetOrchestratorFactory, ""))
	assert.Equal(t, 180*time.Second, cfg.WallClockLimit(PresetOrchestratorContract, ""))
	assert.Equal(t, 180*time.Second, cfg.WallClockLimit(PresetAgentReviewJudge, ""))
	assert.Equal(t, 180*time.Second, cfg.WallClockLimit("", SchemaAgentReviewVerdictV1))

	// A tighter global limit wins over the preset ceiling.
	tight := Config{RunWallClock: 30 * time.Second}
	assert.Equal(t, 30*time.Second, tight.WallClockLimit(PresetOrchestratorFactory, ""))
}

func TestContractRequired(t *testing.T) {
	assert.True(t, ContractRequired(PresetAgentReviewJudge, ""))
	assert.True(t, ContractRequired("", SchemaAgentReviewVerdictV1))
	assert.False(t, ContractRequired(PresetOrchestratorFactory, "article_summary_v1"))
}

func TestResolveToolPolicy(t *testing.T) {
	cfg := Config{MaxToolUsesPerRun: 24, MaxToolUsesPerTool: 8}

	single := cfg.ResolveToolPolicy("single", nil)
	assert.True(t, single.Blocked(HandoffToolName))
	assert.Equal(t, 24, single.MaxTotalToolUses)
	assert.Equal(t, 8, single.LimitFor("search"))

	swarm := cfg.ResolveToolPolicy("swarm", &PolicyOverride{
		MaxTotalToolUses: 10,
		PerToolLimits:    map[string]int{"search": 2},
		BlockedTools:     []string{"shell"},
	})
	assert.False(t, swarm.Blocked(HandoffToolName))
	assert.True(t, swarm.Blocked("shell"))
	assert.Equal(t, 10, swarm.MaxTotalToolUses)
	assert.Equal(t, 2, swarm.LimitFor("search"))
	assert.Equal(t, 8, swarm.LimitFor("fetch"))
}

func TestOverrideCannotRaiseLimits(t *testing.T) {
	cfg := Config{MaxToolUsesPerRun: 24, MaxToolUsesPerTool: 8}

	policy := cfg.ResolveToolPolicy("graph", &PolicyOverride{MaxTotalToolUses: 1000, DefaultPerToolLimit: 99})

	assert.Equal(t, 24, policy.MaxTotalToolUses)
	assert.Equal(t, 8, policy.DefaultPerToolLimit)
}
