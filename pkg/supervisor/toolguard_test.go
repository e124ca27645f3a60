package supervisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfleet/agentfleet/pkg/agent"
	"github.com/agentfleet/agentfleet/pkg/config"
	"github.com/agentfleet/agentfleet/pkg/events"
)

func testPolicy(total, perTool int) config.ToolPolicy {
	return config.ToolPolicy{
		MaxTotalToolUses:    total,
		DefaultPerToolLimit: perTool,
	}
}

func TestToolGuard_DeduplicatesByToolUseID(t *testing.T) {
	g := NewToolGuard(testPolicy(24, 8))

	use := events.ToolUseStart{ToolUseID: "tu-1", ToolName: "search"}
	require.NoError(t, g.Observe(use))
	// The same invocation seen again (nested replay) does not count.
	require.NoError(t, g.Observe(use))
	require.NoError(t, g.Observe(events.ToolUseStart{ToolName: "search"}))

	assert.Equal(t, 1, g.Total())
	assert.Equal(t, 1, g.Count("search"))
}

func TestToolGuard_TotalLimit(t *testing.T) {
	g := NewToolGuard(testPolicy(2, 8))

	require.NoError(t, g.Observe(events.ToolUseStart{ToolUseID: "tu-1", ToolName: "search"}))
	require.NoError(t, g.Observe(events.ToolUseStart{ToolUseID: "tu-2", ToolName: "fetch"}))

	err := g.Observe(events.ToolUseStart{ToolUseID: "tu-3", ToolName: "search"})
	require.Error(t, err)
	re, ok := AsRunError(err)
	require.True(t, ok)
	assert.Equal(t, CodeToolPolicyExceeded, re.Code)
	assert.Contains(t, re.Message, "3/2 total")
}

func TestToolGuard_PerToolLimit(t *testing.T) {
	policy := testPolicy(24, 8)
	policy.PerToolLimits = map[string]int{"search": 1}
	g := NewToolGuard(policy)

	require.NoError(t, g.Observe(events.ToolUseStart{ToolUseID: "tu-1", ToolName: "search"}))
	err := g.Observe(events.ToolUseStart{ToolUseID: "tu-2", ToolName: "search"})
	require.Error(t, err)
	re, ok := AsRunError(err)
	require.True(t, ok)
	assert.Equal(t, CodeToolPolicyExceeded, re.Code)
	assert.Contains(t, re.Message, "search: 2/1")
}

func TestStripBlockedTools(t *testing.T) {
	a := agent.New("solo", "You answer questions.", nil)
	require.NoError(t, a.Tools().Register(&agent.Tool{
		Definition: agent.ToolDefinition{Name: "handoff_to_agent", Description: "hand off"},
	}))
	require.NoError(t, a.Tools().Register(&agent.Tool{
		Definition: agent.ToolDefinition{Name: "search", Description: "search"},
	}))

	policy := testPolicy(24, 8)
	policy.BlockedTools = map[string]struct{}{"handoff_to_agent": {}}
	StripBlockedTools([]*agent.Agent{a}, policy)

	_, ok := a.Tools().Get("handoff_to_agent")
	assert.False(t, ok)
	_, ok = a.Tools().Get("search")
	assert.True(t, ok)
}
