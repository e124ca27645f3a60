package supervisor

import (
	"log/slog"

	"github.com/agentfleet/agentfleet/pkg/agent"
	"github.com/agentfleet/agentfleet/pkg/config"
	"github.com/agentfleet/agentfleet/pkg/events"
)

// ToolGuard enforces the resolved tool-use policy for one run. Tool-use
// starts are deduplicated by tool-use id so a replayed or nested sighting
// of the same invocation never double-counts.
type ToolGuard struct {
	policy  config.ToolPolicy
	seen    map[string]struct{}
	total   int
	perTool map[string]int
}

// NewToolGuard creates a guard for the resolved policy.
func NewToolGuard(policy config.ToolPolicy) *ToolGuard {
	return &ToolGuard{
		policy:  policy,
		seen:    make(map[string]struct{}),
		perTool: make(map[string]int),
	}
}

// Observe accounts one tool-use start and returns a policy error when the
// run total or the per-tool counter crosses its limit.
func (g *ToolGuard) Observe(use events.ToolUseStart) error {
	if use.ToolUseID == "" {
		return nil
	}
	if _, dup := g.seen[use.ToolUseID]; dup {
		return nil
	}
	g.seen[use.ToolUseID] = struct{}{}
	g.total++
	g.perTool[use.ToolName]++

	if g.policy.MaxTotalToolUses > 0 && g.total > g.policy.MaxTotalToolUses {
		return NewRunError(CodeToolPolicyExceeded,
			"tool policy exceeded (%s: %d/%d total)", use.ToolName, g.total, g.policy.MaxTotalToolUses)
	}
	if limit := g.policy.LimitFor(use.ToolName); limit > 0 && g.perTool[use.ToolName] > limit {
		return NewRunError(CodeToolPolicyExceeded,
			"tool policy exceeded (%s: %d/%d)", use.ToolName, g.perTool[use.ToolName], limit)
	}
	return nil
}

// Total returns the number of distinct tool uses observed.
func (g *ToolGuard) Total() int { return g.total }

// Count returns the per-tool counter for a name.
func (g *ToolGuard) Count(name string) int { return g.perTool[name] }

// StripBlockedTools removes policy-blocked tools from each agent's registry
// before the run begins.
func StripBlockedTools(agents []*agent.Agent, policy config.ToolPolicy) {
	for _, a := range agents {
		for name := range policy.BlockedTools {
			if _, ok := a.Tools().Get(name); ok {
				a.Tools().Remove(name)
				slog.Info("Stripped blocked tool from agent", "agent", a.Name, "tool", name)
			}
		}
	}
}
