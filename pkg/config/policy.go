package config

// ToolPolicy is the resolved tool-use policy for one run.
type ToolPolicy struct {
	MaxTotalToolUses    int
	DefaultPerToolLimit int
	PerToolLimits       map[string]int
	BlockedTools        map[string]struct{}
}

// PolicyOverride carries per-run adjustments from the run request.
// Zero values mean "no override".
type PolicyOverride struct {
	MaxTotalToolUses    int
	DefaultPerToolLimit int
	PerToolLimits       map[string]int
	BlockedTools        []string
}

// HandoffToolName is the coordination tool injected into swarm agents.
// It has no meaning in single mode, so single-mode runs block it.
const HandoffToolName = "handoff_to_agent"

var modeBlockedTools = map[string][]string{
	"single": {HandoffToolName},
}

// ResolveToolPolicy combines the configured defaults, the per-mode block
// list, and any per-run override into the policy the supervisor enforces.
func (c Config) ResolveToolPolicy(mode string, override *PolicyOverride) ToolPolicy {
	policy := ToolPolicy{
		MaxTotalToolUses:    c.MaxToolUsesPerRun,
		DefaultPerToolLimit: c.MaxToolUsesPerTool,
		PerToolLimits:       map[string]int{},
		BlockedTools:        map[string]struct{}{},
	}
	for _, name := range modeBlockedTools[mode] {
		policy.BlockedTools[name] = struct{}{}
	}
	if override == nil {
		return policy
	}
	if override.MaxTotalToolUses > 0 && override.MaxTotalToolUses < policy.MaxTotalToolUses {
		policy.MaxTotalToolUses = override.MaxTotalToolUses
	}
	if override.DefaultPerToolLimit > 0 && override.DefaultPerToolLimit < policy.DefaultPerToolLimit {
		policy.DefaultPerToolLimit = override.DefaultPerToolLimit
	}
	for name, limit := range override.PerToolLimits {
		if limit > 0 {
			policy.PerToolLimits[name] = limit
		}
	}
	for _, name := range override.BlockedTools {
		policy.BlockedTools[name] = struct{}{}
	}
	return policy
}

// LimitFor returns the per-tool cap for a tool name.
func (p ToolPolicy) LimitFor(name string) int {
	if limit, ok := p.PerToolLimits[name]; ok {
		return limit
	}
	return p.DefaultPerToolLimit
}

// Blocked reports whether the tool may not be offered to agents this run.
func (p ToolPolicy) Blocked(name string) bool {
	_, ok := p.BlockedTools[name]
	return ok
}
