package api

import (
	"fmt"

	"github.com/agentfleet/agentfleet/pkg/config"
	"github.com/agentfleet/agentfleet/pkg/models"
	"github.com/agentfleet/agentfleet/pkg/schema"
)

// Request limits enforced on POST /api/run.
const (
	maxAgentsPerRun    = 5
	maxSystemPromptLen = 500
	maxEdgesPerRun     = 10
	maxRequestHandoffs = 5
	maxSessionIDLen    = 128
)

// AgentRequest describes one agent in the run roster.
type AgentRequest struct {
	Name         string   `json:"name"`
	SystemPrompt string   `json:"systemPrompt"`
	Tools        []string `json:"tools,omitempty"`
}

// EdgeRequest is a directed graph edge. Condition names a registered
// predicate; empty means unconditional.
type EdgeRequest struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Condition string `json:"condition,omitempty"`
}

// RunRequest is the POST /api/run body.
type RunRequest struct {
	Mode                   string                     `json:"mode"`
	Prompt                 string                     `json:"prompt"`
	Agents                 []AgentRequest             `json:"agents"`
	Edges                  []EdgeRequest              `json:"edges,omitempty"`
	MaxHandoffs            int                        `json:"maxHandoffs,omitempty"`
	SessionID              string                     `json:"sessionId,omitempty"`
	ModelID                string                     `json:"modelId,omitempty"`
	ModelProfile           string                     `json:"modelProfile,omitempty"`
	StructuredOutputSchema string                     `json:"structuredOutputSchema,omitempty"`
	PresetKey              string                     `json:"presetKey,omitempty"`
	SingleAgent            string                     `json:"singleAgent,omitempty"`
	EntryPoint             string                     `json:"entryPoint,omitempty"`
	EntryPoints            []string                   `json:"entryPoints,omitempty"`
	ToolPolicy             *config.PolicyOverride     `json:"toolPolicy,omitempty"`
	Responses              []models.InterruptResponse `json:"responses,omitempty"`
}

// validate checks the request and clamps soft limits in place.
func (r *RunRequest) validate() error {
	mode := models.RunMode(r.Mode)
	if !mode.Valid() {
		return fmt.Errorf("mode must be one of single, swarm, graph, got %q", r.Mode)
	}
	if r.Prompt == "" {
		return fmt.Errorf("prompt is required")
	}
	if len(r.Agents) < 1 || len(r.Agents) > maxAgentsPerRun {
		return fmt.Errorf("agents must contain between 1 and %d entries, got %d", maxAgentsPerRun, len(r.Agents))
	}

	names := make(map[string]struct{}, len(r.Agents))
	for i, a := range r.Agents {
		if a.Name == "" {
			return fmt.Errorf("agents[%d].name is required", i)
		}
		if _, dup := names[a.Name]; dup {
			return fmt.Errorf("duplicate agent name %q", a.Name)
		}
		names[a.Name] = struct{}{}
		if len(a.SystemPrompt) > maxSystemPromptLen {
			return fmt.Errorf("agents[%d].systemPrompt exceeds %d characters", i, maxSystemPromptLen)
		}
		for _, tool := range a.Tools {
			if _, ok := builtinTool(tool); !ok {
				return fmt.Errorf("agents[%d]: unknown tool %q", i, tool)
			}
		}
	}

	if len(r.Edges) > maxEdgesPerRun {
		return fmt.Errorf("edges must contain at most %d entries, got %d", maxEdgesPerRun, len(r.Edges))
	}
	if len(r.Edges) > 0 && mode != models.RunModeGraph {
		return fmt.Errorf("edges are only valid in graph mode")
	}
	for i, e := range r.Edges {
		if _, ok := names[e.From]; !ok {
			return fmt.Errorf("edges[%d].from references unknown agent %q", i, e.From)
		}
		if _, ok := names[e.To]; !ok {
			return fmt.Errorf("edges[%d].to references unknown agent %q", i, e.To)
		}
		if e.Condition != "" {
			if _, ok := edgeCondition(e.Condition, e.From); !ok {
				return fmt.Errorf("edges[%d]: unknown condition %q", i, e.Condition)
			}
		}
	}

	if r.MaxHandoffs > maxRequestHandoffs {
		r.MaxHandoffs = maxRequestHandoffs
	}
	if r.MaxHandoffs < 0 {
		r.MaxHandoffs = 0
	}
	if len(r.SessionID) > maxSessionIDLen {
		return fmt.Errorf("sessionId exceeds %d characters", maxSessionIDLen)
	}

	if r.StructuredOutputSchema != "" {
		if !schema.Valid(r.StructuredOutputSchema) {
			return fmt.Errorf("unknown structuredOutputSchema %q", r.StructuredOutputSchema)
		}
		if mode != models.RunModeSingle {
			return fmt.Errorf("structured output is only valid in single mode")
		}
	}

	if r.SingleAgent != "" {
		if mode != models.RunModeSingle {
			return fmt.Errorf("singleAgent is only valid in single mode")
		}
		if _, ok := names[r.SingleAgent]; !ok {
			return fmt.Errorf("singleAgent references unknown agent %q", r.SingleAgent)
		}
	}

	entryPoints := r.EntryPoints
	if r.EntryPoint != "" {
		entryPoints = append(entryPoints, r.EntryPoint)
	}
	if len(entryPoints) > 0 && mode == models.RunModeSingle {
		return fmt.Errorf("entry points are not valid in single mode")
	}
	for _, ep := range entryPoints {
		if _, ok := names[ep]; !ok {
			return fmt.Errorf("unknown entry point %q", ep)
		}
	}
	return nil
}
