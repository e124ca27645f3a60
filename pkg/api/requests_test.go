package api

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSingleRequest() RunRequest {
	return RunRequest{
		Mode:   "single",
		Prompt: "summarize the incident",
		Agents: []AgentRequest{{Name: "writer", SystemPrompt: "You write summaries."}},
	}
}

func TestRunRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RunRequest)
		wantErr string
	}{
		{"valid single", func(r *RunRequest) {}, ""},
		{"invalid mode", func(r *RunRequest) { r.Mode = "parallel" }, "mode must be one of"},
		{"missing prompt", func(r *RunRequest) { r.Prompt = "" }, "prompt is required"},
		{"no agents", func(r *RunRequest) { r.Agents = nil }, "agents must contain"},
		{
			"too many agents",
			func(r *RunRequest) {
				r.Agents = []AgentRequest{
					{Name: "a1"}, {Name: "a2"}, {Name: "a3"}, {Name: "a4"}, {Name: "a5"}, {Name: "a6"},
				}
			},
			"agents must contain",
		},
		{"nameless agent", func(r *RunRequest) { r.Agents = []AgentRequest{{}} }, "name is required"},
		{
			"duplicate agent names",
			func(r *RunRequest) { r.Agents = []AgentRequest{{Name: "x"}, {Name: "x"}} },
			"duplicate agent name",
		},
		{
			"system prompt too long",
			func(r *RunRequest) { r.Agents[0].SystemPrompt = strings.Repeat("a", 501) },
			"systemPrompt exceeds 500",
		},
		{
			"unknown tool",
			func(r *RunRequest) { r.Agents[0].Tools = []string{"launch_rockets"} },
			"unknown tool",
		},
		{
			"edges outside graph mode",
			func(r *RunRequest) {
				r.Mode = "swarm"
				r.Agents = append(r.Agents, AgentRequest{Name: "critic"})
				r.Edges = []EdgeRequest{{From: "writer", To: "critic"}}
			},
			"only valid in graph mode",
		},
		{
			"too many edges",
			func(r *RunRequest) {
				r.Mode = "graph"
				r.Agents = append(r.Agents, AgentRequest{Name: "critic"})
				edges := make([]EdgeRequest, 11)
				for i := range edges {
					edges[i] = EdgeRequest{From: "writer", To: "critic"}
				}
				r.Edges = edges
			},
			"at most 10",
		},
		{
			"edge references unknown agent",
			func(r *RunRequest) {
				r.Mode = "graph"
				r.Edges = []EdgeRequest{{From: "writer", To: "ghost"}}
			},
			"unknown agent",
		},
		{
			"edge with unknown condition",
			func(r *RunRequest) {
				r.Mode = "graph"
				r.Agents = append(r.Agents, AgentRequest{Name: "critic"})
				r.Edges = []EdgeRequest{{From: "writer", To: "critic", Condition: "phaseOfMoon"}}
			},
			"unknown condition",
		},
		{
			"session id too long",
			func(r *RunRequest) { r.SessionID = strings.Repeat("s", 129) },
			"sessionId exceeds 128",
		},
		{
			"unknown schema",
			func(r *RunRequest) { r.StructuredOutputSchema = "totally_made_up_v9" },
			"unknown structuredOutputSchema",
		},
		{
			"structured output outside single mode",
			func(r *RunRequest) {
				r.Mode = "swarm"
				r.Agents = append(r.Agents, AgentRequest{Name: "critic"})
				r.StructuredOutputSchema = "article_summary_v1"
			},
			"only valid in single mode",
		},
		{
			"singleAgent outside single mode",
			func(r *RunRequest) {
				r.Mode = "swarm"
				r.Agents = append(r.Agents, AgentRequest{Name: "critic"})
				r.SingleAgent = "writer"
			},
			"only valid in single mode",
		},
		{
			"singleAgent unknown",
			func(r *RunRequest) { r.SingleAgent = "ghost" },
			"unknown agent",
		},
		{
			"entry point in single mode",
			func(r *RunRequest) { r.EntryPoint = "writer" },
			"not valid in single mode",
		},
		{
			"entry point unknown",
			func(r *RunRequest) {
				r.Mode = "graph"
				r.EntryPoints = []string{"ghost"}
			},
			"unknown entry point",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSingleRequest()
			tt.mutate(&req)
			err := req.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestRunRequestValidate_ClampsMaxHandoffs(t *testing.T) {
	req := validSingleRequest()
	req.Mode = "swarm"
	req.MaxHandoffs = 50
	assert.NoError(t, req.validate())
	assert.Equal(t, maxRequestHandoffs, req.MaxHandoffs)

	req.MaxHandoffs = -3
	assert.NoError(t, req.validate())
	assert.Equal(t, 0, req.MaxHandoffs)
}

func TestBuiltinToolInstancesIndependent(t *testing.T) {
	first, ok := builtinTool("calculator")
	assert.True(t, ok)
	second, ok := builtinTool("calculator")
	assert.True(t, ok)
	assert.NotSame(t, first, second)

	_, ok = builtinTool("nonexistent")
	assert.False(t, ok)
}
