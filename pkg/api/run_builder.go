package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/agentfleet/agentfleet/pkg/agent"
	"github.com/agentfleet/agentfleet/pkg/config"
	"github.com/agentfleet/agentfleet/pkg/llm"
	"github.com/agentfleet/agentfleet/pkg/models"
	"github.com/agentfleet/agentfleet/pkg/multiagent"
	"github.com/agentfleet/agentfleet/pkg/session"
	"github.com/agentfleet/agentfleet/pkg/supervisor"
)

// ModelFactory builds the model binding for a resolved catalog id. The
// production factory returns a Bedrock ConverseStream client; tests swap in
// scripted models.
type ModelFactory func(modelID string) agent.Model

// buildRunParams turns a validated request into the supervisor's run
// parameters: resolved model, constructed roster, orchestrator, and policy.
func buildRunParams(ctx context.Context, cfg config.Config, factory ModelFactory, sessions session.Store, req *RunRequest) (supervisor.RunParams, error) {
	entry, err := llm.Resolve(req.ModelProfile, req.ModelID)
	if err != nil {
		return supervisor.RunParams{}, err
	}
	model := factory(entry.ModelID)

	agents := make([]*agent.Agent, 0, len(req.Agents))
	byName := make(map[string]*agent.Agent, len(req.Agents))
	for _, spec := range req.Agents {
		a := agent.New(spec.Name, spec.SystemPrompt, model)
		for _, toolName := range spec.Tools {
			tool, _ := builtinTool(toolName)
			if err := a.Tools().Register(tool); err != nil {
				return supervisor.RunParams{}, fmt.Errorf("agent %s: %w", spec.Name, err)
			}
		}
		agents = append(agents, a)
		byName[spec.Name] = a
	}

	orch, err := buildOrchestrator(req, agents, byName)
	if err != nil {
		return supervisor.RunParams{}, err
	}

	task := multiagent.Task{Text: req.Prompt, Responses: req.Responses}
	if req.SessionID != "" && sessions != nil {
		if err := restoreSession(ctx, sessions, req, orch); err != nil {
			return supervisor.RunParams{}, err
		}
	}

	return supervisor.RunParams{
		RunID:        uuid.New().String(),
		Mode:         models.RunMode(req.Mode),
		Prompt:       req.Prompt,
		SessionID:    req.SessionID,
		PresetKey:    req.PresetKey,
		SchemaID:     req.StructuredOutputSchema,
		ModelID:      entry.ModelID,
		Orchestrator: orch,
		Task:         task,
		Agents:       agents,
		Policy:       cfg.ResolveToolPolicy(req.Mode, req.ToolPolicy),
	}, nil
}

func buildOrchestrator(req *RunRequest, agents []*agent.Agent, byName map[string]*agent.Agent) (multiagent.Orchestrator, error) {
	switch models.RunMode(req.Mode) {
	case models.RunModeSingle:
		chosen := agents[0]
		if req.SingleAgent != "" {
			chosen = byName[req.SingleAgent]
		}
		return multiagent.NewSingle(chosen, nil), nil

	case models.RunModeSwarm:
		roster := agents
		if req.EntryPoint != "" && roster[0].Name != req.EntryPoint {
			roster = reorderEntryFirst(agents, req.EntryPoint)
		}
		return multiagent.NewSwarm("swarm", roster, multiagent.SwarmConfig{
			MaxHandoffs: req.MaxHandoffs,
		})

	case models.RunModeGraph:
		builder := multiagent.NewGraphBuilder("graph", multiagent.GraphConfig{})
		for _, a := range agents {
			builder.AddAgent(a)
		}
		for _, e := range req.Edges {
			var condition multiagent.EdgeCondition
			if e.Condition != "" {
				condition, _ = edgeCondition(e.Condition, e.From)
			}
			builder.AddEdge(e.From, e.To, condition)
		}
		entryPoints := req.EntryPoints
		if req.EntryPoint != "" {
			entryPoints = append(entryPoints, req.EntryPoint)
		}
		if len(entryPoints) > 0 {
			builder.SetEntryPoints(entryPoints...)
		}
		return builder.Build()
	}
	return nil, fmt.Errorf("unsupported mode %q", req.Mode)
}

func reorderEntryFirst(agents []*agent.Agent, entry string) []*agent.Agent {
	roster := make([]*agent.Agent, 0, len(agents))
	for _, a := range agents {
		if a.Name == entry {
			roster = append([]*agent.Agent{a}, roster...)
		} else {
			roster = append(roster, a)
		}
	}
	return roster
}

// restoreSession re-installs a prior checkpoint under the request's session
// id, if one exists. A missing checkpoint starts a fresh session.
func restoreSession(ctx context.Context, sessions session.Store, req *RunRequest, orch multiagent.Orchestrator) error {
	state, err := sessions.Load(ctx, req.SessionID)
	if errors.Is(err, session.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load session %s: %w", req.SessionID, err)
	}
	if state.Type != req.Mode {
		return fmt.Errorf("session %s was recorded in %s mode, not %s", req.SessionID, state.Type, req.Mode)
	}

	switch o := orch.(type) {
	case *multiagent.Single:
		return o.RestoreState(state)
	case *multiagent.Swarm:
		return o.RestoreState(state)
	case *multiagent.Graph:
		return o.RestoreState(state)
	}
	return nil
}
