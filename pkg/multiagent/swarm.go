package multiagent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/agentfleet/agentfleet/pkg/agent"
	"github.com/agentfleet/agentfleet/pkg/events"
	"github.com/agentfleet/agentfleet/pkg/models"
)

// HandoffToolName is the coordination tool injected into every swarm agent.
const HandoffToolName = "handoff_to_agent"

// Swarm continuation defaults.
const (
	defaultMaxHandoffs   = 20
	defaultMaxIterations = 20
	defaultSwarmTimeout  = 900 * time.Second
)

// SwarmConfig tunes the swarm's continuation limits. Zero values take the
// defaults above; the repetitive-handoff detector is disabled unless both
// window and minimum are positive.
type SwarmConfig struct {
	MaxHandoffs      int
	MaxIterations    int
	ExecutionTimeout time.Duration

	// RepetitiveHandoffWindow / RepetitiveHandoffMinUnique stop ping-pong
	// loops: over the last window entries of node history, fewer than the
	// minimum distinct agents fails the run.
	RepetitiveHandoffWindow    int
	RepetitiveHandoffMinUnique int

	Hook BeforeNodeCall
}

func (c *SwarmConfig) applyDefaults() {
	if c.MaxHandoffs <= 0 {
		c.MaxHandoffs = defaultMaxHandoffs
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = defaultMaxIterations
	}
	if c.ExecutionTimeout <= 0 {
		c.ExecutionTimeout = defaultSwarmTimeout
	}
}

// Swarm is the linear hand-off orchestrator: one node executes at a time,
// and control transfers only through the injected coordination tool, applied
// at the end of the active node's turn.
type Swarm struct {
	id    string
	cfg   SwarmConfig
	nodes map[string]*Node
	order []string

	currentNodeID  string
	pendingHandoff *HandoffRequest
	handoffMessage string
	sharedContext  map[string]map[string]any
	nodeHistory    []string
	iterations     int
	status         Status
	task           Task
	elapsedMs      int64

	interrupts *InterruptState
}

// NewSwarm builds a swarm over the given agents, injecting the coordination
// tool into each agent's registry. Construction fails if any agent already
// registers a tool named handoff_to_agent.
func NewSwarm(id string, agents []*agent.Agent, cfg SwarmConfig) (*Swarm, error) {
	if len(agents) == 0 {
		return nil, fmt.Errorf("swarm %s: at least one agent required", id)
	}
	cfg.applyDefaults()

	s := &Swarm{
		id:            id,
		cfg:           cfg,
		nodes:         make(map[string]*Node, len(agents)),
		sharedContext: make(map[string]map[string]any),
		status:        models.NodeStatusPending,
		interrupts:    NewInterruptState(),
	}

	names := make(map[string]struct{}, len(agents))
	for _, a := range agents {
		if _, dup := names[a.Name]; dup {
			return nil, fmt.Errorf("swarm %s: duplicate agent name %q", id, a.Name)
		}
		names[a.Name] = struct{}{}
	}
	for _, a := range agents {
		if err := a.Tools().Register(handoffTool(names)); err != nil {
			return nil, fmt.Errorf("swarm %s: agent %s: %w", id, a.Name, err)
		}
		s.nodes[a.Name] = NewAgentNode(a.Name, a)
		s.order = append(s.order, a.Name)
	}
	s.currentNodeID = s.order[0]
	return s, nil
}

// handoffToolSchema is the coordination tool's input schema.
const handoffToolSchema = `{
  "type": "object",
  "properties": {
    "agent_name": {"type": "string", "description": "Name of the agent to hand the task to"},
    "message": {"type": "string", "description": "Context for the receiving agent"},
    "context": {"type": "object", "description": "Key-value knowledge to share with later agents"}
  },
  "required": ["agent_name", "message"]
}`

// handoffTool returns the coordination tool. It validates the target against
// the fixed roster and returns the request as its value; the swarm applies
// the transfer between turns.
func handoffTool(roster map[string]struct{}) *agent.Tool {
	return &agent.Tool{
		Definition: agent.ToolDefinition{
			Name:             HandoffToolName,
			Description:      "Transfer control of the task to another agent. The handoff takes effect after your current turn ends.",
			ParametersSchema: handoffToolSchema,
		},
		Execute: func(_ context.Context, input map[string]any) (any, error) {
			target, _ := input["agent_name"].(string)
			if _, ok := roster[target]; !ok {
				return nil, fmt.Errorf("unknown agent %q", target)
			}
			message, _ := input["message"].(string)
			req := &HandoffRequest{AgentName: target, Message: message}
			if extra, ok := input["context"].(map[string]any); ok {
				req.Context = extra
			}
			return req, nil
		},
	}
}

// ID returns the swarm's identifier.
func (s *Swarm) ID() string { return s.id }

// Interrupts returns the swarm's interrupt state.
func (s *Swarm) Interrupts() *InterruptState { return s.interrupts }

// Status returns the swarm's current status.
func (s *Swarm) Status() Status { return s.status }

// NodeHistory returns the executed node ids in handoff order.
func (s *Swarm) NodeHistory() []string {
	out := make([]string, len(s.nodeHistory))
	copy(out, s.nodeHistory)
	return out
}

// SharedContext returns the two-level shared context map.
func (s *Swarm) SharedContext() map[string]map[string]any { return s.sharedContext }

// Stream drives the swarm to a terminal. While the interrupt state is
// activated, task is treated as a resume payload.
func (s *Swarm) Stream(ctx context.Context, task Task) <-chan StreamItem {
	out := make(chan StreamItem, 16)
	go func() {
		defer close(out)
		s.run(ctx, task, out)
	}()
	return out
}

func (s *Swarm) run(ctx context.Context, task Task, out chan<- StreamItem) {
	started := time.Now()
	resuming := s.interrupts.Activated() && task.IsResume()
	if resuming {
		s.interrupts.SetResume(task.Responses)
	} else {
		s.task = task
	}
	s.status = models.NodeStatusExecuting

	for {
		if err := s.checkLimits(started); err != nil {
			s.status = models.NodeStatusFailed
			s.finishTime(started)
			s.send(ctx, out, StreamItem{Err: err})
			return
		}

		node := s.nodes[s.currentNodeID]
		nodeResuming := false
		if s.interrupts.Activated() {
			if nodeCtx, ok := s.interrupts.NodeContext(node.ID); ok && nodeCtx.Activated {
				nodeResuming = !nodeCtx.RaisedByHook
				node.RestoreForResume(nodeCtx)
			}
		}

		if done := s.invokeHook(ctx, node, out, started); done {
			return
		}

		var input agent.Input
		if nodeResuming {
			input.Responses = s.interrupts.ResponsesFor(node.ID)
		} else {
			input.Blocks = s.buildNodeInput(node.ID)
		}

		s.iterations++
		s.pendingHandoff = nil
		if !s.send(ctx, out, StreamItem{Event: &events.NodeStartEvent{NodeID: node.ID, NodeType: node.NodeType()}}) {
			return
		}
		if !s.send(ctx, out, StreamItem{Event: &events.NodeInputEvent{NodeID: node.ID, Input: inputSummary(input)}}) {
			return
		}

		result := node.execute(ctx, input, func(evt any) bool {
			s.observeHandoff(node.ID, evt)
			return s.send(ctx, out, StreamItem{Event: &events.NodeStreamEvent{NodeID: node.ID, Event: evt}})
		})

		switch result.Status {
		case models.NodeStatusInterrupted:
			s.send(ctx, out, StreamItem{Event: &events.NodeInterruptEvent{NodeID: node.ID, Interrupts: result.Interrupts}})
			s.interrupts.Activate(result.Interrupts)
			s.interrupts.SetNodeContext(node.ID, node.InterruptContext(false))
			s.status = models.NodeStatusInterrupted
			s.finishTime(started)
			s.emitResult(ctx, out)
			return

		case models.NodeStatusFailed:
			s.send(ctx, out, StreamItem{Event: &events.NodeStopEvent{NodeID: node.ID, NodeResult: result}})
			s.status = models.NodeStatusFailed
			s.finishTime(started)
			s.send(ctx, out, StreamItem{Err: fmt.Errorf("node %s failed: %s", node.ID, result.Error)})
			return
		}

		if !s.send(ctx, out, StreamItem{Event: &events.NodeStopEvent{NodeID: node.ID, NodeResult: result}}) {
			return
		}
		s.nodeHistory = append(s.nodeHistory, node.ID)
		if resuming {
			// Resume cycle completed without re-interrupting.
			s.interrupts.Deactivate()
			resuming = false
		}

		if s.pendingHandoff == nil {
			s.status = models.NodeStatusCompleted
			s.finishTime(started)
			s.emitResult(ctx, out)
			return
		}

		handoff := s.pendingHandoff
		if !s.send(ctx, out, StreamItem{Event: &events.HandoffEvent{
			FromNodeIDs: []string{node.ID},
			ToNodeIDs:   []string{handoff.AgentName},
			Message:     handoff.Message,
		}}) {
			return
		}
		slog.Debug("Swarm handoff",
			"swarm", s.id, "from", node.ID, "to", handoff.AgentName)
		s.currentNodeID = handoff.AgentName
		s.handoffMessage = handoff.Message
	}
}

// observeHandoff watches forwarded agent events for a coordination-tool
// result and records the transfer intent plus any shared-context additions.
func (s *Swarm) observeHandoff(nodeID string, evt any) {
	toolResult, ok := evt.(*agent.ToolResultEvent)
	if !ok || toolResult.ToolName != HandoffToolName || toolResult.Err != "" {
		return
	}
	req, ok := toolResult.Value.(*HandoffRequest)
	if !ok {
		return
	}
	s.pendingHandoff = req
	for key, value := range req.Context {
		if key == "" {
			continue
		}
		if s.sharedContext[nodeID] == nil {
			s.sharedContext[nodeID] = make(map[string]any)
		}
		s.sharedContext[nodeID][key] = value
	}
}

// checkLimits enforces continuation limits before each turn.
func (s *Swarm) checkLimits(started time.Time) error {
	if len(s.nodeHistory) >= s.cfg.MaxHandoffs {
		return fmt.Errorf("swarm %s: max handoffs (%d) exceeded", s.id, s.cfg.MaxHandoffs)
	}
	if s.iterations >= s.cfg.MaxIterations {
		return fmt.Errorf("swarm %s: max iterations (%d) exceeded", s.id, s.cfg.MaxIterations)
	}
	elapsed := time.Duration(s.elapsedMs)*time.Millisecond + time.Since(started)
	if elapsed > s.cfg.ExecutionTimeout {
		return fmt.Errorf("swarm %s: execution timeout (%s) exceeded", s.id, s.cfg.ExecutionTimeout)
	}
	window, minUnique := s.cfg.RepetitiveHandoffWindow, s.cfg.RepetitiveHandoffMinUnique
	if window > 0 && minUnique > 0 && len(s.nodeHistory) >= window {
		distinct := make(map[string]struct{}, window)
		for _, id := range s.nodeHistory[len(s.nodeHistory)-window:] {
			distinct[id] = struct{}{}
		}
		if len(distinct) < minUnique {
			return fmt.Errorf("swarm %s: repetitive handoff detected (%d distinct agents in last %d turns)",
				s.id, len(distinct), window)
		}
	}
	return nil
}

// invokeHook runs the beforeNodeCall hook. Returns true when the run ended
// (cancel or interrupt) and the caller must stop.
func (s *Swarm) invokeHook(ctx context.Context, node *Node, out chan<- StreamItem, started time.Time) bool {
	if s.cfg.Hook == nil {
		return false
	}
	decision, err := s.cfg.Hook(ctx, node.ID)
	if err != nil {
		s.status = models.NodeStatusFailed
		s.finishTime(started)
		s.send(ctx, out, StreamItem{Err: fmt.Errorf("node %s hook: %w", node.ID, err)})
		return true
	}
	if decision == nil {
		return false
	}
	if decision.Cancel {
		s.send(ctx, out, StreamItem{Event: &events.NodeCancelEvent{NodeID: node.ID, Message: decision.CancelMessage}})
		s.status = models.NodeStatusFailed
		s.finishTime(started)
		s.send(ctx, out, StreamItem{Err: fmt.Errorf("node %s cancelled: %s", node.ID, decision.CancelMessage)})
		return true
	}
	if len(decision.Interrupts) > 0 {
		raised := withNodeID(decision.Interrupts, node.ID)
		s.send(ctx, out, StreamItem{Event: &events.NodeInterruptEvent{NodeID: node.ID, Interrupts: raised}})
		s.interrupts.Activate(raised)
		s.interrupts.SetNodeContext(node.ID, node.InterruptContext(true))
		s.status = models.NodeStatusInterrupted
		s.finishTime(started)
		s.emitResult(ctx, out)
		return true
	}
	return false
}

// buildNodeInput synthesizes the next agent's prompt from the handoff
// message, the original task, the execution history, the shared context, and
// the roster. Multi-modal tasks get their original blocks appended.
func (s *Swarm) buildNodeInput(nodeID string) []models.ContentBlock {
	var b strings.Builder
	if s.handoffMessage != "" {
		fmt.Fprintf(&b, "Handoff message: %s\n\n", s.handoffMessage)
		s.handoffMessage = ""
	}
	fmt.Fprintf(&b, "User request: %s\n\n", s.task.PlainText())
	if len(s.nodeHistory) > 0 {
		fmt.Fprintf(&b, "Previous agents who worked on this: %s\n\n", strings.Join(s.nodeHistory, " -> "))
	}
	if len(s.sharedContext) > 0 {
		if dump, err := json.Marshal(s.sharedContext); err == nil {
			fmt.Fprintf(&b, "Shared knowledge from previous agents:\n%s\n\n", dump)
		}
	}
	var others []string
	for _, id := range s.order {
		if id != nodeID {
			others = append(others, id)
		}
	}
	if len(others) > 0 {
		fmt.Fprintf(&b, "Other agents available for handoff: %s\n\n", strings.Join(others, ", "))
	}
	b.WriteString("You have access to the handoff_to_agent tool to transfer the task to another agent. " +
		"If you respond without handing off, the swarm completes with your response.")

	blocks := []models.ContentBlock{models.TextBlock(b.String())}
	for _, block := range s.task.Blocks {
		if block.Text == "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// emitResult sends the terminal result event followed by the terminal item.
func (s *Swarm) emitResult(ctx context.Context, out chan<- StreamItem) {
	result := s.buildResult()
	s.send(ctx, out, StreamItem{Event: &events.ResultEvent{Result: result}})
	s.send(ctx, out, StreamItem{Result: result})
}

func (s *Swarm) buildResult() *models.OrchestrationResult {
	result := &models.OrchestrationResult{
		Status:          runStatusFor(s.status),
		Results:         make(map[string]*models.NodeResult, len(s.nodes)),
		ExecutionCount:  s.iterations,
		ExecutionTimeMs: s.elapsedMs,
		ExecutionOrder:  s.NodeHistory(),
	}
	for id, node := range s.nodes {
		if nr := node.Result(); nr != nil {
			result.Results[id] = nr
			result.AccumulatedUsage.Add(nr.AccumulatedUsage)
		}
	}
	if s.status == models.NodeStatusInterrupted {
		result.Interrupts = s.interrupts.OpenInterrupts()
	}
	return result
}

// finishTime folds the current cycle's wall time into the accumulated
// execution time carried across resume cycles.
func (s *Swarm) finishTime(started time.Time) {
	s.elapsedMs += time.Since(started).Milliseconds()
}

func (s *Swarm) send(ctx context.Context, out chan<- StreamItem, item StreamItem) bool {
	select {
	case out <- item:
		return true
	case <-ctx.Done():
		return false
	}
}

func runStatusFor(status Status) models.RunStatus {
	switch status {
	case models.NodeStatusCompleted:
		return models.RunStatusCompleted
	case models.NodeStatusInterrupted:
		return models.RunStatusInterrupted
	default:
		return models.RunStatusFailed
	}
}

// inputSummary renders an agent input for the node-input event payload.
func inputSummary(input agent.Input) any {
	if len(input.Responses) > 0 {
		return map[string]any{"responses": input.Responses}
	}
	var texts []string
	for _, block := range input.Blocks {
		if block.Text != "" {
			texts = append(texts, block.Text)
		}
	}
	return map[string]any{"text": strings.Join(texts, "\n")}
}
