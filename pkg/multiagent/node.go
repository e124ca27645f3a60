package multiagent

import (
	"context"
	"fmt"
	"time"

	"github.com/agentfleet/agentfleet/pkg/agent"
	"github.com/agentfleet/agentfleet/pkg/events"
	"github.com/agentfleet/agentfleet/pkg/models"
)

// Node wraps exactly one executor — an agent or a nested orchestrator —
// into a uniform streaming unit. Metrics and execution time accumulate
// across invocations of the same node (graph revisits, interrupt resumes).
type Node struct {
	ID string

	agentExec  *agent.Agent
	nestedExec Orchestrator

	// initial is the agent executor's state at node construction, restored
	// when a revisit requires a clean slate.
	initial agent.Snapshot

	// resumeSnap is the agent executor's state at the moment of an
	// interrupt. execute leaves the wrapped agent as it found it, so the
	// interrupt context reads the mid-run conversation from here.
	resumeSnap *agent.Snapshot

	status         models.NodeStatus
	result         *models.NodeResult
	executionCount int
	totalTimeMs    int64
	accUsage       models.TokenUsage
}

// NewAgentNode wraps an agent executor.
func NewAgentNode(id string, a *agent.Agent) *Node {
	return &Node{
		ID:        id,
		agentExec: a,
		initial:   a.Snapshot(),
		status:    models.NodeStatusPending,
	}
}

// NewNestedNode wraps a nested orchestrator executor.
func NewNestedNode(id string, o Orchestrator) *Node {
	return &Node{
		ID:         id,
		nestedExec: o,
		status:     models.NodeStatusPending,
	}
}

// NodeType returns the start-event discriminator for this node's executor.
func (n *Node) NodeType() string {
	if n.nestedExec != nil {
		return events.NodeTypeOrchestrator
	}
	return events.NodeTypeAgent
}

// Status returns the node's current status.
func (n *Node) Status() models.NodeStatus { return n.status }

// SetStatus overrides the node status. Used when restoring persisted runs.
func (n *Node) SetStatus(status models.NodeStatus) { n.status = status }

// Result returns the node's latest terminal result, nil before the first
// invocation finishes.
func (n *Node) Result() *models.NodeResult { return n.result }

// ExecutionCount returns how many times the node has been invoked.
func (n *Node) ExecutionCount() int { return n.executionCount }

// Reset restores the executor to its construction-time state and marks the
// node pending. Applied to revisited graph nodes configured to start clean.
func (n *Node) Reset() {
	if n.agentExec != nil {
		n.agentExec.Restore(n.initial)
	}
	n.resumeSnap = nil
	n.status = models.NodeStatusPending
	n.result = nil
}

// InterruptContext captures the executor-local state needed to resume this
// node after an interrupt.
func (n *Node) InterruptContext(raisedByHook bool) *NodeInterruptContext {
	nodeCtx := &NodeInterruptContext{Activated: true, RaisedByHook: raisedByHook}
	if n.agentExec != nil {
		snap := n.agentExec.Snapshot()
		if n.resumeSnap != nil {
			snap = *n.resumeSnap
		}
		nodeCtx.Messages = snap.Messages
		nodeCtx.State = snap.State
	}
	if n.nestedExec != nil {
		nodeCtx.NestedState = n.nestedExec.Serialize()
	}
	return nodeCtx
}

// RestoreForResume re-installs an interrupted node's executor state. Hook
// interrupts carry no executor state and re-execute from the start.
func (n *Node) RestoreForResume(nodeCtx *NodeInterruptContext) {
	if nodeCtx == nil || nodeCtx.RaisedByHook {
		return
	}
	if n.agentExec != nil {
		n.agentExec.Restore(agent.Snapshot{Messages: nodeCtx.Messages, State: nodeCtx.State})
	}
	n.resumeSnap = nil
}

// execute runs one node invocation, forwarding every non-terminal executor
// event through sink. The returned NodeResult carries accumulated usage and
// time across all invocations of this node. A sink returning false stops
// forwarding; the executor is still drained to its terminal.
//
// The wrapped agent is left as it was on entry: messages and state grown
// during the invocation are rolled back, with the interrupt-time snapshot
// stashed first so InterruptContext can still serialize it.
func (n *Node) execute(ctx context.Context, input agent.Input, sink func(any) bool) *models.NodeResult {
	n.status = models.NodeStatusExecuting
	n.executionCount++
	started := time.Now()

	var result *models.NodeResult
	if n.nestedExec != nil {
		result = n.executeNested(ctx, input, sink)
	} else {
		entry := n.agentExec.Snapshot()
		result = n.executeAgent(ctx, input, sink)
		if result.Status == models.NodeStatusInterrupted {
			snap := n.agentExec.Snapshot()
			n.resumeSnap = &snap
		}
		n.agentExec.Restore(entry)
	}

	n.totalTimeMs += time.Since(started).Milliseconds()
	result.ExecutionCount = n.executionCount
	result.ExecutionTimeMs = n.totalTimeMs
	result.AccumulatedUsage = n.accUsage
	result.AccumulatedMetrics = models.NodeMetrics{
		Usage:          n.accUsage,
		LatencyMs:      n.totalTimeMs,
		ExecutionCount: n.executionCount,
	}
	n.status = result.Status
	n.result = result
	return result
}

func (n *Node) executeAgent(ctx context.Context, input agent.Input, sink func(any) bool) *models.NodeResult {
	forward := true
	for evt := range n.agentExec.Stream(ctx, input) {
		switch e := evt.(type) {
		case *agent.Result:
			n.accUsage.Add(e.Metrics.AccumulatedUsage)
			res := &models.NodeResult{
				Status:  models.NodeStatusCompleted,
				Content: e.Message.Content,
			}
			if e.StopReason == agent.StopReasonInterrupt || len(e.Interrupts) > 0 {
				res.Status = models.NodeStatusInterrupted
				res.Interrupts = withNodeID(e.Interrupts, n.ID)
			}
			return res
		case *agent.Error:
			return &models.NodeResult{
				Status: models.NodeStatusFailed,
				Error:  e.Err.Error(),
			}
		default:
			if forward {
				forward = sink(evt)
			}
		}
	}
	return &models.NodeResult{
		Status: models.NodeStatusFailed,
		Error:  fmt.Sprintf("node %s: executor stream ended without a terminal event", n.ID),
	}
}

func (n *Node) executeNested(ctx context.Context, input agent.Input, sink func(any) bool) *models.NodeResult {
	task := Task{Responses: input.Responses}
	for _, block := range input.Blocks {
		if block.Text != "" {
			task.Text = block.Text
			break
		}
	}

	forward := true
	for item := range n.nestedExec.Stream(ctx, task) {
		switch {
		case item.Err != nil:
			return &models.NodeResult{
				Status: models.NodeStatusFailed,
				Error:  item.Err.Error(),
			}
		case item.Result != nil:
			n.accUsage.Add(item.Result.AccumulatedUsage)
			res := &models.NodeResult{
				Status:  nestedStatus(item.Result.Status),
				Content: nestedContent(item.Result),
			}
			if len(item.Result.Interrupts) > 0 {
				res.Status = models.NodeStatusInterrupted
				res.Interrupts = withNodeID(item.Result.Interrupts, n.ID)
			}
			return res
		default:
			if forward && item.Event != nil {
				forward = sink(item.Event)
			}
		}
	}
	return &models.NodeResult{
		Status: models.NodeStatusFailed,
		Error:  fmt.Sprintf("node %s: nested orchestrator ended without a terminal", n.ID),
	}
}

func nestedStatus(status models.RunStatus) models.NodeStatus {
	switch status {
	case models.RunStatusCompleted:
		return models.NodeStatusCompleted
	case models.RunStatusInterrupted:
		return models.NodeStatusInterrupted
	default:
		return models.NodeStatusFailed
	}
}

func nestedContent(result *models.OrchestrationResult) []models.ContentBlock {
	if text := result.FinalText(); text != "" {
		return []models.ContentBlock{models.TextBlock(text)}
	}
	return nil
}

// withNodeID stamps the owning node id on interrupts that lack one.
func withNodeID(interrupts []models.Interrupt, nodeID string) []models.Interrupt {
	out := make([]models.Interrupt, len(interrupts))
	copy(out, interrupts)
	for i := range out {
		if out[i].NodeID == "" {
			out[i].NodeID = nodeID
		}
	}
	return out
}
