// Package multiagent implements the orchestrator core: the node runtime
// wrapping agents and nested orchestrators, the swarm hand-off state
// machine, and the dependency-driven graph with parallel fan-out.
package multiagent

import (
	"context"

	"github.com/agentfleet/agentfleet/pkg/events"
	"github.com/agentfleet/agentfleet/pkg/models"
)

// Status is an orchestrator's execution status. It shares the node status
// vocabulary: pending, executing, completed, failed, interrupted.
type Status = models.NodeStatus

// Task is the input to an orchestration. Text or Blocks carry a fresh task;
// Responses is a resume payload and is consulted only while the
// orchestrator's interrupt state is activated.
type Task struct {
	Text      string                     `json:"text,omitempty"`
	Blocks    []models.ContentBlock      `json:"blocks,omitempty"`
	Responses []models.InterruptResponse `json:"responses,omitempty"`
}

// IsResume reports whether the task carries interrupt responses.
func (t Task) IsResume() bool { return len(t.Responses) > 0 }

// PlainText returns the task's textual form for prompt synthesis.
func (t Task) PlainText() string {
	if t.Text != "" {
		return t.Text
	}
	for _, block := range t.Blocks {
		if block.Text != "" {
			return block.Text
		}
	}
	return ""
}

// StreamItem is one element of an orchestrator's output sequence: an event,
// or exactly one terminal (Result or Err) after which the channel closes.
type StreamItem struct {
	Event  events.Event
	Result *models.OrchestrationResult
	Err    error
}

// Orchestrator is the uniform streaming contract shared by the swarm and
// the graph, and consumed by the node runtime for nesting.
type Orchestrator interface {
	// ID returns the orchestrator's identifier (used as the node id when
	// nested).
	ID() string

	// Stream drives the orchestration. While the interrupt state is
	// activated the task is treated as a resume payload.
	Stream(ctx context.Context, task Task) <-chan StreamItem

	// Interrupts exposes the orchestrator's interrupt state.
	Interrupts() *InterruptState

	// Serialize captures the orchestrator state for session persistence.
	Serialize() *SerializedState
}

// HookDecision is returned by a BeforeNodeCall hook. Cancel stops the node
// before it starts; Interrupts pause the orchestration for human input.
type HookDecision struct {
	Cancel        bool
	CancelMessage string
	Interrupts    []models.Interrupt
}

// BeforeNodeCall runs before each node invocation. A nil hook always
// proceeds.
type BeforeNodeCall func(ctx context.Context, nodeID string) (*HookDecision, error)

// HandoffRequest is the coordination intent returned by the injected
// handoff tool. The swarm applies it at the end of the current node's turn,
// never mid-stream.
type HandoffRequest struct {
	AgentName string         `json:"agent_name"`
	Message   string         `json:"message"`
	Context   map[string]any `json:"context,omitempty"`
}
