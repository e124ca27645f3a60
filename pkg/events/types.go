// Package events defines the multi-agent event union streamed to consumers,
// the probing extractors the supervisor uses to inspect forwarded agent
// events, and the cycle-safe JSON encoder for the SSE wire format.
package events

import "github.com/agentfleet/agentfleet/pkg/models"

// Event type tags. These are the wire values of the SSE "event:" field and
// the discriminator persisted with captured events.
const (
	TypeNodeStart         = "multiAgentNodeStartEvent"
	TypeNodeInput         = "multiAgentNodeInputEvent"
	TypeNodeStream        = "multiAgentNodeStreamEvent"
	TypeNodeStop          = "multiAgentNodeStopEvent"
	TypeHandoff           = "multiAgentHandoffEvent"
	TypeNodeCancel        = "multiAgentNodeCancelEvent"
	TypeNodeInterrupt     = "multiAgentNodeInterruptEvent"
	TypeResult            = "multiAgentResultEvent"
	TypeNodeStreamCapped  = "multiAgentNodeStreamEventCapped"
)

// NodeType distinguishes executor kinds in start events.
const (
	NodeTypeAgent        = "agent"
	NodeTypeOrchestrator = "orchestrator"
)

// Event is the discriminated multi-agent event union.
type Event interface {
	EventType() string
}

// NodeStartEvent marks the beginning of a node invocation.
type NodeStartEvent struct {
	NodeID   string `json:"nodeId"`
	NodeType string `json:"nodeType"`
}

// NodeInputEvent reports the input handed to a node.
type NodeInputEvent struct {
	NodeID string `json:"nodeId"`
	Input  any    `json:"input"`
}

// NodeStreamEvent forwards an agent event — or a nested orchestrator's
// event — produced while the node is executing.
type NodeStreamEvent struct {
	NodeID string `json:"nodeId"`
	Event  any    `json:"event"`
}

// NodeStopEvent closes a node invocation with its terminal result.
type NodeStopEvent struct {
	NodeID     string             `json:"nodeId"`
	NodeResult *models.NodeResult `json:"nodeResult"`
}

// HandoffEvent marks a transfer of control between node sets.
type HandoffEvent struct {
	FromNodeIDs []string `json:"fromNodeIds"`
	ToNodeIDs   []string `json:"toNodeIds"`
	Message     string   `json:"message,omitempty"`
}

// NodeCancelEvent reports a node cancelled before completion.
type NodeCancelEvent struct {
	NodeID  string `json:"nodeId"`
	Message string `json:"message,omitempty"`
}

// NodeInterruptEvent reports interrupts raised during a node invocation.
type NodeInterruptEvent struct {
	NodeID     string             `json:"nodeId"`
	Interrupts []models.Interrupt `json:"interrupts"`
}

// ResultEvent is the orchestration's terminal event; at most one per run.
type ResultEvent struct {
	Result *models.OrchestrationResult `json:"result"`
}

// NodeStreamCappedEvent is a synthetic persistence-only record appended once
// per node when its captured stream events hit the persistence cap. It is
// never sent to the consumer.
type NodeStreamCappedEvent struct {
	NodeID   string `json:"nodeId"`
	Captured int    `json:"captured"`
}

func (*NodeStartEvent) EventType() string        { return TypeNodeStart }
func (*NodeInputEvent) EventType() string        { return TypeNodeInput }
func (*NodeStreamEvent) EventType() string       { return TypeNodeStream }
func (*NodeStopEvent) EventType() string         { return TypeNodeStop }
func (*HandoffEvent) EventType() string          { return TypeHandoff }
func (*NodeCancelEvent) EventType() string       { return TypeNodeCancel }
func (*NodeInterruptEvent) EventType() string    { return TypeNodeInterrupt }
func (*ResultEvent) EventType() string           { return TypeResult }
func (*NodeStreamCappedEvent) EventType() string { return TypeNodeStreamCapped }
