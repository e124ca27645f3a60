package supervisor

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/agentfleet/agentfleet/pkg/events"
	"github.com/agentfleet/agentfleet/pkg/services"
)

// Capture persists the event log of one run. Stream events are capped per
// node id: past the cap, one synthetic capped record is appended and further
// stream events for that node are dropped from persistence. Every other
// event kind is always persisted. The consumer still receives the full
// stream — the cap applies to storage only.
type Capture struct {
	history    *services.HistoryService
	runID      string
	capPerNode int

	sequence   int
	streamSeen map[string]int
	capped     map[string]bool
	nodeStatus map[string]string
}

// NewCapture creates a capture for one run.
func NewCapture(history *services.HistoryService, runID string, capPerNode int) *Capture {
	return &Capture{
		history:    history,
		runID:      runID,
		capPerNode: capPerNode,
		streamSeen: make(map[string]int),
		capped:     make(map[string]bool),
		nodeStatus: make(map[string]string),
	}
}

// Persist appends one event to the run's log, honoring the per-node stream
// cap. Storage errors are logged, not raised: capture is durability, not
// correctness.
func (c *Capture) Persist(ctx context.Context, evt events.Event) {
	if stop, ok := evt.(*events.NodeStopEvent); ok && stop.NodeResult != nil {
		c.nodeStatus[stop.NodeID] = string(stop.NodeResult.Status)
	}

	if stream, ok := evt.(*events.NodeStreamEvent); ok {
		count := c.streamSeen[stream.NodeID] + 1
		c.streamSeen[stream.NodeID] = count
		if count > c.capPerNode {
			if !c.capped[stream.NodeID] {
				c.capped[stream.NodeID] = true
				c.append(ctx, &events.NodeStreamCappedEvent{
					NodeID:   stream.NodeID,
					Captured: c.capPerNode,
				})
			}
			return
		}
	}

	c.append(ctx, evt)
}

func (c *Capture) append(ctx context.Context, evt events.Event) {
	nodeID, _ := events.ExtractEventNodeID(evt)
	payload := toPayload(evt)

	seq := c.sequence
	c.sequence++

	if err := c.history.AppendEvent(ctx, c.runID, seq, evt.EventType(), nodeID, payload); err != nil {
		slog.Warn("Failed to persist captured event",
			"run_id", c.runID, "sequence", seq, "event_type", evt.EventType(), "error", err)
	}
}

// toPayload renders an event as a JSON object via the cycle-safe encoder,
// matching what the consumer saw on the wire.
func toPayload(evt events.Event) map[string]any {
	data, err := events.MarshalCycleSafe(evt)
	if err != nil {
		return map[string]any{"marshalError": err.Error()}
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return map[string]any{"raw": string(data)}
	}
	return payload
}

// StreamEventCount returns all stream events seen for a node, including
// ones past the persistence cap.
func (c *Capture) StreamEventCount(nodeID string) int { return c.streamSeen[nodeID] }

// Capped reports whether a node hit the persistence cap.
func (c *Capture) Capped(nodeID string) bool { return c.capped[nodeID] }

// NodeStatus returns the last captured status for a node.
func (c *Capture) NodeStatus(nodeID string) string { return c.nodeStatus[nodeID] }

// Sequence returns the next sequence number (= events persisted so far).
func (c *Capture) Sequence() int { return c.sequence }
