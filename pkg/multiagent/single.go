package multiagent

import (
	"context"
	"fmt"
	"time"

	"github.com/agentfleet/agentfleet/pkg/agent"
	"github.com/agentfleet/agentfleet/pkg/events"
	"github.com/agentfleet/agentfleet/pkg/models"
)

// StateTypeSingle discriminates a serialized single-agent orchestration.
const StateTypeSingle = "single"

// Single runs one agent as a degenerate orchestration so the driver sees the
// same event shape across all three topologies.
type Single struct {
	id   string
	node *Node
	hook BeforeNodeCall

	status    Status
	task      Task
	elapsedMs int64

	interrupts *InterruptState
}

// NewSingle wraps one agent. The node id is the agent's name.
func NewSingle(a *agent.Agent, hook BeforeNodeCall) *Single {
	return &Single{
		id:         a.Name,
		node:       NewAgentNode(a.Name, a),
		hook:       hook,
		status:     models.NodeStatusPending,
		interrupts: NewInterruptState(),
	}
}

// ID returns the wrapped agent's name.
func (s *Single) ID() string { return s.id }

// Interrupts returns the orchestration's interrupt state.
func (s *Single) Interrupts() *InterruptState { return s.interrupts }

// Status returns the orchestration's current status.
func (s *Single) Status() Status { return s.status }

// Stream executes the agent once, or resumes it when the interrupt state is
// activated and task carries responses.
func (s *Single) Stream(ctx context.Context, task Task) <-chan StreamItem {
	out := make(chan StreamItem, 16)
	go func() {
		defer close(out)
		s.run(ctx, task, out)
	}()
	return out
}

func (s *Single) run(ctx context.Context, task Task, out chan<- StreamItem) {
	started := time.Now()
	node := s.node

	var input agent.Input
	if s.interrupts.Activated() && task.IsResume() {
		s.interrupts.SetResume(task.Responses)
		if nodeCtx, ok := s.interrupts.NodeContext(node.ID); ok {
			node.RestoreForResume(nodeCtx)
		}
		input.Responses = s.interrupts.ResponsesFor(node.ID)
	} else {
		s.task = task
		input.Blocks = task.Blocks
		if len(input.Blocks) == 0 {
			input.Blocks = []models.ContentBlock{models.TextBlock(task.PlainText())}
		}
	}
	s.status = models.NodeStatusExecuting

	if s.hook != nil {
		decision, err := s.hook(ctx, node.ID)
		if err != nil {
			s.status = models.NodeStatusFailed
			s.finishTime(started)
			s.send(ctx, out, StreamItem{Err: fmt.Errorf("node %s hook: %w", node.ID, err)})
			return
		}
		if decision != nil {
			if decision.Cancel {
				s.send(ctx, out, StreamItem{Event: &events.NodeCancelEvent{NodeID: node.ID, Message: decision.CancelMessage}})
				s.status = models.NodeStatusFailed
				s.finishTime(started)
				s.send(ctx, out, StreamItem{Err: fmt.Errorf("node %s cancelled: %s", node.ID, decision.CancelMessage)})
				return
			}
			if len(decision.Interrupts) > 0 {
				raised := withNodeID(decision.Interrupts, node.ID)
				s.send(ctx, out, StreamItem{Event: &events.NodeInterruptEvent{NodeID: node.ID, Interrupts: raised}})
				s.interrupts.Activate(raised)
				s.interrupts.SetNodeContext(node.ID, node.InterruptContext(true))
				s.status = models.NodeStatusInterrupted
				s.finishTime(started)
				s.emitResult(ctx, out)
				return
			}
		}
	}

	if !s.send(ctx, out, StreamItem{Event: &events.NodeStartEvent{NodeID: node.ID, NodeType: node.NodeType()}}) {
		return
	}
	if !s.send(ctx, out, StreamItem{Event: &events.NodeInputEvent{NodeID: node.ID, Input: inputSummary(input)}}) {
		return
	}

	result := node.execute(ctx, input, func(evt any) bool {
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
	s.interrupts.Deactivate()
	s.status = models.NodeStatusCompleted
	s.finishTime(started)
	s.emitResult(ctx, out)
}

// Serialize captures the orchestration state for session persistence.
func (s *Single) Serialize() *SerializedState {
	st := &SerializedState{
		Type:            StateTypeSingle,
		ID:              s.id,
		Status:          s.status,
		NodeResults:     make(map[string]*models.NodeResult, 1),
		ExecutionTimeMs: s.elapsedMs,
		InternalState:   InternalState{InterruptState: s.interrupts.ToRecord()},
	}
	task := s.task
	st.CurrentTask = &task
	if nr := s.node.Result(); nr != nil {
		st.NodeResults[s.id] = nr
		if nr.Status == models.NodeStatusCompleted {
			st.NodeHistory = []string{s.id}
			st.ExecutionOrder = []string{s.id}
		}
	}
	if s.status == models.NodeStatusInterrupted {
		st.InterruptedNodes = []string{s.id}
		st.NextNodesToExecute = []string{s.id}
	}
	return st
}

// RestoreState re-installs a serialized checkpoint.
func (s *Single) RestoreState(st *SerializedState) error {
	if st == nil {
		return fmt.Errorf("single %s: nil state", s.id)
	}
	if st.Type != StateTypeSingle {
		return fmt.Errorf("single %s: state type %q", s.id, st.Type)
	}
	if st.CurrentTask != nil {
		s.task = *st.CurrentTask
	}
	s.elapsedMs = st.ExecutionTimeMs
	if nr, ok := st.NodeResults[s.id]; ok {
		s.node.result = nr
		s.node.status = nr.Status
		s.node.executionCount = nr.ExecutionCount
		s.node.totalTimeMs = nr.ExecutionTimeMs
		s.node.accUsage = nr.AccumulatedUsage
	}
	s.interrupts = InterruptStateFromRecord(st.InternalState.InterruptState)
	if len(st.NextNodesToExecute) == 0 && s.interrupts.Activated() {
		s.interrupts.Deactivate()
	}
	s.status = st.Status
	if len(st.NextNodesToExecute) == 0 {
		switch st.Status {
		case models.NodeStatusCompleted, models.NodeStatusFailed:
		default:
			s.status = models.NodeStatusPending
		}
	}
	return nil
}

func (s *Single) emitResult(ctx context.Context, out chan<- StreamItem) {
	result := &models.OrchestrationResult{
		Status:          runStatusFor(s.status),
		Results:         map[string]*models.NodeResult{},
		ExecutionCount:  s.node.ExecutionCount(),
		ExecutionTimeMs: s.elapsedMs,
	}
	if nr := s.node.Result(); nr != nil {
		result.Results[s.id] = nr
		result.AccumulatedUsage = nr.AccumulatedUsage
		if nr.Status == models.NodeStatusCompleted {
			result.ExecutionOrder = []string{s.id}
		}
	}
	if s.status == models.NodeStatusInterrupted {
		result.Interrupts = s.interrupts.OpenInterrupts()
	}
	s.send(ctx, out, StreamItem{Event: &events.ResultEvent{Result: result}})
	s.send(ctx, out, StreamItem{Result: result})
}

func (s *Single) finishTime(started time.Time) {
	s.elapsedMs += time.Since(started).Milliseconds()
}

func (s *Single) send(ctx context.Context, out chan<- StreamItem, item StreamItem) bool {
	select {
	case out <- item:
		return true
	case <-ctx.Done():
		return false
	}
}
