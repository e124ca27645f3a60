package multiagent

import (
	"fmt"

	"github.com/agentfleet/agentfleet/pkg/models"
)

// Orchestrator type discriminators in serialized state.
const (
	StateTypeSwarm = "swarm"
	StateTypeGraph = "graph"
)

// InternalState carries the non-public portion of a serialized orchestrator.
type InternalState struct {
	InterruptState *InterruptRecord `json:"interruptState,omitempty"`
}

// SerializedState is the session-persistence checkpoint of an orchestrator.
// CompletedNodes is the graph's completion set; NodeHistory is the swarm's
// handoff trail. An absent NextNodesToExecute resets the restored
// orchestrator to pending.
type SerializedState struct {
	Type               string                        `json:"type"`
	ID                 string                        `json:"id"`
	Status             models.NodeStatus             `json:"status"`
	CompletedNodes     []string                      `json:"completedNodes,omitempty"`
	NodeHistory        []string                      `json:"nodeHistory,omitempty"`
	FailedNodes        []string                      `json:"failedNodes,omitempty"`
	InterruptedNodes   []string                      `json:"interruptedNodes,omitempty"`
	NodeResults        map[string]*models.NodeResult `json:"nodeResults,omitempty"`
	NextNodesToExecute []string                      `json:"nextNodesToExecute,omitempty"`
	CurrentTask        *Task                         `json:"currentTask,omitempty"`
	ExecutionOrder     []string                      `json:"executionOrder,omitempty"`
	ExecutionTimeMs    int64                         `json:"executionTimeMs,omitempty"`
	InternalState      InternalState                 `json:"_internalState"`
}

// Serialize captures the swarm's state for session persistence.
func (s *Swarm) Serialize() *SerializedState {
	st := &SerializedState{
		Type:            StateTypeSwarm,
		ID:              s.id,
		Status:          s.status,
		NodeHistory:     s.NodeHistory(),
		NodeResults:     make(map[string]*models.NodeResult),
		ExecutionOrder:  s.NodeHistory(),
		ExecutionTimeMs: s.elapsedMs,
		InternalState:   InternalState{InterruptState: s.interrupts.ToRecord()},
	}
	task := s.task
	st.CurrentTask = &task
	for id, node := range s.nodes {
		if nr := node.Result(); nr != nil {
			st.NodeResults[id] = nr
			switch nr.Status {
			case models.NodeStatusFailed:
				st.FailedNodes = append(st.FailedNodes, id)
			case models.NodeStatusInterrupted:
				st.InterruptedNodes = append(st.InterruptedNodes, id)
			}
		}
	}
	switch s.status {
	case models.NodeStatusCompleted, models.NodeStatusFailed:
		// Terminal; nothing left to execute.
	default:
		st.NextNodesToExecute = []string{s.currentNodeID}
	}
	return st
}

// RestoreState re-installs a serialized checkpoint on a swarm built over the
// same roster.
func (s *Swarm) RestoreState(st *SerializedState) error {
	if st == nil {
		return fmt.Errorf("swarm %s: nil state", s.id)
	}
	if st.Type != StateTypeSwarm {
		return fmt.Errorf("swarm %s: state type %q", s.id, st.Type)
	}
	for id := range st.NodeResults {
		if _, ok := s.nodes[id]; !ok {
			return fmt.Errorf("swarm %s: state references unknown node %q", s.id, id)
		}
	}

	s.nodeHistory = append([]string(nil), st.NodeHistory...)
	s.iterations = len(st.NodeHistory)
	s.elapsedMs = st.ExecutionTimeMs
	if st.CurrentTask != nil {
		s.task = *st.CurrentTask
	}
	for id, nr := range st.NodeResults {
		node := s.nodes[id]
		node.result = nr
		node.status = nr.Status
		node.executionCount = nr.ExecutionCount
		node.totalTimeMs = nr.ExecutionTimeMs
		node.accUsage = nr.AccumulatedUsage
	}
	s.interrupts = InterruptStateFromRecord(st.InternalState.InterruptState)
	if len(st.NextNodesToExecute) == 0 {
		s.status = models.NodeStatusPending
		s.currentNodeID = s.order[0]
		return nil
	}
	s.status = st.Status
	s.currentNodeID = st.NextNodesToExecute[0]
	if _, ok := s.nodes[s.currentNodeID]; !ok {
		return fmt.Errorf("swarm %s: next node %q not in roster", s.id, s.currentNodeID)
	}
	return nil
}

// Serialize captures the graph's state for session persistence.
func (g *Graph) Serialize() *SerializedState {
	st := &SerializedState{
		Type:               StateTypeGraph,
		ID:                 g.id,
		Status:             g.status,
		FailedNodes:        append([]string(nil), g.failedNodes...),
		NodeResults:        make(map[string]*models.NodeResult),
		NextNodesToExecute: append([]string(nil), g.resumeNodes...),
		ExecutionTimeMs:    g.elapsedMs,
		InternalState:      InternalState{InterruptState: g.interrupts.ToRecord()},
	}
	if g.state != nil {
		st.CompletedNodes = append([]string(nil), g.state.CompletedNodes...)
		st.ExecutionOrder = append([]string(nil), g.state.ExecutionOrder...)
		task := g.state.Task
		st.CurrentTask = &task
		for id, nr := range g.state.Results {
			st.NodeResults[id] = nr
			if nr.Status == models.NodeStatusInterrupted {
				st.InterruptedNodes = append(st.InterruptedNodes, id)
			}
		}
	}
	return st
}

// RestoreState re-installs a serialized checkpoint on a graph built over the
// same topology.
func (g *Graph) RestoreState(st *SerializedState) error {
	if st == nil {
		return fmt.Errorf("graph %s: nil state", g.id)
	}
	if st.Type != StateTypeGraph {
		return fmt.Errorf("graph %s: state type %q", g.id, st.Type)
	}
	for id := range st.NodeResults {
		if _, ok := g.nodes[id]; !ok {
			return fmt.Errorf("graph %s: state references unknown node %q", g.id, id)
		}
	}

	g.state = &GraphState{
		Results:        make(map[string]*models.NodeResult, len(st.NodeResults)),
		CompletedNodes: append([]string(nil), st.CompletedNodes...),
		ExecutionOrder: append([]string(nil), st.ExecutionOrder...),
	}
	if st.CurrentTask != nil {
		g.state.Task = *st.CurrentTask
	}
	g.completed = make(map[string]struct{}, len(st.CompletedNodes))
	for _, id := range st.CompletedNodes {
		g.completed[id] = struct{}{}
	}
	g.failedNodes = append([]string(nil), st.FailedNodes...)
	g.elapsedMs = st.ExecutionTimeMs
	g.executionCount = 0
	for id, nr := range st.NodeResults {
		g.state.Results[id] = nr
		node := g.nodes[id]
		node.result = nr
		node.status = nr.Status
		node.executionCount = nr.ExecutionCount
		node.totalTimeMs = nr.ExecutionTimeMs
		node.accUsage = nr.AccumulatedUsage
		g.executionCount += nr.ExecutionCount
	}
	g.interrupts = InterruptStateFromRecord(st.InternalState.InterruptState)
	if len(st.NextNodesToExecute) == 0 {
		g.status = models.NodeStatusPending
		g.resumeNodes = nil
		return nil
	}
	for _, id := range st.NextNodesToExecute {
		if _, ok := g.nodes[id]; !ok {
			return fmt.Errorf("graph %s: next node %q not in topology", g.id, id)
		}
	}
	g.status = st.Status
	g.resumeNodes = append([]string(nil), st.NextNodesToExecute...)
	return nil
}
