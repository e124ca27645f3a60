package multiagent

import (
	"sync"

	"github.com/agentfleet/agentfleet/pkg/models"
)

// NodeInterruptContext carries one interrupted node's local state so it can
// be restored on resume. RaisedByHook distinguishes hook interrupts (node
// re-executes from the start) from executor interrupts (executor state is
// restored and re-entered with the matching responses).
type NodeInterruptContext struct {
	Messages     []models.Message `json:"messages,omitempty"`
	State        map[string]any   `json:"state,omitempty"`
	NestedState  *SerializedState `json:"nestedState,omitempty"`
	Activated    bool             `json:"activated"`
	RaisedByHook bool             `json:"raisedByHook"`
}

// InterruptState is the serializable pause/resume checkpoint shared by both
// orchestrators: the set of open interrupts, per-node restoration contexts,
// the activation flag, and the latest resume payload.
type InterruptState struct {
	mu sync.Mutex

	activated    bool
	interrupts   map[string]models.Interrupt
	nodeContexts map[string]*NodeInterruptContext
	resume       []models.InterruptResponse
}

// NewInterruptState creates an empty, deactivated interrupt state.
func NewInterruptState() *InterruptState {
	return &InterruptState{
		interrupts:   make(map[string]models.Interrupt),
		nodeContexts: make(map[string]*NodeInterruptContext),
	}
}

// Activated reports whether an interrupt is pending resume.
func (s *InterruptState) Activated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activated
}

// Activate marks the state active, recording the raised interrupts.
func (s *InterruptState) Activate(interrupts []models.Interrupt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activated = true
	for _, intr := range interrupts {
		s.interrupts[intr.ID] = intr
	}
}

// Deactivate clears all interrupt bookkeeping. Called after every node
// completes a resume cycle without re-interrupting.
func (s *InterruptState) Deactivate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activated = false
	s.interrupts = make(map[string]models.Interrupt)
	s.nodeContexts = make(map[string]*NodeInterruptContext)
	s.resume = nil
}

// OpenInterrupts returns the currently open interrupts.
func (s *InterruptState) OpenInterrupts() []models.Interrupt {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Interrupt, 0, len(s.interrupts))
	for _, intr := range s.interrupts {
		out = append(out, intr)
	}
	return out
}

// SetNodeContext records a node's restoration context.
func (s *InterruptState) SetNodeContext(nodeID string, nodeCtx *NodeInterruptContext) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nodeContexts[nodeID] = nodeCtx
}

// NodeContext returns a node's restoration context, when present.
func (s *InterruptState) NodeContext(nodeID string) (*NodeInterruptContext, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	nodeCtx, ok := s.nodeContexts[nodeID]
	return nodeCtx, ok
}

// InterruptedNodeIDs returns the node ids with recorded contexts.
func (s *InterruptState) InterruptedNodeIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.nodeContexts))
	for id := range s.nodeContexts {
		ids = append(ids, id)
	}
	return ids
}

// SetResume stores the latest resume payload.
func (s *InterruptState) SetResume(responses []models.InterruptResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resume = responses
}

// ResumeResponses returns the stored resume payload.
func (s *InterruptState) ResumeResponses() []models.InterruptResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resume
}

// ResponsesFor filters the resume payload to the interrupts raised for the
// given node.
func (s *InterruptState) ResponsesFor(nodeID string) []models.InterruptResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.InterruptResponse
	for _, resp := range s.resume {
		if intr, ok := s.interrupts[resp.InterruptID]; ok && intr.NodeID == nodeID {
			out = append(out, resp)
		}
	}
	return out
}

// InterruptRecord is the plain serialization of an InterruptState.
type InterruptRecord struct {
	Activated    bool                             `json:"activated"`
	Interrupts   map[string]models.Interrupt      `json:"interrupts,omitempty"`
	NodeContexts map[string]*NodeInterruptContext `json:"nodeContexts,omitempty"`
	Resume       []models.InterruptResponse       `json:"resume,omitempty"`
}

// ToRecord captures the state as a plain record.
func (s *InterruptState) ToRecord() *InterruptRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := &InterruptRecord{
		Activated:    s.activated,
		Interrupts:   make(map[string]models.Interrupt, len(s.interrupts)),
		NodeContexts: make(map[string]*NodeInterruptContext, len(s.nodeContexts)),
		Resume:       s.resume,
	}
	for id, intr := range s.interrupts {
		rec.Interrupts[id] = intr
	}
	for id, nodeCtx := range s.nodeContexts {
		rec.NodeContexts[id] = nodeCtx
	}
	return rec
}

// InterruptStateFromRecord restores a state from its plain record.
func InterruptStateFromRecord(rec *InterruptRecord) *InterruptState {
	s := NewInterruptState()
	if rec == nil {
		return s
	}
	s.activated = rec.Activated
	for id, intr := range rec.Interrupts {
		s.interrupts[id] = intr
	}
	for id, nodeCtx := range rec.NodeContexts {
		s.nodeContexts[id] = nodeCtx
	}
	s.resume = rec.Resume
	return s
}
