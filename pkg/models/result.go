package models

// Interrupt is a pending human-in-the-loop interrupt raised by a hook or by
// an agent executor. Value carries the interrupt's payload (question,
// approval request, ...) and must be JSON-serializable.
type Interrupt struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Value  any    `json:"value,omitempty"`
	NodeID string `json:"nodeId,omitempty"`
}

// InterruptResponse pairs an interrupt id with the consumer-supplied answer
// used to resume the interrupted node.
type InterruptResponse struct {
	InterruptID string `json:"interruptId"`
	Response    any    `json:"response"`
}

// NodeResult is the terminal outcome of one node invocation.
type NodeResult struct {
	Status             NodeStatus     `json:"status"`
	Content            []ContentBlock `json:"content,omitempty"`
	AccumulatedUsage   TokenUsage     `json:"accumulatedUsage"`
	AccumulatedMetrics NodeMetrics    `json:"accumulatedMetrics"`
	ExecutionCount     int            `json:"executionCount"`
	ExecutionTimeMs    int64          `json:"executionTimeMs"`
	Interrupts         []Interrupt    `json:"interrupts,omitempty"`
	Error              string         `json:"error,omitempty"`
}

// OrchestrationResult is the terminal outcome of a whole orchestration.
type OrchestrationResult struct {
	Status           RunStatus              `json:"status"`
	Results          map[string]*NodeResult `json:"results"`
	AccumulatedUsage TokenUsage             `json:"accumulatedUsage"`
	ExecutionCount   int                    `json:"executionCount"`
	ExecutionTimeMs  int64                  `json:"executionTimeMs"`
	// ExecutionOrder lists node ids in completion order (swarm: handoff
	// order; graph: batch completion order).
	ExecutionOrder []string    `json:"executionOrder"`
	Interrupts     []Interrupt `json:"interrupts,omitempty"`
}

// FinalText returns the text content of the last completed node result, or
// empty when none produced text.
func (r *OrchestrationResult) FinalText() string {
	for i := len(r.ExecutionOrder) - 1; i >= 0; i-- {
		nr := r.Results[r.ExecutionOrder[i]]
		if nr == nil {
			continue
		}
		for _, block := range nr.Content {
			if block.Text != "" {
				return block.Text
			}
		}
	}
	return ""
}
