package supervisor

// CoordinationToolName is the tool the agent-review judge workflow must
// call exactly twice over the run.
const CoordinationToolName = "swarm"

// reviewNodeStartBudget caps node starts for agent-review runs.
const reviewNodeStartBudget = 20

// ReviewContract tracks the agent-review judge contract: exactly two
// invocations of the coordination tool and at most twenty node starts.
// Both are checked when the run ends.
type ReviewContract struct {
	coordinationCalls int
	nodeStarts        int
}

// ObserveToolUse counts a distinct tool-use start.
func (c *ReviewContract) ObserveToolUse(toolName string) {
	if toolName == CoordinationToolName {
		c.coordinationCalls++
	}
}

// ObserveNodeStart counts a node-start event.
func (c *ReviewContract) ObserveNodeStart() {
	c.nodeStarts++
}

// Check validates the contract at the end of the run.
func (c *ReviewContract) Check() error {
	if c.nodeStarts > reviewNodeStartBudget {
		return NewRunError(CodeAgentReviewNodeBudgetExceeded,
			"agent review exceeded node budget: %d node starts, limit %d", c.nodeStarts, reviewNodeStartBudget)
	}
	if c.coordinationCalls != 2 {
		return NewRunError(CodeAgentReviewContractViolation,
			"agent review contract requires exactly 2 %s calls, saw %d", CoordinationToolName, c.coordinationCalls)
	}
	return nil
}
