// Package supervisor drives a run: it pumps orchestrator events to the
// consumer under wall-clock and idle guards, accounts token budgets and
// tool-use policy, captures events for history, and finalizes the run
// record exactly once.
package supervisor

import (
	"errors"
	"fmt"
)

// Failure codes surfaced on the terminal error record.
const (
	CodeTokenBudgetExceeded           = "TOKEN_BUDGET_EXCEEDED"
	CodeRunTimeoutExceeded            = "RUN_TIMEOUT_EXCEEDED"
	CodeRunIdleTimeoutExceeded        = "RUN_IDLE_TIMEOUT_EXCEEDED"
	CodeToolPolicyExceeded            = "TOOL_POLICY_EXCEEDED"
	CodeAgentReviewContractViolation  = "AGENT_REVIEW_CONTRACT_VIOLATION"
	CodeAgentReviewNodeBudgetExceeded = "AGENT_REVIEW_NODE_BUDGET_EXCEEDED"
	CodeClientDisconnected            = "CLIENT_DISCONNECTED"
	CodeModelStreamIncomplete         = "MODEL_STREAM_INCOMPLETE"
)

// RunError is a coded run failure raised by one of the supervisor's guards.
type RunError struct {
	Code    string
	Message string
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewRunError builds a coded failure.
func NewRunError(code, format string, args ...any) *RunError {
	return &RunError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// AsRunError unwraps a RunError if err carries one.
func AsRunError(err error) (*RunError, bool) {
	var re *RunError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// guardCode reports whether the code marks a budget, policy, or contract
// violation — the anomaly set for history risk scoring.
func guardCode(code string) bool {
	switch code {
	case CodeTokenBudgetExceeded, CodeToolPolicyExceeded,
		CodeAgentReviewContractViolation, CodeAgentReviewNodeBudgetExceeded:
		return true
	}
	return false
}
