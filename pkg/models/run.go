// Package models defines shared domain types used across the orchestrator
// core, the run supervisor, and the API layer.
package models

import "time"

// RunMode selects the orchestration topology for a run.
type RunMode string

const (
	RunModeSingle RunMode = "single"
	RunModeSwarm  RunMode = "swarm"
	RunModeGraph  RunMode = "graph"
)

// Valid reports whether the mode is one of the supported topologies.
func (m RunMode) Valid() bool {
	switch m {
	case RunModeSingle, RunModeSwarm, RunModeGraph:
		return true
	}
	return false
}

// RunStatus is the lifecycle status of a run.
// Exactly one terminal status is recorded per run; "running" is only
// permitted while the process holds the run's supervisor.
type RunStatus string

const (
	RunStatusRunning     RunStatus = "running"
	RunStatusCompleted   RunStatus = "completed"
	RunStatusFailed      RunStatus = "failed"
	RunStatusInterrupted RunStatus = "interrupted"
)

// Terminal reports whether the status is one of the terminal states.
func (s RunStatus) Terminal() bool {
	return s == RunStatusCompleted || s == RunStatusFailed || s == RunStatusInterrupted
}

// NodeStatus is the execution status of an orchestrator node.
type NodeStatus string

const (
	NodeStatusPending     NodeStatus = "pending"
	NodeStatusExecuting   NodeStatus = "executing"
	NodeStatusCompleted   NodeStatus = "completed"
	NodeStatusFailed      NodeStatus = "failed"
	NodeStatusInterrupted NodeStatus = "interrupted"
)

// AgentSpec describes one agent in the run roster.
type AgentSpec struct {
	Name         string   `json:"name"`
	SystemPrompt string   `json:"systemPrompt"`
	Tools        []string `json:"tools,omitempty"`
}

// EdgeSpec is a directed graph edge between two agents (graph mode only).
// Condition names a registered predicate; empty means unconditional.
type EdgeSpec struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Condition string `json:"condition,omitempty"`
}

// RunRecord is the supervisor-facing view of a persisted run.
type RunRecord struct {
	RunID       string
	Mode        RunMode
	Prompt      string
	Status      RunStatus
	StartedAt   time.Time
	CompletedAt *time.Time
}
