package api

import (
	"github.com/agentfleet/agentfleet/pkg/multiagent"
)

// edgeCondition resolves a named predicate for a graph edge. Conditions are
// closed over the edge's source node so they can inspect its result.
func edgeCondition(name, from string) (multiagent.EdgeCondition, bool) {
	switch name {
	case "fromCompleted":
		return func(state *multiagent.GraphState) bool {
			result, ok := state.Results[from]
			return ok && result.Error == ""
		}, true
	case "fromHasText":
		return func(state *multiagent.GraphState) bool {
			result, ok := state.Results[from]
			if !ok {
				return false
			}
			for _, block := range result.Content {
				if block.Text != "" {
					return true
				}
			}
			return false
		}, true
	}
	return nil, false
}
