package api

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agentfleet/agentfleet/pkg/agent"
)

// Builtin tools available to request rosters by name. Tool implementations
// are deliberately small; the interesting part is the policy and accounting
// around them, not what they compute.
var builtinTools = map[string]func() *agent.Tool{
	"calculator":   calculatorTool,
	"current_time": currentTimeTool,
	"word_count":   wordCountTool,
}

// builtinTool returns a fresh instance of a named builtin tool. Each agent
// gets its own instance so registries stay independent.
func builtinTool(name string) (*agent.Tool, bool) {
	factory, ok := builtinTools[name]
	if !ok {
		return nil, false
	}
	return factory(), true
}

func calculatorTool() *agent.Tool {
	return &agent.Tool{
		Definition: agent.ToolDefinition{
			Name:        "calculator",
			Description: "Evaluates a basic arithmetic expression with two operands.",
			ParametersSchema: `{
  "type": "object",
  "properties": {
    "a": {"type": "number"},
    "b": {"type": "number"},
    "op": {"type": "string", "enum": ["add", "sub", "mul", "div"]}
  },
  "required": ["a", "b", "op"]
}`,
		},
		Execute: func(_ context.Context, input map[string]any) (any, error) {
			a, _ := input["a"].(float64)
			b, _ := input["b"].(float64)
			op, _ := input["op"].(string)
			switch op {
			case "add":
				return a + b, nil
			case "sub":
				return a - b, nil
			case "mul":
				return a * b, nil
			case "div":
				if b == 0 {
					return nil, fmt.Errorf("division by zero")
				}
				return a / b, nil
			}
			return nil, fmt.Errorf("unknown operation %q", op)
		},
	}
}

func currentTimeTool() *agent.Tool {
	return &agent.Tool{
		Definition: agent.ToolDefinition{
			Name:             "current_time",
			Description:      "Returns the current UTC time in RFC 3339 format.",
			ParametersSchema: `{"type": "object", "properties": {}}`,
		},
		Execute: func(_ context.Context, _ map[string]any) (any, error) {
			return time.Now().UTC().Format(time.RFC3339), nil
		},
	}
}

func wordCountTool() *agent.Tool {
	return &agent.Tool{
		Definition: agent.ToolDefinition{
			Name:        "word_count",
			Description: "Counts the words in a piece of text.",
			ParametersSchema: `{
  "type": "object",
  "properties": {"text": {"type": "string"}},
  "required": ["text"]
}`,
		},
		Execute: func(_ context.Context, input map[string]any) (any, error) {
			text, _ := input["text"].(string)
			return len(strings.Fields(text)), nil
		},
	}
}
