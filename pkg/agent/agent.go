package agent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agentfleet/agentfleet/pkg/models"
)

// maxToolIterations bounds the model/tool loop within a single turn.
const maxToolIterations = 16

// Event is one element of an agent's output sequence. Concrete types:
// *ContentDelta and *ToolUseChunk (forwarded from the model),
// *ToolResultEvent, *UsageChunk, and the terminals *Result and *Error.
type Event interface {
	isAgentEvent()
}

// ToolResultEvent reports a completed tool invocation.
type ToolResultEvent struct {
	ToolUseID string `json:"toolUseId"`
	ToolName  string `json:"toolName"`
	Value     any    `json:"value,omitempty"`
	Err       string `json:"error,omitempty"`
}

// Metrics aggregates usage and latency over a turn.
type Metrics struct {
	AccumulatedUsage models.TokenUsage `json:"accumulatedUsage"`
	LatencyMs        int64             `json:"latencyMs"`
}

// Result is the terminal aggregated result of an agent turn.
type Result struct {
	StopReason StopReason         `json:"stopReason"`
	Message    models.Message     `json:"message"`
	Metrics    Metrics            `json:"metrics"`
	Interrupts []models.Interrupt `json:"interrupts,omitempty"`
}

// Error terminates the agent stream with a failure.
type Error struct {
	Err error
}

func (*ContentDelta) isAgentEvent()    {}
func (*ToolUseChunk) isAgentEvent()    {}
func (*ToolResultEvent) isAgentEvent() {}
func (*UsageChunk) isAgentEvent()      {}
func (*Result) isAgentEvent()          {}
func (*Error) isAgentEvent()           {}

// Input is the payload for one agent turn. Either Blocks (a normal turn) or
// Responses (a resume turn answering pending interrupts) is set.
type Input struct {
	Blocks    []models.ContentBlock
	Responses []models.InterruptResponse
}

// Snapshot is an agent's mutable state: its conversation and scratch state.
// Node invocations snapshot on entry and restore on exit so that node
// execution is side-effect-free on the wrapped agent.
type Snapshot struct {
	Messages []models.Message `json:"messages"`
	State    map[string]any   `json:"state"`
}

// Agent is a named unit with a model binding, a system prompt, and a tool
// registry. Agents are not safe for concurrent turns; orchestrators
// guarantee at most one active invocation per agent.
type Agent struct {
	Name         string
	SystemPrompt string
	Model        Model

	tools    *ToolRegistry
	messages []models.Message
	state    map[string]any
}

// New creates an agent with an empty tool registry.
func New(name, systemPrompt string, model Model) *Agent {
	return &Agent{
		Name:         name,
		SystemPrompt: systemPrompt,
		Model:        model,
		tools:        NewToolRegistry(),
		state:        make(map[string]any),
	}
}

// Tools returns the agent's tool registry.
func (a *Agent) Tools() *ToolRegistry { return a.tools }

// State returns the agent's scratch state map.
func (a *Agent) State() map[string]any { return a.state }

// Snapshot captures the agent's messages and scratch state.
func (a *Agent) Snapshot() Snapshot {
	messages := make([]models.Message, len(a.messages))
	copy(messages, a.messages)
	state := make(map[string]any, len(a.state))
	for k, v := range a.state {
		state[k] = v
	}
	return Snapshot{Messages: messages, State: state}
}

// Restore replaces the agent's messages and scratch state.
func (a *Agent) Restore(snap Snapshot) {
	a.messages = make([]models.Message, len(snap.Messages))
	copy(a.messages, snap.Messages)
	a.state = make(map[string]any, len(snap.State))
	for k, v := range snap.State {
		a.state[k] = v
	}
	if a.state == nil {
		a.state = make(map[string]any)
	}
}

// Stream runs one agent turn: append the input, drive the model, execute
// requested tools, and repeat until the model stops without tool use. The
// returned channel yields events and is closed after exactly one terminal
// (*Result or *Error).
func (a *Agent) Stream(ctx context.Context, input Input) <-chan Event {
	out := make(chan Event, 16)
	go func() {
		defer close(out)
		a.run(ctx, input, out)
	}()
	return out
}

func (a *Agent) run(ctx context.Context, input Input, out chan<- Event) {
	started := time.Now()
	a.messages = append(a.messages, inputMessage(input))

	var accumulated models.TokenUsage
	var interrupts []models.Interrupt

	for iteration := 0; iteration < maxToolIterations; iteration++ {
		req := &ModelRequest{
			System:   a.SystemPrompt,
			Messages: a.messages,
			Tools:    a.tools.Definitions(),
		}
		chunks, err := a.Model.Stream(ctx, req)
		if err != nil {
			emit(ctx, out, &Error{Err: fmt.Errorf("model stream failed: %w", err)})
			return
		}

		result, pendingTools, err := a.consumeModelStream(ctx, chunks, out)
		if err != nil {
			emit(ctx, out, &Error{Err: err})
			return
		}
		accumulated.Add(result.Usage)
		a.messages = append(a.messages, result.Message)

		if len(pendingTools) == 0 {
			emit(ctx, out, &Result{
				StopReason: result.StopReason,
				Message:    result.Message,
				Metrics: Metrics{
					AccumulatedUsage: accumulated,
					LatencyMs:        time.Since(started).Milliseconds(),
				},
			})
			return
		}

		toolMessage, raised := a.executeTools(ctx, pendingTools, out)
		a.messages = append(a.messages, toolMessage)
		if len(raised) > 0 {
			interrupts = append(interrupts, raised...)
			emit(ctx, out, &Result{
				StopReason: StopReasonInterrupt,
				Message:    result.Message,
				Metrics: Metrics{
					AccumulatedUsage: accumulated,
					LatencyMs:        time.Since(started).Milliseconds(),
				},
				Interrupts: interrupts,
			})
			return
		}
	}

	emit(ctx, out, &Error{Err: fmt.Errorf("agent %s exceeded %d tool iterations", a.Name, maxToolIterations)})
}

// consumeModelStream forwards model chunks as agent events and returns the
// terminal result plus any tool invocations the model requested. A channel
// that closes without a terminal chunk is an incomplete stream.
func (a *Agent) consumeModelStream(
	ctx context.Context,
	chunks <-chan ModelChunk,
	out chan<- Event,
) (*ModelResult, []*ToolUseChunk, error) {
	var pendingTools []*ToolUseChunk
	for {
		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		case chunk, ok := <-chunks:
			if !ok {
				return nil, nil, ErrModelStreamIncomplete
			}
			switch c := chunk.(type) {
			case *ContentDelta:
				emit(ctx, out, c)
			case *UsageChunk:
				emit(ctx, out, c)
			case *ToolUseChunk:
				pendingTools = append(pendingTools, c)
				emit(ctx, out, c)
			case *ModelResult:
				return c, pendingTools, nil
			case *ModelError:
				return nil, nil, c.Err
			}
		}
	}
}

// executeTools runs the requested tools synchronously and returns the
// tool-result message plus any interrupts raised by tool handlers.
func (a *Agent) executeTools(
	ctx context.Context,
	requests []*ToolUseChunk,
	out chan<- Event,
) (models.Message, []models.Interrupt) {
	var blocks []models.ContentBlock
	var raised []models.Interrupt

	for _, req := range requests {
		tool, ok := a.tools.Get(req.ToolName)
		if !ok {
			emit(ctx, out, &ToolResultEvent{
				ToolUseID: req.ToolUseID,
				ToolName:  req.ToolName,
				Err:       ErrToolNotFound.Error(),
			})
			blocks = append(blocks, models.TextBlock(fmt.Sprintf("tool %s not found", req.ToolName)))
			continue
		}

		value, err := tool.Execute(ctx, req.Input)
		if err != nil {
			slog.Warn("Tool execution failed",
				"agent", a.Name, "tool", req.ToolName, "error", err)
			emit(ctx, out, &ToolResultEvent{
				ToolUseID: req.ToolUseID,
				ToolName:  req.ToolName,
				Err:       err.Error(),
			})
			blocks = append(blocks, models.TextBlock(fmt.Sprintf("tool %s failed: %v", req.ToolName, err)))
			continue
		}

		if intr, ok := asInterrupt(value); ok {
			if intr.ID == "" {
				intr.ID = uuid.New().String()
			}
			raised = append(raised, intr)
		}

		emit(ctx, out, &ToolResultEvent{
			ToolUseID: req.ToolUseID,
			ToolName:  req.ToolName,
			Value:     value,
		})
		blocks = append(blocks, models.TextBlock(fmt.Sprintf("%v", value)))
	}

	if len(blocks) == 0 {
		blocks = []models.ContentBlock{models.TextBlock("")}
	}
	return models.Message{Role: models.RoleUser, Content: blocks}, raised
}

func asInterrupt(value any) (models.Interrupt, bool) {
	switch v := value.(type) {
	case models.Interrupt:
		return v, true
	case *models.Interrupt:
		if v != nil {
			return *v, true
		}
	}
	return models.Interrupt{}, false
}

func inputMessage(input Input) models.Message {
	if len(input.Responses) > 0 {
		blocks := make([]models.ContentBlock, 0, len(input.Responses))
		for _, resp := range input.Responses {
			blocks = append(blocks, models.ContentBlock{JSON: map[string]any{
				"interruptId": resp.InterruptID,
				"response":    resp.Response,
			}})
		}
		return models.Message{Role: models.RoleUser, Content: blocks}
	}
	blocks := input.Blocks
	if len(blocks) == 0 {
		blocks = []models.ContentBlock{models.TextBlock("")}
	}
	return models.Message{Role: models.RoleUser, Content: blocks}
}

// emit delivers an event unless the consumer's context is gone.
func emit(ctx context.Context, out chan<- Event, evt Event) {
	select {
	case out <- evt:
	case <-ctx.Done():
	}
}
