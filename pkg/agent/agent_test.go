package agent

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfleet/agentfleet/pkg/models"
)

// scriptedModel replays a fixed chunk sequence per Stream call. Calls past
// the script repeat the last turn.
type scriptedModel struct {
	id       string
	turns    [][]ModelChunk
	calls    int
	requests []*ModelRequest
}

func (m *scriptedModel) ModelID() string {
	if m.id == "" {
		return "test-model"
	}
	return m.id
}

func (m *scriptedModel) Stream(_ context.Context, req *ModelRequest) (<-chan ModelChunk, error) {
	m.requests = append(m.requests, req)
	idx := m.calls
	m.calls++
	if idx >= len(m.turns) {
		idx = len(m.turns) - 1
	}
	turn := m.turns[idx]
	out := make(chan ModelChunk, len(turn))
	for _, chunk := range turn {
		out <- chunk
	}
	close(out)
	return out, nil
}

func textTurn(text string, usage models.TokenUsage) []ModelChunk {
	return []ModelChunk{
		&ContentDelta{Text: text},
		&UsageChunk{Usage: usage},
		&ModelResult{
			StopReason: StopReasonEndTurn,
			Message:    models.Message{Role: models.RoleAssistant, Content: []models.ContentBlock{models.TextBlock(text)}},
			Usage:      usage,
		},
	}
}

func toolTurn(toolUseID, toolName string, input map[string]any) []ModelChunk {
	return []ModelChunk{
		&ToolUseChunk{ToolUseID: toolUseID, ToolName: toolName, Input: input},
		&ModelResult{
			StopReason: StopReasonToolUse,
			Message:    models.Message{Role: models.RoleAssistant, Content: []models.ContentBlock{models.TextBlock("")}},
		},
	}
}

// drain collects the agent stream into events and its terminal.
func drain(t *testing.T, ch <-chan Event) ([]Event, *Result, error) {
	t.Helper()
	var evts []Event
	var result *Result
	var failure error
	deadline := time.After(5 * time.Second)
	for {
		select {
		case evt, ok := <-ch:
			if !ok {
				return evts, result, failure
			}
			switch e := evt.(type) {
			case *Result:
				result = e
			case *Error:
				failure = e.Err
			default:
				evts = append(evts, evt)
			}
		case <-deadline:
			t.Fatal("agent stream did not terminate")
		}
	}
}

func echoTool(name string) *Tool {
	return &Tool{
		Definition: ToolDefinition{Name: name, Description: "echoes its input", ParametersSchema: `{"type":"object"}`},
		Execute: func(_ context.Context, input map[string]any) (any, error) {
			return input["value"], nil
		},
	}
}

func TestAgent_SingleTextTurn(t *testing.T) {
	model := &scriptedModel{turns: [][]ModelChunk{
		textTurn("hello", models.TokenUsage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}),
	}}
	a := New("alpha", "You are concise.", model)

	evts, result, err := drain(t, a.Stream(context.Background(), Input{Blocks: []models.ContentBlock{models.TextBlock("hi")}}))
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, StopReasonEndTurn, result.StopReason)
	assert.Equal(t, "hello", result.Message.Content[0].Text)
	assert.Equal(t, 15, result.Metrics.AccumulatedUsage.TotalTokens)

	// Content and usage chunks are forwarded before the terminal.
	require.Len(t, evts, 2)
	assert.IsType(t, &ContentDelta{}, evts[0])
	assert.IsType(t, &UsageChunk{}, evts[1])

	// System prompt and user input reached the model.
	require.Len(t, model.requests, 1)
	assert.Equal(t, "You are concise.", model.requests[0].System)
	assert.Equal(t, "hi", model.requests[0].Messages[0].Content[0].Text)
}

func TestAgent_ToolLoop(t *testing.T) {
	model := &scriptedModel{turns: [][]ModelChunk{
		toolTurn("tu-1", "echo", map[string]any{"value": "pong"}),
		textTurn("done", models.TokenUsage{InputTokens: 8, OutputTokens: 4, TotalTokens: 12}),
	}}
	a := New("alpha", "", model)
	require.NoError(t, a.Tools().Register(echoTool("echo")))

	evts, result, err := drain(t, a.Stream(context.Background(), Input{Blocks: []models.ContentBlock{models.TextBlock("go")}}))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "done", result.Message.Content[0].Text)

	var toolResult *ToolResultEvent
	for _, evt := range evts {
		if tr, ok := evt.(*ToolResultEvent); ok {
			toolResult = tr
		}
	}
	require.NotNil(t, toolResult)
	assert.Equal(t, "tu-1", toolResult.ToolUseID)
	assert.Equal(t, "pong", toolResult.Value)
	assert.Empty(t, toolResult.Err)

	// Second model call sees the tool-result message appended.
	require.Len(t, model.requests, 2)
	assert.Len(t, model.requests[1].Messages, 3)
}

func TestAgent_UnknownToolReportedNotFatal(t *testing.T) {
	model := &scriptedModel{turns: [][]ModelChunk{
		toolTurn("tu-1", "missing", nil),
		textTurn("recovered", models.TokenUsage{TotalTokens: 5, InputTokens: 3, OutputTokens: 2}),
	}}
	a := New("alpha", "", model)

	evts, result, err := drain(t, a.Stream(context.Background(), Input{Blocks: []models.ContentBlock{models.TextBlock("go")}}))
	require.NoError(t, err)
	require.NotNil(t, result)

	var toolResult *ToolResultEvent
	for _, evt := range evts {
		if tr, ok := evt.(*ToolResultEvent); ok {
			toolResult = tr
		}
	}
	require.NotNil(t, toolResult)
	assert.Equal(t, ErrToolNotFound.Error(), toolResult.Err)
}

func TestAgent_ToolErrorReportedNotFatal(t *testing.T) {
	model := &scriptedModel{turns: [][]ModelChunk{
		toolTurn("tu-1", "flaky", nil),
		textTurn("recovered", models.TokenUsage{TotalTokens: 5, InputTokens: 3, OutputTokens: 2}),
	}}
	a := New("alpha", "", model)
	require.NoError(t, a.Tools().Register(&Tool{
		Definition: ToolDefinition{Name: "flaky"},
		Execute: func(context.Context, map[string]any) (any, error) {
			return nil, fmt.Errorf("backend unavailable")
		},
	}))

	evts, result, err := drain(t, a.Stream(context.Background(), Input{Blocks: []models.ContentBlock{models.TextBlock("go")}}))
	require.NoError(t, err)
	require.NotNil(t, result)

	var toolResult *ToolResultEvent
	for _, evt := range evts {
		if tr, ok := evt.(*ToolResultEvent); ok {
			toolResult = tr
		}
	}
	require.NotNil(t, toolResult)
	assert.Contains(t, toolResult.Err, "backend unavailable")
}

func TestAgent_InterruptingTool(t *testing.T) {
	model := &scriptedModel{turns: [][]ModelChunk{
		toolTurn("tu-1", "ask_human", map[string]any{"question": "proceed?"}),
	}}
	a := New("alpha", "", model)
	require.NoError(t, a.Tools().Register(&Tool{
		Definition: ToolDefinition{Name: "ask_human"},
		Execute: func(_ context.Context, input map[string]any) (any, error) {
			return models.Interrupt{Name: "approval", Value: input["question"]}, nil
		},
	}))

	_, result, err := drain(t, a.Stream(context.Background(), Input{Blocks: []models.ContentBlock{models.TextBlock("go")}}))
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, StopReasonInterrupt, result.StopReason)
	require.Len(t, result.Interrupts, 1)
	assert.Equal(t, "approval", result.Interrupts[0].Name)
	assert.NotEmpty(t, result.Interrupts[0].ID, "interrupt ids are assigned when missing")
}

func TestAgent_IncompleteModelStream(t *testing.T) {
	model := &scriptedModel{turns: [][]ModelChunk{
		{&ContentDelta{Text: "partial"}}, // closes without a terminal chunk
	}}
	a := New("alpha", "", model)

	_, result, err := drain(t, a.Stream(context.Background(), Input{Blocks: []models.ContentBlock{models.TextBlock("go")}}))
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrModelStreamIncomplete)
}

func TestAgent_ModelErrorChunk(t *testing.T) {
	model := &scriptedModel{turns: [][]ModelChunk{
		{&ModelError{Err: errors.New("throttled")}},
	}}
	a := New("alpha", "", model)

	_, result, err := drain(t, a.Stream(context.Background(), Input{Blocks: []models.ContentBlock{models.TextBlock("go")}}))
	assert.Nil(t, result)
	assert.ErrorContains(t, err, "throttled")
}

func TestAgent_SnapshotRestore(t *testing.T) {
	model := &scriptedModel{turns: [][]ModelChunk{
		textTurn("first", models.TokenUsage{TotalTokens: 3, InputTokens: 2, OutputTokens: 1}),
	}}
	a := New("alpha", "", model)
	a.State()["key"] = "before"

	snap := a.Snapshot()
	_, result, err := drain(t, a.Stream(context.Background(), Input{Blocks: []models.ContentBlock{models.TextBlock("go")}}))
	require.NoError(t, err)
	require.NotNil(t, result)
	a.State()["key"] = "after"

	a.Restore(snap)
	restored := a.Snapshot()
	assert.Empty(t, restored.Messages, "conversation rolls back to the snapshot")
	assert.Equal(t, "before", restored.State["key"])

	// The snapshot is independent of later mutations.
	a.State()["key"] = "mutated"
	assert.Equal(t, "before", snap.State["key"])
}

func TestAgent_ResumeInputCarriesResponses(t *testing.T) {
	model := &scriptedModel{turns: [][]ModelChunk{
		textTurn("resumed", models.TokenUsage{TotalTokens: 2, InputTokens: 1, OutputTokens: 1}),
	}}
	a := New("alpha", "", model)

	_, result, err := drain(t, a.Stream(context.Background(), Input{
		Responses: []models.InterruptResponse{{InterruptID: "int-1", Response: "yes"}},
	}))
	require.NoError(t, err)
	require.NotNil(t, result)

	first := model.requests[0].Messages[0]
	require.Len(t, first.Content, 1)
	assert.Equal(t, "int-1", first.Content[0].JSON["interruptId"])
	assert.Equal(t, "yes", first.Content[0].JSON["response"])
}
