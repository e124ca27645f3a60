// Package bedrock adapts the AWS Bedrock ConverseStream API to the agent
// Model capability.
package bedrock

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/document"
	brtypes "github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"

	"github.com/agentfleet/agentfleet/pkg/agent"
	"github.com/agentfleet/agentfleet/pkg/models"
)

// defaultMaxTokens caps completions when the request does not.
const defaultMaxTokens = 4096

// StreamAPI is the subset of *bedrockruntime.Client the adapter needs;
// narrowed for test fakes.
type StreamAPI interface {
	ConverseStream(ctx context.Context, params *bedrockruntime.ConverseStreamInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseStreamOutput, error)
}

// Client implements agent.Model over Bedrock ConverseStream.
type Client struct {
	runtime   StreamAPI
	modelID   string
	maxTokens int
}

// New wraps a Bedrock runtime client for one model id. The id may carry a
// region routing prefix; it is sent to the provider verbatim.
func New(runtime StreamAPI, modelID string) *Client {
	return &Client{runtime: runtime, modelID: modelID, maxTokens: defaultMaxTokens}
}

// NewForRegion builds a runtime client for the region and wraps it.
func NewForRegion(region, modelID string) *Client {
	return New(bedrockruntime.New(bedrockruntime.Options{Region: region}), modelID)
}

// ModelID returns the bound provider model id.
func (c *Client) ModelID() string { return c.modelID }

// Stream invokes ConverseStream and adapts its event stream to model chunks.
// A provider stream that ends without a message-stop closes the channel
// without a terminal chunk, which the agent runtime reports as incomplete.
func (c *Client) Stream(ctx context.Context, req *agent.ModelRequest) (<-chan agent.ModelChunk, error) {
	input, err := c.buildInput(req)
	if err != nil {
		return nil, err
	}
	out, err := c.runtime.ConverseStream(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("bedrock converse stream: %w", err)
	}

	chunks := make(chan agent.ModelChunk, 16)
	go c.consume(ctx, out.GetStream(), chunks)
	return chunks, nil
}

func (c *Client) buildInput(req *agent.ModelRequest) (*bedrockruntime.ConverseStreamInput, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = c.maxTokens
	}
	input := &bedrockruntime.ConverseStreamInput{
		ModelId:  aws.String(c.modelID),
		Messages: encodeMessages(req.Messages),
		InferenceConfig: &brtypes.InferenceConfiguration{
			MaxTokens: aws.Int32(int32(maxTokens)),
		},
	}
	if req.System != "" {
		input.System = []brtypes.SystemContentBlock{
			&brtypes.SystemContentBlockMemberText{Value: req.System},
		}
	}
	if len(req.Tools) > 0 {
		toolConfig, err := encodeTools(req.Tools)
		if err != nil {
			return nil, err
		}
		input.ToolConfig = toolConfig
	}
	return input, nil
}

func encodeMessages(msgs []models.Message) []brtypes.Message {
	out := make([]brtypes.Message, 0, len(msgs))
	for _, m := range msgs {
		role := brtypes.ConversationRoleUser
		if m.Role == models.RoleAssistant {
			role = brtypes.ConversationRoleAssistant
		}
		text := renderBlocks(m.Content)
		if text == "" {
			text = " "
		}
		out = append(out, brtypes.Message{
			Role:    role,
			Content: []brtypes.ContentBlock{&brtypes.ContentBlockMemberText{Value: text}},
		})
	}
	return out
}

// renderBlocks flattens content blocks to text; structured blocks are sent
// as JSON.
func renderBlocks(blocks []models.ContentBlock) string {
	var parts []string
	for _, block := range blocks {
		switch {
		case block.Text != "":
			parts = append(parts, block.Text)
		case block.JSON != nil:
			if raw, err := json.Marshal(block.JSON); err == nil {
				parts = append(parts, string(raw))
			}
		}
	}
	return strings.Join(parts, "\n")
}

func encodeTools(defs []agent.ToolDefinition) (*brtypes.ToolConfiguration, error) {
	tools := make([]brtypes.Tool, 0, len(defs))
	for _, def := range defs {
		schema := map[string]any{"type": "object"}
		if def.ParametersSchema != "" {
			if err := json.Unmarshal([]byte(def.ParametersSchema), &schema); err != nil {
				return nil, fmt.Errorf("tool %s: invalid parameters schema: %w", def.Name, err)
			}
		}
		spec := brtypes.ToolSpecification{
			Name:        aws.String(def.Name),
			InputSchema: &brtypes.ToolInputSchemaMemberJson{Value: document.NewLazyDocument(schema)},
		}
		if def.Description != "" {
			spec.Description = aws.String(def.Description)
		}
		tools = append(tools, &brtypes.ToolMemberToolSpec{Value: spec})
	}
	return &brtypes.ToolConfiguration{Tools: tools}, nil
}

// toolBuffer accumulates a tool-use block's streamed input fragments.
type toolBuffer struct {
	id        string
	name      string
	fragments []string
}

func (tb *toolBuffer) input() map[string]any {
	joined := strings.Join(tb.fragments, "")
	if strings.TrimSpace(joined) == "" {
		return map[string]any{}
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(joined), &out); err != nil {
		slog.Warn("Tool input fragment did not parse as JSON", "tool", tb.name, "error", err)
		return map[string]any{"raw": joined}
	}
	return out
}

func (c *Client) consume(ctx context.Context, stream *bedrockruntime.ConverseStreamEventStream, out chan<- agent.ModelChunk) {
	defer close(out)
	defer func() { _ = stream.Close() }()

	var (
		text       strings.Builder
		usage      models.TokenUsage
		stopReason agent.StopReason
		sawStop    bool
		toolBlocks = make(map[int32]*toolBuffer)
	)

	emit := func(chunk agent.ModelChunk) bool {
		select {
		case out <- chunk:
			return true
		case <-ctx.Done():
			return false
		}
	}

	for {
		select {
		case <-ctx.Done():
			emit(&agent.ModelError{Err: ctx.Err()})
			return
		case event, ok := <-stream.Events():
			if !ok {
				if err := stream.Err(); err != nil {
					emit(&agent.ModelError{Err: fmt.Errorf("bedrock stream: %w", err)})
					return
				}
				if !sawStop {
					// Channel closes without a terminal chunk; the agent
					// runtime maps this to a model-stream-incomplete error.
					return
				}
				emit(&agent.ModelResult{
					StopReason: stopReason,
					Message: models.Message{
						Role:    models.RoleAssistant,
						Content: []models.ContentBlock{models.TextBlock(text.String())},
					},
					Usage: usage,
				})
				return
			}

			switch ev := event.(type) {
			case *brtypes.ConverseStreamOutputMemberContentBlockStart:
				if start, ok := ev.Value.Start.(*brtypes.ContentBlockStartMemberToolUse); ok {
					tb := &toolBuffer{}
					if start.Value.ToolUseId != nil {
						tb.id = *start.Value.ToolUseId
					}
					if start.Value.Name != nil {
						tb.name = *start.Value.Name
					}
					toolBlocks[indexOf(ev.Value.ContentBlockIndex)] = tb
				}

			case *brtypes.ConverseStreamOutputMemberContentBlockDelta:
				idx := indexOf(ev.Value.ContentBlockIndex)
				switch delta := ev.Value.Delta.(type) {
				case *brtypes.ContentBlockDeltaMemberText:
					text.WriteString(delta.Value)
					if !emit(&agent.ContentDelta{Text: delta.Value}) {
						return
					}
				case *brtypes.ContentBlockDeltaMemberToolUse:
					if tb := toolBlocks[idx]; tb != nil && delta.Value.Input != nil {
						tb.fragments = append(tb.fragments, *delta.Value.Input)
					}
				}

			case *brtypes.ConverseStreamOutputMemberContentBlockStop:
				idx := indexOf(ev.Value.ContentBlockIndex)
				if tb := toolBlocks[idx]; tb != nil {
					delete(toolBlocks, idx)
					if !emit(&agent.ToolUseChunk{ToolUseID: tb.id, ToolName: tb.name, Input: tb.input()}) {
						return
					}
				}

			case *brtypes.ConverseStreamOutputMemberMessageStop:
				sawStop = true
				stopReason = mapStopReason(ev.Value.StopReason)

			case *brtypes.ConverseStreamOutputMemberMetadata:
				if ev.Value.Usage == nil {
					continue
				}
				usage = models.TokenUsage{
					InputTokens:  derefInt32(ev.Value.Usage.InputTokens),
					OutputTokens: derefInt32(ev.Value.Usage.OutputTokens),
					TotalTokens:  derefInt32(ev.Value.Usage.TotalTokens),
				}
				if usage.TotalTokens == 0 {
					usage.TotalTokens = usage.InputTokens + usage.OutputTokens
				}
				if !emit(&agent.UsageChunk{Usage: usage}) {
					return
				}
			}
		}
	}
}

func mapStopReason(reason brtypes.StopReason) agent.StopReason {
	switch reason {
	case brtypes.StopReasonToolUse:
		return agent.StopReasonToolUse
	case brtypes.StopReasonMaxTokens:
		return agent.StopReasonMaxTokens
	default:
		return agent.StopReasonEndTurn
	}
}

func indexOf(idx *int32) int32 {
	if idx == nil {
		return 0
	}
	return *idx
}

func derefInt32(v *int32) int {
	if v == nil {
		return 0
	}
	return int(*v)
}
