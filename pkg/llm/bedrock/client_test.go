package bedrock

import (
	"testing"

	brtypes "github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfleet/agentfleet/pkg/agent"
	"github.com/agentfleet/agentfleet/pkg/models"
)

func TestBuildInput(t *testing.T) {
	c := New(nil, "us.anthropic.claude-sonnet-4-20250514-v1:0")
	input, err := c.buildInput(&agent.ModelRequest{
		System: "You are terse.",
		Messages: []models.Message{
			models.UserText("hello"),
			{Role: models.RoleAssistant, Content: []models.ContentBlock{models.TextBlock("hi")}},
		},
		Tools: []agent.ToolDefinition{{
			Name:             "lookup",
			Description:      "Look something up",
			ParametersSchema: `{"type":"object","properties":{"q":{"type":"string"}}}`,
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, "us.anthropic.claude-sonnet-4-20250514-v1:0", *input.ModelId)
	require.Len(t, input.System, 1)
	require.Len(t, input.Messages, 2)
	assert.Equal(t, brtypes.ConversationRoleUser, input.Messages[0].Role)
	assert.Equal(t, brtypes.ConversationRoleAssistant, input.Messages[1].Role)
	require.NotNil(t, input.ToolConfig)
	require.Len(t, input.ToolConfig.Tools, 1)
	spec := input.ToolConfig.Tools[0].(*brtypes.ToolMemberToolSpec)
	assert.Equal(t, "lookup", *spec.Value.Name)
}

func TestBuildInput_RejectsBadToolSchema(t *testing.T) {
	c := New(nil, "m")
	_, err := c.buildInput(&agent.ModelRequest{
		Tools: []agent.ToolDefinition{{Name: "broken", ParametersSchema: "{nope"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid parameters schema")
}

func TestRenderBlocks(t *testing.T) {
	text := renderBlocks([]models.ContentBlock{
		models.TextBlock("first"),
		{JSON: map[string]any{"interruptId": "int-1", "response": "yes"}},
	})
	assert.Contains(t, text, "first")
	assert.Contains(t, text, `"interruptId":"int-1"`)
}

func TestToolBufferInput(t *testing.T) {
	tb := &toolBuffer{name: "lookup", fragments: []string{`{"q":`, `"weather"}`}}
	assert.Equal(t, map[string]any{"q": "weather"}, tb.input())

	empty := &toolBuffer{name: "lookup"}
	assert.Empty(t, empty.input())

	garbled := &toolBuffer{name: "lookup", fragments: []string{"not json"}}
	assert.Equal(t, map[string]any{"raw": "not json"}, garbled.input())
}

func TestMapStopReason(t *testing.T) {
	assert.Equal(t, agent.StopReasonToolUse, mapStopReason(brtypes.StopReasonToolUse))
	assert.Equal(t, agent.StopReasonMaxTokens, mapStopReason(brtypes.StopReasonMaxTokens))
	assert.Equal(t, agent.StopReasonEndTurn, mapStopReason(brtypes.StopReasonEndTurn))
}
