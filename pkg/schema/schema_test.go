package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValid(t *testing.T) {
	assert.True(t, Valid(ArticleSummaryV1))
	assert.True(t, Valid(OrchestrationDecisionV1))
	assert.True(t, Valid(AgentReviewVerdictV1))
	assert.False(t, Valid("made_up_schema"))
	assert.False(t, Valid(""))
}

func TestValidate_ArticleSummary(t *testing.T) {
	good := map[string]any{
		"title":     "Postmortem",
		"summary":   "The cache fell over.",
		"keyPoints": []any{"cache", "timeout"},
	}
	require.NoError(t, Validate(ArticleSummaryV1, good))

	missing := map[string]any{"title": "Postmortem"}
	require.Error(t, Validate(ArticleSummaryV1, missing))

	extra := map[string]any{
		"title":     "Postmortem",
		"summary":   "x",
		"keyPoints": []any{"y"},
		"author":    "nobody",
	}
	require.Error(t, Validate(ArticleSummaryV1, extra))
}

func TestValidate_AgentReviewVerdict(t *testing.T) {
	good := map[string]any{
		"verdict":   "pass",
		"score":     0.9,
		"rationale": "clean run",
	}
	require.NoError(t, Validate(AgentReviewVerdictV1, good))

	badVerdict := map[string]any{"verdict": "maybe", "rationale": "x"}
	require.Error(t, Validate(AgentReviewVerdictV1, badVerdict))
}

func TestExtractStructured(t *testing.T) {
	text := "Here is the verdict:\n```json\n{\"verdict\":\"fail\",\"rationale\":\"budget blown\"}\n```\n"
	payload, err := ExtractStructured(AgentReviewVerdictV1, text)
	require.NoError(t, err)
	assert.Equal(t, "fail", payload["verdict"])

	_, err = ExtractStructured(AgentReviewVerdictV1, "no json here")
	require.Error(t, err)

	_, err = ExtractStructured(AgentReviewVerdictV1, "{\"verdict\":\"fail\"}")
	require.Error(t, err, "missing rationale must fail validation")
}
