package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfleet/agentfleet/pkg/agent"
	"github.com/agentfleet/agentfleet/pkg/config"
	"github.com/agentfleet/agentfleet/pkg/models"
	"github.com/agentfleet/agentfleet/pkg/services"
	"github.com/agentfleet/agentfleet/pkg/session"
	"github.com/agentfleet/agentfleet/pkg/supervisor"
	testdb "github.com/agentfleet/agentfleet/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fixedModel answers every request with one text turn.
type fixedModel struct {
	text  string
	usage models.TokenUsage
}

func (m *fixedModel) ModelID() string { return "test-model" }

func (m *fixedModel) Stream(_ context.Context, _ *agent.ModelRequest) (<-chan agent.ModelChunk, error) {
	out := make(chan agent.ModelChunk, 3)
	out <- &agent.ContentDelta{Text: m.text}
	out <- &agent.UsageChunk{Usage: m.usage}
	out <- &agent.ModelResult{
		StopReason: agent.StopReasonEndTurn,
		Message:    models.Message{Role: models.RoleAssistant, Content: []models.ContentBlock{models.TextBlock(m.text)}},
		Usage:      m.usage,
	}
	close(out)
	return out, nil
}

func newTestServer(t *testing.T, model agent.Model) (*Server, *services.HistoryService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	history := services.NewHistoryService(client.Client)
	telemetry := services.NewTelemetryService(client.Client)
	sessions, err := session.NewFileStore(t.TempDir())
	require.NoError(t, err)

	cfg := config.Config{
		Port:                            0,
		RunWallClock:                    10 * time.Second,
		StreamIdle:                      5 * time.Second,
		MaxRunTotalTokens:               100_000,
		MaxToolUsesPerRun:               24,
		MaxToolUsesPerTool:              8,
		MaxPersistedStreamEventsPerNode: 120,
	}
	driver := supervisor.NewDriver(cfg, history, sessions, nil)
	factory := func(string) agent.Model { return model }
	return NewServer(cfg, client, history, telemetry, sessions, driver, factory), history
}

type sseRecord struct {
	event string
	data  map[string]any
}

// parseSSE splits a text/event-stream body into records.
func parseSSE(t *testing.T, body string) []sseRecord {
	t.Helper()
	var records []sseRecord
	for _, chunk := range strings.Split(body, "\n\n") {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		var rec sseRecord
		for _, line := range strings.Split(chunk, "\n") {
			switch {
			case strings.HasPrefix(line, "event: "):
				rec.event = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				payload := strings.TrimPrefix(line, "data: ")
				require.NoError(t, json.Unmarshal([]byte(payload), &rec.data))
			}
		}
		require.NotEmpty(t, rec.event, "record without event line: %q", chunk)
		records = append(records, rec)
	}
	return records
}

func postRun(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/run", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleRun_SingleHappyPath(t *testing.T) {
	model := &fixedModel{text: "the answer", usage: models.TokenUsage{InputTokens: 12, OutputTokens: 6, TotalTokens: 18}}
	server, history := newTestServer(t, model)
	router := server.Router()

	w := postRun(t, router, RunRequest{
		Mode:   "single",
		Prompt: "answer the question",
		Agents: []AgentRequest{{Name: "writer", SystemPrompt: "Answer briefly."}},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))

	records := parseSSE(t, w.Body.String())
	require.NotEmpty(t, records)

	var types []string
	for _, rec := range records {
		types = append(types, rec.event)
	}
	assert.Contains(t, types, "multiAgentNodeStartEvent")
	assert.Contains(t, types, "multiAgentNodeInputEvent")
	assert.Contains(t, types, "multiAgentNodeStreamEvent")
	assert.Contains(t, types, "multiAgentNodeStopEvent")
	assert.Contains(t, types, "multiAgentResultEvent")

	last := records[len(records)-1]
	require.Equal(t, "done", last.event)
	assert.Equal(t, "completed", last.data["status"])
	assert.Equal(t, "the answer", last.data["text"])
	usage := last.data["usage"].(map[string]any)
	assert.Equal(t, float64(18), usage["totalTokens"])

	runID := last.data["runId"].(string)
	run, err := history.GetRunDetail(context.Background(), runID)
	require.NoError(t, err)
	assert.Equal(t, "completed", string(run.Status))
}

func TestHandleRun_SwarmHandoffOrdering(t *testing.T) {
	// alpha hands off to beta, which answers directly.
	alphaTurns := &handoffThenAnswerModel{target: "beta"}
	server, _ := newTestServer(t, alphaTurns)
	router := server.Router()

	w := postRun(t, router, RunRequest{
		Mode:   "swarm",
		Prompt: "collaborate on this",
		Agents: []AgentRequest{
			{Name: "alpha", SystemPrompt: "Route work."},
			{Name: "beta", SystemPrompt: "Do work."},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	records := parseSSE(t, w.Body.String())
	var alphaStop, handoff, betaStart = -1, -1, -1
	for i, rec := range records {
		switch rec.event {
		case "multiAgentNodeStopEvent":
			if rec.data["nodeId"] == "alpha" && alphaStop < 0 {
				alphaStop = i
			}
		case "multiAgentHandoffEvent":
			handoff = i
		case "multiAgentNodeStartEvent":
			if rec.data["nodeId"] == "beta" {
				betaStart = i
			}
		}
	}
	require.GreaterOrEqual(t, alphaStop, 0, "alpha stop event missing")
	require.GreaterOrEqual(t, handoff, 0, "handoff event missing")
	require.GreaterOrEqual(t, betaStart, 0, "beta start event missing")
	assert.Less(t, alphaStop, handoff)
	assert.Less(t, handoff, betaStart)

	last := records[len(records)-1]
	require.Equal(t, "done", last.event)
	assert.Equal(t, "completed", last.data["status"])
	assert.Equal(t, []any{"alpha", "beta"}, last.data["nodeHistory"])
}

// handoffThenAnswerModel requests a handoff on its first turn and answers
// plainly on all later turns.
type handoffThenAnswerModel struct {
	target string
	calls  int
}

func (m *handoffThenAnswerModel) ModelID() string { return "test-model" }

func (m *handoffThenAnswerModel) Stream(_ context.Context, _ *agent.ModelRequest) (<-chan agent.ModelChunk, error) {
	m.calls++
	out := make(chan agent.ModelChunk, 3)
	if m.calls == 1 {
		out <- &agent.ToolUseChunk{
			ToolUseID: "tu-handoff",
			ToolName:  "handoff_to_agent",
			Input:     map[string]any{"agent_name": m.target, "message": "over to you"},
		}
		out <- &agent.ModelResult{
			StopReason: agent.StopReasonToolUse,
			Message:    models.Message{Role: models.RoleAssistant, Content: []models.ContentBlock{models.TextBlock("")}},
		}
	} else {
		usage := models.TokenUsage{InputTokens: 5, OutputTokens: 3, TotalTokens: 8}
		out <- &agent.UsageChunk{Usage: usage}
		out <- &agent.ModelResult{
			StopReason: agent.StopReasonEndTurn,
			Message:    models.Message{Role: models.RoleAssistant, Content: []models.ContentBlock{models.TextBlock("handled")}},
			Usage:      usage,
		}
	}
	close(out)
	return out, nil
}

func TestHandleRun_ValidationRejected(t *testing.T) {
	server, _ := newTestServer(t, &fixedModel{text: "x"})
	router := server.Router()

	w := postRun(t, router, RunRequest{Mode: "teleport", Prompt: "p", Agents: []AgentRequest{{Name: "a"}}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "mode must be one of")
}

func TestHistoryEndpoints(t *testing.T) {
	model := &fixedModel{text: "done", usage: models.TokenUsage{InputTokens: 4, OutputTokens: 2, TotalTokens: 6}}
	server, _ := newTestServer(t, model)
	router := server.Router()

	w := postRun(t, router, RunRequest{
		Mode:   "single",
		Prompt: "do the thing",
		Agents: []AgentRequest{{Name: "writer"}},
	})
	require.Equal(t, http.StatusOK, w.Code)
	records := parseSSE(t, w.Body.String())
	runID := records[len(records)-1].data["runId"].(string)

	t.Run("list", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var resp services.RunListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Runs)
	})

	t.Run("detail", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/history/"+runID, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), runID)
	})

	t.Run("detail not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/history/no-such-run", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("stats", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/history/stats?days=7", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("stats rejects out-of-range days", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/history/stats?days=999", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("list rejects bad limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/history?limit=5000", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHealthAndTelemetryEndpoints(t *testing.T) {
	server, _ := newTestServer(t, &fixedModel{text: "x"})
	router := server.Router()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")

	req = httptest.NewRequest(http.MethodGet, "/api/telemetry", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
