package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentfleet/agentfleet/pkg/services"
)

// handleRun handles POST /api/run. The response is an SSE stream: the
// orchestrator's events followed by exactly one terminal done or error
// record. Validation failures are plain JSON errors before the stream
// starts.
func (s *Server) handleRun(c *gin.Context) {
	var req RunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params, err := buildRunParams(c.Request.Context(), s.cfg, s.models, s.sessions, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The consumer is set up before the run row exists; a setup failure
	// here must not strand a running row in history.
	consumer, err := newSSEConsumer(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	agentNames := make([]string, len(req.Agents))
	for i, a := range req.Agents {
		agentNames[i] = a.Name
	}
	if _, err := s.history.StartRun(c.Request.Context(), services.StartRunParams{
		RunID:                  params.RunID,
		Mode:                   req.Mode,
		Prompt:                 req.Prompt,
		SessionID:              req.SessionID,
		PresetKey:              req.PresetKey,
		StructuredOutputSchema: req.StructuredOutputSchema,
		Agents:                 agentNames,
	}); err != nil {
		s.serviceError(c, err)
		return
	}

	s.driver.Drive(c.Request.Context(), params, consumer)
}
