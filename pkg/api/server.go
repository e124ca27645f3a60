// Package api exposes the HTTP surface: the SSE run endpoint, run history,
// telemetry, and health.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agentfleet/agentfleet/pkg/config"
	"github.com/agentfleet/agentfleet/pkg/database"
	"github.com/agentfleet/agentfleet/pkg/services"
	"github.com/agentfleet/agentfleet/pkg/session"
	"github.com/agentfleet/agentfleet/pkg/supervisor"
	"github.com/agentfleet/agentfleet/pkg/version"
)

// History list and stats query bounds.
const (
	maxHistoryLimit    = 200
	defaultHistoryDays = 30
	maxHistoryDays     = 365
)

// Server wires the HTTP handlers to the run driver and services.
type Server struct {
	cfg       config.Config
	db        *database.Client
	history   *services.HistoryService
	telemetry *services.TelemetryService
	sessions  session.Store
	driver    *supervisor.Driver
	models    ModelFactory
}

// NewServer creates the API server.
func NewServer(
	cfg config.Config,
	db *database.Client,
	history *services.HistoryService,
	telemetry *services.TelemetryService,
	sessions session.Store,
	driver *supervisor.Driver,
	models ModelFactory,
) *Server {
	return &Server{
		cfg:       cfg,
		db:        db,
		history:   history,
		telemetry: telemetry,
		sessions:  sessions,
		driver:    driver,
		models:    models,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")
	api.POST("/run", s.handleRun)
	api.GET("/history", s.handleListHistory)
	api.GET("/history/stats", s.handleHistoryStats)
	api.GET("/history/:runId", s.handleRunDetail)
	api.GET("/telemetry", s.handleTelemetry)
	api.GET("/health", s.handleHealth)
	return router
}

func (s *Server) handleListHistory(c *gin.Context) {
	filters := services.RunFilters{Limit: 50}

	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 || limit > maxHistoryLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 200"})
			return
		}
		filters.Limit = limit
	}
	if v := c.Query("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be non-negative"})
			return
		}
		filters.Offset = offset
	}
	filters.AnomaliesOnly = c.Query("anomaliesOnly") == "true"

	switch sort := c.Query("sort"); sort {
	case "", "recent", "risk":
		filters.Sort = sort
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "sort must be recent or risk"})
		return
	}

	resp, err := s.history.ListRuns(c.Request.Context(), filters)
	if err != nil {
		s.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleRunDetail(c *gin.Context) {
	runID := c.Param("runId")
	run, err := s.history.GetRunDetail(c.Request.Context(), runID)
	if err != nil {
		s.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}

func (s *Server) handleHistoryStats(c *gin.Context) {
	days := defaultHistoryDays
	if v := c.Query("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > maxHistoryDays {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be between 1 and 365"})
			return
		}
		days = parsed
	}

	stats, err := s.history.GetStats(c.Request.Context(), days)
	if err != nil {
		s.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleTelemetry(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"entries": s.telemetry.Entries()})
}

func (s *Server) handleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"version":  version.GitCommit,
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"version":  version.GitCommit,
		"database": dbHealth,
	})
}

// serviceError maps service-layer errors to HTTP responses.
func (s *Server) serviceError(c *gin.Context, err error) {
	if services.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
		return
	}
	slog.Error("Unexpected service error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
