// Agentfleet server — multi-agent orchestration runtime with an SSE run
// endpoint, run history in PostgreSQL, and in-memory telemetry.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/agentfleet/agentfleet/pkg/agent"
	"github.com/agentfleet/agentfleet/pkg/api"
	"github.com/agentfleet/agentfleet/pkg/cleanup"
	"github.com/agentfleet/agentfleet/pkg/config"
	"github.com/agentfleet/agentfleet/pkg/database"
	"github.com/agentfleet/agentfleet/pkg/llm/bedrock"
	"github.com/agentfleet/agentfleet/pkg/services"
	"github.com/agentfleet/agentfleet/pkg/session"
	"github.com/agentfleet/agentfleet/pkg/supervisor"
	"github.com/agentfleet/agentfleet/pkg/version"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	cfg := config.Load()
	slog.Info("Starting agentfleet",
		"version", version.GitCommit,
		"port", cfg.Port,
		"aws_region", cfg.AWSRegion)

	ctx := context.Background()

	dbConfig, err := database.LoadConfig()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	history := services.NewHistoryService(dbClient.Client)
	telemetry := services.NewTelemetryService(dbClient.Client)
	tracerProvider := telemetry.NewTracerProvider()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			slog.Error("Tracer provider shutdown error", "error", err)
		}
	}()

	// Runs left in `running` by a previous process are unrecoverable; mark
	// them interrupted before accepting new work.
	recovered, err := history.RecoverRunningRuns(ctx)
	if err != nil {
		slog.Error("Startup run recovery failed", "error", err)
		// Non-fatal — continue
	} else if recovered > 0 {
		slog.Info("Recovered stale running runs", "count", recovered)
	}

	sessions, err := session.NewFileStore(cfg.SessionDir)
	if err != nil {
		slog.Error("Failed to open session store", "dir", cfg.SessionDir, "error", err)
		os.Exit(1)
	}

	driver := supervisor.NewDriver(cfg, history, sessions, tracerProvider.Tracer("agentfleet/supervisor"))

	modelFactory := func(modelID string) agent.Model {
		return bedrock.NewForRegion(cfg.AWSRegion, modelID)
	}

	cleanupService := cleanup.NewService(config.LoadRetentionConfig(), history)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	server := api.NewServer(cfg, dbClient, history, telemetry, sessions, driver, modelFactory)
	httpServer := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.Port),
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
