// Package cleanup provides history retention services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/agentfleet/agentfleet/pkg/config"
	"github.com/agentfleet/agentfleet/pkg/services"
)

// Service periodically enforces retention policies:
//   - Soft-deletes terminal runs past the retention window
//   - Hard-deletes soft-deleted runs past the grace window
//
// All operations are idempotent and safe to run from multiple replicas.
type Service struct {
	config  config.RetentionConfig
	history *services.HistoryService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg config.RetentionConfig, history *services.HistoryService) *Service {
	return &Service{
		config:  cfg,
		history: history,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"run_retention_days", s.config.RunRetentionDays,
		"purge_grace_days", s.config.PurgeGraceDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.softDeleteOldRuns(ctx)
	s.purgeSoftDeletedRuns(ctx)
}

func (s *Service) softDeleteOldRuns(ctx context.Context) {
	count, err := s.history.SoftDeleteOldRuns(ctx, s.config.RunRetentionDays)
	if err != nil {
		slog.Error("Retention: soft-delete runs failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: soft-deleted old runs", "count", count)
	}
}

func (s *Service) purgeSoftDeletedRuns(ctx context.Context) {
	count, err := s.history.PurgeSoftDeletedRuns(ctx, s.config.PurgeGraceDays)
	if err != nil {
		slog.Error("Retention: purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged soft-deleted runs", "count", count)
	}
}
