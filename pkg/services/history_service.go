package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agentfleet/agentfleet/ent"
	"github.com/agentfleet/agentfleet/ent/runevent"
	"github.com/agentfleet/agentfleet/ent/runnodemetric"
	"github.com/agentfleet/agentfleet/ent/runsummary"
)

// RecoveryMessage is written to runs found still running at process start.
const RecoveryMessage = "Run interrupted by server restart"

// HistoryService persists run lifecycle records. Terminal transitions are
// idempotent: they only touch rows still in running, so replaying a
// finalization is a no-op.
type HistoryService struct {
	client *ent.Client
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(client *ent.Client) *HistoryService {
	return &HistoryService{client: client}
}

// StartRunParams describes a run at admission time.
type StartRunParams struct {
	RunID                  string
	Mode                   string
	Prompt                 string
	SessionID              string
	PresetKey              string
	StructuredOutputSchema string
	Agents                 []string
}

// RunOutcome carries everything known about a run at finalization.
type RunOutcome struct {
	ResultText         string
	StructuredOutput   map[string]any
	ModelID            string
	NodeHistory        []string
	ExecutionOrder     []string
	InputTokens        int
	OutputTokens       int
	TotalTokens        int
	ToolUseCount       int
	NodeStartCount     int
	ExecutionTimeMs    int64
	EstimatedCostUSD   float64
	RiskScore          float64
	Anomaly            bool
	ClientDisconnected bool
}

// StartRun inserts the running row for a new run.
func (s *HistoryService) StartRun(httpCtx context.Context, params StartRunParams) (*ent.RunSummary, error) {
	if params.RunID == "" {
		return nil, NewValidationError("run_id", "required")
	}
	if params.Prompt == "" {
		return nil, NewValidationError("prompt", "required")
	}

	// Critical write: do not tie it to the request context.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.RunSummary.Create().
		SetID(params.RunID).
		SetMode(runsummary.Mode(params.Mode)).
		SetStatus(runsummary.StatusRunning).
		SetPrompt(params.Prompt).
		SetAgents(params.Agents)

	if params.SessionID != "" {
		builder.SetSessionID(params.SessionID)
	}
	if params.PresetKey != "" {
		builder.SetPresetKey(params.PresetKey)
	}
	if params.StructuredOutputSchema != "" {
		builder.SetStructuredOutputSchema(params.StructuredOutputSchema)
	}

	summary, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create run summary: %w", err)
	}
	return summary, nil
}

// CompleteRun finalizes a successful run with its full outcome.
func (s *HistoryService) CompleteRun(ctx context.Context, runID string, outcome RunOutcome) error {
	update := s.client.RunSummary.Update().
		Where(runsummary.IDEQ(runID), runsummary.StatusEQ(runsummary.StatusRunning)).
		SetStatus(runsummary.StatusCompleted).
		SetResultText(outcome.ResultText).
		SetNodeHistory(outcome.NodeHistory).
		SetExecutionOrder(outcome.ExecutionOrder).
		SetInputTokens(outcome.InputTokens).
		SetOutputTokens(outcome.OutputTokens).
		SetTotalTokens(outcome.TotalTokens).
		SetToolUseCount(outcome.ToolUseCount).
		SetNodeStartCount(outcome.NodeStartCount).
		SetExecutionTimeMs(outcome.ExecutionTimeMs).
		SetEstimatedCostUsd(outcome.EstimatedCostUSD).
		SetRiskScore(outcome.RiskScore).
		SetAnomaly(outcome.Anomaly).
		SetClientDisconnected(outcome.ClientDisconnected).
		SetCompletedAt(time.Now())

	if outcome.StructuredOutput != nil {
		update.SetStructuredOutput(outcome.StructuredOutput)
	}
	if outcome.ModelID != "" {
		update.SetModelID(outcome.ModelID)
	}

	return s.finalize(ctx, runID, update)
}

// FailRun finalizes a failed run with its error code and outcome.
func (s *HistoryService) FailRun(ctx context.Context, runID, code, message string, outcome RunOutcome) error {
	update := s.client.RunSummary.Update().
		Where(runsummary.IDEQ(runID), runsummary.StatusEQ(runsummary.StatusRunning)).
		SetStatus(runsummary.StatusFailed).
		SetErrorMessage(message).
		SetNodeHistory(outcome.NodeHistory).
		SetExecutionOrder(outcome.ExecutionOrder).
		SetInputTokens(outcome.InputTokens).
		SetOutputTokens(outcome.OutputTokens).
		SetTotalTokens(outcome.TotalTokens).
		SetToolUseCount(outcome.ToolUseCount).
		SetNodeStartCount(outcome.NodeStartCount).
		SetExecutionTimeMs(outcome.ExecutionTimeMs).
		SetEstimatedCostUsd(outcome.EstimatedCostUSD).
		SetRiskScore(outcome.RiskScore).
		SetAnomaly(outcome.Anomaly).
		SetClientDisconnected(outcome.ClientDisconnected).
		SetCompletedAt(time.Now())

	if code != "" {
		update.SetErrorCode(code)
	}
	if outcome.ModelID != "" {
		update.SetModelID(outcome.ModelID)
	}

	return s.finalize(ctx, runID, update)
}

// MarkRunCompletedMinimal is the fallback when CompleteRun hits a storage
// error: it records only the terminal status.
func (s *HistoryService) MarkRunCompletedMinimal(ctx context.Context, runID string) error {
	update := s.client.RunSummary.Update().
		Where(runsummary.IDEQ(runID), runsummary.StatusEQ(runsummary.StatusRunning)).
		SetStatus(runsummary.StatusCompleted).
		SetCompletedAt(time.Now())
	return s.finalize(ctx, runID, update)
}

// MarkRunFailedMinimal is the fallback when FailRun hits a storage error.
func (s *HistoryService) MarkRunFailedMinimal(ctx context.Context, runID, message string) error {
	update := s.client.RunSummary.Update().
		Where(runsummary.IDEQ(runID), runsummary.StatusEQ(runsummary.StatusRunning)).
		SetStatus(runsummary.StatusFailed).
		SetErrorMessage(message).
		SetCompletedAt(time.Now())
	return s.finalize(ctx, runID, update)
}

// InterruptRun marks a run interrupted: either the orchestration paused on
// open interrupts, or the consumer disconnected before the run finished.
func (s *HistoryService) InterruptRun(ctx context.Context, runID, code, reason string, clientDisconnected bool) error {
	update := s.client.RunSummary.Update().
		Where(runsummary.IDEQ(runID), runsummary.StatusEQ(runsummary.StatusRunning)).
		SetStatus(runsummary.StatusInterrupted).
		SetErrorMessage(reason).
		SetClientDisconnected(clientDisconnected).
		SetCompletedAt(time.Now())
	if code != "" {
		update.SetErrorCode(code)
	}
	return s.finalize(ctx, runID, update)
}

// finalize applies a guarded terminal update. Zero affected rows means the
// run already left running, which counts as success for idempotency.
func (s *HistoryService) finalize(ctx context.Context, runID string, update *ent.RunSummaryUpdate) error {
	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to finalize run %s: %w", runID, err)
	}
	if n == 0 {
		exists, err := s.client.RunSummary.Query().Where(runsummary.IDEQ(runID)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check run %s: %w", runID, err)
		}
		if !exists {
			return ErrNotFound
		}
		slog.Debug("Run already finalized, skipping terminal transition", "run_id", runID)
	}
	return nil
}

// RecoverRunningRuns transitions all runs still marked running to
// interrupted. Called once at process start.
func (s *HistoryService) RecoverRunningRuns(ctx context.Context) (int, error) {
	n, err := s.client.RunSummary.Update().
		Where(runsummary.StatusEQ(runsummary.StatusRunning)).
		SetStatus(runsummary.StatusInterrupted).
		SetErrorMessage(RecoveryMessage).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to recover running runs: %w", err)
	}
	if n > 0 {
		slog.Info("Recovered orphaned runs from previous process", "count", n)
	}
	return n, nil
}

// AppendEvent persists one captured event in the run's append log.
func (s *HistoryService) AppendEvent(ctx context.Context, runID string, sequence int, eventType, nodeID string, payload map[string]any) error {
	builder := s.client.RunEvent.Create().
		SetRunID(runID).
		SetSequence(sequence).
		SetEventType(eventType)
	if nodeID != "" {
		builder.SetNodeID(nodeID)
	}
	if payload != nil {
		builder.SetPayload(payload)
	}
	if _, err := builder.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to append event %d for run %s: %w", sequence, runID, err)
	}
	return nil
}

// NodeMetric is the per-node usage written at finalization.
type NodeMetric struct {
	NodeID           string
	Status           string
	InputTokens      int
	OutputTokens     int
	TotalTokens      int
	ExecutionCount   int
	StreamEventCount int
	CaptureCapped    bool
	DurationMs       int64
}

// WriteNodeMetrics upserts the per-node metric rows for a run.
func (s *HistoryService) WriteNodeMetrics(ctx context.Context, runID string, metrics []NodeMetric) error {
	for _, m := range metrics {
		err := s.client.RunNodeMetric.Create().
			SetRunID(runID).
			SetNodeID(m.NodeID).
			SetStatus(m.Status).
			SetInputTokens(m.InputTokens).
			SetOutputTokens(m.OutputTokens).
			SetTotalTokens(m.TotalTokens).
			SetExecutionCount(m.ExecutionCount).
			SetStreamEventCount(m.StreamEventCount).
			SetCaptureCapped(m.CaptureCapped).
			SetDurationMs(m.DurationMs).
			OnConflictColumns(runnodemetric.FieldRunID, runnodemetric.FieldNodeID).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to write node metric %s/%s: %w", runID, m.NodeID, err)
		}
	}
	return nil
}

// SoftDeleteOldRuns soft deletes terminal runs older than the retention
// period. Running rows are never touched; recovery owns those.
func (s *HistoryService) SoftDeleteOldRuns(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}
	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.client.RunSummary.Update().
		Where(
			runsummary.StatusNEQ(runsummary.StatusRunning),
			runsummary.CompletedAtLT(cutoff),
			runsummary.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft delete runs: %w", err)
	}
	return n, nil
}

// PurgeSoftDeletedRuns hard deletes runs whose soft-delete marker is older
// than the grace period. Events, node metrics, and telemetry go with them
// via the cascading foreign keys.
func (s *HistoryService) PurgeSoftDeletedRuns(ctx context.Context, graceDays int) (int, error) {
	if graceDays <= 0 {
		return 0, fmt.Errorf("grace_days must be positive, got %d", graceDays)
	}
	cutoff := time.Now().Add(-time.Duration(graceDays) * 24 * time.Hour)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.client.RunSummary.Delete().
		Where(
			runsummary.DeletedAtNotNil(),
			runsummary.DeletedAtLT(cutoff),
		).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge soft-deleted runs: %w", err)
	}
	return n, nil
}

// RunFilters selects and orders history rows.
type RunFilters struct {
	Limit         int
	Offset        int
	AnomaliesOnly bool
	Sort          string // "recent" (default) or "risk"
}

// RunListResponse is the history list envelope.
type RunListResponse struct {
	Runs       []*ent.RunSummary `json:"runs"`
	TotalCount int               `json:"totalCount"`
	Limit      int               `json:"limit"`
	Offset     int               `json:"offset"`
}

// ListRuns lists run summaries with filtering and pagination.
func (s *HistoryService) ListRuns(ctx context.Context, filters RunFilters) (*RunListResponse, error) {
	query := s.client.RunSummary.Query().
		Where(runsummary.DeletedAtIsNil())

	if filters.AnomaliesOnly {
		query = query.Where(runsummary.AnomalyEQ(true))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count runs: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	order := ent.Desc(runsummary.FieldCreatedAt)
	if filters.Sort == "risk" {
		order = ent.Desc(runsummary.FieldRiskScore)
	}

	runs, err := query.
		Limit(limit).
		Offset(offset).
		Order(order).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	return &RunListResponse{
		Runs:       runs,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// GetRunDetail retrieves one run with its events, node metrics, and telemetry.
func (s *HistoryService) GetRunDetail(ctx context.Context, runID string) (*ent.RunSummary, error) {
	run, err := s.client.RunSummary.Query().
		Where(runsummary.IDEQ(runID)).
		WithEvents(func(q *ent.RunEventQuery) {
			q.Order(ent.Asc(runevent.FieldSequence))
		}).
		WithNodeMetrics().
		WithTelemetry().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// RunStats aggregates run history for a trailing window.
type RunStats struct {
	Days             int            `json:"days"`
	TotalRuns        int            `json:"totalRuns"`
	ByStatus         map[string]int `json:"byStatus"`
	ByMode           map[string]int `json:"byMode"`
	AnomalyCount     int            `json:"anomalyCount"`
	TotalTokens      int            `json:"totalTokens"`
	TotalToolUses    int            `json:"totalToolUses"`
	EstimatedCostUSD float64        `json:"estimatedCostUsd"`
	AvgExecutionMs   float64        `json:"avgExecutionMs"`
}

// GetStats aggregates history for the last N days.
func (s *HistoryService) GetStats(ctx context.Context, days int) (*RunStats, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)
	base := func() *ent.RunSummaryQuery {
		return s.client.RunSummary.Query().
			Where(runsummary.DeletedAtIsNil(), runsummary.CreatedAtGTE(since))
	}

	stats := &RunStats{
		Days:     days,
		ByStatus: map[string]int{},
		ByMode:   map[string]int{},
	}

	var err error
	if stats.TotalRuns, err = base().Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count runs: %w", err)
	}
	if stats.AnomalyCount, err = base().Where(runsummary.AnomalyEQ(true)).Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count anomalies: %w", err)
	}

	var byStatus []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	if err := base().GroupBy(runsummary.FieldStatus).Aggregate(ent.Count()).Scan(ctx, &byStatus); err != nil {
		return nil, fmt.Errorf("failed to group by status: %w", err)
	}
	for _, row := range byStatus {
		stats.ByStatus[row.Status] = row.Count
	}

	var byMode []struct {
		Mode  string `json:"mode"`
		Count int    `json:"count"`
	}
	if err := base().GroupBy(runsummary.FieldMode).Aggregate(ent.Count()).Scan(ctx, &byMode); err != nil {
		return nil, fmt.Errorf("failed to group by mode: %w", err)
	}
	for _, row := range byMode {
		stats.ByMode[row.Mode] = row.Count
	}

	if stats.TotalRuns > 0 {
		if stats.TotalTokens, err = base().Aggregate(ent.Sum(runsummary.FieldTotalTokens)).Int(ctx); err != nil {
			return nil, fmt.Errorf("failed to sum tokens: %w", err)
		}
		if stats.TotalToolUses, err = base().Aggregate(ent.Sum(runsummary.FieldToolUseCount)).Int(ctx); err != nil {
			return nil, fmt.Errorf("failed to sum tool uses: %w", err)
		}
		if stats.EstimatedCostUSD, err = base().Aggregate(ent.Sum(runsummary.FieldEstimatedCostUsd)).Float64(ctx); err != nil {
			return nil, fmt.Errorf("failed to sum cost: %w", err)
		}
		if stats.AvgExecutionMs, err = base().Aggregate(ent.Mean(runsummary.FieldExecutionTimeMs)).Float64(ctx); err != nil {
			return nil, fmt.Errorf("failed to average execution time: %w", err)
		}
	}

	return stats, nil
}
