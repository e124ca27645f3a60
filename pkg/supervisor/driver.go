package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agentfleet/agentfleet/pkg/agent"
	"github.com/agentfleet/agentfleet/pkg/config"
	"github.com/agentfleet/agentfleet/pkg/events"
	"github.com/agentfleet/agentfleet/pkg/llm"
	"github.com/agentfleet/agentfleet/pkg/models"
	"github.com/agentfleet/agentfleet/pkg/multiagent"
	"github.com/agentfleet/agentfleet/pkg/schema"
	"github.com/agentfleet/agentfleet/pkg/services"
	"github.com/agentfleet/agentfleet/pkg/session"
)

// DisconnectReason is the history message for runs whose consumer went away.
const DisconnectReason = "Client disconnected before run finalized."

// finalizeTimeout bounds each finalization write once it is detached from
// the request context.
const finalizeTimeout = 10 * time.Second

// finalizeContext detaches a history or checkpoint write from the caller.
// On the disconnect path the request context is already canceled when the
// driver gets the signal; the run record must still reach a terminal status.
func finalizeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), finalizeTimeout)
}

// Terminal record types on the SSE stream.
const (
	RecordDone  = "done"
	RecordError = "error"
)

// Consumer receives the run's SSE records. Send failing marks the consumer
// disconnected; Disconnected closing asks the driver to stop writing.
type Consumer interface {
	Send(eventType string, data []byte) error
	Disconnected() <-chan struct{}
}

// DonePayload is the terminal record of a successful run.
type DonePayload struct {
	RunID            string                        `json:"runId"`
	Status           models.RunStatus              `json:"status"`
	Text             string                        `json:"text"`
	StructuredOutput map[string]any                `json:"structuredOutput,omitempty"`
	Usage            models.TokenUsage             `json:"usage"`
	ExecutionTime    int64                         `json:"executionTime"`
	NodeHistory      []string                      `json:"nodeHistory,omitempty"`
	ExecutionOrder   []string                      `json:"executionOrder,omitempty"`
	PerNode          map[string]*models.NodeResult `json:"perNode,omitempty"`
	PerModelUsage    []models.ModelUsage           `json:"perModelUsage,omitempty"`
	ModelID          string                        `json:"modelId,omitempty"`
	EstimatedCostUSD float64                       `json:"estimatedCostUsd"`
	Interrupts       []models.Interrupt            `json:"interrupts,omitempty"`
}

// ErrorPayload is the terminal record of a failed run.
type ErrorPayload struct {
	RunID   string `json:"runId"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// RunParams describes one admitted run.
type RunParams struct {
	RunID        string
	Mode         models.RunMode
	Prompt       string
	SessionID    string
	PresetKey    string
	SchemaID     string
	ModelID      string
	Orchestrator multiagent.Orchestrator
	Task         multiagent.Task
	Agents       []*agent.Agent
	Policy       config.ToolPolicy
}

// Driver supervises runs against one configuration and history store.
type Driver struct {
	cfg      config.Config
	history  *services.HistoryService
	sessions session.Store
	tracer   trace.Tracer
}

// NewDriver creates a Driver. sessions and tracer may be nil.
func NewDriver(cfg config.Config, history *services.HistoryService, sessions session.Store, tracer trace.Tracer) *Driver {
	return &Driver{cfg: cfg, history: history, sessions: sessions, tracer: tracer}
}

// Drive pumps the orchestration to the consumer and finalizes the run
// record. It returns after the run reached a terminal state; all failures
// are reported through the stream and history, not the return value.
func (d *Driver) Drive(ctx context.Context, params RunParams, consumer Consumer) {
	StripBlockedTools(params.Agents, params.Policy)

	r := &runCtrl{
		d:        d,
		params:   params,
		consumer: consumer,
		budget:   NewBudgetTracker(d.cfg.MaxRunTotalTokens),
		guard:    NewToolGuard(params.Policy),
		capture:  NewCapture(d.history, params.RunID, d.cfg.MaxPersistedStreamEventsPerNode),
		started:  time.Now(),
	}
	if config.ContractRequired(params.PresetKey, params.SchemaID) {
		r.contract = &ReviewContract{}
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var span trace.Span
	if d.tracer != nil {
		runCtx, span = d.tracer.Start(runCtx, "run",
			trace.WithAttributes(
				services.RunIDAttribute.String(params.RunID),
				attribute.String("mode", string(params.Mode)),
			))
		defer span.End()
		r.span = span
	}

	wallLimit := d.cfg.WallClockLimit(params.PresetKey, params.SchemaID)
	wallTimer := time.NewTimer(wallLimit)
	defer wallTimer.Stop()

	stream := params.Orchestrator.Stream(runCtx, params.Task)

	for {
		idle := time.NewTimer(d.cfg.StreamIdle)
		select {
		case <-wallTimer.C:
			idle.Stop()
			cancel()
			r.fail(ctx, NewRunError(CodeRunTimeoutExceeded,
				"run exceeded wall-clock limit of %s", wallLimit))
			return

		case <-idle.C:
			cancel()
			r.fail(ctx, NewRunError(CodeRunIdleTimeoutExceeded,
				"no upstream event within idle limit of %s", d.cfg.StreamIdle))
			return

		case <-consumer.Disconnected():
			idle.Stop()
			cancel()
			r.disconnect(ctx)
			return

		case item, ok := <-stream:
			idle.Stop()
			if !ok {
				cancel()
				r.fail(ctx, &RunError{Message: "orchestrator stream ended without a terminal item"})
				return
			}
			switch {
			case item.Err != nil:
				cancel()
				r.fail(ctx, mapRunError(item.Err))
				return
			case item.Result != nil:
				r.finishTerminal(ctx, item.Result)
				return
			case item.Event != nil:
				if err := r.handleEvent(ctx, item.Event); err != nil {
					cancel()
					if r.clientGone {
						r.disconnect(ctx)
					} else {
						r.fail(ctx, mapRunError(err))
					}
					return
				}
			}
		}
	}
}

// mapRunError turns an upstream error into a coded failure where a code
// applies.
func mapRunError(err error) *RunError {
	if re, ok := AsRunError(err); ok {
		return re
	}
	if errors.Is(err, agent.ErrModelStreamIncomplete) {
		return &RunError{Code: CodeModelStreamIncomplete, Message: err.Error()}
	}
	return &RunError{Message: err.Error()}
}

// runCtrl carries the per-run accounting state through the driver loop.
type runCtrl struct {
	d        *Driver
	params   RunParams
	consumer Consumer
	budget   *BudgetTracker
	guard    *ToolGuard
	capture  *Capture
	contract *ReviewContract
	span     trace.Span

	started    time.Time
	nodeStarts int
	clientGone bool
	finalized  bool
}

// handleEvent processes one upstream event: write, account, capture, and
// flatten nested orchestrator events. The event is fully processed before
// the driver pulls the next one.
func (r *runCtrl) handleEvent(ctx context.Context, evt events.Event) error {
	if err := r.send(evt.EventType(), evt); err != nil {
		r.clientGone = true
		return err
	}

	// Nested orchestrator events ride inside stream events; they are
	// accounted and captured as if top-level but never re-sent.
	for _, flat := range flatten(evt) {
		if err := r.account(flat); err != nil {
			return err
		}
		r.capture.Persist(ctx, flat)
	}
	return nil
}

// account runs budget, policy, and contract checks for one event.
func (r *runCtrl) account(evt events.Event) error {
	if _, ok := evt.(*events.NodeStartEvent); ok {
		r.nodeStarts++
		if r.contract != nil {
			r.contract.ObserveNodeStart()
		}
	}

	if snapshot, ok := events.ExtractTokenUsageSnapshot(evt); ok {
		var err error
		if snapshot.RunScoped {
			err = r.budget.ObserveRunTotal(snapshot.Usage)
		} else {
			err = r.budget.ObserveNode(snapshot.NodeID, r.params.ModelID, snapshot.Usage)
		}
		if err != nil {
			return err
		}
	}

	if use, ok := events.ExtractToolUseStart(evt); ok {
		before := r.guard.Total()
		if err := r.guard.Observe(*use); err != nil {
			return err
		}
		if r.contract != nil && r.guard.Total() > before {
			r.contract.ObserveToolUse(use.ToolName)
		}
	}
	return nil
}

// flatten returns evt plus any nested multi-agent events found inside
// stream-event payloads, outermost first.
func flatten(evt events.Event) []events.Event {
	out := []events.Event{evt}
	stream, ok := evt.(*events.NodeStreamEvent)
	if !ok {
		return out
	}
	if inner, ok := stream.Event.(events.Event); ok {
		out = append(out, flatten(inner)...)
	}
	return out
}

// finishTerminal handles the orchestrator's terminal result: final budget
// and contract checks, then the done record and history finalization.
func (r *runCtrl) finishTerminal(ctx context.Context, result *models.OrchestrationResult) {
	if err := r.budget.ObserveRunTotal(result.AccumulatedUsage); err != nil {
		r.fail(ctx, mapRunError(err))
		return
	}
	if r.contract != nil && result.Status != models.RunStatusInterrupted {
		if err := r.contract.Check(); err != nil {
			r.fail(ctx, mapRunError(err))
			return
		}
	}

	if result.Status == models.RunStatusFailed {
		r.fail(ctx, &RunError{Message: failureMessage(result)})
		return
	}

	text := result.FinalText()
	var structured map[string]any
	if r.params.SchemaID != "" && result.Status == models.RunStatusCompleted {
		payload, err := schema.ExtractStructured(r.params.SchemaID, text)
		if err != nil {
			r.fail(ctx, &RunError{Message: err.Error()})
			return
		}
		structured = payload
	}

	if result.Status == models.RunStatusInterrupted {
		r.persistCheckpoint(ctx)
	}

	done := DonePayload{
		RunID:            r.params.RunID,
		Status:           result.Status,
		Text:             text,
		StructuredOutput: structured,
		Usage:            result.AccumulatedUsage,
		ExecutionTime:    result.ExecutionTimeMs,
		ExecutionOrder:   result.ExecutionOrder,
		PerNode:          result.Results,
		PerModelUsage:    r.budget.PerModel(),
		ModelID:          r.params.ModelID,
		Interrupts:       result.Interrupts,
	}
	if st := r.params.Orchestrator.Serialize(); st != nil {
		done.NodeHistory = st.NodeHistory
	}
	if cost, ok := llm.EstimateCostForModel(r.params.ModelID, result.AccumulatedUsage); ok {
		done.EstimatedCostUSD = cost
	}

	if err := r.send(RecordDone, done); err != nil {
		r.clientGone = true
		r.disconnect(ctx)
		return
	}

	outcome := r.outcome(result)
	outcome.ResultText = text
	outcome.StructuredOutput = structured
	outcome.EstimatedCostUSD = done.EstimatedCostUSD

	if result.Status == models.RunStatusInterrupted {
		r.finalizeInterrupted(ctx, "", "Run interrupted awaiting interrupt responses", false)
		return
	}
	r.finalizeCompleted(ctx, outcome)
}

func failureMessage(result *models.OrchestrationResult) string {
	for i := len(result.ExecutionOrder) - 1; i >= 0; i-- {
		if nr := result.Results[result.ExecutionOrder[i]]; nr != nil && nr.Error != "" {
			return nr.Error
		}
	}
	for _, nr := range result.Results {
		if nr != nil && nr.Error != "" {
			return nr.Error
		}
	}
	return "orchestration failed"
}

// fail emits the error record and finalizes the run as failed.
func (r *runCtrl) fail(ctx context.Context, runErr *RunError) {
	if r.finalized {
		return
	}
	if r.span != nil {
		r.span.SetStatus(codes.Error, runErr.Message)
	}

	payload := ErrorPayload{RunID: r.params.RunID, Message: runErr.Message, Code: runErr.Code}
	if err := r.send(RecordError, payload); err != nil {
		r.clientGone = true
	}

	outcome := r.outcome(nil)
	outcome.Anomaly = guardCode(runErr.Code)
	outcome.RiskScore = r.riskScore(runErr.Code)
	outcome.ClientDisconnected = r.clientGone

	ctx, cancel := finalizeContext(ctx)
	defer cancel()
	r.writeNodeMetrics(ctx)
	r.finalized = true
	if err := r.d.history.FailRun(ctx, r.params.RunID, runErr.Code, runErr.Message, outcome); err != nil {
		slog.Error("Failed to finalize failed run, falling back to minimal record",
			"run_id", r.params.RunID, "error", err)
		if err := r.d.history.MarkRunFailedMinimal(ctx, r.params.RunID, runErr.Message); err != nil {
			slog.Error("Minimal failure record also failed; run stays running until restart",
				"run_id", r.params.RunID, "error", err)
		}
	}
}

// disconnect finalizes a run whose consumer went away: no further SSE
// writes, no done or error record, a minimal interrupted history row.
func (r *runCtrl) disconnect(ctx context.Context) {
	if r.finalized {
		return
	}
	r.clientGone = true
	ctx, cancel := finalizeContext(ctx)
	defer cancel()
	r.persistCheckpoint(ctx)
	r.writeNodeMetrics(ctx)
	r.finalized = true
	if err := r.d.history.InterruptRun(ctx, r.params.RunID, CodeClientDisconnected, DisconnectReason, true); err != nil {
		slog.Error("Failed to finalize disconnected run", "run_id", r.params.RunID, "error", err)
	}
}

func (r *runCtrl) finalizeCompleted(ctx context.Context, outcome services.RunOutcome) {
	if r.finalized {
		return
	}
	ctx, cancel := finalizeContext(ctx)
	defer cancel()
	r.writeNodeMetrics(ctx)
	r.finalized = true
	if err := r.d.history.CompleteRun(ctx, r.params.RunID, outcome); err != nil {
		slog.Error("Failed to finalize completed run, falling back to minimal record",
			"run_id", r.params.RunID, "error", err)
		if err := r.d.history.MarkRunCompletedMinimal(ctx, r.params.RunID); err != nil {
			slog.Error("Minimal completion record also failed; run stays running until restart",
				"run_id", r.params.RunID, "error", err)
		}
	}
}

func (r *runCtrl) finalizeInterrupted(ctx context.Context, code, reason string, disconnected bool) {
	if r.finalized {
		return
	}
	ctx, cancel := finalizeContext(ctx)
	defer cancel()
	r.writeNodeMetrics(ctx)
	r.finalized = true
	if err := r.d.history.InterruptRun(ctx, r.params.RunID, code, reason, disconnected); err != nil {
		slog.Error("Failed to finalize interrupted run", "run_id", r.params.RunID, "error", err)
	}
}

// persistCheckpoint writes the serialized orchestrator state under the
// run's session id so a later run can resume it.
func (r *runCtrl) persistCheckpoint(ctx context.Context) {
	if r.d.sessions == nil || r.params.SessionID == "" {
		return
	}
	state := r.params.Orchestrator.Serialize()
	if state == nil {
		return
	}
	ctx, cancel := finalizeContext(ctx)
	defer cancel()
	if err := r.d.sessions.Save(ctx, r.params.SessionID, state); err != nil {
		slog.Error("Failed to persist session checkpoint",
			"run_id", r.params.RunID, "session_id", r.params.SessionID, "error", err)
	}
}

// outcome assembles the history outcome from the accounting state and, when
// present, the terminal result.
func (r *runCtrl) outcome(result *models.OrchestrationResult) services.RunOutcome {
	usage := r.budget.Accumulated()
	if result != nil {
		usage = result.AccumulatedUsage
	}
	total := usage.TotalTokens
	if observed := r.budget.Observed(); observed > total {
		total = observed
	}

	outcome := services.RunOutcome{
		ModelID:            r.params.ModelID,
		InputTokens:        usage.InputTokens,
		OutputTokens:       usage.OutputTokens,
		TotalTokens:        total,
		ToolUseCount:       r.guard.Total(),
		NodeStartCount:     r.nodeStarts,
		ExecutionTimeMs:    time.Since(r.started).Milliseconds(),
		ClientDisconnected: r.clientGone,
		RiskScore:          r.riskScore(""),
	}
	if result != nil {
		outcome.ExecutionOrder = result.ExecutionOrder
		outcome.ExecutionTimeMs = result.ExecutionTimeMs
	}
	if st := r.params.Orchestrator.Serialize(); st != nil {
		outcome.NodeHistory = st.NodeHistory
	}
	return outcome
}

// riskScore folds failure codes and budget pressure into a 0..1 score used
// for history triage.
func (r *runCtrl) riskScore(code string) float64 {
	if guardCode(code) {
		return 0.9
	}
	var score float64
	if code != "" {
		score = 0.5
	}
	if r.d.cfg.MaxRunTotalTokens > 0 {
		score += 0.25 * float64(r.budget.Observed()) / float64(r.d.cfg.MaxRunTotalTokens)
	}
	if r.params.Policy.MaxTotalToolUses > 0 {
		score += 0.25 * float64(r.guard.Total()) / float64(r.params.Policy.MaxTotalToolUses)
	}
	return math.Min(score, 1)
}

// writeNodeMetrics stores the per-node rows gathered during the run.
func (r *runCtrl) writeNodeMetrics(ctx context.Context) {
	ids := r.budget.NodeIDs()
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	// Nodes may stream without reporting usage; metrics still get a row.
	for id := range r.capture.streamSeen {
		if _, ok := seen[id]; !ok {
			ids = append(ids, id)
		}
	}

	metrics := make([]services.NodeMetric, 0, len(ids))
	for _, id := range ids {
		usage := r.budget.NodeUsage(id)
		metrics = append(metrics, services.NodeMetric{
			NodeID:           id,
			Status:           r.capture.NodeStatus(id),
			InputTokens:      usage.InputTokens,
			OutputTokens:     usage.OutputTokens,
			TotalTokens:      usage.TotalTokens,
			StreamEventCount: r.capture.StreamEventCount(id),
			CaptureCapped:    r.capture.Capped(id),
		})
	}
	if len(metrics) == 0 {
		return
	}
	if err := r.d.history.WriteNodeMetrics(ctx, r.params.RunID, metrics); err != nil {
		slog.Warn("Failed to write node metrics", "run_id", r.params.RunID, "error", err)
	}
}

// send serializes and writes one SSE record.
func (r *runCtrl) send(eventType string, payload any) error {
	data, err := events.MarshalCycleSafe(payload)
	if err != nil {
		slog.Warn("Failed to serialize event, skipping write",
			"run_id", r.params.RunID, "event_type", eventType, "error", err)
		return nil
	}
	return r.consumer.Send(eventType, data)
}
