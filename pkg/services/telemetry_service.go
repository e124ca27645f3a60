package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/agentfleet/agentfleet/ent"
	"github.com/agentfleet/agentfleet/ent/runtelemetry"
)

// RunIDAttribute tags spans with the run they belong to; spans carrying it
// are persisted to the run's telemetry rows at export time.
const RunIDAttribute = attribute.Key("agentfleet.run_id")

// TelemetryEntry is the in-memory view of one finished span.
type TelemetryEntry struct {
	TraceID       string         `json:"traceId"`
	SpanID        string         `json:"spanId"`
	ParentSpanID  string         `json:"parentSpanId,omitempty"`
	RunID         string         `json:"runId,omitempty"`
	Name          string         `json:"name"`
	StatusCode    string         `json:"statusCode"`
	StatusMessage string         `json:"statusMessage,omitempty"`
	Attributes    map[string]any `json:"attributes,omitempty"`
	StartedAt     time.Time      `json:"startedAt"`
	EndedAt       time.Time      `json:"endedAt"`
	DurationMs    int64          `json:"durationMs"`
}

// TelemetryService is a SpanExporter that keeps a bounded in-memory window
// of finished spans for GET /api/telemetry and writes run-tagged spans to
// the database. Persistence is best effort; export never fails the caller.
type TelemetryService struct {
	client  *ent.Client
	maxSize int

	mu      sync.Mutex
	entries []TelemetryEntry
}

var _ sdktrace.SpanExporter = (*TelemetryService)(nil)

const defaultTelemetryWindow = 1000

// NewTelemetryService creates a TelemetryService. The ent client may be nil,
// in which case spans are kept in memory only.
func NewTelemetryService(client *ent.Client) *TelemetryService {
	return &TelemetryService{
		client:  client,
		maxSize: defaultTelemetryWindow,
	}
}

// NewTracerProvider builds a tracer provider that exports synchronously
// into this service. Spans are points of record, not batched exports.
func (t *TelemetryService) NewTracerProvider() *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(t)),
	)
}

// ExportSpans records finished spans in memory and persists run-tagged ones.
func (t *TelemetryService) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, span := range spans {
		entry := toEntry(span)

		t.mu.Lock()
		t.entries = append(t.entries, entry)
		if len(t.entries) > t.maxSize {
			t.entries = t.entries[len(t.entries)-t.maxSize:]
		}
		t.mu.Unlock()

		if t.client != nil && entry.RunID != "" {
			t.persist(ctx, entry)
		}
	}
	return nil
}

// Shutdown implements sdktrace.SpanExporter.
func (t *TelemetryService) Shutdown(ctx context.Context) error {
	return nil
}

// Entries returns the recorded spans, newest last.
func (t *TelemetryService) Entries() []TelemetryEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]TelemetryEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

func (t *TelemetryService) persist(ctx context.Context, entry TelemetryEntry) {
	builder := t.client.RunTelemetry.Create().
		SetRunID(entry.RunID).
		SetSpanID(entry.SpanID).
		SetTraceID(entry.TraceID).
		SetName(entry.Name).
		SetStatusCode(entry.StatusCode).
		SetStartedAt(entry.StartedAt).
		SetEndedAt(entry.EndedAt)
	if entry.ParentSpanID != "" {
		builder.SetParentSpanID(entry.ParentSpanID)
	}
	if entry.StatusMessage != "" {
		builder.SetStatusMessage(entry.StatusMessage)
	}
	if entry.Attributes != nil {
		builder.SetAttributes(entry.Attributes)
	}
	if err := builder.OnConflictColumns(runtelemetry.FieldRunID, runtelemetry.FieldSpanID).DoNothing().Exec(ctx); err != nil {
		slog.Warn("Failed to persist telemetry span", "run_id", entry.RunID, "span_id", entry.SpanID, "error", err)
	}
}

func toEntry(span sdktrace.ReadOnlySpan) TelemetryEntry {
	sc := span.SpanContext()
	entry := TelemetryEntry{
		TraceID:       sc.TraceID().String(),
		SpanID:        sc.SpanID().String(),
		Name:          span.Name(),
		StatusCode:    span.Status().Code.String(),
		StatusMessage: span.Status().Description,
		StartedAt:     span.StartTime(),
		EndedAt:       span.EndTime(),
		DurationMs:    span.EndTime().Sub(span.StartTime()).Milliseconds(),
	}
	if span.Parent().HasSpanID() {
		entry.ParentSpanID = span.Parent().SpanID().String()
	}
	attrs := make(map[string]any, len(span.Attributes()))
	for _, kv := range span.Attributes() {
		if kv.Key == RunIDAttribute {
			entry.RunID = kv.Value.AsString()
			continue
		}
		attrs[string(kv.Key)] = kv.Value.AsInterface()
	}
	if len(attrs) > 0 {
		entry.Attributes = attrs
	}
	return entry
}
