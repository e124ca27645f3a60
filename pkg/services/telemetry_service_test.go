package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	testdb "github.com/agentfleet/agentfleet/test/database"
)

func TestTelemetryService_RecordsSpansInMemory(t *testing.T) {
	svc := NewTelemetryService(nil)
	tp := svc.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := tp.Tracer("agentfleet")
	_, span := tracer.Start(context.Background(), "run")
	span.SetAttributes(attribute.String("mode", "single"))
	span.End()

	entries := svc.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "run", entries[0].Name)
	assert.Equal(t, "single", entries[0].Attributes["mode"])
	assert.NotEmpty(t, entries[0].TraceID)
	assert.NotEmpty(t, entries[0].SpanID)
}

func TestTelemetryService_BoundedWindow(t *testing.T) {
	svc := NewTelemetryService(nil)
	svc.maxSize = 3
	tp := svc.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := tp.Tracer("agentfleet")
	for i := 0; i < 5; i++ {
		_, span := tracer.Start(context.Background(), "span")
		span.End()
	}

	assert.Len(t, svc.Entries(), 3)
}

func TestTelemetryService_PersistsRunTaggedSpans(t *testing.T) {
	client := testdb.NewTestClient(t)
	history := NewHistoryService(client.Client)
	svc := NewTelemetryService(client.Client)
	tp := svc.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()
	ctx := context.Background()

	runID := uuid.New().String()
	_, err := history.StartRun(ctx, StartRunParams{RunID: runID, Mode: "single", Prompt: "trace me"})
	require.NoError(t, err)

	tracer := tp.Tracer("agentfleet")
	_, span := tracer.Start(ctx, "node.researcher")
	span.SetAttributes(RunIDAttribute.String(runID))
	span.SetStatus(codes.Error, "node failed")
	span.End()

	// An untagged span stays in memory only.
	_, loose := tracer.Start(ctx, "loose")
	loose.End()

	run, err := history.GetRunDetail(ctx, runID)
	require.NoError(t, err)
	require.Len(t, run.Edges.Telemetry, 1)
	row := run.Edges.Telemetry[0]
	assert.Equal(t, "node.researcher", row.Name)
	assert.Equal(t, "Error", row.StatusCode)
	require.NotNil(t, row.StatusMessage)
	assert.Equal(t, "node failed", *row.StatusMessage)

	assert.Len(t, svc.Entries(), 2)
}
