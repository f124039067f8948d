package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elitcards/pkg/logger"
)

func TestSpanCarriesTraceID(t *testing.T) {
	tp, shutdown, err := InitTracing(logger.Nop(), Config{ServiceName: "test", Probability: 1.0})
	require.NoError(t, err)
	defer shutdown(context.Background())

	ctx := InjectTracing(context.Background(), tp.Tracer("test"))
	ctx, span := AddSpan(ctx, "op")
	defer span.End()

	assert.Len(t, GetTraceID(ctx), 32)
}

func TestAddSpanWithoutTracer(t *testing.T) {
	ctx, span := AddSpan(context.Background(), "op")
	span.End()
	assert.Empty(t, GetTraceID(ctx))
}

func TestStdoutExporter(t *testing.T) {
	tp, shutdown, err := InitTracing(logger.Nop(), Config{ServiceName: "test", Host: StdoutHost, Probability: 1.0})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
	assert.NotNil(t, tp)
}

func TestInitTracingWithoutExporter(t *testing.T) {
	tp, shutdown, err := InitTracing(logger.Nop(), Config{ServiceName: "elitcards", Probability: 1.0})
	require.NoError(t, err)
	defer shutdown(context.Background())

	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()
	assert.True(t, span.SpanContext().IsSampled())
	assert.NotEmpty(t, GetTraceID(ctx))
}
