package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// recordSpans routes spans to an in-memory recorder for one test.
func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	UseTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		_, _ = Init(context.Background(), Config{})
	})
	return rec
}

func attrMap(kvs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value, len(kvs))
	for _, kv := range kvs {
		m[kv.Key] = kv.Value
	}
	return m
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "opendis", cfg.ServiceName)
	assert.Equal(t, "localhost:4317", cfg.Endpoint)
	assert.True(t, cfg.Insecure)
	assert.Equal(t, 1.0, cfg.SampleRate)
}

func TestInitDisabled(t *testing.T) {
	shutdown, err := Init(context.Background(), DefaultConfig())
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
	assert.False(t, IsEnabled())

	ctx, span := StartSpan(context.Background(), "noop")
	defer span.End()
	assert.False(t, span.SpanContext().IsValid())
	assert.Empty(t, TraceID(ctx))
	assert.Empty(t, SpanID(ctx))
}

func TestSampler(t *testing.T) {
	assert.Equal(t, sdktrace.AlwaysSample().Description(), Sampler(1).Description())
	assert.Equal(t, sdktrace.NeverSample().Description(), Sampler(0).Description())
	assert.Equal(t, sdktrace.TraceIDRatioBased(0.25).Description(), Sampler(0.25).Description())
}

func TestDatagramSpan(t *testing.T) {
	rec := recordSpans(t)
	assert.True(t, IsEnabled())

	ctx, span := StartDatagramSpan(context.Background(), "udp", "10.0.0.5:3000", 144)
	require.NotEmpty(t, TraceID(ctx))
	require.NotEmpty(t, SpanID(ctx))

	_, child := StartPDUSpan(ctx, SpanDecode, 1, 1, 3, PDUName("Entity State"))
	RecordError(ctx, nil)
	child.End()
	AddEvent(ctx, "dropped", Length(2))
	RecordError(ctx, errors.New("framing mismatch"))
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 2)

	decode := ended[0]
	assert.Equal(t, SpanDecode, decode.Name())
	assert.Equal(t, span.SpanContext().SpanID(), decode.Parent().SpanID())
	attrs := attrMap(decode.Attributes())
	assert.Equal(t, int64(1), attrs[AttrPDUType].AsInt64())
	assert.Equal(t, int64(3), attrs[AttrExercise].AsInt64())
	assert.Equal(t, "Entity State", attrs[AttrPDUName].AsString())

	root := ended[1]
	assert.Equal(t, SpanDatagram, root.Name())
	assert.Equal(t, "udp", attrMap(root.Attributes())[AttrTransport].AsString())
	assert.Equal(t, codes.Error, root.Status().Code)
	require.Len(t, root.Events(), 2)
	assert.Equal(t, "dropped", root.Events()[0].Name)
}

func TestParseProfileTypes(t *testing.T) {
	types, err := ParseProfileTypes([]string{"cpu", "inuse_space"})
	require.NoError(t, err)
	assert.Len(t, types, 2)

	_, err = ParseProfileTypes([]string{"gpu"})
	assert.Error(t, err)
	assert.Len(t, ProfileTypeNames(), 10)
}

func TestInitProfilingDisabled(t *testing.T) {
	stop, err := InitProfiling(ProfilingConfig{})
	require.NoError(t, err)
	assert.NoError(t, stop())
}
