package telemetry_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/taskconsole/internal/platform/telemetry"
)

func TestInitTracer_Stdout(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	tp, err := telemetry.InitTracer(ctx, "test-service", telemetry.ExporterStdout, "", telemetry.WithWriter(&buf))
	if err != nil {
		t.Fatalf("InitTracer(stdout) error = %v", err)
	}

	_, span := telemetry.Tracer().Start(ctx, "unit-test-span")
	span.End()

	if err := tp.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown error = %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("unit-test-span")) {
		t.Errorf("exporter output missing span name, got %q", buf.String())
	}
}

func TestInitTracer_OTLP(t *testing.T) {
	ctx := context.Background()

	tp, err := telemetry.InitTracer(ctx, "test-service", telemetry.ExporterOTLP, "http://localhost:4318")
	if err != nil {
		t.Fatalf("InitTracer(otlp) error = %v", err)
	}
	t.Cleanup(func() {
		// Shutdown may fail when no collector is running; this is expected in unit tests.
		_ = tp.Shutdown(ctx)
	})

	if tp == nil {
		t.Fatal("InitTracer(otlp) returned nil TracerProvider")
	}
}

func TestInitTracer_SetsGlobalPropagator(t *testing.T) {
	ctx := context.Background()

	tp, err := telemetry.InitTracer(ctx, "test-service", telemetry.ExporterStdout, "", telemetry.WithWriter(new(bytes.Buffer)))
	if err != nil {
		t.Fatalf("InitTracer error = %v", err)
	}
	t.Cleanup(func() {
		if err := tp.Shutdown(ctx); err != nil {
			t.Errorf("Shutdown error = %v", err)
		}
	})

	prop := otel.GetTextMapPropagator()
	if _, ok := prop.(propagation.TraceContext); ok {
		// Single TraceContext is fine but we expect a composite.
		return
	}
	if len(prop.Fields()) == 0 {
		t.Error("global propagator has no fields, want TraceContext + Baggage fields")
	}
}

func TestInitTracer_UnsupportedExporter(t *testing.T) {
	t.Parallel()

	_, err := telemetry.InitTracer(context.Background(), "test-service", "invalid", "")
	if !errors.Is(err, telemetry.ErrUnsupportedExporter) {
		t.Fatalf("InitTracer(invalid) error = %v, want ErrUnsupportedExporter", err)
	}
}

func TestInitTracer_OTLPEmptyEndpoint(t *testing.T) {
	t.Parallel()

	_, err := telemetry.InitTracer(context.Background(), "test-service", telemetry.ExporterOTLP, "")
	if err == nil {
		t.Fatal("InitTracer with otlp and empty endpoint should return error")
	}
}

func TestInitMeter_Stdout(t *testing.T) {
	ctx := context.Background()

	mp, err := telemetry.InitMeter(ctx, "test-service", telemetry.ExporterStdout, "", telemetry.WithWriter(new(bytes.Buffer)))
	if err != nil {
		t.Fatalf("InitMeter(stdout) error = %v", err)
	}
	t.Cleanup(func() {
		if err := mp.Shutdown(ctx); err != nil {
			t.Errorf("Shutdown error = %v", err)
		}
	})

	if mp == nil {
		t.Fatal("InitMeter(stdout) returned nil MeterProvider")
	}
}

func TestInitMeter_UnsupportedExporter(t *testing.T) {
	t.Parallel()

	_, err := telemetry.InitMeter(context.Background(), "test-service", "invalid", "")
	if !errors.Is(err, telemetry.ErrUnsupportedExporter) {
		t.Fatalf("InitMeter(invalid) error = %v, want ErrUnsupportedExporter", err)
	}
}

func TestInitMeter_OTLPEmptyEndpoint(t *testing.T) {
	t.Parallel()

	_, err := telemetry.InitMeter(context.Background(), "test-service", telemetry.ExporterOTLP, "")
	if err == nil {
		t.Fatal("InitMeter with otlp and empty endpoint should return error")
	}
}

func TestMetrics_RecordOperation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	metrics, err := telemetry.NewMetrics(mp)
	require.NoError(t, err)

	metrics.RecordOperation(ctx, "CreateTask", telemetry.ResultOK, 5*time.Millisecond)
	metrics.RecordOperation(ctx, "CreateTask", telemetry.ResultInvalid, time.Millisecond)
	metrics.AddStoreSize(ctx, 3)
	metrics.AddStoreSize(ctx, -1)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	byName := make(map[string]metricdata.Metrics)
	for _, m := range rm.ScopeMetrics[0].Metrics {
		byName[m.Name] = m
	}

	total, ok := byName["task.operations.total"].Data.(metricdata.Sum[int64])
	require.True(t, ok, "task.operations.total should be an int64 sum")
	var sum int64
	for _, dp := range total.DataPoints {
		sum += dp.Value
	}
	assert.Equal(t, int64(2), sum)
	assert.Len(t, total.DataPoints, 2, "one data point per result")

	size, ok := byName["task.store.size"].Data.(metricdata.Sum[int64])
	require.True(t, ok, "task.store.size should be an int64 sum")
	require.Len(t, size.DataPoints, 1)
	assert.Equal(t, int64(2), size.DataPoints[0].Value)

	_, ok = byName["task.operation.duration"].Data.(metricdata.Histogram[float64])
	assert.True(t, ok, "task.operation.duration should be a float64 histogram")
}

func TestMetrics_NilSafe(t *testing.T) {
	t.Parallel()

	var m *telemetry.Metrics
	m.RecordOperation(context.Background(), "ListTasks", telemetry.ResultOK, time.Second)
	m.AddStoreSize(context.Background(), 1)
}
