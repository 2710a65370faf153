package telemetry_test

import (
	"context"
	"slices"
	"testing"

	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/academic-catalog/internal/platform/telemetry"
)

const serviceName = "academic-catalog"

type exporterCase struct {
	name     string
	exporter string
	endpoint string
	wantErr  bool
}

var exporterCases = []exporterCase{
	{name: "stdout", exporter: telemetry.ExporterStdout},
	{name: "otlp over http", exporter: telemetry.ExporterOTLP, endpoint: "http://otel-collector:4318"},
	{name: "otlp over https", exporter: telemetry.ExporterOTLP, endpoint: "https://otel.example.edu"},
	{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, wantErr: true},
	{name: "unknown exporter", exporter: "zipkin", wantErr: true},
}

// Successful cases install global providers, so these tests do not run in
// parallel.
func TestInitTracer(t *testing.T) {
	for _, tc := range exporterCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()

			tp, err := telemetry.InitTracer(ctx, serviceName, tc.exporter, tc.endpoint)
			if tc.wantErr {
				if err == nil {
					t.Fatal("InitTracer() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("InitTracer() error = %v", err)
			}
			// No collector runs in unit tests, so OTLP shutdown may fail.
			t.Cleanup(func() { _ = tp.Shutdown(ctx) })

			if otel.GetTracerProvider() != tp {
				t.Error("InitTracer() did not install the global tracer provider")
			}
		})
	}
}

func TestInitTracer_PropagatesTraceContextAndBaggage(t *testing.T) {
	ctx := context.Background()

	tp, err := telemetry.InitTracer(ctx, serviceName, telemetry.ExporterStdout, "")
	if err != nil {
		t.Fatalf("InitTracer() error = %v", err)
	}
	t.Cleanup(func() { _ = tp.Shutdown(ctx) })

	fields := otel.GetTextMapPropagator().Fields()
	for _, want := range []string{"traceparent", "baggage"} {
		if !slices.Contains(fields, want) {
			t.Errorf("propagator fields = %v, want %q", fields, want)
		}
	}
}

func TestInitMeter(t *testing.T) {
	for _, tc := range exporterCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()

			mp, err := telemetry.InitMeter(ctx, serviceName, tc.exporter, tc.endpoint)
			if tc.wantErr {
				if err == nil {
					t.Fatal("InitMeter() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("InitMeter() error = %v", err)
			}
			t.Cleanup(func() { _ = mp.Shutdown(ctx) })

			if otel.GetMeterProvider() != mp {
				t.Error("InitMeter() did not install the global meter provider")
			}
		})
	}
}

func TestNewMetrics_ExportsCatalogInstruments(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	metrics, err := telemetry.NewMetrics(mp, serviceName)
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	metrics.ServerRequestDuration.Record(ctx, 0.012)
	metrics.ServerRequestTotal.Add(ctx, 1)
	metrics.StoreTxDuration.Record(ctx, 0.004)
	metrics.StoreTxTotal.Add(ctx, 1)
	metrics.StoreTxRetries.Add(ctx, 2)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	got := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			got[m.Name] = true
		}
	}
	for _, want := range []string{
		"http.server.request.duration",
		"http.server.request.total",
		"store.tx.duration",
		"store.tx.total",
		"store.tx.retries",
	} {
		if !got[want] {
			t.Errorf("instrument %q not exported; got %v", want, got)
		}
	}
}
