package otel

import (
	"context"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestExporter(t *testing.T) (*Exporter, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	exp, err := newExporter(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	if err != nil {
		t.Fatalf("newExporter failed: %v", err)
	}
	t.Cleanup(func() { _ = exp.Close(context.Background()) })
	return exp, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	totals := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				totals[m.Name] += dp.Value
			}
		}
	}
	return totals
}

func TestExporter_Counters(t *testing.T) {
	ctx := context.Background()
	exp, reader := newTestExporter(t)

	exp.RecordGenerate(ctx, 5, 2)
	exp.RecordGenerate(ctx, 5, 0)
	exp.RecordCommit(ctx, 3)
	exp.RecordSave(ctx, true)
	exp.RecordSave(ctx, false)
	exp.RecordSelect(ctx)

	got := collect(t, reader)
	want := map[string]int64{
		"swatches_generations_total":          2,
		"swatches_locked_slots_skipped_total": 2,
		"swatches_commits_total":              1,
		"swatches_palettes_saved_total":       2,
		"swatches_palettes_selected_total":    1,
	}
	for name, v := range want {
		if got[name] != v {
			t.Errorf("%s = %d, want %d", name, got[name], v)
		}
	}
}

func TestNewExporter_Disabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"disabled", Config{Endpoint: "localhost:4317"}},
		{"no endpoint", Config{Enabled: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewExporter(context.Background(), tt.cfg); err == nil {
				t.Error("expected error for unusable config")
			}
		})
	}
}
