package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	serviceName    = "swatches"
	serviceVersion = "1.0.0"
)

// Exporter exports palette activity metrics to an OTEL Collector.
type Exporter struct {
	provider       *sdkmetric.MeterProvider
	generations    metric.Int64Counter
	lockedSkipped  metric.Int64Counter
	commits        metric.Int64Counter
	savedPalettes  metric.Int64Counter
	selectPalettes metric.Int64Counter
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	return newExporter(provider)
}

func newExporter(provider *sdkmetric.MeterProvider) (*Exporter, error) {
	meter := provider.Meter(serviceName)

	generations, err := meter.Int64Counter(
		"swatches_generations_total",
		metric.WithDescription("Number of palette generations"),
		metric.WithUnit("{generation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating generations counter: %w", err)
	}

	lockedSkipped, err := meter.Int64Counter(
		"swatches_locked_slots_skipped_total",
		metric.WithDescription("Locked slots left untouched by generation"),
		metric.WithUnit("{slot}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating locked slots counter: %w", err)
	}

	commits, err := meter.Int64Counter(
		"swatches_commits_total",
		metric.WithDescription("Adjusted colors committed to a slot"),
		metric.WithUnit("{commit}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating commits counter: %w", err)
	}

	saved, err := meter.Int64Counter(
		"swatches_palettes_saved_total",
		metric.WithDescription("Palette save attempts"),
		metric.WithUnit("{palette}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating saved counter: %w", err)
	}

	selected, err := meter.Int64Counter(
		"swatches_palettes_selected_total",
		metric.WithDescription("Saved palettes applied to the studio"),
		metric.WithUnit("{palette}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating selected counter: %w", err)
	}

	return &Exporter{
		provider:       provider,
		generations:    generations,
		lockedSkipped:  lockedSkipped,
		commits:        commits,
		savedPalettes:  saved,
		selectPalettes: selected,
	}, nil
}

func (e *Exporter) RecordGenerate(ctx context.Context, slots, locked int) {
	opt := metric.WithAttributes(attribute.Int("slots", slots))
	e.generations.Add(ctx, 1, opt)
	if locked > 0 {
		e.lockedSkipped.Add(ctx, int64(locked), opt)
	}
}

func (e *Exporter) RecordCommit(ctx context.Context, slot int) {
	e.commits.Add(ctx, 1, metric.WithAttributes(attribute.Int("slot", slot)))
}

// RecordSave counts a save attempt, labelled by whether it reached storage.
func (e *Exporter) RecordSave(ctx context.Context, ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	e.savedPalettes.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

func (e *Exporter) RecordSelect(ctx context.Context) {
	e.selectPalettes.Add(ctx, 1)
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
