package otel

import "context"

// NoOpExporter is a metrics exporter that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) RecordGenerate(ctx context.Context, slots, locked int) {}

func (e *NoOpExporter) RecordCommit(ctx context.Context, slot int) {}

func (e *NoOpExporter) RecordSave(ctx context.Context, ok bool) {}

func (e *NoOpExporter) RecordSelect(ctx context.Context) {}

func (e *NoOpExporter) Close(ctx context.Context) error {
	return nil
}
