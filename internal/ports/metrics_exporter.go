package ports

import "context"

// MetricsExporter exports palette activity to an external observability system.
type MetricsExporter interface {
	// RecordGenerate records one regeneration and how many slots were skipped by locks.
	RecordGenerate(ctx context.Context, slots, locked int)
	// RecordCommit records a committed channel adjustment.
	RecordCommit(ctx context.Context, slot int)
	RecordSave(ctx context.Context, ok bool)
	RecordSelect(ctx context.Context)
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}
