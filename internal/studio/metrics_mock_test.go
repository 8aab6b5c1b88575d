package studio

import "context"

// MockMetrics counts recorded events.
type MockMetrics struct {
	Generates int
	Locked    int
	Commits   []int
	Saves     []bool
	Selects   int
}

func (m *MockMetrics) RecordGenerate(ctx context.Context, slots, locked int) {
	m.Generates++
	m.Locked = locked
}

func (m *MockMetrics) RecordCommit(ctx context.Context, slot int) {
	m.Commits = append(m.Commits, slot)
}

func (m *MockMetrics) RecordSave(ctx context.Context, ok bool) {
	m.Saves = append(m.Saves, ok)
}

func (m *MockMetrics) RecordSelect(ctx context.Context) { m.Selects++ }

func (m *MockMetrics) Close(ctx context.Context) error { return nil }
