package studio

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/emiliopalmerini/swatches/internal/domain"
)

func TestRegenerate_LockedSlotIsSkipped(t *testing.T) {
	ctx := context.Background()
	metrics := &MockMetrics{}
	s := New(5, newMockColors("#aaaaaa", "#bbbbbb", "#cccccc", "#dddddd"), nil, metrics, nil)

	if err := s.Pin(2, domain.MustParseHex("#112233")); err != nil {
		t.Fatalf("Pin failed: %v", err)
	}
	if err := s.Regenerate(ctx); err != nil {
		t.Fatalf("Regenerate failed: %v", err)
	}

	want := []string{"#aaaaaa", "#bbbbbb", "#112233", "#cccccc", "#dddddd"}
	if got := s.Hexes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Hexes() = %v, want %v", got, want)
	}
	if metrics.Generates != 1 || metrics.Locked != 1 {
		t.Errorf("metrics = %+v, want 1 generate with 1 locked", metrics)
	}
}

func TestRegenerate_UnlockedSlotsChange(t *testing.T) {
	ctx := context.Background()
	s := New(3, newMockColors(
		"#010101", "#020202", "#030303",
		"#040404", "#050505",
	), nil, nil, nil)

	if err := s.Regenerate(ctx); err != nil {
		t.Fatalf("first Regenerate failed: %v", err)
	}
	before := s.Hexes()

	if _, err := s.ToggleLock(1); err != nil {
		t.Fatalf("ToggleLock failed: %v", err)
	}
	if err := s.Regenerate(ctx); err != nil {
		t.Fatalf("second Regenerate failed: %v", err)
	}
	after := s.Hexes()

	if after[1] != before[1] {
		t.Errorf("locked slot changed from %s to %s", before[1], after[1])
	}
	for _, i := range []int{0, 2} {
		if after[i] == before[i] {
			t.Errorf("unlocked slot %d kept %s", i, after[i])
		}
	}
	if want := []string{"#040404", "#020202", "#050505"}; !reflect.DeepEqual(after, want) {
		t.Errorf("Hexes() = %v, want %v", after, want)
	}
}

func TestRegenerate_FailureIsBestEffort(t *testing.T) {
	ctx := context.Background()
	mock := newMockColors("#101010", "#202020", "#303030", "#404040")
	s := New(4, mock, nil, nil, nil)
	if err := s.Regenerate(ctx); err != nil {
		t.Fatalf("Regenerate failed: %v", err)
	}

	mock.RandomFunc = sequence("#aaaaaa", "#bbbbbb")
	err := s.Regenerate(ctx)
	if !errors.Is(err, domain.ErrGeneration) {
		t.Fatalf("Regenerate error = %v, want ErrGeneration", err)
	}

	want := []string{"#aaaaaa", "#bbbbbb", "#303030", "#404040"}
	if got := s.Hexes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Hexes() = %v, want %v", got, want)
	}

	// The surface follows the partially updated state.
	v, _ := s.View(1)
	if v.Label != "#bbbbbb" {
		t.Errorf("slot 1 label = %s, want #bbbbbb", v.Label)
	}
}

func TestRegenerate_RenderFailureIsIsolated(t *testing.T) {
	ctx := context.Background()
	s := New(3, newMockColors("#aaaaaa", "#bbbbbb"), nil, nil, nil)

	// Slot 0 is locked before it ever had a color.
	if _, err := s.ToggleLock(0); err != nil {
		t.Fatalf("ToggleLock failed: %v", err)
	}

	err := s.Regenerate(ctx)
	if !errors.Is(err, domain.ErrEmptySwatch) {
		t.Fatalf("Regenerate error = %v, want ErrEmptySwatch", err)
	}

	surface := s.Snapshot()
	if surface.Swatches[0].Err == nil {
		t.Error("slot 0 should carry its render error")
	}
	for i, want := range []string{"", "#aaaaaa", "#bbbbbb"} {
		if got := surface.Swatches[i].Label; got != want {
			t.Errorf("slot %d label = %q, want %q", i, got, want)
		}
	}
}

func TestStart(t *testing.T) {
	ctx := context.Background()
	store := newBrokenLibraryStore()
	s := New(2, newMockColors("#aaaaaa", "#bbbbbb"), newGateway(store), nil, nil)

	if err := s.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if got := s.Hexes(); !reflect.DeepEqual(got, []string{"#aaaaaa", "#bbbbbb"}) {
		t.Errorf("Hexes() = %v", got)
	}
	if len(s.Library()) != 0 {
		t.Errorf("corrupt storage should start with an empty library")
	}
}
