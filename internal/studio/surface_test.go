package studio

import (
	"context"
	"errors"
	"testing"

	"github.com/emiliopalmerini/swatches/internal/domain"
)

func TestToggleLock(t *testing.T) {
	s := New(2, newMockColors("#111111", "#222222"), nil, nil, nil)
	_ = s.Regenerate(context.Background())

	locked, err := s.ToggleLock(1)
	if err != nil || !locked {
		t.Fatalf("ToggleLock = %v, %v", locked, err)
	}
	v, _ := s.View(1)
	if !v.Locked {
		t.Error("view should show the slot as locked")
	}

	if _, err := s.ToggleLock(5); !errors.Is(err, domain.ErrOutOfRange) {
		t.Errorf("ToggleLock(5) error = %v, want ErrOutOfRange", err)
	}
}

func TestAdjustPanel(t *testing.T) {
	s := New(2, newMockColors(), nil, nil, nil)

	open, err := s.ToggleAdjustPanel(0)
	if err != nil || !open {
		t.Fatalf("ToggleAdjustPanel = %v, %v", open, err)
	}
	if err := s.CloseAdjustPanel(0); err != nil {
		t.Fatalf("CloseAdjustPanel failed: %v", err)
	}
	if v, _ := s.View(0); v.PanelOpen {
		t.Error("panel should be closed")
	}
	if err := s.CloseAdjustPanel(-1); !errors.Is(err, domain.ErrOutOfRange) {
		t.Errorf("CloseAdjustPanel(-1) error = %v", err)
	}
}

func TestCopyAndDismiss(t *testing.T) {
	s := New(1, newMockColors("#abcdef"), nil, nil, nil)

	if _, err := s.Copy(0); !errors.Is(err, domain.ErrEmptySwatch) {
		t.Errorf("Copy on empty slot error = %v", err)
	}

	_ = s.Regenerate(context.Background())
	hex, err := s.Copy(0)
	if err != nil || hex != "#abcdef" {
		t.Fatalf("Copy = %q, %v", hex, err)
	}
	if got := s.Snapshot().Copied; got != "#abcdef" {
		t.Errorf("Copied indicator = %q", got)
	}

	s.Dismiss()
	if got := s.Snapshot().Copied; got != "" {
		t.Errorf("Copied indicator after dismiss = %q", got)
	}
}

func TestCopy_UsesDisplayedLabel(t *testing.T) {
	s := New(1, newMockColors("#ff0000"), nil, nil, nil)
	_ = s.Regenerate(context.Background())

	// A pending preview does not change the label until it is committed.
	_, _ = s.Preview(0, domain.Hue, 120)
	hex, _ := s.Copy(0)
	if hex != "#ff0000" {
		t.Errorf("Copy = %s, want the displayed label #ff0000", hex)
	}
}

func TestLibraryPanel(t *testing.T) {
	s := New(1, newMockColors(), nil, nil, nil)

	if saved := s.OpenLibrary(); saved != nil {
		t.Errorf("OpenLibrary without gateway = %v", saved)
	}
	if !s.Snapshot().LibraryOpen {
		t.Error("library should be open")
	}
	s.CloseLibrary()
	if s.Snapshot().LibraryOpen {
		t.Error("library should be closed")
	}
}
