// Package studio owns the palette of one application session and keeps its
// UI surface in sync with it.
package studio

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/swatches/internal/domain"
	"github.com/emiliopalmerini/swatches/internal/library"
	"github.com/emiliopalmerini/swatches/internal/ports"
)

// DefaultSlots is the number of swatches when none is configured.
const DefaultSlots = 5

// Studio is the single owner of the session's Palette State. Every exported
// method holds the studio lock for its whole duration, so events are
// handled one at a time and run to completion.
type Studio struct {
	mu      sync.Mutex
	palette *domain.Palette
	colors  ports.ColorService
	library *library.Gateway
	metrics ports.MetricsExporter
	log     *zap.Logger

	views       []domain.SwatchView
	pending     []domain.Color
	copied      string
	libraryOpen bool
	notice      string
}

// New creates a studio with slots empty swatches. metrics and log may be nil.
func New(
	slots int,
	colors ports.ColorService,
	lib *library.Gateway,
	metrics ports.MetricsExporter,
	log *zap.Logger,
) *Studio {
	if slots <= 0 {
		slots = DefaultSlots
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &Studio{
		palette: domain.NewPalette(slots),
		colors:  colors,
		library: lib,
		metrics: metrics,
		log:     log,
		views:   make([]domain.SwatchView, slots),
		pending: make([]domain.Color, slots),
	}
	for i := range s.views {
		s.views[i].Index = i
	}
	return s
}

// Start loads the saved palettes and generates the first palette. A library
// that cannot be read is treated as empty.
func (s *Studio) Start(ctx context.Context) error {
	if s.library != nil {
		if _, err := s.library.LoadAll(ctx); err != nil {
			s.log.Warn("saved palettes unavailable, starting with an empty library", zap.Error(err))
		}
	}
	return s.Regenerate(ctx)
}

func (s *Studio) Size() int {
	return s.palette.Size()
}

// Swatch returns the current state of one slot.
func (s *Studio) Swatch(i int) (domain.Swatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.palette.Get(i)
}

// Hexes returns the committed colors of every slot.
func (s *Studio) Hexes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.palette.Hexes()
}

// Snapshot returns a copy of the UI surface.
func (s *Studio) Snapshot() domain.Surface {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Studio) snapshot() domain.Surface {
	views := make([]domain.SwatchView, len(s.views))
	copy(views, s.views)

	var saved []domain.SavedPalette
	if s.library != nil {
		saved = s.library.Records()
	}

	return domain.Surface{
		Swatches:    views,
		Copied:      s.copied,
		LibraryOpen: s.libraryOpen,
		Library:     saved,
		Notice:      s.notice,
	}
}

// View returns the surface of one slot.
func (s *Studio) View(i int) (domain.SwatchView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.palette.Get(i); err != nil {
		return domain.SwatchView{}, err
	}
	return s.views[i], nil
}
