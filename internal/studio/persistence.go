package studio

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/swatches/internal/domain"
	"github.com/emiliopalmerini/swatches/internal/library"
)

var errNoLibrary = errors.New("no palette library configured")

// Save stores the committed palette under name. On failure the notice
// indicator is raised; the session list keeps the record.
func (s *Studio) Save(ctx context.Context, name string) (domain.SavedPalette, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.library == nil {
		return domain.SavedPalette{}, errNoLibrary
	}

	hexes := s.palette.Hexes()
	for i, h := range hexes {
		if h == "" {
			return domain.SavedPalette{}, fmt.Errorf("slot %d: %w", i, domain.ErrEmptySwatch)
		}
	}

	rec, err := s.library.Save(ctx, name, hexes)
	if s.metrics != nil {
		s.metrics.RecordSave(ctx, err == nil)
	}
	if err != nil {
		if errors.Is(err, domain.ErrStorage) {
			s.notice = "Palette could not be saved"
		}
		return rec, err
	}

	s.log.Info("palette saved", zap.String("name", rec.Name), zap.Int("sequence", rec.SequenceNumber))
	return rec, nil
}

// Select applies the saved palette id to every slot and closes the library.
// A palette with the wrong number of colors leaves the studio untouched.
func (s *Studio) Select(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.library == nil {
		return errNoLibrary
	}
	rec, err := s.library.Find(id)
	if err != nil {
		return err
	}
	return s.apply(ctx, rec)
}

// Apply loads a palette record that is not necessarily in the library.
func (s *Studio) Apply(ctx context.Context, rec domain.SavedPalette) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(ctx, rec)
}

func (s *Studio) apply(ctx context.Context, rec domain.SavedPalette) error {
	if err := library.Select(s.palette, rec); err != nil {
		return err
	}
	for i := range s.pending {
		s.pending[i] = domain.Color{}
	}
	s.libraryOpen = false
	if s.metrics != nil {
		s.metrics.RecordSelect(ctx)
	}
	return s.renderAll()
}

// Library returns the saved palettes of this session.
func (s *Studio) Library() []domain.SavedPalette {
	if s.library == nil {
		return nil
	}
	return s.library.Records()
}

// Reload rereads the saved palettes from storage.
func (s *Studio) Reload(ctx context.Context) ([]domain.SavedPalette, error) {
	if s.library == nil {
		return nil, errNoLibrary
	}
	return s.library.LoadAll(ctx)
}
