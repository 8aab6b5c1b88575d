package studio

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/swatches/internal/domain"
)

// Regenerate draws a new random color for every unlocked slot, in slot
// order, then re-renders every slot. A color service failure stops the loop
// with ErrGeneration; slots before the failure keep their new colors.
func (s *Studio) Regenerate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	locked := 0
	for i := 0; i < s.palette.Size(); i++ {
		sw, err := s.palette.Get(i)
		if err != nil {
			return err
		}
		s.pending[i] = domain.Color{}
		if sw.Locked {
			locked++
			continue
		}

		c, err := s.colors.Random()
		if err != nil {
			_ = s.renderAll()
			s.log.Error("color generation failed", zap.Int("slot", i), zap.Error(err))
			return fmt.Errorf("%w: slot %d: %v", domain.ErrGeneration, i, err)
		}
		if err := s.palette.SetColor(i, c); err != nil {
			return err
		}
	}

	s.recordGenerate(ctx, locked)

	if err := s.renderAll(); err != nil {
		s.log.Warn("some swatches could not be rendered", zap.Error(err))
		return err
	}
	return nil
}

func (s *Studio) recordGenerate(ctx context.Context, locked int) {
	if s.metrics != nil {
		s.metrics.RecordGenerate(ctx, s.palette.Size(), locked)
	}
}
