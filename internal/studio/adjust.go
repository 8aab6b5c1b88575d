package studio

import (
	"context"
	"fmt"

	"github.com/emiliopalmerini/swatches/internal/domain"
)

// Preview recomposes slot's base color with ch set to value and the other
// two channels taken from the slot's current slider positions. Only the
// surface changes; the palette keeps the base color until Commit.
func (s *Studio) Preview(slot int, ch domain.Channel, value float64) (domain.SwatchView, error) {
	if err := ch.Validate(value); err != nil {
		return domain.SwatchView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sw, err := s.palette.Get(slot)
	if err != nil {
		return domain.SwatchView{}, err
	}
	if sw.Color.IsZero() {
		return domain.SwatchView{}, fmt.Errorf("slot %d: %w", slot, domain.ErrEmptySwatch)
	}

	sliders := s.views[slot].Sliders.With(ch, value)

	// Lightness goes first so a black or white base does not swallow the
	// saturation and hue set afterwards.
	c := s.colors.WithChannel(sw.Color, domain.Lightness, sliders.Lightness)
	c = s.colors.WithChannel(c, domain.Saturation, sliders.Saturation)
	c = s.colors.WithChannel(c, domain.Hue, sliders.Hue)
	c = c.Quantize()

	s.pending[slot] = c

	v := s.views[slot]
	v.Background = c.Hex()
	v.Sliders = sliders
	v.Gradients = s.gradients(c)
	v.Pending = true
	s.views[slot] = v

	return v, nil
}

// Commit writes the previewed color of slot into the palette and re-renders
// the slot. Without a pending preview it only re-renders.
func (s *Studio) Commit(ctx context.Context, slot int) (domain.SwatchView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.palette.Get(slot); err != nil {
		return domain.SwatchView{}, err
	}

	if c := s.pending[slot]; !c.IsZero() {
		if err := s.palette.SetColor(slot, c); err != nil {
			return domain.SwatchView{}, err
		}
		s.pending[slot] = domain.Color{}
		if s.metrics != nil {
			s.metrics.RecordCommit(ctx, slot)
		}
	}

	v, err := s.render(slot)
	s.views[slot] = v
	return v, err
}

// Revert drops the pending preview of slot and redraws its committed color.
func (s *Studio) Revert(slot int) (domain.SwatchView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.palette.Get(slot); err != nil {
		return domain.SwatchView{}, err
	}
	s.pending[slot] = domain.Color{}

	v, err := s.render(slot)
	s.views[slot] = v
	return v, err
}
