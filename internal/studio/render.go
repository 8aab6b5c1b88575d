package studio

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/emiliopalmerini/swatches/internal/domain"
)

// hueStops is the fixed rainbow drawn behind every hue slider.
var hueStops = []string{
	"#cc4b4b", "#cccc4b", "#4bcc4b", "#4bcccc", "#4b4bcc", "#cc4bcc", "#cc4b4b",
}

var (
	black = domain.MustParseHex("#000000")
	white = domain.MustParseHex("#ffffff")
)

// render rebuilds the surface of slot i from its base color: label, ink,
// slider gradients and slider positions. The adjust panel state is kept.
func (s *Studio) render(i int) (domain.SwatchView, error) {
	sw, err := s.palette.Get(i)
	if err != nil {
		return domain.SwatchView{}, err
	}

	prev := s.views[i]
	v := domain.SwatchView{
		Index:     i,
		Locked:    sw.Locked,
		PanelOpen: prev.PanelOpen,
	}
	if sw.Color.IsZero() {
		v.Err = fmt.Errorf("slot %d: %w", i, domain.ErrEmptySwatch)
		return v, v.Err
	}

	v.Background = sw.Color.Hex()
	v.Label = sw.Color.Hex()
	v.Ink = domain.InkFor(s.colors.Luminance(sw.Color))
	v.Gradients = s.gradients(sw.Color)
	v.Sliders = domain.ResetSliders(sw.Color)
	return v, nil
}

// renderAll re-renders every slot. A failing slot does not stop the others;
// all failures are returned together.
func (s *Studio) renderAll() error {
	var errs error
	for i := range s.views {
		v, err := s.render(i)
		s.views[i] = v
		errs = multierr.Append(errs, err)
	}
	return errs
}

// gradients computes the slider backgrounds for c: saturation runs from the
// fully desaturated to the fully saturated variant, lightness runs through
// black, c at half lightness and white.
func (s *Studio) gradients(c domain.Color) domain.Gradients {
	noSat := s.colors.WithChannel(c, domain.Saturation, 0)
	fullSat := s.colors.WithChannel(c, domain.Saturation, 1)
	sat := s.colors.Scale(noSat, c, fullSat)

	mid := s.colors.WithChannel(c, domain.Lightness, 0.5)
	light := s.colors.Scale(black, mid, white)

	return domain.Gradients{
		Hue:        append([]string(nil), hueStops...),
		Saturation: []string{sat(0).Hex(), sat(1).Hex()},
		Lightness:  []string{light(0).Hex(), light(0.5).Hex(), light(1).Hex()},
	}
}
