// Package colors implements the color service on top of go-colorful.
package colors

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/emiliopalmerini/swatches/internal/domain"
)

// Service is a go-colorful backed ports.ColorService.
type Service struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewService creates a service seeded from the runtime's random source.
func NewService() *Service {
	return NewServiceWithRand(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewServiceWithRand creates a service drawing from rng, for reproducible palettes.
func NewServiceWithRand(rng *rand.Rand) *Service {
	return &Service{rng: rng}
}

// Random picks a color uniformly from the 24-bit sRGB cube.
func (s *Service) Random() (domain.Color, error) {
	if s.rng == nil {
		return domain.Color{}, fmt.Errorf("%w: no random source", domain.ErrGeneration)
	}
	s.mu.Lock()
	v := s.rng.Uint32N(1 << 24)
	s.mu.Unlock()

	c := colorful.Color{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
	}
	return domain.NewColor(c), nil
}

// WithChannel replaces one HSL component of c. Hue wraps at 360.
func (s *Service) WithChannel(c domain.Color, ch domain.Channel, v float64) domain.Color {
	h, sat, l := c.HSL()
	switch ch {
	case domain.Hue:
		h = math.Mod(v, 360)
		if h < 0 {
			h += 360
		}
	case domain.Saturation:
		sat = clamp01(v)
	case domain.Lightness:
		l = clamp01(v)
	}
	return domain.NewColor(colorful.Hsl(h, sat, l))
}

// Luminance is the WCAG relative luminance of c.
func (s *Service) Luminance(c domain.Color) float64 {
	r, g, b := c.Colorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Scale interpolates in RGB between equally spaced stops.
func (s *Service) Scale(stops ...domain.Color) func(t float64) domain.Color {
	if len(stops) == 0 {
		return func(float64) domain.Color { return domain.Color{} }
	}
	if len(stops) == 1 {
		return func(float64) domain.Color { return stops[0] }
	}
	segments := float64(len(stops) - 1)
	return func(t float64) domain.Color {
		t = clamp01(t)
		pos := t * segments
		i := int(math.Floor(pos))
		if i >= len(stops)-1 {
			return stops[len(stops)-1]
		}
		local := pos - float64(i)
		a, b := stops[i].Colorful(), stops[i+1].Colorful()
		return domain.NewColor(a.BlendRgb(b, local))
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
