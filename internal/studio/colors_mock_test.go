package studio

import (
	"errors"

	"github.com/emiliopalmerini/swatches/internal/adapters/colors"
	"github.com/emiliopalmerini/swatches/internal/domain"
)

// MockColorService is a mock implementation of ports.ColorService for testing.
// Unset funcs use the real go-colorful service.
type MockColorService struct {
	RandomFunc func() (domain.Color, error)

	real *colors.Service
}

func newMockColors(hexes ...string) *MockColorService {
	m := &MockColorService{real: colors.NewService()}
	if len(hexes) > 0 {
		m.RandomFunc = sequence(hexes...)
	}
	return m
}

// sequence returns the given colors in order, then fails.
func sequence(hexes ...string) func() (domain.Color, error) {
	i := 0
	return func() (domain.Color, error) {
		if i >= len(hexes) {
			return domain.Color{}, errors.New("sequence exhausted")
		}
		c := domain.MustParseHex(hexes[i])
		i++
		return c, nil
	}
}

func (m *MockColorService) Random() (domain.Color, error) {
	if m.RandomFunc != nil {
		return m.RandomFunc()
	}
	return m.real.Random()
}

func (m *MockColorService) WithChannel(c domain.Color, ch domain.Channel, v float64) domain.Color {
	return m.real.WithChannel(c, ch, v)
}

func (m *MockColorService) Luminance(c domain.Color) float64 {
	return m.real.Luminance(c)
}

func (m *MockColorService) Scale(stops ...domain.Color) func(t float64) domain.Color {
	return m.real.Scale(stops...)
}
