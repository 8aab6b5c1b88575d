package ports

import "github.com/emiliopalmerini/swatches/internal/domain"

// ColorService performs all color math on behalf of the studio.
type ColorService interface {
	// Random returns a new random color.
	Random() (domain.Color, error)
	// WithChannel returns c with one HSL channel replaced by v.
	WithChannel(c domain.Color, ch domain.Channel, v float64) domain.Color
	// Luminance returns the perceptual relative luminance of c in [0,1].
	Luminance(c domain.Color) float64
	// Scale returns an interpolator over equally spaced stops; t is in [0,1].
	Scale(stops ...domain.Color) func(t float64) domain.Color
}
