package domain

import "math"

// Sliders holds the three channel handle positions of one swatch.
type Sliders struct {
	Hue        float64
	Saturation float64
	Lightness  float64
}

// ResetSliders decomposes c into slider positions: hue rounded to an
// integer degree, saturation and lightness rounded to two decimals.
func ResetSliders(c Color) Sliders {
	h, s, l := c.HSL()
	hue := math.Round(h)
	if hue >= 360 {
		hue = 0
	}
	return Sliders{
		Hue:        hue,
		Saturation: round2(s),
		Lightness:  round2(l),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s Sliders) Get(ch Channel) float64 {
	switch ch {
	case Saturation:
		return s.Saturation
	case Lightness:
		return s.Lightness
	default:
		return s.Hue
	}
}

// With returns a copy of s with channel ch set to v.
func (s Sliders) With(ch Channel, v float64) Sliders {
	switch ch {
	case Saturation:
		s.Saturation = v
	case Lightness:
		s.Lightness = v
	default:
		s.Hue = v
	}
	return s
}

// Gradients holds CSS color stops for the background of each slider.
type Gradients struct {
	Hue        []string
	Saturation []string
	Lightness  []string
}

func (g Gradients) For(ch Channel) []string {
	switch ch {
	case Saturation:
		return g.Saturation
	case Lightness:
		return g.Lightness
	default:
		return g.Hue
	}
}

// SwatchView is everything the host UI needs to draw one slot.
type SwatchView struct {
	Index      int
	Background string
	Label      string
	Ink        Ink
	Locked     bool
	PanelOpen  bool
	Sliders    Sliders
	Gradients  Gradients
	// Pending is true while a previewed color has not been committed.
	Pending bool
	// Err is set when the slot could not be rendered.
	Err error
}

// Surface is a point-in-time copy of the whole UI state.
type Surface struct {
	Swatches    []SwatchView
	Copied      string
	LibraryOpen bool
	Library     []SavedPalette
	Notice      string
}
