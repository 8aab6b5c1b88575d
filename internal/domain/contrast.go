package domain

// Ink is the foreground color drawn on top of a swatch.
type Ink string

const (
	InkBlack Ink = "black"
	InkWhite Ink = "white"
)

// inkThreshold is fixed; luminance exactly at the threshold gets white ink.
const inkThreshold = 0.5

// InkFor maps a perceptual luminance in [0,1] to a readable foreground.
func InkFor(luminance float64) Ink {
	if luminance > inkThreshold {
		return InkBlack
	}
	return InkWhite
}

// Hex returns the ink as a CSS color.
func (i Ink) Hex() string {
	if i == InkBlack {
		return "#000000"
	}
	return "#ffffff"
}
