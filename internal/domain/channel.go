package domain

import (
	"fmt"
	"math"
	"strings"
)

// Channel is one independently adjustable HSL component of a swatch.
type Channel int

const (
	Hue Channel = iota
	Saturation
	Lightness
)

// Channels lists the channels in slider order.
var Channels = []Channel{Hue, Saturation, Lightness}

// ChannelRange describes the slider domain of a channel.
type ChannelRange struct {
	Min  float64
	Max  float64
	Step float64
}

func (c Channel) String() string {
	switch c {
	case Hue:
		return "hue"
	case Saturation:
		return "saturation"
	case Lightness:
		return "lightness"
	default:
		return fmt.Sprintf("channel(%d)", int(c))
	}
}

// ParseChannel accepts the channel name or its first letter.
// "brightness" is accepted as an alias of lightness.
func ParseChannel(s string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hue", "h":
		return Hue, nil
	case "saturation", "sat", "s":
		return Saturation, nil
	case "lightness", "brightness", "bright", "l", "b":
		return Lightness, nil
	}
	return 0, fmt.Errorf("%w: unknown channel %q", ErrInvalidValue, s)
}

func (c Channel) Range() ChannelRange {
	if c == Hue {
		return ChannelRange{Min: 0, Max: 360, Step: 1}
	}
	return ChannelRange{Min: 0, Max: 1, Step: 0.01}
}

// Validate reports ErrInvalidValue when v is outside the channel domain.
func (c Channel) Validate(v float64) error {
	r := c.Range()
	if math.IsNaN(v) || v < r.Min || v > r.Max {
		return fmt.Errorf("%w: %s=%v not in [%v,%v]", ErrInvalidValue, c, v, r.Min, r.Max)
	}
	return nil
}
