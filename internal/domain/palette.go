package domain

import "fmt"

// Swatch is one color slot. Its identity is its position in the Palette.
type Swatch struct {
	Color  Color
	Locked bool
}

// Palette is the ordered, fixed-size list of swatches for a session.
// It only holds state; rendering is a separate step.
type Palette struct {
	swatches []Swatch
}

// NewPalette creates a palette of n empty, unlocked swatches.
func NewPalette(n int) *Palette {
	if n < 0 {
		n = 0
	}
	return &Palette{swatches: make([]Swatch, n)}
}

func (p *Palette) Size() int { return len(p.swatches) }

func (p *Palette) check(i int) error {
	if i < 0 || i >= len(p.swatches) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, i, len(p.swatches))
	}
	return nil
}

func (p *Palette) Get(i int) (Swatch, error) {
	if err := p.check(i); err != nil {
		return Swatch{}, err
	}
	return p.swatches[i], nil
}

// SetColor replaces the base color of slot i, regardless of its lock.
func (p *Palette) SetColor(i int, c Color) error {
	if err := p.check(i); err != nil {
		return err
	}
	p.swatches[i].Color = c
	return nil
}

// SetLocked sets the lock flag of slot i and returns the new value.
func (p *Palette) SetLocked(i int, locked bool) (bool, error) {
	if err := p.check(i); err != nil {
		return false, err
	}
	p.swatches[i].Locked = locked
	return locked, nil
}

// ToggleLock flips the lock flag of slot i and returns the new value.
func (p *Palette) ToggleLock(i int) (bool, error) {
	if err := p.check(i); err != nil {
		return false, err
	}
	return p.SetLocked(i, !p.swatches[i].Locked)
}

// Swatches returns a copy of all slots in order.
func (p *Palette) Swatches() []Swatch {
	out := make([]Swatch, len(p.swatches))
	copy(out, p.swatches)
	return out
}

// Hexes returns the hex string of every slot; unset slots are "".
func (p *Palette) Hexes() []string {
	out := make([]string, len(p.swatches))
	for i, s := range p.swatches {
		out[i] = s.Color.Hex()
	}
	return out
}
