package domain

import "errors"

var (
	ErrOutOfRange    = errors.New("slot index out of range")
	ErrGeneration    = errors.New("color generation failed")
	ErrIndexMismatch = errors.New("palette color count does not match slot count")
	ErrStorage       = errors.New("palette storage failure")
	ErrEmptySwatch   = errors.New("swatch has no color")
	ErrInvalidColor  = errors.New("invalid color")
	ErrInvalidValue  = errors.New("channel value out of range")
	ErrNotFound      = errors.New("palette not found")
	ErrInvalidName   = errors.New("palette name is required")
)
