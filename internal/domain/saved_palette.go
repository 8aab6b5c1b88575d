package domain

import "time"

// SavedPalette is a named, durable snapshot of a palette. It is never
// mutated after creation.
type SavedPalette struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Colors         []string  `json:"colors"`
	SequenceNumber int       `json:"sequenceNumber"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
}
