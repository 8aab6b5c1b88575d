package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestChips(t *testing.T) {
	tests := []struct {
		name  string
		hexes []string
		width int
	}{
		{name: "empty", hexes: nil, width: 0},
		{name: "one", hexes: []string{"#ff0000"}, width: 2},
		{name: "five", hexes: []string{"#ff0000", "#00ff00", "#0000ff", "#ffffff", "#000000"}, width: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lipgloss.Width(Chips(tt.hexes)); got != tt.width {
				t.Errorf("width = %d, want %d", got, tt.width)
			}
		})
	}
}

func TestSwatch_KeepsLabel(t *testing.T) {
	if got := Swatch("#000000", "#ffffff").Render("#000000"); lipgloss.Width(got) != 7 {
		t.Errorf("Render() width = %d, want 7", lipgloss.Width(got))
	}
}
