package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Chrome stays neutral so it never competes with the swatches.
var (
	Accent       = lipgloss.Color("#38BDF8")
	BrightAccent = lipgloss.Color("#7DD3FC")

	White     = lipgloss.Color("#F8FAFC")
	LightGray = lipgloss.Color("#94A3B8")
	DimGray   = lipgloss.Color("#64748B")
	DarkGray  = lipgloss.Color("#334155")

	Success = lipgloss.Color("#22C55E")
	Error   = lipgloss.Color("#EF4444")
)

// Swatch is a block filled with bg and labelled in ink.
func Swatch(bg, ink string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(ink))
}

// Chips renders each hex as a two-cell color sample.
func Chips(hexes []string) string {
	var b strings.Builder
	for _, hex := range hexes {
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  "))
	}
	return b.String()
}
