package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the shared chrome styles of the terminal UI.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Value    lipgloss.Style

	// Cursor marks the focused row or slider; Pointer is its ">" glyph.
	Cursor  lipgloss.Style
	Pointer lipgloss.Style

	Help    lipgloss.Style
	HelpKey lipgloss.Style

	Card lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
}

var (
	defaultStyles *Styles
	once          sync.Once
)

// Default returns the shared Styles.
func Default() *Styles {
	once.Do(func() {
		defaultStyles = newStyles()
	})
	return defaultStyles
}

func newStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(White).
			Background(DarkGray).
			Padding(0, 1).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(DimGray),

		Value: lipgloss.NewStyle().
			Foreground(White).
			Bold(true).
			Width(6).
			Align(lipgloss.Right),

		Cursor: lipgloss.NewStyle().
			Foreground(BrightAccent).
			Bold(true),

		Pointer: lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(DimGray).
			MarginTop(1),

		HelpKey: lipgloss.NewStyle().
			Foreground(LightGray).
			Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DarkGray).
			Padding(0, 1),

		Success: lipgloss.NewStyle().
			Foreground(Success),

		Error: lipgloss.NewStyle().
			Foreground(Error),
	}
}
