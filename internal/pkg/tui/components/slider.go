package components

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/emiliopalmerini/swatches/internal/domain"
	"github.com/emiliopalmerini/swatches/internal/pkg/tui/theme"
)

// coarse is how many channel steps one key press moves a slider.
const coarse = 5

// SliderMovedMsg is sent while a slider is being moved.
type SliderMovedMsg struct {
	Channel domain.Channel
	Value   float64
}

// SliderReleasedMsg is sent when the user settles on a slider value.
type SliderReleasedMsg struct {
	Channel domain.Channel
}

// Slider is a horizontal channel slider drawn over its gradient.
type Slider struct {
	Channel domain.Channel
	Value   float64
	Stops   []string
	Width   int
	Focused bool
	styles  *theme.Styles
}

func NewSlider(ch domain.Channel) Slider {
	return Slider{
		Channel: ch,
		Width:   24,
		styles:  theme.Default(),
	}
}

// Focus sets the slider as focused
func (s *Slider) Focus() {
	s.Focused = true
}

// Blur removes focus from the slider
func (s *Slider) Blur() {
	s.Focused = false
}

// Nudge returns the value dir coarse steps away, clamped to the channel range.
func (s Slider) Nudge(dir int) float64 {
	r := s.Channel.Range()
	v := s.Value + float64(dir)*r.Step*coarse
	v = math.Round(v/r.Step) * r.Step
	return math.Max(r.Min, math.Min(r.Max, v))
}

func (s Slider) Update(msg tea.Msg) (Slider, tea.Cmd) {
	if !s.Focused {
		return s, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left":
			return s.move(-1)
		case "right":
			return s.move(1)
		case "enter":
			ch := s.Channel
			return s, func() tea.Msg { return SliderReleasedMsg{Channel: ch} }
		}
	}

	return s, nil
}

func (s Slider) move(dir int) (Slider, tea.Cmd) {
	v := s.Nudge(dir)
	if v == s.Value {
		return s, nil
	}
	s.Value = v
	ch := s.Channel
	return s, func() tea.Msg { return SliderMovedMsg{Channel: ch, Value: v} }
}

// View renders the slider
func (s Slider) View() string {
	var b strings.Builder

	label := fmt.Sprintf("%-11s", s.Channel)
	if s.Focused {
		b.WriteString(s.styles.Cursor.Render("> " + label))
	} else {
		b.WriteString(s.styles.Muted.Render("  " + label))
	}

	r := s.Channel.Range()
	marker := 0
	if s.Width > 1 {
		marker = int(math.Round((s.Value - r.Min) / (r.Max - r.Min) * float64(s.Width-1)))
	}

	for i := 0; i < s.Width; i++ {
		t := 0.0
		if s.Width > 1 {
			t = float64(i) / float64(s.Width-1)
		}
		cell := lipgloss.NewStyle().Background(lipgloss.Color(sample(s.Stops, t)))
		if i == marker {
			b.WriteString(cell.Foreground(theme.White).Bold(true).Render("┃"))
		} else {
			b.WriteString(cell.Render(" "))
		}
	}

	b.WriteString(" ")
	b.WriteString(s.styles.Value.Render(formatValue(s.Channel, s.Value)))
	return b.String()
}

// sample blends the gradient stops at t in [0,1].
func sample(stops []string, t float64) string {
	switch len(stops) {
	case 0:
		return "#000000"
	case 1:
		return stops[0]
	}

	pos := t * float64(len(stops)-1)
	i := int(math.Floor(pos))
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	a, errA := colorful.Hex(stops[i])
	b, errB := colorful.Hex(stops[i+1])
	if errA != nil || errB != nil {
		return stops[i]
	}
	return a.BlendRgb(b, pos-float64(i)).Clamped().Hex()
}

func formatValue(ch domain.Channel, v float64) string {
	if ch == domain.Hue {
		return fmt.Sprintf("%3.0f°", v)
	}
	return fmt.Sprintf("%3.0f%%", v*100)
}
