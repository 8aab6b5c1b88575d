package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/emiliopalmerini/swatches/internal/domain"
)

func TestSlider_Nudge(t *testing.T) {
	tests := []struct {
		name  string
		ch    domain.Channel
		value float64
		dir   int
		want  float64
	}{
		{"hue right", domain.Hue, 100, 1, 105},
		{"hue clamps at max", domain.Hue, 358, 1, 360},
		{"hue clamps at min", domain.Hue, 2, -1, 0},
		{"saturation left", domain.Saturation, 0.5, -1, 0.45},
		{"lightness clamps at max", domain.Lightness, 0.98, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSlider(tt.ch)
			s.Value = tt.value
			got := s.Nudge(tt.dir)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Nudge(%d) = %v, want %v", tt.dir, got, tt.want)
			}
		})
	}
}

func TestSlider_UpdateEmitsMessages(t *testing.T) {
	s := NewSlider(domain.Hue)
	s.Value = 10

	if _, cmd := s.Update(tea.KeyMsg{Type: tea.KeyRight}); cmd != nil {
		t.Error("blurred slider should ignore keys")
	}

	s.Focus()
	s, cmd := s.Update(tea.KeyMsg{Type: tea.KeyRight})
	if cmd == nil {
		t.Fatal("expected a moved message")
	}
	moved, ok := cmd().(SliderMovedMsg)
	if !ok || moved.Channel != domain.Hue || moved.Value != 15 || s.Value != 15 {
		t.Errorf("moved = %+v, slider value %v", moved, s.Value)
	}

	_, cmd = s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a released message")
	}
	if _, ok := cmd().(SliderReleasedMsg); !ok {
		t.Error("enter should release the slider")
	}
}

func TestSlider_NoMessageAtBound(t *testing.T) {
	s := NewSlider(domain.Saturation)
	s.Value = 1
	s.Focus()
	if _, cmd := s.Update(tea.KeyMsg{Type: tea.KeyRight}); cmd != nil {
		t.Error("slider at max should not emit a move")
	}
}

func TestSlider_View(t *testing.T) {
	s := NewSlider(domain.Lightness)
	s.Value = 0.5
	s.Stops = []string{"#000000", "#ff0000", "#ffffff"}

	view := s.View()
	if !strings.Contains(view, "lightness") || !strings.Contains(view, "50%") {
		t.Errorf("View() = %q", view)
	}
	if strings.Count(view, "┃") != 1 {
		t.Error("view should draw exactly one marker")
	}
}

func TestSample(t *testing.T) {
	stops := []string{"#000000", "#ffffff"}
	tests := []struct {
		t    float64
		want string
	}{
		{0, "#000000"},
		{1, "#ffffff"},
		{0.5, "#808080"},
	}
	for _, tt := range tests {
		if got := sample(stops, tt.t); got != tt.want {
			t.Errorf("sample(%v) = %s, want %s", tt.t, got, tt.want)
		}
	}
	if got := sample(nil, 0.3); got != "#000000" {
		t.Errorf("sample(nil) = %s", got)
	}
}
