package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/emiliopalmerini/swatches/internal/domain"
	"github.com/emiliopalmerini/swatches/internal/pkg/tui/theme"
)

const (
	defaultWidth = 80
	swatchHeight = 7
)

// View implements tea.Model
func (m Model) View() string {
	surface := m.studio.Snapshot()

	title := m.styles.Title.Render("SWATCHES")
	sections := []string{title, m.renderSwatches(surface)}

	switch m.mode {
	case ModeAdjust:
		sections = append(sections, m.renderSliders())
	case ModeSave:
		sections = append(sections, m.styles.Card.Render(
			m.styles.Subtitle.Render("Save palette")+"\n"+m.nameInput.View()))
	case ModeLibrary:
		sections = append(sections, m.styles.Card.Render(m.library.View()))
	}

	if line := m.statusLine(surface); line != "" {
		sections = append(sections, line)
	}
	sections = append(sections, m.styles.Help.Render(m.help.View()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderSwatches(surface domain.Surface) string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	n := len(surface.Swatches)
	if n == 0 {
		return ""
	}
	cell := max(width/n, 9)

	blocks := make([]string, n)
	for i, v := range surface.Swatches {
		blocks[i] = m.renderSwatch(v, cell, i == m.slot)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func (m Model) renderSwatch(v domain.SwatchView, width int, selected bool) string {
	style := lipgloss.NewStyle().
		Width(width).
		Height(swatchHeight).
		Align(lipgloss.Center, lipgloss.Center)

	if v.Err != nil {
		return style.Foreground(theme.Error).Render("?")
	}

	style = style.Inherit(theme.Swatch(v.Background, v.Ink.Hex()))

	lock := "·"
	if v.Locked {
		lock = "locked"
	}
	marker := " "
	if selected {
		marker = "▲"
	}
	label := v.Label
	if v.Pending {
		label = v.Background + "*"
	}
	return style.Render(strings.Join([]string{label, lock, "", marker}, "\n"))
}

func (m Model) renderSliders() string {
	lines := make([]string, len(m.sliders))
	for i, s := range m.sliders {
		lines[i] = s.View()
	}
	return m.styles.Card.Render(strings.Join(lines, "\n"))
}

func (m Model) statusLine(surface domain.Surface) string {
	switch {
	case m.status != "" && m.err:
		return m.styles.Error.Render(m.status)
	case surface.Notice != "":
		return m.styles.Error.Render(surface.Notice)
	case m.status != "":
		return m.styles.Success.Render(m.status)
	}
	return ""
}
