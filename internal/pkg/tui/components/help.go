package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/emiliopalmerini/swatches/internal/pkg/tui/theme"
)

// KeyBinding represents a key binding for the help bar
type KeyBinding struct {
	Key  string
	Desc string
}

// HelpBar renders key bindings, wrapping onto new lines past Width.
type HelpBar struct {
	Bindings []KeyBinding
	Width    int
	styles   *theme.Styles
}

// NewHelpBar creates a new help bar
func NewHelpBar(bindings ...KeyBinding) HelpBar {
	return HelpBar{
		Bindings: bindings,
		styles:   theme.Default(),
	}
}

// SetBindings updates the key bindings
func (h *HelpBar) SetBindings(bindings ...KeyBinding) {
	h.Bindings = bindings
}

func (h HelpBar) View() string {
	var lines []string
	var line string
	for _, kb := range h.Bindings {
		part := h.styles.HelpKey.Render(kb.Key) + h.styles.Muted.Render(":"+kb.Desc)
		switch {
		case line == "":
			line = part
		case h.Width > 0 && lipgloss.Width(line)+1+lipgloss.Width(part) > h.Width:
			lines = append(lines, line)
			line = part
		default:
			line += " " + part
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
