package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/emiliopalmerini/swatches/internal/pkg/tui/theme"
)

// Option represents a selectable option
type Option struct {
	Label string
	Value string
	// Chips are hex colors drawn after the label.
	Chips []string
}

// ListSelectedMsg is sent when enter is pressed on an option.
type ListSelectedMsg struct {
	Value string
}

// List is a single-select list component
type List struct {
	Label   string
	Options []Option
	Cursor  int
	Focused bool
	styles  *theme.Styles
}

func NewList(label string, options []Option) List {
	return List{
		Label:   label,
		Options: options,
		styles:  theme.Default(),
	}
}

// Focus sets the list as focused
func (l *List) Focus() {
	l.Focused = true
}

// Blur removes focus from the list
func (l *List) Blur() {
	l.Focused = false
}

// SetOptions replaces the options and keeps the cursor in bounds.
func (l *List) SetOptions(options []Option) {
	l.Options = options
	if l.Cursor >= len(options) {
		l.Cursor = max(len(options)-1, 0)
	}
}

// Update handles key events for the list
func (l List) Update(msg tea.Msg) (List, tea.Cmd) {
	if !l.Focused || len(l.Options) == 0 {
		return l, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "k", "up":
			if l.Cursor > 0 {
				l.Cursor--
			}
		case "j", "down":
			if l.Cursor < len(l.Options)-1 {
				l.Cursor++
			}
		case "enter":
			value := l.Options[l.Cursor].Value
			return l, func() tea.Msg { return ListSelectedMsg{Value: value} }
		}
	}

	return l, nil
}

// View renders the list
func (l List) View() string {
	var b strings.Builder

	b.WriteString(l.styles.Subtitle.Render(l.Label))
	b.WriteString("\n\n")

	if len(l.Options) == 0 {
		b.WriteString(l.styles.Muted.Render("  nothing here yet"))
		b.WriteString("\n")
		return b.String()
	}

	for i, opt := range l.Options {
		isCursor := l.Focused && i == l.Cursor

		indicator := " "
		label := l.styles.Muted.Render(opt.Label)
		if isCursor {
			indicator = l.styles.Pointer.Render(">")
			label = l.styles.Cursor.Render(opt.Label)
		}

		b.WriteString(fmt.Sprintf("  %s %s %s\n", indicator, theme.Chips(opt.Chips), label))
	}

	return b.String()
}
