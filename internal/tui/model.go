// Package tui is the terminal front end of the studio.
package tui

import (
	"context"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/emiliopalmerini/swatches/internal/domain"
	"github.com/emiliopalmerini/swatches/internal/pkg/tui/components"
	"github.com/emiliopalmerini/swatches/internal/pkg/tui/theme"
	"github.com/emiliopalmerini/swatches/internal/studio"
)

// Mode is what the keyboard currently drives.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeAdjust
	ModeSave
	ModeLibrary
)

func (m Mode) String() string {
	switch m {
	case ModeBrowse:
		return "browse"
	case ModeAdjust:
		return "adjust"
	case ModeSave:
		return "save"
	case ModeLibrary:
		return "library"
	default:
		return "unknown"
	}
}

// Clipboard receives copied hex values.
type Clipboard func(text string)

// OSC52 copies through the terminal, which also works over SSH.
func OSC52(text string) {
	termenv.NewOutput(os.Stdout).Copy(text)
}

// Model is the Bubble Tea model over one studio.
type Model struct {
	studio    *studio.Studio
	ctx       context.Context
	clipboard Clipboard
	styles    *theme.Styles

	mode    Mode
	slot    int
	channel domain.Channel
	sliders []components.Slider

	nameInput textinput.Model
	library   components.List
	help      components.HelpBar

	// status is a one-line message; err marks it as an error.
	status string
	err    bool

	width  int
	height int
}

// New creates a model. A nil clipboard falls back to OSC52.
func New(ctx context.Context, st *studio.Studio, clipboard Clipboard) Model {
	if clipboard == nil {
		clipboard = OSC52
	}

	ti := textinput.New()
	ti.Placeholder = "Palette name"
	ti.CharLimit = 64
	ti.Width = 32

	sliders := make([]components.Slider, len(domain.Channels))
	for i, ch := range domain.Channels {
		sliders[i] = components.NewSlider(ch)
	}

	m := Model{
		studio:    st,
		ctx:       ctx,
		clipboard: clipboard,
		styles:    theme.Default(),
		sliders:   sliders,
		nameInput: ti,
		library:   components.NewList("Saved palettes", nil),
		help:      components.NewHelpBar(),
	}
	m.syncHelp()
	return m
}

// Mode returns the current input mode.
func (m Model) Mode() Mode {
	return m.mode
}

// Slot returns the selected slot.
func (m Model) Slot() int {
	return m.slot
}

// Status returns the status line and whether it reports an error.
func (m Model) Status() (string, bool) {
	return m.status, m.err
}

func (m *Model) syncHelp() {
	switch m.mode {
	case ModeAdjust:
		m.help.SetBindings(
			components.KeyBinding{Key: "h/s/b", Desc: "channel"},
			components.KeyBinding{Key: "←/→", Desc: "preview"},
			components.KeyBinding{Key: "enter", Desc: "commit"},
			components.KeyBinding{Key: "esc", Desc: "discard"},
		)
	case ModeSave:
		m.help.SetBindings(
			components.KeyBinding{Key: "enter", Desc: "save"},
			components.KeyBinding{Key: "esc", Desc: "cancel"},
		)
	case ModeLibrary:
		m.help.SetBindings(
			components.KeyBinding{Key: "↑/↓", Desc: "move"},
			components.KeyBinding{Key: "enter", Desc: "apply"},
			components.KeyBinding{Key: "esc", Desc: "close"},
		)
	default:
		m.help.SetBindings(
			components.KeyBinding{Key: "←/→", Desc: "slot"},
			components.KeyBinding{Key: "space", Desc: "generate"},
			components.KeyBinding{Key: "l", Desc: "lock"},
			components.KeyBinding{Key: "a", Desc: "adjust"},
			components.KeyBinding{Key: "c", Desc: "copy"},
			components.KeyBinding{Key: "w", Desc: "save"},
			components.KeyBinding{Key: "o", Desc: "library"},
			components.KeyBinding{Key: "q", Desc: "quit"},
		)
	}
}

// Run starts the studio and blocks until the program exits.
func Run(ctx context.Context, st *studio.Studio, opts ...tea.ProgramOption) error {
	if err := st.Start(ctx); err != nil {
		return err
	}
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(New(ctx, st, nil), opts...).Run()
	return err
}
