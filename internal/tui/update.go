package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emiliopalmerini/swatches/internal/domain"
	"github.com/emiliopalmerini/swatches/internal/pkg/tui/components"
)

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		switch m.mode {
		case ModeAdjust:
			m, cmd = m.updateAdjust(msg)
		case ModeSave:
			m, cmd = m.updateSave(msg)
		case ModeLibrary:
			m, cmd = m.updateLibrary(msg)
		default:
			m, cmd = m.updateBrowse(msg)
		}
		m.syncHelp()
		return m, cmd

	case components.SliderMovedMsg:
		view, err := m.studio.Preview(m.slot, msg.Channel, msg.Value)
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.loadSliders(view)
		return m, nil

	case components.SliderReleasedMsg:
		view, err := m.studio.Commit(m.ctx, m.slot)
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.loadSliders(view)
		m.setStatus(fmt.Sprintf("slot %d is now %s", m.slot+1, view.Label))
		return m, nil

	case components.ListSelectedMsg:
		if err := m.studio.Select(m.ctx, msg.Value); err != nil {
			m.setError(err)
			return m, nil
		}
		m.library.Blur()
		m.mode = ModeBrowse
		m.syncHelp()
		m.setStatus("palette applied")
		return m, nil
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Any interaction dismisses the copied and error indicators.
	m.studio.Dismiss()
	m.setStatus("")

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "left":
		if m.slot > 0 {
			m.slot--
		}
	case "right":
		if m.slot < m.studio.Size()-1 {
			m.slot++
		}
	case " ":
		if err := m.studio.Regenerate(m.ctx); err != nil {
			m.setError(err)
		}
	case "l":
		if _, err := m.studio.ToggleLock(m.slot); err != nil {
			m.setError(err)
		}
	case "a":
		open, err := m.studio.ToggleAdjustPanel(m.slot)
		if err != nil {
			m.setError(err)
			break
		}
		if open {
			m.enterAdjust()
		}
	case "c":
		hex, err := m.studio.Copy(m.slot)
		if err != nil {
			m.setError(err)
			break
		}
		m.clipboard(hex)
		m.setStatus("copied " + hex)
	case "w":
		m.mode = ModeSave
		m.nameInput.SetValue("")
		return m, tea.Batch(m.nameInput.Focus(), textinput.Blink)
	case "o":
		m.openLibrary()
	}
	return m, nil
}

func (m *Model) enterAdjust() {
	view, err := m.studio.View(m.slot)
	if err != nil {
		m.setError(err)
		return
	}
	m.mode = ModeAdjust
	m.focusChannel(domain.Hue)
	m.loadSliders(view)
}

func (m Model) updateAdjust(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "h":
		m.focusChannel(domain.Hue)
		return m, nil
	case "s":
		m.focusChannel(domain.Saturation)
		return m, nil
	case "b":
		m.focusChannel(domain.Lightness)
		return m, nil
	case "esc", "a":
		if _, err := m.studio.Revert(m.slot); err != nil {
			m.setError(err)
		}
		if err := m.studio.CloseAdjustPanel(m.slot); err != nil {
			m.setError(err)
		}
		m.mode = ModeBrowse
		return m, nil
	}

	i := int(m.channel)
	var cmd tea.Cmd
	m.sliders[i], cmd = m.sliders[i].Update(msg)
	return m, cmd
}

func (m Model) updateSave(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.nameInput.Blur()
		m.mode = ModeBrowse
		return m, nil
	case "enter":
		rec, err := m.studio.Save(m.ctx, m.nameInput.Value())
		if err != nil {
			m.setError(err)
			if errors.Is(err, domain.ErrInvalidName) {
				return m, nil
			}
		} else {
			m.setStatus(fmt.Sprintf("saved %q", rec.Name))
		}
		m.nameInput.Blur()
		m.mode = ModeBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *Model) openLibrary() {
	saved := m.studio.OpenLibrary()
	options := make([]components.Option, 0, len(saved))
	for i := len(saved) - 1; i >= 0; i-- {
		options = append(options, components.Option{
			Label: saved[i].Name,
			Value: saved[i].ID,
			Chips: saved[i].Colors,
		})
	}
	m.library.SetOptions(options)
	m.library.Focus()
	m.mode = ModeLibrary
}

func (m Model) updateLibrary(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "o", "q":
		m.studio.CloseLibrary()
		m.library.Blur()
		m.mode = ModeBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.library, cmd = m.library.Update(msg)
	return m, cmd
}

func (m *Model) focusChannel(ch domain.Channel) {
	m.channel = ch
	for i := range m.sliders {
		if m.sliders[i].Channel == ch {
			m.sliders[i].Focus()
		} else {
			m.sliders[i].Blur()
		}
	}
}

func (m *Model) loadSliders(view domain.SwatchView) {
	for i := range m.sliders {
		ch := m.sliders[i].Channel
		m.sliders[i].Value = view.Sliders.Get(ch)
		m.sliders[i].Stops = view.Gradients.For(ch)
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.err = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.err = true
}
