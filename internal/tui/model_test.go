package tui

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/emiliopalmerini/swatches/internal/adapters/colors"
	"github.com/emiliopalmerini/swatches/internal/adapters/memory"
	"github.com/emiliopalmerini/swatches/internal/domain"
	"github.com/emiliopalmerini/swatches/internal/library"
	"github.com/emiliopalmerini/swatches/internal/studio"
)

var primaries = []string{"#ff0000", "#00ff00", "#0000ff", "#ffffff", "#000000"}

type fakeClipboard struct {
	copied []string
}

func (f *fakeClipboard) copy(text string) {
	f.copied = append(f.copied, text)
}

func testModel(t *testing.T) (Model, *studio.Studio, *fakeClipboard) {
	t.Helper()
	ctx := context.Background()

	svc := colors.NewServiceWithRand(rand.New(rand.NewPCG(3, 4)))
	st := studio.New(5, svc, library.NewGateway(memory.NewStore(), "", nil), nil, nil)
	if err := st.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := st.Apply(ctx, domain.SavedPalette{Name: "primaries", Colors: primaries}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	clip := &fakeClipboard{}
	return New(ctx, st, clip.copy), st, clip
}

func key(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends keys in order. Commands from sliders and lists are run and
// their messages fed back, as the Bubble Tea runtime would.
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		before := m.Mode()
		next, cmd := m.Update(key(k))
		m = next.(Model)
		if cmd == nil || (before != ModeAdjust && before != ModeLibrary) {
			continue
		}
		switch msg := cmd().(type) {
		case tea.QuitMsg:
		default:
			next, _ = m.Update(msg)
			m = next.(Model)
		}
	}
	return m
}

func TestBrowse_SelectLockAndGenerate(t *testing.T) {
	m, st, _ := testModel(t)

	m = press(t, m, "right", "l")
	if m.Slot() != 1 {
		t.Fatalf("Slot() = %d, want 1", m.Slot())
	}
	if sw, _ := st.Swatch(1); !sw.Locked {
		t.Fatal("slot 1 should be locked")
	}

	m = press(t, m, "space")
	hexes := st.Hexes()
	if hexes[1] != "#00ff00" {
		t.Errorf("locked slot changed to %s", hexes[1])
	}
	if hexes[0] == "#ff0000" && hexes[2] == "#0000ff" {
		t.Error("unlocked slots did not change")
	}
}

func TestBrowse_SlotSelectionStaysInBounds(t *testing.T) {
	m, _, _ := testModel(t)
	m = press(t, m, "left")
	if m.Slot() != 0 {
		t.Errorf("Slot() = %d after left at 0", m.Slot())
	}
	m = press(t, m, "right", "right", "right", "right", "right", "right")
	if m.Slot() != 4 {
		t.Errorf("Slot() = %d, want 4", m.Slot())
	}
}

func TestBrowse_Copy(t *testing.T) {
	m, st, clip := testModel(t)

	m = press(t, m, "c")
	if len(clip.copied) != 1 || clip.copied[0] != "#ff0000" {
		t.Fatalf("clipboard = %v", clip.copied)
	}
	if status, isErr := m.Status(); isErr || !strings.Contains(status, "#ff0000") {
		t.Errorf("status = %q, %v", status, isErr)
	}
	if st.Snapshot().Copied != "#ff0000" {
		t.Error("copied indicator not raised")
	}

	press(t, m, "right")
	if st.Snapshot().Copied != "" {
		t.Error("next key should dismiss the copied indicator")
	}
}

func TestAdjust_PreviewAndCommit(t *testing.T) {
	m, st, _ := testModel(t)

	m = press(t, m, "a")
	if m.Mode() != ModeAdjust {
		t.Fatalf("Mode() = %s, want adjust", m.Mode())
	}

	m = press(t, m, "right")
	if got := st.Hexes()[0]; got != "#ff0000" {
		t.Errorf("preview wrote %s into the palette", got)
	}
	if v, _ := st.View(0); !v.Pending || v.Background != "#ff1500" {
		t.Errorf("preview view = %+v", v)
	}

	m = press(t, m, "enter")
	if got := st.Hexes()[0]; got != "#ff1500" {
		t.Errorf("commit wrote %s, want #ff1500", got)
	}
	if m.Mode() != ModeAdjust {
		t.Errorf("Mode() = %s, commit keeps the panel open", m.Mode())
	}
}

func TestAdjust_EscDiscardsPreview(t *testing.T) {
	m, st, _ := testModel(t)

	m = press(t, m, "a", "b", "left", "esc")
	if m.Mode() != ModeBrowse {
		t.Fatalf("Mode() = %s, want browse", m.Mode())
	}
	v, _ := st.View(0)
	if v.Pending || v.PanelOpen || v.Background != "#ff0000" {
		t.Errorf("view after esc = %+v", v)
	}
}

func TestSave(t *testing.T) {
	m, st, _ := testModel(t)

	m = press(t, m, "w")
	if m.Mode() != ModeSave {
		t.Fatalf("Mode() = %s, want save", m.Mode())
	}
	m = press(t, m, "S", "u", "n", "enter")
	if m.Mode() != ModeBrowse {
		t.Errorf("Mode() = %s after save", m.Mode())
	}
	saved := st.Library()
	if len(saved) != 1 || saved[0].Name != "Sun" {
		t.Fatalf("library = %+v", saved)
	}
}

func TestSave_EmptyNameStaysInPrompt(t *testing.T) {
	m, st, _ := testModel(t)

	m = press(t, m, "w", "enter")
	if m.Mode() != ModeSave {
		t.Errorf("Mode() = %s, want save", m.Mode())
	}
	if _, isErr := m.Status(); !isErr {
		t.Error("expected an error status")
	}
	if len(st.Library()) != 0 {
		t.Error("nothing should be saved")
	}

	m = press(t, m, "esc")
	if m.Mode() != ModeBrowse {
		t.Errorf("Mode() = %s after esc", m.Mode())
	}
}

func TestLibrary_Select(t *testing.T) {
	m, st, _ := testModel(t)

	m = press(t, m, "w", "x", "enter", "space", "o")
	if m.Mode() != ModeLibrary {
		t.Fatalf("Mode() = %s, want library", m.Mode())
	}

	m = press(t, m, "enter")
	if m.Mode() != ModeBrowse {
		t.Errorf("Mode() = %s after select", m.Mode())
	}
	for i, want := range primaries {
		if got := st.Hexes()[i]; got != want {
			t.Errorf("slot %d = %s, want %s", i, got, want)
		}
	}
	if st.Snapshot().LibraryOpen {
		t.Error("library should be closed")
	}
}

func TestView(t *testing.T) {
	m, _, _ := testModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	view := m.View()
	for _, want := range []string{"SWATCHES", "#ff0000", "generate"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	m = press(t, m, "a")
	if !strings.Contains(m.View(), "saturation") {
		t.Error("adjust view should show the sliders")
	}
}
