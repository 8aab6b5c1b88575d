package studio

import "github.com/emiliopalmerini/swatches/internal/domain"

// ToggleLock flips the lock of slot and returns the new state.
func (s *Studio) ToggleLock(slot int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	locked, err := s.palette.ToggleLock(slot)
	if err != nil {
		return false, err
	}
	s.views[slot].Locked = locked
	return locked, nil
}

// ToggleAdjustPanel opens or closes the slider panel of slot.
func (s *Studio) ToggleAdjustPanel(slot int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.palette.Get(slot); err != nil {
		return false, err
	}
	s.views[slot].PanelOpen = !s.views[slot].PanelOpen
	return s.views[slot].PanelOpen, nil
}

func (s *Studio) CloseAdjustPanel(slot int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.palette.Get(slot); err != nil {
		return err
	}
	s.views[slot].PanelOpen = false
	return nil
}

// Copy returns the hex label currently shown on slot and raises the
// "copied" indicator until the next Dismiss.
func (s *Studio) Copy(slot int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.palette.Get(slot); err != nil {
		return "", err
	}
	label := s.views[slot].Label
	if label == "" {
		return "", domain.ErrEmptySwatch
	}
	s.copied = label
	return label, nil
}

// Dismiss clears the transient copy and error indicators.
func (s *Studio) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.copied = ""
	s.notice = ""
}

// OpenLibrary shows the saved palettes panel.
func (s *Studio) OpenLibrary() []domain.SavedPalette {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.libraryOpen = true
	if s.library == nil {
		return nil
	}
	return s.library.Records()
}

func (s *Studio) CloseLibrary() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.libraryOpen = false
}

// Pin sets slot to c and locks it, so generation leaves it alone.
func (s *Studio) Pin(slot int, c domain.Color) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.palette.SetColor(slot, c); err != nil {
		return err
	}
	if _, err := s.palette.SetLocked(slot, true); err != nil {
		return err
	}
	s.pending[slot] = domain.Color{}
	v, err := s.render(slot)
	s.views[slot] = v
	return err
}
