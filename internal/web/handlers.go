package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/emiliopalmerini/swatches/internal/domain"
	"github.com/emiliopalmerini/swatches/internal/web/templates"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	templ.Handler(templates.Page(s.studio.Snapshot())).ServeHTTP(w, r)
}

// handleGenerate re-renders the grid even when generation stops early, since
// the slots before the failure already hold new colors.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	err := s.studio.Regenerate(r.Context())
	if err != nil {
		s.log.Warn("regenerate", zap.Error(err))
	}

	parts := []templ.Component{templates.Grid(s.studio.Snapshot())}
	if err != nil {
		parts = append(parts, templates.ToastOOB(errorMessage(err)))
	}
	s.render(w, r, http.StatusOK, templates.Join(parts...))
}

func (s *Server) handleLock(w http.ResponseWriter, r *http.Request) {
	slot, err := slotParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if _, err := s.studio.ToggleLock(slot); err != nil {
		s.fail(w, r, err)
		return
	}
	s.renderSwatch(w, r, slot)
}

func (s *Server) handleTogglePanel(w http.ResponseWriter, r *http.Request) {
	slot, err := slotParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if _, err := s.studio.ToggleAdjustPanel(slot); err != nil {
		s.fail(w, r, err)
		return
	}
	s.renderSwatch(w, r, slot)
}

func (s *Server) handleClosePanel(w http.ResponseWriter, r *http.Request) {
	slot, err := slotParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.studio.CloseAdjustPanel(slot); err != nil {
		s.fail(w, r, err)
		return
	}
	s.renderSwatch(w, r, slot)
}

// handlePreview serves the continuous "input" signal of a slider. Only the
// preview style block is swapped so the slider being dragged stays in place.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	slot, err := slotParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ch, value, err := channelValue(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	view, err := s.studio.Preview(slot, ch, value)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, templates.PreviewStyle(view))
}

// handleCommit serves the "change" signal fired when a slider is released.
func (s *Server) handleCommit(w http.ResponseWriter, r *http.Request) {
	slot, err := slotParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	view, err := s.studio.Commit(r.Context(), slot)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, templates.Swatch(view))
}

func (s *Server) handleCopy(w http.ResponseWriter, r *http.Request) {
	slot, err := slotParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	hex, err := s.studio.Copy(slot)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, templates.Popup(hex))
}

func (s *Server) handleDismiss(w http.ResponseWriter, r *http.Request) {
	s.studio.Dismiss()
	s.render(w, r, http.StatusOK, templates.Popup(""))
}

func (s *Server) handleOpenLibrary(w http.ResponseWriter, r *http.Request) {
	saved := s.studio.OpenLibrary()
	s.render(w, r, http.StatusOK, templates.Library(saved))
}

func (s *Server) handleCloseLibrary(w http.ResponseWriter, r *http.Request) {
	s.studio.CloseLibrary()
	s.render(w, r, http.StatusOK, templates.LibraryClosed())
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	if _, err := s.studio.Save(r.Context(), r.FormValue("name")); err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, templates.Library(s.studio.Library()))
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	if err := s.studio.Select(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, templates.Join(
		templates.Grid(s.studio.Snapshot()),
		templates.LibraryClosedOOB(),
	))
}

type paletteSlot struct {
	Index  int    `json:"index"`
	Hex    string `json:"hex"`
	Locked bool   `json:"locked"`
}

func (s *Server) handlePalette(w http.ResponseWriter, r *http.Request) {
	surface := s.studio.Snapshot()
	slots := make([]paletteSlot, len(surface.Swatches))
	for i, v := range surface.Swatches {
		slots[i] = paletteSlot{Index: v.Index, Hex: v.Label, Locked: v.Locked}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"slots":  slots,
		"copied": surface.Copied,
	})
}

func (s *Server) renderSwatch(w http.ResponseWriter, r *http.Request, slot int) {
	view, err := s.studio.View(slot)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, templates.Swatch(view))
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		s.log.Error("render failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
}

func slotParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "slot")
	slot, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrOutOfRange, raw)
	}
	return slot, nil
}

// channelValue reads the channel from the "channel" field and the slider
// position from the field named after the channel, falling back to "value".
func channelValue(r *http.Request) (domain.Channel, float64, error) {
	ch, err := domain.ParseChannel(r.FormValue("channel"))
	if err != nil {
		return 0, 0, err
	}
	raw := r.FormValue(ch.String())
	if raw == "" {
		raw = r.FormValue("value")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s=%q", domain.ErrInvalidValue, ch, raw)
	}
	return ch, v, nil
}
