package web

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/swatches/internal/domain"
	sharedmw "github.com/emiliopalmerini/swatches/internal/shared/middleware"
	"github.com/emiliopalmerini/swatches/internal/web/templates"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrOutOfRange),
		errors.Is(err, domain.ErrInvalidValue),
		errors.Is(err, domain.ErrInvalidColor),
		errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrEmptySwatch):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrIndexMismatch):
		return http.StatusConflict
	case errors.Is(err, domain.ErrStorage):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage is the user-facing text of err.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrStorage):
		return "Palette could not be saved"
	case errors.Is(err, domain.ErrIndexMismatch):
		return "That palette has a different number of colors"
	case errors.Is(err, domain.ErrGeneration):
		return "Some colors could not be generated"
	case errors.Is(err, domain.ErrInvalidName):
		return "Give the palette a name"
	default:
		return err.Error()
	}
}

// fail answers htmx requests with an error toast swapped into #toast and
// everything else with a plain text error.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	hx := sharedmw.FromRequest(r)
	fields := []zap.Field{zap.String("path", r.URL.Path), zap.Error(err)}
	if hx.Trigger != "" {
		fields = append(fields, zap.String("trigger", hx.Trigger))
	}
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", fields...)
	} else {
		s.log.Debug("request rejected", fields...)
	}

	if !hx.Enabled {
		http.Error(w, errorMessage(err), status)
		return
	}
	sharedmw.Retarget(w, "#toast")
	s.render(w, r, status, templates.Toast(errorMessage(err)))
}
