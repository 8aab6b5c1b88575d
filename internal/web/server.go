package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	sharedmw "github.com/emiliopalmerini/swatches/internal/shared/middleware"
	"github.com/emiliopalmerini/swatches/internal/studio"
)

//go:embed static/*
var staticFiles embed.FS

type Server struct {
	studio *studio.Studio
	log    *zap.Logger
	router chi.Router
}

func NewServer(st *studio.Studio, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		studio: st,
		log:    log,
		router: chi.NewRouter(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := s.router

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(sharedmw.HTMX)

	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to create static filesystem: %v", err))
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/", s.handleIndex)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", s.handleGenerate)
		r.Get("/palette", s.handlePalette)
		r.Delete("/popup", s.handleDismiss)

		r.Route("/swatches/{slot}", func(r chi.Router) {
			r.Post("/lock", s.handleLock)
			r.Post("/panel", s.handleTogglePanel)
			r.Delete("/panel", s.handleClosePanel)
			r.Post("/preview", s.handlePreview)
			r.Post("/commit", s.handleCommit)
			r.Post("/copy", s.handleCopy)
		})

		r.Get("/library", s.handleOpenLibrary)
		r.Post("/library", s.handleSave)
		r.Delete("/library", s.handleCloseLibrary)
		r.Post("/library/{id}/select", s.handleSelect)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// NewHTTPServer wraps h with the listener timeouts used in production.
func NewHTTPServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
