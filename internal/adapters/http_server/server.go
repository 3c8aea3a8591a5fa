// Package httpserver exposes the widget fragment API: snapshot push,
// fragment rendering, and the booking action endpoints.
package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type Server struct{ mux *chi.Mux }

// New builds the router with the full middleware chain attached.
// Middleware must be registered before any route is mounted, so handler
// mounting happens separately via MountHandlers and Mount.
func New() *Server {
	m := chi.NewRouter()

	m.Use(chimw.RealIP)
	m.Use(chimw.RequestID)
	m.Use(chimw.Recoverer)
	m.Use(Timeout(15 * time.Second))
	m.Use(Metrics)
	m.Use(Logger(log.Logger))

	return &Server{mux: m}
}

func (s *Server) Mux() http.Handler { return s.mux }

// Mount attaches an extra handler, e.g. the /metrics endpoint, to the
// router.
func (s *Server) Mount(path string, h http.Handler) {
	s.mux.Handle(path, h)
}
