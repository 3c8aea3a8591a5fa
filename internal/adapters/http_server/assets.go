package httpserver

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Client-side wiring for the rendered fragments: event delegation,
// fragment refresh calls, and Leaflet map initialization.
//
//go:embed static
var staticFS embed.FS

func (s *Server) MountAssets() {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		log.Error().Err(err).Msg("static assets unavailable")
		return
	}
	s.mux.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(sub))))
}
