package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ideamans/svgkit/pkg/svg"
)

const svgContentType = "image/svg+xml; charset=utf-8"

// handleHealth handles the health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// handleIcon renders a single icon. The icon name is taken from the path
// with an optional .svg suffix; an optional "class" query parameter is
// merged into the rendered attributes.
func (s *Server) handleIcon(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSuffix(r.PathValue("name"), ".svg")

	icon, err := s.factory.Svg(r.Context(), name, r.URL.Query().Get("class"), nil)
	if err != nil {
		if svg.IsNotFound(err) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		s.logger.Error("failed to load icon", "name", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", svgContentType)
	w.Write([]byte(icon.Render()))
}

// handleSprite serves a sprite document for one set
func (s *Server) handleSprite(w http.ResponseWriter, r *http.Request) {
	setName := strings.TrimSuffix(r.PathValue("set"), ".svg")

	doc, err := s.sprites.Build(r.Context(), setName)
	if err != nil {
		if svg.IsNotFound(err) || errors.Is(err, svg.ErrUnknownSet) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		s.logger.Error("failed to build sprite", "set", setName, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", svgContentType)
	w.Write([]byte(doc))
}
