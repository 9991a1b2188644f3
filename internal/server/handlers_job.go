package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mvarela/cv-alchemist/internal/fetch"
	"github.com/mvarela/cv-alchemist/internal/prompts"
)

// jobStructureRequest carries either the raw posting text or a URL to fetch
// it from.
type jobStructureRequest struct {
	generateRequest
	Text string `json:"text"`
	URL  string `json:"url"`
}

// handleJobStructure reduces a raw job posting to the fixed section layout
// used by the targeted CV prompt.
func (s *Server) handleJobStructure(w http.ResponseWriter, r *http.Request) {
	var req jobStructureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" && req.URL != "" {
		opts := fetch.DefaultOptions()
		opts.BrowserFallback = true
		opts.ChromePath = s.cfg.ChromePath

		fetched, err := fetch.Posting(r.Context(), req.URL, opts)
		if err != nil {
			s.logger.Warn("job posting fetch failed", "url", req.URL, "error", err)
			s.errorResponse(w, http.StatusBadGateway,
				"No se pudo descargar la publicación. Pegá el texto directamente.")
			return
		}
		text = fetched
	}
	if text == "" {
		s.errorResponse(w, http.StatusBadRequest,
			"Falta la publicación: enviá 'text' o 'url'.")
		return
	}

	out := s.generator.Generate(r.Context(), prompts.BuildJobStructuring(text), options(req.generateRequest))
	if !s.acceptOutput(w, out) {
		return
	}

	s.jsonResponse(w, http.StatusOK, generateResponse{Content: out.Text, Provider: string(out.Provider)})
}
