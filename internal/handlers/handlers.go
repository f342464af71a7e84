// Package handlers exposes the triage pipeline over a JSON API.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"mailtriage/internal/config"
	"mailtriage/internal/processor"
)

// Handlers holds all HTTP handlers and their dependencies
type Handlers struct {
	processor *processor.Processor
	cfg       *config.Config
	log       zerolog.Logger
}

// New creates a new Handlers instance
func New(proc *processor.Processor, cfg *config.Config, log zerolog.Logger) *Handlers {
	return &Handlers{
		processor: proc,
		cfg:       cfg,
		log:       log,
	}
}

// respondData writes the success envelope around a payload.
func (h *Handlers) respondData(w http.ResponseWriter, payload map[string]any) {
	body := map[string]any{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	h.writeJSON(w, http.StatusOK, body)
}

// respondError writes the failure envelope with the given status.
func (h *Handlers) respondError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]any{
		"success": false,
		"error":   message,
	})
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error().Err(err).Msg("failed to encode response")
	}
}
