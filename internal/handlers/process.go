package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"mailtriage/internal/processor"
)

type processRequest struct {
	EmailText string `json:"email_text"`
}

// ProcessEmail handles POST /api/process: triage one raw thread.
func (h *Handlers) ProcessEmail(w http.ResponseWriter, r *http.Request) {
	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "No email text provided")
		return
	}
	if strings.TrimSpace(req.EmailText) == "" {
		h.respondError(w, http.StatusBadRequest, "Email text is empty")
		return
	}

	result, err := h.processor.Process(r.Context(), req.EmailText)
	if err != nil {
		if errors.Is(err, processor.ErrEmptyInput) {
			h.respondError(w, http.StatusBadRequest, "Email text is empty")
			return
		}
		h.log.Error().Err(err).Msg("processing failed")
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondData(w, map[string]any{"data": result})
}
