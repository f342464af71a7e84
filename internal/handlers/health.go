package handlers

import "net/http"

// Health handles GET /api/health: liveness plus whether the AI backend is
// configured.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"status":     "healthy",
		"ai_enabled": h.cfg.AIEnabled(),
	})
}
