package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"mailtriage/internal/samples"
)

// ListSamples handles GET /api/samples: all demo threads keyed by name.
func (h *Handlers) ListSamples(w http.ResponseWriter, r *http.Request) {
	out := make(map[string]map[string]string, len(samples.Emails))
	for key, content := range samples.Emails {
		out[key] = map[string]string{
			"name":    titleFromKey(key),
			"content": content,
		}
	}
	h.respondData(w, map[string]any{"samples": out})
}

// GetSample handles GET /api/sample/{key}: one demo thread.
func (h *Handlers) GetSample(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	content, ok := samples.Get(key)
	if !ok {
		h.respondError(w, http.StatusNotFound, "Sample not found")
		return
	}
	h.respondData(w, map[string]any{"sample": content})
}

// titleFromKey prettifies a snake_case sample key ("urgent_deadline" ->
// "Urgent Deadline").
func titleFromKey(key string) string {
	words := strings.Split(key, "_")
	for i, word := range words {
		if word != "" {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}
