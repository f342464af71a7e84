package handlers

import (
	"bytes"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"mailtriage/internal/parser"
)

// UploadEmail handles POST /api/upload: a multipart "file" field holding a
// .eml, .txt, or .msg message. A .eml file is parsed into header and body
// text; the others are read verbatim. Either way the result runs through
// the same triage pipeline as POST /api/process.
func (h *Handlers) UploadEmail(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	if !h.cfg.AllowedFile(header.Filename) {
		h.respondError(w, http.StatusBadRequest, "Unsupported file type")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Failed to read file")
		return
	}

	emailText := string(data)
	if strings.EqualFold(filepath.Ext(header.Filename), ".eml") {
		parsed, err := parser.ParseEML(bytes.NewReader(data))
		if err != nil {
			h.log.Warn().Err(err).Str("file", header.Filename).Msg("eml parse failed, using raw text")
		} else {
			emailText = parsed.TriageText()
		}
	}

	result, err := h.processor.Process(r.Context(), emailText)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Email text is empty")
		return
	}

	h.respondData(w, map[string]any{"data": result})
}
