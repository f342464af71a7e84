// Package signals supplies the summary, action items, and urgency and
// importance cues for a cleaned thread. Two interchangeable realizations
// sit behind one interface: an AI-backed client and a deterministic
// keyword engine. Callers never see a failure; the AI realization degrades
// to the keyword engine internally.
package signals

import (
	"context"

	"github.com/rs/zerolog"

	"mailtriage/internal/config"
	"mailtriage/internal/models"
)

// Source produces triage signals for a cleaned thread.
type Source interface {
	Summarize(ctx context.Context, cleanedText string, meta models.EmailMetadata) models.EmailSummary
	ExtractActions(ctx context.Context, cleanedText string) []models.ActionItem
	DetectPrioritySignals(ctx context.Context, cleanedText string, meta models.EmailMetadata) models.PrioritySignals
}

// New selects the realization at startup: the AI client when a credential
// is configured, the deterministic fallback otherwise.
func New(cfg *config.Config, log zerolog.Logger) Source {
	if cfg.AIEnabled() {
		return NewAIClient(cfg, log)
	}
	log.Info().Msg("no AI credential configured, using fallback signal source")
	return NewFallback()
}
