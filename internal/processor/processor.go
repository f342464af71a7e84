// Package processor orchestrates one triage request end to end: metadata
// extraction and structural cleanup, signal generation, priority scoring,
// and assembly of the final result.
package processor

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"mailtriage/internal/cleaner"
	"mailtriage/internal/models"
	"mailtriage/internal/scorer"
	"mailtriage/internal/signals"
)

// ErrEmptyInput is returned when the request carries no email text.
var ErrEmptyInput = errors.New("email text is empty")

// Processor runs the triage pipeline. It holds no per-request state and is
// safe for concurrent use.
type Processor struct {
	source signals.Source
	log    zerolog.Logger
}

// New wires a processor with its signal source.
func New(source signals.Source, log zerolog.Logger) *Processor {
	return &Processor{source: source, log: log}
}

// Process triages one raw thread: cleaning and metadata run first against
// the original text, then the signal source and scorer consume the cleaned
// body, and the assembled result gets its focus view derived last.
func (p *Processor) Process(ctx context.Context, emailText string) (*models.ProcessedEmail, error) {
	if strings.TrimSpace(emailText) == "" {
		return nil, ErrEmptyInput
	}

	meta := cleaner.ExtractMetadata(emailText)
	cleanedText := cleaner.Clean(emailText)

	summary := p.source.Summarize(ctx, cleanedText, meta)
	actionItems := p.source.ExtractActions(ctx, cleanedText)
	aiSignals := p.source.DetectPrioritySignals(ctx, cleanedText, meta)

	priority := scorer.CalculatePriority(cleanedText, meta, aiSignals, actionItems)

	processed := &models.ProcessedEmail{
		OriginalText: emailText,
		CleanedText:  cleanedText,
		Metadata:     meta,
		Summary:      summary,
		ActionItems:  actionItems,
		Priority:     priority,
	}
	processed.GenerateFocusMode()

	p.log.Debug().
		Str("subject", meta.Subject).
		Float64("score", priority.Score).
		Str("level", string(priority.Level)).
		Int("actions", len(actionItems)).
		Msg("processed email thread")

	return processed, nil
}
