package signals

import (
	"context"
	"strings"

	"mailtriage/internal/models"
)

const (
	fallbackSummaryLimit = 200
	fallbackActionLimit  = 5
)

var actionKeywords = []string{
	"please", "could you", "can you", "need to", "should",
	"must", "required", "action", "todo", "task",
}

var fallbackUrgentKeywords = []string{"urgent", "asap", "immediately", "critical", "emergency"}

var fallbackImportantKeywords = []string{"important", "priority", "deadline", "required"}

// Fallback is the deterministic keyword-based signal source. Identical
// input always yields identical output.
type Fallback struct{}

var _ Source = (*Fallback)(nil)

// NewFallback returns the deterministic signal source.
func NewFallback() *Fallback {
	return &Fallback{}
}

// Summarize joins the first three non-blank lines, hard-cut at 200
// characters, and reports those same lines as key points.
func (f *Fallback) Summarize(_ context.Context, cleanedText string, _ models.EmailMetadata) models.EmailSummary {
	var lines []string
	for _, line := range strings.Split(cleanedText, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > 3 {
		lines = lines[:3]
	}

	summary := strings.Join(lines, " ")
	if runes := []rune(summary); len(runes) > fallbackSummaryLimit {
		summary = string(runes[:fallbackSummaryLimit])
	}

	return models.EmailSummary{
		Summary:   summary + "...",
		KeyPoints: append([]string{}, lines...),
		Tone:      "professional",
	}
}

// ExtractActions turns every line containing an action keyword into a
// low-confidence action item, capped at five, in original line order.
func (f *Fallback) ExtractActions(_ context.Context, cleanedText string) []models.ActionItem {
	var actions []models.ActionItem
	for _, line := range strings.Split(cleanedText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		for _, kw := range actionKeywords {
			if strings.Contains(lower, kw) {
				actions = append(actions, models.NewActionItem(line, "unspecified", "none", models.ConfidenceLow))
				break
			}
		}
		if len(actions) == fallbackActionLimit {
			break
		}
	}
	return actions
}

// DetectPrioritySignals scans the whole text for urgent and important
// keywords; each hit is appended to the signals list once.
func (f *Fallback) DetectPrioritySignals(_ context.Context, cleanedText string, _ models.EmailMetadata) models.PrioritySignals {
	textLower := strings.ToLower(cleanedText)

	sig := models.PrioritySignals{
		Urgency:    models.UrgencyNormal,
		Importance: models.ImportanceInformational,
		Signals:    []string{},
	}

	for _, kw := range fallbackUrgentKeywords {
		if strings.Contains(textLower, kw) {
			sig.Urgency = models.UrgencyUrgent
			sig.Signals = append(sig.Signals, kw)
		}
	}
	for _, kw := range fallbackImportantKeywords {
		if strings.Contains(textLower, kw) {
			sig.Importance = models.ImportanceImportant
			if !containsString(sig.Signals, kw) {
				sig.Signals = append(sig.Signals, kw)
			}
		}
	}
	return sig
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
