// Package models defines the triage result types shared across the
// processing pipeline and the API surface.
package models

import (
	"fmt"
	"strings"
)

// EmailMetadata holds the headers extracted from the raw thread.
type EmailMetadata struct {
	Subject  string   `json:"subject"`
	From     string   `json:"from"`
	To       []string `json:"to"`
	Date     string   `json:"date,omitempty"`
	ThreadID string   `json:"thread_id,omitempty"`
}

// Confidence levels for extracted action items.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// ActionItem is a single task extracted from the thread.
type ActionItem struct {
	Text       string `json:"text"`
	Assignee   string `json:"assignee"`
	Deadline   string `json:"deadline"`
	Confidence string `json:"confidence"`
}

// NewActionItem fills the documented defaults for missing fields.
func NewActionItem(text, assignee, deadline, confidence string) ActionItem {
	if assignee == "" {
		assignee = "unspecified"
	}
	if deadline == "" {
		deadline = "none"
	}
	if confidence == "" {
		confidence = ConfidenceMedium
	}
	return ActionItem{Text: text, Assignee: assignee, Deadline: deadline, Confidence: confidence}
}

// EmailSummary is the condensed description of the thread.
type EmailSummary struct {
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"key_points"`
	Tone      string   `json:"tone"`
}

// Urgency levels reported by a signal source.
const (
	UrgencyUrgent = "urgent"
	UrgencyNormal = "normal"
	UrgencyLow    = "low"
)

// Importance levels reported by a signal source.
const (
	ImportanceCritical      = "critical"
	ImportanceImportant     = "important"
	ImportanceInformational = "informational"
)

// PrioritySignals carries the urgency/importance cues detected in a thread.
type PrioritySignals struct {
	Urgency    string   `json:"urgency"`
	Importance string   `json:"importance"`
	Signals    []string `json:"signals"`
}

// PriorityLevel classifies a composite score.
type PriorityLevel string

const (
	PriorityCritical PriorityLevel = "critical"
	PriorityHigh     PriorityLevel = "high"
	PriorityMedium   PriorityLevel = "medium"
	PriorityLow      PriorityLevel = "low"
)

// PriorityInfo is the composite scoring result.
type PriorityInfo struct {
	Score     float64            `json:"score"`
	Level     PriorityLevel      `json:"level"`
	Color     string             `json:"color"`
	Breakdown map[string]float64 `json:"breakdown"`
}

// Label returns a human-readable priority label for the score.
func (p PriorityInfo) Label() string {
	switch {
	case p.Score >= 75:
		return "Critical"
	case p.Score >= 50:
		return "High Priority"
	case p.Score >= 25:
		return "Medium Priority"
	default:
		return "Low Priority"
	}
}

// ProcessedEmail aggregates everything produced for one thread.
type ProcessedEmail struct {
	OriginalText  string        `json:"original_text"`
	CleanedText   string        `json:"cleaned_text"`
	Metadata      EmailMetadata `json:"metadata"`
	Summary       EmailSummary  `json:"summary"`
	ActionItems   []ActionItem  `json:"action_items"`
	Priority      PriorityInfo  `json:"priority"`
	FocusModeText string        `json:"focus_mode_text"`
}

// GenerateFocusMode derives the condensed focus view: priority banner (only
// for scores at or above 50), summary line, numbered action items, and key
// points. The rendering is stored on the aggregate and returned.
func (p *ProcessedEmail) GenerateFocusMode() string {
	var parts []string

	if p.Priority.Score >= 50 {
		parts = append(parts, fmt.Sprintf("⚠️ %s PRIORITY\n", strings.ToUpper(string(p.Priority.Level))))
	}

	parts = append(parts, fmt.Sprintf("📋 %s\n", p.Summary.Summary))

	if len(p.ActionItems) > 0 {
		parts = append(parts, "\n✅ ACTION ITEMS:")
		for i, item := range p.ActionItems {
			line := fmt.Sprintf("%d. %s", i+1, item.Text)
			if item.Deadline != "none" {
				line += fmt.Sprintf(" (Due: %s)", item.Deadline)
			}
			if item.Assignee != "unspecified" {
				line += fmt.Sprintf(" [@%s]", item.Assignee)
			}
			parts = append(parts, line)
		}
	}

	if len(p.Summary.KeyPoints) > 0 {
		parts = append(parts, "\n🔑 KEY POINTS:")
		for _, point := range p.Summary.KeyPoints {
			parts = append(parts, "• "+point)
		}
	}

	p.FocusModeText = strings.Join(parts, "\n")
	return p.FocusModeText
}
