// Package scorer computes the composite 0-100 priority score from the
// cleaned text, metadata, detected signals, and action items. It is a pure
// function of its inputs: no I/O, no hidden state.
package scorer

import (
	"math"
	"regexp"
	"strings"

	"mailtriage/internal/models"
)

// Factor names, also the breakdown keys on PriorityInfo.
const (
	FactorUrgency          = "urgency"
	FactorImportance       = "importance"
	FactorActionDensity    = "action_density"
	FactorSenderImportance = "sender_importance"
	FactorTimeSensitivity  = "time_sensitivity"
)

// Weights per factor; they sum to 1.0.
var weights = map[string]float64{
	FactorUrgency:          0.30,
	FactorImportance:       0.25,
	FactorActionDensity:    0.20,
	FactorSenderImportance: 0.15,
	FactorTimeSensitivity:  0.10,
}

var urgentKeywords = []string{
	"urgent", "asap", "immediately", "critical", "emergency",
	"time-sensitive", "high priority", "deadline",
}

var importantKeywords = []string{
	"important", "priority", "required", "must", "need",
	"action required", "please review", "approval needed",
}

var vipTitles = []string{
	"ceo", "cto", "cfo", "president", "director", "vp",
	"manager", "lead", "head",
}

var deadlineKeywords = []string{"deadline", "due", "by end of", "before", "until"}

var timePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\btoday\b`),
	regexp.MustCompile(`\btomorrow\b`),
	regexp.MustCompile(`\bthis week\b`),
	regexp.MustCompile(`\d{1,2}/\d{1,2}`),
	regexp.MustCompile(`\d{1,2}-\d{1,2}`),
}

// CalculatePriority combines the five sub-scores into a weighted composite
// score with level, color, and per-factor breakdown.
func CalculatePriority(cleanedText string, meta models.EmailMetadata, aiSignals models.PrioritySignals, actionItems []models.ActionItem) models.PriorityInfo {
	breakdown := map[string]float64{
		FactorUrgency:          scoreUrgency(cleanedText, meta, aiSignals),
		FactorImportance:       scoreImportance(cleanedText, aiSignals),
		FactorActionDensity:    scoreActionDensity(actionItems),
		FactorSenderImportance: scoreSender(meta),
		FactorTimeSensitivity:  scoreTimeSensitivity(cleanedText, actionItems),
	}

	var total float64
	for factor, value := range breakdown {
		total += value * weights[factor]
	}
	total = math.Round(total*10) / 10

	level, color := levelForScore(total)

	return models.PriorityInfo{
		Score:     total,
		Level:     level,
		Color:     color,
		Breakdown: breakdown,
	}
}

// levelForScore maps a composite score to its level and display color.
// Thresholds are inclusive on the lower bound, evaluated highest-first.
func levelForScore(score float64) (models.PriorityLevel, string) {
	switch {
	case score >= 75:
		return models.PriorityCritical, "#ef4444"
	case score >= 50:
		return models.PriorityHigh, "#f59e0b"
	case score >= 25:
		return models.PriorityMedium, "#3b82f6"
	default:
		return models.PriorityLow, "#6b7280"
	}
}

func scoreUrgency(text string, meta models.EmailMetadata, aiSignals models.PrioritySignals) float64 {
	var score float64
	textLower := strings.ToLower(text)
	subjectLower := strings.ToLower(meta.Subject)

	var hits float64
	for _, kw := range urgentKeywords {
		if strings.Contains(textLower, kw) {
			hits++
		}
	}
	score += math.Min(hits*20, 60)

	for _, kw := range urgentKeywords {
		if strings.Contains(subjectLower, kw) {
			score += 30
			break
		}
	}

	if aiSignals.Urgency == models.UrgencyUrgent {
		score += 40
	}

	return math.Min(score, 100)
}

func scoreImportance(text string, aiSignals models.PrioritySignals) float64 {
	var score float64
	textLower := strings.ToLower(text)

	var hits float64
	for _, kw := range importantKeywords {
		if strings.Contains(textLower, kw) {
			hits++
		}
	}
	score += math.Min(hits*15, 50)

	switch aiSignals.Importance {
	case models.ImportanceCritical:
		score += 50
	case models.ImportanceImportant:
		score += 30
	}

	// Exclamation marks, capped so shouty spam does not dominate.
	score += math.Min(float64(strings.Count(text, "!"))*5, 20)

	return math.Min(score, 100)
}

func scoreActionDensity(actionItems []models.ActionItem) float64 {
	if len(actionItems) == 0 {
		return 0
	}

	score := math.Min(float64(len(actionItems))*20, 60)

	var highConfidence float64
	for _, item := range actionItems {
		if item.Confidence == models.ConfidenceHigh {
			highConfidence++
		}
	}
	score += math.Min(highConfidence*15, 40)

	return math.Min(score, 100)
}

func scoreSender(meta models.EmailMetadata) float64 {
	// Neutral default when sender metadata is absent.
	score := 50.0
	if meta.From == "" {
		return score
	}

	sender := strings.ToLower(meta.From)
	// First VIP title wins; no double-counting.
	for _, title := range vipTitles {
		if strings.Contains(sender, title) {
			score += 30
			break
		}
	}

	return math.Min(score, 100)
}

func scoreTimeSensitivity(text string, actionItems []models.ActionItem) float64 {
	var score float64
	textLower := strings.ToLower(text)

	// Each keyword in the set accumulates separately; hits are not
	// deduplicated against each other.
	for _, kw := range deadlineKeywords {
		if strings.Contains(textLower, kw) {
			score += 20
		}
	}

	for _, item := range actionItems {
		if item.Deadline == "" || item.Deadline == "none" {
			continue
		}
		deadlineLower := strings.ToLower(item.Deadline)
		switch {
		case containsAny(deadlineLower, "today", "asap", "immediately"):
			score += 40
		case containsAny(deadlineLower, "tomorrow", "this week"):
			score += 30
		default:
			score += 20
		}
	}

	for _, pattern := range timePatterns {
		if pattern.MatchString(textLower) {
			score += 15
		}
	}

	return math.Min(score, 100)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
