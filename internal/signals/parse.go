package signals

import (
	"strings"

	"mailtriage/internal/models"
)

// The AI backend replies in a labeled plain-text format rather than JSON.
// These parsers scan for the literal section labels; unlabeled lines are
// ignored so a partially malformed reply still yields usable data.

const maxKeyPoints = 5

func parseSummaryReply(reply string) models.EmailSummary {
	summary := models.EmailSummary{Tone: "professional"}
	inPoints := false

	for _, line := range strings.Split(strings.TrimSpace(reply), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "SUMMARY:"):
			summary.Summary = strings.TrimSpace(strings.TrimPrefix(line, "SUMMARY:"))
		case strings.HasPrefix(line, "KEY_POINTS:"):
			inPoints = true
		case strings.HasPrefix(line, "TONE:"):
			summary.Tone = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "TONE:")))
			inPoints = false
		case inPoints && strings.HasPrefix(line, "-"):
			if len(summary.KeyPoints) < maxKeyPoints {
				summary.KeyPoints = append(summary.KeyPoints, strings.TrimSpace(line[1:]))
			}
		}
	}
	return summary
}

func parseActionReply(reply string) []models.ActionItem {
	if strings.Contains(reply, "NO_ACTIONS") {
		return nil
	}

	var actions []models.ActionItem
	var text, assignee, deadline, confidence string

	flush := func() {
		if text != "" {
			actions = append(actions, models.NewActionItem(text, assignee, deadline, confidence))
		}
		text, assignee, deadline, confidence = "", "", "", ""
	}

	for _, line := range strings.Split(strings.TrimSpace(reply), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "ACTION:"):
			flush()
			text = strings.TrimSpace(strings.TrimPrefix(line, "ACTION:"))
		case strings.HasPrefix(line, "ASSIGNEE:"):
			assignee = strings.TrimSpace(strings.TrimPrefix(line, "ASSIGNEE:"))
		case strings.HasPrefix(line, "DEADLINE:"):
			deadline = strings.TrimSpace(strings.TrimPrefix(line, "DEADLINE:"))
		case strings.HasPrefix(line, "CONFIDENCE:"):
			confidence = strings.TrimSpace(strings.TrimPrefix(line, "CONFIDENCE:"))
		case line == "---":
			flush()
		}
	}
	flush()

	return actions
}

func parsePriorityReply(reply string) models.PrioritySignals {
	sig := models.PrioritySignals{
		Urgency:    models.UrgencyNormal,
		Importance: models.ImportanceInformational,
		Signals:    []string{},
	}

	for _, line := range strings.Split(strings.TrimSpace(reply), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "URGENCY:"):
			sig.Urgency = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "URGENCY:")))
		case strings.HasPrefix(line, "IMPORTANCE:"):
			sig.Importance = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "IMPORTANCE:")))
		case strings.HasPrefix(line, "SIGNALS:"):
			for _, s := range strings.Split(strings.TrimPrefix(line, "SIGNALS:"), ",") {
				if s = strings.TrimSpace(s); s != "" {
					sig.Signals = append(sig.Signals, s)
				}
			}
		}
	}
	return sig
}
