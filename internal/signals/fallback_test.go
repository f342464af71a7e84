package signals

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailtriage/internal/models"
)

// TestFallback_Deterministic tests that identical input yields identical output
func TestFallback_Deterministic(t *testing.T) {
	f := NewFallback()
	ctx := context.Background()
	text := "We need to review the urgent budget items.\nPlease respond by Friday.\nDeadline is close."
	meta := models.EmailMetadata{Subject: "Budget"}

	first := f.Summarize(ctx, text, meta)
	second := f.Summarize(ctx, text, meta)
	assert.Equal(t, first, second, "Summaries should be byte-identical across calls")

	assert.Equal(t, f.ExtractActions(ctx, text), f.ExtractActions(ctx, text))
	assert.Equal(t, f.DetectPrioritySignals(ctx, text, meta), f.DetectPrioritySignals(ctx, text, meta))
}

// TestFallback_Summarize tests the first-three-lines summary contract
func TestFallback_Summarize(t *testing.T) {
	f := NewFallback()
	text := "Line one.\n\nLine two.\nLine three.\nLine four is ignored."

	summary := f.Summarize(context.Background(), text, models.EmailMetadata{})

	assert.Equal(t, "Line one. Line two. Line three....", summary.Summary)
	assert.Equal(t, []string{"Line one.", "Line two.", "Line three."}, summary.KeyPoints)
	assert.Equal(t, "professional", summary.Tone)
}

// TestFallback_SummarizeTruncation tests the 200-character hard cut
func TestFallback_SummarizeTruncation(t *testing.T) {
	f := NewFallback()
	long := strings.Repeat("x", 250)

	summary := f.Summarize(context.Background(), long, models.EmailMetadata{})

	require.True(t, strings.HasSuffix(summary.Summary, "..."), "Truncated summary should end with the literal suffix")
	assert.Len(t, summary.Summary, 203, "Summary should be cut at 200 characters plus the suffix")
}

// TestFallback_ExtractActions tests keyword matching, defaults, and ordering
func TestFallback_ExtractActions(t *testing.T) {
	f := NewFallback()
	text := `Morning everyone.
Please review the attached document.
Nothing to see here.
Could you send the final numbers?
We must ship this on Friday.`

	actions := f.ExtractActions(context.Background(), text)

	require.Len(t, actions, 3, "Only keyword-matching lines should become actions")
	assert.Equal(t, "Please review the attached document.", actions[0].Text)
	assert.Equal(t, "Could you send the final numbers?", actions[1].Text)
	assert.Equal(t, "We must ship this on Friday.", actions[2].Text)
	for _, a := range actions {
		assert.Equal(t, "unspecified", a.Assignee)
		assert.Equal(t, "none", a.Deadline)
		assert.Equal(t, models.ConfidenceLow, a.Confidence)
	}
}

// TestFallback_ExtractActionsCap tests the five-item limit
func TestFallback_ExtractActionsCap(t *testing.T) {
	f := NewFallback()
	lines := make([]string, 8)
	for i := range lines {
		lines[i] = "please handle this one"
	}

	actions := f.ExtractActions(context.Background(), strings.Join(lines, "\n"))

	assert.Len(t, actions, 5, "Action extraction should cap at five items")
}

// TestFallback_DetectPrioritySignals tests keyword-driven urgency and importance
func TestFallback_DetectPrioritySignals(t *testing.T) {
	f := NewFallback()
	ctx := context.Background()
	meta := models.EmailMetadata{}

	sig := f.DetectPrioritySignals(ctx, "This is urgent and critical, the deadline is close.", meta)
	assert.Equal(t, models.UrgencyUrgent, sig.Urgency)
	assert.Equal(t, models.ImportanceImportant, sig.Importance)
	assert.ElementsMatch(t, []string{"urgent", "critical", "deadline"}, sig.Signals)

	sig = f.DetectPrioritySignals(ctx, "Lunch is at noon.", meta)
	assert.Equal(t, models.UrgencyNormal, sig.Urgency)
	assert.Equal(t, models.ImportanceInformational, sig.Importance)
	assert.Empty(t, sig.Signals)
	assert.NotNil(t, sig.Signals, "Signals should serialize as an empty list, not null")
}
