package processor

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailtriage/internal/models"
	"mailtriage/internal/samples"
	"mailtriage/internal/signals"
)

func newTestProcessor() *Processor {
	return New(signals.NewFallback(), zerolog.Nop())
}

// TestProcess_EmptyInput tests the empty-input guard
func TestProcess_EmptyInput(t *testing.T) {
	p := newTestProcessor()

	_, err := p.Process(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = p.Process(context.Background(), "   \n\t  \n")
	assert.ErrorIs(t, err, ErrEmptyInput, "Whitespace-only input counts as empty")
}

// TestProcess_UrgentThread tests the full pipeline on a high-pressure thread
func TestProcess_UrgentThread(t *testing.T) {
	p := newTestProcessor()

	raw, ok := samples.Get("urgent_deadline")
	require.True(t, ok)

	result, err := p.Process(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, raw, result.OriginalText)
	assert.Equal(t, "URGENT: Q4 Report Due Tomorrow", result.Metadata.Subject)
	assert.Equal(t, "sarah.johnson@company.com", result.Metadata.From)

	// The closing signature block is removed during cleanup.
	assert.NotContains(t, result.CleanedText, "Director of Finance")
	assert.Contains(t, result.CleanedText, "We need to finalize the Q4 financial report")

	assert.Equal(t, 77.3, result.Priority.Score)
	assert.Equal(t, models.PriorityCritical, result.Priority.Level)
	assert.Equal(t, 100.0, result.Priority.Breakdown["urgency"])
	require.NotEmpty(t, result.ActionItems)
	assert.Len(t, result.ActionItems, 4)

	assert.Contains(t, result.FocusModeText, "⚠️ CRITICAL PRIORITY", "Scores at 50 or above render the banner")
	assert.Contains(t, result.FocusModeText, "✅ ACTION ITEMS:")
}

// TestProcess_CasualThread tests that a low-pressure thread stays low
func TestProcess_CasualThread(t *testing.T) {
	p := newTestProcessor()

	raw, ok := samples.Get("casual_quick")
	require.True(t, ok)

	result, err := p.Process(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, 10.0, result.Priority.Score)
	assert.Equal(t, models.PriorityLow, result.Priority.Level)
	assert.Empty(t, result.ActionItems)
	assert.NotContains(t, result.FocusModeText, "⚠️", "Low scores render no banner")
}

// TestProcess_HTMLInput tests that markup-wrapped threads get stripped before
// downstream stages run
func TestProcess_HTMLInput(t *testing.T) {
	p := newTestProcessor()

	raw := "Subject: Status update\nFrom: pat@company.com\n\n" +
		"<html><body><p>The report is attached.</p>\n<p>Please review it by Friday.</p></body></html>"

	result, err := p.Process(context.Background(), raw)
	require.NoError(t, err)

	assert.NotContains(t, result.CleanedText, "<p>")
	assert.Contains(t, result.CleanedText, "Please review it by Friday.")
	require.Len(t, result.ActionItems, 1)
	assert.Equal(t, "Please review it by Friday.", result.ActionItems[0].Text)
}

// TestProcess_Deterministic tests that the fallback pipeline is a pure
// function of its input
func TestProcess_Deterministic(t *testing.T) {
	p := newTestProcessor()

	for key, raw := range samples.Emails {
		first, err := p.Process(context.Background(), raw)
		require.NoError(t, err, "sample %s", key)
		second, err := p.Process(context.Background(), raw)
		require.NoError(t, err, "sample %s", key)

		assert.Equal(t, first, second, "Two runs over sample %s should match exactly", key)
	}
}
