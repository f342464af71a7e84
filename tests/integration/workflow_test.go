package integration

import (
	"bytes"
	"encoding/json"
	"math"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailtriage/internal/config"
	"mailtriage/internal/handlers"
	"mailtriage/internal/models"
	"mailtriage/internal/parser"
	"mailtriage/internal/processor"
	"mailtriage/internal/samples"
	"mailtriage/internal/signals"
)

var factorWeights = map[string]float64{
	"urgency":           0.30,
	"importance":        0.25,
	"action_density":    0.20,
	"sender_importance": 0.15,
	"time_sensitivity":  0.10,
}

// newServer assembles the API the way the binary does, on the deterministic
// signal path.
func newServer() *httptest.Server {
	cfg := &config.Config{MaxUploadBytes: 5 << 20}
	log := zerolog.Nop()

	source := signals.New(cfg, log)
	proc := processor.New(source, log)
	h := handlers.New(proc, cfg, log)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Post("/api/process", h.ProcessEmail)
	r.Post("/api/upload", h.UploadEmail)
	r.Get("/api/samples", h.ListSamples)
	r.Get("/api/sample/{key}", h.GetSample)
	r.Get("/api/health", h.Health)

	return httptest.NewServer(r)
}

type processResponse struct {
	Success bool                   `json:"success"`
	Data    *models.ProcessedEmail `json:"data"`
	Error   string                 `json:"error"`
}

func processThread(t *testing.T, baseURL, text string) processResponse {
	t.Helper()

	payload, err := json.Marshal(map[string]string{"email_text": text})
	require.NoError(t, err)

	resp, err := http.Post(baseURL+"/api/process", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded processResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	require.True(t, decoded.Success)
	require.NotNil(t, decoded.Data)
	return decoded
}

// TestEndToEndWorkflow runs every sample thread through the live API and
// checks the structural invariants of each result.
func TestEndToEndWorkflow(t *testing.T) {
	srv := newServer()
	defer srv.Close()

	// Step 1: list the samples over the API.
	resp, err := http.Get(srv.URL + "/api/samples")
	require.NoError(t, err, "Should list samples")
	defer resp.Body.Close()

	var listing struct {
		Success bool                         `json:"success"`
		Samples map[string]map[string]string `json:"samples"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listing))
	require.True(t, listing.Success)
	require.Len(t, listing.Samples, len(samples.Emails), "Listing should cover every sample")

	// Step 2: triage each thread and verify the result invariants.
	for key, sample := range listing.Samples {
		result := processThread(t, srv.URL, sample["content"]).Data

		assert.Equal(t, sample["content"], result.OriginalText, "sample %s", key)
		assert.NotEmpty(t, result.CleanedText, "sample %s", key)
		assert.LessOrEqual(t, len(result.CleanedText), len(result.OriginalText),
			"Cleanup never grows the text (sample %s)", key)

		priority := result.Priority
		assert.GreaterOrEqual(t, priority.Score, 0.0, "sample %s", key)
		assert.LessOrEqual(t, priority.Score, 100.0, "sample %s", key)
		require.Len(t, priority.Breakdown, len(factorWeights), "sample %s", key)

		var weighted float64
		for factor, weight := range factorWeights {
			value, ok := priority.Breakdown[factor]
			require.True(t, ok, "Breakdown of sample %s should carry %s", key, factor)
			assert.GreaterOrEqual(t, value, 0.0)
			assert.LessOrEqual(t, value, 100.0)
			weighted += value * weight
		}
		assert.Equal(t, math.Round(weighted*10)/10, priority.Score,
			"Score of sample %s should be the rounded weighted sum", key)

		assert.Equal(t, levelFor(priority.Score), priority.Level,
			"Level of sample %s should match its score", key)
		assert.NotEmpty(t, result.FocusModeText, "sample %s", key)
	}
}

// TestWorkflow_PriorityOrdering checks that the known-hot thread lands at
// critical and the known-quiet one at low.
func TestWorkflow_PriorityOrdering(t *testing.T) {
	srv := newServer()
	defer srv.Close()

	urgent := processThread(t, srv.URL, samples.Emails["urgent_deadline"]).Data
	casual := processThread(t, srv.URL, samples.Emails["casual_quick"]).Data

	assert.Equal(t, models.PriorityCritical, urgent.Priority.Level)
	assert.Equal(t, models.PriorityLow, casual.Priority.Level)
	assert.Greater(t, urgent.Priority.Score, casual.Priority.Score)

	assert.NotEmpty(t, urgent.ActionItems, "The urgent thread names explicit tasks")
	assert.Contains(t, urgent.FocusModeText, "⚠️")
	assert.NotContains(t, casual.FocusModeText, "⚠️")
}

// TestWorkflow_UploadRoundTrip sends a .eml through the upload endpoint and
// checks it triages like its pasted-text equivalent.
func TestWorkflow_UploadRoundTrip(t *testing.T) {
	srv := newServer()
	defer srv.Close()

	eml := "From: Dana Kim <dana@company.com>\r\n" +
		"To: team@company.com\r\n" +
		"Subject: URGENT: contract signature needed\r\n" +
		"Date: Tue, 17 Feb 2026 08:30:00 +0000\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"\r\n" +
		"Please sign the contract today. The deadline is critical.\r\n"

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "contract.eml")
	require.NoError(t, err)
	_, err = part.Write([]byte(eml))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	resp, err := http.Post(srv.URL+"/api/upload", writer.FormDataContentType(), &buf)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded processResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	require.True(t, decoded.Success)

	assert.Equal(t, "URGENT: contract signature needed", decoded.Data.Metadata.Subject)
	assert.Contains(t, decoded.Data.Metadata.From, "dana@company.com")
	assert.GreaterOrEqual(t, decoded.Data.Priority.Score, 25.0, "An urgent contract thread should not score low")

	// Uploading the message and posting its rendered text are equivalent.
	parsed, err := parser.ParseEML(strings.NewReader(eml))
	require.NoError(t, err)
	viaProcess := processThread(t, srv.URL, parsed.TriageText())
	assert.Equal(t, viaProcess.Data, decoded.Data)
}

// TestWorkflow_Health checks the liveness endpoint on the fallback path.
func TestWorkflow_Health(t *testing.T) {
	srv := newServer()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health struct {
		Status    string `json:"status"`
		AIEnabled bool   `json:"ai_enabled"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "healthy", health.Status)
	assert.False(t, health.AIEnabled, "No API key configured in tests")
}

func levelFor(score float64) models.PriorityLevel {
	switch {
	case score >= 75:
		return models.PriorityCritical
	case score >= 50:
		return models.PriorityHigh
	case score >= 25:
		return models.PriorityMedium
	default:
		return models.PriorityLow
	}
}
