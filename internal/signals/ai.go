package signals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"mailtriage/internal/config"
	"mailtriage/internal/models"
)

const summarizePrompt = `Analyze this email thread and provide a concise summary.

Email Content:
%s

Please provide:
1. A brief 2-3 sentence summary of the main topic
2. Key points (bullet points, max 5)
3. Overall tone (professional/urgent/casual/friendly)

Format your response as:
SUMMARY: [your summary]
KEY_POINTS:
- [point 1]
- [point 2]
TONE: [tone]`

const actionsPrompt = `Extract all action items from this email thread.

Email Content:
%s

For each action item, identify:
- The specific task or action required
- Who is responsible (if mentioned)
- Any deadline or time constraint (if mentioned)
- Confidence level (high/medium/low)

Format each action as:
ACTION: [task description]
ASSIGNEE: [person or "unspecified"]
DEADLINE: [date/time or "none"]
CONFIDENCE: [high/medium/low]
---

If there are no clear action items, respond with: NO_ACTIONS`

const priorityPrompt = `Analyze the priority and urgency of this email.

Subject: %s
Content:
%s

Determine:
1. Urgency level (urgent/normal/low)
2. Importance (critical/important/informational)
3. Key signals that indicate priority (deadlines, urgent keywords, etc.)

Format:
URGENCY: [level]
IMPORTANCE: [level]
SIGNALS: [comma-separated signals]`

// AIClient is the AI-backed signal source. Every call is time-bounded and
// runs through a circuit breaker; any failure routes silently to the
// deterministic fallback so callers always get the same shape back.
type AIClient struct {
	client   *openai.Client
	model    string
	timeout  time.Duration
	cb       *gobreaker.CircuitBreaker
	fallback *Fallback
	log      zerolog.Logger
}

var _ Source = (*AIClient)(nil)

// NewAIClient builds the AI-backed signal source from configuration. The
// client handle is read-only after construction and safe for concurrent
// use.
func NewAIClient(cfg *config.Config, log zerolog.Logger) *AIClient {
	cbSettings := gobreaker.Settings{
		Name:        "ai-backend",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
				Msg("AI backend circuit breaker state changed")
		},
	}

	return &AIClient{
		client:   openai.NewClient(cfg.AIAPIKey),
		model:    cfg.AIModel,
		timeout:  cfg.AITimeout,
		cb:       gobreaker.NewCircuitBreaker(cbSettings),
		fallback: NewFallback(),
		log:      log,
	}
}

// Summarize asks the backend for a labeled summary; on any failure the
// fallback summary is returned instead.
func (c *AIClient) Summarize(ctx context.Context, cleanedText string, meta models.EmailMetadata) models.EmailSummary {
	reply, err := c.complete(ctx, fmt.Sprintf(summarizePrompt, cleanedText))
	if err != nil {
		c.log.Warn().Err(err).Msg("AI summarize failed, using fallback")
		return c.fallback.Summarize(ctx, cleanedText, meta)
	}
	return parseSummaryReply(reply)
}

// ExtractActions asks the backend for labeled action blocks; on any
// failure the fallback keyword scan is returned instead.
func (c *AIClient) ExtractActions(ctx context.Context, cleanedText string) []models.ActionItem {
	reply, err := c.complete(ctx, fmt.Sprintf(actionsPrompt, cleanedText))
	if err != nil {
		c.log.Warn().Err(err).Msg("AI action extraction failed, using fallback")
		return c.fallback.ExtractActions(ctx, cleanedText)
	}
	return parseActionReply(reply)
}

// DetectPrioritySignals asks the backend for urgency/importance labels; on
// any failure the fallback keyword detection is returned instead.
func (c *AIClient) DetectPrioritySignals(ctx context.Context, cleanedText string, meta models.EmailMetadata) models.PrioritySignals {
	reply, err := c.complete(ctx, fmt.Sprintf(priorityPrompt, meta.Subject, cleanedText))
	if err != nil {
		c.log.Warn().Err(err).Msg("AI priority detection failed, using fallback")
		return c.fallback.DetectPrioritySignals(ctx, cleanedText, meta)
	}
	return parsePriorityReply(reply)
}

func (c *AIClient) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reply, err := c.cb.Execute(func() (interface{}, error) {
		resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		})
		if err != nil {
			return nil, err
		}
		if len(resp.Choices) == 0 {
			return nil, errors.New("empty completion")
		}
		return resp.Choices[0].Message.Content, nil
	})
	if err != nil {
		return "", err
	}
	return reply.(string), nil
}
