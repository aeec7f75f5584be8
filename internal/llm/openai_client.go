package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/blaisecz/cycle-tracker/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

var tracer = otel.Tracer("cycle-tracker-api/llm")

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical menstrual cycle tracking assistant.

You receive the prediction derived from a user's most recent period entry, aggregate statistics over all of their entries, and any condition tags they recorded. Base your conclusions only on the provided data.

Your goals:
- Describe where the user is in their current cycle in clear, neutral language.
- Explain the predicted next period, ovulation day and fertile window as estimates.
- Compare the latest entry's cycle length and period duration to the user's averages.
- Give practical, behavioral suggestions for tracking and planning.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT interpret condition tags clinically; you may only acknowledge that the user recorded them.
- Do NOT present the fertile window as contraception guidance.
- If only one entry exists, say that averages are not yet meaningful.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing the current cycle day and the next predicted period.",
  "observations": [
    "2-5 items about the predicted dates and how the latest entry compares to the averages."
  ],
  "guidance": [
    "2-4 concrete, non-medical suggestions, such as logging the next period start to refine predictions."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's cycle data.

- "latest" is the prediction from the most recent entry, including "today", "current_cycle_day" and "days_until_next_period" (negative when overdue).
- "stats" holds the entry count and the average cycle length and period duration.
- "conditions" lists the tags on the latest entry.

JSON:

%s

Based on this data, respond in the required JSON format.`

// InsightsLLM is the interface for generating cycle insights using an LLM.
type InsightsLLM interface {
	// Available reports whether the client is configured.
	Available() bool
	// GenerateInsights takes a context object and returns LLM-generated insights.
	GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error)
}

// OpenAIClient implements InsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client for generating insights.
// Returns nil if apiKey is empty. Extra options are passed to the SDK client.
func NewOpenAIClient(apiKey, model string, opts ...option.RequestOption) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = DefaultModel
	}

	client := openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// GenerateInsights calls OpenAI to generate cycle insights.
func (c *OpenAIClient) Available() bool {
	return c != nil
}

func (c *OpenAIClient) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	ctx, span := tracer.Start(ctx, "OpenAIClient.GenerateInsights", trace.WithAttributes(
		attribute.String("llm.model", c.model),
	))
	defer span.End()

	output, err := c.generate(ctx, insightsCtx, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insights generation failed")
		return nil, err
	}
	return output, nil
}

func (c *OpenAIClient) generate(ctx context.Context, insightsCtx *domain.InsightsContext, span trace.Span) (*domain.LLMInsightsOutput, error) {
	contextJSON, err := json.MarshalIndent(insightsCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(fmt.Sprintf(userPromptTemplate, string(contextJSON))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	span.SetAttributes(
		attribute.Int64("llm.usage.prompt_tokens", resp.Usage.PromptTokens),
		attribute.Int64("llm.usage.completion_tokens", resp.Usage.CompletionTokens),
	)

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	return parseInsights(resp.Choices[0].Message.Content)
}

// parseInsights decodes the model's JSON reply, tolerating a markdown code fence.
func parseInsights(content string) (*domain.LLMInsightsOutput, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	}

	var output domain.LLMInsightsOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}
	if strings.TrimSpace(output.Summary) == "" {
		return nil, fmt.Errorf("%w: empty summary", ErrOpenAIResponse)
	}
	return &output, nil
}
