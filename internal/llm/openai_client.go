package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/blaisecz/schedule-builder/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a personal planning assistant reviewing a user's schedule.

You receive the time slots of one schedule within a date range, together with a rule-based analysis: conflicts between overlapping slots, idle gaps between slots, utilization (percentage of the range that is scheduled) and a list of heuristic suggestions. Base your conclusions only on the provided data.

Your goals:
- Describe how the schedule is balanced across categories and days.
- Point out conflicts and explain which slot looks easier to move.
- Comment on the size and placement of gaps.
- Give practical suggestions for rearranging or adding activities.

Rules:
- Do NOT invent slots, dates or times that are not in the data.
- Times are 24-hour HH:mm; a slot whose end is earlier than its start runs past midnight.
- If the schedule is nearly empty, say that explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing the schedule in the given range.",
  "observations": [
    "3-6 bullet points about load, balance between categories, conflicts and gaps."
  ],
  "recommendations": [
    "2-5 concrete suggestions tailored to these slots."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing the schedule "%s" for the %s view from %s to %s.

- "slots" lists every time slot in the range.
- "analysis" holds conflicts, gaps, utilization and rule-based suggestions.

JSON:

%s

Based on this data, respond in the required JSON format.`

// InsightsLLM is the interface for generating schedule insights using an LLM.
type InsightsLLM interface {
	// GenerateInsights takes a context object and returns LLM-generated insights.
	GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.InsightsOutput, error)
}

// OpenAIClient implements InsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client for generating insights.
// Outgoing requests are traced as child spans of the caller's context.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string, opts ...option.RequestOption) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   60 * time.Second,
	}
	base := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(httpClient),
	}
	client := openai.NewClient(append(base, opts...)...)

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// GenerateInsights calls OpenAI to generate schedule insights.
func (c *OpenAIClient) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.InsightsOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(insightsCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate,
		insightsCtx.ScheduleName, insightsCtx.View, insightsCtx.From, insightsCtx.To, string(contextJSON))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	zap.L().Debug("insights completion received",
		zap.String("model", c.model),
		zap.Int64("total_tokens", resp.Usage.TotalTokens),
	)

	return ParseOutput(resp.Choices[0].Message.Content)
}

// ParseOutput decodes the model's JSON answer. A surrounding markdown code
// fence is tolerated.
func ParseOutput(content string) (*domain.InsightsOutput, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var output domain.InsightsOutput
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}
	if output.Summary == "" {
		return nil, fmt.Errorf("%w: empty summary", ErrOpenAIResponse)
	}
	if output.Observations == nil {
		output.Observations = []string{}
	}
	if output.Recommendations == nil {
		output.Recommendations = []string{}
	}

	return &output, nil
}
