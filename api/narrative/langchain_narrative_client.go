package narrative

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"trip-planner/models"
)

var ErrEmptyNarrative = errors.New("narrative: model returned no content")

// ContentModel is the part of a langchaingo model the client uses.
type ContentModel interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

// LangChainNarrativeClient generates narratives through any langchaingo model
type LangChainNarrativeClient struct {
	model       ContentModel
	maxTokens   int
	temperature float64
}

func NewLangChainNarrativeClient(model ContentModel, maxTokens int, temperature float64) *LangChainNarrativeClient {
	return &LangChainNarrativeClient{
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

// NewOpenAINarrativeClient builds the client on langchaingo's OpenAI backend.
func NewOpenAINarrativeClient(apiKey, model, baseURL string, maxTokens int, temperature float64) (*LangChainNarrativeClient, error) {
	opts := []openai.Option{openai.WithToken(apiKey)}
	if model != "" {
		opts = append(opts, openai.WithModel(model))
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai model: %w", err)
	}
	return NewLangChainNarrativeClient(llm, maxTokens, temperature), nil
}

func (c *LangChainNarrativeClient) Generate(ctx context.Context, prompt models.NarrativePrompt) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, "You are a travel assistant that writes itinerary summaries."),
		llms.TextParts(llms.ChatMessageTypeHuman, RenderPrompt(prompt)),
	}

	resp, err := c.model.GenerateContent(ctx, messages,
		llms.WithMaxTokens(c.maxTokens),
		llms.WithTemperature(c.temperature),
	)
	if err != nil {
		return "", fmt.Errorf("narrative generation: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", ErrEmptyNarrative
	}

	text := strings.TrimSpace(resp.Choices[0].Content)
	if text == "" {
		return "", ErrEmptyNarrative
	}
	return text, nil
}
