package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"pathwise/pkg/utils"
)

// GeminiCompletionClient implements CompletionClient with Google's Gemini
// models; the system prompt becomes the model's system instruction.
type GeminiCompletionClient struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewGeminiCompletionClient accepts extra client options, e.g. a custom
// endpoint.
func NewGeminiCompletionClient(ctx context.Context, apiKey, model string, logger *zap.Logger, opts ...option.ClientOption) (*GeminiCompletionClient, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiCompletionClient{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (c *GeminiCompletionClient) Model() string { return c.model }

func (c *GeminiCompletionClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}

	resp, err := m.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %w", utils.ErrCompletionFailed, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", utils.ErrEmptyCompletion
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}

	c.logger.Debug("completion received", zap.String("model", c.model), zap.String("provider", "gemini"))

	return text.String(), nil
}

func (c *GeminiCompletionClient) Close() error {
	return c.client.Close()
}
