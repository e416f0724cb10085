package services

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"pathwise/pkg/utils"
)

// CompletionClient sends one system and one user message to a chat model and
// returns the first completion verbatim.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Model() string
}

// OpenAICompletionClient talks to any OpenAI-compatible chat completions API
// (Groq by default).
type OpenAICompletionClient struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

func NewOpenAICompletionClient(apiKey, baseURL, model string, logger *zap.Logger) *OpenAICompletionClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &OpenAICompletionClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		logger: logger,
	}
}

func (c *OpenAICompletionClient) Model() string { return c.model }

func (c *OpenAICompletionClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", utils.ErrCompletionFailed, err)
	}

	if len(resp.Choices) == 0 {
		return "", utils.ErrEmptyCompletion
	}

	c.logger.Debug("completion received",
		zap.String("model", c.model),
		zap.Int("total_tokens", resp.Usage.TotalTokens),
	)

	return resp.Choices[0].Message.Content, nil
}
