package completion_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"pathwise/internal/services"
	"pathwise/pkg/config"
)

var Module = fx.Provide(ProvideCompletionClient)

// ProvideCompletionClient creates the chat client named by COMPLETION_PROVIDER.
func ProvideCompletionClient(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (services.CompletionClient, error) {
	c := cfg.Completion
	if c.APIKey == "" {
		return nil, fmt.Errorf("no API key configured for completion provider %q", c.Provider)
	}

	logger.Info("Initializing completion client",
		zap.String("provider", c.Provider),
		zap.String("model", c.Model),
	)

	switch c.Provider {
	case "openai", "groq":
		return services.NewOpenAICompletionClient(c.APIKey, c.BaseURL, c.Model, logger), nil
	case "gemini":
		client, err := services.NewGeminiCompletionClient(context.Background(), c.APIKey, c.Model, logger)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error { return client.Close() },
		})
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported completion provider: %s. Use 'openai' or 'gemini'", c.Provider)
	}
}
