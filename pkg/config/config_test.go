package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "COMPLETION_PROVIDER", "COMPLETION_API_KEY", "COMPLETION_BASE_URL", "COMPLETION_MODEL",
		"GROQ_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "LOCATION_LOOKUP_URL", "LOCATION_TIMEOUT",
		"SESSION_STORE", "SESSION_TTL", "RATE_LIMIT_PER_SECOND", "RATE_LIMIT_BURST", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "openai", cfg.Completion.Provider)
	assert.Equal(t, DefaultCompletionBaseURL, cfg.Completion.BaseURL)
	assert.Equal(t, DefaultCompletionModel, cfg.Completion.Model)
	assert.Equal(t, DefaultLocationLookupURL, cfg.Location.LookupURL)
	assert.Equal(t, 5*time.Second, cfg.Location.Timeout)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, float64(0), cfg.RateLimitPerSecond)
	assert.Equal(t, 5, cfg.RateLimitBurst)
	assert.Equal(t, []string{"http://localhost:8080", "http://127.0.0.1:8080"}, cfg.CORSAllowedOrigins)
}

func TestLoad_ProviderKeyFallbacks(t *testing.T) {
	t.Setenv("COMPLETION_API_KEY", "")
	t.Setenv("COMPLETION_MODEL", "")
	t.Setenv("GROQ_API_KEY", "groq-key")
	t.Setenv("GEMINI_API_KEY", "gemini-key")

	t.Setenv("COMPLETION_PROVIDER", "OpenAI")
	cfg := Load()
	assert.Equal(t, "openai", cfg.Completion.Provider)
	assert.Equal(t, "groq-key", cfg.Completion.APIKey)

	t.Setenv("COMPLETION_PROVIDER", "gemini")
	cfg = Load()
	assert.Equal(t, "gemini-key", cfg.Completion.APIKey)
	assert.Equal(t, DefaultGeminiModel, cfg.Completion.Model)

	t.Setenv("COMPLETION_API_KEY", "explicit")
	cfg = Load()
	assert.Equal(t, "explicit", cfg.Completion.APIKey)
}

func TestLoad_ParsesNumbersAndDurations(t *testing.T) {
	t.Setenv("SESSION_TTL", "45m")
	t.Setenv("LOCATION_TIMEOUT", "not-a-duration")
	t.Setenv("RATE_LIMIT_PER_SECOND", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "10")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	cfg := Load()

	assert.Equal(t, 45*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 5*time.Second, cfg.Location.Timeout)
	assert.Equal(t, 2.5, cfg.RateLimitPerSecond)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoad_BaseURLFollowsKeySource(t *testing.T) {
	t.Setenv("COMPLETION_PROVIDER", "openai")
	t.Setenv("COMPLETION_API_KEY", "")
	t.Setenv("COMPLETION_BASE_URL", "")
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-openai")

	cfg := Load()
	assert.Equal(t, "sk-openai", cfg.Completion.APIKey)
	assert.Empty(t, cfg.Completion.BaseURL, "an OpenAI key must not be sent to the Groq endpoint")

	t.Setenv("GROQ_API_KEY", "gsk-groq")
	cfg = Load()
	assert.Equal(t, "gsk-groq", cfg.Completion.APIKey)
	assert.Equal(t, DefaultCompletionBaseURL, cfg.Completion.BaseURL)

	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("COMPLETION_BASE_URL", "https://llm.internal/v1")
	cfg = Load()
	assert.Equal(t, "https://llm.internal/v1", cfg.Completion.BaseURL)
}
