package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultCompletionBaseURL = "https://api.groq.com/openai/v1"
	DefaultCompletionModel   = "meta-llama/llama-4-scout-17b-16e-instruct"
	DefaultGeminiModel       = "gemini-1.5-flash"
	DefaultLocationLookupURL = "http://ip-api.com/json/"
)

type Config struct {
	Port    string
	GinMode string

	Completion CompletionConfig
	Location   LocationConfig
	Session    SessionConfig

	CORSAllowedOrigins []string
	RateLimitPerSecond float64
	RateLimitBurst     int
}

// CompletionConfig selects and configures the chat completion provider.
type CompletionConfig struct {
	Provider string // "openai" (any OpenAI-compatible endpoint) or "gemini"
	APIKey   string
	BaseURL  string
	Model    string
}

type LocationConfig struct {
	LookupURL string
	Timeout   time.Duration
}

type SessionConfig struct {
	Store       string // "memory" or "postgres"
	PostgresURL string
	TTL         time.Duration
	Secret      string
}

// Load reads the environment, after merging a local .env file if one exists.
func Load() *Config {
	_ = godotenv.Load()

	provider := strings.ToLower(getEnvWithDefault("COMPLETION_PROVIDER", "openai"))
	apiKey, keySource := completionAPIKey(provider)

	cfg := &Config{
		Port:    getEnvWithDefault("PORT", "8080"),
		GinMode: os.Getenv("GIN_MODE"),
		Completion: CompletionConfig{
			Provider: provider,
			APIKey:   apiKey,
			BaseURL:  getEnvWithDefault("COMPLETION_BASE_URL", defaultBaseURL(keySource)),
			Model:    getEnvWithDefault("COMPLETION_MODEL", defaultModel(provider)),
		},
		Location: LocationConfig{
			LookupURL: getEnvWithDefault("LOCATION_LOOKUP_URL", DefaultLocationLookupURL),
			Timeout:   getDurationWithDefault("LOCATION_TIMEOUT", 5*time.Second),
		},
		Session: SessionConfig{
			Store:       strings.ToLower(getEnvWithDefault("SESSION_STORE", "memory")),
			PostgresURL: os.Getenv("POSTGRES_URL"),
			TTL:         getDurationWithDefault("SESSION_TTL", 2*time.Hour),
			Secret:      os.Getenv("SESSION_SECRET"),
		},
		CORSAllowedOrigins: splitList(getEnvWithDefault("CORS_ALLOWED_ORIGINS", "http://localhost:8080,http://127.0.0.1:8080")),
		RateLimitPerSecond: getFloatWithDefault("RATE_LIMIT_PER_SECOND", 0),
		RateLimitBurst:     getIntWithDefault("RATE_LIMIT_BURST", 5),
	}

	return cfg
}

func defaultModel(provider string) string {
	if provider == "gemini" {
		return DefaultGeminiModel
	}
	return DefaultCompletionModel
}

// completionAPIKey prefers COMPLETION_API_KEY and falls back to the
// provider-specific variables. It also reports which variable it used.
func completionAPIKey(provider string) (string, string) {
	if key := os.Getenv("COMPLETION_API_KEY"); key != "" {
		return key, "COMPLETION_API_KEY"
	}
	if provider == "gemini" {
		return os.Getenv("GEMINI_API_KEY"), "GEMINI_API_KEY"
	}
	if key := os.Getenv("GROQ_API_KEY"); key != "" {
		return key, "GROQ_API_KEY"
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key, "OPENAI_API_KEY"
	}
	return "", ""
}

// defaultBaseURL keeps OpenAI keys on OpenAI: an empty base URL means the
// client library's own default endpoint.
func defaultBaseURL(keySource string) string {
	if keySource == "OPENAI_API_KEY" {
		return ""
	}
	return DefaultCompletionBaseURL
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getFloatWithDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
