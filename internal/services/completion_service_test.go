package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pathwise/pkg/utils"
)

func fakeChatServer(t *testing.T, handle func(req openai.ChatCompletionRequest) (int, any)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req openai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		status, body := handle(req)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAICompletionClient_Complete(t *testing.T) {
	var captured openai.ChatCompletionRequest
	srv := fakeChatServer(t, func(req openai.ChatCompletionRequest) (int, any) {
		captured = req
		return http.StatusOK, openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "Day 1:\n- Colosseum"}},
				{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "ignored"}},
			},
		}
	})

	client := NewOpenAICompletionClient("test-key", srv.URL+"/v1", "llama-test", zap.NewNop())
	text, err := client.Complete(context.Background(), PlannerSystemPrompt, "plan Rome")

	require.NoError(t, err)
	assert.Equal(t, "Day 1:\n- Colosseum", text)
	assert.Equal(t, "llama-test", captured.Model)
	assert.Equal(t, "llama-test", client.Model())
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, captured.Messages[0].Role)
	assert.Equal(t, PlannerSystemPrompt, captured.Messages[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, captured.Messages[1].Role)
	assert.Equal(t, "plan Rome", captured.Messages[1].Content)
}

func TestOpenAICompletionClient_EmptyChoices(t *testing.T) {
	srv := fakeChatServer(t, func(req openai.ChatCompletionRequest) (int, any) {
		return http.StatusOK, openai.ChatCompletionResponse{Choices: []openai.ChatCompletionChoice{}}
	})

	client := NewOpenAICompletionClient("test-key", srv.URL+"/v1", "llama-test", zap.NewNop())
	_, err := client.Complete(context.Background(), "sys", "user")

	assert.True(t, errors.Is(err, utils.ErrEmptyCompletion))
}

func TestOpenAICompletionClient_UpstreamError(t *testing.T) {
	srv := fakeChatServer(t, func(req openai.ChatCompletionRequest) (int, any) {
		return http.StatusUnauthorized, map[string]any{
			"error": map[string]any{"message": "invalid api key", "type": "invalid_request_error"},
		}
	})

	client := NewOpenAICompletionClient("test-key", srv.URL+"/v1", "llama-test", zap.NewNop())
	_, err := client.Complete(context.Background(), "sys", "user")

	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrCompletionFailed))
	assert.Contains(t, err.Error(), "invalid api key")
}
