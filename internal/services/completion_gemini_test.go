package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"pathwise/pkg/utils"
)

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents          []geminiContent `json:"contents"`
	SystemInstruction *geminiContent  `json:"systemInstruction"`
}

// fakeGeminiServer answers generateContent calls with the given JSON body.
func fakeGeminiServer(t *testing.T, status int, body string, captured *geminiRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent"), r.URL.Path)
		if captured != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestGeminiClient(t *testing.T, srv *httptest.Server) *GeminiCompletionClient {
	t.Helper()
	client, err := NewGeminiCompletionClient(context.Background(), "test-key", "gemini-test", zap.NewNop(),
		option.WithEndpoint(srv.URL))
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestGeminiCompletionClient_Complete(t *testing.T) {
	var captured geminiRequest
	srv := fakeGeminiServer(t, http.StatusOK, `{
		"candidates": [{
			"content": {"role": "model", "parts": [{"text": "Day 1:\n"}, {"text": "- Colosseum"}]},
			"finishReason": 1
		}]
	}`, &captured)

	client := newTestGeminiClient(t, srv)
	text, err := client.Complete(context.Background(), PlannerSystemPrompt, "plan Rome")

	require.NoError(t, err)
	assert.Equal(t, "Day 1:\n- Colosseum", text)
	assert.Equal(t, "gemini-test", client.Model())

	require.NotNil(t, captured.SystemInstruction)
	require.Len(t, captured.SystemInstruction.Parts, 1)
	assert.Equal(t, PlannerSystemPrompt, captured.SystemInstruction.Parts[0].Text)
	require.Len(t, captured.Contents, 1)
	assert.Equal(t, "user", captured.Contents[0].Role)
	assert.Equal(t, []geminiPart{{Text: "plan Rome"}}, captured.Contents[0].Parts)
}

func TestGeminiCompletionClient_EmptyResponses(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no candidates", `{}`},
		{"candidate without content", `{"candidates": [{"finishReason": 1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestGeminiClient(t, fakeGeminiServer(t, http.StatusOK, tt.body, nil))

			_, err := client.Complete(context.Background(), "sys", "user")
			assert.True(t, errors.Is(err, utils.ErrEmptyCompletion), "got %v", err)
		})
	}
}

func TestGeminiCompletionClient_UpstreamError(t *testing.T) {
	srv := fakeGeminiServer(t, http.StatusBadRequest,
		`{"error": {"code": 400, "message": "API key not valid", "status": "INVALID_ARGUMENT"}}`, nil)

	client := newTestGeminiClient(t, srv)
	_, err := client.Complete(context.Background(), "sys", "user")

	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrCompletionFailed))
	assert.Contains(t, err.Error(), "API key not valid")
}
