package chat

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIClient_GenerateContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-123",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Make pancakes."}, "finish_reason": "stop"}]
		}`))
	}))
	defer srv.Close()

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"
	client := NewOpenAIClientWithConfig(cfg, "gpt-4o-mini")

	raw, err := client.GenerateContent(context.Background(), "What can I cook?")
	require.NoError(t, err)

	text, err := ExtractText(raw)
	require.NoError(t, err)
	assert.Equal(t, "Make pancakes.", text)
}

func TestOpenAIClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	cfg := openai.DefaultConfig("bad-key")
	cfg.BaseURL = srv.URL + "/v1"

	_, err := NewOpenAIClientWithConfig(cfg, "gpt-4o-mini").GenerateContent(context.Background(), "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Incorrect API key provided")
}
