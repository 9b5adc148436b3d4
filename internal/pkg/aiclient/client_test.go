package aiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveProvider(t *testing.T) {
	tests := []struct {
		modelID string
		want    string
	}{
		{modelID: "gemini-2.5-flash", want: "gemini"},
		{modelID: "gemini-2.5-pro", want: "gemini"},
		{modelID: "claude-sonnet-4-20250514", want: "anthropic"},
		{modelID: "gpt-4o", want: "openai"},
		{modelID: "gpt-4o-mini", want: "openai"},
		{modelID: "llama-3.3-70b-versatile", want: "groq"},
		{modelID: "mixtral-8x7b-32768", want: "groq"},
		{modelID: "totally-unknown", want: "gemini"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveProvider(tt.modelID), tt.modelID)
	}
}

func TestChatOpenAICompatible(t *testing.T) {
	var gotAuth string
	var gotReq openAIChatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "hello from llama"}},
			},
			"usage": map[string]int{"total_tokens": 42},
		})
	}))
	defer srv.Close()

	client := NewClient(Config{GroqAPIKey: "groq-key"})
	client.groqBaseURL = srv.URL

	reply, err := client.Chat(context.Background(), "llama-3.3-70b-versatile", []Message{
		{Role: "system", Content: "be brief"},
		{Role: "user", Content: "hi"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer groq-key", gotAuth)
	assert.Equal(t, "llama-3.3-70b-versatile", gotReq.Model)
	assert.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "hello from llama", reply.Content)
	assert.Equal(t, 42, reply.TokensUsed)
}

func TestChatAnthropicSplitsSystemMessage(t *testing.T) {
	var gotReq anthropicChatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/messages", r.URL.Path)
		require.Equal(t, "test-key", r.Header.Get("x-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"content": []map[string]string{{"type": "text", "text": "claude says hi"}},
			"usage":   map[string]int{"input_tokens": 10, "output_tokens": 5},
		})
	}))
	defer srv.Close()

	client := NewClient(Config{AnthropicAPIKey: "test-key"})
	client.anthropicBaseURL = srv.URL

	reply, err := client.Chat(context.Background(), "claude-sonnet-4-20250514", []Message{
		{Role: "system", Content: "you are helpful"},
		{Role: "user", Content: "hi"},
	})
	require.NoError(t, err)

	assert.Equal(t, "you are helpful", gotReq.System)
	require.Len(t, gotReq.Messages, 1)
	assert.Equal(t, "user", gotReq.Messages[0].Role)
	assert.Equal(t, "claude says hi", reply.Content)
	assert.Equal(t, 15, reply.TokensUsed)
}

func TestChatGeminiMapsAssistantRole(t *testing.T) {
	var gotReq geminiChatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/models/gemini-2.5-flash:generateContent", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": "gemini reply"}},
				}},
			},
			"usageMetadata": map[string]int{"totalTokenCount": 7},
		})
	}))
	defer srv.Close()

	client := NewClient(Config{GeminiAPIKey: "g-key"})
	client.geminiBaseURL = srv.URL

	reply, err := client.Chat(context.Background(), "gemini-2.5-flash", []Message{
		{Role: "system", Content: "sys"},
		{Role: "user", Content: "question"},
		{Role: "assistant", Content: "earlier answer"},
	})
	require.NoError(t, err)

	require.NotNil(t, gotReq.SystemInstruction)
	require.Len(t, gotReq.Contents, 2)
	assert.Equal(t, "user", gotReq.Contents[0].Role)
	assert.Equal(t, "model", gotReq.Contents[1].Role)
	assert.Equal(t, "gemini reply", reply.Content)
}

func TestChatMissingKeyFails(t *testing.T) {
	client := NewClient(Config{})

	_, err := client.Chat(context.Background(), "gpt-4o", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestChatProviderErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(Config{OpenAIAPIKey: "k"})
	client.openAIBaseURL = srv.URL

	_, err := client.Chat(context.Background(), "gpt-4o", []Message{{Role: "user", Content: "hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
