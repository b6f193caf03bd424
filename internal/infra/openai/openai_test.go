package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"audiobrew/config"
	"audiobrew/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(baseURL string) *config.Config {
	return &config.Config{
		OpenAI: &config.OpenAIConfig{
			APIKey:    "sk-test",
			BaseURL:   baseURL,
			ChatModel: "gpt-4o",
			TTSModel:  "tts-1-hd",
			Voice:     "nova",
			Timeout:   5 * time.Second,
		},
	}
}

func TestTextGenerator_Generate(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"chatcmpl-1","object":"chat.completion","model":"gpt-4o","choices":[{"index":0,"message":{"role":"assistant","content":"Welcome to AudioBrew."},"finish_reason":"stop"}]}`)
	}))
	defer server.Close()

	generator := NewTextGenerator(newTestConfig(server.URL + "/v1"))

	text, err := generator.Generate(context.Background(), service.TextGenerationRequest{
		SystemPrompt: "You are a host.",
		UserPrompt:   "Summarize.",
		Temperature:  0.7,
		MaxTokens:    2000,
	})

	require.NoError(t, err)
	assert.Equal(t, "Welcome to AudioBrew.", text)
	assert.Equal(t, "gpt-4o", captured["model"])
	assert.InDelta(t, 0.7, captured["temperature"], 0.0001)
	assert.EqualValues(t, 2000, captured["max_tokens"])

	messages, ok := captured["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Equal(t, "Summarize.", messages[1].(map[string]any)["content"])
}

func TestTextGenerator_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"chatcmpl-2","object":"chat.completion","choices":[]}`)
	}))
	defer server.Close()

	_, err := NewTextGenerator(newTestConfig(server.URL+"/v1")).Generate(context.Background(), service.TextGenerationRequest{UserPrompt: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestTextGenerator_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error":{"message":"Rate limit reached","type":"requests","code":"rate_limit_exceeded"}}`)
	}))
	defer server.Close()

	_, err := NewTextGenerator(newTestConfig(server.URL+"/v1")).Generate(context.Background(), service.TextGenerationRequest{UserPrompt: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Rate limit reached")
}

func TestSpeechSynthesizer_Synthesize(t *testing.T) {
	audio := make([]byte, 2048)
	for i := range audio {
		audio[i] = byte(i)
	}

	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/audio/speech", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write(audio)
	}))
	defer server.Close()

	got, err := NewSpeechSynthesizer(newTestConfig(server.URL+"/v1")).Synthesize(context.Background(), "Hello listeners.")

	require.NoError(t, err)
	assert.Equal(t, audio, got)
	assert.Equal(t, "tts-1-hd", captured["model"])
	assert.Equal(t, "nova", captured["voice"])
	assert.Equal(t, "mp3", captured["response_format"])
	assert.Equal(t, "Hello listeners.", captured["input"])
}

func TestSpeechSynthesizer_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"message":"Input too long","type":"invalid_request_error"}}`)
	}))
	defer server.Close()

	_, err := NewSpeechSynthesizer(newTestConfig(server.URL+"/v1")).Synthesize(context.Background(), "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "speech synthesis failed")
}
