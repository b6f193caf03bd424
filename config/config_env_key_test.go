package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"supabase": map[string]any{
			"url":        "",
			"serviceKey": "",
		},
		"googleOAuth": map[string]any{
			"clientSecret":        "",
			"frontendRedirectUrl": "",
		},
		"openAI": map[string]any{
			"apiKey": "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"oauthState": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SUPABASE_SERVICEKEY", want: "supabase.serviceKey"},
		{envKey: "SUPABASE_URL", want: "supabase.url"},
		{envKey: "GOOGLEOAUTH_CLIENTSECRET", want: "googleOAuth.clientSecret"},
		{envKey: "GOOGLEOAUTH_FRONTENDREDIRECTURL", want: "googleOAuth.frontendRedirectUrl"},
		{envKey: "OPENAI_APIKEY", want: "openAI.apiKey"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_OAUTHSTATE", want: "secretKey.oauthState"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "podcasts", cfg.Supabase.Bucket)
	assert.Equal(t, defaultUpstreamTimeout, cfg.Supabase.Timeout)
	assert.Equal(t, DefaultGmailScopes, cfg.GoogleOAuth.Scopes)
	assert.Equal(t, "https://oauth2.googleapis.com/token", cfg.GoogleOAuth.TokenURI)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.ChatModel)
	assert.Equal(t, "tts-1-hd", cfg.OpenAI.TTSModel)
	assert.Equal(t, "nova", cfg.OpenAI.Voice)
	assert.NotNil(t, cfg.Storage)
	assert.NotNil(t, cfg.Credentials)
	assert.NotNil(t, cfg.Persistence)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Supabase: &SupabaseConfig{Bucket: "audio", Timeout: 5 * time.Second},
		OpenAI:   &OpenAIConfig{ChatModel: "gpt-4o-mini", Voice: "alloy"},
	}
	cfg.applyDefaults()

	assert.Equal(t, "audio", cfg.Supabase.Bucket)
	assert.Equal(t, 5*time.Second, cfg.Supabase.Timeout)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.ChatModel)
	assert.Equal(t, "alloy", cfg.OpenAI.Voice)
	assert.Equal(t, "tts-1-hd", cfg.OpenAI.TTSModel)
}
