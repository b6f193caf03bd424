// Package openai adapts the OpenAI chat completion and speech endpoints to the domain services.
package openai

import (
	"net/http"

	"audiobrew/config"

	goopenai "github.com/sashabaranov/go-openai"
)

func newAPIClient(cfg *config.OpenAIConfig) *goopenai.Client {
	clientConfig := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return goopenai.NewClientWithConfig(clientConfig)
}
