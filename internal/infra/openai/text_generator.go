package openai

import (
	"context"

	"audiobrew/config"
	"audiobrew/internal/domain/service"

	"github.com/pkg/errors"
	goopenai "github.com/sashabaranov/go-openai"
)

// textGenerator implements service.TextGenerator with chat completions
type textGenerator struct {
	client *goopenai.Client
	model  string
}

// NewTextGenerator creates a chat completion backed text generator
func NewTextGenerator(cfg *config.Config) service.TextGenerator {
	return &textGenerator{
		client: newAPIClient(cfg.OpenAI),
		model:  cfg.OpenAI.ChatModel,
	}
}

func (g *textGenerator) Generate(ctx context.Context, req service.TextGenerationRequest) (string, error) {
	messages := make([]goopenai.ChatCompletionMessage, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, goopenai.ChatCompletionMessage{
			Role:    goopenai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	messages = append(messages, goopenai.ChatCompletionMessage{
		Role:    goopenai.ChatMessageRoleUser,
		Content: req.UserPrompt,
	})

	resp, err := g.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       g.model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", errors.Wrap(err, "chat completion failed")
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
