package service

import "context"

// TextGenerationRequest is a single chat completion request.
type TextGenerationRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
	MaxTokens    int
}

// TextGenerator produces text from a prompt via a remote language model.
type TextGenerator interface {
	// Generate returns the first completion.
	Generate(ctx context.Context, req TextGenerationRequest) (string, error)
}
