package openai

import (
	"context"
	"io"

	"audiobrew/config"
	"audiobrew/internal/domain/service"

	"github.com/pkg/errors"
	goopenai "github.com/sashabaranov/go-openai"
)

// speechSynthesizer implements service.SpeechSynthesizer with the audio/speech endpoint
type speechSynthesizer struct {
	client *goopenai.Client
	model  goopenai.SpeechModel
	voice  goopenai.SpeechVoice
}

// NewSpeechSynthesizer creates an MP3 speech synthesizer
func NewSpeechSynthesizer(cfg *config.Config) service.SpeechSynthesizer {
	return &speechSynthesizer{
		client: newAPIClient(cfg.OpenAI),
		model:  goopenai.SpeechModel(cfg.OpenAI.TTSModel),
		voice:  goopenai.SpeechVoice(cfg.OpenAI.Voice),
	}
}

func (s *speechSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := s.client.CreateSpeech(ctx, goopenai.CreateSpeechRequest{
		Model:          s.model,
		Input:          text,
		Voice:          s.voice,
		ResponseFormat: goopenai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, errors.Wrap(err, "speech synthesis failed")
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read synthesized audio")
	}

	return audio, nil
}
