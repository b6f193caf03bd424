package service

import "context"

// SpeechSynthesizer turns text into encoded MP3 audio via a remote model.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
