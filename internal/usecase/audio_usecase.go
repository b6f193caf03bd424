package usecase

import (
	"context"

	"github.com/google/uuid"
)

// AudioUsecase turns a script into a stored MP3 and returns its public URL.
// It never substitutes a placeholder; callers decide what to do on error.
type AudioUsecase interface {
	Synthesize(ctx context.Context, script string, userID uuid.UUID) (string, error)
}
