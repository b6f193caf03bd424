package usecase

import (
	"context"

	"audiobrew/internal/domain/entity"
)

// ScriptUsecase turns flattened newsletter text into a narration script
type ScriptUsecase interface {
	Synthesize(ctx context.Context, combinedText string) (*entity.ScriptResult, error)
}
