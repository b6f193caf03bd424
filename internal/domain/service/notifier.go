package service

import (
	"context"

	"audiobrew/internal/domain/entity"
)

// CompletionNotifier tells the user a generation job has finished.
type CompletionNotifier interface {
	// NotifyJobFinished sends a notification for a job in a terminal state.
	NotifyJobFinished(ctx context.Context, job *entity.PodcastJob) error
}
