package service

import (
	"context"
)

// PodcastJobEvent asks a worker to run one podcast generation job.
type PodcastJobEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	JobID     string `json:"job_id"`
	UserID    string `json:"user_id"`
}

// JobDispatcher hands persisted jobs to whatever runs the pipeline
type JobDispatcher interface {
	// Dispatch schedules the job. It must not block on the job itself.
	Dispatch(ctx context.Context, event *PodcastJobEvent) error

	// Close releases any resources held by the dispatcher
	Close() error
}
