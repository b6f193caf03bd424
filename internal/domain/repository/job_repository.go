package repository

import (
	"context"
	"time"

	"audiobrew/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrJobNotFound is returned when a podcast job does not exist.
var ErrJobNotFound = errors.New("podcast job not found")

// JobStatusUpdate carries a job state transition.
type JobStatusUpdate struct {
	Status     entity.JobStatus
	Error      string
	StartedAt  *time.Time
	FinishedAt *time.Time
}

// JobRepository persists podcast generation jobs.
type JobRepository interface {
	// Create persists a new job in the queued state.
	Create(ctx context.Context, job *entity.PodcastJob) error

	// FindByID returns a job regardless of owner. Used by the pipeline.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PodcastJob, error)

	// FindByIDForUser returns the job only when userID owns it.
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*entity.PodcastJob, error)

	// UpdateStatus applies a state transition.
	UpdateStatus(ctx context.Context, id uuid.UUID, update JobStatusUpdate) error

	// DeleteByUser removes every job owned by userID.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
