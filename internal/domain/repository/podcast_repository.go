package repository

import (
	"context"

	"audiobrew/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPodcastNotFound is returned when a podcast is absent or owned by another user.
var ErrPodcastNotFound = errors.New("podcast not found")

// PodcastRepository persists podcast records. Every read is scoped by owner.
type PodcastRepository interface {
	// Create persists a new podcast record.
	Create(ctx context.Context, podcast *entity.Podcast) error

	// ListByUser returns the user's podcasts, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Podcast, error)

	// FindByIDForUser returns the podcast only when userID owns it.
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*entity.Podcast, error)

	// Delete removes the podcast owned by userID.
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// DeleteByUser removes every podcast owned by userID.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
