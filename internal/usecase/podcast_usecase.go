package usecase

import (
	"context"

	"audiobrew/internal/domain/entity"
)

// GenerateRequest is a podcast generation request
type GenerateRequest struct {
	UserID   string
	EmailIDs []string
	Title    string
}

// PodcastUsecase defines the podcast management use cases. All reads are scoped by owner.
type PodcastUsecase interface {
	// Generate persists a queued job and dispatches it. The job id is the future podcast id.
	Generate(ctx context.Context, req *GenerateRequest) (*entity.PodcastJob, error)

	// List returns the user's podcasts, newest first
	List(ctx context.Context, userID string) ([]*entity.Podcast, error)

	// Get returns one podcast owned by userID
	Get(ctx context.Context, userID, podcastID string) (*entity.Podcast, error)

	// Delete removes the podcast and, best effort, its audio file
	Delete(ctx context.Context, userID, podcastID string) error

	// GetJob returns a generation job owned by userID
	GetJob(ctx context.Context, userID, jobID string) (*entity.PodcastJob, error)

	// Feed renders the user's podcasts as RSS
	Feed(ctx context.Context, userID string) (string, error)

	// ShareQRCode returns a PNG QR code of the podcast's audio URL
	ShareQRCode(ctx context.Context, userID, podcastID string) ([]byte, error)
}
