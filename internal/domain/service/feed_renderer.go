package service

import (
	"audiobrew/internal/domain/entity"

	"github.com/google/uuid"
)

// FeedRenderer renders a user's podcasts as an RSS 2.0 document.
type FeedRenderer interface {
	RenderPodcastFeed(userID uuid.UUID, podcasts []*entity.Podcast) (string, error)
}
