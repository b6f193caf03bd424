package supabase

import (
	"context"
	"net/http"
	"net/url"

	"audiobrew/internal/domain/entity"
	"audiobrew/internal/domain/repository"

	"github.com/google/uuid"
)

const (
	podcastTable       = "podcasts"
	preferRepresenting = "return=representation"
)

type podcastRepository struct {
	client *Client
}

// NewPodcastRepository creates a PodcastRepository over the podcasts table
func NewPodcastRepository(client *Client) repository.PodcastRepository {
	return &podcastRepository{client: client}
}

func (repo *podcastRepository) Create(ctx context.Context, podcast *entity.Podcast) error {
	return repo.client.do(ctx, request{
		method: http.MethodPost,
		url:    repo.client.tableURL(podcastTable),
		body:   podcast,
		prefer: preferMinimal,
	}, nil)
}

func (repo *podcastRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Podcast, error) {
	podcasts := make([]*entity.Podcast, 0)
	err := repo.client.do(ctx, request{
		method: http.MethodGet,
		url:    repo.client.tableURL(podcastTable),
		query: url.Values{
			"user_id": {eq(userID.String())},
			"select":  {"*"},
			"order":   {"created_at.desc"},
		},
	}, &podcasts)
	if err != nil {
		return nil, err
	}

	return podcasts, nil
}

func (repo *podcastRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*entity.Podcast, error) {
	var podcasts []*entity.Podcast
	err := repo.client.do(ctx, request{
		method: http.MethodGet,
		url:    repo.client.tableURL(podcastTable),
		query: url.Values{
			"id":      {eq(id.String())},
			"user_id": {eq(userID.String())},
			"select":  {"*"},
		},
	}, &podcasts)
	if err != nil {
		return nil, err
	}

	if len(podcasts) == 0 {
		return nil, repository.ErrPodcastNotFound
	}

	return podcasts[0], nil
}

// Delete removes the row matching both ids. No matching row is ErrPodcastNotFound.
func (repo *podcastRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	var deleted []*entity.Podcast
	err := repo.client.do(ctx, request{
		method: http.MethodDelete,
		url:    repo.client.tableURL(podcastTable),
		query: url.Values{
			"id":      {eq(id.String())},
			"user_id": {eq(userID.String())},
		},
		prefer: preferRepresenting,
	}, &deleted)
	if err != nil {
		return err
	}

	if len(deleted) == 0 {
		return repository.ErrPodcastNotFound
	}

	return nil
}

func (repo *podcastRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return repo.client.do(ctx, request{
		method: http.MethodDelete,
		url:    repo.client.tableURL(podcastTable),
		query:  url.Values{"user_id": {eq(userID.String())}},
	}, nil)
}
