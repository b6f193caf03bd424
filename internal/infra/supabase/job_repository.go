package supabase

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"audiobrew/internal/domain/entity"
	"audiobrew/internal/domain/repository"

	"github.com/google/uuid"
)

const jobTable = "podcast_jobs"

type jobStatusPatch struct {
	Status     entity.JobStatus `json:"status"`
	Error      *string          `json:"error"`
	UpdatedAt  string           `json:"updated_at"`
	StartedAt  *time.Time       `json:"started_at,omitempty"`
	FinishedAt *time.Time       `json:"finished_at,omitempty"`
}

type jobRepository struct {
	client *Client
}

// NewJobRepository creates a JobRepository over the podcast_jobs table
func NewJobRepository(client *Client) repository.JobRepository {
	return &jobRepository{client: client}
}

func (repo *jobRepository) Create(ctx context.Context, job *entity.PodcastJob) error {
	return repo.client.do(ctx, request{
		method: http.MethodPost,
		url:    repo.client.tableURL(jobTable),
		body:   job,
		prefer: preferMinimal,
	}, nil)
}

func (repo *jobRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PodcastJob, error) {
	return repo.findOne(ctx, url.Values{
		"id":     {eq(id.String())},
		"select": {"*"},
	})
}

func (repo *jobRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*entity.PodcastJob, error) {
	return repo.findOne(ctx, url.Values{
		"id":      {eq(id.String())},
		"user_id": {eq(userID.String())},
		"select":  {"*"},
	})
}

func (repo *jobRepository) findOne(ctx context.Context, query url.Values) (*entity.PodcastJob, error) {
	var jobs []*entity.PodcastJob
	err := repo.client.do(ctx, request{
		method: http.MethodGet,
		url:    repo.client.tableURL(jobTable),
		query:  query,
	}, &jobs)
	if err != nil {
		return nil, err
	}

	if len(jobs) == 0 {
		return nil, repository.ErrJobNotFound
	}

	return jobs[0], nil
}

// UpdateStatus patches the job row. An empty error text clears the column.
func (repo *jobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, update repository.JobStatusUpdate) error {
	patch := jobStatusPatch{
		Status:     update.Status,
		UpdatedAt:  "now()",
		StartedAt:  update.StartedAt,
		FinishedAt: update.FinishedAt,
	}
	if update.Error != "" {
		patch.Error = &update.Error
	}

	var updated []*entity.PodcastJob
	err := repo.client.do(ctx, request{
		method: http.MethodPatch,
		url:    repo.client.tableURL(jobTable),
		query:  url.Values{"id": {eq(id.String())}},
		body:   patch,
		prefer: preferRepresenting,
	}, &updated)
	if err != nil {
		return err
	}

	if len(updated) == 0 {
		return repository.ErrJobNotFound
	}

	return nil
}

func (repo *jobRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return repo.client.do(ctx, request{
		method: http.MethodDelete,
		url:    repo.client.tableURL(jobTable),
		query:  url.Values{"user_id": {eq(userID.String())}},
	}, nil)
}
