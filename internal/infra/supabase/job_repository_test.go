package supabase

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"audiobrew/internal/domain/entity"
	"audiobrew/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobRepository_CreateAndFind(t *testing.T) {
	job := &entity.PodcastJob{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		EmailIDs: []string{"m1", "m2"},
		Status:   entity.JobStatusQueued,
	}
	fake := newFakeSupabase(t,
		fakeReply{status: http.StatusCreated},
		fakeReply{status: http.StatusOK, body: fmt.Sprintf(
			`[{"id":"%s","user_id":"%s","email_ids":["m1","m2"],"status":"queued","created_at":"2025-03-07T09:00:00+00:00","updated_at":"2025-03-07T09:00:00+00:00","started_at":null,"error":null}]`,
			job.ID, job.UserID,
		)},
	)
	repo := NewJobRepository(fake.client())

	require.NoError(t, repo.Create(context.Background(), job))
	got, err := repo.FindByID(context.Background(), job.ID)
	require.NoError(t, err)

	assert.Equal(t, job.ID, got.ID)
	assert.Equal(t, []string{"m1", "m2"}, got.EmailIDs)
	assert.Equal(t, entity.JobStatusQueued, got.Status)
	assert.Nil(t, got.StartedAt)

	reqs := fake.recorded()
	require.Len(t, reqs, 2)
	assert.Equal(t, "/rest/v1/podcast_jobs", reqs[0].Path)
	body := decodeBody(t, reqs[0])
	assert.Equal(t, "queued", body["status"])
	assert.Equal(t, "eq."+job.ID.String(), reqs[1].Query["id"])
	assert.NotContains(t, reqs[1].Query, "user_id")
}

func TestJobRepository_FindByIDForUser_NotFound(t *testing.T) {
	fake := newFakeSupabase(t, fakeReply{status: http.StatusOK, body: `[]`})
	repo := NewJobRepository(fake.client())
	userID := uuid.New()

	_, err := repo.FindByIDForUser(context.Background(), userID, uuid.New())

	assert.True(t, errors.Is(err, repository.ErrJobNotFound))
	assert.Equal(t, "eq."+userID.String(), fake.recorded()[0].Query["user_id"])
}

func TestJobRepository_UpdateStatus(t *testing.T) {
	id := uuid.New()
	fake := newFakeSupabase(t,
		fakeReply{status: http.StatusOK, body: fmt.Sprintf(`[{"id":"%s","status":"failed"}]`, id)},
		fakeReply{status: http.StatusOK, body: `[]`},
	)
	repo := NewJobRepository(fake.client())
	finished := time.Date(2025, 3, 7, 9, 5, 0, 0, time.UTC)

	err := repo.UpdateStatus(context.Background(), id, repository.JobStatusUpdate{
		Status:     entity.JobStatusFailed,
		Error:      "gmail credentials not found",
		FinishedAt: &finished,
	})
	require.NoError(t, err)

	err = repo.UpdateStatus(context.Background(), uuid.New(), repository.JobStatusUpdate{Status: entity.JobStatusRunning})
	assert.True(t, errors.Is(err, repository.ErrJobNotFound))

	reqs := fake.recorded()
	require.Len(t, reqs, 2)
	assert.Equal(t, http.MethodPatch, reqs[0].Method)
	body := decodeBody(t, reqs[0])
	assert.Equal(t, "failed", body["status"])
	assert.Equal(t, "gmail credentials not found", body["error"])
	assert.Equal(t, "2025-03-07T09:05:00Z", body["finished_at"])
	assert.NotContains(t, body, "started_at")

	second := decodeBody(t, reqs[1])
	assert.Contains(t, second, "error")
	assert.Nil(t, second["error"])
}
