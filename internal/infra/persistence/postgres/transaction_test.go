package postgres

import (
	"context"
	"regexp"
	"testing"

	"audiobrew/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db)
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "podcasts" WHERE user_id = $1`)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "podcast_jobs" WHERE user_id = $1`)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := txManager.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		if err := factory.NewPodcastRepository().DeleteByUser(context.Background(), userID); err != nil {
			return err
		}

		return factory.NewJobRepository().DeleteByUser(context.Background(), userID)
	})

	require.NoError(t, err)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "podcasts" WHERE user_id = $1`)).
		WillReturnError(errors.New("permission denied"))
	mock.ExpectRollback()

	err := txManager.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		return factory.NewPodcastRepository().DeleteByUser(context.Background(), uuid.New())
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}
