package postgres

import (
	"context"
	"regexp"
	"testing"

	"audiobrew/internal/domain/entity"
	"audiobrew/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialRepository_FindByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCredentialRepository(db)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "gmail_connections" WHERE user_id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "credentials", "email"}).
			AddRow(userID.String(), []byte(`{"token":"a","refresh_token":"r","scopes":["openid"]}`), "reader@example.com"))

	bundle, err := repo.FindByUser(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, "r", bundle.RefreshToken)
	assert.Equal(t, "reader@example.com", bundle.Email)
}

func TestCredentialRepository_FindByUser_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCredentialRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "gmail_connections"`)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "credentials", "email"}))

	_, err := repo.FindByUser(context.Background(), uuid.New())

	assert.True(t, errors.Is(err, repository.ErrCredentialNotFound))
}

func TestCredentialRepository_UpsertUsesOnConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCredentialRepository(db)

	mock.ExpectExec(`INSERT INTO "gmail_connections" .* ON CONFLICT \("user_id"\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), uuid.New(), &entity.CredentialBundle{
		RefreshToken: "r",
		Email:        "reader@example.com",
	})

	require.NoError(t, err)
}

func TestCredentialRepository_DeleteByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCredentialRepository(db)
	userID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "gmail_connections" WHERE user_id = $1`)).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteByUser(context.Background(), userID))
}
