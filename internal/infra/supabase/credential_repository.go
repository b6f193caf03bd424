package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"audiobrew/internal/domain/entity"
	"audiobrew/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const credentialTable = "gmail_connections"

type credentialRow struct {
	ID          any             `json:"id,omitempty"`
	Credentials json.RawMessage `json:"credentials,omitempty"`
	Email       string          `json:"email,omitempty"`
}

type credentialWrite struct {
	UserID      string                   `json:"user_id,omitempty"`
	Credentials *entity.CredentialBundle `json:"credentials"`
	Email       string                   `json:"email"`
	UpdatedAt   string                   `json:"updated_at,omitempty"`
}

type credentialRepository struct {
	client *Client
}

// NewCredentialRepository creates a CredentialRepository over the gmail_connections table
func NewCredentialRepository(client *Client) repository.CredentialRepository {
	return &credentialRepository{client: client}
}

func (repo *credentialRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.CredentialBundle, error) {
	var rows []credentialRow
	err := repo.client.do(ctx, request{
		method: http.MethodGet,
		url:    repo.client.tableURL(credentialTable),
		query: url.Values{
			"user_id": {eq(userID.String())},
			"select":  {"credentials,email"},
		},
	}, &rows)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 || len(rows[0].Credentials) == 0 {
		return nil, repository.ErrCredentialNotFound
	}

	bundle := new(entity.CredentialBundle)
	if err := json.Unmarshal(rows[0].Credentials, bundle); err != nil {
		return nil, errors.Wrap(err, "failed to decode stored credentials")
	}
	bundle.Email = rows[0].Email

	return bundle, nil
}

// Upsert patches the existing row when one exists and inserts otherwise.
func (repo *credentialRepository) Upsert(ctx context.Context, userID uuid.UUID, bundle *entity.CredentialBundle) error {
	filter := url.Values{"user_id": {eq(userID.String())}}

	var existing []credentialRow
	err := repo.client.do(ctx, request{
		method: http.MethodGet,
		url:    repo.client.tableURL(credentialTable),
		query: url.Values{
			"user_id": {eq(userID.String())},
			"select":  {"id"},
		},
	}, &existing)
	if err != nil {
		return err
	}

	if len(existing) > 0 {
		return repo.client.do(ctx, request{
			method: http.MethodPatch,
			url:    repo.client.tableURL(credentialTable),
			query:  filter,
			body: credentialWrite{
				Credentials: bundle,
				Email:       bundle.Email,
				UpdatedAt:   "now()",
			},
			prefer: preferMinimal,
		}, nil)
	}

	return repo.client.do(ctx, request{
		method: http.MethodPost,
		url:    repo.client.tableURL(credentialTable),
		body: credentialWrite{
			UserID:      userID.String(),
			Credentials: bundle,
			Email:       bundle.Email,
		},
		prefer: preferMinimal,
	}, nil)
}

func (repo *credentialRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return repo.client.do(ctx, request{
		method: http.MethodDelete,
		url:    repo.client.tableURL(credentialTable),
		query:  url.Values{"user_id": {eq(userID.String())}},
	}, nil)
}
