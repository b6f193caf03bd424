package usecase

import (
	"context"

	"audiobrew/internal/domain/entity"
)

// CredentialUsecase reads and writes a user's Gmail credential bundle.
// User ids are canonical UUID strings as received at the boundary.
type CredentialUsecase interface {
	// Get returns the stored bundle, or nil when the id is malformed or nothing is stored.
	Get(ctx context.Context, userID string) (*entity.CredentialBundle, error)

	// Save upserts the bundle for userID
	Save(ctx context.Context, userID string, bundle *entity.CredentialBundle) error

	// Delete removes the bundle for userID unconditionally
	Delete(ctx context.Context, userID string) error
}
