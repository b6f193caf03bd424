// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"audiobrew/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for credential persistence.
var (
	// ErrCredentialNotFound is returned when a user has no stored Gmail connection.
	ErrCredentialNotFound = errors.New("gmail credentials not found")
	// ErrStoreNotConfigured is returned when the store connection parameters are unset.
	ErrStoreNotConfigured = errors.New("credential store not configured")
)

// CredentialRepository stores one Gmail credential bundle per user.
type CredentialRepository interface {
	// FindByUser returns the bundle stored for userID, or ErrCredentialNotFound.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.CredentialBundle, error)

	// Upsert inserts the bundle or overwrites the existing one wholesale.
	Upsert(ctx context.Context, userID uuid.UUID, bundle *entity.CredentialBundle) error

	// DeleteByUser removes the bundle. Deleting a missing bundle is not an error.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
