package service

import (
	"context"

	"github.com/google/uuid"
)

// AccountDirectory manages user accounts in the identity provider.
type AccountDirectory interface {
	// DeleteUser removes the auth user.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}
