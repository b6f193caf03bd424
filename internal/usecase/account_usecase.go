package usecase

import "context"

// AccountUsecase defines account level operations
type AccountUsecase interface {
	// DeleteAccount removes all user data and the auth user
	DeleteAccount(ctx context.Context, userID string) error
}
