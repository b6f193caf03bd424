package supabase

import (
	"context"
	"log/slog"
	"net/http"

	"audiobrew/internal/domain/service"

	"github.com/google/uuid"
)

type accountDirectory struct {
	client *Client
	logger *slog.Logger
}

// NewAccountDirectory creates an AccountDirectory over the Supabase auth admin API
func NewAccountDirectory(client *Client, logger *slog.Logger) service.AccountDirectory {
	return &accountDirectory{client: client, logger: logger}
}

// DeleteUser removes the auth user. Without a configured project there is no
// auth user to remove and the call succeeds.
func (d *accountDirectory) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if !d.client.Configured() {
		d.logger.Debug("Supabase not configured, skipping auth user deletion",
			slog.String("user_id", userID.String()),
		)

		return nil
	}

	return d.client.do(ctx, request{
		method: http.MethodDelete,
		url:    d.client.baseURL + authPath + userID.String(),
	}, nil)
}
