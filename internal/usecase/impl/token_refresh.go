package impl

import (
	"context"
	"log/slog"

	deliverycontext "audiobrew/internal/delivery/context"
	"audiobrew/internal/domain/entity"
	"audiobrew/internal/domain/service"
	"audiobrew/internal/usecase"
)

// persistRefreshedToken writes refreshed Gmail tokens back to the credential store.
// Failures are logged; the caller keeps using the refreshed token for this request.
func persistRefreshedToken(credentials usecase.CredentialUsecase, fallback *slog.Logger, userID string) service.TokenRefreshFunc {
	return func(ctx context.Context, refreshed *entity.CredentialBundle) {
		logger := deliverycontext.GetLoggerOrDefault(ctx, fallback)

		if err := credentials.Save(ctx, userID, refreshed); err != nil {
			logger.Warn("Failed to persist refreshed Gmail token",
				slog.String("user_id", userID),
				slog.Any("error", err),
			)

			return
		}

		logger.Debug("Persisted refreshed Gmail token", slog.String("user_id", userID))
	}
}
