package service

import (
	"context"

	"audiobrew/internal/domain/entity"
)

// TokenRefreshFunc is called when an expired access token was refreshed,
// so the caller can persist the new bundle.
type TokenRefreshFunc func(ctx context.Context, refreshed *entity.CredentialBundle)

// EmailSource reads messages from the user's mailbox.
type EmailSource interface {
	// FetchSummaries fetches one summary per id, in input order. Any failure
	// yields an empty slice; errors are logged, never returned.
	FetchSummaries(ctx context.Context, creds *entity.CredentialBundle, ids []string, onRefresh TokenRefreshFunc) []entity.EmailSummary

	// ListLabels returns all mailbox labels.
	ListLabels(ctx context.Context, creds *entity.CredentialBundle, onRefresh TokenRefreshFunc) ([]*entity.GmailLabel, error)

	// ListLabelEmails returns summaries of up to limit messages carrying labelID.
	ListLabelEmails(ctx context.Context, creds *entity.CredentialBundle, labelID string, limit int64, onRefresh TokenRefreshFunc) ([]entity.EmailSummary, error)
}
