package service

import (
	"context"

	"audiobrew/internal/domain/entity"
)

// GmailOAuthProvider drives the Google authorization-code flow for Gmail access.
type GmailOAuthProvider interface {
	// AuthCodeURL builds the consent URL for offline access.
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for a credential bundle,
	// including the linked email address.
	Exchange(ctx context.Context, code string) (*entity.CredentialBundle, error)
}
