// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTokenURI is Google's OAuth 2.0 token endpoint.
const DefaultTokenURI = "https://oauth2.googleapis.com/token"

// CredentialBundle is the stored OAuth artifact set authorizing access to a user's Gmail account.
type CredentialBundle struct {
	Token        string   `json:"token"`         // OAuth access token.
	RefreshToken string   `json:"refresh_token"` // Long lived refresh token.
	TokenURI     string   `json:"token_uri"`     // Token endpoint used for refreshes.
	ClientID     string   `json:"client_id"`     // OAuth client identifier.
	ClientSecret string   `json:"client_secret"` // OAuth client secret.
	Scopes       []string `json:"scopes"`        // Granted scopes.
	Email        string   `json:"-"`             // Linked Gmail address, stored beside the bundle.
}

// Validate reports whether the bundle may be persisted.
func (b *CredentialBundle) Validate() bool {
	return b != nil &&
		strings.TrimSpace(b.Email) != "" &&
		strings.TrimSpace(b.RefreshToken) != ""
}

// GmailConnection is a stored credential bundle with its owner.
type GmailConnection struct {
	UserID      uuid.UUID         `json:"user_id"`
	Credentials *CredentialBundle `json:"credentials"`
	Email       string            `json:"email"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
