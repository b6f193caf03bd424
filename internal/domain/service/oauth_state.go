package service

import (
	"github.com/google/uuid"
)

// OAuthStateService signs and verifies the OAuth "state" parameter that carries
// the user id through the Google consent redirect.
type OAuthStateService interface {
	// Sign creates a short lived state for userID.
	Sign(userID uuid.UUID) (string, error)

	// Verify checks the signature and expiry and returns the user id.
	Verify(state string) (uuid.UUID, error)
}
