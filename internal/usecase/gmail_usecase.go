package usecase

import (
	"context"

	"audiobrew/internal/domain/entity"
)

// MaxLabelEmails caps how many messages a label listing returns.
const MaxLabelEmails = 10

// GmailStatus reports whether a user has connected Gmail
type GmailStatus struct {
	IsConnected bool   `json:"is_connected"`
	Email       string `json:"email,omitempty"`
}

// GmailLabels lists mailbox labels and the AudioBrew label if present
type GmailLabels struct {
	Labels            []*entity.GmailLabel `json:"labels"`
	AudioBrewLabel    *entity.GmailLabel   `json:"audiobrew_label"`
	HasAudioBrewLabel bool                 `json:"has_audiobrew_label"`
}

// GmailEmails lists message summaries under a label
type GmailEmails struct {
	LabelID string                `json:"label_id,omitempty"`
	Emails  []entity.EmailSummary `json:"emails"`
	Total   *int                  `json:"total,omitempty"`
	Message string                `json:"message,omitempty"`
}

// GmailUsecase defines the Gmail connection use cases
type GmailUsecase interface {
	// AuthorizationURL returns the Google consent URL for userID
	AuthorizationURL(ctx context.Context, userID string) (string, error)

	// CompleteAuthorization exchanges the code, stores the credentials and returns the linked email
	CompleteAuthorization(ctx context.Context, code, state string) (string, error)

	// Status reports the connection state for userID
	Status(ctx context.Context, userID string) (*GmailStatus, error)

	// Disconnect removes the stored credentials
	Disconnect(ctx context.Context, userID string) error

	// Labels lists the user's labels
	Labels(ctx context.Context, userID string) (*GmailLabels, error)

	// Emails lists up to MaxLabelEmails messages under labelID, or the AudioBrew label when empty
	Emails(ctx context.Context, userID, labelID string) (*GmailEmails, error)
}
