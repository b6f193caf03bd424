package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "audiobrew/internal/delivery/context"
	"audiobrew/internal/domain/constants"
	"audiobrew/internal/domain/entity"
	domainerrors "audiobrew/internal/domain/errors"
	"audiobrew/internal/domain/service"
	"audiobrew/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	audioBrewLabelName  = "audiobrew"
	missingLabelMessage = "AudioBrew label not found. Please create a label named 'AudioBrew' in your Gmail account."
)

type gmailService struct {
	credentials usecase.CredentialUsecase
	oauth       service.GmailOAuthProvider
	state       service.OAuthStateService
	emailSource service.EmailSource
	logger      *slog.Logger
}

// GmailServiceParams holds dependencies for GmailService, injected by Fx.
type GmailServiceParams struct {
	fx.In

	Credentials usecase.CredentialUsecase
	OAuth       service.GmailOAuthProvider
	State       service.OAuthStateService
	EmailSource service.EmailSource
	Logger      *slog.Logger
}

// NewGmailService creates a new Gmail connection service
func NewGmailService(params GmailServiceParams) usecase.GmailUsecase {
	return &gmailService{
		credentials: params.Credentials,
		oauth:       params.OAuth,
		state:       params.State,
		emailSource: params.EmailSource,
		logger:      params.Logger,
	}
}

func (s *gmailService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// AuthorizationURL returns the Google consent URL carrying a signed state for userID
func (s *gmailService) AuthorizationURL(ctx context.Context, userID string) (string, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return "", err
	}

	state, err := s.state.Sign(id)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign oauth state")
	}

	return s.oauth.AuthCodeURL(state), nil
}

// CompleteAuthorization verifies the state, exchanges the code and stores the bundle
func (s *gmailService) CompleteAuthorization(ctx context.Context, code, state string) (string, error) {
	userID, err := s.state.Verify(state)
	if err != nil {
		s.log(ctx).Warn("Rejected oauth callback state", slog.Any("error", err))

		return "", domainerrors.ErrInvalidOAuthState
	}

	if strings.TrimSpace(code) == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("code is required")
	}

	bundle, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return "", domainerrors.NewUpstreamError(constants.ServiceGoogleOAuth, err)
	}

	if err := s.credentials.Save(ctx, userID.String(), bundle); err != nil {
		return "", err
	}

	return bundle.Email, nil
}

// Status reports whether credentials are stored for userID
func (s *gmailService) Status(ctx context.Context, userID string) (*usecase.GmailStatus, error) {
	if _, err := parseUserID(userID); err != nil {
		return nil, err
	}

	creds, err := s.credentials.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if creds == nil {
		return &usecase.GmailStatus{IsConnected: false}, nil
	}

	return &usecase.GmailStatus{IsConnected: true, Email: creds.Email}, nil
}

// Disconnect removes the stored credentials
func (s *gmailService) Disconnect(ctx context.Context, userID string) error {
	return s.credentials.Delete(ctx, userID)
}

// Labels lists the user's labels and picks out the AudioBrew label
func (s *gmailService) Labels(ctx context.Context, userID string) (*usecase.GmailLabels, error) {
	creds, err := s.requireCredentials(ctx, userID)
	if err != nil {
		return nil, err
	}

	labels, err := s.emailSource.ListLabels(ctx, creds, persistRefreshedToken(s.credentials, s.log(ctx), userID))
	if err != nil {
		return nil, domainerrors.NewUpstreamError(constants.ServiceGmail, err)
	}

	audioBrew := findAudioBrewLabel(labels)

	return &usecase.GmailLabels{
		Labels:            labels,
		AudioBrewLabel:    audioBrew,
		HasAudioBrewLabel: audioBrew != nil,
	}, nil
}

// Emails lists message summaries under labelID, defaulting to the AudioBrew label
func (s *gmailService) Emails(ctx context.Context, userID, labelID string) (*usecase.GmailEmails, error) {
	creds, err := s.requireCredentials(ctx, userID)
	if err != nil {
		return nil, err
	}

	onRefresh := persistRefreshedToken(s.credentials, s.log(ctx), userID)

	if labelID == "" {
		labels, err := s.emailSource.ListLabels(ctx, creds, onRefresh)
		if err != nil {
			return nil, domainerrors.NewUpstreamError(constants.ServiceGmail, err)
		}

		label := findAudioBrewLabel(labels)
		if label == nil {
			return &usecase.GmailEmails{
				Emails:  []entity.EmailSummary{},
				Message: missingLabelMessage,
			}, nil
		}
		labelID = label.ID
	}

	emails, err := s.emailSource.ListLabelEmails(ctx, creds, labelID, usecase.MaxLabelEmails, onRefresh)
	if err != nil {
		return nil, domainerrors.NewUpstreamError(constants.ServiceGmail, err)
	}
	if emails == nil {
		emails = []entity.EmailSummary{}
	}

	total := len(emails)

	return &usecase.GmailEmails{
		LabelID: labelID,
		Emails:  emails,
		Total:   &total,
	}, nil
}

func (s *gmailService) requireCredentials(ctx context.Context, userID string) (*entity.CredentialBundle, error) {
	if _, err := parseUserID(userID); err != nil {
		return nil, err
	}

	creds, err := s.credentials.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if creds == nil {
		return nil, domainerrors.ErrGmailNotConnected
	}

	return creds, nil
}

func findAudioBrewLabel(labels []*entity.GmailLabel) *entity.GmailLabel {
	for _, label := range labels {
		if strings.EqualFold(label.Name, audioBrewLabelName) {
			return label
		}
	}

	return nil
}
