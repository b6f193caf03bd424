package impl

import (
	"context"
	"log/slog"

	deliverycontext "audiobrew/internal/delivery/context"
	"audiobrew/internal/domain/entity"
	domainerrors "audiobrew/internal/domain/errors"
	"audiobrew/internal/domain/repository"
	"audiobrew/internal/domain/service"
	"audiobrew/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type credentialService struct {
	credentialRepo repository.CredentialRepository
	sealer         service.TokenSealer
	logger         *slog.Logger
}

// CredentialServiceParams holds dependencies for CredentialService, injected by Fx.
type CredentialServiceParams struct {
	fx.In

	CredentialRepo repository.CredentialRepository
	Sealer         service.TokenSealer
	Logger         *slog.Logger
}

// NewCredentialService creates a new credential service instance
func NewCredentialService(params CredentialServiceParams) usecase.CredentialUsecase {
	return &credentialService{
		credentialRepo: params.CredentialRepo,
		sealer:         params.Sealer,
		logger:         params.Logger,
	}
}

func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get returns nil without calling the store when userID is not a UUID.
func (srv *credentialService) Get(ctx context.Context, userID string) (*entity.CredentialBundle, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		srv.log(ctx).Debug("Skipping credential lookup for malformed user id", slog.String("user_id", userID))

		return nil, nil //nolint:nilnil // absent credentials are not an error
	}

	bundle, err := srv.credentialRepo.FindByUser(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, nil //nolint:nilnil // absent credentials are not an error
		}
		if errors.Is(err, repository.ErrStoreNotConfigured) {
			return nil, domainerrors.ErrStoreNotConfigured
		}

		return nil, storeError(err, "failed to find credentials")
	}

	if err := srv.openSecrets(bundle); err != nil {
		return nil, err
	}
	if bundle.TokenURI == "" {
		bundle.TokenURI = entity.DefaultTokenURI
	}

	return bundle, nil
}

// Save validates the id and the bundle before any store call, then upserts.
func (srv *credentialService) Save(ctx context.Context, userID string, bundle *entity.CredentialBundle) error {
	id, err := parseUserID(userID)
	if err != nil {
		return err
	}
	if !bundle.Validate() {
		return domainerrors.ErrInvalidCredentialBundle
	}

	sealed := *bundle
	sealed.Scopes = append([]string(nil), bundle.Scopes...)
	if sealed.TokenURI == "" {
		sealed.TokenURI = entity.DefaultTokenURI
	}
	if err := srv.sealSecrets(&sealed); err != nil {
		return err
	}

	if err := srv.credentialRepo.Upsert(ctx, id, &sealed); err != nil {
		if errors.Is(err, repository.ErrStoreNotConfigured) {
			return domainerrors.ErrStoreNotConfigured
		}

		return storeError(err, "failed to save credentials")
	}

	srv.log(ctx).Info("Gmail credentials saved",
		slog.String("user_id", id.String()),
		slog.String("email", bundle.Email),
	)

	return nil
}

// Delete removes the bundle unconditionally.
func (srv *credentialService) Delete(ctx context.Context, userID string) error {
	id, err := parseUserID(userID)
	if err != nil {
		return err
	}

	if err := srv.credentialRepo.DeleteByUser(ctx, id); err != nil {
		if errors.Is(err, repository.ErrStoreNotConfigured) {
			return domainerrors.ErrStoreNotConfigured
		}

		return storeError(err, "failed to delete credentials")
	}

	return nil
}

func (srv *credentialService) sealSecrets(bundle *entity.CredentialBundle) error {
	for _, field := range []*string{&bundle.Token, &bundle.RefreshToken, &bundle.ClientSecret} {
		sealed, err := srv.sealer.Seal(*field)
		if err != nil {
			return errors.Wrap(err, "failed to seal credential")
		}
		*field = sealed
	}

	return nil
}

func (srv *credentialService) openSecrets(bundle *entity.CredentialBundle) error {
	for _, field := range []*string{&bundle.Token, &bundle.RefreshToken, &bundle.ClientSecret} {
		opened, err := srv.sealer.Open(*field)
		if err != nil {
			return errors.Wrap(err, "failed to open credential")
		}
		*field = opened
	}

	return nil
}
