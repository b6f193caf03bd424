package impl

import (
	"context"
	"log/slog"

	deliverycontext "audiobrew/internal/delivery/context"
	"audiobrew/internal/domain/constants"
	domainerrors "audiobrew/internal/domain/errors"
	"audiobrew/internal/domain/repository"
	"audiobrew/internal/domain/service"
	"audiobrew/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type accountService struct {
	txManager      repository.TransactionManager
	podcastRepo    repository.PodcastRepository
	credentialRepo repository.CredentialRepository
	store          service.ArtifactStore
	directory      service.AccountDirectory
	logger         *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	PodcastRepo    repository.PodcastRepository
	CredentialRepo repository.CredentialRepository
	Store          service.ArtifactStore
	Directory      service.AccountDirectory
	Logger         *slog.Logger
}

// NewAccountService creates a new account service instance
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:      params.TxManager,
		podcastRepo:    params.PodcastRepo,
		credentialRepo: params.CredentialRepo,
		store:          params.Store,
		directory:      params.Directory,
		logger:         params.Logger,
	}
}

// DeleteAccount removes audio files, podcasts, jobs and credentials best effort,
// then deletes the auth user. Only the last step can fail the call.
func (s *accountService) DeleteAccount(ctx context.Context, userID string) error {
	id, err := parseUserID(userID)
	if err != nil {
		return err
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(slog.String("user_id", id.String()))

	s.deleteAudioFiles(ctx, logger, id)

	if err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewPodcastRepository().DeleteByUser(ctx, id); err != nil {
			return err
		}

		return factory.NewJobRepository().DeleteByUser(ctx, id)
	}); err != nil {
		logger.Warn("Failed to delete podcasts", slog.Any("error", err))
	}

	if err := s.credentialRepo.DeleteByUser(ctx, id); err != nil {
		logger.Warn("Failed to delete Gmail credentials", slog.Any("error", err))
	}

	if err := s.directory.DeleteUser(ctx, id); err != nil {
		return domainerrors.NewUpstreamError(constants.ServiceSupabase, err)
	}

	logger.Info("Account deleted")

	return nil
}

func (s *accountService) deleteAudioFiles(ctx context.Context, logger *slog.Logger, userID uuid.UUID) {
	podcasts, err := s.podcastRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Warn("Failed to list podcasts for audio cleanup", slog.Any("error", err))

		return
	}

	for _, podcast := range podcasts {
		deleteAudioBlob(ctx, s.store, logger, podcast)
	}
}
