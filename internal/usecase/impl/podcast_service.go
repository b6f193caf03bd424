package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "audiobrew/internal/delivery/context"
	"audiobrew/internal/domain/constants"
	"audiobrew/internal/domain/entity"
	domainerrors "audiobrew/internal/domain/errors"
	"audiobrew/internal/domain/repository"
	"audiobrew/internal/domain/service"
	"audiobrew/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type podcastService struct {
	jobRepo     repository.JobRepository
	podcastRepo repository.PodcastRepository
	dispatcher  service.JobDispatcher
	store       service.ArtifactStore
	feed        service.FeedRenderer
	qrCode      service.QRCodeService
	logger      *slog.Logger
	now         func() time.Time
}

// PodcastServiceParams holds dependencies for PodcastService, injected by Fx.
type PodcastServiceParams struct {
	fx.In

	JobRepo     repository.JobRepository
	PodcastRepo repository.PodcastRepository
	Dispatcher  service.JobDispatcher
	Store       service.ArtifactStore
	Feed        service.FeedRenderer
	QRCode      service.QRCodeService
	Logger      *slog.Logger
}

// NewPodcastService creates a new podcast service instance
func NewPodcastService(params PodcastServiceParams) usecase.PodcastUsecase {
	return &podcastService{
		jobRepo:     params.JobRepo,
		podcastRepo: params.PodcastRepo,
		dispatcher:  params.Dispatcher,
		store:       params.Store,
		feed:        params.Feed,
		qrCode:      params.QRCode,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (s *podcastService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Generate validates the request before touching any store, persists a queued job and dispatches it.
func (s *podcastService) Generate(ctx context.Context, req *usecase.GenerateRequest) (*entity.PodcastJob, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}

	emailIDs := make([]string, 0, len(req.EmailIDs))
	for _, id := range req.EmailIDs {
		if id = strings.TrimSpace(id); id != "" {
			emailIDs = append(emailIDs, id)
		}
	}
	if len(emailIDs) == 0 {
		return nil, domainerrors.ErrEmailIDsRequired
	}

	now := s.now()
	job := &entity.PodcastJob{
		ID:        uuid.New(),
		UserID:    userID,
		EmailIDs:  emailIDs,
		Title:     strings.TrimSpace(req.Title),
		Status:    entity.JobStatusQueued,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, storeError(err, "failed to create podcast job")
	}

	event := &service.PodcastJobEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		JobID:     job.ID.String(),
		UserID:    userID.String(),
	}
	if err := s.dispatcher.Dispatch(ctx, event); err != nil {
		finishedAt := s.now()
		if updateErr := s.jobRepo.UpdateStatus(ctx, job.ID, repository.JobStatusUpdate{
			Status:     entity.JobStatusFailed,
			Error:      err.Error(),
			FinishedAt: &finishedAt,
		}); updateErr != nil {
			s.log(ctx).Error("Failed to mark undispatched job failed",
				slog.String("job_id", job.ID.String()),
				slog.Any("error", updateErr),
			)
		}

		return nil, domainerrors.NewUpstreamError("job dispatcher", err)
	}

	s.log(ctx).Info("Podcast job dispatched",
		slog.String("job_id", job.ID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("email_count", len(emailIDs)),
	)

	return job, nil
}

// List returns the user's podcasts, newest first
func (s *podcastService) List(ctx context.Context, userID string) ([]*entity.Podcast, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	podcasts, err := s.podcastRepo.ListByUser(ctx, id)
	if err != nil {
		return nil, storeError(err, "failed to list podcasts")
	}

	return podcasts, nil
}

// Get returns one podcast owned by userID
func (s *podcastService) Get(ctx context.Context, userID, podcastID string) (*entity.Podcast, error) {
	uid, pid, err := parseOwnedID(userID, podcastID)
	if err != nil {
		return nil, err
	}

	return s.findOwned(ctx, uid, pid)
}

// Delete removes the podcast row after a best-effort delete of its audio file.
func (s *podcastService) Delete(ctx context.Context, userID, podcastID string) error {
	uid, pid, err := parseOwnedID(userID, podcastID)
	if err != nil {
		return err
	}

	podcast, err := s.findOwned(ctx, uid, pid)
	if err != nil {
		return err
	}

	s.deleteAudio(ctx, podcast)

	if err := s.podcastRepo.Delete(ctx, uid, pid); err != nil {
		if errors.Is(err, repository.ErrPodcastNotFound) {
			return domainerrors.ErrPodcastNotFound
		}

		return storeError(err, "failed to delete podcast")
	}

	return nil
}

// GetJob returns a generation job owned by userID
func (s *podcastService) GetJob(ctx context.Context, userID, jobID string) (*entity.PodcastJob, error) {
	uid, jid, err := parseOwnedID(userID, jobID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobRepo.FindByIDForUser(ctx, uid, jid)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, domainerrors.ErrJobNotFound
		}

		return nil, storeError(err, "failed to find podcast job")
	}

	return job, nil
}

// Feed renders the user's podcasts as RSS
func (s *podcastService) Feed(ctx context.Context, userID string) (string, error) {
	podcasts, err := s.List(ctx, userID)
	if err != nil {
		return "", err
	}

	id, _ := uuid.Parse(userID)
	feed, err := s.feed.RenderPodcastFeed(id, podcasts)
	if err != nil {
		return "", errors.Wrap(err, "failed to render podcast feed")
	}

	return feed, nil
}

// ShareQRCode returns a PNG QR code of the podcast's audio URL
func (s *podcastService) ShareQRCode(ctx context.Context, userID, podcastID string) ([]byte, error) {
	podcast, err := s.Get(ctx, userID, podcastID)
	if err != nil {
		return nil, err
	}
	if podcast.AudioURL == "" {
		return nil, domainerrors.ErrAudioNotAvailable
	}

	png, err := s.qrCode.GenerateQR(podcast.AudioURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}

func (s *podcastService) findOwned(ctx context.Context, userID, podcastID uuid.UUID) (*entity.Podcast, error) {
	podcast, err := s.podcastRepo.FindByIDForUser(ctx, userID, podcastID)
	if err != nil {
		if errors.Is(err, repository.ErrPodcastNotFound) {
			return nil, domainerrors.ErrPodcastNotFound
		}

		return nil, storeError(err, "failed to find podcast")
	}

	return podcast, nil
}

func (s *podcastService) deleteAudio(ctx context.Context, podcast *entity.Podcast) {
	deleteAudioBlob(ctx, s.store, s.log(ctx), podcast)
}

// deleteAudioBlob removes the podcast's audio file when it lives in the store. Failures are logged only.
func deleteAudioBlob(ctx context.Context, store service.ArtifactStore, logger *slog.Logger, podcast *entity.Podcast) {
	path, ok := store.PathFromURL(podcast.AudioURL)
	if !ok {
		return
	}

	if err := store.Delete(ctx, path); err != nil {
		logger.Warn("Failed to delete podcast audio",
			slog.String("podcast_id", podcast.ID.String()),
			slog.String("path", path),
			slog.String("service", constants.ServiceStorage),
			slog.Any("error", err),
		)
	}
}

func parseOwnedID(userID, resourceID string) (uuid.UUID, uuid.UUID, error) {
	uid, err := parseUserID(userID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	rid, err := parsePodcastID(resourceID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return uid, rid, nil
}
