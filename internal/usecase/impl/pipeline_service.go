package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "audiobrew/internal/delivery/context"
	"audiobrew/internal/domain/entity"
	"audiobrew/internal/domain/repository"
	"audiobrew/internal/domain/service"
	"audiobrew/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultTitlePrefix = "AudioBrew Podcast - "
	emailSeparator     = "--------------------"
)

var errCredentialsMissing = errors.New("gmail credentials not found")

type pipelineService struct {
	jobRepo     repository.JobRepository
	podcastRepo repository.PodcastRepository
	credentials usecase.CredentialUsecase
	emailSource service.EmailSource
	scripts     usecase.ScriptUsecase
	audio       usecase.AudioUsecase
	notifier    service.CompletionNotifier
	logger      *slog.Logger
	now         func() time.Time
}

// PipelineServiceParams holds dependencies for PipelineService, injected by Fx.
type PipelineServiceParams struct {
	fx.In

	JobRepo     repository.JobRepository
	PodcastRepo repository.PodcastRepository
	Credentials usecase.CredentialUsecase
	EmailSource service.EmailSource
	Scripts     usecase.ScriptUsecase
	Audio       usecase.AudioUsecase
	Notifier    service.CompletionNotifier
	Logger      *slog.Logger
}

// NewPipelineService creates the podcast generation pipeline
func NewPipelineService(params PipelineServiceParams) usecase.PipelineUsecase {
	return &pipelineService{
		jobRepo:     params.JobRepo,
		podcastRepo: params.PodcastRepo,
		credentials: params.Credentials,
		emailSource: params.EmailSource,
		scripts:     params.Scripts,
		audio:       params.Audio,
		notifier:    params.Notifier,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// Run executes the job and records the outcome on it.
func (s *pipelineService) Run(ctx context.Context, jobID uuid.UUID) error {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return errors.Wrap(err, "failed to load podcast job")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("job_id", job.ID.String()),
		slog.String("user_id", job.UserID.String()),
	)
	ctx = deliverycontext.WithLogger(ctx, logger)

	if job.Status.IsTerminal() {
		logger.Info("Podcast job already finished, skipping", slog.String("status", string(job.Status)))

		return nil
	}

	startedAt := s.now()
	if err := s.jobRepo.UpdateStatus(ctx, job.ID, repository.JobStatusUpdate{
		Status:    entity.JobStatusRunning,
		StartedAt: &startedAt,
	}); err != nil {
		return errors.Wrap(err, "failed to mark podcast job running")
	}

	logger.Info("Podcast generation started", slog.Int("email_count", len(job.EmailIDs)))

	podcast, runErr := s.execute(ctx, logger, job)

	finishedAt := s.now()
	update := repository.JobStatusUpdate{
		Status:     entity.JobStatusSucceeded,
		FinishedAt: &finishedAt,
	}
	if runErr != nil {
		update.Status = entity.JobStatusFailed
		update.Error = runErr.Error()
		logger.Error("Podcast generation failed",
			slog.Any("error", runErr),
			slog.Duration("elapsed", finishedAt.Sub(startedAt)),
		)
	} else {
		logger.Info("Podcast generation completed",
			slog.String("podcast_id", podcast.ID.String()),
			slog.Int("duration_sec", podcast.Duration),
			slog.Duration("elapsed", finishedAt.Sub(startedAt)),
		)
	}

	if err := s.jobRepo.UpdateStatus(ctx, job.ID, update); err != nil {
		return errors.Wrap(err, "failed to record podcast job outcome")
	}

	job.Status = update.Status
	job.Error = update.Error
	job.StartedAt = &startedAt
	job.FinishedAt = &finishedAt
	if err := s.notifier.NotifyJobFinished(ctx, job); err != nil {
		logger.Warn("Failed to send completion notification", slog.Any("error", err))
	}

	return nil
}

func (s *pipelineService) execute(ctx context.Context, logger *slog.Logger, job *entity.PodcastJob) (podcast *entity.Podcast, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("pipeline panic: %v", r)
		}
	}()

	userID := job.UserID.String()

	creds, err := s.credentials.Get(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch gmail credentials")
	}
	if creds == nil {
		return nil, errCredentialsMissing
	}

	summaries := s.emailSource.FetchSummaries(ctx, creds, job.EmailIDs, persistRefreshedToken(s.credentials, logger, userID))
	if len(summaries) == 0 {
		logger.Warn("No email content fetched, generating from empty input")
	}

	script, err := s.scripts.Synthesize(ctx, FlattenSummaries(summaries))
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(job.Title)
	if title == "" {
		title = DefaultPodcastTitle(s.now())
	}

	audioURL, err := s.audio.Synthesize(ctx, script.Script, job.UserID)
	if err != nil {
		audioURL = PlaceholderAudioURL()
		logger.Error("Audio generation failed, using placeholder URL",
			slog.Any("error", err),
			slog.String("audio_url", audioURL),
		)
	}

	podcast = &entity.Podcast{
		ID:             job.ID,
		UserID:         job.UserID,
		Title:          title,
		ScriptMarkdown: script.Script,
		AudioURL:       audioURL,
		Duration:       script.ApproxDurationSec,
		SourceEmails:   len(summaries),
		CreatedAt:      s.now(),
	}
	if err := s.podcastRepo.Create(ctx, podcast); err != nil {
		return nil, errors.Wrap(err, "failed to save podcast")
	}

	return podcast, nil
}

// FlattenSummaries renders email summaries as one prompt input, in order.
func FlattenSummaries(summaries []entity.EmailSummary) string {
	var b strings.Builder
	for _, summary := range summaries {
		fmt.Fprintf(&b, "Email from %s on %s\nSubject: %s\n\n%s\n\n%s\n\n",
			senderName(summary.From), summary.Date, summary.Subject, summary.Snippet, emailSeparator)
	}

	return b.String()
}

// senderName drops the address part of "Name <addr>".
func senderName(from string) string {
	name, _, _ := strings.Cut(from, "<")

	return strings.TrimSpace(name)
}

// DefaultPodcastTitle returns the title used when the request has none.
func DefaultPodcastTitle(now time.Time) string {
	return defaultTitlePrefix + now.Format("January 02, 2006")
}
