package impl

import (
	"context"
	"regexp"
	"testing"
	"time"

	"audiobrew/internal/domain/entity"
	"audiobrew/internal/domain/repository"
	mockRepo "audiobrew/internal/mocks/repository"
	mockSvc "audiobrew/internal/mocks/service"
	mockUsecase "audiobrew/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pipelineMocks struct {
	jobRepo     *mockRepo.MockJobRepository
	podcastRepo *mockRepo.MockPodcastRepository
	credentials *mockUsecase.MockCredentialUsecase
	emailSource *mockSvc.MockEmailSource
	scripts     *mockUsecase.MockScriptUsecase
	audio       *mockUsecase.MockAudioUsecase
	notifier    *mockSvc.MockCompletionNotifier
}

var pipelineNow = time.Date(2025, time.March, 7, 9, 30, 0, 0, time.UTC)

func createTestPipelineService(t *testing.T) (*pipelineService, *pipelineMocks) {
	m := &pipelineMocks{
		jobRepo:     mockRepo.NewMockJobRepository(t),
		podcastRepo: mockRepo.NewMockPodcastRepository(t),
		credentials: mockUsecase.NewMockCredentialUsecase(t),
		emailSource: mockSvc.NewMockEmailSource(t),
		scripts:     mockUsecase.NewMockScriptUsecase(t),
		audio:       mockUsecase.NewMockAudioUsecase(t),
		notifier:    mockSvc.NewMockCompletionNotifier(t),
	}

	svc := NewPipelineService(PipelineServiceParams{
		JobRepo:     m.jobRepo,
		PodcastRepo: m.podcastRepo,
		Credentials: m.credentials,
		EmailSource: m.emailSource,
		Scripts:     m.scripts,
		Audio:       m.audio,
		Notifier:    m.notifier,
		Logger:      newTestLogger(),
	}).(*pipelineService)
	svc.now = func() time.Time { return pipelineNow }

	return svc, m
}

func queuedJob(title string) *entity.PodcastJob {
	return &entity.PodcastJob{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		EmailIDs: []string{"m1", "m2"},
		Title:    title,
		Status:   entity.JobStatusQueued,
	}
}

func statusIs(status entity.JobStatus) any {
	return mock.MatchedBy(func(u repository.JobStatusUpdate) bool { return u.Status == status })
}

func TestFlattenSummaries(t *testing.T) {
	summaries := []entity.EmailSummary{
		{Subject: "Weekly Digest", From: "A <a@x.com>", Date: "Mon", Snippet: "Top story..."},
	}

	got := FlattenSummaries(summaries)

	assert.Equal(t, "Email from A on Mon\nSubject: Weekly Digest\n\nTop story...\n\n--------------------\n\n", got)
}

func TestFlattenSummaries_KeepsOrderAndBareSenders(t *testing.T) {
	summaries := []entity.EmailSummary{
		{Subject: "One", From: "first@x.com", Date: "Mon", Snippet: "1"},
		{Subject: "Two", From: "  Second Sender   <s@x.com>", Date: "Tue", Snippet: "2"},
	}

	got := FlattenSummaries(summaries)

	assert.Equal(t,
		"Email from first@x.com on Mon\nSubject: One\n\n1\n\n--------------------\n\n"+
			"Email from Second Sender on Tue\nSubject: Two\n\n2\n\n--------------------\n\n",
		got,
	)
	assert.Empty(t, FlattenSummaries(nil))
}

func TestDefaultPodcastTitle(t *testing.T) {
	assert.Equal(t, "AudioBrew Podcast - March 07, 2025", DefaultPodcastTitle(pipelineNow))
}

func TestPipelineService_Run_Success(t *testing.T) {
	svc, m := createTestPipelineService(t)

	ctx := context.Background()
	job := queuedJob("")
	creds := validBundle()
	summaries := []entity.EmailSummary{
		{ID: "m1", Subject: "Weekly Digest", From: "A <a@x.com>", Date: "Mon", Snippet: "Top story..."},
		{ID: "m2", Subject: "Markets", From: "B <b@x.com>", Date: "Tue", Snippet: "Stocks rose."},
	}
	audioURL := "https://proj.supabase.co/storage/v1/object/public/podcasts/podcasts/u/a.mp3"

	m.jobRepo.EXPECT().FindByID(mock.Anything, job.ID).Return(job, nil)
	m.jobRepo.EXPECT().UpdateStatus(mock.Anything, job.ID, statusIs(entity.JobStatusRunning)).Return(nil).Once()
	m.credentials.EXPECT().Get(mock.Anything, job.UserID.String()).Return(creds, nil)
	m.emailSource.EXPECT().FetchSummaries(mock.Anything, creds, job.EmailIDs, mock.Anything).Return(summaries)
	m.scripts.EXPECT().Synthesize(mock.Anything, FlattenSummaries(summaries)).Return(&entity.ScriptResult{
		Script:            "Welcome to AudioBrew.",
		ApproxDurationSec: 1,
		WordCount:         3,
	}, nil)
	m.audio.EXPECT().Synthesize(mock.Anything, "Welcome to AudioBrew.", job.UserID).Return(audioURL, nil)
	m.podcastRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(p *entity.Podcast) bool {
			return p.ID == job.ID &&
				p.UserID == job.UserID &&
				p.Title == "AudioBrew Podcast - March 07, 2025" &&
				p.AudioURL == audioURL &&
				p.ScriptMarkdown == "Welcome to AudioBrew." &&
				p.Duration == 1 &&
				p.SourceEmails == 2
		})).
		Return(nil)
	m.jobRepo.EXPECT().UpdateStatus(mock.Anything, job.ID, statusIs(entity.JobStatusSucceeded)).Return(nil).Once()
	m.notifier.EXPECT().
		NotifyJobFinished(mock.Anything, mock.MatchedBy(func(j *entity.PodcastJob) bool {
			return j.ID == job.ID && j.Status == entity.JobStatusSucceeded
		})).
		Return(nil)

	require.NoError(t, svc.Run(ctx, job.ID))
}

func TestPipelineService_Run_MissingCredentials(t *testing.T) {
	svc, m := createTestPipelineService(t)

	ctx := context.Background()
	job := queuedJob("My show")

	m.jobRepo.EXPECT().FindByID(mock.Anything, job.ID).Return(job, nil)
	m.jobRepo.EXPECT().UpdateStatus(mock.Anything, job.ID, statusIs(entity.JobStatusRunning)).Return(nil).Once()
	m.credentials.EXPECT().Get(mock.Anything, job.UserID.String()).Return(nil, nil)
	m.jobRepo.EXPECT().
		UpdateStatus(mock.Anything, job.ID, mock.MatchedBy(func(u repository.JobStatusUpdate) bool {
			return u.Status == entity.JobStatusFailed && u.Error == "gmail credentials not found" && u.FinishedAt != nil
		})).
		Return(nil).Once()
	m.notifier.EXPECT().NotifyJobFinished(mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, svc.Run(ctx, job.ID))
}

func TestPipelineService_Run_AudioFailureUsesPlaceholder(t *testing.T) {
	svc, m := createTestPipelineService(t)

	ctx := context.Background()
	job := queuedJob("Custom title")
	placeholder := regexp.MustCompile(`^https://example\.com/audio/[0-9a-f-]{36}\.mp3$`)

	m.jobRepo.EXPECT().FindByID(mock.Anything, job.ID).Return(job, nil)
	m.jobRepo.EXPECT().UpdateStatus(mock.Anything, job.ID, statusIs(entity.JobStatusRunning)).Return(nil).Once()
	m.credentials.EXPECT().Get(mock.Anything, mock.Anything).Return(validBundle(), nil)
	m.emailSource.EXPECT().FetchSummaries(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]entity.EmailSummary{{ID: "m1", Subject: "S", From: "F", Date: "D", Snippet: "x"}})
	m.scripts.EXPECT().Synthesize(mock.Anything, mock.Anything).Return(&entity.ScriptResult{Script: "Hi."}, nil)
	m.audio.EXPECT().Synthesize(mock.Anything, "Hi.", job.UserID).Return("", errors.New("upload: dial tcp: network is unreachable"))
	m.podcastRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(p *entity.Podcast) bool {
			return placeholder.MatchString(p.AudioURL) && p.Title == "Custom title" && p.SourceEmails == 1
		})).
		Return(nil)
	m.jobRepo.EXPECT().UpdateStatus(mock.Anything, job.ID, statusIs(entity.JobStatusSucceeded)).Return(nil).Once()
	m.notifier.EXPECT().NotifyJobFinished(mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, svc.Run(ctx, job.ID))
}

func TestPipelineService_Run_ScriptFailureRecordedNotReturned(t *testing.T) {
	svc, m := createTestPipelineService(t)

	ctx := context.Background()
	job := queuedJob("")

	m.jobRepo.EXPECT().FindByID(mock.Anything, job.ID).Return(job, nil)
	m.jobRepo.EXPECT().UpdateStatus(mock.Anything, job.ID, statusIs(entity.JobStatusRunning)).Return(nil).Once()
	m.credentials.EXPECT().Get(mock.Anything, mock.Anything).Return(validBundle(), nil)
	m.emailSource.EXPECT().FetchSummaries(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]entity.EmailSummary{})
	m.scripts.EXPECT().Synthesize(mock.Anything, "").Return(nil, errors.New("openai: 500"))
	m.jobRepo.EXPECT().
		UpdateStatus(mock.Anything, job.ID, mock.MatchedBy(func(u repository.JobStatusUpdate) bool {
			return u.Status == entity.JobStatusFailed && u.Error == "openai: 500"
		})).
		Return(nil).Once()
	m.notifier.EXPECT().NotifyJobFinished(mock.Anything, mock.Anything).Return(errors.New("firebase down"))

	require.NoError(t, svc.Run(ctx, job.ID))
}

func TestPipelineService_Run_PersistFailureRecorded(t *testing.T) {
	svc, m := createTestPipelineService(t)

	ctx := context.Background()
	job := queuedJob("")

	m.jobRepo.EXPECT().FindByID(mock.Anything, job.ID).Return(job, nil)
	m.jobRepo.EXPECT().UpdateStatus(mock.Anything, job.ID, statusIs(entity.JobStatusRunning)).Return(nil).Once()
	m.credentials.EXPECT().Get(mock.Anything, mock.Anything).Return(validBundle(), nil)
	m.emailSource.EXPECT().FetchSummaries(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.scripts.EXPECT().Synthesize(mock.Anything, mock.Anything).Return(&entity.ScriptResult{Script: "Hi."}, nil)
	m.audio.EXPECT().Synthesize(mock.Anything, mock.Anything, mock.Anything).Return("https://cdn/x.mp3", nil)
	m.podcastRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("insert failed"))
	m.jobRepo.EXPECT().UpdateStatus(mock.Anything, job.ID, statusIs(entity.JobStatusFailed)).Return(nil).Once()
	m.notifier.EXPECT().NotifyJobFinished(mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, svc.Run(ctx, job.ID))
}

func TestPipelineService_Run_JobNotFound(t *testing.T) {
	svc, m := createTestPipelineService(t)

	ctx := context.Background()
	jobID := uuid.New()
	m.jobRepo.EXPECT().FindByID(mock.Anything, jobID).Return(nil, repository.ErrJobNotFound)

	err := svc.Run(ctx, jobID)

	assert.True(t, errors.Is(err, repository.ErrJobNotFound))
}

func TestPipelineService_Run_SkipsFinishedJob(t *testing.T) {
	svc, m := createTestPipelineService(t)

	ctx := context.Background()
	job := queuedJob("")
	job.Status = entity.JobStatusSucceeded
	m.jobRepo.EXPECT().FindByID(mock.Anything, job.ID).Return(job, nil)

	require.NoError(t, svc.Run(ctx, job.ID))
}
