package notification

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"audiobrew/config"
	"audiobrew/internal/domain/entity"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, message)

	return "projects/audiobrew/messages/1", nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestJob(status entity.JobStatus) *entity.PodcastJob {
	return &entity.PodcastJob{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Title:  "Morning Digest",
		Status: status,
		Error:  "script generation failed",
	}
}

func TestFirebaseNotifier_Succeeded(t *testing.T) {
	sender := &fakeSender{}
	notifier := newFirebaseNotifier(sender, newTestLogger())
	job := newTestJob(entity.JobStatusSucceeded)

	require.NoError(t, notifier.NotifyJobFinished(context.Background(), job))
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, "podcasts-"+job.UserID.String(), msg.Topic)
	assert.Equal(t, "Podcast ready", msg.Notification.Title)
	assert.Contains(t, msg.Notification.Body, "Morning Digest")
	assert.Equal(t, job.ID.String(), msg.Data["podcast_id"])
	assert.Equal(t, "succeeded", msg.Data["status"])
}

func TestFirebaseNotifier_FailedDoesNotLeakError(t *testing.T) {
	sender := &fakeSender{}
	notifier := newFirebaseNotifier(sender, newTestLogger())

	require.NoError(t, notifier.NotifyJobFinished(context.Background(), newTestJob(entity.JobStatusFailed)))
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, "Podcast generation failed", msg.Notification.Title)
	assert.NotContains(t, msg.Notification.Body, "script generation failed")
	_, hasPodcast := msg.Data["podcast_id"]
	assert.False(t, hasPodcast)
}

func TestFirebaseNotifier_SkipsNonTerminal(t *testing.T) {
	sender := &fakeSender{}
	notifier := newFirebaseNotifier(sender, newTestLogger())

	require.NoError(t, notifier.NotifyJobFinished(context.Background(), newTestJob(entity.JobStatusRunning)))
	assert.Empty(t, sender.sent)
}

func TestFirebaseNotifier_SendError(t *testing.T) {
	notifier := newFirebaseNotifier(&fakeSender{err: errors.New("quota exceeded")}, newTestLogger())

	err := notifier.NotifyJobFinished(context.Background(), newTestJob(entity.JobStatusSucceeded))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestNewCompletionNotifier_Unconfigured(t *testing.T) {
	notifier, err := NewCompletionNotifier(NotifierParams{
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: newTestLogger(),
	})

	require.NoError(t, err)
	assert.IsType(t, noopNotifier{}, notifier)
	assert.NoError(t, notifier.NotifyJobFinished(context.Background(), newTestJob(entity.JobStatusSucceeded)))
}
