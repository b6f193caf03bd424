package notification

import (
	"context"
	"fmt"
	"log/slog"

	"audiobrew/config"
	"audiobrew/internal/domain/entity"
	"audiobrew/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// TopicPrefix is followed by the user id. Clients subscribe to their own topic.
const TopicPrefix = "podcasts-"

// messageSender is implemented by *messaging.Client
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseNotifier struct {
	client messageSender
	logger *slog.Logger
}

// noopNotifier is used when Firebase is not configured
type noopNotifier struct{}

func (noopNotifier) NotifyJobFinished(context.Context, *entity.PodcastJob) error {
	return nil
}

type NotifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewCompletionNotifier creates a Firebase topic notifier, or a no-op one when
// Firebase is not configured
func NewCompletionNotifier(params NotifierParams) (service.CompletionNotifier, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, completion notifications disabled")

		return noopNotifier{}, nil
	}

	var firebaseConfig *firebase.Config
	if cfg.ProjectID != "" {
		firebaseConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(params.Ctx, firebaseConfig, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(params.Ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return newFirebaseNotifier(client, params.Logger), nil
}

func newFirebaseNotifier(client messageSender, logger *slog.Logger) *firebaseNotifier {
	return &firebaseNotifier{
		client: client,
		logger: logger,
	}
}

// NotifyJobFinished publishes the job outcome to the owner's topic
func (s *firebaseNotifier) NotifyJobFinished(ctx context.Context, job *entity.PodcastJob) error {
	if !job.Status.IsTerminal() {
		return nil
	}

	message := &messaging.Message{
		Topic:        TopicPrefix + job.UserID.String(),
		Notification: buildNotification(job),
		Data: map[string]string{
			"job_id": job.ID.String(),
			"status": string(job.Status),
		},
	}
	if job.Status == entity.JobStatusSucceeded {
		message.Data["podcast_id"] = job.ID.String()
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	s.logger.DebugContext(ctx, "Completion notification sent",
		slog.String("job_id", job.ID.String()),
		slog.String("message_id", messageID),
	)

	return nil
}

func buildNotification(job *entity.PodcastJob) *messaging.Notification {
	if job.Status == entity.JobStatusSucceeded {
		body := "Your podcast is ready to play."
		if job.Title != "" {
			body = fmt.Sprintf("%q is ready to play.", job.Title)
		}

		return &messaging.Notification{Title: "Podcast ready", Body: body}
	}

	return &messaging.Notification{
		Title: "Podcast generation failed",
		Body:  "We could not create your podcast. Please try again.",
	}
}
