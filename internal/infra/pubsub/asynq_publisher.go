package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"audiobrew/internal/domain/constants"
	"audiobrew/internal/domain/service"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
)

// TaskEnqueuer is implemented by *asynq.Client
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// asynqPublisher implements JobDispatcher by enqueueing Redis tasks
type asynqPublisher struct {
	client TaskEnqueuer
	queue  string
	logger *slog.Logger
}

// NewAsynqPublisher creates a dispatcher that enqueues podcast:generate tasks
func NewAsynqPublisher(client TaskEnqueuer, queue string, logger *slog.Logger) service.JobDispatcher {
	return &asynqPublisher{
		client: client,
		queue:  queue,
		logger: logger,
	}
}

// NewPodcastGenerateTask builds the task for event. Tasks are never retried.
func NewPodcastGenerateTask(event *service.PodcastJobEvent) (*asynq.Task, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return asynq.NewTask(constants.TaskTypePodcastGenerate, payload, asynq.MaxRetry(0)), nil
}

func (p *asynqPublisher) Dispatch(ctx context.Context, event *service.PodcastJobEvent) error {
	task, err := NewPodcastGenerateTask(event)
	if err != nil {
		return err
	}

	var opts []asynq.Option
	if p.queue != "" {
		opts = append(opts, asynq.Queue(p.queue))
	}

	info, err := p.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return errors.Wrap(err, "failed to enqueue podcast task")
	}

	p.logger.Info("[Asynq] Job enqueued",
		slog.String("job_id", event.JobID),
		slog.String("task_id", info.ID),
		slog.String("queue", info.Queue),
	)

	return nil
}

func (p *asynqPublisher) Close() error {
	return errors.WithStack(p.client.Close())
}
