package handler

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "audiobrew/internal/delivery/context"
	"audiobrew/internal/domain/service"
	"audiobrew/internal/usecase"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TaskHandler runs podcast jobs delivered through the Redis task queue
type TaskHandler struct {
	logger   *slog.Logger
	pipeline usecase.PipelineUsecase
}

// TaskHandlerParams holds dependencies for the TaskHandler
type TaskHandlerParams struct {
	fx.In

	Logger   *slog.Logger
	Pipeline usecase.PipelineUsecase
}

// NewTaskHandler creates a new asynq task handler
func NewTaskHandler(params TaskHandlerParams) *TaskHandler {
	return &TaskHandler{
		logger:   params.Logger,
		pipeline: params.Pipeline,
	}
}

// HandlePodcastGenerate handles podcast:generate tasks
func (h *TaskHandler) HandlePodcastGenerate(ctx context.Context, task *asynq.Task) error {
	var event service.PodcastJobEvent
	if err := json.Unmarshal(task.Payload(), &event); err != nil {
		return errors.Wrapf(asynq.SkipRetry, "invalid podcast task payload: %v", err)
	}

	jobID, err := uuid.Parse(event.JobID)
	if err != nil {
		return errors.Wrapf(asynq.SkipRetry, "invalid job id %q", event.JobID)
	}

	ctx = deliverycontext.NewRequestContext(ctx, h.logger, extractRequestID(ctx, event.RequestID))
	reqLogger := deliverycontext.GetLogger(ctx)

	reqLogger.Info("[Worker] Processing podcast task", slog.String("job_id", event.JobID))

	if err := h.pipeline.Run(ctx, jobID); err != nil {
		return errors.Wrap(err, "podcast task failed")
	}

	return nil
}
