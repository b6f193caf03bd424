package pubsub

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "audiobrew/internal/delivery/context"
	"audiobrew/internal/domain/service"
	"audiobrew/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// inlineDispatcher runs jobs in-process on a goroutine
type inlineDispatcher struct {
	pipeline usecase.PipelineUsecase
	logger   *slog.Logger
	wg       sync.WaitGroup
}

// NewInlineDispatcher creates a dispatcher that runs the pipeline in the API process
func NewInlineDispatcher(pipeline usecase.PipelineUsecase, logger *slog.Logger) service.JobDispatcher {
	return &inlineDispatcher{
		pipeline: pipeline,
		logger:   logger,
	}
}

// Dispatch starts the job and returns immediately. The job keeps the
// request's values but outlives its cancellation.
func (d *inlineDispatcher) Dispatch(ctx context.Context, event *service.PodcastJobEvent) error {
	jobID, err := uuid.Parse(event.JobID)
	if err != nil {
		return errors.Wrap(err, "invalid job id")
	}

	jobCtx := deliverycontext.Detach(ctx)
	if deliverycontext.GetLogger(jobCtx) == nil {
		jobCtx = deliverycontext.NewRequestContext(jobCtx, d.logger, event.RequestID)
	}
	logger := deliverycontext.GetLogger(jobCtx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				logger.Error("[InlineDispatcher] Job panicked",
					slog.String("job_id", event.JobID),
					slog.Any("panic", r),
				)
			}
		}()

		if err := d.pipeline.Run(jobCtx, jobID); err != nil {
			logger.Error("[InlineDispatcher] Job failed",
				slog.String("job_id", event.JobID),
				slog.Any("error", err),
			)
		}
	}()

	return nil
}

// Close waits for running jobs
func (d *inlineDispatcher) Close() error {
	return d.Shutdown(context.Background())
}

// Shutdown waits for running jobs until ctx is done. Jobs still running are
// left to finish on their own and keep their job records in the running state.
func (d *inlineDispatcher) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		d.logger.Warn("[InlineDispatcher] Shutdown deadline reached with jobs still running")

		return errors.Wrap(ctx.Err(), "inline jobs did not finish")
	}
}
