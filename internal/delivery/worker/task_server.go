package worker

import (
	"context"
	"log/slog"

	"audiobrew/config"
	"audiobrew/internal/delivery"
	"audiobrew/internal/delivery/worker/handler"
	"audiobrew/internal/domain/constants"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultTaskConcurrency = 2

type taskServer struct {
	logger *slog.Logger
	server *asynq.Server
	mux    *asynq.ServeMux
}

// disabledDelivery is used when no task queue is configured
type disabledDelivery struct{}

func (disabledDelivery) Serve(context.Context) error { return nil }

// TaskServerParams holds dependencies for the task queue consumer
type TaskServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	TaskHandler *handler.TaskHandler
}

// NewTaskServer creates the asynq consumer for podcast:generate tasks.
// Unless pubsub.provider is asynq the returned delivery does nothing.
func NewTaskServer(params TaskServerParams) (delivery.Delivery, error) {
	if params.Cfg.PubSub == nil || params.Cfg.PubSub.Provider != constants.PubSubProviderAsynq {
		params.Logger.Info("Task queue consumer disabled")

		return disabledDelivery{}, nil
	}

	cfg := params.Cfg.Asynq
	if cfg == nil || cfg.RedisAddr == "" {
		return nil, errors.New("asynq redis address is required for the asynq provider")
	}

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = defaultTaskConcurrency
	}
	queue := cfg.Queue
	if queue == "" {
		queue = "default"
	}

	srv := &taskServer{
		logger: params.Logger,
		server: asynq.NewServer(
			asynq.RedisClientOpt{Addr: cfg.RedisAddr},
			asynq.Config{
				Concurrency: concurrency,
				Queues:      map[string]int{queue: 1},
				Logger:      newAsynqLogger(params.Logger),
			},
		),
		mux: asynq.NewServeMux(),
	}
	srv.mux.HandleFunc(constants.TaskTypePodcastGenerate, params.TaskHandler.HandlePodcastGenerate)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			srv.logger.Info("Shutting down task queue consumer")
			srv.server.Shutdown()

			return nil
		},
	})

	return srv, nil
}

// Serve starts consuming tasks. asynq runs its own goroutines, so this returns once started.
func (s *taskServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting task queue consumer")
	if err := s.server.Start(s.mux); err != nil {
		return errors.Wrap(err, "failed to start task queue consumer")
	}

	return nil
}
