package pubsub

import (
	"context"
	"log/slog"

	"audiobrew/config"
	"audiobrew/internal/domain/constants"
	"audiobrew/internal/domain/service"
	"audiobrew/internal/usecase"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopDispatcher drops jobs. Used by processes that never dispatch.
type noopDispatcher struct {
	logger *slog.Logger
}

func (d *noopDispatcher) Dispatch(ctx context.Context, event *service.PodcastJobEvent) error {
	d.logger.Debug("[NoopDispatcher] Job dispatch disabled, skipping",
		slog.String("job_id", event.JobID),
	)

	return nil
}

func (d *noopDispatcher) Close() error {
	return nil
}

// DispatcherParams holds dependencies for JobDispatcher, injected by Fx
type DispatcherParams struct {
	fx.In

	Lc       fx.Lifecycle
	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Pipeline usecase.PipelineUsecase `optional:"true"`
}

// NewJobDispatcher creates a JobDispatcher based on configuration
func NewJobDispatcher(params DispatcherParams) (service.JobDispatcher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	provider := constants.PubSubProviderInline
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}

	var dispatcher service.JobDispatcher
	var err error

	switch provider {
	case constants.PubSubProviderInline:
		if params.Pipeline == nil {
			return nil, errors.New("pipeline usecase is required for inline provider")
		}
		logger.Info("Using inline dispatcher for podcast jobs")

		dispatcher = NewInlineDispatcher(params.Pipeline, logger)

	case constants.PubSubProviderNoop:
		logger.Info("Job dispatch disabled, using no-op dispatcher")

		return &noopDispatcher{logger: logger}, nil

	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		dispatcher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		dispatcher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	case constants.PubSubProviderAsynq:
		asynqCfg := params.Config.Asynq
		if asynqCfg == nil || asynqCfg.RedisAddr == "" {
			return nil, errors.New("redis address is required for asynq provider")
		}
		logger.Info("Using asynq publisher",
			slog.String("redis_addr", asynqCfg.RedisAddr),
			slog.String("queue", asynqCfg.Queue),
		)

		client := asynq.NewClient(asynq.RedisClientOpt{Addr: asynqCfg.RedisAddr})
		dispatcher = NewAsynqPublisher(client, asynqCfg.Queue, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", provider)
	}

	// Register lifecycle hook to close dispatcher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing JobDispatcher")

			if s, ok := dispatcher.(shutdowner); ok {
				return s.Shutdown(ctx)
			}

			return dispatcher.Close()
		},
	})

	return dispatcher, nil
}

// shutdowner is implemented by dispatchers whose Close can be bounded by a deadline
type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewJobDispatcher),
)
