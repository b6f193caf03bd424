package main

import (
	"context"
	"log/slog"
	"os"

	"audiobrew/config"
	"audiobrew/internal/delivery"
	"audiobrew/internal/delivery/worker"
	"audiobrew/internal/delivery/worker/handler"
	"audiobrew/internal/infra/auth"
	"audiobrew/internal/infra/gmail"
	logs "audiobrew/internal/infra/log"
	"audiobrew/internal/infra/notification"
	"audiobrew/internal/infra/openai"
	"audiobrew/internal/infra/persistence"
	"audiobrew/internal/infra/storage"
	"audiobrew/internal/infra/supabase"
	"audiobrew/internal/usecase/impl"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

// The worker runs jobs dispatched by the API through Pub/Sub push or the Redis task queue.
func main() {
	_ = godotenv.Load()

	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		supabase.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewTokenSealer,
			gmail.NewClient,
			openai.NewTextGenerator,
			openai.NewSpeechSynthesizer,
			storage.NewArtifactStore,
			notification.NewCompletionNotifier,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCredentialService,
			impl.NewScriptService,
			impl.NewAudioService,
			impl.NewPipelineService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
			handler.NewTaskHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewTaskServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
