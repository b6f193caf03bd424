package main

import (
	"context"
	"log/slog"
	"os"

	"audiobrew/config"
	"audiobrew/internal/delivery"
	"audiobrew/internal/delivery/api"
	"audiobrew/internal/delivery/api/router/handler"
	"audiobrew/internal/infra/auth"
	"audiobrew/internal/infra/auth/google"
	"audiobrew/internal/infra/feed"
	"audiobrew/internal/infra/gmail"
	logs "audiobrew/internal/infra/log"
	"audiobrew/internal/infra/notification"
	"audiobrew/internal/infra/openai"
	"audiobrew/internal/infra/persistence"
	"audiobrew/internal/infra/pubsub"
	"audiobrew/internal/infra/qrcode"
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

func main() {
	// A local .env is optional; real deployments set the environment directly
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
			auth.NewJWTStateService,
			auth.NewTokenSealer,
			google.NewOAuthProvider,
			gmail.NewClient,
			openai.NewTextGenerator,
			openai.NewSpeechSynthesizer,
			storage.NewArtifactStore,
			supabase.NewAccountDirectory,
			notification.NewCompletionNotifier,
			qrcode.NewFromConfig,
			feed.NewRSSRenderer,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCredentialService,
			impl.NewGmailService,
			impl.NewScriptService,
			impl.NewAudioService,
			// Used by the inline dispatcher
			impl.NewPipelineService,
			impl.NewPodcastService,
			impl.NewAccountService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPodcastHandler,
			handler.NewGmailHandler,
			handler.NewUserHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
