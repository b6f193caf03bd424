package storage

import (
	"context"
	"log/slog"

	"audiobrew/config"
	"audiobrew/internal/domain/constants"
	"audiobrew/internal/domain/service"
	"audiobrew/internal/infra/supabase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the ArtifactStore, injected by Fx
type Params struct {
	fx.In

	Lc       fx.Lifecycle
	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Supabase *supabase.Client
}

// NewArtifactStore creates the ArtifactStore selected by storage.provider
func NewArtifactStore(params Params) (service.ArtifactStore, error) {
	cfg := params.Config.Storage
	provider := constants.StorageProviderSupabase
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}

	switch provider {
	case constants.StorageProviderSupabase:
		params.Logger.Info("Using Supabase storage for audio",
			slog.String("bucket", params.Supabase.Bucket()),
		)

		return supabase.NewArtifactStore(params.Supabase), nil

	case constants.StorageProviderBlob:
		if cfg.BucketURL == "" {
			return nil, errors.New("bucket URL is required for blob storage provider")
		}
		if cfg.PublicBaseURL == "" {
			return nil, errors.New("public base URL is required for blob storage provider")
		}

		bucket, err := OpenBucket(params.Ctx, cfg.BucketURL)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return bucket.Close()
			},
		})

		params.Logger.Info("Using blob storage for audio",
			slog.String("bucket_url", cfg.BucketURL),
		)

		return NewBlobStore(bucket, cfg.PublicBaseURL), nil

	default:
		return nil, errors.Errorf("unsupported storage provider: %s", provider)
	}
}
