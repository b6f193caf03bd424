// Package persistence selects the repository implementations for the configured driver.
package persistence

import (
	"log/slog"

	"audiobrew/config"
	"audiobrew/internal/domain/constants"
	"audiobrew/internal/domain/repository"
	"audiobrew/internal/infra/persistence/postgres"
	"audiobrew/internal/infra/supabase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the repositories, injected by Fx
type Params struct {
	fx.In

	Lc       fx.Lifecycle
	Config   *config.Config
	Logger   *slog.Logger
	Supabase *supabase.Client
}

// Repositories is the set of repositories exposed to the usecases
type Repositories struct {
	fx.Out

	CredentialRepo repository.CredentialRepository
	PodcastRepo    repository.PodcastRepository
	JobRepo        repository.JobRepository
	TxManager      repository.TransactionManager
}

// New builds the repositories for persistence.driver. Supabase is the default.
func New(params Params) (Repositories, error) {
	driver := constants.PersistenceDriverSupabase
	if params.Config.Persistence != nil && params.Config.Persistence.Driver != "" {
		driver = params.Config.Persistence.Driver
	}

	switch driver {
	case constants.PersistenceDriverSupabase:
		if !params.Supabase.Configured() {
			params.Logger.Warn("Supabase URL or service key not set, store calls will fail")
		}
		params.Logger.Info("Using Supabase REST persistence")

		return Repositories{
			CredentialRepo: supabase.NewCredentialRepository(params.Supabase),
			PodcastRepo:    supabase.NewPodcastRepository(params.Supabase),
			JobRepo:        supabase.NewJobRepository(params.Supabase),
			TxManager:      supabase.NewTransactionManager(params.Supabase),
		}, nil

	case constants.PersistenceDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using PostgreSQL persistence")

		return Repositories{
			CredentialRepo: postgres.NewCredentialRepository(db),
			PodcastRepo:    postgres.NewPodcastRepository(db),
			JobRepo:        postgres.NewJobRepository(db),
			TxManager:      postgres.NewTransactionManager(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unsupported persistence driver: %s", driver)
	}
}
