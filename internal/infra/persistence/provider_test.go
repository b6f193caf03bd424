package persistence

import (
	"io"
	"log/slog"
	"testing"

	"audiobrew/config"
	"audiobrew/internal/infra/supabase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestParams(t *testing.T, cfg *config.Config) Params {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return Params{
		Lc:       fxtest.NewLifecycle(t),
		Config:   cfg,
		Logger:   logger,
		Supabase: supabase.NewClient(supabase.ClientParams{Config: cfg, Logger: logger}),
	}
}

func TestNew_DefaultsToSupabase(t *testing.T) {
	repos, err := New(newTestParams(t, &config.Config{}))

	require.NoError(t, err)
	assert.NotNil(t, repos.CredentialRepo)
	assert.NotNil(t, repos.PodcastRepo)
	assert.NotNil(t, repos.JobRepo)
	assert.NotNil(t, repos.TxManager)
}

func TestNew_PostgresRequiresConfig(t *testing.T) {
	cfg := &config.Config{Persistence: &config.PersistenceConfig{Driver: "postgres"}}

	_, err := New(newTestParams(t, cfg))

	assert.Error(t, err)
}

func TestNew_UnknownDriver(t *testing.T) {
	cfg := &config.Config{Persistence: &config.PersistenceConfig{Driver: "mongo"}}

	_, err := New(newTestParams(t, cfg))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mongo")
}
