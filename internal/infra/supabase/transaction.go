package supabase

import (
	"context"

	"audiobrew/internal/domain/repository"
)

// transactionManager runs fn against the REST repositories. PostgREST offers
// no multi-request transactions, so statements apply one by one and a failing
// step leaves earlier steps in place.
type transactionManager struct {
	factory repository.RepositoryFactory
}

type repositoryFactory struct {
	client *Client
}

// NewTransactionManager creates a TransactionManager for the REST driver
func NewTransactionManager(client *Client) repository.TransactionManager {
	return &transactionManager{factory: &repositoryFactory{client: client}}
}

func (m *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(m.factory)
}

func (f *repositoryFactory) NewCredentialRepository() repository.CredentialRepository {
	return NewCredentialRepository(f.client)
}

func (f *repositoryFactory) NewPodcastRepository() repository.PodcastRepository {
	return NewPodcastRepository(f.client)
}

func (f *repositoryFactory) NewJobRepository() repository.JobRepository {
	return NewJobRepository(f.client)
}
