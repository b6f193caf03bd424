// Package impl contains the implementation of the application's business logic.
package impl

import (
	"audiobrew/internal/domain/constants"
	domainerrors "audiobrew/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func parseUserID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidUserID
	}

	return id, nil
}

func parsePodcastID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidPodcastID
	}

	return id, nil
}

// storeError reports a failed metadata store call. The store's message is kept
// in the client-facing error.
func storeError(err error, action string) error {
	return domainerrors.NewUpstreamError(constants.ServiceDatabase, errors.Wrap(err, action))
}
