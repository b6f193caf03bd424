package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrValidationFailed.WithDetails("email_ids: required")

	assert.Equal(t, "email_ids: required", err.Details())
	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrInvalidUserID))
}

func TestBaseError_WrapMessage(t *testing.T) {
	wrapped := ErrPodcastNotFound.WrapMessage("lookup podcast")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "PODCAST_NOT_FOUND", appErr.ErrorCode())
}

func TestUpstreamError(t *testing.T) {
	cause := errors.New("429 rate limited")
	err := NewUpstreamError("openai", cause)

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "UPSTREAM_ERROR", err.ErrorCode())
	assert.Equal(t, "openai request failed: 429 rate limited", err.Message())
	assert.True(t, errors.Is(err, cause))

	var upstream *UpstreamError
	assert.True(t, errors.As(errors.Wrap(err, "synthesize"), &upstream))
	assert.Equal(t, "openai", upstream.Service())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseExecuteError(cause, "insert podcast")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "insert podcast", err.Details())
	assert.Contains(t, err.Error(), "connection refused")
	assert.True(t, errors.Is(err, cause))
}
