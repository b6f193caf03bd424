package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestContext(t *testing.T) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, nil))

	ctx := NewRequestContext(context.Background(), base, "req-1")

	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))
	GetLogger(ctx).Info("hello")
	assert.Contains(t, buf.String(), "request_id=req-1")

	generated := NewRequestContext(context.Background(), base, "")
	assert.NotEmpty(t, GetRequestIDFromContext(generated))
}

func TestDetach(t *testing.T) {
	base := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	parent, cancel := context.WithTimeout(NewRequestContext(context.Background(), base, "req-2"), time.Hour)
	cancel()

	detached := Detach(parent)

	require.Error(t, parent.Err())
	assert.NoError(t, detached.Err())
	assert.Equal(t, "req-2", GetRequestIDFromContext(detached))
	assert.Same(t, GetLogger(parent), GetLogger(detached))
}

func TestLoggerFallback(t *testing.T) {
	fallback := slog.Default()

	assert.Nil(t, GetLogger(context.Background()))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestEchoRequestID(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest("GET", "/", nil), httptest.NewRecorder())

	assert.NotEmpty(t, GetRequestID(c))

	SetRequestID(c, "req-3")
	assert.Equal(t, "req-3", GetRequestID(c))
}
