package worker

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"audiobrew/config"
	"audiobrew/internal/delivery/worker/handler"
	"audiobrew/internal/domain/constants"
	"audiobrew/internal/domain/service"
	mockUsecase "audiobrew/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestWorkerEcho(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	pipeline := mockUsecase.NewMockPipelineUsecase(t)

	e := newEcho(ServerParams{
		Cfg:         cfg,
		Logger:      logger,
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{Config: cfg, Logger: logger, Pipeline: pipeline}),
	})

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("push", func(t *testing.T) {
		jobID := uuid.New()
		pipeline.EXPECT().Run(mock.Anything, jobID).Return(nil).Once()

		event, err := json.Marshal(service.PodcastJobEvent{JobID: jobID.String()})
		require.NoError(t, err)
		var msg handler.PubSubMessage
		msg.Message.Data = base64.StdEncoding.EncodeToString(event)
		body, err := json.Marshal(msg)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	})
}

func TestNewTaskServer_DisabledWithoutRedis(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	d, err := NewTaskServer(TaskServerParams{
		Lc:          lc,
		Cfg:         &config.Config{},
		Logger:      logger,
		TaskHandler: handler.NewTaskHandler(handler.TaskHandlerParams{Logger: logger}),
	})
	require.NoError(t, err)

	assert.IsType(t, disabledDelivery{}, d)
	assert.NoError(t, d.Serve(t.Context()))
}

func TestNewTaskServer_AsynqRequiresRedis(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderAsynq}}

	_, err := NewTaskServer(TaskServerParams{
		Lc:          fxtest.NewLifecycle(t),
		Cfg:         cfg,
		Logger:      logger,
		TaskHandler: handler.NewTaskHandler(handler.TaskHandlerParams{Logger: logger}),
	})

	require.ErrorContains(t, err, "redis address")
}
