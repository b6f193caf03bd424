package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"audiobrew/config"
	"audiobrew/internal/delivery/api/response"
	"audiobrew/internal/delivery/api/router"
	"audiobrew/internal/delivery/api/router/handler"
	deliverycontext "audiobrew/internal/delivery/context"
	"audiobrew/internal/domain/constants"
	"audiobrew/internal/domain/entity"
	domainerrors "audiobrew/internal/domain/errors"
	mockService "audiobrew/internal/mocks/service"
	mockUsecase "audiobrew/internal/mocks/usecase"
	"audiobrew/internal/infra/supabase"
	"audiobrew/internal/usecase"
	"audiobrew/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	echo      *echo.Echo
	podcastUC *mockUsecase.MockPodcastUsecase
	gmailUC   *mockUsecase.MockGmailUsecase
	accountUC *mockUsecase.MockAccountUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.GoogleOAuth = &config.GoogleOAuthConfig{FrontendRedirectURL: "https://app.example.com/dashboard/profile"}

	ts := &testServer{
		podcastUC: mockUsecase.NewMockPodcastUsecase(t),
		gmailUC:   mockUsecase.NewMockGmailUsecase(t),
		accountUC: mockUsecase.NewMockAccountUsecase(t),
	}

	ts.echo = newEcho(ServerParams{
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			PodcastHandler: handler.NewPodcastHandler(handler.PodcastHandlerParams{PodcastUC: ts.podcastUC, Logger: logger}),
			GmailHandler:   handler.NewGmailHandler(handler.GmailHandlerParams{GmailUC: ts.gmailUC, Config: cfg, Logger: logger}),
			UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{AccountUC: ts.accountUC, Logger: logger}),
		},
	})

	return ts
}

func (ts *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-test")
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorInfo {
	t.Helper()

	var body struct {
		Error response.ErrorInfo `json:"error"`
		Meta  response.MetaInfo  `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "req-test", body.Meta.RequestID)

	return body.Error
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"status":"healthy","service":"audiobrew"},"meta":{"request_id":"req-test"}}`, rec.Body.String())
}

func TestGeneratePodcast(t *testing.T) {
	userID := uuid.New()
	jobID := uuid.New()

	t.Run("accepted", func(t *testing.T) {
		ts := newTestServer(t)
		ts.podcastUC.EXPECT().
			Generate(mock.Anything, &usecase.GenerateRequest{UserID: userID.String(), EmailIDs: []string{"m1", "m2"}, Title: "Weekly"}).
			Return(&entity.PodcastJob{ID: jobID, UserID: userID, Status: entity.JobStatusQueued}, nil).
			Once()

		rec := ts.do(http.MethodPost, "/podcast/generate",
			`{"user_id":"`+userID.String()+`","email_ids":["m1","m2"],"title":"Weekly"}`)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		var body struct {
			Data handler.GenerateResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, jobID.String(), body.Data.ID)
		assert.Equal(t, "processing", body.Data.Status)
	})

	t.Run("missing user id", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodPost, "/podcast/generate", `{"email_ids":["m1"]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		errInfo := decodeError(t, rec)
		assert.Equal(t, "VALIDATION_ERROR", errInfo.Code)
		assert.Contains(t, errInfo.Message, "user_id")
	})

	t.Run("malformed body", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodPost, "/podcast/generate", `{"user_id":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Code)
	})

	t.Run("no email ids", func(t *testing.T) {
		ts := newTestServer(t)
		ts.podcastUC.EXPECT().Generate(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrEmailIDsRequired).Once()

		rec := ts.do(http.MethodPost, "/podcast/generate", `{"user_id":"`+userID.String()+`","email_ids":[]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		errInfo := decodeError(t, rec)
		assert.Equal(t, "EMAIL_IDS_REQUIRED", errInfo.Code)
		assert.Equal(t, "At least one email ID is required", errInfo.Message)
	})

	t.Run("body over limit", func(t *testing.T) {
		ts := newTestServer(t)
		ids := strings.Repeat(`"m",`, 400)

		rec := ts.do(http.MethodPost, "/podcast/generate", `{"user_id":"`+userID.String()+`","email_ids":[`+ids+`"m"]}`)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Equal(t, "REQUEST_TOO_LARGE", decodeError(t, rec).Code)
	})
}

func TestPodcastReads(t *testing.T) {
	userID := uuid.New().String()
	podcastID := uuid.New()

	t.Run("list", func(t *testing.T) {
		ts := newTestServer(t)
		ts.podcastUC.EXPECT().List(mock.Anything, userID).
			Return([]*entity.Podcast{{ID: podcastID, Title: "Daily"}}, nil).Once()

		rec := ts.do(http.MethodGet, "/podcast/list?user_id="+userID, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), podcastID.String())
	})

	t.Run("get not found", func(t *testing.T) {
		ts := newTestServer(t)
		ts.podcastUC.EXPECT().Get(mock.Anything, userID, podcastID.String()).
			Return(nil, domainerrors.ErrPodcastNotFound).Once()

		rec := ts.do(http.MethodGet, "/podcast/"+podcastID.String()+"?user_id="+userID, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "PODCAST_NOT_FOUND", decodeError(t, rec).Code)
	})

	t.Run("job route wins over id route", func(t *testing.T) {
		ts := newTestServer(t)
		ts.podcastUC.EXPECT().GetJob(mock.Anything, userID, podcastID.String()).
			Return(&entity.PodcastJob{ID: podcastID, Status: entity.JobStatusRunning}, nil).Once()

		rec := ts.do(http.MethodGet, "/podcast/jobs/"+podcastID.String()+"?user_id="+userID, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"running"`)
	})

	t.Run("delete", func(t *testing.T) {
		ts := newTestServer(t)
		ts.podcastUC.EXPECT().Delete(mock.Anything, userID, podcastID.String()).Return(nil).Once()

		rec := ts.do(http.MethodDelete, "/podcast/"+podcastID.String()+"?user_id="+userID, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Podcast and audio file deleted successfully")
	})

	t.Run("feed is raw xml", func(t *testing.T) {
		ts := newTestServer(t)
		ts.podcastUC.EXPECT().Feed(mock.Anything, userID).Return(`<rss version="2.0"></rss>`, nil).Once()

		rec := ts.do(http.MethodGet, "/podcast/feed?user_id="+userID, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "application/rss+xml")
		assert.Equal(t, `<rss version="2.0"></rss>`, rec.Body.String())
	})

	t.Run("qrcode", func(t *testing.T) {
		ts := newTestServer(t)
		png := []byte{0x89, 'P', 'N', 'G'}
		ts.podcastUC.EXPECT().ShareQRCode(mock.Anything, userID, podcastID.String()).Return(png, nil).Once()

		rec := ts.do(http.MethodGet, "/podcast/"+podcastID.String()+"/qrcode?user_id="+userID, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, png, rec.Body.Bytes())
	})
}

func TestServerErrors(t *testing.T) {
	userID := uuid.New().String()

	t.Run("upstream failure is exposed with its service", func(t *testing.T) {
		ts := newTestServer(t)
		ts.gmailUC.EXPECT().Labels(mock.Anything, userID).
			Return(nil, domainerrors.NewUpstreamError(constants.ServiceGmail, errors.New("quota exceeded"))).Once()

		rec := ts.do(http.MethodGet, "/gmail/labels?user_id="+userID, "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		errInfo := decodeError(t, rec)
		assert.Equal(t, "UPSTREAM_ERROR", errInfo.Code)
		assert.Contains(t, errInfo.Message, "quota exceeded")
	})

	t.Run("unknown errors are hidden", func(t *testing.T) {
		ts := newTestServer(t)
		ts.podcastUC.EXPECT().List(mock.Anything, userID).Return(nil, errors.New("connection reset by peer")).Once()

		rec := ts.do(http.MethodGet, "/podcast/list?user_id="+userID, "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		errInfo := decodeError(t, rec)
		assert.Equal(t, "INTERNAL_ERROR", errInfo.Code)
		assert.NotContains(t, errInfo.Message, "connection reset")
	})

	t.Run("unknown route", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodGet, "/nope", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Code)
	})
}

func TestGmailRoutes(t *testing.T) {
	userID := uuid.New().String()

	t.Run("authorize", func(t *testing.T) {
		ts := newTestServer(t)
		ts.gmailUC.EXPECT().AuthorizationURL(mock.Anything, userID).Return("https://accounts.google.com/o/oauth2/auth?state=s", nil).Once()

		rec := ts.do(http.MethodGet, "/gmail/auth?user_id="+userID, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"authorization_url":"https://accounts.google.com/o/oauth2/auth?state=s"`)
	})

	t.Run("callback success redirects with email", func(t *testing.T) {
		ts := newTestServer(t)
		ts.gmailUC.EXPECT().CompleteAuthorization(mock.Anything, "code-1", "state-1").Return("alice@example.com", nil).Once()

		rec := ts.do(http.MethodGet, "/gmail/callback?code=code-1&state=state-1", "")

		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		location, err := url.Parse(rec.Header().Get(echo.HeaderLocation))
		require.NoError(t, err)
		assert.Equal(t, "app.example.com", location.Host)
		assert.Equal(t, "/dashboard/profile", location.Path)
		assert.Equal(t, "true", location.Query().Get("gmail_connected"))
		assert.Equal(t, "alice@example.com", location.Query().Get("email"))
	})

	t.Run("callback failure redirects with reason", func(t *testing.T) {
		ts := newTestServer(t)
		ts.gmailUC.EXPECT().CompleteAuthorization(mock.Anything, "code-1", "bad").
			Return("", domainerrors.ErrInvalidOAuthState).Once()

		rec := ts.do(http.MethodGet, "/gmail/callback?code=code-1&state=bad", "")

		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		location, err := url.Parse(rec.Header().Get(echo.HeaderLocation))
		require.NoError(t, err)
		assert.Equal(t, domainerrors.ErrInvalidOAuthState.Message(), location.Query().Get("gmail_error"))
		assert.Empty(t, location.Query().Get("gmail_connected"))
	})

	t.Run("callback hides internal failures", func(t *testing.T) {
		ts := newTestServer(t)
		ts.gmailUC.EXPECT().CompleteAuthorization(mock.Anything, "c", "s").Return("", errors.New("db down")).Once()

		rec := ts.do(http.MethodGet, "/gmail/callback?code=c&state=s", "")

		location, err := url.Parse(rec.Header().Get(echo.HeaderLocation))
		require.NoError(t, err)
		assert.Equal(t, "Failed to process Gmail connection", location.Query().Get("gmail_error"))
	})

	t.Run("status", func(t *testing.T) {
		ts := newTestServer(t)
		ts.gmailUC.EXPECT().Status(mock.Anything, userID).Return(&usecase.GmailStatus{IsConnected: false}, nil).Once()

		rec := ts.do(http.MethodGet, "/gmail/status?user_id="+userID, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"is_connected":false`)
	})

	t.Run("disconnect", func(t *testing.T) {
		ts := newTestServer(t)
		ts.gmailUC.EXPECT().Disconnect(mock.Anything, userID).Return(nil).Once()

		rec := ts.do(http.MethodDelete, "/gmail/disconnect?user_id="+userID, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":true`)
	})

	t.Run("emails default label", func(t *testing.T) {
		ts := newTestServer(t)
		total := 0
		ts.gmailUC.EXPECT().Emails(mock.Anything, userID, "").
			Return(&usecase.GmailEmails{Emails: []entity.EmailSummary{}, Total: &total}, nil).Once()

		rec := ts.do(http.MethodGet, "/gmail/emails?user_id="+userID, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"emails":[]`)
	})
}

func TestDeleteAccount(t *testing.T) {
	userID := uuid.New().String()

	t.Run("deleted", func(t *testing.T) {
		ts := newTestServer(t)
		ts.accountUC.EXPECT().DeleteAccount(mock.Anything, userID).Return(nil).Once()

		rec := ts.do(http.MethodDelete, "/user/"+userID, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Account and all associated data deleted successfully")
	})

	t.Run("invalid id", func(t *testing.T) {
		ts := newTestServer(t)
		ts.accountUC.EXPECT().DeleteAccount(mock.Anything, "abc").Return(domainerrors.ErrInvalidUserID).Once()

		rec := ts.do(http.MethodDelete, "/user/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_USER_ID", decodeError(t, rec).Code)
	})
}

func TestPodcastList_StoreFailureMessageReachesClient(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, `{"message":"relation podcasts is unavailable"}`)
	}))
	t.Cleanup(upstream.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.Supabase = &config.SupabaseConfig{URL: upstream.URL, ServiceKey: "service-key"}

	client := supabase.NewClient(supabase.ClientParams{Config: cfg, Logger: logger})
	podcastUC := impl.NewPodcastService(impl.PodcastServiceParams{
		JobRepo:     supabase.NewJobRepository(client),
		PodcastRepo: supabase.NewPodcastRepository(client),
		Dispatcher:  mockService.NewMockJobDispatcher(t),
		Store:       mockService.NewMockArtifactStore(t),
		Feed:        mockService.NewMockFeedRenderer(t),
		QRCode:      mockService.NewMockQRCodeService(t),
		Logger:      logger,
	})

	ts := &testServer{echo: newEcho(ServerParams{
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			PodcastHandler: handler.NewPodcastHandler(handler.PodcastHandlerParams{PodcastUC: podcastUC, Logger: logger}),
			GmailHandler:   handler.NewGmailHandler(handler.GmailHandlerParams{GmailUC: mockUsecase.NewMockGmailUsecase(t), Config: cfg, Logger: logger}),
			UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{AccountUC: mockUsecase.NewMockAccountUsecase(t), Logger: logger}),
		},
	})}

	rec := ts.do(http.MethodGet, "/podcast/list?user_id="+uuid.NewString(), "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	errInfo := decodeError(t, rec)
	assert.Equal(t, "UPSTREAM_ERROR", errInfo.Code)
	assert.Contains(t, errInfo.Message, "relation podcasts is unavailable")
}
