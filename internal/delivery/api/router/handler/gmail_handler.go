package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"audiobrew/config"
	"audiobrew/internal/delivery/api/response"
	deliverycontext "audiobrew/internal/delivery/context"
	domainerrors "audiobrew/internal/domain/errors"
	"audiobrew/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultFrontendRedirect is used when googleOAuth.frontendRedirectUrl is unset
const defaultFrontendRedirect = "/dashboard/profile"

// GmailHandlerParams holds dependencies for GmailHandler, injected by Fx.
type GmailHandlerParams struct {
	fx.In

	GmailUC usecase.GmailUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// GmailHandler holds dependencies for Gmail connection handlers
type GmailHandler struct {
	gmailUC          usecase.GmailUsecase
	frontendRedirect string
	logger           *slog.Logger
}

// NewGmailHandler is the constructor for GmailHandler
func NewGmailHandler(params GmailHandlerParams) *GmailHandler {
	redirect := defaultFrontendRedirect
	if params.Config.GoogleOAuth != nil && params.Config.GoogleOAuth.FrontendRedirectURL != "" {
		redirect = params.Config.GoogleOAuth.FrontendRedirectURL
	}

	return &GmailHandler{
		gmailUC:          params.GmailUC,
		frontendRedirect: redirect,
		logger:           params.Logger,
	}
}

// AuthorizationResponse carries the Google consent URL
type AuthorizationResponse struct {
	AuthorizationURL string `json:"authorization_url"`
}

// DisconnectResponse confirms a disconnect
type DisconnectResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Authorize handles GET /gmail/auth
func (h *GmailHandler) Authorize(c echo.Context) error {
	authURL, err := h.gmailUC.AuthorizationURL(c.Request().Context(), c.QueryParam("user_id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, AuthorizationResponse{AuthorizationURL: authURL})
}

// Callback handles GET /gmail/callback. The browser is always redirected to
// the frontend, carrying either the connected email or the failure reason.
func (h *GmailHandler) Callback(c echo.Context) error {
	ctx := c.Request().Context()

	email, err := h.gmailUC.CompleteAuthorization(ctx, c.QueryParam("code"), c.QueryParam("state"))
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Gmail connection failed", slog.Any("error", err))

		return c.Redirect(http.StatusTemporaryRedirect, h.redirectURL(url.Values{
			"gmail_error": []string{callbackErrorMessage(err)},
		}))
	}

	return c.Redirect(http.StatusTemporaryRedirect, h.redirectURL(url.Values{
		"gmail_connected": []string{"true"},
		"email":           []string{email},
	}))
}

// Status handles GET /gmail/status
func (h *GmailHandler) Status(c echo.Context) error {
	status, err := h.gmailUC.Status(c.Request().Context(), c.QueryParam("user_id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

// Disconnect handles DELETE /gmail/disconnect
func (h *GmailHandler) Disconnect(c echo.Context) error {
	if err := h.gmailUC.Disconnect(c.Request().Context(), c.QueryParam("user_id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, DisconnectResponse{
		Success: true,
		Message: "Gmail disconnected successfully",
	})
}

// Labels handles GET /gmail/labels
func (h *GmailHandler) Labels(c echo.Context) error {
	labels, err := h.gmailUC.Labels(c.Request().Context(), c.QueryParam("user_id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, labels)
}

// Emails handles GET /gmail/emails
func (h *GmailHandler) Emails(c echo.Context) error {
	emails, err := h.gmailUC.Emails(c.Request().Context(), c.QueryParam("user_id"), c.QueryParam("label_id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, emails)
}

func (h *GmailHandler) redirectURL(params url.Values) string {
	target, err := url.Parse(h.frontendRedirect)
	if err != nil {
		return h.frontendRedirect + "?" + params.Encode()
	}

	query := target.Query()
	for key, values := range params {
		query[key] = values
	}
	target.RawQuery = query.Encode()

	return target.String()
}

func callbackErrorMessage(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return "Failed to process Gmail connection"
}
