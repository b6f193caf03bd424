package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"audiobrew/internal/delivery/api/response"
	"audiobrew/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Status reported to the client while a job is queued or running
const statusProcessing = "processing"

// PodcastHandlerParams holds dependencies for PodcastHandler, injected by Fx.
type PodcastHandlerParams struct {
	fx.In

	PodcastUC usecase.PodcastUsecase
	Logger    *slog.Logger
}

// PodcastHandler holds dependencies for podcast-related handlers
type PodcastHandler struct {
	podcastUC usecase.PodcastUsecase
	logger    *slog.Logger
}

// NewPodcastHandler is the constructor for PodcastHandler
func NewPodcastHandler(params PodcastHandlerParams) *PodcastHandler {
	return &PodcastHandler{
		podcastUC: params.PodcastUC,
		logger:    params.Logger,
	}
}

// GenerateRequest represents the request body for starting a podcast generation
type GenerateRequest struct {
	UserID   string   `json:"user_id" validate:"required"`
	EmailIDs []string `json:"email_ids"`
	Title    string   `json:"title,omitempty" validate:"omitempty,max=200"`
}

// GenerateResponse acknowledges an accepted generation job
type GenerateResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Generate handles POST /podcast/generate
func (h *PodcastHandler) Generate(c echo.Context) error {
	var req GenerateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid podcast generation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	job, err := h.podcastUC.Generate(c.Request().Context(), &usecase.GenerateRequest{
		UserID:   req.UserID,
		EmailIDs: req.EmailIDs,
		Title:    req.Title,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, GenerateResponse{
		ID:      job.ID.String(),
		Status:  statusProcessing,
		Message: "Podcast generation started. This may take a few minutes.",
	})
}

// List handles GET /podcast/list
func (h *PodcastHandler) List(c echo.Context) error {
	podcasts, err := h.podcastUC.List(c.Request().Context(), c.QueryParam("user_id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, podcasts)
}

// Get handles GET /podcast/:id
func (h *PodcastHandler) Get(c echo.Context) error {
	podcast, err := h.podcastUC.Get(c.Request().Context(), c.QueryParam("user_id"), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, podcast)
}

// Delete handles DELETE /podcast/:id
func (h *PodcastHandler) Delete(c echo.Context) error {
	if err := h.podcastUC.Delete(c.Request().Context(), c.QueryParam("user_id"), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Podcast and audio file deleted successfully")
}

// GetJob handles GET /podcast/jobs/:id
func (h *PodcastHandler) GetJob(c echo.Context) error {
	job, err := h.podcastUC.GetJob(c.Request().Context(), c.QueryParam("user_id"), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, job)
}

// Feed handles GET /podcast/feed. The feed is returned as raw XML so podcast apps can read it.
func (h *PodcastHandler) Feed(c echo.Context) error {
	rss, err := h.podcastUC.Feed(c.Request().Context(), c.QueryParam("user_id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "application/rss+xml; charset=utf-8", []byte(rss))
}

// ShareQRCode handles GET /podcast/:id/qrcode
func (h *PodcastHandler) ShareQRCode(c echo.Context) error {
	podcastID := c.Param("id")

	png, err := h.podcastUC.ShareQRCode(c.Request().Context(), c.QueryParam("user_id"), podcastID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=podcast-%s.png", podcastID))

	return c.Blob(http.StatusOK, "image/png", png)
}
