// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"audiobrew/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PodcastHandler *handler.PodcastHandler
	GmailHandler   *handler.GmailHandler
	UserHandler    *handler.UserHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	podcastHandler *handler.PodcastHandler
	gmailHandler   *handler.GmailHandler
	userHandler    *handler.UserHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		podcastHandler: params.PodcastHandler,
		gmailHandler:   params.GmailHandler,
		userHandler:    params.UserHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Podcast routes. Static paths win over /:id in echo's router.
	podcastGroup := e.Group("/podcast")
	{
		podcastGroup.POST("/generate", r.podcastHandler.Generate)
		podcastGroup.GET("/list", r.podcastHandler.List)
		podcastGroup.GET("/feed", r.podcastHandler.Feed)
		podcastGroup.GET("/jobs/:id", r.podcastHandler.GetJob)
		podcastGroup.GET("/:id", r.podcastHandler.Get)
		podcastGroup.DELETE("/:id", r.podcastHandler.Delete)
		podcastGroup.GET("/:id/qrcode", r.podcastHandler.ShareQRCode)
	}

	// Gmail connection routes
	gmailGroup := e.Group("/gmail")
	{
		gmailGroup.GET("/auth", r.gmailHandler.Authorize)
		gmailGroup.GET("/callback", r.gmailHandler.Callback)
		gmailGroup.GET("/status", r.gmailHandler.Status)
		gmailGroup.DELETE("/disconnect", r.gmailHandler.Disconnect)
		gmailGroup.GET("/labels", r.gmailHandler.Labels)
		gmailGroup.GET("/emails", r.gmailHandler.Emails)
	}

	// Account routes
	e.DELETE("/user/:id", r.userHandler.DeleteAccount)
}
