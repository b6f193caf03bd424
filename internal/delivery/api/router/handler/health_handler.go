package handler

import (
	"net/http"

	"audiobrew/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthResponse reports liveness
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// HealthCheck handles GET /health
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: "audiobrew",
	})
}
