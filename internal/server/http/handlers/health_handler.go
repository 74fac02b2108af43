package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/solvex/cotizaciones/internal/server/http/dto"
)

// HealthHandler exposes storage availability.
type HealthHandler struct {
	facade HealthFacade
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(facade HealthFacade) *HealthHandler {
	return &HealthHandler{facade: facade}
}

// Status handles GET /api/health.
func (h *HealthHandler) Status(c *gin.Context) {
	if err := h.facade.HealthCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Message: "storage unavailable"})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
