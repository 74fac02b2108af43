package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/solvex/cotizaciones/internal/server/http/dto"
	"github.com/solvex/cotizaciones/internal/server/http/middleware"
)

// CurrentUsername extracts the authenticated subject from context.
func CurrentUsername(c *gin.Context) string {
	val, ok := c.Get(middleware.UsernameContextKey)
	if !ok {
		return ""
	}
	username, _ := val.(string)
	return username
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid quote id"})
		return 0, false
	}
	return id, true
}

// internalError logs the cause and answers with a fixed generic message,
// never echoing internal detail to the client.
func internalError(c *gin.Context, logger *slog.Logger, op string, err error) {
	logger.Error(op, slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "internal server error"})
}
