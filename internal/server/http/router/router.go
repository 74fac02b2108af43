package router

import (
	_ "embed"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/solvex/cotizaciones/internal/server/http/handlers"
	"github.com/solvex/cotizaciones/internal/server/http/middleware"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ServiceFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade, logger)
	quoteHandler := handlers.NewQuoteHandler(facade, logger)
	healthHandler := handlers.NewHealthHandler(facade)

	api := engine.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/health", healthHandler.Status)

	quotes := api.Group("/cotizaciones")
	quotes.Use(middleware.AuthRequired(facade))
	quotes.GET("", quoteHandler.List)
	quotes.POST("", quoteHandler.Create)
	quotes.GET("/:id", quoteHandler.Get)
	quotes.PUT("/:id", quoteHandler.Update)
	quotes.DELETE("/:id", quoteHandler.Delete)

	engine.GET("/api-docs/openapi.yaml", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/yaml", openAPIDocument)
	})

	return engine
}
