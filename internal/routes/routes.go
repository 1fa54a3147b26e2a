package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"edurec_backend/internal/handlers"
)

// RegisterRoutes wires all HTTP routes onto the engine.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/api/v1/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.RecommendationHandler.RegisterRoutes(api)
		appHandlers.EventHandler.RegisterRoutes(api)
	}
}
