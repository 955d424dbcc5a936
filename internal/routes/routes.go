package routes

import (
	"net/http"

	"mentorhub_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты приложения.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// HTTP API v1
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.Auth.RegisterRoutes(api)
		appHandlers.User.RegisterRoutes(api)
		appHandlers.Admin.RegisterRoutes(api)
		appHandlers.Request.RegisterRoutes(api)
	}
}
