package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tharwin-carr/smoothie-me-api2/internal/api"
	"github.com/tharwin-carr/smoothie-me-api2/internal/database"
	"github.com/tharwin-carr/smoothie-me-api2/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	db *gorm.DB,
	smoothieHandler *api.SmoothieHandler,
	favoriteHandler *api.FavoriteHandler,
) *gin.Engine {
	router := gin.Default()

	// CORS middleware
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context(), db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api")
	smoothieHandler.RegisterRoutes(apiGroup)
	favoriteHandler.RegisterRoutes(apiGroup)

	return router
}
