package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API v1 routes. The health endpoint stays
// open for liveness checks; everything else sits behind the API-key
// middleware when keys are configured.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	if len(h.cfg.APIKeys) > 0 {
		protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}

	areas := protected.Group("/areas")
	{
		areas.POST("", h.createArea)
		areas.GET("", h.listAreas)
		areas.GET("/:id", h.getArea)
		areas.DELETE("/:id", h.deleteArea)
	}

	protected.GET("/indices", h.listIndices)

	monitoring := protected.Group("/monitoring")
	{
		monitoring.POST("/calculate", h.calculate)
		monitoring.GET("/data", h.listData)
		monitoring.GET("/summary", h.seriesSummary)
		monitoring.PUT("/configurations", h.upsertConfiguration)
		monitoring.GET("/configurations", h.listConfigurations)
	}

	alerts := protected.Group("/alerts")
	{
		alerts.GET("", h.listAlerts)
		alerts.GET("/stats", h.alertStats)
		alerts.POST("/:id/resolve", h.resolveAlert)
	}
}
