package routes

import (
	"tripweaver/internal/config"
	"tripweaver/internal/model"
	"tripweaver/internal/service/session"

	"github.com/gin-gonic/gin"
)

// SetupMainHandlers registers the main application endpoints
func SetupMainHandlers(router *gin.RouterGroup) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service":  "tripweaver",
			"sessions": session.GetSessionService().Count(),
		})
	})

	router.GET("/api/trip/options", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"interests":     model.InterestOptions,
			"constraints":   model.ConstraintOptions,
			"travel_styles": model.TravelStyleOptions,
			"min_days":      config.MinTripDays,
			"max_days":      config.MaxTripDays,
		})
	})
}
