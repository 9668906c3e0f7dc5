package api

import (
	routes "tripweaver/internal/api/handlers"
	"tripweaver/internal/places"

	"github.com/gin-gonic/gin"
)

// SetupRouter initializes all application routes
func SetupRouter(r *gin.Engine, placesClient *places.Client) {
	// API group
	api := r.Group("/api")

	// Setup main handlers
	routes.SetupMainHandlers(r.Group(""))

	// Setup trip session handlers
	routes.SetupTripHandlers(api)

	// Setup places provider handlers
	routes.SetupPlacesHandlers(api, placesClient)
}
