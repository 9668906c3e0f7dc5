package routes

import (
	"net/http"

	"tripweaver/internal/places"
	"tripweaver/internal/service/storage"

	"github.com/gin-gonic/gin"
)

var (
	placesClient *places.Client

	// One suggester per search box, keyed by the client-supplied session
	// token. Keeps the "only the latest input wins" guarantee per box.
	suggesters = storage.NewMemoryStorage[string, *places.Suggester]()
)

// SetupPlacesHandlers registers the places provider endpoints
func SetupPlacesHandlers(router *gin.RouterGroup, client *places.Client) {
	placesClient = client

	placesGroup := router.Group("/places")

	placesGroup.GET("/autocomplete", Autocomplete)
	placesGroup.GET("/details", PlaceDetails)
}

// Autocomplete returns ranked predictions for a partial input. The
// request is debounced per search box; a response superseded by a newer
// keystroke is reported as stale and carries no predictions.
func Autocomplete(c *gin.Context) {
	input := c.Query("input")
	boxKey := c.DefaultQuery("session", "default")

	sug, exists := suggesters.Get(boxKey)
	if !exists {
		sug = places.NewSuggester(placesClient.Autocomplete)
		suggesters.Set(boxKey, sug)
	}

	preds, applied, err := sug.Suggest(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"detail": err.Error()})
		return
	}
	if !applied {
		c.JSON(http.StatusOK, gin.H{"predictions": []places.Prediction{}, "stale": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{"predictions": preds})
}

// PlaceDetails resolves a prediction's place id to name and coordinates.
func PlaceDetails(c *gin.Context) {
	placeID := c.Query("place_id")
	if placeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "place_id is required"})
		return
	}

	details, err := placesClient.Details(c.Request.Context(), placeID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, details)
}
