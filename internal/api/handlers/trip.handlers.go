package routes

import (
	"errors"
	"log"
	"net/http"

	"tripweaver/internal/model"
	"tripweaver/internal/planner"
	"tripweaver/internal/service/session"

	"github.com/gin-gonic/gin"
)

// SetupTripHandlers registers the trip session endpoints
func SetupTripHandlers(router *gin.RouterGroup) {
	tripGroup := router.Group("/trip")

	tripGroup.POST("/start", StartTrip)
	tripGroup.GET("/:threadId", GetTrip)
	tripGroup.DELETE("/:threadId", ResetTrip)
	tripGroup.POST("/:threadId/generate", GenerateItinerary)
	tripGroup.GET("/:threadId/diff", GetEditDiff)
	tripGroup.POST("/:threadId/locations", AddLocation)
	tripGroup.DELETE("/:threadId/locations/:locationId", RemoveLocation)
	tripGroup.PUT("/:threadId/day", SelectDay)
	tripGroup.PUT("/:threadId/highlight", HighlightLocation)
	tripGroup.GET("/:threadId/view", GetView)
}

// StartTrip validates trip parameters and opens a new planning session.
// Malformed parameters are rejected before any network call.
func StartTrip(c *gin.Context) {
	var params model.TripParameters
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	sess, err := session.GetSessionService().StartTrip(c.Request.Context(), params)
	if err != nil {
		writeSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"thread_id": sess.ThreadID,
		"locations": sess.WorkingLocations,
	})
}

// GetTrip syncs the session from the planner backend and returns the
// full snapshot.
func GetTrip(c *gin.Context) {
	threadID := c.Param("threadId")

	sess, err := session.GetSessionService().SyncState(c.Request.Context(), threadID)
	if err != nil {
		writeSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, sess)
}

// ResetTrip discards the session; the client starts over with a fresh
// thread id via StartTrip.
func ResetTrip(c *gin.Context) {
	threadID := c.Param("threadId")

	if !session.GetSessionService().Reset(threadID) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "session not found"})
		return
	}
	log.Printf("Session %s reset", threadID)
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}

// GenerateItinerary submits the accumulated edit diff and returns the
// generated plan. Route warnings are passed through as non-fatal
// advisories.
func GenerateItinerary(c *gin.Context) {
	threadID := c.Param("threadId")

	resp, err := session.GetSessionService().GenerateItinerary(c.Request.Context(), threadID)
	if err != nil {
		writeSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetEditDiff exposes the pending edit diff without side effects.
func GetEditDiff(c *gin.Context) {
	threadID := c.Param("threadId")

	diff, err := session.GetSessionService().ComputeEditDiff(threadID)
	if err != nil {
		writeSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, diff)
}

type addLocationRequest struct {
	Name     string  `json:"name" binding:"required"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	PlaceID  string  `json:"place_id"`
	UserNote string  `json:"user_note"`
}

// AddLocation appends a user-picked place to the working set.
func AddLocation(c *gin.Context) {
	threadID := c.Param("threadId")

	var req addLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	loc, err := session.GetSessionService().AddLocation(threadID, req.Name, req.Lat, req.Lng, req.PlaceID, req.UserNote)
	if err != nil {
		writeSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, loc)
}

// RemoveLocation drops a location from the working set.
func RemoveLocation(c *gin.Context) {
	threadID := c.Param("threadId")
	locationID := c.Param("locationId")

	if err := session.GetSessionService().RemoveLocation(threadID, locationID); err != nil {
		writeSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

type selectDayRequest struct {
	Day int `json:"day"`
}

// SelectDay sets the shared day filter (0 means all days).
func SelectDay(c *gin.Context) {
	threadID := c.Param("threadId")

	var req selectDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if err := session.GetSessionService().SetSelectedDay(threadID, req.Day); err != nil {
		writeSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"selected_day": req.Day})
}

type highlightRequest struct {
	LocationID string `json:"location_id"`
}

// HighlightLocation sets or clears the single shared highlight id used
// by both the list and the map.
func HighlightLocation(c *gin.Context) {
	threadID := c.Param("threadId")

	var req highlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if err := session.GetSessionService().SetHighlightedLocation(threadID, req.LocationID); err != nil {
		writeSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"highlighted_location_id": req.LocationID})
}

// writeSessionError maps service errors onto HTTP statuses.
func writeSessionError(c *gin.Context, err error) {
	var statusErr *planner.StatusError
	var phaseErr *model.ErrPhaseTransition

	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
	case errors.Is(err, session.ErrNotEditable),
		errors.Is(err, session.ErrGenerationInFlight),
		errors.As(err, &phaseErr):
		c.JSON(http.StatusConflict, gin.H{"detail": err.Error()})
	case errors.Is(err, session.ErrEmptyWorkingSet),
		errors.Is(err, session.ErrInvalidDay),
		errors.Is(err, session.ErrInvalidParams):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case errors.As(err, &statusErr):
		c.JSON(http.StatusBadGateway, gin.H{"detail": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"detail": err.Error()})
	}
}
