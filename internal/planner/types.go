package planner

import "tripweaver/internal/model"

// Wire shapes for the external trip-planning backend. Field names match
// the backend's JSON contract.

type StartTripRequest struct {
	TripParams model.TripParameters `json:"trip_params"`
}

type StartTripResponse struct {
	ThreadID  string           `json:"thread_id"`
	Locations []model.Location `json:"locations"`
}

type TripStateResponse struct {
	ThreadID   string                `json:"thread_id"`
	Phase      model.Phase           `json:"phase"`
	TripParams *model.TripParameters `json:"trip_params,omitempty"`
	Locations  []model.Location      `json:"locations"`
	Itinerary  *model.Itinerary      `json:"itinerary,omitempty"`
}

type GenerateItineraryRequest struct {
	Edits model.LocationEditDiff `json:"edits"`
}

type GenerateItineraryResponse struct {
	Itinerary        model.Itinerary  `json:"itinerary"`
	FinalLocations   []model.Location `json:"final_locations"`
	ValidationPassed bool             `json:"validation_passed"`
	ValidationErrors []string         `json:"validation_errors"`
	RouteWarnings    []string         `json:"route_warnings,omitempty"`
}

type errorBody struct {
	Detail string `json:"detail"`
}
