package model

// TravelStyle is the pacing preference for a trip.
type TravelStyle string

const (
	TravelStyleRelaxed  TravelStyle = "relaxed"
	TravelStyleBalanced TravelStyle = "balanced"
	TravelStylePacked   TravelStyle = "packed"
)

// TripParameters describes what the user asked for at trip start.
// Set once at creation, refreshed from server state on session sync.
type TripParameters struct {
	Destination string      `json:"destination" binding:"required"`
	NumDays     int         `json:"num_days" binding:"required,gte=1,lte=14"`
	TravelStyle TravelStyle `json:"travel_style" binding:"required,oneof=relaxed balanced packed"`
	Interests   []string    `json:"interests" binding:"required,min=1"`
	Constraints []string    `json:"constraints"`
	Notes       string      `json:"notes" binding:"max=500"`
}

// Location is a single place in the working set or itinerary.
// IDs are backend-issued for discovered locations and client-generated
// for user additions; unique within a session either way.
type Location struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Lat            float64 `json:"lat"`
	Lng            float64 `json:"lng"`
	WhyThisFitsYou string  `json:"why_this_fits_you"`
	PlaceID        string  `json:"place_id,omitempty"`
	UserAdded      bool    `json:"user_added"`
	UserNote       string  `json:"user_note,omitempty"`
}

// TravelSegment is the hop between two locations within a day.
// A missing polyline means the segment is an estimate, not a routed path.
type TravelSegment struct {
	FromLocationID  string  `json:"from_location_id"`
	ToLocationID    string  `json:"to_location_id"`
	DurationMinutes int     `json:"duration_minutes"`
	DistanceKm      float64 `json:"distance_km"`
	Polyline        string  `json:"polyline,omitempty"`
}

// DayPlan groups one day's ordered stops and the segments between them.
type DayPlan struct {
	DayNumber      int             `json:"day_number"`
	Locations      []Location      `json:"locations"`
	TravelTimes    []TravelSegment `json:"travel_times"`
	RouteOptimized bool            `json:"route_optimized,omitempty"`
	AreaLabel      string          `json:"area_label,omitempty"`
}

// Itinerary is the generated day-by-day plan.
type Itinerary struct {
	Days            []DayPlan `json:"days"`
	TotalLocations  int       `json:"total_locations"`
	ValidationNotes []string  `json:"validation_notes"`
}

// LocationEditDiff is the minimal edit description sent back to the
// planner backend: ids removed from the original suggestion set plus
// the full bodies of user-added locations.
type LocationEditDiff struct {
	RemovedIDs     []string   `json:"removed_ids"`
	AddedLocations []Location `json:"added_locations"`
}

// DayLookup returns the day plan with the given number, if present.
func (it *Itinerary) DayLookup(dayNumber int) (DayPlan, bool) {
	for _, day := range it.Days {
		if day.DayNumber == dayNumber {
			return day, true
		}
	}
	return DayPlan{}, false
}
