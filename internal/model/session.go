package model

import "time"

// TripSession is the aggregate for one planning session. It is owned
// exclusively by the session service; views read snapshots and mutate
// only through the service's operations.
type TripSession struct {
	ThreadID string          `json:"thread_id"`
	Params   *TripParameters `json:"trip_params,omitempty"`
	Phase    Phase           `json:"phase"`

	// WorkingLocations is the user-visible, user-editable set.
	WorkingLocations []Location `json:"locations"`

	// OriginalLocations is the set as first received from the backend.
	// Captured exactly once, never mutated after capture; used only as
	// the baseline for computing removals.
	OriginalLocations []Location `json:"-"`

	// RemovedOriginalIDs accumulates ids the user removed from the
	// baseline. Monotonic until the session is reset.
	RemovedOriginalIDs []string `json:"-"`

	Itinerary *Itinerary `json:"itinerary,omitempty"`

	// Transient view state, shared between list and map. Not part of
	// the edit diff. SelectedDay 0 means "all days".
	SelectedDay           int    `json:"selected_day"`
	HighlightedLocationID string `json:"highlighted_location_id,omitempty"`

	LastActivity time.Time `json:"-"`
}

// HasBaseline reports whether the discovery result has been captured.
func (s *TripSession) HasBaseline() bool {
	return len(s.OriginalLocations) > 0
}

// InBaseline reports whether id belongs to the captured baseline.
func (s *TripSession) InBaseline(id string) bool {
	for _, loc := range s.OriginalLocations {
		if loc.ID == id {
			return true
		}
	}
	return false
}
