package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"tripweaver/internal/config"
	"tripweaver/internal/model"
	"tripweaver/internal/planner"
	"tripweaver/internal/service/storage"
	"tripweaver/internal/util"
)

var (
	// ErrSessionNotFound is returned for unknown thread ids.
	ErrSessionNotFound = errors.New("session not found")
	// ErrNotEditable is returned when a location edit arrives outside
	// the discovery/editing phases.
	ErrNotEditable = errors.New("location set is not editable in the current phase")
	// ErrEmptyWorkingSet rejects generation with nothing to plan.
	ErrEmptyWorkingSet = errors.New("cannot generate an itinerary with no locations")
	// ErrGenerationInFlight rejects a second generation request while
	// one is already running for the session.
	ErrGenerationInFlight = errors.New("itinerary generation already in progress")
	// ErrInvalidDay rejects a day filter outside the itinerary.
	ErrInvalidDay = errors.New("invalid day selection")
	// ErrInvalidParams rejects trip parameters outside the supported
	// bounds. The HTTP layer enforces the same bounds through binding
	// tags; this guards callers that reach the service directly.
	ErrInvalidParams = errors.New("invalid trip parameters")
)

// SessionService is the process-wide holder of trip sessions. Every
// mutation of a TripSession goes through one of its operations; an
// operation either fully applies or leaves the session untouched.
type SessionService struct {
	storage storage.Storage[string, *model.TripSession]
	planner planner.API

	// opsMutex serializes session mutations. The domain is modeled as
	// single-threaded and event-driven; the only suspension points are
	// the outbound network calls, which run outside this lock.
	opsMutex sync.Mutex
}

var (
	sessionServiceInstance *SessionService
	sessionServiceOnce     sync.Once
)

// GetSessionService returns the singleton instance of SessionService.
func GetSessionService() *SessionService {
	sessionServiceOnce.Do(func() {
		sessionServiceInstance = &SessionService{
			storage: storage.NewMemoryStorage[string, *model.TripSession](),
		}
	})
	return sessionServiceInstance
}

// NewSessionService builds an independent service instance. Tests use
// this to avoid sharing the singleton's state.
func NewSessionService(p planner.API) *SessionService {
	return &SessionService{
		storage: storage.NewMemoryStorage[string, *model.TripSession](),
		planner: p,
	}
}

// InitService wires the planner backend client. Must be called before
// any operation that reaches the backend.
func (s *SessionService) InitService(p planner.API) {
	s.planner = p
}

// StartTrip asks the backend to open a planning session and discover
// candidate locations, then creates the local session around the result.
func (s *SessionService) StartTrip(ctx context.Context, params model.TripParameters) (*model.TripSession, error) {
	if params.NumDays < config.MinTripDays || params.NumDays > config.MaxTripDays {
		return nil, fmt.Errorf("%w: num_days must be between %d and %d",
			ErrInvalidParams, config.MinTripDays, config.MaxTripDays)
	}
	if len(params.Notes) > config.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidParams, config.MaxNotesLength)
	}

	resp, err := s.planner.StartTrip(ctx, planner.StartTripRequest{TripParams: params})
	if err != nil {
		return nil, err
	}

	s.opsMutex.Lock()
	defer s.opsMutex.Unlock()

	sess := &model.TripSession{
		ThreadID:     resp.ThreadID,
		Params:       &params,
		Phase:        model.PhaseDiscovery,
		LastActivity: time.Now(),
	}
	s.ingestDiscovery(sess, resp.Locations)
	s.storage.Set(sess.ThreadID, sess)

	log.Printf("Started trip %s: %d locations discovered for %q",
		sess.ThreadID, len(resp.Locations), params.Destination)

	return snapshot(sess), nil
}

// SyncState refreshes a session from the backend's view of it, creating
// the local session if this process has never seen the thread. Repeated
// syncs never disturb the captured baseline or accumulated removals.
func (s *SessionService) SyncState(ctx context.Context, threadID string) (*model.TripSession, error) {
	state, err := s.planner.GetState(ctx, threadID)
	if err != nil {
		return nil, err
	}

	s.opsMutex.Lock()
	defer s.opsMutex.Unlock()

	sess, exists := s.storage.Get(threadID)
	if !exists {
		sess = &model.TripSession{
			ThreadID: threadID,
			Phase:    model.PhaseDiscovery,
		}
		if state.Phase.Valid() {
			sess.Phase = state.Phase
		}
		s.storage.Set(threadID, sess)
	}

	if state.TripParams != nil {
		sess.Params = state.TripParams
	}
	s.ingestDiscovery(sess, state.Locations)
	if state.Itinerary != nil {
		sess.Itinerary = state.Itinerary
	}
	sess.LastActivity = time.Now()

	return snapshot(sess), nil
}

// ingestDiscovery applies a backend location set. The first non-empty
// set becomes the immutable baseline for diffing; every later sync only
// refreshes the working set, preserving removals across cycles.
func (s *SessionService) ingestDiscovery(sess *model.TripSession, locations []model.Location) {
	if len(locations) == 0 {
		return
	}
	if !sess.HasBaseline() {
		sess.OriginalLocations = append([]model.Location(nil), locations...)
	}
	sess.WorkingLocations = append([]model.Location(nil), locations...)
}

// Get returns a copy of the session, or ErrSessionNotFound.
func (s *SessionService) Get(threadID string) (*model.TripSession, error) {
	s.opsMutex.Lock()
	defer s.opsMutex.Unlock()

	sess, exists := s.storage.Get(threadID)
	if !exists {
		return nil, ErrSessionNotFound
	}
	return snapshot(sess), nil
}

// AddLocation appends a user-constructed location to the working set.
// The id is client-generated; the backend learns about the location only
// through the edit diff at generation time.
func (s *SessionService) AddLocation(threadID, name string, lat, lng float64, placeID, note string) (model.Location, error) {
	s.opsMutex.Lock()
	defer s.opsMutex.Unlock()

	sess, exists := s.storage.Get(threadID)
	if !exists {
		return model.Location{}, ErrSessionNotFound
	}
	if !sess.Phase.Editable() {
		return model.Location{}, fmt.Errorf("%w: phase is %s", ErrNotEditable, sess.Phase)
	}

	loc := model.Location{
		ID:             util.UserLocationID(),
		Name:           name,
		Lat:            lat,
		Lng:            lng,
		WhyThisFitsYou: "Added by you",
		PlaceID:        placeID,
		UserAdded:      true,
		UserNote:       note,
	}
	sess.WorkingLocations = append(sess.WorkingLocations, loc)
	s.markEdited(sess)

	return loc, nil
}

// RemoveLocation drops a location from the working set. Baseline
// locations are additionally recorded in the removal set so the backend
// hears about the removal; user-added ones simply vanish.
func (s *SessionService) RemoveLocation(threadID, locationID string) error {
	s.opsMutex.Lock()
	defer s.opsMutex.Unlock()

	sess, exists := s.storage.Get(threadID)
	if !exists {
		return ErrSessionNotFound
	}
	if !sess.Phase.Editable() {
		return fmt.Errorf("%w: phase is %s", ErrNotEditable, sess.Phase)
	}

	found := false
	kept := sess.WorkingLocations[:0]
	for _, loc := range sess.WorkingLocations {
		if loc.ID == locationID {
			found = true
			continue
		}
		kept = append(kept, loc)
	}
	if !found {
		return fmt.Errorf("location %s not in working set", locationID)
	}
	sess.WorkingLocations = kept

	if sess.InBaseline(locationID) && !containsID(sess.RemovedOriginalIDs, locationID) {
		sess.RemovedOriginalIDs = append(sess.RemovedOriginalIDs, locationID)
	}

	if sess.HighlightedLocationID == locationID {
		sess.HighlightedLocationID = ""
	}
	s.markEdited(sess)

	return nil
}

// markEdited moves a freshly discovered session into editing on its
// first edit and refreshes the activity clock.
func (s *SessionService) markEdited(sess *model.TripSession) {
	if sess.Phase == model.PhaseDiscovery {
		sess.Phase = model.PhaseEditing
	}
	sess.LastActivity = time.Now()
}

// ComputeEditDiff projects the minimal edit description for the
// backend: baseline ids the user removed plus the full bodies of
// user-added locations. Pure; safe to call any number of times.
func (s *SessionService) ComputeEditDiff(threadID string) (model.LocationEditDiff, error) {
	s.opsMutex.Lock()
	defer s.opsMutex.Unlock()

	sess, exists := s.storage.Get(threadID)
	if !exists {
		return model.LocationEditDiff{}, ErrSessionNotFound
	}
	return computeDiff(sess), nil
}

func computeDiff(sess *model.TripSession) model.LocationEditDiff {
	diff := model.LocationEditDiff{
		RemovedIDs:     append([]string(nil), sess.RemovedOriginalIDs...),
		AddedLocations: []model.Location{},
	}
	for _, loc := range sess.WorkingLocations {
		if loc.UserAdded {
			diff.AddedLocations = append(diff.AddedLocations, loc)
		}
	}
	return diff
}

// GenerateItinerary submits the current edit diff and ingests the
// resulting day-by-day plan. Only one generation may be in flight per
// session; a failure returns the session to editing with the working
// set and diff untouched, so a retry submits the same edits.
func (s *SessionService) GenerateItinerary(ctx context.Context, threadID string) (*planner.GenerateItineraryResponse, error) {
	s.opsMutex.Lock()
	sess, exists := s.storage.Get(threadID)
	if !exists {
		s.opsMutex.Unlock()
		return nil, ErrSessionNotFound
	}
	if sess.Phase == model.PhaseGenerating {
		s.opsMutex.Unlock()
		return nil, ErrGenerationInFlight
	}
	if len(sess.WorkingLocations) == 0 {
		s.opsMutex.Unlock()
		return nil, ErrEmptyWorkingSet
	}

	prevPhase := sess.Phase
	next, err := sess.Phase.Transition(model.PhaseGenerating)
	if err != nil {
		s.opsMutex.Unlock()
		return nil, err
	}
	sess.Phase = next
	diff := computeDiff(sess)
	s.opsMutex.Unlock()

	resp, err := s.planner.GenerateItinerary(ctx, threadID, planner.GenerateItineraryRequest{Edits: diff})

	s.opsMutex.Lock()
	defer s.opsMutex.Unlock()
	sess.LastActivity = time.Now()

	if err != nil {
		// The failure edge lands in editing even when generation was
		// requested straight out of discovery.
		sess.Phase = model.PhaseEditing
		log.Printf("Itinerary generation failed for %s (was %s): %v", threadID, prevPhase, err)
		return nil, err
	}

	sess.Itinerary = &resp.Itinerary
	if len(resp.FinalLocations) > 0 {
		sess.WorkingLocations = append([]model.Location(nil), resp.FinalLocations...)
	}
	sess.Phase = model.PhaseComplete
	sess.SelectedDay = 0

	if len(resp.RouteWarnings) > 0 {
		log.Printf("Itinerary for %s generated with %d route warnings", threadID, len(resp.RouteWarnings))
	}

	return resp, nil
}

// SetSelectedDay changes the shared day filter. Day 0 means "all days";
// a positive day must exist in the itinerary.
func (s *SessionService) SetSelectedDay(threadID string, day int) error {
	s.opsMutex.Lock()
	defer s.opsMutex.Unlock()

	sess, exists := s.storage.Get(threadID)
	if !exists {
		return ErrSessionNotFound
	}
	if day < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}
	if day > 0 {
		if sess.Itinerary == nil {
			return fmt.Errorf("%w: no itinerary yet", ErrInvalidDay)
		}
		if _, ok := sess.Itinerary.DayLookup(day); !ok {
			return fmt.Errorf("%w: itinerary has no day %d", ErrInvalidDay, day)
		}
	}
	sess.SelectedDay = day
	sess.LastActivity = time.Now()
	return nil
}

// SetHighlightedLocation sets or clears the single shared highlight id.
// Both the list and the map mutate this one field; neither keeps its own.
func (s *SessionService) SetHighlightedLocation(threadID, locationID string) error {
	s.opsMutex.Lock()
	defer s.opsMutex.Unlock()

	sess, exists := s.storage.Get(threadID)
	if !exists {
		return ErrSessionNotFound
	}
	sess.HighlightedLocationID = locationID
	sess.LastActivity = time.Now()
	return nil
}

// Reset discards a session entirely. "Plan a new trip" is a reset plus
// a fresh StartTrip with a new thread id, never a phase rollback.
func (s *SessionService) Reset(threadID string) bool {
	s.opsMutex.Lock()
	defer s.opsMutex.Unlock()
	return s.storage.Delete(threadID)
}

// Count returns the number of live sessions.
func (s *SessionService) Count() int {
	return s.storage.Count()
}

// SweepIdle drops sessions with no activity since the cutoff and
// returns how many were removed. The scan holds opsMutex: the storage
// mutex only guards the map, while LastActivity is written by the
// request path under opsMutex.
func (s *SessionService) SweepIdle(cutoff time.Time) int {
	s.opsMutex.Lock()
	defer s.opsMutex.Unlock()

	var stale []string
	s.storage.ForEach(func(id string, sess *model.TripSession) bool {
		if sess.LastActivity.Before(cutoff) {
			stale = append(stale, id)
		}
		return true
	})

	removed := 0
	for _, id := range stale {
		if s.storage.Delete(id) {
			removed++
		}
	}
	return removed
}

func containsID(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}

// snapshot copies a session so callers never hold a reference into the
// store's mutable state.
func snapshot(sess *model.TripSession) *model.TripSession {
	copied := *sess
	copied.WorkingLocations = append([]model.Location(nil), sess.WorkingLocations...)
	copied.OriginalLocations = append([]model.Location(nil), sess.OriginalLocations...)
	copied.RemovedOriginalIDs = append([]string(nil), sess.RemovedOriginalIDs...)
	if sess.Itinerary != nil {
		it := *sess.Itinerary
		it.Days = append([]model.DayPlan(nil), sess.Itinerary.Days...)
		copied.Itinerary = &it
	}
	return &copied
}
