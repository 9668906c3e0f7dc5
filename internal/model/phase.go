package model

import "fmt"

// Phase is the trip session's lifecycle stage. It gates which
// operations are legal: editing the location set is only allowed
// before generation, and only one generation may run at a time.
type Phase string

const (
	// PhaseDiscovery: the backend has returned candidate locations,
	// the user has not edited the set yet.
	PhaseDiscovery Phase = "discovery"
	// PhaseEditing: the user is curating the location set.
	PhaseEditing Phase = "editing"
	// PhaseGenerating: an itinerary request is in flight.
	PhaseGenerating Phase = "generating"
	// PhaseComplete: the itinerary is available. Terminal for this
	// cycle; starting over requires a full session reset.
	PhaseComplete Phase = "complete"
)

// ErrPhaseTransition is returned when a transition is not in the
// allowed edge set.
type ErrPhaseTransition struct {
	From Phase
	To   Phase
}

func (e *ErrPhaseTransition) Error() string {
	return fmt.Sprintf("illegal phase transition %s -> %s", e.From, e.To)
}

var phaseEdges = map[Phase][]Phase{
	PhaseDiscovery:  {PhaseEditing, PhaseGenerating},
	PhaseEditing:    {PhaseGenerating},
	PhaseGenerating: {PhaseComplete, PhaseEditing},
	PhaseComplete:   {},
}

// Valid reports whether p is one of the four known phases.
func (p Phase) Valid() bool {
	_, ok := phaseEdges[p]
	return ok
}

// CanTransition reports whether the edge p -> to exists.
func (p Phase) CanTransition(to Phase) bool {
	for _, next := range phaseEdges[p] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition returns the new phase or an *ErrPhaseTransition if the
// edge is not allowed. Phases never self-loop.
func (p Phase) Transition(to Phase) (Phase, error) {
	if !p.CanTransition(to) {
		return p, &ErrPhaseTransition{From: p, To: to}
	}
	return to, nil
}

// Editable reports whether the location set may still be changed.
func (p Phase) Editable() bool {
	return p == PhaseDiscovery || p == PhaseEditing
}
