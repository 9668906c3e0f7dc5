package places

import (
	"context"
	"sync"
	"time"

	"tripweaver/internal/config"
)

// AutocompleteFunc is the provider call the suggester debounces.
type AutocompleteFunc func(ctx context.Context, input string) ([]Prediction, error)

// Suggester tracks interest in exactly one autocomplete input at a time.
// Each keystroke supersedes the previous one: the request only fires
// after a quiet debounce window, and a response is applied only if its
// originating input is still the latest. Stale responses are dropped
// rather than overwriting newer results.
type Suggester struct {
	fetch    AutocompleteFunc
	debounce time.Duration

	mu      sync.Mutex
	gen     uint64
	input   string
	results []Prediction
}

// NewSuggester wraps a provider call with default debounce.
func NewSuggester(fetch AutocompleteFunc) *Suggester {
	return NewSuggesterWithDebounce(fetch, config.AutocompleteDebounce)
}

// NewSuggesterWithDebounce allows tuning the quiet window (tests use a
// short one).
func NewSuggesterWithDebounce(fetch AutocompleteFunc, debounce time.Duration) *Suggester {
	return &Suggester{fetch: fetch, debounce: debounce}
}

// Suggest registers input as the latest interest, waits out the debounce
// window, and queries the provider. The second return value is false when
// the call was superseded by a newer input, in which case the result is
// discarded and the stored results are left untouched.
func (s *Suggester) Suggest(ctx context.Context, input string) ([]Prediction, bool, error) {
	s.mu.Lock()
	s.gen++
	myGen := s.gen
	s.input = input
	s.mu.Unlock()

	if s.debounce > 0 {
		timer := time.NewTimer(s.debounce)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, false, ctx.Err()
		case <-timer.C:
		}
	}

	if s.superseded(myGen) {
		return nil, false, nil
	}

	preds, err := s.fetch(ctx, input)
	if err != nil {
		return nil, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != myGen {
		// A newer keystroke arrived while the request was in flight.
		return nil, false, nil
	}
	s.results = preds
	return preds, true, nil
}

// Results returns the predictions from the last applied response.
func (s *Suggester) Results() []Prediction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

// Input returns the latest registered input.
func (s *Suggester) Input() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

func (s *Suggester) superseded(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen != gen
}
