package config

import "time"

// Trip parameter bounds
const (
	MinTripDays = 1
	MaxTripDays = 14

	// MaxNotesLength caps the free-text notes on trip parameters
	MaxNotesLength = 500
)

// Places provider tuning
const (
	// AutocompleteMinChars is the minimum input length before the
	// places provider is queried at all
	AutocompleteMinChars = 2

	// AutocompleteDebounce bounds the request rate while typing
	AutocompleteDebounce = 300 * time.Millisecond

	// AutocompleteCacheTTL / PlaceDetailsCacheTTL control the Redis
	// cache lifetime for provider responses
	AutocompleteCacheTTL = 10 * time.Minute
	PlaceDetailsCacheTTL = 30 * time.Minute
)

// Session housekeeping
const (
	// SessionSweepInterval defines how often the sweeper looks for
	// idle sessions
	SessionSweepInterval = 5 * time.Minute

	// SessionIdleTimeout is how long a session may sit untouched
	// before the sweeper drops it
	SessionIdleTimeout = 2 * time.Hour
)
