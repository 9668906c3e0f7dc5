package worker

import (
	"log"
	"time"

	"tripweaver/internal/config"
	"tripweaver/internal/service/session"
)

// StartSessionSweeper starts the worker that drops idle trip sessions.
// Sessions have no persistence beyond the process; the sweeper just
// keeps abandoned ones from accumulating.
func StartSessionSweeper() {
	sessionService := session.GetSessionService()

	ticker := time.NewTicker(config.SessionSweepInterval)
	go func() {
		for range ticker.C {
			cutoff := time.Now().Add(-config.SessionIdleTimeout)
			if removed := sessionService.SweepIdle(cutoff); removed > 0 {
				log.Printf("Session sweeper: removed %d idle sessions", removed)
			}
		}
	}()

	log.Println("Session sweeper started with interval:", config.SessionSweepInterval)
}
