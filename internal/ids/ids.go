// Package ids mints identifiers for fold runs, grounded on
// turtacn-KeyIP-Intelligence's use of github.com/google/uuid for
// distributed-lock/request identifiers (internal/infrastructure/database/redis/lock.go).
package ids

import "github.com/google/uuid"

// NewRunID returns a fresh random identifier for one fold run, suitable for
// correlating log lines emitted during that run.
func NewRunID() string {
	return uuid.New().String()
}
