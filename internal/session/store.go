package session

import (
	"context"
	"time"
)

// LocationStore is the ephemeral per-session location storage for
// anonymous viewers. Values live no longer than the session itself and
// are never written to the permanent user record.
//
// A missing entry is not an error: Get returns ("", nil). Concurrent
// writes for the same session (two browser tabs) are last-write-wins.
type LocationStore interface {
	// GetLocation returns the zip code slug stored for the session, or
	// "" when none is known.
	GetLocation(ctx context.Context, sessionID string) (string, error)

	// SetLocation stores the zip code slug for the session.
	SetLocation(ctx context.Context, sessionID, zipSlug string) error
}

// DefaultTTL bounds how long a session location outlives its last write.
const DefaultTTL = 14 * 24 * time.Hour
