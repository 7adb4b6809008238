package session

import (
	"context"
	"sync"
	"time"
)

// MemoryLocationStore is an in-process LocationStore used in tests and
// single-node development setups without Redis.
type MemoryLocationStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

type memoryEntry struct {
	zipSlug   string
	expiresAt time.Time
}

func NewMemoryLocationStore(ttl time.Duration) *MemoryLocationStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryLocationStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}
}

func (s *MemoryLocationStore) GetLocation(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", nil
	}

	s.mu.RLock()
	entry, ok := s.entries[sessionID]
	s.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return "", nil
	}

	return entry.zipSlug, nil
}

func (s *MemoryLocationStore) SetLocation(ctx context.Context, sessionID, zipSlug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[sessionID] = memoryEntry{
		zipSlug:   zipSlug,
		expiresAt: time.Now().Add(s.ttl),
	}

	return nil
}
