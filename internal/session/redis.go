package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLocationStore keeps session locations in Redis with a TTL.
type RedisLocationStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisLocationStore(client *redis.Client, ttl time.Duration) *RedisLocationStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisLocationStore{client: client, ttl: ttl}
}

func locationKey(sessionID string) string {
	return fmt.Sprintf("session:location:%s", sessionID)
}

func (s *RedisLocationStore) GetLocation(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", nil
	}

	val, err := s.client.Get(ctx, locationKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read session location: %w", err)
	}

	return val, nil
}

func (s *RedisLocationStore) SetLocation(ctx context.Context, sessionID, zipSlug string) error {
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}

	if err := s.client.Set(ctx, locationKey(sessionID), zipSlug, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session location: %w", err)
	}

	return nil
}
