package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DailyPickStore keeps the movie-of-the-day selection stable for a full UTC
// day. Key format: motd:<yyyy-mm-dd>, value: movie id, expiring at the next
// midnight so stale picks never survive into a new day.
type DailyPickStore struct {
	client *redis.Client
}

// NewDailyPickStore creates a DailyPickStore wrapping the given Redis client.
func NewDailyPickStore(client *redis.Client) *DailyPickStore {
	return &DailyPickStore{client: client}
}

// Get returns the cached movie id for the day, or "" when no pick exists yet.
func (s *DailyPickStore) Get(ctx context.Context, day string) (string, error) {
	id, err := s.client.Get(ctx, s.key(day)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("daily pick get: %w", err)
	}
	return id, nil
}

// Set records the day's pick with the given expiry.
func (s *DailyPickStore) Set(ctx context.Context, day, movieID string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return s.client.Set(ctx, s.key(day), movieID, ttl).Err()
}

func (s *DailyPickStore) key(day string) string {
	return "motd:" + day
}
