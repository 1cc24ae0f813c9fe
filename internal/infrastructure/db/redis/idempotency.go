package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// idempotencyTTL matches the longest plausible client retry window.
const idempotencyTTL = 24 * time.Hour

// IdempotencyStore maps an Idempotency-Key to the case id it produced.
// Key format: idem:case:<key>
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore creates an IdempotencyStore wrapping the given client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Lookup returns the case id recorded for key, and whether one exists.
func (s *IdempotencyStore) Lookup(ctx context.Context, key string) (int64, bool, error) {
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("idempotency lookup: %w", err)
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("idempotency value %q: %w", v, err)
	}
	return id, true, nil
}

// Remember records the case created for key (expires after idempotencyTTL).
func (s *IdempotencyStore) Remember(ctx context.Context, key string, caseID int64) error {
	return s.client.Set(ctx, s.key(key), strconv.FormatInt(caseID, 10), idempotencyTTL).Err()
}

func (s *IdempotencyStore) key(k string) string {
	return "idem:case:" + k
}
