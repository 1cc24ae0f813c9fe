package ports

import "context"

// IdempotencyStore remembers which case an Idempotency-Key produced so a
// retried submission replays the original instead of creating a duplicate.
type IdempotencyStore interface {
	// Lookup returns the case id recorded for key, and whether one exists.
	Lookup(ctx context.Context, key string) (int64, bool, error)
	Remember(ctx context.Context, key string, caseID int64) error
}
