// Package quota bounds booking creation per device token and failed
// admin logins per username. Counters live in Redis so the caps hold
// across server instances; each window is the counter key's TTL.
package quota

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Commands is the slice of Redis used here. *redis.Client satisfies it;
// tests supply a fake.
type Commands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	PTTL(ctx context.Context, key string) *redis.DurationCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	ExpireNX(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Decision is the outcome of a quota check.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

const (
	bookingLimit  = 2
	bookingWindow = 3 * time.Hour
)

// Tracker caps bookings per device token at bookingLimit within a
// fixed bookingWindow that starts with the window's first booking.
type Tracker struct {
	rdb    Commands
	limit  int64
	window time.Duration
}

func NewTracker(rdb Commands) *Tracker {
	return &Tracker{rdb: rdb, limit: bookingLimit, window: bookingWindow}
}

func (t *Tracker) key(token string) string {
	return "quota:device:" + token
}

// Check reads the token's counter without mutating it; the count is
// only consumed after the booking actually commits (see Record).
func (t *Tracker) Check(ctx context.Context, token string) (Decision, error) {
	count, err := t.rdb.Get(ctx, t.key(token)).Int64()
	if errors.Is(err, redis.Nil) {
		return Decision{Allowed: true}, nil
	}
	if err != nil {
		return Decision{}, err
	}
	if count < t.limit {
		return Decision{Allowed: true}, nil
	}
	ttl, err := t.rdb.PTTL(ctx, t.key(token)).Result()
	if err != nil {
		return Decision{}, err
	}
	if ttl <= 0 {
		// Counter without an expiry (lost between INCR and EXPIRE);
		// report the full window rather than blocking forever silently.
		ttl = t.window
	}
	return Decision{RetryAfter: ttl}, nil
}

// Record counts one committed booking against the token. INCR is atomic
// server-side, so concurrent bookings from the same device cannot lose
// updates; ExpireNX starts the window on the first booking only.
func (t *Tracker) Record(ctx context.Context, token string) error {
	key := t.key(token)
	if err := t.rdb.Incr(ctx, key).Err(); err != nil {
		return err
	}
	return t.rdb.ExpireNX(ctx, key, t.window).Err()
}
