package quota

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	loginLimit  = 5
	loginWindow = 15 * time.Minute
)

// LoginThrottle locks a username out after repeated failed admin
// logins. Like the device tracker, state is a Redis counter with a TTL
// so the lockout holds across instances.
type LoginThrottle struct {
	rdb    Commands
	limit  int64
	window time.Duration
}

func NewLoginThrottle(rdb Commands) *LoginThrottle {
	return &LoginThrottle{rdb: rdb, limit: loginLimit, window: loginWindow}
}

func (l *LoginThrottle) key(username string) string {
	return "quota:login:" + strings.ToLower(username)
}

// Blocked reports whether the username is locked out and for how long.
func (l *LoginThrottle) Blocked(ctx context.Context, username string) (bool, time.Duration, error) {
	count, err := l.rdb.Get(ctx, l.key(username)).Int64()
	if errors.Is(err, redis.Nil) {
		return false, 0, nil
	}
	if err != nil {
		return false, 0, err
	}
	if count < l.limit {
		return false, 0, nil
	}
	ttl, err := l.rdb.PTTL(ctx, l.key(username)).Result()
	if err != nil {
		return false, 0, err
	}
	if ttl <= 0 {
		ttl = l.window
	}
	return true, ttl, nil
}

// RecordFailure counts one failed login attempt.
func (l *LoginThrottle) RecordFailure(ctx context.Context, username string) error {
	key := l.key(username)
	if err := l.rdb.Incr(ctx, key).Err(); err != nil {
		return err
	}
	return l.rdb.ExpireNX(ctx, key, l.window).Err()
}

// Reset clears the counter after a successful login.
func (l *LoginThrottle) Reset(ctx context.Context, username string) error {
	return l.rdb.Del(ctx, l.key(username)).Err()
}
