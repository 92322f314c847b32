package quota

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// fakeRedis implements Commands on in-memory maps.
type fakeRedis struct {
	values  map[string]int64
	ttls    map[string]time.Duration
	expires int
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]int64{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(strconv.FormatInt(v, 10), nil)
}

func (f *fakeRedis) PTTL(ctx context.Context, key string) *redis.DurationCmd {
	ttl, ok := f.ttls[key]
	if !ok {
		ttl = -1
	}
	return redis.NewDurationResult(ttl, nil)
}

func (f *fakeRedis) Incr(ctx context.Context, key string) *redis.IntCmd {
	f.values[key]++
	return redis.NewIntResult(f.values[key], nil)
}

func (f *fakeRedis) ExpireNX(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	f.expires++
	if _, ok := f.ttls[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.ttls[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, key := range keys {
		if _, ok := f.values[key]; ok {
			delete(f.values, key)
			delete(f.ttls, key)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestTracker_AllowsFreshToken(t *testing.T) {
	tracker := NewTracker(newFakeRedis())
	dec, err := tracker.Check(context.Background(), "dev-1")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !dec.Allowed {
		t.Fatal("fresh token should be allowed")
	}
}

func TestTracker_DeniesAtLimitWithRetryAfter(t *testing.T) {
	rdb := newFakeRedis()
	tracker := NewTracker(rdb)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		dec, err := tracker.Check(ctx, "dev-1")
		if err != nil || !dec.Allowed {
			t.Fatalf("booking %d should be allowed: %+v %v", i+1, dec, err)
		}
		if err := tracker.Record(ctx, "dev-1"); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	rdb.ttls["quota:device:dev-1"] = 90 * time.Minute
	dec, err := tracker.Check(ctx, "dev-1")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if dec.Allowed {
		t.Fatal("third booking inside the window must be denied")
	}
	if dec.RetryAfter != 90*time.Minute {
		t.Fatalf("RetryAfter = %v, want remaining window 90m", dec.RetryAfter)
	}
}

func TestTracker_WindowExpiryResets(t *testing.T) {
	rdb := newFakeRedis()
	tracker := NewTracker(rdb)
	ctx := context.Background()

	tracker.Record(ctx, "dev-1")
	tracker.Record(ctx, "dev-1")
	// Redis drops the key when the TTL runs out.
	rdb.Del(ctx, "quota:device:dev-1")

	dec, err := tracker.Check(ctx, "dev-1")
	if err != nil || !dec.Allowed {
		t.Fatalf("expired window should reset the counter: %+v %v", dec, err)
	}
}

func TestTracker_RecordStartsWindowOnce(t *testing.T) {
	rdb := newFakeRedis()
	tracker := NewTracker(rdb)
	ctx := context.Background()

	tracker.Record(ctx, "dev-1")
	tracker.Record(ctx, "dev-1")

	if rdb.values["quota:device:dev-1"] != 2 {
		t.Fatalf("count = %d, want 2", rdb.values["quota:device:dev-1"])
	}
	if rdb.ttls["quota:device:dev-1"] != 3*time.Hour {
		t.Fatalf("window TTL = %v, want 3h", rdb.ttls["quota:device:dev-1"])
	}
}

func TestTracker_CounterWithoutTTLReportsFullWindow(t *testing.T) {
	rdb := newFakeRedis()
	rdb.values["quota:device:dev-1"] = 2
	// no TTL recorded: PTTL reports -1
	tracker := NewTracker(rdb)

	dec, err := tracker.Check(context.Background(), "dev-1")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if dec.Allowed || dec.RetryAfter != 3*time.Hour {
		t.Fatalf("expected denial with full window, got %+v", dec)
	}
}

func TestLoginThrottle_BlocksAfterLimitAndResets(t *testing.T) {
	rdb := newFakeRedis()
	throttle := NewLoginThrottle(rdb)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		blocked, _, err := throttle.Blocked(ctx, "Admin")
		if err != nil || blocked {
			t.Fatalf("attempt %d should not be blocked: %v %v", i+1, blocked, err)
		}
		if err := throttle.RecordFailure(ctx, "Admin"); err != nil {
			t.Fatalf("RecordFailure: %v", err)
		}
	}

	blocked, retryAfter, err := throttle.Blocked(ctx, "admin") // case-insensitive key
	if err != nil {
		t.Fatalf("Blocked: %v", err)
	}
	if !blocked || retryAfter <= 0 {
		t.Fatalf("expected lockout with positive retry-after, got %v %v", blocked, retryAfter)
	}

	if err := throttle.Reset(ctx, "ADMIN"); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	blocked, _, _ = throttle.Blocked(ctx, "admin")
	if blocked {
		t.Fatal("reset should clear the lockout")
	}
}
