package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T) *RedisRateLimiter {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisRateLimiter(client)
}

// steppingClock advances one millisecond per call so sorted-set members stay unique.
func steppingClock(start time.Time) func() time.Time {
	cur := start
	return func() time.Time {
		cur = cur.Add(time.Millisecond)
		return cur
	}
}

func TestRedisRateLimiter_PerMinute(t *testing.T) {
	limiter := newTestLimiter(t)
	limiter.now = steppingClock(time.Now())
	ctx := context.Background()
	policy := Policy{RequestsPerMinute: 5}

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "ip:10.0.0.1", policy)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "ip:10.0.0.1", policy)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = limiter.Allow(ctx, "ip:10.0.0.2", policy)
	require.NoError(t, err)
	assert.True(t, allowed, "keys are counted independently")
}

func TestRedisRateLimiter_WindowSlides(t *testing.T) {
	limiter := newTestLimiter(t)
	start := time.Now()
	limiter.now = func() time.Time { return start }
	ctx := context.Background()
	policy := Policy{RequestsPerMinute: 1}

	allowed, err := limiter.Allow(ctx, "k", policy)
	require.NoError(t, err)
	assert.True(t, allowed)

	limiter.now = func() time.Time { return start.Add(time.Second) }
	allowed, err = limiter.Allow(ctx, "k", policy)
	require.NoError(t, err)
	assert.False(t, allowed)

	limiter.now = func() time.Time { return start.Add(2 * time.Minute) }
	allowed, err = limiter.Allow(ctx, "k", policy)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	limiter := newTestLimiter(t)
	limiter.now = steppingClock(time.Now())
	ctx := context.Background()
	policy := Policy{RequestsPerHour: 1}

	_, err := limiter.Allow(ctx, "k", policy)
	require.NoError(t, err)
	allowed, err := limiter.Allow(ctx, "k", policy)
	require.NoError(t, err)
	assert.False(t, allowed)

	require.NoError(t, limiter.Reset(ctx, "k"))

	allowed, err = limiter.Allow(ctx, "k", policy)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestPolicy_Enabled(t *testing.T) {
	assert.False(t, Policy{}.Enabled())
	assert.True(t, Policy{RequestsPerHour: 1}.Enabled())
}
