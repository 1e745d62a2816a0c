package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsportal/opsportal/internal/shared/logger"
)

func setupRoomLocker(t *testing.T, ttl time.Duration) (*RedisRoomLocker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisRoomLocker(client, ttl, logger.NewNopLogger()), mr
}

func TestRedisRoomLocker_LockAndRelease(t *testing.T) {
	locker, mr := setupRoomLocker(t, time.Second)
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, 7)
	require.NoError(t, err)
	assert.True(t, mr.Exists(roomLockPrefix+"7"))

	unlock()
	assert.False(t, mr.Exists(roomLockPrefix+"7"))
}

func TestRedisRoomLocker_ContendedLockTimesOut(t *testing.T) {
	locker, _ := setupRoomLocker(t, 200*time.Millisecond)
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, 7)
	require.NoError(t, err)
	defer unlock()

	_, err = locker.Lock(ctx, 7)
	assert.ErrorIs(t, err, ErrRoomLockTimeout)

	other, err := locker.Lock(ctx, 8)
	require.NoError(t, err)
	other()
}

func TestRedisRoomLocker_WaiterAcquiresAfterRelease(t *testing.T) {
	locker, _ := setupRoomLocker(t, 2*time.Second)
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, 7)
	require.NoError(t, err)

	acquired := make(chan error, 1)
	go func() {
		u, err := locker.Lock(ctx, 7)
		if err == nil {
			u()
		}
		acquired <- err
	}()

	time.Sleep(100 * time.Millisecond)
	unlock()

	select {
	case err := <-acquired:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("waiter never acquired the room lock")
	}
}

func TestRedisRoomLocker_ReleaseKeepsForeignToken(t *testing.T) {
	locker, mr := setupRoomLocker(t, time.Second)
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, 7)
	require.NoError(t, err)

	// lock expired and someone else took it
	require.NoError(t, mr.Set(roomLockPrefix+"7", "someone-else"))
	unlock()

	got, err := mr.Get(roomLockPrefix + "7")
	require.NoError(t, err)
	assert.Equal(t, "someone-else", got)
}

func TestRedisRoomLocker_CancelledContext(t *testing.T) {
	locker, _ := setupRoomLocker(t, 2*time.Second)

	unlock, err := locker.Lock(context.Background(), 7)
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(ctx, 7)
	assert.Error(t, err)
}

func TestNoopRoomLocker(t *testing.T) {
	unlock, err := NoopRoomLocker{}.Lock(context.Background(), 1)
	require.NoError(t, err)
	unlock()
}
