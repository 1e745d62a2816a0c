package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/opsportal/opsportal/internal/shared/logger"
)

const (
	roomLockPrefix = "opsportal:lock:room:"
	roomLockRetry  = 50 * time.Millisecond
)

// ErrRoomLockTimeout is returned when another booking holds the room for longer than the wait budget.
var ErrRoomLockTimeout = errors.New("room is being booked by another request")

// releaseScript deletes the key only while it still holds our token, so a lock
// that expired and was taken by someone else is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RoomLocker serialises check-then-insert on a single room.
type RoomLocker interface {
	// Lock blocks until the room lock is held, wait elapses or ctx is done.
	// The returned unlock func is safe to call once.
	Lock(ctx context.Context, roomID uint) (unlock func(), err error)
}

type RedisRoomLocker struct {
	client *redis.Client
	ttl    time.Duration
	wait   time.Duration
	logger logger.Interface
}

// NewRedisRoomLocker holds each lock for at most ttl and waits up to ttl to acquire one.
func NewRedisRoomLocker(client *redis.Client, ttl time.Duration, log logger.Interface) *RedisRoomLocker {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &RedisRoomLocker{
		client: client,
		ttl:    ttl,
		wait:   ttl,
		logger: log,
	}
}

func (l *RedisRoomLocker) Lock(ctx context.Context, roomID uint) (func(), error) {
	key := fmt.Sprintf("%s%d", roomLockPrefix, roomID)
	token := uuid.NewString()

	deadline := time.Now().Add(l.wait)
	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire room lock: %w", err)
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return nil, ErrRoomLockTimeout
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(roomLockRetry):
		}
	}

	return func() {
		// release on a fresh context so a cancelled request still frees the room
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
			l.logger.Warnw("failed to release room lock", "room_id", roomID, "error", err)
		}
	}, nil
}

// NoopRoomLocker is used when Redis is disabled. Concurrent bookings of one room may then both pass the overlap check.
type NoopRoomLocker struct{}

func (NoopRoomLocker) Lock(context.Context, uint) (func(), error) {
	return func() {}, nil
}

var (
	_ RoomLocker = (*RedisRoomLocker)(nil)
	_ RoomLocker = NoopRoomLocker{}
)
