package concurrency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Redis lock defaults
const (
	DefaultRedisLockTTL  = 5 * time.Second
	DefaultRedisLockPoll = 25 * time.Millisecond
	RedisLockKeyPrefix   = "sigilforge:lock:"
)

// releaseScript deletes the key only if it still holds our token, so a lock
// that expired and was taken by another instance is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker serializes work on a key across every process sharing one Redis
type RedisLocker struct {
	client redis.UniversalClient
	ttl    time.Duration
	poll   time.Duration
}

// NewRedisLocker creates a RedisLocker. ttl bounds how long a crashed holder
// can block others; it must exceed the longest critical section.
func NewRedisLocker(client redis.UniversalClient, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = DefaultRedisLockTTL
	}
	return &RedisLocker{
		client: client,
		ttl:    ttl,
		poll:   DefaultRedisLockPoll,
	}
}

// Lock polls SET NX until the key is acquired or ctx is done
func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	redisKey := RedisLockKeyPrefix + key
	token := uuid.NewString()

	ticker := time.NewTicker(l.poll)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire redis lock %s: %w", key, err)
		}
		if ok {
			return l.releaseFunc(redisKey, token), nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (l *RedisLocker) releaseFunc(redisKey, token string) func() {
	return func() {
		// Release on a fresh context: the caller's may already be cancelled
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, l.client, []string{redisKey}, token).Err(); err != nil {
			slog.Warn("Failed to release redis lock", "key", redisKey, "error", err)
		}
	}
}

// Ping checks connectivity to Redis
func (l *RedisLocker) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}

// Close closes the underlying client
func (l *RedisLocker) Close() error {
	return l.client.Close()
}
