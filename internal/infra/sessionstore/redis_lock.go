package sessionstore

import (
	"context"
	"log/slog"
	"time"

	"apartment-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	lockKeyPrefix    = "booking:lock:"
	lockPollInterval = 25 * time.Millisecond
)

// Deletes the lock only while it still carries our token, so an expired holder cannot release a newer one.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker serializes session operations across instances with SET NX and a TTL.
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisLocker(client *redis.Client, ttl time.Duration) *RedisLocker {
	return &RedisLocker{client: client, ttl: ttl}
}

func (r *RedisLocker) Lock(ctx context.Context, id uuid.UUID) (func(), error) {
	key := lockKeyPrefix + id.String()
	token := uuid.NewString()

	ticker := time.NewTicker(lockPollInterval)
	defer ticker.Stop()

	for {
		ok, err := r.client.SetNX(ctx, key, token, r.ttl).Result()
		if err != nil {
			return nil, infra.WrapRepoErr("failed to acquire session lock", err, infra.KindUnavailable)
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			return nil, infra.WrapRepoErr("timed out waiting for session lock", ctx.Err(), infra.KindUnavailable)
		case <-ticker.C:
		}
	}

	return func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := releaseScript.Run(releaseCtx, r.client, []string{key}, token).Err(); err != nil {
			slog.Warn("failed to release session lock", "session_id", id, "error", err)
		}
	}, nil
}
