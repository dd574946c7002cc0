package sessionstore

import (
	"context"
	"encoding/json"
	"time"

	"apartment-booking/internal/domain/booking"
	"apartment-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "booking:session:"

func sessionKey(id uuid.UUID) string {
	return sessionKeyPrefix + id.String()
}

// RedisStore keeps JSON snapshots under booking:session:<id> with a sliding TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) Get(ctx context.Context, id uuid.UUID) (*booking.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err == redis.Nil {
		return nil, infra.WrapRepoErr("booking session not found", nil, infra.KindNotFound)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read booking session", err, infra.KindCacheFailure)
	}

	var snap booking.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking session", err, infra.KindCorruptData)
	}
	s, err := booking.ReconstructSession(snap)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to restore booking session", err, infra.KindCorruptData)
	}
	return s, nil
}

func (r *RedisStore) Save(ctx context.Context, s *booking.Session) error {
	payload, err := json.Marshal(s.Snapshot())
	if err != nil {
		return infra.WrapRepoErr("failed to encode booking session", err, infra.KindCorruptData)
	}
	if err := r.client.Set(ctx, sessionKey(s.ID()), payload, r.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to write booking session", err, infra.KindCacheFailure)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return infra.WrapRepoErr("failed to delete booking session", err, infra.KindCacheFailure)
	}
	return nil
}
