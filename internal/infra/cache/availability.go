package cache

import (
	"context"
	"encoding/json"
	"time"

	"apartment-booking/internal/domain/availability"
	"apartment-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const availabilityKeyPrefix = "availability:"

type cachedInterval struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

// AvailabilityCache backs the public calendar only; booking sessions always read the store.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

func (c *AvailabilityCache) Get(ctx context.Context, apartmentID uuid.UUID) ([]availability.RawInterval, bool, error) {
	data, err := c.client.Get(ctx, availabilityKeyPrefix+apartmentID.String()).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, infra.WrapRepoErr("failed to read availability cache", err, infra.KindCacheFailure)
	}

	var cached []cachedInterval
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, false, infra.WrapRepoErr("failed to decode availability cache", err, infra.KindCorruptData)
	}

	result := make([]availability.RawInterval, len(cached))
	for i, iv := range cached {
		result[i] = availability.RawInterval{CheckIn: iv.CheckIn, CheckOut: iv.CheckOut}
	}
	return result, true, nil
}

func (c *AvailabilityCache) Set(ctx context.Context, apartmentID uuid.UUID, intervals []availability.RawInterval) error {
	cached := make([]cachedInterval, len(intervals))
	for i, iv := range intervals {
		cached[i] = cachedInterval{CheckIn: iv.CheckIn, CheckOut: iv.CheckOut}
	}

	payload, err := json.Marshal(cached)
	if err != nil {
		return infra.WrapRepoErr("failed to encode availability cache", err, infra.KindCorruptData)
	}
	if err := c.client.Set(ctx, availabilityKeyPrefix+apartmentID.String(), payload, c.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to write availability cache", err, infra.KindCacheFailure)
	}
	return nil
}

// NoopAvailabilityCache always misses; used when Redis is not configured.
type NoopAvailabilityCache struct{}

func (NoopAvailabilityCache) Get(context.Context, uuid.UUID) ([]availability.RawInterval, bool, error) {
	return nil, false, nil
}

func (NoopAvailabilityCache) Set(context.Context, uuid.UUID, []availability.RawInterval) error {
	return nil
}
