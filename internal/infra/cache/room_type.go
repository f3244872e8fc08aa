package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hotel-desk/internal/pkg/errs"
	"hotel-desk/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const roomTypesKey = "hotel:room_types"

// RedisClient is the subset of *redis.Client the cache uses.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type RoomTypeCache struct {
	rdb RedisClient
	ttl time.Duration
}

func NewRoomTypeCache(rdb RedisClient, ttl time.Duration) *RoomTypeCache {
	return &RoomTypeCache{rdb: rdb, ttl: ttl}
}

// GetRoomTypes reports ok=false on a miss.
func (c *RoomTypeCache) GetRoomTypes(ctx context.Context) ([]*queries.RoomTypeView, bool, error) {
	raw, err := c.rdb.Get(ctx, roomTypesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.Wrap(err, "redis get room types")
	}

	var types []*queries.RoomTypeView
	if err := json.Unmarshal(raw, &types); err != nil {
		return nil, false, errs.Wrap(err, "decode cached room types")
	}
	return types, true, nil
}

func (c *RoomTypeCache) SetRoomTypes(ctx context.Context, types []*queries.RoomTypeView) error {
	payload, err := json.Marshal(types)
	if err != nil {
		return errs.Wrap(err, "encode room types")
	}
	if err := c.rdb.Set(ctx, roomTypesKey, payload, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "redis set room types")
	}
	return nil
}

// NoopRoomTypeCache always misses.
type NoopRoomTypeCache struct{}

func (NoopRoomTypeCache) GetRoomTypes(context.Context) ([]*queries.RoomTypeView, bool, error) {
	return nil, false, nil
}

func (NoopRoomTypeCache) SetRoomTypes(context.Context, []*queries.RoomTypeView) error {
	return nil
}
