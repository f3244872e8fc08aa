package bootstrap

import (
	"context"
	"log/slog"

	"hotel-desk/internal/infra/cache"
	"hotel-desk/internal/pkg/config"
	"hotel-desk/internal/usecase/queries"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRoomTypeCache,
	),
)

// NewRoomTypeCache falls back to a no-op cache when REDIS_ADDR is unset.
func NewRoomTypeCache(lc fx.Lifecycle, cfg config.Config) (queries.RoomTypeCache, error) {
	rdb, cleanup, err := cache.Connect(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	if rdb == nil {
		slog.Info("room type cache disabled")
		return cache.NoopRoomTypeCache{}, nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return cache.NewRoomTypeCache(rdb, cfg.Redis.TTL), nil
}
