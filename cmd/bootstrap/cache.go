package bootstrap

import (
	"context"
	"log/slog"

	"stay-admin/internal/infra/cache"
	"stay-admin/internal/pkg/config"
	"stay-admin/internal/usecase/shared"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCache,
	),
)

// NewCache returns a no-op store when REDIS_ADDR is empty.
func NewCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.Cache, error) {
	if !cfg.Redis.Enabled() {
		logger.Info("redis cache disabled")
		return cache.NoopStore{}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, cleanup, err := cache.Connect(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return cache.NewRedisStore(client, cfg.Redis.TTL, logger), nil
}
