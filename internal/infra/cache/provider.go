package cache

import (
	"context"
	"log/slog"

	"rently/config"
	"rently/internal/domain/lifecycle"
	"rently/internal/domain/service"
	"rently/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the profile cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewProfileCache returns a Redis cache when redis.addr is set and a no-op cache otherwise.
// An unreachable Redis at startup fails the boot; later outages only degrade to cache misses.
func NewProfileCache(params Params) service.ProfileCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, profile cache disabled")

		return noopProfileCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Redis profile cache connected",
				slog.String("addr", cfg.Addr),
				slog.Duration("ttl", cfg.ProfileTTL),
			)

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return newRedisProfileCache(client, cfg.ProfileTTL)
}
