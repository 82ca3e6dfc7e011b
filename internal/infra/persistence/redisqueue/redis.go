// Package redisqueue implements the offline entry queue on top of Redis.
package redisqueue

import (
	"context"
	"log/slog"
	"strconv"

	"shiplog/config"
	"shiplog/internal/domain/lifecycle"
	"shiplog/internal/errors"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the Redis client backing the offline queue.
func NewClient(params Params) (*redis.Client, error) {
	if params.Config.Redis == nil {
		return nil, errors.New("redis configuration is missing")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Host + ":" + strconv.Itoa(params.Config.Redis.Port),
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
