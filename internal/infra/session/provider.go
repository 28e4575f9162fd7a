package session

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"
	"storefront/internal/util"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the session store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewSessionStore creates the store named by session.store.
func NewSessionStore(params StoreParams) (repository.SessionStore, error) {
	cfg := params.Config.Session

	switch cfg.Store {
	case constants.SessionStoreMemory, "":
		params.Logger.Info("Using in-memory delivery session store", slog.String("ttl", util.FormatDuration(cfg.TTL)))

		return NewMemoryStore(cfg.TTL), nil

	case constants.SessionStoreRedis:
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, errors.Wrap(err, "parse redis url")
		}
		client := redis.NewClient(opt)

		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := client.Ping(ctx).Err(); err != nil {
					return errors.Wrap(err, "failed to ping Redis")
				}
				params.Logger.Info("Using Redis delivery session store", slog.String("addr", opt.Addr))

				return nil
			},
			OnStop: func(context.Context) error {
				return client.Close()
			},
		})

		return NewRedisStore(client, cfg.TTL), nil

	default:
		return nil, errors.Errorf("unknown session store: %s", cfg.Store)
	}
}

// Module provides the session FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSessionStore),
)
