// Package cache holds the redis backed stores.
package cache

import (
	"context"
	"log/slog"
	"time"

	"shop/config"
	"shop/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyPrefix = "shop:idempotency:"

// keyValueClient is the subset of redis.Cmdable the store needs.
type keyValueClient interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisIdempotencyStore struct {
	client keyValueClient
	ttl    time.Duration
}

func newRedisIdempotencyStore(client keyValueClient, ttl time.Duration) *redisIdempotencyStore {
	return &redisIdempotencyStore{client: client, ttl: ttl}
}

// Reserve claims key with SET NX so only the first request wins until the TTL passes.
func (s *redisIdempotencyStore) Reserve(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.SetNX(ctx, keyPrefix+key, time.Now().UTC().Format(time.RFC3339Nano), s.ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to reserve idempotency key")
	}

	return ok, nil
}

func (s *redisIdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return errors.Wrap(err, "failed to release idempotency key")
	}

	return nil
}

// noopIdempotencyStore accepts every key.
type noopIdempotencyStore struct{}

func (noopIdempotencyStore) Reserve(context.Context, string) (bool, error) { return true, nil }

func (noopIdempotencyStore) Release(context.Context, string) error { return nil }

// Params holds dependencies for the redis client, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewIdempotencyStore connects to redis when it is configured. Without redis
// every key is accepted and duplicate payments are not detected.
func NewIdempotencyStore(params Params) service.IdempotencyStore {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Warn("Redis not configured, idempotency keys are not enforced")

		return noopIdempotencyStore{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrapf(err, "failed to ping redis at %s", cfg.Addr)
			}
			params.Logger.Info("Redis connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing redis client")

			return errors.WithStack(client.Close())
		},
	})

	return newRedisIdempotencyStore(client, cfg.IdempotencyTTL)
}

// Module provides the cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewIdempotencyStore),
)
