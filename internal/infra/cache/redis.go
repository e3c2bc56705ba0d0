package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"stay-admin/internal/infra"
	"stay-admin/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "stayadmin:"

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisStore(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisStore {
	return &RedisStore{client: client, ttl: ttl, logger: logger}
}

// Connect opens a client and checks it answers PING.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "cache get failed", err)
	}
	return val, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, keyPrefix+key, value, s.ttl).Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "cache set failed", err)
	}
	return nil
}

// NoopStore never hits. Used when REDIS_ADDR is empty.
type NoopStore struct{}

func (NoopStore) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (NoopStore) Set(context.Context, string, []byte) error         { return nil }
