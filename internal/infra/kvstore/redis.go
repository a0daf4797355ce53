package kvstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"room-booking-bff/internal/infra"
	"room-booking-bff/internal/pkg/config"
	"room-booking-bff/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisClient opens a client and checks the connection once.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func NewRedisStore(client *redis.Client, logger *slog.Logger) *RedisStore {
	return &RedisStore{client: client, logger: logger}
}

var _ shared.KVStore = (*RedisStore)(nil)

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, shared.ErrKeyNotFound
	}
	if err != nil {
		return nil, s.fail("get "+key, err)
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return s.fail("set "+key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return s.fail("delete "+key, err)
	}
	return nil
}

// Push prepends value and trims the list in one transaction.
func (s *RedisStore) Push(ctx context.Context, key string, value []byte, maxLen int) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, value)
		if maxLen > 0 {
			pipe.LTrim(ctx, key, 0, int64(maxLen-1))
		}
		return nil
	})
	if err != nil {
		return s.fail("push "+key, err)
	}
	return nil
}

func (s *RedisStore) Range(ctx context.Context, key string, limit int) ([][]byte, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}
	vals, err := s.client.LRange(ctx, key, 0, stop).Result()
	if err != nil {
		return nil, s.fail("range "+key, err)
	}
	out := make([][]byte, len(vals))
	for i, v := range vals {
		out[i] = []byte(v)
	}
	return out, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return s.fail("ping", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) fail(op string, err error) error {
	return infra.WrapErr(s.logger, infra.KindStoreFailure, 0, "redis "+op, err)
}
