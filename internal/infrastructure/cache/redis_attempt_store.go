// Package cache implementa almacenes efímeros sobre Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/rustock/internal/application/auth"
	"github.com/jhoicas/rustock/pkg/config"
	"github.com/redis/go-redis/v9"
)

var _ auth.AttemptStore = (*RedisAttemptStore)(nil)

// NewClient abre el cliente y verifica la conexión con PING.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// RedisAttemptStore cuenta fallos de login con INCR + EXPIRE, compartido entre instancias del API.
type RedisAttemptStore struct {
	client *redis.Client
	prefix string
}

// NewRedisAttemptStore crea el store. prefix separa las claves de otras apps en el mismo Redis.
func NewRedisAttemptStore(client *redis.Client, prefix string) *RedisAttemptStore {
	return &RedisAttemptStore{client: client, prefix: prefix}
}

func (s *RedisAttemptStore) key(k string) string {
	return s.prefix + ":" + k
}

func (s *RedisAttemptStore) Failures(ctx context.Context, key string) (int, error) {
	n, err := s.client.Get(ctx, s.key(key)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get: %w", err)
	}
	return n, nil
}

// RecordFailure incrementa el contador; el TTL se fija solo en el primer fallo para que
// el bloqueo cuente desde ahí.
func (s *RedisAttemptStore) RecordFailure(ctx context.Context, key string, ttl time.Duration) (int, error) {
	k := s.key(key)
	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.ExpireNX(ctx, k, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("redis incr: %w", err)
	}
	return int(incr.Val()), nil
}

func (s *RedisAttemptStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
