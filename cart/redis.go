package cart

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

// RedisKV persists client state in redis. Cart records never expire on
// their own, so no TTL is set.
type RedisKV struct {
	client *redis.Client
}

func NewRedisKV(addr string) *RedisKV {
	return &RedisKV{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (r *RedisKV) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *RedisKV) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
