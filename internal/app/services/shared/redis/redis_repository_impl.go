package redis

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

type redisRepository struct {
	Client *goredis.Client
}

func NewRedisRepository(client *goredis.Client) contracts.RedisRepository {
	return &redisRepository{
		Client: client,
	}
}

// Get returns an empty string on a cache miss; only transport errors
// are surfaced.
func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	value, err := r.Client.Get(ctx, key).Result()
	if err != nil {
		if err == goredis.Nil {
			return "", nil
		}
		return "", exceptions.ErrRedisGet(err)
	}
	return value, nil
}

func (r *redisRepository) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	err := r.Client.Set(ctx, key, value, expiration).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *redisRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	err := r.Client.Del(ctx, keys...).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}
