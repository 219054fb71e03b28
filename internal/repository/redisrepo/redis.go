package redisrepo

import (
	"context"

	"github.com/SkillSwap/feed-service/internal/repository"
	"github.com/redis/go-redis/v9"
)

type redisKV struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) repository.KV {
	return &redisKV{
		rdb: rdb,
	}
}

func (r *redisKV) Get(ctx context.Context, key string) (string, error) {
	value, err := r.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", repository.ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}

	return value, nil
}

func (r *redisKV) Set(ctx context.Context, key string, value string) error {
	return r.rdb.Set(ctx, key, value, 0).Err()
}

func (r *redisKV) Del(ctx context.Context, keys ...string) error {
	return r.rdb.Del(ctx, keys...).Err()
}

func (r *redisKV) Close() error {
	return r.rdb.Close()
}
