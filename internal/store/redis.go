package store

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

// Redis maps the store contract directly onto GET/SET/DEL. Values never
// expire; the gallery owns its keys for the lifetime of the deployment.
type Redis struct {
	Client *redis.Client
}

func NewRedis(addr, password string, db int) *Redis {
	return &Redis{Client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.Client.Get(ctx, Prefix(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	return r.Client.Set(ctx, Prefix(key), value, 0).Err()
}

func (r *Redis) Remove(ctx context.Context, key string) error {
	return r.Client.Del(ctx, Prefix(key)).Err()
}

func (r *Redis) Close() error {
	return r.Client.Close()
}
