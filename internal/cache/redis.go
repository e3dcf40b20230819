package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const previewTTL = time.Hour

// Redis backs previews with a shared Redis instance so cached HTML survives
// restarts and is shared across replicas. Read and write failures degrade
// to cache misses; the composer is cheap enough to re-run.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool) {
	v, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return v, true
}

func (r *Redis) Set(ctx context.Context, key, html string) {
	_ = r.client.Set(ctx, key, html, previewTTL).Err()
}

func (r *Redis) Invalidate(ctx context.Context, resumeID uuid.UUID) error {
	iter := r.client.Scan(ctx, 0, keyPrefix(resumeID)+":*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}
