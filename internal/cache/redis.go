package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is an optional Store backend for deployments that run more than one
// instance and want a shared cache. Expiry is delegated to the server-side
// TTL. Backend failures degrade to cache misses; the pipeline recomputes.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedis wraps an existing client. Keys are namespaced with prefix.
func NewRedis(client *redis.Client, ttl time.Duration, prefix string) *Redis {
	return &Redis{client: client, ttl: ttl, prefix: prefix}
}

var _ Store = (*Redis)(nil)

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("cache: redis get %q: %v", key, err)
		return nil, false
	}
	return payload, true
}

func (r *Redis) Set(ctx context.Context, key string, payload []byte) {
	if err := r.client.Set(ctx, r.prefix+key, payload, r.ttl).Err(); err != nil {
		log.Printf("cache: redis set %q: %v", key, err)
	}
}
