package dedup

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "lead:idem:"

// Redis keeps idempotency keys in a shared cache so deduplication survives
// restarts and spans instances. Expiry rides on the key TTL, so there is no
// scan-and-purge pass here.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{client: client, ttl: ttl}
}

// Seen records key with SET NX so the check and the write are a single
// round trip. When the cache is unreachable the submission is delivered
// anyway — dedup is best effort, losing a duplicate beats losing a lead.
func (r *Redis) Seen(ctx context.Context, key string) (bool, error) {
	set, err := r.client.SetNX(ctx, keyPrefix+key, 1, r.ttl).Result()
	if err != nil {
		log.Printf("⚠️ Dedup: redis unavailable, skipping check: %v", err)
		return false, nil
	}
	return !set, nil
}

// Ping reports cache reachability for the health endpoint.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
