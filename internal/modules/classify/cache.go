// README: Redis-backed label cache; misses and redis errors fall back to live classification.
package classify

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache memoizes classification labels per normalized query. It is strictly
// best-effort: every redis error degrades to a cache miss.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCache returns a Cache over the given redis client.
func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

func cacheKey(kind, query string) string {
	sum := sha256.Sum256([]byte(query))
	return "classify:" + kind + ":" + hex.EncodeToString(sum[:16])
}

func (c *Cache) get(ctx context.Context, kind, query string) (string, bool) {
	if c == nil || c.rdb == nil {
		return "", false
	}
	v, err := c.rdb.Get(ctx, cacheKey(kind, query)).Result()
	if err != nil {
		return "", false
	}
	return v, true
}

func (c *Cache) set(ctx context.Context, kind, query, label string) {
	if c == nil || c.rdb == nil {
		return
	}
	_ = c.rdb.Set(ctx, cacheKey(kind, query), label, c.ttl).Err()
}
