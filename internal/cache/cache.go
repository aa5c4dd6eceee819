package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Daily summary payload: sales:daily:{YYYY-MM-DD}
	KeyDailySummary = "sales:daily:%s"

	opTimeout = 2 * time.Second
)

// Cache stores JSON-encoded aggregate payloads. A miss or any backend failure
// reads as "not cached" so callers always fall back to the store.
type Cache interface {
	Get(key string, dst any) bool
	Set(key string, value any)
}

type redisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedis(rdb *redis.Client, ttl time.Duration) Cache {
	return &redisCache{rdb: rdb, ttl: ttl}
}

// NewClient mirrors the pool defaults used across services; it does not dial.
func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  opTimeout,
		ReadTimeout:  opTimeout,
		WriteTimeout: opTimeout,
	})
}

func (c *redisCache) Get(key string, dst any) bool {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("cache: get %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		log.Printf("cache: decode %s: %v", key, err)
		return false
	}
	return true
}

func (c *redisCache) Set(key string, value any) {
	b, err := json.Marshal(value)
	if err != nil {
		log.Printf("cache: encode %s: %v", key, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
		log.Printf("cache: set %s: %v", key, err)
	}
}

// Nop never stores anything
type Nop struct{}

func (Nop) Get(string, any) bool { return false }
func (Nop) Set(string, any)      {}
