package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "resp:"

// Redis is a response cache backed by a Redis server, for fleets spread over
// several processes. TTL is enforced by Redis itself; capacity is left to the
// server's eviction policy.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a Redis-backed cache and verifies the connection
func NewRedis(addr, password string, db int, ttl time.Duration) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &Redis{client: client, ttl: ttl}, nil
}

// Get returns the cached reply if present; Redis expiry handles the TTL
func (r *Redis) Get(ctx context.Context, fingerprint string) (string, bool) {
	value, err := r.client.Get(ctx, redisKeyPrefix+fingerprint).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			lgr.Printf("[WARN] redis cache get failed: %v", err)
		}
		return "", false
	}
	return value, true
}

// Put stores a reply with the configured TTL
func (r *Redis) Put(ctx context.Context, fingerprint, reply string) {
	if err := r.client.Set(ctx, redisKeyPrefix+fingerprint, reply, r.ttl).Err(); err != nil {
		lgr.Printf("[WARN] redis cache put failed: %v", err)
	}
}

// Clear removes all response entries, leaving unrelated keys alone
func (r *Redis) Clear(ctx context.Context) {
	iter := r.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		lgr.Printf("[WARN] redis cache scan failed: %v", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		lgr.Printf("[WARN] redis cache clear failed: %v", err)
	}
}

// Close releases the underlying client
func (r *Redis) Close() error {
	return r.client.Close()
}
