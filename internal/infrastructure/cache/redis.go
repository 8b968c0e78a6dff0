package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"notekeeper/internal/app/server/config"
)

// SessionCache is a TTL'd token-hash -> user-id map in Redis, fronting the
// sessions table.
type SessionCache struct {
	client *redis.Client
}

func NewSessionCache(cfg *config.Config) (*SessionCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	return &SessionCache{client: client}, nil
}

func sessionKey(tokenHash string) string {
	return "session:" + tokenHash
}

func (c *SessionCache) Get(ctx context.Context, tokenHash string) (string, bool, error) {
	val, err := c.client.Get(ctx, sessionKey(tokenHash)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache get: %w", err)
	}
	return val, true, nil
}

func (c *SessionCache) Set(ctx context.Context, tokenHash, userID string, ttl time.Duration) error {
	return c.client.Set(ctx, sessionKey(tokenHash), userID, ttl).Err()
}

func (c *SessionCache) Del(ctx context.Context, tokenHash string) error {
	return c.client.Del(ctx, sessionKey(tokenHash)).Err()
}

func (c *SessionCache) Close() error {
	return c.client.Close()
}
