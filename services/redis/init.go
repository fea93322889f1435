package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// InitRedis connects to Redis and checks the connection with a PING.
func InitRedis(ctx context.Context, addr string, db int, ttl time.Duration) (*RedisClient, error) {
	rc, err := NewRedisClient(addr, db, ttl)
	if err != nil {
		return nil, err
	}

	if err := rc.client.Ping(ctx).Err(); err != nil {
		rc.client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("connected to Redis", "addr", rc.client.Options().Addr)
	return rc, nil
}

// CloseRedis gracefully closes the Redis connection
func CloseRedis(rc *RedisClient) error {
	if err := rc.client.Close(); err != nil {
		return fmt.Errorf("error closing Redis connection: %w", err)
	}
	return nil
}
