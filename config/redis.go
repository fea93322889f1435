package config

import (
	"Whist/services/redis"
	"context"
	"log/slog"
	"time"
)

// ConnectRedis connects to the configured Redis server
func ConnectRedis(ctx context.Context, cfg *Config) (*redis.RedisClient, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	redisClient, err := redis.InitRedis(ctx, cfg.RedisURL, 0, cfg.RoomTTL)
	if err != nil {
		return nil, err
	}
	slog.Info("redis connection established", "room_ttl", cfg.RoomTTL)
	return redisClient, nil
}
