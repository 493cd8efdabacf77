package database

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"jornada-registro-api/internal/config"
)

// NewRedis opens a Redis client from configuration. Returns (nil, nil) when
// no Redis URL is configured; callers treat a nil client as "cache disabled".
func NewRedis(cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	opts.DB = cfg.DB

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}
