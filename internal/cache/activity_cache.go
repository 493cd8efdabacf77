package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"jornada-registro-api/internal/domain"
)

const activeActivitiesKey = "jornada:activities:active"

// ActivityCache caches the active activity schedule. The schedule is read by
// every visitor of the registration page but changes rarely, so a short TTL
// keeps the database out of the hot path.
type ActivityCache interface {
	GetActive(ctx context.Context) ([]domain.Activity, bool)
	SetActive(ctx context.Context, activities []domain.Activity)
	InvalidateActive(ctx context.Context)
}

// ActivityCacheImpl implements ActivityCache backed by Redis. A nil client
// disables caching; every operation degrades to a miss.
type ActivityCacheImpl struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewActivityCache creates a new activity cache
func NewActivityCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) ActivityCache {
	return &ActivityCacheImpl{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *ActivityCacheImpl) GetActive(ctx context.Context) ([]domain.Activity, bool) {
	if c.client == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, activeActivitiesKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Failed to read activity cache", zap.Error(err))
		}
		return nil, false
	}

	var activities []domain.Activity
	if err := json.Unmarshal(payload, &activities); err != nil {
		c.logger.Warn("Failed to decode activity cache, invalidating", zap.Error(err))
		c.InvalidateActive(ctx)
		return nil, false
	}

	return activities, true
}

func (c *ActivityCacheImpl) SetActive(ctx context.Context, activities []domain.Activity) {
	if c.client == nil {
		return
	}

	payload, err := json.Marshal(activities)
	if err != nil {
		c.logger.Warn("Failed to encode activity cache", zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, activeActivitiesKey, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("Failed to write activity cache", zap.Error(err))
	}
}

func (c *ActivityCacheImpl) InvalidateActive(ctx context.Context) {
	if c.client == nil {
		return
	}

	if err := c.client.Del(ctx, activeActivitiesKey).Err(); err != nil {
		c.logger.Warn("Failed to invalidate activity cache", zap.Error(err))
	}
}
