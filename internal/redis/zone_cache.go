package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"safescout/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// ZoneCache holds the active danger-zone set in front of the postgres
// full scan. A cache miss returns (nil, nil); callers fall back to the
// store and repopulate.
type ZoneCache struct {
	client *goredis.Client
	key    string
}

func NewZoneCache(r *Redis) *ZoneCache {
	return &ZoneCache{
		client: r.Client,
		key:    "zones:active",
	}
}

func (c *ZoneCache) GetActive(ctx context.Context) ([]domain.DangerZone, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var zones []domain.DangerZone
	if err := json.Unmarshal(data, &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

func (c *ZoneCache) SetActive(ctx context.Context, zones []domain.DangerZone, ttl time.Duration) error {
	b, err := json.Marshal(zones)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}

// Invalidate drops the cached set after any zone mutation.
func (c *ZoneCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
