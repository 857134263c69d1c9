package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"safescout/internal/domain"
	"safescout/pkg/e"

	"github.com/redis/go-redis/v9"
)

// ZoneEntryQueue buffers danger-zone entry events between the location
// track path and the recorder worker.
type ZoneEntryQueue struct {
	client *redis.Client
	key    string
}

func NewZoneEntryQueue(client *redis.Client, key string) *ZoneEntryQueue {
	return &ZoneEntryQueue{client: client, key: key}
}

func (q *ZoneEntryQueue) Enqueue(ctx context.Context, ev domain.ZoneEntryEvent) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *ZoneEntryQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.ZoneEntryEvent, error) {
	var ev domain.ZoneEntryEvent

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ev, e.ErrQueueEmpty
		}
		return ev, err
	}
	if len(res) < 2 {
		return ev, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &ev); err != nil {
		return ev, err
	}
	return ev, nil
}
