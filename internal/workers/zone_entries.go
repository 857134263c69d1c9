package workers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"safescout/internal/domain"
	"safescout/internal/redis"
	"safescout/pkg/e"
)

type ZoneEntrySaver interface {
	Save(ctx context.Context, ev domain.ZoneEntryEvent) error
}

// ZoneEntryRecorder drains the redis queue filled by the location track
// path and persists each event into the postgres audit table. Entries
// survive restarts because the queue, not the worker, is the buffer.
type ZoneEntryRecorder struct {
	logger *slog.Logger
	queue  *redis.ZoneEntryQueue
	repo   ZoneEntrySaver
}

func NewZoneEntryRecorder(logger *slog.Logger, queue *redis.ZoneEntryQueue, repo ZoneEntrySaver) *ZoneEntryRecorder {
	return &ZoneEntryRecorder{
		logger: logger,
		queue:  queue,
		repo:   repo,
	}
}

func (w *ZoneEntryRecorder) Run(ctx context.Context) {
	w.logger.Info("zoneEntryRecorder STARTED")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("zoneEntryRecorder STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		ev, err := w.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			w.logger.Error("BRPop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		w.record(ctx, ev)
	}
}

// record retries a failed save so a transient postgres hiccup does not
// drop an audit row that was already popped off the queue.
func (w *ZoneEntryRecorder) record(ctx context.Context, ev domain.ZoneEntryEvent) {
	const maxRetries = 3

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			w.logger.Info("stop retries due to context cancel")
			return
		}

		err := w.repo.Save(ctx, ev)
		if err == nil {
			w.logger.Info("zone entry recorded",
				slog.String("user_id", ev.UserID.String()),
				slog.String("zone_id", ev.ZoneID.String()),
			)
			return
		}

		w.logger.Warn("zone entry save failed",
			slog.Int("attempt", attempt),
			slog.String("zone_id", ev.ZoneID.String()),
			slog.String("reason", err.Error()),
		)

		time.Sleep(time.Duration(attempt) * time.Second)
	}
}
