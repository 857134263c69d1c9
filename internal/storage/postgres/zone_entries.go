package postgres

import (
	"context"
	"log/slog"

	"safescout/internal/domain"
	"safescout/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ZoneEntryRepo persists the danger-zone entry audit trail fed by the
// zone-entry worker.
type ZoneEntryRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewZoneEntryRepo(pool *pgxpool.Pool, logger *slog.Logger) *ZoneEntryRepo {
	return &ZoneEntryRepo{pool: pool, logger: logger}
}

func (p *ZoneEntryRepo) Save(ctx context.Context, ev domain.ZoneEntryEvent) error {
	const op = "postgres.ZoneEntry.Save"

	const query = `
		INSERT INTO zone_entries (id, user_id, zone_id, lat, lng, distance_meters, entered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := p.pool.Exec(ctx, query,
		uuid.New(),
		ev.UserID,
		ev.ZoneID,
		ev.Center.Lat,
		ev.Center.Lng,
		ev.DistanceMeters,
		ev.EnteredAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *ZoneEntryRepo) ListRecent(ctx context.Context, limit, offset int) ([]*domain.ZoneEntry, error) {
	const op = "postgres.ZoneEntry.ListRecent"

	const query = `
		SELECT id, user_id, zone_id, lat, lng, distance_meters, entered_at
		FROM zone_entries
		ORDER BY entered_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := p.pool.Query(ctx, query, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var entries []*domain.ZoneEntry
	for rows.Next() {
		var ze domain.ZoneEntry
		if err := rows.Scan(&ze.ID, &ze.UserID, &ze.ZoneID, &ze.Center.Lat, &ze.Center.Lng, &ze.DistanceMeters, &ze.EnteredAt); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		entries = append(entries, &ze)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return entries, nil
}
