package postgres

import (
	"context"
	"log/slog"

	"safescout/internal/domain"
	"safescout/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LocationRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewLocationRepo(pool *pgxpool.Pool, logger *slog.Logger) *LocationRepo {
	return &LocationRepo{pool: pool, logger: logger}
}

// Append inserts one tracking fix; samples are never updated or deleted.
func (p *LocationRepo) Append(ctx context.Context, sample *domain.LocationSample) error {
	const op = "postgres.Location.Append"

	const query = `
		INSERT INTO locations (id, user_id, lat, lng, accuracy, address, ts)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)
	`

	_, err := p.pool.Exec(ctx, query,
		sample.ID,
		sample.UserID,
		sample.Center.Lat,
		sample.Center.Lng,
		sample.Accuracy,
		sample.Address,
		sample.Timestamp,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *LocationRepo) ListByOwner(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.LocationSample, error) {
	const op = "postgres.Location.ListByOwner"

	const query = `
		SELECT id, user_id, lat, lng, accuracy, COALESCE(address, ''), ts
		FROM locations
		WHERE user_id = $1
		ORDER BY ts DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var samples []*domain.LocationSample
	for rows.Next() {
		var s domain.LocationSample
		if err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.Center.Lat,
			&s.Center.Lng,
			&s.Accuracy,
			&s.Address,
			&s.Timestamp,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		samples = append(samples, &s)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return samples, nil
}
