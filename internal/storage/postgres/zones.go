package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"safescout/internal/domain"
	"safescout/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ZoneRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewZoneRepo(pool *pgxpool.Pool, logger *slog.Logger) *ZoneRepo {
	return &ZoneRepo{pool: pool, logger: logger}
}

const zoneColumns = `id, name, lat, lng, radius_meters, risk_level, crime_rate, COALESCE(description, ''), active, created_at, updated_at`

func scanZone(row pgx.Row) (*domain.DangerZone, error) {
	var z domain.DangerZone
	err := row.Scan(
		&z.ID,
		&z.Name,
		&z.Center.Lat,
		&z.Center.Lng,
		&z.RadiusMeters,
		&z.RiskLevel,
		&z.CrimeRate,
		&z.Description,
		&z.Active,
		&z.CreatedAt,
		&z.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &z, nil
}

func (p *ZoneRepo) Create(ctx context.Context, zone *domain.DangerZone) error {
	const op = "postgres.Zone.Create"

	const query = `
		INSERT INTO danger_zones (id, name, lat, lng, radius_meters, risk_level, crime_rate, description, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10, $11)
	`

	_, err := p.pool.Exec(ctx, query,
		zone.ID,
		zone.Name,
		zone.Center.Lat,
		zone.Center.Lng,
		zone.RadiusMeters,
		zone.RiskLevel,
		zone.CrimeRate,
		zone.Description,
		zone.Active,
		zone.CreatedAt,
		zone.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *ZoneRepo) Get(ctx context.Context, id uuid.UUID) (*domain.DangerZone, error) {
	const op = "postgres.Zone.Get"

	query := `SELECT ` + zoneColumns + ` FROM danger_zones WHERE id = $1`

	zone, err := scanZone(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return zone, nil
}

// Update rewrites the full row; partial-patch merging happens in the
// service before the write so no invalid update is ever half-applied.
func (p *ZoneRepo) Update(ctx context.Context, zone *domain.DangerZone) error {
	const op = "postgres.Zone.Update"

	const query = `
		UPDATE danger_zones
		SET name = $2, lat = $3, lng = $4, radius_meters = $5, risk_level = $6,
		    crime_rate = $7, description = NULLIF($8, ''), active = $9, updated_at = $10
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query,
		zone.ID,
		zone.Name,
		zone.Center.Lat,
		zone.Center.Lng,
		zone.RadiusMeters,
		zone.RiskLevel,
		zone.CrimeRate,
		zone.Description,
		zone.Active,
		zone.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", zone.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (p *ZoneRepo) List(ctx context.Context, filter domain.ZoneFilter, limit, offset int) ([]*domain.DangerZone, error) {
	const op = "postgres.Zone.List"

	query := `SELECT ` + zoneColumns + ` FROM danger_zones WHERE 1=1`
	args := make([]any, 0, 4)

	if !filter.IncludeInactive {
		query += ` AND active = TRUE`
	}
	if filter.RiskLevel != "" {
		args = append(args, filter.RiskLevel)
		query += fmt.Sprintf(` AND risk_level = $%d`, len(args))
	}
	args = append(args, limit)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args))
	args = append(args, offset)
	query += fmt.Sprintf(` OFFSET $%d`, len(args))

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	return collectZones(ctx, op, rows, p.logger)
}

// ListActive feeds the proximity engine and the zone cache; it returns
// every active zone without pagination.
func (p *ZoneRepo) ListActive(ctx context.Context) ([]*domain.DangerZone, error) {
	const op = "postgres.Zone.ListActive"

	query := `SELECT ` + zoneColumns + ` FROM danger_zones WHERE active = TRUE`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	return collectZones(ctx, op, rows, p.logger)
}

func collectZones(ctx context.Context, op string, rows pgx.Rows, logger *slog.Logger) ([]*domain.DangerZone, error) {
	var zones []*domain.DangerZone
	for rows.Next() {
		zone, err := scanZone(rows)
		if err != nil {
			logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return zones, nil
}
