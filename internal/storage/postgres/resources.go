package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"safescout/internal/domain"
	"safescout/pkg/e"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ResourceRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewResourceRepo(pool *pgxpool.Pool, logger *slog.Logger) *ResourceRepo {
	return &ResourceRepo{pool: pool, logger: logger}
}

const resourceColumns = `id, type, name, lat, lng, address, phone, available_24_7, created_at`

func scanResource(row pgx.Row) (*domain.SafetyResource, error) {
	var r domain.SafetyResource
	err := row.Scan(
		&r.ID,
		&r.Type,
		&r.Name,
		&r.Center.Lat,
		&r.Center.Lng,
		&r.Address,
		&r.Phone,
		&r.Available247,
		&r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (p *ResourceRepo) Create(ctx context.Context, res *domain.SafetyResource) error {
	const op = "postgres.Resource.Create"

	const query = `
		INSERT INTO safety_resources (id, type, name, lat, lng, address, phone, available_24_7, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := p.pool.Exec(ctx, query,
		res.ID,
		res.Type,
		res.Name,
		res.Center.Lat,
		res.Center.Lng,
		res.Address,
		res.Phone,
		res.Available247,
		res.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *ResourceRepo) List(ctx context.Context, filter domain.ResourceFilter, limit, offset int) ([]*domain.SafetyResource, error) {
	const op = "postgres.Resource.List"

	query := `SELECT ` + resourceColumns + ` FROM safety_resources WHERE 1=1`
	args := make([]any, 0, 4)

	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(` AND type = $%d`, len(args))
	}
	if filter.Available247 != nil {
		args = append(args, *filter.Available247)
		query += fmt.Sprintf(` AND available_24_7 = $%d`, len(args))
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

	return collectResources(ctx, op, rows, p.logger)
}

// ListAll returns every resource (optionally one type) for proximity
// queries; the candidate set is reference-data sized.
func (p *ResourceRepo) ListAll(ctx context.Context, typeFilter domain.ResourceType) ([]*domain.SafetyResource, error) {
	const op = "postgres.Resource.ListAll"

	query := `SELECT ` + resourceColumns + ` FROM safety_resources`
	args := make([]any, 0, 1)
	if typeFilter != "" {
		args = append(args, typeFilter)
		query += ` WHERE type = $1`
	}

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	return collectResources(ctx, op, rows, p.logger)
}

func collectResources(ctx context.Context, op string, rows pgx.Rows, logger *slog.Logger) ([]*domain.SafetyResource, error) {
	var resources []*domain.SafetyResource
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		resources = append(resources, res)
	}
	if err := rows.Err(); err != nil {
		logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return resources, nil
}
