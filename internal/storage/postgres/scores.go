package postgres

import (
	"context"
	"log/slog"

	"safescout/internal/domain"
	"safescout/pkg/e"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ScoreRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewScoreRepo(pool *pgxpool.Pool, logger *slog.Logger) *ScoreRepo {
	return &ScoreRepo{pool: pool, logger: logger}
}

const scoreColumns = `id, area_name, lat, lng, safety_score, crime_rate, crowd_density, recent_incidents, last_updated`

func scanScore(row pgx.Row) (*domain.AreaSafetyScore, error) {
	var s domain.AreaSafetyScore
	err := row.Scan(
		&s.ID,
		&s.AreaName,
		&s.Center.Lat,
		&s.Center.Lng,
		&s.SafetyScore,
		&s.CrimeRate,
		&s.CrowdDensity,
		&s.RecentIncidents,
		&s.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (p *ScoreRepo) Create(ctx context.Context, score *domain.AreaSafetyScore) error {
	const op = "postgres.Score.Create"

	const query = `
		INSERT INTO area_safety_scores (id, area_name, lat, lng, safety_score, crime_rate, crowd_density, recent_incidents, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := p.pool.Exec(ctx, query,
		score.ID,
		score.AreaName,
		score.Center.Lat,
		score.Center.Lng,
		score.SafetyScore,
		score.CrimeRate,
		score.CrowdDensity,
		score.RecentIncidents,
		score.LastUpdated,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *ScoreRepo) List(ctx context.Context, limit, offset int) ([]*domain.AreaSafetyScore, error) {
	const op = "postgres.Score.List"

	query := `SELECT ` + scoreColumns + ` FROM area_safety_scores ORDER BY area_name LIMIT $1 OFFSET $2`

	rows, err := p.pool.Query(ctx, query, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	return collectScores(ctx, op, rows, p.logger)
}

func (p *ScoreRepo) ListAll(ctx context.Context) ([]*domain.AreaSafetyScore, error) {
	const op = "postgres.Score.ListAll"

	query := `SELECT ` + scoreColumns + ` FROM area_safety_scores`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	return collectScores(ctx, op, rows, p.logger)
}

func collectScores(ctx context.Context, op string, rows pgx.Rows, logger *slog.Logger) ([]*domain.AreaSafetyScore, error) {
	var scores []*domain.AreaSafetyScore
	for rows.Next() {
		score, err := scanScore(rows)
		if err != nil {
			logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		scores = append(scores, score)
	}
	if err := rows.Err(); err != nil {
		logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return scores, nil
}
