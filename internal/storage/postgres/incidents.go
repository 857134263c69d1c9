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

type IncidentRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewIncidentRepo(pool *pgxpool.Pool, logger *slog.Logger) *IncidentRepo {
	return &IncidentRepo{pool: pool, logger: logger}
}

const incidentColumns = `id, user_id, lat, lng, incident_type, description, threat_level, COALESCE(photo_url, ''), COALESCE(video_url, ''), status, created_at, updated_at`

func scanIncident(row pgx.Row) (*domain.IncidentReport, error) {
	var inc domain.IncidentReport
	err := row.Scan(
		&inc.ID,
		&inc.UserID,
		&inc.Center.Lat,
		&inc.Center.Lng,
		&inc.IncidentType,
		&inc.Description,
		&inc.ThreatLevel,
		&inc.PhotoURL,
		&inc.VideoURL,
		&inc.Status,
		&inc.CreatedAt,
		&inc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inc, nil
}

func (p *IncidentRepo) Create(ctx context.Context, inc *domain.IncidentReport) error {
	const op = "postgres.Incident.Create"

	const query = `
		INSERT INTO incident_reports (id, user_id, lat, lng, incident_type, description, threat_level, photo_url, video_url, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), $10, $11, $12)
	`

	_, err := p.pool.Exec(ctx, query,
		inc.ID,
		inc.UserID,
		inc.Center.Lat,
		inc.Center.Lng,
		inc.IncidentType,
		inc.Description,
		inc.ThreatLevel,
		inc.PhotoURL,
		inc.VideoURL,
		inc.Status,
		inc.CreatedAt,
		inc.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// Get is deliberately not owner-scoped: incident review is open to any
// authenticated caller.
func (p *IncidentRepo) Get(ctx context.Context, id uuid.UUID) (*domain.IncidentReport, error) {
	const op = "postgres.Incident.Get"

	query := `SELECT ` + incidentColumns + ` FROM incident_reports WHERE id = $1`

	inc, err := scanIncident(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return inc, nil
}

func (p *IncidentRepo) Update(ctx context.Context, inc *domain.IncidentReport) error {
	const op = "postgres.Incident.Update"

	const query = `
		UPDATE incident_reports
		SET status = $2, threat_level = $3, description = $4, updated_at = $5
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query,
		inc.ID,
		inc.Status,
		inc.ThreatLevel,
		inc.Description,
		inc.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", inc.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (p *IncidentRepo) List(ctx context.Context, filter domain.IncidentFilter, limit, offset int) ([]*domain.IncidentReport, error) {
	const op = "postgres.Incident.List"

	query := `SELECT ` + incidentColumns + ` FROM incident_reports WHERE 1=1`
	args := make([]any, 0, 4)

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	if filter.ThreatLevel != "" {
		args = append(args, filter.ThreatLevel)
		query += fmt.Sprintf(` AND threat_level = $%d`, len(args))
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

	return collectIncidents(ctx, op, rows, p.logger)
}

func (p *IncidentRepo) ListByOwner(ctx context.Context, userID uuid.UUID, status domain.IncidentStatus, limit, offset int) ([]*domain.IncidentReport, error) {
	const op = "postgres.Incident.ListByOwner"

	query := `SELECT ` + incidentColumns + ` FROM incident_reports WHERE user_id = $1`
	args := []any{userID}

	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
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

	return collectIncidents(ctx, op, rows, p.logger)
}

func collectIncidents(ctx context.Context, op string, rows pgx.Rows, logger *slog.Logger) ([]*domain.IncidentReport, error) {
	var incidents []*domain.IncidentReport
	for rows.Next() {
		inc, err := scanIncident(rows)
		if err != nil {
			logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		incidents = append(incidents, inc)
	}
	if err := rows.Err(); err != nil {
		logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return incidents, nil
}
