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

type SOSRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSOSRepo(pool *pgxpool.Pool, logger *slog.Logger) *SOSRepo {
	return &SOSRepo{pool: pool, logger: logger}
}

const sosColumns = `id, user_id, lat, lng, status, COALESCE(message, ''), notified_contacts, created_at, resolved_at`

func scanSOS(row pgx.Row) (*domain.SOSAlert, error) {
	var a domain.SOSAlert
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Center.Lat,
		&a.Center.Lng,
		&a.Status,
		&a.Message,
		&a.NotifiedContacts,
		&a.CreatedAt,
		&a.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (p *SOSRepo) Create(ctx context.Context, alert *domain.SOSAlert) error {
	const op = "postgres.SOS.Create"

	const query = `
		INSERT INTO sos_alerts (id, user_id, lat, lng, status, message, notified_contacts, created_at, resolved_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9)
	`

	_, err := p.pool.Exec(ctx, query,
		alert.ID,
		alert.UserID,
		alert.Center.Lat,
		alert.Center.Lng,
		alert.Status,
		alert.Message,
		alert.NotifiedContacts,
		alert.CreatedAt,
		alert.ResolvedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// GetOwned scopes the lookup by owner so absence and access denial are
// indistinguishable to a non-owner.
func (p *SOSRepo) GetOwned(ctx context.Context, id, userID uuid.UUID) (*domain.SOSAlert, error) {
	const op = "postgres.SOS.GetOwned"

	query := `SELECT ` + sosColumns + ` FROM sos_alerts WHERE id = $1 AND user_id = $2`

	alert, err := scanSOS(p.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return alert, nil
}

// UpdateOwned conditions the write on ownership again so the existence
// check and the update behave as one unit under concurrency.
func (p *SOSRepo) UpdateOwned(ctx context.Context, alert *domain.SOSAlert) error {
	const op = "postgres.SOS.UpdateOwned"

	const query = `
		UPDATE sos_alerts
		SET status = $3, message = NULLIF($4, ''), resolved_at = $5
		WHERE id = $1 AND user_id = $2
	`

	cmd, err := p.pool.Exec(ctx, query,
		alert.ID,
		alert.UserID,
		alert.Status,
		alert.Message,
		alert.ResolvedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", alert.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (p *SOSRepo) ListByOwner(ctx context.Context, userID uuid.UUID, status domain.SOSStatus, limit, offset int) ([]*domain.SOSAlert, error) {
	const op = "postgres.SOS.ListByOwner"

	query := `SELECT ` + sosColumns + ` FROM sos_alerts WHERE user_id = $1`
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

	var alerts []*domain.SOSAlert
	for rows.Next() {
		alert, err := scanSOS(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return alerts, nil
}
