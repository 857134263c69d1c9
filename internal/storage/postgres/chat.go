package postgres

import (
	"context"
	"log/slog"

	"safescout/internal/domain"
	"safescout/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ChatRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewChatRepo(pool *pgxpool.Pool, logger *slog.Logger) *ChatRepo {
	return &ChatRepo{pool: pool, logger: logger}
}

func (p *ChatRepo) Append(ctx context.Context, msg *domain.ChatMessage) error {
	const op = "postgres.Chat.Append"

	const query = `
		INSERT INTO chat_messages (id, user_id, message, sender, ts)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := p.pool.Exec(ctx, query,
		msg.ID,
		msg.UserID,
		msg.Message,
		msg.Sender,
		msg.Timestamp,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// ListByOwner returns history oldest-first so conversations replay in
// order.
func (p *ChatRepo) ListByOwner(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.ChatMessage, error) {
	const op = "postgres.Chat.ListByOwner"

	const query = `
		SELECT id, user_id, message, sender, ts
		FROM chat_messages
		WHERE user_id = $1
		ORDER BY ts ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var messages []*domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.Message, &m.Sender, &m.Timestamp); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		messages = append(messages, &m)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return messages, nil
}
