package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"safescout/internal/config"
	"safescout/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Postgres struct {
	Pool        *pgxpool.Pool
	Zone        *ZoneRepo
	Resource    *ResourceRepo
	Score       *ScoreRepo
	SOS         *SOSRepo
	Incident    *IncidentRepo
	Location    *LocationRepo
	Chat        *ChatRepo
	ZoneEntries *ZoneEntryRepo
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.SSLMode,
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("failed to parse pgx config", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}
	poolCfg.MaxConns = cfg.Postgres.MaxConns
	poolCfg.MinConns = cfg.Postgres.MinConns
	poolCfg.MaxConnLifetime = cfg.Postgres.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error("failed to create pgx pool", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Error("failed to ping postgres", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}
	logger.Info("connected to postgres")

	return &Postgres{
		Pool:        pool,
		Zone:        NewZoneRepo(pool, logger),
		Resource:    NewResourceRepo(pool, logger),
		Score:       NewScoreRepo(pool, logger),
		SOS:         NewSOSRepo(pool, logger),
		Incident:    NewIncidentRepo(pool, logger),
		Location:    NewLocationRepo(pool, logger),
		Chat:        NewChatRepo(pool, logger),
		ZoneEntries: NewZoneEntryRepo(pool, logger),
	}, nil
}
