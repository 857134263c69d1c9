package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"safescout/internal/api"
	"safescout/internal/config"
	"safescout/internal/redis"
	"safescout/internal/service"
	"safescout/internal/storage/postgres"
	"safescout/internal/workers"
	"safescout/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Recorder   *workers.ZoneEntryRecorder
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	zoneCache := redis.NewZoneCache(redisClient)
	sessions := redis.NewSessionStore(redisClient)
	entryQueue := redis.NewZoneEntryQueue(redisClient.Client, "zone-entries:queue")

	zoneSvc := service.NewZoneService(storage.Zone, zoneCache, logger, cfg.Geo.ZoneRadiusMeters, cfg.Geo.ZoneCacheTTL)
	resourceSvc := service.NewResourceService(storage.Resource, cfg.Geo.ResourceRadiusMeters)
	scoreSvc := service.NewScoreService(storage.Score)
	sosSvc := service.NewSOSService(storage.SOS, logger)
	incidentSvc := service.NewIncidentService(storage.Incident, logger)
	locationSvc := service.NewLocationService(storage.Location, zoneSvc, entryQueue, logger)
	chatSvc := service.NewChatService(storage.Chat, logger)
	entrySvc := service.NewZoneEntryService(storage.ZoneEntries, logger)

	srv := service.NewService(zoneSvc, resourceSvc, scoreSvc, sosSvc, incidentSvc, locationSvc, chatSvc, entrySvc)

	recorder := workers.NewZoneEntryRecorder(logger, entryQueue, storage.ZoneEntries)

	httpServer := api.NewServer(cfg, logger, srv, sessions)
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		Recorder:   recorder,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("all components stopped",
		slog.Duration("latency", time.Since(start)))
}
