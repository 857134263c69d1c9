package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"safescout/internal/domain"
	"safescout/internal/geo"
	"safescout/pkg/e"

	"github.com/google/uuid"
)

// ZoneService owns danger-zone reference data: admin CRUD plus the
// public nearby query. Active zones are served through the redis cache
// with a postgres fallback.
type ZoneService struct {
	repo          ZoneRepository
	cache         ZoneCache
	logger        *slog.Logger
	defaultRadius float64
	cacheTTL      time.Duration
}

func NewZoneService(repo ZoneRepository, cache ZoneCache, logger *slog.Logger, defaultRadius float64, cacheTTL time.Duration) *ZoneService {
	if defaultRadius <= 0 {
		defaultRadius = 5000
	}
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
	}
	return &ZoneService{
		repo:          repo,
		cache:         cache,
		logger:        logger,
		defaultRadius: defaultRadius,
		cacheTTL:      cacheTTL,
	}
}

func (s *ZoneService) Create(ctx context.Context, req domain.CreateDangerZoneRequest) (*domain.DangerZone, error) {
	const op = "service.Zone.Create"

	if !req.RiskLevel.Valid() {
		return nil, fmt.Errorf("%s: risk_level: %w", op, e.ErrInvalidEnum)
	}
	center := domain.Point{Lat: req.Lat, Lng: req.Lng}
	if err := center.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if req.RadiusMeters <= 0 {
		return nil, fmt.Errorf("%s: radius: %w", op, e.ErrInvalidInput)
	}
	if req.CrimeRate < 0 || req.CrimeRate > 100 {
		return nil, fmt.Errorf("%s: crime_rate: %w", op, e.ErrInvalidInput)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%s: name: %w", op, e.ErrInvalidInput)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	now := time.Now().UTC()
	zone := &domain.DangerZone{
		ID:           uuid.New(),
		Name:         name,
		Center:       center,
		RadiusMeters: req.RadiusMeters,
		RiskLevel:    req.RiskLevel,
		CrimeRate:    req.CrimeRate,
		Description:  strings.TrimSpace(req.Description),
		Active:       active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, zone); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return zone, nil
}

// Update merges the patch into the stored zone and writes the result in
// one statement. All validation happens before the write.
func (s *ZoneService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateDangerZoneRequest) (*domain.DangerZone, error) {
	const op = "service.Zone.Update"

	if req.Empty() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNoFields)
	}
	if req.RiskLevel != nil && !req.RiskLevel.Valid() {
		return nil, fmt.Errorf("%s: risk_level: %w", op, e.ErrInvalidEnum)
	}
	if req.RadiusMeters != nil && *req.RadiusMeters <= 0 {
		return nil, fmt.Errorf("%s: radius: %w", op, e.ErrInvalidInput)
	}
	if req.CrimeRate != nil && (*req.CrimeRate < 0 || *req.CrimeRate > 100) {
		return nil, fmt.Errorf("%s: crime_rate: %w", op, e.ErrInvalidInput)
	}

	zone, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%s: name: %w", op, e.ErrInvalidInput)
		}
		zone.Name = name
	}
	if req.Lat != nil {
		zone.Center.Lat = *req.Lat
	}
	if req.Lng != nil {
		zone.Center.Lng = *req.Lng
	}
	if err := zone.Center.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if req.RadiusMeters != nil {
		zone.RadiusMeters = *req.RadiusMeters
	}
	if req.RiskLevel != nil {
		zone.RiskLevel = *req.RiskLevel
	}
	if req.CrimeRate != nil {
		zone.CrimeRate = *req.CrimeRate
	}
	if req.Description != nil {
		zone.Description = strings.TrimSpace(*req.Description)
	}
	if req.Active != nil {
		zone.Active = *req.Active
	}
	zone.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, zone); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return zone, nil
}

func (s *ZoneService) Get(ctx context.Context, id uuid.UUID) (*domain.DangerZone, error) {
	return s.repo.Get(ctx, id)
}

func (s *ZoneService) List(ctx context.Context, filter domain.ZoneFilter, limit, offset int) ([]*domain.DangerZone, error) {
	limit, offset, err := normalizePage(limit, offset, 50)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter, limit, offset)
}

// Nearby returns active zones within radiusMeters of center, closest
// first. A zero radius falls back to the configured default.
func (s *ZoneService) Nearby(ctx context.Context, center domain.Point, radiusMeters float64) ([]geo.Match[domain.DangerZone], error) {
	if radiusMeters == 0 {
		radiusMeters = s.defaultRadius
	}

	zones, err := s.activeZones(ctx)
	if err != nil {
		return nil, err
	}

	return geo.WithinRadius(center, radiusMeters, zones, func(z domain.DangerZone) bool {
		return z.Active
	})
}

// activeZones reads through the cache; on a miss the postgres set is
// loaded and the cache repopulated best-effort.
func (s *ZoneService) activeZones(ctx context.Context) ([]domain.DangerZone, error) {
	if cached, err := s.cache.GetActive(ctx); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		s.logger.Warn("zone cache read failed", slog.Any("error", err))
	}

	stored, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	zones := make([]domain.DangerZone, 0, len(stored))
	for _, z := range stored {
		zones = append(zones, *z)
	}

	if err := s.cache.SetActive(ctx, zones, s.cacheTTL); err != nil {
		s.logger.Warn("zone cache write failed", slog.Any("error", err))
	}
	return zones, nil
}

func (s *ZoneService) invalidateCache(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("zone cache invalidate failed", slog.Any("error", err))
	}
}
