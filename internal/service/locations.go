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

// TrackResult is what a tracking call reports back: the stored sample
// plus any active danger zones the fix landed inside.
type TrackResult struct {
	Sample       *domain.LocationSample       `json:"sample"`
	ZonesEntered []geo.Match[domain.DangerZone] `json:"zones_entered,omitempty"`
}

// LocationService appends tracking fixes and detects entries into
// active danger zones. Detection reuses the zone service's cached
// active set so a burst of fixes does not hammer postgres.
type LocationService struct {
	repo   LocationRepository
	zones  *ZoneService
	queue  ZoneEntryQueue
	logger *slog.Logger
}

func NewLocationService(repo LocationRepository, zones *ZoneService, queue ZoneEntryQueue, logger *slog.Logger) *LocationService {
	return &LocationService{repo: repo, zones: zones, queue: queue, logger: logger}
}

func (s *LocationService) Track(ctx context.Context, userID uuid.UUID, req domain.TrackLocationRequest) (*TrackResult, error) {
	const op = "service.Location.Track"

	center := domain.Point{Lat: req.Lat, Lng: req.Lng}
	if err := center.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if req.Accuracy != nil && *req.Accuracy < 0 {
		return nil, fmt.Errorf("%s: accuracy: %w", op, e.ErrInvalidInput)
	}

	sample := &domain.LocationSample{
		ID:        uuid.New(),
		UserID:    userID,
		Center:    center,
		Accuracy:  req.Accuracy,
		Address:   strings.TrimSpace(req.Address),
		Timestamp: time.Now().UTC(),
	}
	if err := s.repo.Append(ctx, sample); err != nil {
		return nil, err
	}

	entered := s.detectZoneEntries(ctx, sample)

	return &TrackResult{Sample: sample, ZonesEntered: entered}, nil
}

// detectZoneEntries checks the fix against every active zone and queues
// an event per hit. Detection and queueing are best effort: the sample
// is already persisted, so failures here are logged, never returned.
func (s *LocationService) detectZoneEntries(ctx context.Context, sample *domain.LocationSample) []geo.Match[domain.DangerZone] {
	zones, err := s.zones.activeZones(ctx)
	if err != nil {
		s.logger.Error("zone entry detection skipped", slog.String("error", err.Error()))
		return nil
	}

	var entered []geo.Match[domain.DangerZone]
	for _, zone := range zones {
		dist := geo.Distance(sample.Center, zone.Center)
		if dist > zone.RadiusMeters {
			continue
		}
		entered = append(entered, geo.Match[domain.DangerZone]{Entity: zone, DistanceMeters: dist})

		ev := domain.ZoneEntryEvent{
			UserID:         sample.UserID,
			ZoneID:         zone.ID,
			Center:         sample.Center,
			DistanceMeters: dist,
			EnteredAt:      sample.Timestamp,
		}
		if err := s.queue.Enqueue(ctx, ev); err != nil {
			s.logger.Error("zone entry enqueue failed",
				slog.String("zone_id", zone.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}
	return entered
}

// ListOwned returns the caller's own tracking history, newest first.
func (s *LocationService) ListOwned(ctx context.Context, requested, actingUserID uuid.UUID, limit, offset int) ([]*domain.LocationSample, error) {
	const op = "service.Location.ListOwned"

	if requested != actingUserID {
		return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}
	limit, offset, err := normalizePage(limit, offset, 10)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByOwner(ctx, actingUserID, limit, offset)
}
