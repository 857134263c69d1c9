package service

import (
	"context"
	"time"

	"safescout/internal/domain"
	"safescout/pkg/e"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

type ZoneRepository interface {
	Create(ctx context.Context, zone *domain.DangerZone) error
	Get(ctx context.Context, id uuid.UUID) (*domain.DangerZone, error)
	Update(ctx context.Context, zone *domain.DangerZone) error
	List(ctx context.Context, filter domain.ZoneFilter, limit, offset int) ([]*domain.DangerZone, error)
	ListActive(ctx context.Context) ([]*domain.DangerZone, error)
}

type ZoneCache interface {
	GetActive(ctx context.Context) ([]domain.DangerZone, error)
	SetActive(ctx context.Context, zones []domain.DangerZone, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type ResourceRepository interface {
	Create(ctx context.Context, res *domain.SafetyResource) error
	List(ctx context.Context, filter domain.ResourceFilter, limit, offset int) ([]*domain.SafetyResource, error)
	ListAll(ctx context.Context, typeFilter domain.ResourceType) ([]*domain.SafetyResource, error)
}

type ScoreRepository interface {
	Create(ctx context.Context, score *domain.AreaSafetyScore) error
	List(ctx context.Context, limit, offset int) ([]*domain.AreaSafetyScore, error)
	ListAll(ctx context.Context) ([]*domain.AreaSafetyScore, error)
}

type SOSRepository interface {
	Create(ctx context.Context, alert *domain.SOSAlert) error
	GetOwned(ctx context.Context, id, userID uuid.UUID) (*domain.SOSAlert, error)
	UpdateOwned(ctx context.Context, alert *domain.SOSAlert) error
	ListByOwner(ctx context.Context, userID uuid.UUID, status domain.SOSStatus, limit, offset int) ([]*domain.SOSAlert, error)
}

type IncidentRepository interface {
	Create(ctx context.Context, inc *domain.IncidentReport) error
	Get(ctx context.Context, id uuid.UUID) (*domain.IncidentReport, error)
	Update(ctx context.Context, inc *domain.IncidentReport) error
	List(ctx context.Context, filter domain.IncidentFilter, limit, offset int) ([]*domain.IncidentReport, error)
	ListByOwner(ctx context.Context, userID uuid.UUID, status domain.IncidentStatus, limit, offset int) ([]*domain.IncidentReport, error)
}

type LocationRepository interface {
	Append(ctx context.Context, sample *domain.LocationSample) error
	ListByOwner(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.LocationSample, error)
}

type ChatRepository interface {
	Append(ctx context.Context, msg *domain.ChatMessage) error
	ListByOwner(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.ChatMessage, error)
}

type ZoneEntryRepository interface {
	Save(ctx context.Context, ev domain.ZoneEntryEvent) error
	ListRecent(ctx context.Context, limit, offset int) ([]*domain.ZoneEntry, error)
}

type ZoneEntryQueue interface {
	Enqueue(ctx context.Context, ev domain.ZoneEntryEvent) error
}

// Service aggregates the per-family services for the HTTP layer.
type Service struct {
	Zones     *ZoneService
	Resources *ResourceService
	Scores    *ScoreService
	SOS       *SOSService
	Incidents *IncidentService
	Locations *LocationService
	Chat      *ChatService
	Entries   *ZoneEntryService
}

func NewService(
	zones *ZoneService,
	resources *ResourceService,
	scores *ScoreService,
	sos *SOSService,
	incidents *IncidentService,
	locations *LocationService,
	chat *ChatService,
	entries *ZoneEntryService,
) *Service {
	return &Service{
		Zones:     zones,
		Resources: resources,
		Scores:    scores,
		SOS:       sos,
		Incidents: incidents,
		Locations: locations,
		Chat:      chat,
		Entries:   entries,
	}
}

const maxPageLimit = 100

// normalizePage applies the per-endpoint default, caps limit at 100 and
// rejects negative values with ErrInvalidPagination.
func normalizePage(limit, offset, def int) (int, int, error) {
	if limit == 0 {
		limit = def
	}
	if limit < 1 || offset < 0 {
		return 0, 0, e.ErrInvalidPagination
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return limit, offset, nil
}
