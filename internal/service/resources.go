package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"safescout/internal/domain"
	"safescout/internal/geo"
	"safescout/pkg/e"

	"github.com/google/uuid"
)

type ResourceService struct {
	repo          ResourceRepository
	defaultRadius float64
}

func NewResourceService(repo ResourceRepository, defaultRadius float64) *ResourceService {
	if defaultRadius <= 0 {
		defaultRadius = 10000
	}
	return &ResourceService{repo: repo, defaultRadius: defaultRadius}
}

func (s *ResourceService) Create(ctx context.Context, req domain.CreateSafetyResourceRequest) (*domain.SafetyResource, error) {
	const op = "service.Resource.Create"

	if !req.Type.Valid() {
		return nil, fmt.Errorf("%s: type: %w", op, e.ErrInvalidEnum)
	}
	center := domain.Point{Lat: req.Lat, Lng: req.Lng}
	if err := center.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	name := strings.TrimSpace(req.Name)
	address := strings.TrimSpace(req.Address)
	phone := strings.TrimSpace(req.Phone)
	if name == "" || address == "" || phone == "" {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if req.Available247 == nil {
		return nil, fmt.Errorf("%s: available_24_7: %w", op, e.ErrInvalidInput)
	}

	res := &domain.SafetyResource{
		ID:           uuid.New(),
		Type:         req.Type,
		Name:         name,
		Center:       center,
		Address:      address,
		Phone:        phone,
		Available247: *req.Available247,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ResourceService) List(ctx context.Context, filter domain.ResourceFilter, limit, offset int) ([]*domain.SafetyResource, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, fmt.Errorf("service.Resource.List: type: %w", e.ErrInvalidEnum)
	}
	limit, offset, err := normalizePage(limit, offset, 50)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter, limit, offset)
}

// Nearby ranks resources by distance from center, optionally restricted
// to one type. Zero radius falls back to the configured default.
func (s *ResourceService) Nearby(ctx context.Context, center domain.Point, radiusMeters float64, typeFilter domain.ResourceType) ([]geo.Match[domain.SafetyResource], error) {
	if typeFilter != "" && !typeFilter.Valid() {
		return nil, fmt.Errorf("service.Resource.Nearby: type: %w", e.ErrInvalidEnum)
	}
	if radiusMeters == 0 {
		radiusMeters = s.defaultRadius
	}

	stored, err := s.repo.ListAll(ctx, typeFilter)
	if err != nil {
		return nil, err
	}

	resources := make([]domain.SafetyResource, 0, len(stored))
	for _, r := range stored {
		resources = append(resources, *r)
	}

	return geo.WithinRadius(center, radiusMeters, resources, nil)
}
