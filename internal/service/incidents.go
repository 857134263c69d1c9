package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"safescout/internal/domain"
	"safescout/pkg/e"

	"github.com/google/uuid"
)

// IncidentService manages incident reports. Creation is tied to the
// reporting user; review mutations (status, threat level) are open to
// any authenticated caller, while the history read stays owner-only.
type IncidentService struct {
	repo   IncidentRepository
	logger *slog.Logger
}

func NewIncidentService(repo IncidentRepository, logger *slog.Logger) *IncidentService {
	return &IncidentService{repo: repo, logger: logger}
}

func (s *IncidentService) Create(ctx context.Context, userID uuid.UUID, req domain.CreateIncidentRequest) (*domain.IncidentReport, error) {
	const op = "service.Incident.Create"

	if !req.IncidentType.Valid() {
		return nil, fmt.Errorf("%s: incident_type: %w", op, e.ErrInvalidEnum)
	}
	if !req.ThreatLevel.Valid() {
		return nil, fmt.Errorf("%s: threat_level: %w", op, e.ErrInvalidEnum)
	}
	center := domain.Point{Lat: req.Lat, Lng: req.Lng}
	if err := center.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, fmt.Errorf("%s: description: %w", op, e.ErrInvalidInput)
	}

	now := time.Now().UTC()
	inc := &domain.IncidentReport{
		ID:           uuid.New(),
		UserID:       userID,
		Center:       center,
		IncidentType: req.IncidentType,
		Description:  description,
		ThreatLevel:  req.ThreatLevel,
		PhotoURL:     req.PhotoURL,
		VideoURL:     req.VideoURL,
		Status:       domain.IncidentPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, inc); err != nil {
		return nil, err
	}

	s.logger.Info("incident reported",
		slog.String("id", inc.ID.String()),
		slog.String("type", string(inc.IncidentType)),
		slog.String("threat_level", string(inc.ThreatLevel)),
	)
	return inc, nil
}

// Update patches status, threat level and/or description. At least one
// field must be present; enums are checked before the stored record is
// touched so an invalid patch never half-applies.
func (s *IncidentService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateIncidentRequest) (*domain.IncidentReport, error) {
	const op = "service.Incident.Update"

	if req.Empty() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNoFields)
	}
	if req.Status != nil && !req.Status.Valid() {
		return nil, fmt.Errorf("%s: status: %w", op, e.ErrInvalidEnum)
	}
	if req.ThreatLevel != nil && !req.ThreatLevel.Valid() {
		return nil, fmt.Errorf("%s: threat_level: %w", op, e.ErrInvalidEnum)
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) == "" {
		return nil, fmt.Errorf("%s: description: %w", op, e.ErrInvalidInput)
	}

	inc, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		inc.Status = *req.Status
	}
	if req.ThreatLevel != nil {
		inc.ThreatLevel = *req.ThreatLevel
	}
	if req.Description != nil {
		inc.Description = strings.TrimSpace(*req.Description)
	}
	inc.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, inc); err != nil {
		return nil, err
	}

	s.logger.Info("incident updated",
		slog.String("id", inc.ID.String()),
		slog.String("status", string(inc.Status)),
	)
	return inc, nil
}

func (s *IncidentService) List(ctx context.Context, filter domain.IncidentFilter, limit, offset int) ([]*domain.IncidentReport, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("service.Incident.List: status: %w", e.ErrInvalidEnum)
	}
	if filter.ThreatLevel != "" && !filter.ThreatLevel.Valid() {
		return nil, fmt.Errorf("service.Incident.List: threat_level: %w", e.ErrInvalidEnum)
	}
	limit, offset, err := normalizePage(limit, offset, 50)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter, limit, offset)
}

// ListOwned is the owner-scoped history read: callers may only request
// their own reports.
func (s *IncidentService) ListOwned(ctx context.Context, requested, actingUserID uuid.UUID, status domain.IncidentStatus, limit, offset int) ([]*domain.IncidentReport, error) {
	const op = "service.Incident.ListOwned"

	if requested != actingUserID {
		return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%s: status: %w", op, e.ErrInvalidEnum)
	}
	limit, offset, err := normalizePage(limit, offset, 20)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByOwner(ctx, actingUserID, status, limit, offset)
}
