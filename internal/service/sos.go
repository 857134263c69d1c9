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

// SOSService manages the SOS alert lifecycle. Alerts are owner-only:
// every lookup and write is scoped by the authenticated user id, so a
// foreign alert is indistinguishable from a missing one.
type SOSService struct {
	repo   SOSRepository
	logger *slog.Logger
}

func NewSOSService(repo SOSRepository, logger *slog.Logger) *SOSService {
	return &SOSService{repo: repo, logger: logger}
}

// Create opens an alert in the active state; resolved_at stays unset
// until a terminal transition.
func (s *SOSService) Create(ctx context.Context, userID uuid.UUID, req domain.CreateSOSRequest) (*domain.SOSAlert, error) {
	const op = "service.SOS.Create"

	center := domain.Point{Lat: req.Lat, Lng: req.Lng}
	if err := center.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	alert := &domain.SOSAlert{
		ID:               uuid.New(),
		UserID:           userID,
		Center:           center,
		Status:           domain.SOSActive,
		Message:          strings.TrimSpace(req.Message),
		NotifiedContacts: req.NotifiedContacts,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, alert); err != nil {
		return nil, err
	}

	s.logger.Info("sos alert created",
		slog.String("id", alert.ID.String()),
		slog.String("user_id", userID.String()),
	)
	return alert, nil
}

// Update applies a partial patch to the caller's own alert. Status moves
// are forward-only: active may resolve or cancel, terminal states accept
// no further transition. A terminal move stamps resolved_at.
func (s *SOSService) Update(ctx context.Context, id, userID uuid.UUID, req domain.UpdateSOSRequest) (*domain.SOSAlert, error) {
	const op = "service.SOS.Update"

	if req.Empty() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNoFields)
	}
	if req.Status != nil && !req.Status.Valid() {
		return nil, fmt.Errorf("%s: status: %w", op, e.ErrInvalidEnum)
	}

	alert, err := s.repo.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil && *req.Status != alert.Status {
		if alert.Status.Terminal() {
			return nil, fmt.Errorf("%s: %s -> %s: %w", op, alert.Status, *req.Status, e.ErrInvalidTransition)
		}
		alert.Status = *req.Status
		if alert.Status.Terminal() {
			now := time.Now().UTC()
			alert.ResolvedAt = &now
		}
	}
	if req.Message != nil {
		alert.Message = strings.TrimSpace(*req.Message)
	}

	if err := s.repo.UpdateOwned(ctx, alert); err != nil {
		return nil, err
	}

	s.logger.Info("sos alert updated",
		slog.String("id", alert.ID.String()),
		slog.String("status", string(alert.Status)),
	)
	return alert, nil
}

func (s *SOSService) Get(ctx context.Context, id, userID uuid.UUID) (*domain.SOSAlert, error) {
	return s.repo.GetOwned(ctx, id, userID)
}

// ListOwned defaults the status filter to active, matching the original
// emergency dashboard behavior.
func (s *SOSService) ListOwned(ctx context.Context, userID uuid.UUID, status domain.SOSStatus, limit, offset int) ([]*domain.SOSAlert, error) {
	if status == "" {
		status = domain.SOSActive
	}
	if !status.Valid() {
		return nil, fmt.Errorf("service.SOS.ListOwned: status: %w", e.ErrInvalidEnum)
	}
	limit, offset, err := normalizePage(limit, offset, 50)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByOwner(ctx, userID, status, limit, offset)
}
