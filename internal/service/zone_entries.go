package service

import (
	"context"
	"log/slog"

	"safescout/internal/domain"
)

// ZoneEntryService exposes the zone-entry audit trail written by the
// queue worker. Read-only from the API side.
type ZoneEntryService struct {
	repo   ZoneEntryRepository
	logger *slog.Logger
}

func NewZoneEntryService(repo ZoneEntryRepository, logger *slog.Logger) *ZoneEntryService {
	return &ZoneEntryService{repo: repo, logger: logger}
}

func (s *ZoneEntryService) ListRecent(ctx context.Context, limit, offset int) ([]*domain.ZoneEntry, error) {
	limit, offset, err := normalizePage(limit, offset, 50)
	if err != nil {
		return nil, err
	}
	return s.repo.ListRecent(ctx, limit, offset)
}
