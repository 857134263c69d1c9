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

type ScoreService struct {
	repo ScoreRepository
}

func NewScoreService(repo ScoreRepository) *ScoreService {
	return &ScoreService{repo: repo}
}

func (s *ScoreService) Create(ctx context.Context, req domain.CreateAreaScoreRequest) (*domain.AreaSafetyScore, error) {
	const op = "service.Score.Create"

	if !req.CrowdDensity.Valid() {
		return nil, fmt.Errorf("%s: crowd_density: %w", op, e.ErrInvalidEnum)
	}
	center := domain.Point{Lat: req.Lat, Lng: req.Lng}
	if err := center.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if req.SafetyScore < 0 || req.SafetyScore > 100 {
		return nil, fmt.Errorf("%s: safety_score: %w", op, e.ErrInvalidInput)
	}
	if req.CrimeRate < 0 || req.RecentIncidents < 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	areaName := strings.TrimSpace(req.AreaName)
	if areaName == "" {
		return nil, fmt.Errorf("%s: area_name: %w", op, e.ErrInvalidInput)
	}

	score := &domain.AreaSafetyScore{
		ID:              uuid.New(),
		AreaName:        areaName,
		Center:          center,
		SafetyScore:     req.SafetyScore,
		CrimeRate:       req.CrimeRate,
		CrowdDensity:    req.CrowdDensity,
		RecentIncidents: req.RecentIncidents,
		LastUpdated:     time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, score); err != nil {
		return nil, err
	}
	return score, nil
}

func (s *ScoreService) List(ctx context.Context, limit, offset int) ([]*domain.AreaSafetyScore, error) {
	limit, offset, err := normalizePage(limit, offset, 50)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, limit, offset)
}

// Nearest returns the closest scored area to center, or ErrNotFound when
// no areas exist. Distance is reported in meters.
func (s *ScoreService) Nearest(ctx context.Context, center domain.Point) (geo.Match[domain.AreaSafetyScore], error) {
	var zero geo.Match[domain.AreaSafetyScore]

	stored, err := s.repo.ListAll(ctx)
	if err != nil {
		return zero, err
	}

	scores := make([]domain.AreaSafetyScore, 0, len(stored))
	for _, sc := range stored {
		scores = append(scores, *sc)
	}

	return geo.Nearest(center, scores)
}
