package domain

import (
	"time"

	"github.com/google/uuid"
)

type CrowdDensity string

const (
	CrowdLow    CrowdDensity = "low"
	CrowdMedium CrowdDensity = "medium"
	CrowdHigh   CrowdDensity = "high"
)

func (d CrowdDensity) Valid() bool {
	switch d {
	case CrowdLow, CrowdMedium, CrowdHigh:
		return true
	}
	return false
}

type AreaSafetyScore struct {
	ID              uuid.UUID    `json:"id"`
	AreaName        string       `json:"area_name"`
	Center          Point        `json:"center"`
	SafetyScore     float64      `json:"safety_score"` // 0..100
	CrimeRate       float64      `json:"crime_rate"`
	CrowdDensity    CrowdDensity `json:"crowd_density"`
	RecentIncidents int          `json:"recent_incidents"`
	LastUpdated     time.Time    `json:"last_updated"`
}

func (s AreaSafetyScore) Coordinate() Point { return s.Center }

type CreateAreaScoreRequest struct {
	AreaName        string       `json:"area_name" validate:"required"`
	Lat             float64      `json:"lat" validate:"lat"`
	Lng             float64      `json:"lng" validate:"lng"`
	SafetyScore     float64      `json:"safety_score" validate:"min=0,max=100"`
	CrimeRate       float64      `json:"crime_rate" validate:"min=0"`
	CrowdDensity    CrowdDensity `json:"crowd_density" validate:"required"`
	RecentIncidents int          `json:"recent_incidents" validate:"min=0"`
}
