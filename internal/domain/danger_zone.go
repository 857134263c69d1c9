package domain

import (
	"time"

	"github.com/google/uuid"
)

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	}
	return false
}

// DangerZone is shared reference data: created by an admin, mutated via
// partial update, never hard-deleted (deactivated with active=false).
type DangerZone struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Center       Point     `json:"center"`
	RadiusMeters float64   `json:"radius_meters"`
	RiskLevel    RiskLevel `json:"risk_level"`
	CrimeRate    float64   `json:"crime_rate"` // 0..100
	Description  string    `json:"description,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (z DangerZone) Coordinate() Point { return z.Center }

type CreateDangerZoneRequest struct {
	Name         string    `json:"name" validate:"required"`
	Lat          float64   `json:"lat" validate:"lat"`
	Lng          float64   `json:"lng" validate:"lng"`
	RadiusMeters float64   `json:"radius_meters" validate:"required,gt=0"`
	RiskLevel    RiskLevel `json:"risk_level" validate:"required"`
	CrimeRate    float64   `json:"crime_rate" validate:"min=0,max=100"`
	Description  string    `json:"description"`
	Active       *bool     `json:"active"`
}

// UpdateDangerZoneRequest carries a partial patch: nil fields keep their
// stored values.
type UpdateDangerZoneRequest struct {
	Name         *string    `json:"name"`
	Lat          *float64   `json:"lat" validate:"omitempty,lat"`
	Lng          *float64   `json:"lng" validate:"omitempty,lng"`
	RadiusMeters *float64   `json:"radius_meters" validate:"omitempty,gt=0"`
	RiskLevel    *RiskLevel `json:"risk_level"`
	CrimeRate    *float64   `json:"crime_rate" validate:"omitempty,min=0,max=100"`
	Description  *string    `json:"description"`
	Active       *bool      `json:"active"`
}

func (r UpdateDangerZoneRequest) Empty() bool {
	return r.Name == nil && r.Lat == nil && r.Lng == nil &&
		r.RadiusMeters == nil && r.RiskLevel == nil && r.CrimeRate == nil &&
		r.Description == nil && r.Active == nil
}

type ZoneFilter struct {
	RiskLevel       RiskLevel
	IncludeInactive bool
}
