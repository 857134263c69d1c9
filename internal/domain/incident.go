package domain

import (
	"time"

	"github.com/google/uuid"
)

type IncidentType string

const (
	IncidentSuspicious IncidentType = "suspicious_activity"
	IncidentTheft      IncidentType = "theft"
	IncidentHarassment IncidentType = "harassment"
	IncidentAccident   IncidentType = "accident"
	IncidentOther      IncidentType = "other"
)

func (t IncidentType) Valid() bool {
	switch t {
	case IncidentSuspicious, IncidentTheft, IncidentHarassment, IncidentAccident, IncidentOther:
		return true
	}
	return false
}

type ThreatLevel string

const (
	ThreatLow    ThreatLevel = "low"
	ThreatMedium ThreatLevel = "medium"
	ThreatHigh   ThreatLevel = "high"
)

func (l ThreatLevel) Valid() bool {
	switch l {
	case ThreatLow, ThreatMedium, ThreatHigh:
		return true
	}
	return false
}

type IncidentStatus string

const (
	IncidentPending  IncidentStatus = "pending"
	IncidentVerified IncidentStatus = "verified"
	IncidentResolved IncidentStatus = "resolved"
)

func (s IncidentStatus) Valid() bool {
	switch s {
	case IncidentPending, IncidentVerified, IncidentResolved:
		return true
	}
	return false
}

// IncidentReport is created by the reporting user; status and threat
// level may be changed by any authenticated caller (reviewer role).
type IncidentReport struct {
	ID           uuid.UUID      `json:"id"`
	UserID       uuid.UUID      `json:"user_id"`
	Center       Point          `json:"center"`
	IncidentType IncidentType   `json:"incident_type"`
	Description  string         `json:"description"`
	ThreatLevel  ThreatLevel    `json:"threat_level"`
	PhotoURL     string         `json:"photo_url,omitempty"`
	VideoURL     string         `json:"video_url,omitempty"`
	Status       IncidentStatus `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type CreateIncidentRequest struct {
	Lat          float64      `json:"lat" validate:"lat"`
	Lng          float64      `json:"lng" validate:"lng"`
	IncidentType IncidentType `json:"incident_type" validate:"required"`
	Description  string       `json:"description" validate:"required"`
	ThreatLevel  ThreatLevel  `json:"threat_level" validate:"required"`
	PhotoURL     string       `json:"photo_url"`
	VideoURL     string       `json:"video_url"`
}

type UpdateIncidentRequest struct {
	Status      *IncidentStatus `json:"status"`
	ThreatLevel *ThreatLevel    `json:"threat_level"`
	Description *string         `json:"description"`
}

func (r UpdateIncidentRequest) Empty() bool {
	return r.Status == nil && r.ThreatLevel == nil && r.Description == nil
}

type IncidentFilter struct {
	Status      IncidentStatus
	ThreatLevel ThreatLevel
}
