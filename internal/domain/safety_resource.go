package domain

import (
	"time"

	"github.com/google/uuid"
)

type ResourceType string

const (
	ResourcePolice     ResourceType = "police"
	ResourceHospital   ResourceType = "hospital"
	ResourceEmbassy    ResourceType = "embassy"
	ResourceHelpCenter ResourceType = "help_center"
)

func (t ResourceType) Valid() bool {
	switch t {
	case ResourcePolice, ResourceHospital, ResourceEmbassy, ResourceHelpCenter:
		return true
	}
	return false
}

// SafetyResource is immutable after creation: no update path exists.
type SafetyResource struct {
	ID           uuid.UUID    `json:"id"`
	Type         ResourceType `json:"type"`
	Name         string       `json:"name"`
	Center       Point        `json:"center"`
	Address      string       `json:"address"`
	Phone        string       `json:"phone"`
	Available247 bool         `json:"available_24_7"`
	CreatedAt    time.Time    `json:"created_at"`
}

func (r SafetyResource) Coordinate() Point { return r.Center }

type CreateSafetyResourceRequest struct {
	Type         ResourceType `json:"type" validate:"required"`
	Name         string       `json:"name" validate:"required"`
	Lat          float64      `json:"lat" validate:"lat"`
	Lng          float64      `json:"lng" validate:"lng"`
	Address      string       `json:"address" validate:"required"`
	Phone        string       `json:"phone" validate:"required"`
	Available247 *bool        `json:"available_24_7" validate:"required"`
}

type ResourceFilter struct {
	Type         ResourceType
	Available247 *bool
}
