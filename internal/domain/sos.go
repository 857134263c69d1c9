package domain

import (
	"time"

	"github.com/google/uuid"
)

type SOSStatus string

const (
	SOSActive    SOSStatus = "active"
	SOSResolved  SOSStatus = "resolved"
	SOSCancelled SOSStatus = "cancelled"
)

func (s SOSStatus) Valid() bool {
	switch s {
	case SOSActive, SOSResolved, SOSCancelled:
		return true
	}
	return false
}

func (s SOSStatus) Terminal() bool {
	return s == SOSResolved || s == SOSCancelled
}

// SOSAlert is owned exclusively by UserID: only the owner may read or
// mutate a specific alert.
type SOSAlert struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"user_id"`
	Center           Point      `json:"center"`
	Status           SOSStatus  `json:"status"`
	Message          string     `json:"message,omitempty"`
	NotifiedContacts []string   `json:"notified_contacts,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	ResolvedAt       *time.Time `json:"resolved_at,omitempty"`
}

type CreateSOSRequest struct {
	Lat              float64  `json:"lat" validate:"lat"`
	Lng              float64  `json:"lng" validate:"lng"`
	Message          string   `json:"message"`
	NotifiedContacts []string `json:"notified_contacts"`
}

type UpdateSOSRequest struct {
	Status  *SOSStatus `json:"status"`
	Message *string    `json:"message"`
}

func (r UpdateSOSRequest) Empty() bool {
	return r.Status == nil && r.Message == nil
}
