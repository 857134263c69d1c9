package domain

import (
	"time"

	"github.com/google/uuid"
)

// LocationSample is an append-only tracking fix; rows are never mutated.
type LocationSample struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Center    Point     `json:"center"`
	Accuracy  *float64  `json:"accuracy,omitempty"`
	Address   string    `json:"address,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type TrackLocationRequest struct {
	Lat      float64  `json:"lat" validate:"lat"`
	Lng      float64  `json:"lng" validate:"lng"`
	Accuracy *float64 `json:"accuracy"`
	Address  string   `json:"address"`
}

// ZoneEntryEvent records a tracked fix landing inside an active danger
// zone. Queued on track, drained by the zone-entry worker.
type ZoneEntryEvent struct {
	UserID         uuid.UUID `json:"user_id"`
	ZoneID         uuid.UUID `json:"zone_id"`
	Center         Point     `json:"center"`
	DistanceMeters float64   `json:"distance_meters"`
	EnteredAt      time.Time `json:"entered_at"`
}

// ZoneEntry is the persisted form of a ZoneEntryEvent.
type ZoneEntry struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	ZoneID         uuid.UUID `json:"zone_id"`
	Center         Point     `json:"center"`
	DistanceMeters float64   `json:"distance_meters"`
	EnteredAt      time.Time `json:"entered_at"`
}
