package domain

import "safescout/pkg/e"

// Point is a WGS84 coordinate pair in floating-point degrees.
type Point struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lng float64 `json:"lng" validate:"lng"`
}

func (p Point) Validate() error {
	if p.Lat < -90 || p.Lat > 90 || p.Lng < -180 || p.Lng > 180 {
		return e.ErrInvalidCoordinates
	}
	return nil
}
