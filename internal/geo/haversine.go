package geo

import (
	"math"

	"safescout/internal/domain"
)

// earthRadiusMeters is the mean Earth radius used by the haversine model.
const earthRadiusMeters = 6371000.0

// Distance returns the great-circle distance between a and b in meters.
// Pure and deterministic; callers validate coordinates first, NaN inputs
// propagate.
func Distance(a, b domain.Point) float64 {
	dLat := deg2rad(b.Lat - a.Lat)
	dLng := deg2rad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
