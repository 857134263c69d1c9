package geo

import (
	"sort"

	"safescout/internal/domain"
	"safescout/pkg/e"
)

// Locatable is anything anchored to a coordinate.
type Locatable interface {
	Coordinate() domain.Point
}

// Match annotates an entity with its distance from the query center.
type Match[T Locatable] struct {
	Entity         T       `json:"entity"`
	DistanceMeters float64 `json:"distance_meters"`
}

// WithinRadius returns candidates within radiusMeters of center that pass
// keep (nil keeps everything), sorted ascending by distance. The sort is
// stable so ties preserve input order. A non-positive radius or an
// out-of-range center fails with e.ErrInvalidInput rather than returning
// an empty result.
func WithinRadius[T Locatable](center domain.Point, radiusMeters float64, candidates []T, keep func(T) bool) ([]Match[T], error) {
	if err := center.Validate(); err != nil {
		return nil, err
	}
	if radiusMeters <= 0 {
		return nil, e.ErrInvalidInput
	}

	matches := make([]Match[T], 0, len(candidates))
	for _, c := range candidates {
		if keep != nil && !keep(c) {
			continue
		}
		dist := Distance(center, c.Coordinate())
		if dist > radiusMeters {
			continue
		}
		matches = append(matches, Match[T]{Entity: c, DistanceMeters: dist})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].DistanceMeters < matches[j].DistanceMeters
	})

	return matches, nil
}

// Nearest scans candidates keeping a running minimum; ties resolve to the
// first-encountered candidate. An empty sequence fails with e.ErrNotFound
// so callers can tell absence from a zero-distance match.
func Nearest[T Locatable](center domain.Point, candidates []T) (Match[T], error) {
	var best Match[T]
	if err := center.Validate(); err != nil {
		return best, err
	}
	if len(candidates) == 0 {
		return best, e.ErrNotFound
	}

	best = Match[T]{Entity: candidates[0], DistanceMeters: Distance(center, candidates[0].Coordinate())}
	for _, c := range candidates[1:] {
		if dist := Distance(center, c.Coordinate()); dist < best.DistanceMeters {
			best = Match[T]{Entity: c, DistanceMeters: dist}
		}
	}

	return best, nil
}
