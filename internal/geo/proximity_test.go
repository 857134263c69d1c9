package geo_test

import (
	"errors"
	"testing"

	"safescout/internal/domain"
	"safescout/internal/geo"
	"safescout/pkg/e"
)

type spot struct {
	name string
	at   domain.Point
}

func (s spot) Coordinate() domain.Point { return s.at }

func TestWithinRadius_FilterAndSort(t *testing.T) {
	t.Parallel()

	center := domain.Point{Lat: 0, Lng: 0}
	candidates := []spot{
		{"far", domain.Point{Lat: 0, Lng: 0.1}},     // ~11.1 km
		{"near", domain.Point{Lat: 0, Lng: 0.01}},   // ~1.1 km
		{"mid", domain.Point{Lat: 0, Lng: 0.05}},    // ~5.6 km
		{"edge", domain.Point{Lat: 0.5, Lng: 0.5}},  // ~78 km
	}

	matches, err := geo.WithinRadius(center, 12000, candidates, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches got %d", len(matches))
	}

	want := []string{"near", "mid", "far"}
	for i, name := range want {
		if matches[i].Entity.name != name {
			t.Fatalf("position %d: expected %q got %q", i, name, matches[i].Entity.name)
		}
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].DistanceMeters < matches[i-1].DistanceMeters {
			t.Fatalf("matches not sorted ascending: %+v", matches)
		}
	}
}

func TestWithinRadius_BoundaryInclusive(t *testing.T) {
	t.Parallel()

	center := domain.Point{Lat: 0, Lng: 0}
	target := []spot{{"t", domain.Point{Lat: 0, Lng: 0.045}}} // ~5004 m

	out, err := geo.WithinRadius(center, 5004, target, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected boundary point included, got %d matches", len(out))
	}

	out, err = geo.WithinRadius(center, 5000, target, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected point beyond radius excluded, got %d matches", len(out))
	}
}

func TestWithinRadius_KeepPredicate(t *testing.T) {
	t.Parallel()

	center := domain.Point{Lat: 0, Lng: 0}
	candidates := []spot{
		{"keep", domain.Point{Lat: 0, Lng: 0.01}},
		{"drop", domain.Point{Lat: 0, Lng: 0.01}},
	}

	matches, err := geo.WithinRadius(center, 5000, candidates, func(s spot) bool {
		return s.name == "keep"
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matches) != 1 || matches[0].Entity.name != "keep" {
		t.Fatalf("predicate not applied: %+v", matches)
	}
}

func TestWithinRadius_TiesPreserveInputOrder(t *testing.T) {
	t.Parallel()

	center := domain.Point{Lat: 0, Lng: 0}
	same := domain.Point{Lat: 0, Lng: 0.02}
	candidates := []spot{
		{"first", same},
		{"second", same},
		{"third", same},
	}

	matches, err := geo.WithinRadius(center, 5000, candidates, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := []string{"first", "second", "third"}
	for i, name := range want {
		if matches[i].Entity.name != name {
			t.Fatalf("tie order broken at %d: expected %q got %q", i, name, matches[i].Entity.name)
		}
	}
}

func TestWithinRadius_InvalidInput(t *testing.T) {
	t.Parallel()

	valid := domain.Point{Lat: 0, Lng: 0}
	candidates := []spot{{"x", valid}}

	if _, err := geo.WithinRadius(domain.Point{Lat: 97, Lng: 0}, 1000, candidates, nil); !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates got %v", err)
	}
	if _, err := geo.WithinRadius(valid, 0, candidates, nil); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput got %v", err)
	}
	if _, err := geo.WithinRadius(valid, -5, candidates, nil); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput got %v", err)
	}
}

func TestNearest_PicksClosest(t *testing.T) {
	t.Parallel()

	center := domain.Point{Lat: 0, Lng: 0}
	candidates := []spot{
		{"far", domain.Point{Lat: 1, Lng: 1}},
		{"near", domain.Point{Lat: 0, Lng: 0.01}},
		{"mid", domain.Point{Lat: 0.5, Lng: 0}},
	}

	best, err := geo.Nearest(center, candidates)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if best.Entity.name != "near" {
		t.Fatalf("expected near got %q", best.Entity.name)
	}
}

func TestNearest_TieKeepsFirst(t *testing.T) {
	t.Parallel()

	center := domain.Point{Lat: 0, Lng: 0}
	same := domain.Point{Lat: 0, Lng: 0.01}
	candidates := []spot{{"first", same}, {"second", same}}

	best, err := geo.Nearest(center, candidates)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if best.Entity.name != "first" {
		t.Fatalf("expected first got %q", best.Entity.name)
	}
}

func TestNearest_Empty(t *testing.T) {
	t.Parallel()

	_, err := geo.Nearest(domain.Point{Lat: 0, Lng: 0}, []spot{})
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}
