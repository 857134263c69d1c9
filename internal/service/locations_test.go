package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"safescout/internal/domain"
	"safescout/internal/service"
	mock_service "safescout/internal/service/mocks"
	"safescout/pkg/e"
)

type locationFixture struct {
	repo  *mock_service.MockLocationRepository
	zones *mock_service.MockZoneRepository
	cache *mock_service.MockZoneCache
	queue *mock_service.MockZoneEntryQueue
	svc   *service.LocationService
}

func newLocationFixture(ctrl *gomock.Controller) locationFixture {
	f := locationFixture{
		repo:  mock_service.NewMockLocationRepository(ctrl),
		zones: mock_service.NewMockZoneRepository(ctrl),
		cache: mock_service.NewMockZoneCache(ctrl),
		queue: mock_service.NewMockZoneEntryQueue(ctrl),
	}
	zoneSvc := service.NewZoneService(f.zones, f.cache, newTestLogger(), 5000, 0)
	f.svc = service.NewLocationService(f.repo, zoneSvc, f.queue, newTestLogger())
	return f
}

func TestLocationService_Track_InsideZoneEnqueuesEvent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newLocationFixture(ctrl)

	zoneID := mustUUID(t)
	userID := mustUUID(t)

	// ~1.1 km from the fix, radius 2000: a hit.
	zones := []domain.DangerZone{
		{ID: zoneID, Name: "station", Center: domain.Point{Lat: 0, Lng: 0.01}, RadiusMeters: 2000, Active: true},
	}

	f.repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.cache.EXPECT().GetActive(gomock.Any()).Return(zones, nil).Times(1)
	f.queue.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev domain.ZoneEntryEvent) error {
			if ev.ZoneID != zoneID || ev.UserID != userID {
				t.Fatalf("wrong event: %+v", ev)
			}
			if ev.DistanceMeters <= 0 || ev.DistanceMeters > 2000 {
				t.Fatalf("implausible distance %f", ev.DistanceMeters)
			}
			return nil
		}).Times(1)

	res, err := f.svc.Track(context.Background(), userID, domain.TrackLocationRequest{Lat: 0, Lng: 0})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Sample == nil || res.Sample.UserID != userID {
		t.Fatalf("sample not attributed to caller: %+v", res.Sample)
	}
	if len(res.ZonesEntered) != 1 || res.ZonesEntered[0].Entity.ID != zoneID {
		t.Fatalf("expected one zone entry, got %+v", res.ZonesEntered)
	}
}

func TestLocationService_Track_OutsideZonesReportsNone(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newLocationFixture(ctrl)

	zones := []domain.DangerZone{
		{ID: mustUUID(t), Name: "far", Center: domain.Point{Lat: 5, Lng: 5}, RadiusMeters: 1000, Active: true},
	}

	f.repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.cache.EXPECT().GetActive(gomock.Any()).Return(zones, nil).Times(1)

	res, err := f.svc.Track(context.Background(), mustUUID(t), domain.TrackLocationRequest{Lat: 0, Lng: 0})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.ZonesEntered) != 0 {
		t.Fatalf("expected no entries, got %+v", res.ZonesEntered)
	}
}

func TestLocationService_Track_DetectionFailureStillStoresSample(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newLocationFixture(ctrl)

	f.repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.cache.EXPECT().GetActive(gomock.Any()).Return(nil, errors.New("redis down")).Times(1)
	f.zones.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("db down")).Times(1)

	res, err := f.svc.Track(context.Background(), mustUUID(t), domain.TrackLocationRequest{Lat: 0, Lng: 0})
	if err != nil {
		t.Fatalf("detection failure must not fail the track call: %v", err)
	}
	if res.Sample == nil || len(res.ZonesEntered) != 0 {
		t.Fatalf("expected stored sample with no entries, got %+v", res)
	}
}

func TestLocationService_Track_Invalid(t *testing.T) {
	t.Parallel()

	neg := -1.0
	cases := []struct {
		name    string
		req     domain.TrackLocationRequest
		wantErr error
	}{
		{"bad_lat", domain.TrackLocationRequest{Lat: 91, Lng: 0}, e.ErrInvalidCoordinates},
		{"bad_lng", domain.TrackLocationRequest{Lat: 0, Lng: -181}, e.ErrInvalidCoordinates},
		{"negative_accuracy", domain.TrackLocationRequest{Lat: 0, Lng: 0, Accuracy: &neg}, e.ErrInvalidInput},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newLocationFixture(ctrl)

			_, err := f.svc.Track(context.Background(), mustUUID(t), c.req)
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("expected %v got %v", c.wantErr, err)
			}
		})
	}
}

func TestLocationService_ListOwned_OK_DefaultLimit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newLocationFixture(ctrl)

	userID := mustUUID(t)
	f.repo.EXPECT().
		ListByOwner(gomock.Any(), userID, 10, 0).
		Return([]*domain.LocationSample{}, nil).
		Times(1)

	if _, err := f.svc.ListOwned(context.Background(), userID, userID, 0, 0); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestLocationService_ListOwned_ForeignUserForbidden(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newLocationFixture(ctrl)

	_, err := f.svc.ListOwned(context.Background(), mustUUID(t), mustUUID(t), 0, 0)
	if !errors.Is(err, e.ErrForbidden) {
		t.Fatalf("expected ErrForbidden got %v", err)
	}
}
