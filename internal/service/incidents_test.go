package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"safescout/internal/domain"
	"safescout/internal/service"
	mock_service "safescout/internal/service/mocks"
	"safescout/pkg/e"
)

func incStatusPtr(s domain.IncidentStatus) *domain.IncidentStatus { return &s }
func threatPtr(l domain.ThreatLevel) *domain.ThreatLevel          { return &l }

// --- Create ---

func TestIncidentService_Create_OK_PendingDefault(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockIncidentRepository(ctrl)

	var got *domain.IncidentReport
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *domain.IncidentReport) error {
			got = inc
			return nil
		}).
		Times(1)

	svc := service.NewIncidentService(repo, newTestLogger())
	userID := mustUUID(t)

	inc, err := svc.Create(context.Background(), userID, domain.CreateIncidentRequest{
		Lat:          55.75,
		Lng:          37.61,
		IncidentType: domain.IncidentTheft,
		Description:  "  pickpocket near metro  ",
		ThreatLevel:  domain.ThreatMedium,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if inc.Status != domain.IncidentPending {
		t.Fatalf("expected pending default got %q", inc.Status)
	}
	if inc.UserID != userID {
		t.Fatalf("expected reporter=%s got=%s", userID, inc.UserID)
	}
	if inc.Description != "pickpocket near metro" {
		t.Fatalf("expected trimmed description got %q", inc.Description)
	}
	if got == nil || got.ID == uuid.Nil {
		t.Fatalf("expected generated id passed to repo")
	}
}

func TestIncidentService_Create_Invalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		req     domain.CreateIncidentRequest
		wantErr error
	}{
		{
			"bad_type",
			domain.CreateIncidentRequest{Lat: 1, Lng: 2, IncidentType: "arson", Description: "x", ThreatLevel: domain.ThreatLow},
			e.ErrInvalidEnum,
		},
		{
			"bad_threat",
			domain.CreateIncidentRequest{Lat: 1, Lng: 2, IncidentType: domain.IncidentOther, Description: "x", ThreatLevel: "severe"},
			e.ErrInvalidEnum,
		},
		{
			"bad_lat",
			domain.CreateIncidentRequest{Lat: 91, Lng: 2, IncidentType: domain.IncidentOther, Description: "x", ThreatLevel: domain.ThreatLow},
			e.ErrInvalidCoordinates,
		},
		{
			"blank_description",
			domain.CreateIncidentRequest{Lat: 1, Lng: 2, IncidentType: domain.IncidentOther, Description: "   ", ThreatLevel: domain.ThreatLow},
			e.ErrInvalidInput,
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// repo.Create must not be called
			repo := mock_service.NewMockIncidentRepository(ctrl)
			svc := service.NewIncidentService(repo, newTestLogger())

			_, err := svc.Create(context.Background(), mustUUID(t), c.req)
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("expected %v got %v", c.wantErr, err)
			}
		})
	}
}

// --- Update ---

func TestIncidentService_Update_OK_AnyCaller(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockIncidentRepository(ctrl)

	id := mustUUID(t)
	existing := &domain.IncidentReport{
		ID:           id,
		UserID:       mustUUID(t), // some other reporter
		Center:       domain.Point{Lat: 1, Lng: 2},
		IncidentType: domain.IncidentTheft,
		Description:  "original",
		ThreatLevel:  domain.ThreatLow,
		Status:       domain.IncidentPending,
		CreatedAt:    mustTime(t),
		UpdatedAt:    mustTime(t),
	}

	var updated *domain.IncidentReport
	gomock.InOrder(
		repo.EXPECT().Get(gomock.Any(), id).Return(existing, nil).Times(1),
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inc *domain.IncidentReport) error {
				updated = inc
				return nil
			}).Times(1),
	)

	svc := service.NewIncidentService(repo, newTestLogger())

	inc, err := svc.Update(context.Background(), id, domain.UpdateIncidentRequest{
		Status:      incStatusPtr(domain.IncidentVerified),
		ThreatLevel: threatPtr(domain.ThreatHigh),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if inc.Status != domain.IncidentVerified || inc.ThreatLevel != domain.ThreatHigh {
		t.Fatalf("patch not applied: %+v", inc)
	}
	if inc.Description != "original" {
		t.Fatalf("untouched field changed: %q", inc.Description)
	}
	if !inc.UpdatedAt.After(existing.CreatedAt) {
		t.Fatalf("expected updated_at bumped")
	}
	if updated == nil || updated.ID != id {
		t.Fatalf("expected updated report passed to repo")
	}
}

func TestIncidentService_Update_EmptyPatch(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockIncidentRepository(ctrl)
	svc := service.NewIncidentService(repo, newTestLogger())

	_, err := svc.Update(context.Background(), mustUUID(t), domain.UpdateIncidentRequest{})
	if !errors.Is(err, e.ErrNoFields) {
		t.Fatalf("expected ErrNoFields got %v", err)
	}
}

func TestIncidentService_Update_InvalidEnums_NoGetCall(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockIncidentRepository(ctrl)
	svc := service.NewIncidentService(repo, newTestLogger())

	if _, err := svc.Update(context.Background(), mustUUID(t), domain.UpdateIncidentRequest{
		Status: incStatusPtr("archived"),
	}); !errors.Is(err, e.ErrInvalidEnum) {
		t.Fatalf("expected ErrInvalidEnum got %v", err)
	}

	if _, err := svc.Update(context.Background(), mustUUID(t), domain.UpdateIncidentRequest{
		ThreatLevel: threatPtr("extreme"),
	}); !errors.Is(err, e.ErrInvalidEnum) {
		t.Fatalf("expected ErrInvalidEnum got %v", err)
	}
}

func TestIncidentService_Update_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockIncidentRepository(ctrl)
	id := mustUUID(t)

	repo.EXPECT().
		Get(gomock.Any(), id).
		Return(nil, e.ErrNotFound).
		Times(1)

	svc := service.NewIncidentService(repo, newTestLogger())

	_, err := svc.Update(context.Background(), id, domain.UpdateIncidentRequest{
		Status: incStatusPtr(domain.IncidentResolved),
	})
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

// --- ListOwned ---

func TestIncidentService_ListOwned_OK_DefaultLimit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockIncidentRepository(ctrl)
	userID := mustUUID(t)

	repo.EXPECT().
		ListByOwner(gomock.Any(), userID, domain.IncidentStatus(""), 20, 0).
		Return([]*domain.IncidentReport{}, nil).
		Times(1)

	svc := service.NewIncidentService(repo, newTestLogger())

	if _, err := svc.ListOwned(context.Background(), userID, userID, "", 0, 0); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestIncidentService_ListOwned_ForeignUserForbidden(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockIncidentRepository(ctrl)
	svc := service.NewIncidentService(repo, newTestLogger())

	_, err := svc.ListOwned(context.Background(), mustUUID(t), mustUUID(t), "", 0, 0)
	if !errors.Is(err, e.ErrForbidden) {
		t.Fatalf("expected ErrForbidden got %v", err)
	}
}
