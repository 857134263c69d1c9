package user_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"safescout/internal/api/handlers/http/user"
	mock_user "safescout/internal/api/handlers/http/user/mocks"
	"safescout/internal/domain"
	"safescout/internal/middleware"
	"safescout/internal/service"
	"safescout/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func asUser(r *http.Request, id uuid.UUID) *http.Request {
	return r.WithContext(middleware.WithUserID(r.Context(), id))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func newHandler(ctrl *gomock.Controller) (*user.Handler, *mock_user.MockSOSAlerts, *mock_user.MockIncidents, *mock_user.MockLocations, *mock_user.MockChat) {
	sos := mock_user.NewMockSOSAlerts(ctrl)
	incidents := mock_user.NewMockIncidents(ctrl)
	locations := mock_user.NewMockLocations(ctrl)
	chat := mock_user.NewMockChat(ctrl)
	return user.NewHandler(newTestLogger(), sos, incidents, locations, chat), sos, incidents, locations, chat
}

func TestSOSCreate_OK_201(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, sos, _, _, _ := newHandler(ctrl)

	userID := uuid.New()
	reqBody := `{"lat":55.75,"lng":37.61,"message":"help"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sos", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	req = asUser(req, userID)
	rr := httptest.NewRecorder()

	want := &domain.SOSAlert{ID: uuid.New(), UserID: userID, Status: domain.SOSActive}
	sos.EXPECT().
		Create(gomock.Any(), userID, gomock.Any()).
		Return(want, nil).
		Times(1)

	h.SOSCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.SOSAlert](t, rr)
	if got.ID != want.ID || got.UserID != userID {
		t.Fatalf("unexpected alert: %+v", got)
	}
}

func TestSOSCreate_NoSession_401(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sos", bytes.NewBufferString(`{"lat":1,"lng":2}`))
	rr := httptest.NewRecorder()

	h.SOSCreate(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d, body=%s", http.StatusUnauthorized, rr.Code, rr.Body.String())
	}
}

func TestSOSCreate_UserIDInBody_400(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
	}{
		{"camel", `{"lat":1,"lng":2,"userId":"f3b8a7e2-0000-0000-0000-000000000000"}`},
		{"snake", `{"lat":1,"lng":2,"user_id":"f3b8a7e2-0000-0000-0000-000000000000"}`},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h, _, _, _, _ := newHandler(ctrl)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/sos", bytes.NewBufferString(c.body))
			req = asUser(req, uuid.New())
			rr := httptest.NewRecorder()

			h.SOSCreate(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
			}
			got := decodeJSON[map[string]string](t, rr)
			if got["code"] != "USER_ID_NOT_ALLOWED" {
				t.Fatalf("expected code USER_ID_NOT_ALLOWED, body=%s", rr.Body.String())
			}
		})
	}
}

func TestSOSUpdate_FinalizedAlert_409(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, sos, _, _, _ := newHandler(ctrl)

	userID := uuid.New()
	id := uuid.New()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/sos/"+id.String(), bytes.NewBufferString(`{"status":"active"}`))
	req = asUser(req, userID)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	sos.EXPECT().
		Update(gomock.Any(), id, userID, gomock.Any()).
		Return(nil, fmt.Errorf("service.SOS.Update: %w", e.ErrInvalidTransition)).
		Times(1)

	h.SOSUpdate(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected %d got %d, body=%s", http.StatusConflict, rr.Code, rr.Body.String())
	}
}

func TestSOSUpdate_EmptyPatch_400_WithCode(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, sos, _, _, _ := newHandler(ctrl)

	userID := uuid.New()
	id := uuid.New()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/sos/"+id.String(), bytes.NewBufferString(`{}`))
	req = asUser(req, userID)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	sos.EXPECT().
		Update(gomock.Any(), id, userID, domain.UpdateSOSRequest{}).
		Return(nil, fmt.Errorf("service.SOS.Update: %w", e.ErrNoFields)).
		Times(1)

	h.SOSUpdate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
	got := decodeJSON[map[string]string](t, rr)
	if got["code"] != "NO_FIELDS_PROVIDED" {
		t.Fatalf("expected code NO_FIELDS_PROVIDED, body=%s", rr.Body.String())
	}
}

func TestSOSList_StatusFilterPassedThrough(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, sos, _, _, _ := newHandler(ctrl)

	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sos?status=resolved&limit=5", nil)
	req = asUser(req, userID)
	rr := httptest.NewRecorder()

	sos.EXPECT().
		ListOwned(gomock.Any(), userID, domain.SOSResolved, 5, 0).
		Return([]*domain.SOSAlert{}, nil).
		Times(1)

	h.SOSList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestIncidentCreate_OK_201(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, incidents, _, _ := newHandler(ctrl)

	userID := uuid.New()
	reqBody := `{"lat":55.75,"lng":37.61,"incident_type":"theft","description":"wallet stolen","threat_level":"medium"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/incidents", bytes.NewBufferString(reqBody))
	req = asUser(req, userID)
	rr := httptest.NewRecorder()

	incidents.EXPECT().
		Create(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req domain.CreateIncidentRequest) (*domain.IncidentReport, error) {
			if req.IncidentType != domain.IncidentTheft || req.Description != "wallet stolen" {
				return nil, fmt.Errorf("unexpected request: %+v", req)
			}
			return &domain.IncidentReport{ID: uuid.New(), UserID: userID, Status: domain.IncidentPending}, nil
		}).
		Times(1)

	h.IncidentCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
}

func TestIncidentListByUser_ForeignUser_403(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, incidents, _, _ := newHandler(ctrl)

	actingID := uuid.New()
	otherID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/incidents/user/"+otherID.String(), nil)
	req = asUser(req, actingID)
	req = addChiURLParam(req, "userId", otherID.String())
	rr := httptest.NewRecorder()

	incidents.EXPECT().
		ListOwned(gomock.Any(), otherID, actingID, domain.IncidentStatus(""), 0, 0).
		Return(nil, fmt.Errorf("service.Incident.ListOwned: %w", e.ErrForbidden)).
		Times(1)

	h.IncidentListByUser(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected %d got %d, body=%s", http.StatusForbidden, rr.Code, rr.Body.String())
	}
}

func TestIncidentListByUser_BadUserID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/incidents/user/bad", nil)
	req = asUser(req, uuid.New())
	req = addChiURLParam(req, "userId", "not-a-uuid")
	rr := httptest.NewRecorder()

	h.IncidentListByUser(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestLocationTrack_OK_201_ReportsZoneEntries(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, locations, _ := newHandler(ctrl)

	userID := uuid.New()
	reqBody := `{"lat":55.75,"lng":37.61,"accuracy":12.5}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/locations/track", bytes.NewBufferString(reqBody))
	req = asUser(req, userID)
	rr := httptest.NewRecorder()

	result := &service.TrackResult{
		Sample: &domain.LocationSample{ID: uuid.New(), UserID: userID},
	}
	locations.EXPECT().
		Track(gomock.Any(), userID, gomock.Any()).
		Return(result, nil).
		Times(1)

	h.LocationTrack(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string]any](t, rr)
	if _, ok := got["sample"]; !ok {
		t.Fatalf("expected sample in response, body=%s", rr.Body.String())
	}
}

func TestLocationListByUser_NonNumericLimit_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _, _ := newHandler(ctrl)

	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/locations/user/"+userID.String()+"?limit=abc", nil)
	req = asUser(req, userID)
	req = addChiURLParam(req, "userId", userID.String())
	rr := httptest.NewRecorder()

	h.LocationListByUser(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestChatSend_OK_201(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _, chat := newHandler(ctrl)

	userID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString(`{"message":"hello"}`))
	req = asUser(req, userID)
	rr := httptest.NewRecorder()

	resp := &domain.ChatResponse{
		UserMessage: domain.ChatMessage{ID: uuid.New(), UserID: userID, Message: "hello", Sender: domain.SenderUser},
		AIResponse:  domain.ChatMessage{ID: uuid.New(), UserID: userID, Sender: domain.SenderAssistant},
	}
	chat.EXPECT().
		Send(gomock.Any(), userID, domain.ChatRequest{Message: "hello"}).
		Return(resp, nil).
		Times(1)

	h.ChatSend(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
}

func TestChatSend_MissingMessage_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// required tag on message stops the request at decode time.
	h, _, _, _, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString(`{}`))
	req = asUser(req, uuid.New())
	rr := httptest.NewRecorder()

	h.ChatSend(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestChatHistory_OwnHistory_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _, chat := newHandler(ctrl)

	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/chat/"+userID.String(), nil)
	req = asUser(req, userID)
	req = addChiURLParam(req, "userId", userID.String())
	rr := httptest.NewRecorder()

	chat.EXPECT().
		History(gomock.Any(), userID, userID, 0, 0).
		Return([]*domain.ChatMessage{{ID: uuid.New()}}, nil).
		Times(1)

	h.ChatHistory(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string]any](t, rr)
	if int(got["count"].(float64)) != 1 {
		t.Fatalf("unexpected count: %+v", got)
	}
}
