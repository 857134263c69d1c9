package user

import (
	"context"
	"log/slog"
	"net/http"

	"safescout/internal/domain"
	"safescout/internal/middleware"
	"safescout/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type SOSAlerts interface {
	Create(ctx context.Context, userID uuid.UUID, req domain.CreateSOSRequest) (*domain.SOSAlert, error)
	Update(ctx context.Context, id, userID uuid.UUID, req domain.UpdateSOSRequest) (*domain.SOSAlert, error)
	ListOwned(ctx context.Context, userID uuid.UUID, status domain.SOSStatus, limit, offset int) ([]*domain.SOSAlert, error)
}

type Incidents interface {
	Create(ctx context.Context, userID uuid.UUID, req domain.CreateIncidentRequest) (*domain.IncidentReport, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateIncidentRequest) (*domain.IncidentReport, error)
	ListOwned(ctx context.Context, requested, actingUserID uuid.UUID, status domain.IncidentStatus, limit, offset int) ([]*domain.IncidentReport, error)
}

type Locations interface {
	Track(ctx context.Context, userID uuid.UUID, req domain.TrackLocationRequest) (*service.TrackResult, error)
	ListOwned(ctx context.Context, requested, actingUserID uuid.UUID, limit, offset int) ([]*domain.LocationSample, error)
}

type Chat interface {
	Send(ctx context.Context, userID uuid.UUID, req domain.ChatRequest) (*domain.ChatResponse, error)
	History(ctx context.Context, requested, actingUserID uuid.UUID, limit, offset int) ([]*domain.ChatMessage, error)
}

type Handler struct {
	logger    *slog.Logger
	SOS       SOSAlerts
	Incidents Incidents
	Locations Locations
	Chat      Chat
}

func NewHandler(logger *slog.Logger, sos SOSAlerts, incidents Incidents, locations Locations, chat Chat) *Handler {
	return &Handler{
		logger:    logger,
		SOS:       sos,
		Incidents: incidents,
		Locations: locations,
		Chat:      chat,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// caller returns the authenticated user set by the session middleware.
func (h *Handler) caller(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := middleware.UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) SOSCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	userID, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req domain.CreateSOSRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	alert, err := h.SOS.Create(r.Context(), userID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("sos created", slog.String("id", alert.ID.String()))
	writeJSON(w, http.StatusCreated, alert)
}

func (h *Handler) SOSUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	userID, ok := h.caller(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		l.Warn("invalid id", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.UpdateSOSRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	alert, err := h.SOS.Update(r.Context(), id, userID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, alert)
}

func (h *Handler) SOSList(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.caller(w, r)
	if !ok {
		return
	}

	limit, offset, ok := h.parsePage(w, r)
	if !ok {
		return
	}

	status := domain.SOSStatus(r.URL.Query().Get("status"))
	alerts, err := h.SOS.ListOwned(r.Context(), userID, status, limit, offset)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"alerts": alerts,
		"count":  len(alerts),
	})
}

func (h *Handler) IncidentCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	userID, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req domain.CreateIncidentRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	inc, err := h.Incidents.Create(r.Context(), userID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("incident created", slog.String("id", inc.ID.String()))
	writeJSON(w, http.StatusCreated, inc)
}

func (h *Handler) IncidentUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	if _, ok := h.caller(w, r); !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		l.Warn("invalid id", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.UpdateIncidentRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	inc, err := h.Incidents.Update(r.Context(), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, inc)
}

func (h *Handler) IncidentListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.caller(w, r)
	if !ok {
		return
	}

	requested, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid user id"})
		return
	}

	limit, offset, ok := h.parsePage(w, r)
	if !ok {
		return
	}

	status := domain.IncidentStatus(r.URL.Query().Get("status"))
	incidents, err := h.Incidents.ListOwned(r.Context(), requested, userID, status, limit, offset)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"incidents": incidents,
		"count":     len(incidents),
	})
}

func (h *Handler) LocationTrack(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req domain.TrackLocationRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	result, err := h.Locations.Track(r.Context(), userID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) LocationListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.caller(w, r)
	if !ok {
		return
	}

	requested, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid user id"})
		return
	}

	limit, offset, ok := h.parsePage(w, r)
	if !ok {
		return
	}

	samples, err := h.Locations.ListOwned(r.Context(), requested, userID, limit, offset)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"locations": samples,
		"count":     len(samples),
	})
}

func (h *Handler) ChatSend(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req domain.ChatRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	resp, err := h.Chat.Send(r.Context(), userID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) ChatHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.caller(w, r)
	if !ok {
		return
	}

	requested, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid user id"})
		return
	}

	limit, offset, ok := h.parsePage(w, r)
	if !ok {
		return
	}

	messages, err := h.Chat.History(r.Context(), requested, userID, limit, offset)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"messages": messages,
		"count":    len(messages),
	})
}
