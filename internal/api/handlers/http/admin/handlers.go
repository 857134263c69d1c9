package admin

import (
	"context"
	"log/slog"
	"net/http"

	"safescout/internal/domain"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ZoneAdmin interface {
	Create(ctx context.Context, req domain.CreateDangerZoneRequest) (*domain.DangerZone, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.DangerZone, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateDangerZoneRequest) (*domain.DangerZone, error)
	List(ctx context.Context, filter domain.ZoneFilter, limit, offset int) ([]*domain.DangerZone, error)
}

type ResourceAdmin interface {
	Create(ctx context.Context, req domain.CreateSafetyResourceRequest) (*domain.SafetyResource, error)
	List(ctx context.Context, filter domain.ResourceFilter, limit, offset int) ([]*domain.SafetyResource, error)
}

type ScoreAdmin interface {
	Create(ctx context.Context, req domain.CreateAreaScoreRequest) (*domain.AreaSafetyScore, error)
	List(ctx context.Context, limit, offset int) ([]*domain.AreaSafetyScore, error)
}

type IncidentReviewer interface {
	List(ctx context.Context, filter domain.IncidentFilter, limit, offset int) ([]*domain.IncidentReport, error)
}

type ZoneEntryReader interface {
	ListRecent(ctx context.Context, limit, offset int) ([]*domain.ZoneEntry, error)
}

type Handler struct {
	logger    *slog.Logger
	Zones     ZoneAdmin
	Resources ResourceAdmin
	Scores    ScoreAdmin
	Incidents IncidentReviewer
	Entries   ZoneEntryReader
}

func NewHandler(logger *slog.Logger, zones ZoneAdmin, resources ResourceAdmin, scores ScoreAdmin, incidents IncidentReviewer, entries ZoneEntryReader) *Handler {
	return &Handler{
		logger:    logger,
		Zones:     zones,
		Resources: resources,
		Scores:    scores,
		Incidents: incidents,
		Entries:   entries,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) ZoneCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateDangerZoneRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	l.Info("creating danger zone",
		slog.String("name", req.Name),
		slog.Float64("lat", req.Lat),
		slog.Float64("lng", req.Lng),
		slog.String("risk_level", string(req.RiskLevel)),
	)

	zone, err := h.Zones.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, zone)
}

func (h *Handler) ZoneGet(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		l.Warn("invalid id", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	zone, err := h.Zones.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, zone)
}

func (h *Handler) ZoneUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		l.Warn("invalid id", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.UpdateDangerZoneRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	zone, err := h.Zones.Update(r.Context(), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, zone)
}

func (h *Handler) ZoneList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.ZoneFilter{
		RiskLevel:       domain.RiskLevel(q.Get("riskLevel")),
		IncludeInactive: q.Get("includeInactive") == "true",
	}

	limit, offset, ok := h.parsePage(w, r)
	if !ok {
		return
	}

	zones, err := h.Zones.List(r.Context(), filter, limit, offset)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"zones": zones,
		"count": len(zones),
	})
}

func (h *Handler) ResourceCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSafetyResourceRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	res, err := h.Resources.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, res)
}

func (h *Handler) ResourceList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.ResourceFilter{
		Type: domain.ResourceType(q.Get("type")),
	}
	if v := q.Get("available247"); v != "" {
		avail := v == "true"
		filter.Available247 = &avail
	}

	limit, offset, ok := h.parsePage(w, r)
	if !ok {
		return
	}

	resources, err := h.Resources.List(r.Context(), filter, limit, offset)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"resources": resources,
		"count":     len(resources),
	})
}

func (h *Handler) ScoreCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateAreaScoreRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	score, err := h.Scores.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, score)
}

func (h *Handler) ScoreList(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := h.parsePage(w, r)
	if !ok {
		return
	}

	scores, err := h.Scores.List(r.Context(), limit, offset)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"scores": scores,
		"count":  len(scores),
	})
}

// IncidentList is the review queue: all users' reports, filterable by
// status and threat level.
func (h *Handler) IncidentList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.IncidentFilter{
		Status:      domain.IncidentStatus(q.Get("status")),
		ThreatLevel: domain.ThreatLevel(q.Get("threatLevel")),
	}

	limit, offset, ok := h.parsePage(w, r)
	if !ok {
		return
	}

	incidents, err := h.Incidents.List(r.Context(), filter, limit, offset)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"incidents": incidents,
		"count":     len(incidents),
	})
}

func (h *Handler) ZoneEntryList(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := h.parsePage(w, r)
	if !ok {
		return
	}

	entries, err := h.Entries.ListRecent(r.Context(), limit, offset)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"entries": entries,
		"count":   len(entries),
	})
}
