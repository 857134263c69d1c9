package public

import (
	"context"
	"log/slog"
	"net/http"

	"safescout/internal/domain"
	"safescout/internal/geo"

	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ZoneFinder interface {
	Nearby(ctx context.Context, center domain.Point, radiusMeters float64) ([]geo.Match[domain.DangerZone], error)
}

type ResourceFinder interface {
	Nearby(ctx context.Context, center domain.Point, radiusMeters float64, typeFilter domain.ResourceType) ([]geo.Match[domain.SafetyResource], error)
}

type ScoreFinder interface {
	Nearest(ctx context.Context, center domain.Point) (geo.Match[domain.AreaSafetyScore], error)
}

type Handler struct {
	logger    *slog.Logger
	Zones     ZoneFinder
	Resources ResourceFinder
	Scores    ScoreFinder
}

func NewHandler(logger *slog.Logger, zones ZoneFinder, resources ResourceFinder, scores ScoreFinder) *Handler {
	return &Handler{
		logger:    logger,
		Zones:     zones,
		Resources: resources,
		Scores:    scores,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) ZonesNearby(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	center, ok := h.parseCenter(w, r)
	if !ok {
		return
	}
	radius, err := parseFloatParam(r.URL.Query().Get("radius"), 0)
	if err != nil || radius < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid radius"})
		return
	}

	matches, err := h.Zones.Nearby(r.Context(), center, radius)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("zones nearby", slog.Int("count", len(matches)))
	writeJSON(w, http.StatusOK, map[string]any{
		"zones": matches,
		"count": len(matches),
	})
}

func (h *Handler) ResourcesNearby(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	center, ok := h.parseCenter(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	radius, err := parseFloatParam(q.Get("radius"), 0)
	if err != nil || radius < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid radius"})
		return
	}

	matches, err := h.Resources.Nearby(r.Context(), center, radius, domain.ResourceType(q.Get("type")))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("resources nearby", slog.Int("count", len(matches)))
	writeJSON(w, http.StatusOK, map[string]any{
		"resources": matches,
		"count":     len(matches),
	})
}

func (h *Handler) ScoreNearest(w http.ResponseWriter, r *http.Request) {
	center, ok := h.parseCenter(w, r)
	if !ok {
		return
	}

	match, err := h.Scores.Nearest(r.Context(), center)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, match)
}
