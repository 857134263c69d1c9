package public

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"safescout/internal/domain"
	"safescout/pkg/e"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	l.Error("handler error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	switch {
	case errors.Is(err, e.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, e.ErrInvalidCoordinates),
		errors.Is(err, e.ErrInvalidEnum),
		errors.Is(err, e.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid input"})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// parseCenter requires lat and lng query params and range-checks them
// before the service is called.
func (h *Handler) parseCenter(w http.ResponseWriter, r *http.Request) (domain.Point, bool) {
	q := r.URL.Query()

	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lat is required"})
		return domain.Point{}, false
	}
	lng, err := strconv.ParseFloat(q.Get("lng"), 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lng is required"})
		return domain.Point{}, false
	}

	center := domain.Point{Lat: lat, Lng: lng}
	if err := center.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "coordinates out of range"})
		return domain.Point{}, false
	}
	return center, true
}

func parseFloatParam(s string, def float64) (float64, error) {
	if s == "" {
		return def, nil
	}
	return strconv.ParseFloat(s, 64)
}
