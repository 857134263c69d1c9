package admin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"safescout/pkg/e"
	"safescout/pkg/validator"
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
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, e.ErrInvalidPagination):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid pagination"})
	case errors.Is(err, e.ErrNoFields):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no fields provided"})
	case errors.Is(err, e.ErrInvalidCoordinates),
		errors.Is(err, e.ErrInvalidEnum),
		errors.Is(err, e.ErrInvalidInput):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid input"})
	case errors.Is(err, e.ErrUniqueViolation), errors.Is(err, e.ErrConflict):
		h.writeJSON(w, http.StatusConflict, map[string]string{"error": "conflict"})
	default:
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

// decodeJSON decodes the body and runs struct-tag validation so
// handlers only pass well-formed requests down.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, target any) bool {
	l := h.log(r)

	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}

	if err := validator.ValidateStruct(target); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid input"})
		return false
	}
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// parsePage reads limit/offset query params; zero limit means the
// service default. Non-numeric values are rejected here so the services
// only see ints.
func (h *Handler) parsePage(w http.ResponseWriter, r *http.Request) (limit, offset int, ok bool) {
	q := r.URL.Query()

	limit, err := parseIntParam(q.Get("limit"), 0)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
		return 0, 0, false
	}
	offset, err = parseIntParam(q.Get("offset"), 0)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid offset"})
		return 0, 0, false
	}
	return limit, offset, true
}

func parseIntParam(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}
