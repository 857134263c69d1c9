package user

import (
	"encoding/json"
	"errors"
	"io"
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
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, e.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
	case errors.Is(err, e.ErrForbidden):
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
	case errors.Is(err, e.ErrInvalidTransition):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "alert already finalized"})
	case errors.Is(err, e.ErrOwnerFieldForbidden):
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "User ID cannot be provided in request body",
			"code":  "USER_ID_NOT_ALLOWED",
		})
	case errors.Is(err, e.ErrNoFields):
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "at least one field must be provided",
			"code":  "NO_FIELDS_PROVIDED",
		})
	case errors.Is(err, e.ErrInvalidPagination):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid pagination"})
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

// decodeBody decodes the JSON body into target after rejecting any
// attempt to smuggle an owner field: ownership always comes from the
// session, never from the payload.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, target any) bool {
	l := h.log(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return false
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(body, &keys); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}

	_, hasCamel := keys["userId"]
	_, hasSnake := keys["user_id"]
	if hasCamel || hasSnake {
		h.handleError(w, r, e.ErrOwnerFieldForbidden)
		return false
	}

	if err := json.Unmarshal(body, target); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}

	if err := validator.ValidateStruct(target); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid input"})
		return false
	}
	return true
}

func (h *Handler) parsePage(w http.ResponseWriter, r *http.Request) (limit, offset int, ok bool) {
	q := r.URL.Query()

	limit, err := parseIntParam(q.Get("limit"), 0)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
		return 0, 0, false
	}
	offset, err = parseIntParam(q.Get("offset"), 0)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid offset"})
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
