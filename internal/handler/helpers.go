package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/johny-gastrobar/backoffice/internal/draft"
	"github.com/johny-gastrobar/backoffice/internal/gastro"
	"github.com/johny-gastrobar/backoffice/internal/session"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("failed to encode JSON response", zap.Error(err))
	}
}

// writeError maps the error taxonomy onto HTTP statuses for the screens:
// local validation stays 4xx with the offending field attached, backend
// statuses pass through, and transport failures surface as 502 so the
// screen can show a transient notification and keep its state.
func writeError(w http.ResponseWriter, log *zap.Logger, err error) {
	var (
		verr    *draft.ValidationError
		invalid *draft.InvalidItemError
		herr    *gastro.HTTPError
		nerr    *gastro.NetworkError
	)

	switch {
	case errors.Is(err, session.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "draft not found"})
	case errors.Is(err, session.ErrSubmitting):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "submission already in progress"})
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": verr.Message, "field": verr.Field})
	case errors.As(err, &invalid):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": invalid.Error()})
	case errors.As(err, &herr):
		writeJSON(w, herr.Status, map[string]string{"error": backendMessage(herr)})
	case errors.As(err, &nerr):
		log.Warn("backend unreachable", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "backend unreachable"})
	default:
		log.Error("unexpected error", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

// intParam parses a numeric chi URL parameter.
func intParam(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func backendMessage(herr *gastro.HTTPError) string {
	if herr.Message != "" {
		return herr.Message
	}
	if herr.Status == http.StatusNotFound {
		return "not found"
	}
	return "backend rejected the request"
}
