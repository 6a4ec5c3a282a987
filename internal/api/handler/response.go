package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/blaisecz/schedule-builder/internal/domain"
	"github.com/blaisecz/schedule-builder/pkg/problem"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps service errors to problem responses.
func writeError(w http.ResponseWriter, r *http.Request, err error, notFound, fallback string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound(notFound).WithInstance(r.URL.Path).Write(w)
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidSnapshot):
		problem.BadRequest(err.Error()).WithInstance(r.URL.Path).Write(w)
	default:
		zap.L().Error(fallback,
			zap.Error(err),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
		problem.InternalError(fallback).WithInstance(r.URL.Path).Write(w)
	}
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultValue int) (int, bool) {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultValue, true
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue, false
	}
	return parsed, true
}
