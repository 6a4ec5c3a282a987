package middleware

import (
	"net/http"

	"github.com/blaisecz/schedule-builder/pkg/problem"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Recovery recovers from panics and returns a 500 error
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}
				zap.L().Error("panic recovered",
					zap.Any("panic", err),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("request_id", chimw.GetReqID(r.Context())),
					zap.Stack("stack"),
				)
				problem.InternalError("An unexpected error occurred").Write(w)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
