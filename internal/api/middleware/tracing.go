package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracing starts an OpenTelemetry span for each HTTP request and
// propagates the context to downstream handlers and services.
func Tracing(next http.Handler) http.Handler {
	tracer := otel.Tracer("schedule-builder-api/http")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		spanName := r.Method + " " + r.URL.Path
		ctx, span := tracer.Start(ctx, spanName,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			),
		)
		defer span.End()

		if r.URL.RawQuery != "" {
			span.SetAttributes(attribute.String("http.query", r.URL.RawQuery))
		}
		if reqID := chimw.GetReqID(ctx); reqID != "" {
			span.SetAttributes(attribute.String("http.request_id", reqID))
		}

		// Wrap ResponseWriter to capture status code
		tw := &traceResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(tw, r.WithContext(ctx))

		span.SetAttributes(
			attribute.Int("http.status_code", tw.statusCode),
			attribute.Int64("http.duration_ms", time.Since(start).Milliseconds()),
		)
		if tw.statusCode >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(tw.statusCode))
		}
	})
}

type traceResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (tw *traceResponseWriter) WriteHeader(code int) {
	tw.statusCode = code
	tw.ResponseWriter.WriteHeader(code)
}
