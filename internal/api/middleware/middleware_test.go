package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blaisecz/schedule-builder/pkg/problem"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRecovery(t *testing.T) {
	h := Recovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != problem.ContentType {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	h := rl.Handler(http.HandlerFunc(okHandler))

	codes := make([]int, 0, 4)
	for _, addr := range []string{"10.0.0.1:1000", "10.0.0.1:1001", "10.0.0.1:1002", "10.0.0.2:1000"} {
		req := httptest.NewRequest(http.MethodGet, "/v1/schedules", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	want := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests, http.StatusOK}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("request %d: status %d, want %d", i, codes[i], want[i])
		}
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	h := NewRateLimiter(0, 0).Handler(http.HandlerFunc(okHandler))

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", i, w.Code)
		}
	}
}

func TestRateLimiter_ProblemBody(t *testing.T) {
	h := NewRateLimiter(0.001, 1).Handler(http.HandlerFunc(okHandler))

	var w *httptest.ResponseRecorder
	for i := 0; i < 2; i++ {
		w = httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	}

	var p problem.Problem
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Status != http.StatusTooManyRequests || w.Header().Get("Retry-After") == "" {
		t.Errorf("unexpected response: %+v", p)
	}
}

func TestLogger_PassesThrough(t *testing.T) {
	h := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusTeapot {
		t.Fatalf("expected status 418, got %d", w.Code)
	}
}

func TestTracing_RecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	var inner trace.SpanContext
	h := Tracing(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner = trace.SpanContextFromContext(r.Context())
		w.WriteHeader(http.StatusNotFound)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/schedules/x?view=day", nil))

	if !inner.IsValid() {
		t.Fatal("handler did not receive a span context")
	}

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Name() != "GET /v1/schedules/x" {
		t.Errorf("span name = %q", spans[0].Name())
	}

	var status int64
	for _, attr := range spans[0].Attributes() {
		if attr.Key == "http.status_code" {
			status = attr.Value.AsInt64()
		}
	}
	if status != http.StatusNotFound {
		t.Errorf("http.status_code = %d, want 404", status)
	}
}
