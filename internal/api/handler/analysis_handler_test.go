package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blaisecz/schedule-builder/internal/domain"
	"github.com/blaisecz/schedule-builder/internal/llm"
	"github.com/blaisecz/schedule-builder/internal/service"
	"github.com/go-chi/chi/v5"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func analysisRouter(analysisSvc *MockAnalysisService, insightsSvc *MockInsightsService) chi.Router {
	h := NewAnalysisHandler(analysisSvc, insightsSvc)
	r := chi.NewRouter()
	r.Get("/schedules/{scheduleId}/analysis", h.GetAnalysis)
	r.Get("/schedules/{scheduleId}/insights", h.GetInsights)
	return r
}

func TestAnalysisHandler_GetAnalysis(t *testing.T) {
	var gotID string
	var gotReq domain.AnalysisRequest
	inner := (&MockAnalysisService{}).Analyze
	record := &MockAnalysisService{
		analyzeFunc: func(ctx context.Context, scheduleID string, req domain.AnalysisRequest) (*service.AnalysisResult, error) {
			gotID, gotReq = scheduleID, req
			switch scheduleID {
			case "missing":
				return nil, domain.ErrNotFound
			case "bad-scope":
				return nil, fmt.Errorf("%w: schedule has an unusable target date", domain.ErrInvalidInput)
			}
			return inner(ctx, scheduleID, req)
		},
	}

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedReq    domain.AnalysisRequest
	}{
		{
			name:           "schedule defaults",
			path:           "/schedules/s1/analysis",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "week view",
			path:           "/schedules/s1/analysis?view=week&date=2024-01-17",
			expectedStatus: http.StatusOK,
			expectedReq:    domain.AnalysisRequest{View: domain.ViewWeek, Date: "2024-01-17"},
		},
		{
			name:           "custom range",
			path:           "/schedules/s1/analysis?view=custom&from=2024-01-01&to=2024-01-10",
			expectedStatus: http.StatusOK,
			expectedReq:    domain.AnalysisRequest{View: domain.ViewCustom, From: "2024-01-01", To: "2024-01-10"},
		},
		{
			name:           "custom without range",
			path:           "/schedules/s1/analysis?view=custom",
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "unknown view",
			path:           "/schedules/s1/analysis?view=year",
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "bad date",
			path:           "/schedules/s1/analysis?date=2024-13-01",
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "schedule not found",
			path:           "/schedules/missing/analysis",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "unusable scope",
			path:           "/schedules/bad-scope/analysis",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotID, gotReq = "", domain.AnalysisRequest{}
			w := httptest.NewRecorder()
			analysisRouter(record, &MockInsightsService{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedStatus == http.StatusUnprocessableEntity {
				if gotID != "" {
					t.Error("service should not be called for invalid parameters")
				}
				return
			}
			if gotReq != tt.expectedReq {
				t.Errorf("request = %+v, want %+v", gotReq, tt.expectedReq)
			}
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var raw map[string]json.RawMessage
			if err := json.NewDecoder(w.Body).Decode(&raw); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			for _, key := range []string{"conflicts", "gaps", "suggestions"} {
				if string(raw[key]) != "[]" {
					t.Errorf("%s = %s, want []", key, raw[key])
				}
			}
			if string(raw["utilization"]) != "0" {
				t.Errorf("utilization = %s, want 0", raw["utilization"])
			}
		})
	}
}

func TestAnalysisHandler_GetInsights(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{name: "success", expectedStatus: http.StatusOK},
		{name: "llm not configured", err: llm.ErrOpenAIUnavailable, expectedStatus: http.StatusServiceUnavailable},
		{name: "llm request failed", err: fmt.Errorf("%w: timeout", llm.ErrOpenAIRequest), expectedStatus: http.StatusBadGateway},
		{name: "llm bad output", err: fmt.Errorf("%w: missing summary", llm.ErrOpenAIResponse), expectedStatus: http.StatusBadGateway},
		{name: "schedule not found", err: domain.ErrNotFound, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insights := &MockInsightsService{}
			if tt.err != nil {
				err := tt.err
				insights.generateFunc = func(ctx context.Context, scheduleID string, req domain.AnalysisRequest) (*domain.InsightsResponse, error) {
					return nil, err
				}
			}

			w := httptest.NewRecorder()
			analysisRouter(&MockAnalysisService{}, insights).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/schedules/s1/insights", nil))

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedStatus != http.StatusOK {
				decodeProblem(t, w)
				return
			}

			var resp domain.InsightsResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Insights.Summary == "" {
				t.Error("expected summary")
			}
			if resp.TraceID != "" {
				t.Errorf("TraceID = %q without an active span", resp.TraceID)
			}
		})
	}
}

func TestAnalysisHandler_GetInsights_InvalidQuery(t *testing.T) {
	called := false
	insights := &MockInsightsService{
		generateFunc: func(ctx context.Context, scheduleID string, req domain.AnalysisRequest) (*domain.InsightsResponse, error) {
			called = true
			return nil, nil
		},
	}

	w := httptest.NewRecorder()
	analysisRouter(&MockAnalysisService{}, insights).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/schedules/s1/insights?view=custom&from=2024-01-01", nil))

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", w.Code)
	}
	if called {
		t.Error("service should not be called")
	}
	if p := decodeProblem(t, w); len(p.Errors) != 1 || p.Errors[0].Field != "to" {
		t.Errorf("unexpected errors: %+v", p.Errors)
	}
}

func TestAnalysisHandler_GetInsights_TraceID(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer tp.Shutdown(context.Background())

	var wantTraceID string
	r := analysisRouter(&MockAnalysisService{}, &MockInsightsService{})
	traced := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx, span := tp.Tracer("test").Start(req.Context(), "request")
		defer span.End()
		wantTraceID = span.SpanContext().TraceID().String()
		r.ServeHTTP(w, req.WithContext(ctx))
	})

	w := httptest.NewRecorder()
	traced.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/schedules/s1/insights", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var resp domain.InsightsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.TraceID == "" || resp.TraceID != wantTraceID {
		t.Errorf("TraceID = %q, want %q", resp.TraceID, wantTraceID)
	}
}
