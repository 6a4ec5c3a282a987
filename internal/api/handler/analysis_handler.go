package handler

import (
	"errors"
	"net/http"

	"github.com/blaisecz/schedule-builder/internal/api/validation"
	"github.com/blaisecz/schedule-builder/internal/domain"
	"github.com/blaisecz/schedule-builder/internal/llm"
	"github.com/blaisecz/schedule-builder/internal/service"
	"github.com/blaisecz/schedule-builder/pkg/problem"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// AnalysisHandler handles schedule analysis endpoints.
type AnalysisHandler struct {
	analysisService service.AnalysisService
	insightsService service.InsightsService
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analysisService service.AnalysisService, insightsService service.InsightsService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		insightsService: insightsService,
	}
}

func parseAnalysisRequest(r *http.Request) domain.AnalysisRequest {
	q := r.URL.Query()
	return domain.AnalysisRequest{
		View: domain.ViewType(q.Get("view")),
		Date: q.Get("date"),
		From: q.Get("from"),
		To:   q.Get("to"),
	}
}

// GetAnalysis handles GET /v1/schedules/{scheduleId}/analysis
// @Summary Analyse a schedule
// @Description Detect conflicts and gaps, compute utilization and derive suggestions for the slots inside the selected view. Without parameters the schedule's own view and target date are used.
// @Tags analysis
// @Produce json
// @Param scheduleId path string true "Schedule ID"
// @Param view query string false "Viewing scope" Enums(day, week, month, custom)
// @Param date query string false "Reference date for day/week/month (YYYY-MM-DD)" example(2024-01-15)
// @Param from query string false "First day of a custom range (YYYY-MM-DD)"
// @Param to query string false "Last day of a custom range (YYYY-MM-DD)"
// @Success 200 {object} domain.ScheduleAnalysis
// @Failure 400 {object} problem.Problem "Unusable scope"
// @Failure 404 {object} problem.Problem "Schedule not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem
// @Router /schedules/{scheduleId}/analysis [get]
func (h *AnalysisHandler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	req := parseAnalysisRequest(r)
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	result, err := h.analysisService.Analyze(r.Context(), chi.URLParam(r, "scheduleId"), req)
	if err != nil {
		writeError(w, r, err, "Schedule not found", "Failed to analyse schedule")
		return
	}

	writeJSON(w, http.StatusOK, result.Analysis)
}

// GetInsights handles GET /v1/schedules/{scheduleId}/insights
// @Summary Get LLM-powered schedule insights
// @Description Run the analysis and ask the LLM for a summary, observations and recommendations.
// @Tags analysis
// @Produce json
// @Param scheduleId path string true "Schedule ID"
// @Param view query string false "Viewing scope" Enums(day, week, month, custom)
// @Param date query string false "Reference date for day/week/month (YYYY-MM-DD)"
// @Param from query string false "First day of a custom range (YYYY-MM-DD)"
// @Param to query string false "Last day of a custom range (YYYY-MM-DD)"
// @Success 200 {object} domain.InsightsResponse "Analysis with LLM commentary"
// @Failure 404 {object} problem.Problem "Schedule not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /schedules/{scheduleId}/insights [get]
func (h *AnalysisHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	req := parseAnalysisRequest(r)
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	result, err := h.insightsService.Generate(r.Context(), chi.URLParam(r, "scheduleId"), req)
	if err != nil {
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.ServiceUnavailable("OpenAI service is not configured").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIRequest) || errors.Is(err, llm.ErrOpenAIResponse) {
			zap.L().Warn("insights generation failed", zap.Error(err))
			problem.BadGateway("Failed to generate insights from LLM").Write(w)
			return
		}
		writeError(w, r, err, "Schedule not found", "Failed to generate insights")
		return
	}

	// Attach OTEL trace ID (if present) so clients can look up the request trace
	span := trace.SpanFromContext(r.Context())
	if span.SpanContext().IsValid() {
		result.TraceID = span.SpanContext().TraceID().String()
	}

	writeJSON(w, http.StatusOK, result)
}
