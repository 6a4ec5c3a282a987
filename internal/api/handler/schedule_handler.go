package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/schedule-builder/internal/api/validation"
	"github.com/blaisecz/schedule-builder/internal/domain"
	"github.com/blaisecz/schedule-builder/internal/service"
	"github.com/blaisecz/schedule-builder/pkg/pagination"
	"github.com/blaisecz/schedule-builder/pkg/problem"
	"github.com/go-chi/chi/v5"
)

// @title Schedule Builder API
// @version 1.0
// @description API for building schedules and analysing conflicts, gaps and utilization
// @BasePath /v1

type ScheduleHandler struct {
	service service.ScheduleService
}

func NewScheduleHandler(service service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// Create handles POST /v1/schedules
// @Summary Create a schedule
// @Description Create an empty schedule with an optional default view and target date
// @Tags schedules
// @Accept json
// @Produce json
// @Param request body domain.CreateScheduleRequest true "Schedule creation request"
// @Success 201 {object} domain.Schedule
// @Failure 400 {object} problem.Problem "Invalid JSON body"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem
// @Router /schedules [post]
func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	schedule, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeError(w, r, err, "Schedule not found", "Failed to create schedule")
		return
	}

	writeJSON(w, http.StatusCreated, schedule)
}

// List handles GET /v1/schedules
// @Summary List schedules
// @Description Fetch schedules newest first with their slot counts
// @Tags schedules
// @Produce json
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's nextCursor"
// @Success 200 {object} domain.ScheduleListResponse
// @Failure 400 {object} problem.Problem "Invalid cursor"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem
// @Router /schedules [get]
func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseIntParam(r, "limit", pagination.DefaultLimit)
	if !ok || limit < 1 || limit > pagination.MaxLimit {
		problem.ValidationError("Invalid query parameters", []problem.FieldError{
			{Field: "limit", Message: "must be an integer between 1 and 100"},
		}).Write(w)
		return
	}

	filter := domain.ScheduleFilter{
		Limit:  limit,
		Cursor: r.URL.Query().Get("cursor"),
	}

	response, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err, "Schedule not found", "Failed to list schedules")
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// GetByID handles GET /v1/schedules/{scheduleId}
// @Summary Get a schedule
// @Description Get a schedule with all of its time slots
// @Tags schedules
// @Produce json
// @Param scheduleId path string true "Schedule ID"
// @Success 200 {object} domain.Schedule
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /schedules/{scheduleId} [get]
func (h *ScheduleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.service.GetByID(r.Context(), chi.URLParam(r, "scheduleId"))
	if err != nil {
		writeError(w, r, err, "Schedule not found", "Failed to get schedule")
		return
	}

	writeJSON(w, http.StatusOK, schedule)
}

// Update handles PATCH /v1/schedules/{scheduleId}
// @Summary Update a schedule
// @Description Partially update name, default view or target date
// @Tags schedules
// @Accept json
// @Produce json
// @Param scheduleId path string true "Schedule ID"
// @Param request body domain.UpdateScheduleRequest true "Fields to change"
// @Success 200 {object} domain.Schedule
// @Failure 400 {object} problem.Problem "Invalid JSON body"
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem
// @Router /schedules/{scheduleId} [patch]
func (h *ScheduleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	schedule, err := h.service.Update(r.Context(), chi.URLParam(r, "scheduleId"), &req)
	if err != nil {
		writeError(w, r, err, "Schedule not found", "Failed to update schedule")
		return
	}

	writeJSON(w, http.StatusOK, schedule)
}

// Delete handles DELETE /v1/schedules/{scheduleId}
// @Summary Delete a schedule
// @Description Delete a schedule together with its time slots
// @Tags schedules
// @Param scheduleId path string true "Schedule ID"
// @Success 204 "Schedule deleted"
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /schedules/{scheduleId} [delete]
func (h *ScheduleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "scheduleId")); err != nil {
		writeError(w, r, err, "Schedule not found", "Failed to delete schedule")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
