package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/schedule-builder/internal/api/validation"
	"github.com/blaisecz/schedule-builder/internal/domain"
	"github.com/blaisecz/schedule-builder/internal/service"
	"github.com/blaisecz/schedule-builder/pkg/problem"
	"github.com/go-chi/chi/v5"
)

type TimeSlotHandler struct {
	service service.TimeSlotService
}

func NewTimeSlotHandler(service service.TimeSlotService) *TimeSlotHandler {
	return &TimeSlotHandler{service: service}
}

// Create handles POST /v1/schedules/{scheduleId}/time-slots
// @Summary Add a time slot
// @Description Add a slot to a schedule. An endTime earlier than startTime runs past midnight. Overlapping slots are accepted and reported by the analysis.
// @Tags time-slots
// @Accept json
// @Produce json
// @Param scheduleId path string true "Schedule ID"
// @Param request body domain.CreateTimeSlotRequest true "Time slot"
// @Success 201 {object} domain.TimeSlot
// @Failure 400 {object} problem.Problem "Invalid JSON body"
// @Failure 404 {object} problem.Problem "Schedule not found"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem
// @Router /schedules/{scheduleId}/time-slots [post]
func (h *TimeSlotHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTimeSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	slot, err := h.service.Create(r.Context(), chi.URLParam(r, "scheduleId"), &req)
	if err != nil {
		writeError(w, r, err, "Schedule not found", "Failed to create time slot")
		return
	}

	writeJSON(w, http.StatusCreated, slot)
}

// List handles GET /v1/schedules/{scheduleId}/time-slots
// @Summary List time slots
// @Description List slots sorted by date and start time, optionally within a date range
// @Tags time-slots
// @Produce json
// @Param scheduleId path string true "Schedule ID"
// @Param from query string false "First date (YYYY-MM-DD)" example(2024-01-15)
// @Param to query string false "Last date (YYYY-MM-DD)" example(2024-01-21)
// @Success 200 {object} domain.TimeSlotListResponse
// @Failure 404 {object} problem.Problem "Schedule not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem
// @Router /schedules/{scheduleId}/time-slots [get]
func (h *TimeSlotHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.TimeSlotFilter{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}
	if fieldErrors := validation.Validate(filter); fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), chi.URLParam(r, "scheduleId"), filter)
	if err != nil {
		writeError(w, r, err, "Schedule not found", "Failed to list time slots")
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Update handles PATCH /v1/schedules/{scheduleId}/time-slots/{slotId}
// @Summary Update a time slot
// @Description Partially update a slot; omitted fields keep their value
// @Tags time-slots
// @Accept json
// @Produce json
// @Param scheduleId path string true "Schedule ID"
// @Param slotId path string true "Time slot ID"
// @Param request body domain.UpdateTimeSlotRequest true "Fields to change"
// @Success 200 {object} domain.TimeSlot
// @Failure 400 {object} problem.Problem "Invalid JSON body"
// @Failure 404 {object} problem.Problem "Time slot not found"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem
// @Router /schedules/{scheduleId}/time-slots/{slotId} [patch]
func (h *TimeSlotHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateTimeSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	slot, err := h.service.Update(r.Context(), chi.URLParam(r, "scheduleId"), chi.URLParam(r, "slotId"), &req)
	if err != nil {
		writeError(w, r, err, "Time slot not found", "Failed to update time slot")
		return
	}

	writeJSON(w, http.StatusOK, slot)
}

// Delete handles DELETE /v1/schedules/{scheduleId}/time-slots/{slotId}
// @Summary Delete a time slot
// @Tags time-slots
// @Param scheduleId path string true "Schedule ID"
// @Param slotId path string true "Time slot ID"
// @Success 204 "Time slot deleted"
// @Failure 404 {object} problem.Problem "Time slot not found"
// @Failure 500 {object} problem.Problem
// @Router /schedules/{scheduleId}/time-slots/{slotId} [delete]
func (h *TimeSlotHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "scheduleId"), chi.URLParam(r, "slotId")); err != nil {
		writeError(w, r, err, "Time slot not found", "Failed to delete time slot")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
