package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/blaisecz/schedule-builder/internal/calendar"
	"github.com/blaisecz/schedule-builder/internal/service"
	"github.com/blaisecz/schedule-builder/pkg/problem"
	"github.com/go-chi/chi/v5"
)

// CalendarHandler serves iCalendar exports of schedules.
type CalendarHandler struct {
	service service.ScheduleService
}

func NewCalendarHandler(service service.ScheduleService) *CalendarHandler {
	return &CalendarHandler{service: service}
}

// Export handles GET /v1/schedules/{scheduleId}/calendar.ics
// @Summary Export a schedule as iCalendar
// @Description One VEVENT per time slot. Slot times are interpreted in the given IANA time zone (UTC by default).
// @Tags schedules
// @Produce text/calendar
// @Param scheduleId path string true "Schedule ID"
// @Param tz query string false "IANA time zone" example(Europe/Prague)
// @Success 200 {string} string "iCalendar document"
// @Failure 404 {object} problem.Problem "Schedule not found"
// @Failure 422 {object} problem.Problem "Unknown time zone"
// @Failure 500 {object} problem.Problem
// @Router /schedules/{scheduleId}/calendar.ics [get]
func (h *CalendarHandler) Export(w http.ResponseWriter, r *http.Request) {
	loc := time.UTC
	if tz := r.URL.Query().Get("tz"); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			problem.ValidationError("Invalid query parameters", []problem.FieldError{
				{Field: "tz", Message: "must be a valid IANA timezone"},
			}).Write(w)
			return
		}
		loc = l
	}

	schedule, err := h.service.GetByID(r.Context(), chi.URLParam(r, "scheduleId"))
	if err != nil {
		writeError(w, r, err, "Schedule not found", "Failed to get schedule")
		return
	}

	var buf bytes.Buffer
	if err := calendar.Encode(&buf, schedule, loc); err != nil {
		writeError(w, r, err, "Schedule not found", "Failed to export calendar")
		return
	}

	w.Header().Set("Content-Type", calendar.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", schedule.ID+".ics"))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
