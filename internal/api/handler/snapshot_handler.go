package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/blaisecz/schedule-builder/internal/api/validation"
	"github.com/blaisecz/schedule-builder/internal/service"
	"github.com/blaisecz/schedule-builder/internal/snapshot"
	"github.com/blaisecz/schedule-builder/pkg/problem"
)

// MaxSnapshotBytes caps the size of an uploaded snapshot.
const MaxSnapshotBytes = 10 << 20

// SnapshotHandler exports and imports every schedule as one JSON document.
type SnapshotHandler struct {
	service service.ScheduleService
}

func NewSnapshotHandler(service service.ScheduleService) *SnapshotHandler {
	return &SnapshotHandler{service: service}
}

// Export handles GET /v1/snapshot
// @Summary Export all schedules
// @Description Return every schedule with its time slots as a JSON array, compatible with schedulectl's local store.
// @Tags snapshot
// @Produce json
// @Success 200 {array} domain.Schedule
// @Failure 500 {object} problem.Problem
// @Router /snapshot [get]
func (h *SnapshotHandler) Export(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.service.Export(r.Context())
	if err != nil {
		writeError(w, r, err, "Snapshot not found", "Failed to export snapshot")
		return
	}

	var buf bytes.Buffer
	if err := snapshot.Encode(&buf, schedules); err != nil {
		writeError(w, r, err, "Snapshot not found", "Failed to export snapshot")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+snapshot.StorageKey+`.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// Import handles PUT /v1/snapshot
// @Summary Replace all schedules
// @Description Replace every stored schedule with the uploaded JSON array. Missing timestamps default to now and missing timeSlots to an empty list.
// @Tags snapshot
// @Accept json
// @Param request body []domain.Schedule true "Schedules"
// @Success 204 "Snapshot imported"
// @Failure 400 {object} problem.Problem "Malformed snapshot"
// @Failure 413 {object} problem.Problem "Snapshot too large"
// @Failure 422 {object} problem.Problem "Invalid schedule or time slot fields"
// @Failure 500 {object} problem.Problem
// @Router /snapshot [put]
func (h *SnapshotHandler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxSnapshotBytes)

	schedules, err := snapshot.Decode(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			problem.New(http.StatusRequestEntityTooLarge, "payload-too-large", "Payload Too Large", "Snapshot exceeds 10 MiB").Write(w)
			return
		}
		problem.BadRequest(err.Error()).Write(w)
		return
	}

	if fieldErrors := validation.ValidateSnapshot(schedules); fieldErrors != nil {
		problem.ValidationError("Snapshot contains invalid fields", fieldErrors).Write(w)
		return
	}

	if err := h.service.Import(r.Context(), schedules); err != nil {
		writeError(w, r, err, "Snapshot not found", "Failed to import snapshot")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
