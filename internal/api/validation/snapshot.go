package validation

import (
	"fmt"

	"github.com/blaisecz/schedule-builder/internal/domain"
	"github.com/blaisecz/schedule-builder/pkg/problem"
)

// maxIDLength matches the varchar(64) id columns.
const maxIDLength = 64

// ValidateSnapshot checks every schedule and time slot of an imported
// snapshot with the same rules as creating them. Fields are reported by
// position, e.g. "[0].timeSlots[2].startTime".
func ValidateSnapshot(schedules []domain.Schedule) []problem.FieldError {
	var fieldErrors []problem.FieldError
	add := func(prefix string, errs []problem.FieldError) {
		for _, fe := range errs {
			fe.Field = prefix + fe.Field
			fieldErrors = append(fieldErrors, fe)
		}
	}

	for i, s := range schedules {
		prefix := fmt.Sprintf("[%d].", i)
		add(prefix, checkID(s.ID))
		add(prefix, Validate(domain.CreateScheduleRequest{
			Name:       s.Name,
			ViewType:   s.ViewType,
			TargetDate: s.TargetDate,
		}))

		for j, slot := range s.TimeSlots {
			slotPrefix := fmt.Sprintf("%stimeSlots[%d].", prefix, j)
			add(slotPrefix, checkID(slot.ID))
			add(slotPrefix, Validate(domain.CreateTimeSlotRequest{
				Title:         slot.Title,
				StartTime:     slot.StartTime,
				EndTime:       slot.EndTime,
				Date:          slot.Date,
				Category:      slot.Category,
				Description:   slot.Description,
				Location:      slot.Location,
				Priority:      slot.Priority,
				IsRecurring:   slot.IsRecurring,
				RecurringDays: slot.RecurringDays,
			}))
		}
	}
	return fieldErrors
}

func checkID(id string) []problem.FieldError {
	if len(id) > maxIDLength {
		return []problem.FieldError{{Field: "id", Message: fmt.Sprintf("must be at most %d", maxIDLength)}}
	}
	return nil
}
