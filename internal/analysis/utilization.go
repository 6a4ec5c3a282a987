package analysis

import (
	"math"

	"github.com/blaisecz/schedule-builder/internal/domain"
)

// ScheduledMinutes sums the durations of the slots dated inside the scope.
func ScheduledMinutes(slots []domain.TimeSlot, scope Scope) int {
	total := 0
	for _, slot := range slots {
		if !scope.Contains(slot.Date) {
			continue
		}
		total += Duration(slot.StartTime, slot.EndTime)
	}
	return total
}

// Utilization returns the share of the scope's available minutes taken by
// scheduled slots, as a percentage in [0, 100] rounded to one decimal,
// together with the raw scheduled and available minutes.
func Utilization(slots []domain.TimeSlot, scope Scope) (float64, int, int) {
	scheduled := ScheduledMinutes(slots, scope)
	available := scope.AvailableMinutes()

	if scheduled <= 0 || available <= 0 {
		return 0, scheduled, available
	}

	pct := math.Min(100, float64(scheduled)/float64(available)*100)
	return math.Round(pct*10) / 10, scheduled, available
}
