package analysis

import (
	"fmt"

	"github.com/blaisecz/schedule-builder/internal/domain"
)

// SlotsOverlap reports whether two slots on the same date intersect. Bounds
// are inclusive, so back-to-back slots overlap here with zero length; callers
// must rely on Overlap > 0 to decide on a conflict.
func SlotsOverlap(a, b domain.TimeSlot) bool {
	if a.Date != b.Date {
		return false
	}

	startA, endA, okA := span(a.StartTime, a.EndTime)
	startB, endB, okB := span(b.StartTime, b.EndTime)
	if !okA || !okB {
		return false
	}

	return within(startA, startB, endB) ||
		within(endA, startB, endB) ||
		within(startB, startA, endA) ||
		within(endB, startA, endA)
}

func within(p, start, end int) bool {
	return p >= start && p <= end
}

// Overlap returns the minutes two slots share, or 0 when they do not overlap.
func Overlap(a, b domain.TimeSlot) int {
	if !SlotsOverlap(a, b) {
		return 0
	}

	startA, endA, _ := span(a.StartTime, a.EndTime)
	startB, endB, _ := span(b.StartTime, b.EndTime)

	return min(endA, endB) - max(startA, startB)
}

// FindConflicts returns every same-day pair of slots overlapping by at least
// one minute. Pairs are emitted day by day, in order of first appearance of
// each date, and within a day by (i, j) index order with i < j.
func FindConflicts(slots []domain.TimeSlot) []domain.ScheduleConflict {
	conflicts := []domain.ScheduleConflict{}

	for _, day := range groupByDate(slots) {
		for i := 0; i < len(day); i++ {
			for j := i + 1; j < len(day); j++ {
				minutes := Overlap(day[i], day[j])
				if minutes <= 0 {
					continue
				}
				conflicts = append(conflicts, domain.ScheduleConflict{
					ID:              fmt.Sprintf("conflict-%s-%s", day[i].ID, day[j].ID),
					SlotA:           day[i],
					SlotB:           day[j],
					OverlapDuration: minutes,
				})
			}
		}
	}

	return conflicts
}

// groupByDate partitions slots by date, keeping dates in first-appearance
// order and slots in input order.
func groupByDate(slots []domain.TimeSlot) [][]domain.TimeSlot {
	index := make(map[string]int)
	var groups [][]domain.TimeSlot

	for _, slot := range slots {
		i, ok := index[slot.Date]
		if !ok {
			i = len(groups)
			index[slot.Date] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], slot)
	}

	return groups
}
