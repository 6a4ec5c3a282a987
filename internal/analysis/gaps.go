package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/blaisecz/schedule-builder/internal/domain"
)

// startKey orders slots by start time; unparseable starts sort last.
func startKey(slot domain.TimeSlot) int {
	m, err := ParseClock(slot.StartTime)
	if err != nil {
		return math.MaxInt
	}
	return m
}

// SortSlots returns a copy of slots ordered by date, then start time. Ties
// keep their input order.
func SortSlots(slots []domain.TimeSlot) []domain.TimeSlot {
	sorted := make([]domain.TimeSlot, len(slots))
	copy(sorted, slots)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return startKey(sorted[i]) < startKey(sorted[j])
	})

	return sorted
}

func sortByStart(slots []domain.TimeSlot) []domain.TimeSlot {
	sorted := make([]domain.TimeSlot, len(slots))
	copy(sorted, slots)

	sort.SliceStable(sorted, func(i, j int) bool {
		return startKey(sorted[i]) < startKey(sorted[j])
	})

	return sorted
}

// FindGaps returns the idle intervals between chronologically adjacent slots
// of each day. Nothing is reported before a day's first slot, after its last
// slot, or across days. The midnight wrap applies to the gap length, so a
// next slot starting before the previous one ends yields a wrapped interval.
func FindGaps(slots []domain.TimeSlot) []domain.TimeGap {
	gaps := []domain.TimeGap{}
	if len(slots) <= 1 {
		return gaps
	}

	for _, day := range groupByDate(slots) {
		sorted := sortByStart(day)

		for i := 0; i < len(sorted)-1; i++ {
			end := sorted[i].EndTime
			next := sorted[i+1].StartTime

			minutes := Duration(end, next)
			if minutes <= 0 {
				continue
			}
			gaps = append(gaps, domain.TimeGap{
				ID:        fmt.Sprintf("gap-%s-%d", sorted[i].Date, i),
				StartTime: end,
				EndTime:   next,
				Duration:  minutes,
			})
		}
	}

	return gaps
}
