package analysis

import (
	"fmt"

	"github.com/blaisecz/schedule-builder/internal/domain"
)

const (
	// MinSuggestedGapMinutes is the shortest gap worth suggesting to fill.
	MinSuggestedGapMinutes = 30

	// HighUtilization and LowUtilization are the percentages above and below
	// which an optimize_time suggestion is emitted.
	HighUtilization = 80.0
	LowUtilization  = 20.0
)

// Suggest builds the rule-based suggestions in a fixed order: gaps to fill,
// conflicts to resolve, then at most one utilization hint. slotCount is the
// number of slots the analysis covered.
func Suggest(gaps []domain.TimeGap, conflicts []domain.ScheduleConflict, utilization float64, slotCount int) []domain.Suggestion {
	suggestions := []domain.Suggestion{}

	for _, gap := range gaps {
		if gap.Duration < MinSuggestedGapMinutes {
			continue
		}
		suggestions = append(suggestions, domain.Suggestion{
			ID:   "suggestion-fill-" + gap.ID,
			Type: domain.SuggestionFillGap,
			Description: fmt.Sprintf("You have free time between %s and %s. What are you planning to do?",
				gap.StartTime, gap.EndTime),
			AffectedSlots: []domain.TimeSlot{},
		})
	}

	for _, conflict := range conflicts {
		suggestions = append(suggestions, domain.Suggestion{
			ID:   "suggestion-conflict-" + conflict.ID,
			Type: domain.SuggestionResolveConflict,
			Description: fmt.Sprintf("Conflict between %q and %q for %d minutes.",
				conflict.SlotA.Title, conflict.SlotB.Title, conflict.OverlapDuration),
			AffectedSlots: []domain.TimeSlot{conflict.SlotA, conflict.SlotB},
		})
	}

	if utilization > HighUtilization {
		suggestions = append(suggestions, domain.Suggestion{
			ID:            "suggestion-overbooked",
			Type:          domain.SuggestionOptimizeTime,
			Description:   "Your schedule is heavily loaded. Consider adding breaks or reducing your workload.",
			AffectedSlots: []domain.TimeSlot{},
		})
	}

	if utilization < LowUtilization && slotCount > 0 {
		suggestions = append(suggestions, domain.Suggestion{
			ID:            "suggestion-underbooked",
			Type:          domain.SuggestionOptimizeTime,
			Description:   "You have plenty of free time. Consider adding activities to make use of it.",
			AffectedSlots: []domain.TimeSlot{},
		})
	}

	return suggestions
}
