package analysis

import "github.com/blaisecz/schedule-builder/internal/domain"

// Analyze computes the full analysis of the slots falling inside scope.
// The input slice is not modified and the result depends only on the input.
func Analyze(slots []domain.TimeSlot, scope Scope) domain.ScheduleAnalysis {
	inScope := FilterSlots(slots, scope)

	conflicts := FindConflicts(inScope)
	gaps := FindGaps(SortSlots(inScope))
	utilization, scheduled, available := Utilization(inScope, scope)

	return domain.ScheduleAnalysis{
		Conflicts:   conflicts,
		Utilization: utilization,
		Gaps:        gaps,
		Suggestions: Suggest(gaps, conflicts, utilization, len(inScope)),
		Debug: &domain.AnalysisDebug{
			TotalScheduledMinutes: scheduled,
			TotalAvailableMinutes: available,
			View:                  scope.View,
		},
	}
}
