package domain

// SuggestionType classifies an analysis suggestion.
// @Description Kind of suggestion produced by the analysis.
type SuggestionType string

const (
	// SuggestionMergeSimilar is reserved; the analysis never emits it.
	SuggestionMergeSimilar    SuggestionType = "merge_similar"
	SuggestionFillGap         SuggestionType = "fill_gap"
	SuggestionResolveConflict SuggestionType = "resolve_conflict"
	SuggestionOptimizeTime    SuggestionType = "optimize_time"
)

// ScheduleConflict is a pair of same-day slots whose intervals intersect.
// @Description Two slots on the same date overlapping by a positive number of minutes.
type ScheduleConflict struct {
	ID    string   `json:"id" example:"conflict-a-b"`
	SlotA TimeSlot `json:"slotA"`
	SlotB TimeSlot `json:"slotB"`
	// Overlap in whole minutes (always > 0)
	OverlapDuration int `json:"overlapDuration" example:"30"`
}

// TimeGap is idle time between two adjacent slots on the same day.
// @Description Free interval between two chronologically adjacent slots.
type TimeGap struct {
	ID        string `json:"id" example:"gap-2024-01-15-0"`
	StartTime string `json:"startTime" example:"10:00"`
	EndTime   string `json:"endTime" example:"10:30"`
	// Gap length in whole minutes (always > 0)
	Duration int `json:"duration" example:"30"`
}

// Suggestion is a rule-based recommendation derived from the analysis.
// @Description Heuristic recommendation for improving the schedule.
type Suggestion struct {
	ID            string         `json:"id" example:"suggestion-fill-gap-2024-01-15-0"`
	Type          SuggestionType `json:"type" example:"fill_gap"`
	Description   string         `json:"description"`
	AffectedSlots []TimeSlot     `json:"affectedSlots"`
}

// AnalysisDebug records the raw figures behind the utilization value.
type AnalysisDebug struct {
	TotalScheduledMinutes int      `json:"totalScheduledMinutes" example:"120"`
	TotalAvailableMinutes int      `json:"totalAvailableMinutes" example:"1440"`
	View                  ViewType `json:"view" example:"day"`
}

// ScheduleAnalysis is the derived view of a set of slots within a scope.
// @Description Conflicts, gaps, utilization and suggestions for a schedule.
type ScheduleAnalysis struct {
	Conflicts []ScheduleConflict `json:"conflicts"`
	// Percentage of available minutes that are scheduled, one decimal, 0-100
	Utilization float64        `json:"utilization" example:"8.3"`
	Gaps        []TimeGap      `json:"gaps"`
	Suggestions []Suggestion   `json:"suggestions"`
	Debug       *AnalysisDebug `json:"_debug,omitempty"`
}

// AnalysisRequest holds the query parameters of the analysis endpoint.
type AnalysisRequest struct {
	View ViewType `json:"view" validate:"omitempty,oneof=day week month custom"`
	Date string   `json:"date" validate:"omitempty,civildate"`
	From string   `json:"from" validate:"required_if=View custom,omitempty,civildate"`
	To   string   `json:"to" validate:"required_if=View custom,omitempty,civildate"`
}
