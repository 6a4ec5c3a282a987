package analysis

import (
	"strings"
	"testing"

	"github.com/blaisecz/schedule-builder/internal/domain"
)

func TestSuggest(t *testing.T) {
	a := slot("a", "2024-01-01", "09:00", "10:00")
	b := slot("b", "2024-01-01", "09:30", "10:30")

	conflicts := []domain.ScheduleConflict{{ID: "conflict-a-b", SlotA: a, SlotB: b, OverlapDuration: 30}}
	gaps := []domain.TimeGap{
		{ID: "gap-2024-01-01-0", StartTime: "10:00", EndTime: "10:29", Duration: 29},
		{ID: "gap-2024-01-01-1", StartTime: "11:00", EndTime: "11:30", Duration: 30},
	}

	tests := []struct {
		name        string
		gaps        []domain.TimeGap
		conflicts   []domain.ScheduleConflict
		utilization float64
		slotCount   int
		wantIDs     []string
	}{
		{
			name:        "nothing to say",
			utilization: 50,
			slotCount:   4,
			wantIDs:     []string{},
		},
		{
			name:        "only gaps of thirty minutes or more",
			gaps:        gaps,
			utilization: 50,
			slotCount:   3,
			wantIDs:     []string{"suggestion-fill-gap-2024-01-01-1"},
		},
		{
			name:        "gaps before conflicts before utilization",
			gaps:        gaps,
			conflicts:   conflicts,
			utilization: 12.5,
			slotCount:   3,
			wantIDs: []string{
				"suggestion-fill-gap-2024-01-01-1",
				"suggestion-conflict-conflict-a-b",
				"suggestion-underbooked",
			},
		},
		{
			name:        "overbooked",
			utilization: 80.1,
			slotCount:   1,
			wantIDs:     []string{"suggestion-overbooked"},
		},
		{
			name:        "thresholds are exclusive",
			utilization: 80,
			slotCount:   1,
			wantIDs:     []string{},
		},
		{
			name:        "low threshold is exclusive",
			utilization: 20,
			slotCount:   1,
			wantIDs:     []string{},
		},
		{
			name:        "no underbooked hint without slots",
			utilization: 0,
			slotCount:   0,
			wantIDs:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(tt.gaps, tt.conflicts, tt.utilization, tt.slotCount)
			if got == nil {
				t.Fatal("expected non-nil slice")
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Suggest() returned %d suggestions, want %d: %+v", len(got), len(tt.wantIDs), got)
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("suggestion[%d].ID = %q, want %q", i, got[i].ID, id)
				}
				if got[i].Type == domain.SuggestionMergeSimilar {
					t.Errorf("suggestion[%d] uses reserved type", i)
				}
			}
		})
	}
}

func TestSuggest_Content(t *testing.T) {
	a := slot("a", "2024-01-01", "09:00", "10:00")
	a.Title = "Standup"
	b := slot("b", "2024-01-01", "09:30", "10:30")
	b.Title = "Design review"

	got := Suggest(
		[]domain.TimeGap{{ID: "gap-x", StartTime: "12:00", EndTime: "13:00", Duration: 60}},
		[]domain.ScheduleConflict{{ID: "conflict-a-b", SlotA: a, SlotB: b, OverlapDuration: 30}},
		50, 2,
	)

	if got[0].Type != domain.SuggestionFillGap || !strings.Contains(got[0].Description, "12:00 and 13:00") {
		t.Errorf("unexpected fill suggestion: %+v", got[0])
	}
	if len(got[0].AffectedSlots) != 0 {
		t.Errorf("fill suggestion should not reference slots")
	}

	want := `Conflict between "Standup" and "Design review" for 30 minutes.`
	if got[1].Type != domain.SuggestionResolveConflict || got[1].Description != want {
		t.Errorf("conflict description = %q, want %q", got[1].Description, want)
	}
	if len(got[1].AffectedSlots) != 2 || got[1].AffectedSlots[0].ID != "a" || got[1].AffectedSlots[1].ID != "b" {
		t.Errorf("unexpected affected slots: %+v", got[1].AffectedSlots)
	}
}
