package validation

import (
	"strings"
	"testing"

	"github.com/blaisecz/schedule-builder/internal/domain"
)

func TestValidateSnapshot(t *testing.T) {
	valid := func() []domain.Schedule {
		return []domain.Schedule{{
			ID:       "s1",
			Name:     "Week",
			ViewType: domain.ViewWeek,
			TimeSlots: []domain.TimeSlot{
				{ID: "t1", Title: "Gym", StartTime: "07:00", EndTime: "08:00", Date: "2024-01-15", Category: domain.CategoryHealth},
				{ID: "t2", Title: "Shift", StartTime: "22:00", EndTime: "06:00", Date: "2024-01-15", Category: domain.CategoryWork},
			},
		}}
	}

	tests := []struct {
		name       string
		mutate     func(s []domain.Schedule)
		wantFields []string
	}{
		{name: "valid", mutate: func(s []domain.Schedule) {}},
		{
			name:       "schedule name",
			mutate:     func(s []domain.Schedule) { s[0].Name = strings.Repeat("n", 101) },
			wantFields: []string{"[0].name"},
		},
		{
			name:       "unknown view",
			mutate:     func(s []domain.Schedule) { s[0].ViewType = "year" },
			wantFields: []string{"[0].viewType"},
		},
		{
			name:       "single digit hour",
			mutate:     func(s []domain.Schedule) { s[0].TimeSlots[1].StartTime = "9:00" },
			wantFields: []string{"[0].timeSlots[1].startTime"},
		},
		{
			name: "slot date and priority",
			mutate: func(s []domain.Schedule) {
				s[0].TimeSlots[0].Date = "15/01/2024"
				s[0].TimeSlots[0].Priority = "urgent"
			},
			wantFields: []string{"[0].timeSlots[0].date", "[0].timeSlots[0].priority"},
		},
		{
			name:       "slot id too long",
			mutate:     func(s []domain.Schedule) { s[0].TimeSlots[0].ID = strings.Repeat("i", 65) },
			wantFields: []string{"[0].timeSlots[0].id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedules := valid()
			tt.mutate(schedules)

			errs := ValidateSnapshot(schedules)
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("ValidateSnapshot() = %+v, want fields %v", errs, tt.wantFields)
			}
			for i, field := range tt.wantFields {
				if errs[i].Field != field {
					t.Errorf("errs[%d].Field = %q, want %q", i, errs[i].Field, field)
				}
			}
		})
	}
}

func TestValidateSnapshot_Empty(t *testing.T) {
	if errs := ValidateSnapshot(nil); errs != nil {
		t.Errorf("ValidateSnapshot(nil) = %+v, want nil", errs)
	}
}
