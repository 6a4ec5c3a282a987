package seed

import (
	"fmt"
	"time"

	"github.com/blaisecz/schedule-builder/internal/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// Fixed IDs keep seeding idempotent.
const (
	WorkWeekID   = "11111111-1111-1111-1111-111111111111"
	ExamWeekID   = "22222222-2222-2222-2222-222222222222"
	NightShiftID = "33333333-3333-3333-3333-333333333333"
)

type slotTemplate struct {
	day      int
	title    string
	start    string
	end      string
	category domain.Category
	priority domain.Priority
}

// Schedules builds the sample schedules for the week containing ref. Every
// schedule has at least one overlap and one gap so the analysis has something
// to report.
func Schedules(ref time.Time) []domain.Schedule {
	ref = time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	monday := ref.AddDate(0, 0, -((int(ref.Weekday()) + 6) % 7))

	build := func(id, name string, view domain.ViewType, templates []slotTemplate) domain.Schedule {
		slots := make([]domain.TimeSlot, 0, len(templates))
		for i, t := range templates {
			slots = append(slots, domain.TimeSlot{
				ID:         fmt.Sprintf("%s-slot-%02d", id[:8], i),
				ScheduleID: id,
				Title:      t.title,
				StartTime:  t.start,
				EndTime:    t.end,
				Date:       monday.AddDate(0, 0, t.day).Format(dateLayout),
				Category:   t.category,
				Priority:   t.priority,
			})
		}
		return domain.Schedule{
			ID:         id,
			Name:       name,
			TimeSlots:  slots,
			ViewType:   view,
			TargetDate: monday.Format(dateLayout),
		}
	}

	return []domain.Schedule{
		build(WorkWeekID, "Work week", domain.ViewWeek, []slotTemplate{
			{0, "Standup", "09:00", "09:15", domain.CategoryWork, domain.PriorityMedium},
			{0, "Design review", "09:00", "10:30", domain.CategoryWork, domain.PriorityHigh},
			{0, "Deep work", "11:00", "13:00", domain.CategoryWork, domain.PriorityHigh},
			{0, "Gym", "18:00", "19:00", domain.CategoryHealth, domain.PriorityLow},
			{1, "Standup", "09:00", "09:15", domain.CategoryWork, domain.PriorityMedium},
			{1, "1:1", "14:00", "14:30", domain.CategoryWork, domain.PriorityMedium},
			{2, "Standup", "09:00", "09:15", domain.CategoryWork, domain.PriorityMedium},
			{2, "Planning", "10:00", "12:00", domain.CategoryWork, domain.PriorityHigh},
			{2, "Lunch with Ana", "11:30", "12:30", domain.CategoryPersonal, ""},
			{4, "Retro", "15:00", "16:00", domain.CategoryWork, domain.PriorityLow},
		}),
		build(ExamWeekID, "Exam week", domain.ViewDay, []slotTemplate{
			{0, "Linear algebra", "08:00", "10:00", domain.CategoryStudy, domain.PriorityHigh},
			{0, "Statistics", "09:30", "11:30", domain.CategoryStudy, domain.PriorityHigh},
			{0, "Revision", "13:00", "16:00", domain.CategoryStudy, domain.PriorityMedium},
			{0, "Run", "17:30", "18:15", domain.CategoryHealth, domain.PriorityLow},
			{3, "Exam", "09:00", "12:00", domain.CategoryStudy, domain.PriorityHigh},
			{3, "Movie night", "20:00", "22:30", domain.CategoryLeisure, ""},
		}),
		build(NightShiftID, "Night shifts", domain.ViewMonth, []slotTemplate{
			{0, "Shift", "22:00", "06:00", domain.CategoryWork, domain.PriorityHigh},
			{0, "Handover", "21:30", "22:15", domain.CategoryWork, domain.PriorityMedium},
			{1, "Shift", "22:00", "06:00", domain.CategoryWork, domain.PriorityHigh},
			{1, "Errands", "15:00", "16:00", domain.CategoryPersonal, domain.PriorityLow},
		}),
	}
}

// Run seeds the database with sample schedules. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Schedule{}, &domain.TimeSlot{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	now := time.Now().UTC()
	for _, schedule := range Schedules(now) {
		slots := schedule.TimeSlots
		schedule.TimeSlots = nil
		schedule.CreatedAt = now
		schedule.UpdatedAt = now

		if err := db.Where("id = ?", schedule.ID).FirstOrCreate(&schedule).Error; err != nil {
			return fmt.Errorf("failed to create schedule %s: %w", schedule.ID, err)
		}
		for _, slot := range slots {
			if err := db.Where("id = ?", slot.ID).FirstOrCreate(&slot).Error; err != nil {
				return fmt.Errorf("failed to create time slot %s: %w", slot.ID, err)
			}
		}
		zap.L().Info("seeded schedule",
			zap.String("schedule_id", schedule.ID),
			zap.String("name", schedule.Name),
			zap.Int("time_slots", len(slots)),
		)
	}

	zap.L().Info("seed completed")
	return nil
}
