package analysis

import (
	"time"

	"github.com/blaisecz/schedule-builder/internal/domain"
)

const secondsPerDay = 24 * 60 * 60

// Scope is the calendar window an analysis is computed against.
type Scope struct {
	View domain.ViewType
	// Reference selects the day, week or month for the non-custom views.
	Reference time.Time
	// From and To bound a custom view, inclusive.
	From time.Time
	To   time.Time
}

// DayScope covers the single calendar day of ref.
func DayScope(ref time.Time) Scope {
	return Scope{View: domain.ViewDay, Reference: ref}
}

// WeekScope covers the Monday-to-Sunday week containing ref.
func WeekScope(ref time.Time) Scope {
	return Scope{View: domain.ViewWeek, Reference: ref}
}

// MonthScope covers the calendar month containing ref.
func MonthScope(ref time.Time) Scope {
	return Scope{View: domain.ViewMonth, Reference: ref}
}

// CustomScope covers the days from..to inclusive.
func CustomScope(from, to time.Time) Scope {
	return Scope{View: domain.ViewCustom, Reference: from, From: from, To: to}
}

// NewScope builds a scope for the given view. from and to are only used by
// the custom view.
func NewScope(view domain.ViewType, ref, from, to time.Time) Scope {
	switch view {
	case domain.ViewWeek:
		return WeekScope(ref)
	case domain.ViewMonth:
		return MonthScope(ref)
	case domain.ViewCustom:
		return CustomScope(from, to)
	default:
		return DayScope(ref)
	}
}

func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Bounds returns the first and last calendar day of the scope as midnight UTC.
func (s Scope) Bounds() (time.Time, time.Time) {
	ref := civil(s.Reference)

	switch s.View {
	case domain.ViewWeek:
		// Weeks start on Monday.
		offset := (int(ref.Weekday()) + 6) % 7
		first := ref.AddDate(0, 0, -offset)
		return first, first.AddDate(0, 0, 6)
	case domain.ViewMonth:
		first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
		return first, first.AddDate(0, 1, -1)
	case domain.ViewCustom:
		first, last := civil(s.From), civil(s.To)
		if last.Before(first) {
			first, last = last, first
		}
		return first, last
	default:
		return ref, ref
	}
}

// Days is the number of calendar days the scope spans.
func (s Scope) Days() int {
	first, last := s.Bounds()
	return int((last.Unix()-first.Unix())/secondsPerDay) + 1
}

// AvailableMinutes is the total wall-clock time inside the scope.
func (s Scope) AvailableMinutes() int {
	return s.Days() * MinutesPerDay
}

// Contains reports whether a YYYY-MM-DD date falls inside the scope.
// Malformed dates are never inside.
func (s Scope) Contains(date string) bool {
	d, err := ParseDate(date)
	if err != nil {
		return false
	}
	first, last := s.Bounds()
	return !d.Before(first) && !d.After(last)
}

// FilterSlots keeps the slots whose date falls inside the scope, in order.
func FilterSlots(slots []domain.TimeSlot, scope Scope) []domain.TimeSlot {
	filtered := make([]domain.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if scope.Contains(slot.Date) {
			filtered = append(filtered, slot)
		}
	}
	return filtered
}
