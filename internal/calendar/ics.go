// Package calendar exports schedules as iCalendar (RFC 5545) documents.
package calendar

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/blaisecz/schedule-builder/internal/domain"
	"github.com/emersion/go-ical"
)

const (
	ProductID   = "-//schedule-builder//EN"
	ContentType = "text/calendar; charset=utf-8"
)

var now = time.Now

var priorities = map[domain.Priority]string{
	domain.PriorityHigh:   "1",
	domain.PriorityMedium: "5",
	domain.PriorityLow:    "9",
}

var weekdays = [...]string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}

// Encode writes schedule as a VCALENDAR with a VTIMEZONE for loc and one
// VEVENT per slot. Slot times are interpreted in loc. Slots with a
// malformed date or time are skipped.
func Encode(w io.Writer, schedule *domain.Schedule, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)
	name := ical.NewProp("X-WR-CALNAME")
	name.SetText(schedule.Name)
	name.Params.Del(ical.ParamValue)
	cal.Props.Set(name)

	stamp := now().UTC()
	years := map[int]bool{}
	var events []*ical.Component
	for i := range schedule.TimeSlots {
		ve, start, ok := toICal(&schedule.TimeSlots[i], loc, stamp)
		if !ok {
			continue
		}
		years[start.Year()] = true
		events = append(events, ve)
	}
	if len(years) == 0 {
		years[stamp.In(loc).Year()] = true
	}

	cal.Children = append(cal.Children, timezone(loc, years))
	cal.Children = append(cal.Children, events...)

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}
	return nil
}

// toICal converts a time slot to a VEVENT and returns its start.
func toICal(slot *domain.TimeSlot, loc *time.Location, stamp time.Time) (*ical.Component, time.Time, bool) {
	start, end, ok := slotTimes(slot, loc)
	if !ok {
		return nil, time.Time{}, false
	}

	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, slot.ID)
	ve.Props.SetText(ical.PropSummary, slot.Title)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
	ve.Props.SetDateTime(ical.PropDateTimeStart, start)
	ve.Props.SetDateTime(ical.PropDateTimeEnd, end)

	if slot.Description != "" {
		ve.Props.SetText(ical.PropDescription, slot.Description)
	}
	if slot.Location != "" {
		ve.Props.SetText(ical.PropLocation, slot.Location)
	}
	if slot.Category != "" {
		ve.Props.SetText(ical.PropCategories, strings.ToUpper(string(slot.Category)))
	}
	if p, ok := priorities[slot.Priority]; ok {
		prop := ical.NewProp(ical.PropPriority)
		prop.Value = p
		ve.Props.Set(prop)
	}
	if rule := recurrence(slot); rule != "" {
		prop := ical.NewProp(ical.PropRecurrenceRule)
		prop.Value = rule
		ve.Props.Set(prop)
	}

	return ve, start, true
}

// slotTimes resolves the slot's wall-clock times on its date. An end before
// the start belongs to the next day.
func slotTimes(slot *domain.TimeSlot, loc *time.Location) (time.Time, time.Time, bool) {
	start, err := time.ParseInLocation("2006-01-02 15:04", slot.Date+" "+slot.StartTime, loc)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := time.ParseInLocation("2006-01-02 15:04", slot.Date+" "+slot.EndTime, loc)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	if end.Before(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end, true
}

func recurrence(slot *domain.TimeSlot) string {
	if !slot.IsRecurring {
		return ""
	}
	var days []string
	for _, d := range slot.RecurringDays {
		if d >= 0 && d < len(weekdays) {
			days = append(days, weekdays[d])
		}
	}
	if len(days) == 0 {
		return "FREQ=WEEKLY"
	}
	return "FREQ=WEEKLY;BYDAY=" + strings.Join(days, ",")
}

// timezone describes loc as a VTIMEZONE. Each observance starts at an offset
// change found in one of the given years; a zone without changes gets a
// single STANDARD observance.
func timezone(loc *time.Location, years map[int]bool) *ical.Component {
	tz := ical.NewComponent(ical.CompTimezone)
	tz.Props.SetText(ical.PropTimezoneID, loc.String())

	sorted := make([]int, 0, len(years))
	for y := range years {
		sorted = append(sorted, y)
	}
	sort.Ints(sorted)

	first := time.Date(sorted[0], 1, 1, 0, 0, 0, 0, loc)
	_, offset := first.Zone()
	tz.Children = append(tz.Children, observance(first, offset, offset))

	for _, y := range sorted {
		for _, tr := range transitions(loc, y) {
			tz.Children = append(tz.Children, observance(tr.at, tr.from, tr.to))
		}
	}
	return tz
}

type transition struct {
	at       time.Time
	from, to int
}

// transitions lists the UTC offset changes of loc during year, to the second.
func transitions(loc *time.Location, year int) []transition {
	var out []transition
	day := time.Date(year, 1, 1, 0, 0, 0, 0, loc)
	end := day.AddDate(1, 0, 0)
	_, offset := day.Zone()

	for ; day.Before(end); day = day.Add(24 * time.Hour) {
		next := day.Add(24 * time.Hour)
		_, nextOffset := next.Zone()
		if nextOffset == offset {
			continue
		}

		lo, hi := day, next
		for hi.Sub(lo) > time.Second {
			mid := lo.Add(hi.Sub(lo) / 2)
			if _, o := mid.Zone(); o == offset {
				lo = mid
			} else {
				hi = mid
			}
		}
		out = append(out, transition{at: hi.Truncate(time.Minute), from: offset, to: nextOffset})
		offset = nextOffset
	}
	return out
}

// observance builds a STANDARD or DAYLIGHT block starting at onset. DTSTART
// is the local time before the change.
func observance(onset time.Time, from, to int) *ical.Component {
	kind := ical.CompTimezoneStandard
	if onset.IsDST() {
		kind = ical.CompTimezoneDaylight
	}
	comp := ical.NewComponent(kind)

	start := ical.NewProp(ical.PropDateTimeStart)
	start.Value = onset.In(time.FixedZone("", from)).Format("20060102T150405")
	comp.Props.Set(start)
	setOffset(comp, ical.PropTimezoneOffsetFrom, from)
	setOffset(comp, ical.PropTimezoneOffsetTo, to)
	if abbr, _ := onset.Zone(); abbr != "" {
		comp.Props.SetText(ical.PropTimezoneName, abbr)
	}
	return comp
}

func setOffset(comp *ical.Component, name string, seconds int) {
	sign := '+'
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	prop := ical.NewProp(name)
	prop.Value = fmt.Sprintf("%c%02d%02d", sign, seconds/3600, seconds%3600/60)
	comp.Props.Set(prop)
}
