package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/blaisecz/schedule-builder/internal/analysis"
	"github.com/blaisecz/schedule-builder/internal/api/validation"
	"github.com/blaisecz/schedule-builder/internal/calendar"
	"github.com/blaisecz/schedule-builder/internal/domain"
	"github.com/blaisecz/schedule-builder/pkg/problem"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var now = time.Now

func scheduleFlag() *cli.StringFlag {
	return &cli.StringFlag{Name: "schedule", Aliases: []string{"s"}, Required: true, Usage: "schedule ID or name"}
}

// findSchedule matches by ID first, then by exact name.
func findSchedule(schedules []domain.Schedule, ref string) (int, error) {
	for i := range schedules {
		if schedules[i].ID == ref {
			return i, nil
		}
	}
	match := -1
	for i := range schedules {
		if schedules[i].Name == ref {
			if match >= 0 {
				return -1, fmt.Errorf("%w: more than one schedule is named %q", domain.ErrInvalidInput, ref)
			}
			match = i
		}
	}
	if match < 0 {
		return -1, fmt.Errorf("schedule %q: %w", ref, domain.ErrNotFound)
	}
	return match, nil
}

func fieldErrors(errs []problem.FieldError) error {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Field+" "+e.Message)
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(msgs, "; "))
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List schedules with their slot counts.",
		Action: func(c *cli.Context) error {
			schedules, err := storeFrom(c).Load()
			if err != nil {
				return err
			}
			if len(schedules) == 0 {
				fmt.Fprintln(c.App.Writer, "No schedules.")
				return nil
			}

			tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tSLOTS\tVIEW\tTARGET")
			for _, s := range schedules {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", s.ID, s.Name, len(s.TimeSlots), s.ViewType, s.TargetDate)
			}
			return tw.Flush()
		},
	}
}

func createCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create an empty schedule.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Required: true},
			&cli.StringFlag{Name: "view", Value: string(domain.ViewWeek), Usage: "day, week, month or custom"},
			&cli.StringFlag{Name: "date", Usage: "target date (YYYY-MM-DD)"},
		},
		Action: func(c *cli.Context) error {
			req := domain.CreateScheduleRequest{
				Name:       c.String("name"),
				ViewType:   domain.ViewType(c.String("view")),
				TargetDate: c.String("date"),
			}
			if errs := validation.Validate(req); errs != nil {
				return fieldErrors(errs)
			}

			store := storeFrom(c)
			schedules, err := store.Load()
			if err != nil {
				return err
			}

			ts := now().UTC()
			schedule := domain.Schedule{
				ID:         uuid.NewString(),
				Name:       req.Name,
				TimeSlots:  []domain.TimeSlot{},
				CreatedAt:  ts,
				UpdatedAt:  ts,
				ViewType:   req.ViewType,
				TargetDate: req.TargetDate,
			}
			if err := store.Save(append(schedules, schedule)); err != nil {
				return err
			}

			zap.L().Info("schedule created", zap.String("schedule_id", schedule.ID))
			fmt.Fprintln(c.App.Writer, schedule.ID)
			return nil
		},
	}
}

func addSlotCommand() *cli.Command {
	return &cli.Command{
		Name:  "add-slot",
		Usage: "Add a time slot to a schedule.",
		Flags: []cli.Flag{
			scheduleFlag(),
			&cli.StringFlag{Name: "title", Required: true},
			&cli.StringFlag{Name: "date", Required: true, Usage: "YYYY-MM-DD"},
			&cli.StringFlag{Name: "start", Required: true, Usage: "HH:mm"},
			&cli.StringFlag{Name: "end", Required: true, Usage: "HH:mm, earlier than start to run past midnight"},
			&cli.StringFlag{Name: "category", Value: string(domain.CategoryOther)},
			&cli.StringFlag{Name: "priority"},
			&cli.StringFlag{Name: "location"},
			&cli.StringFlag{Name: "description"},
		},
		Action: func(c *cli.Context) error {
			req := domain.CreateTimeSlotRequest{
				Title:       c.String("title"),
				StartTime:   c.String("start"),
				EndTime:     c.String("end"),
				Date:        c.String("date"),
				Category:    domain.Category(c.String("category")),
				Priority:    domain.Priority(c.String("priority")),
				Location:    c.String("location"),
				Description: c.String("description"),
			}
			if errs := validation.Validate(req); errs != nil {
				return fieldErrors(errs)
			}

			store := storeFrom(c)
			schedules, err := store.Load()
			if err != nil {
				return err
			}
			i, err := findSchedule(schedules, c.String("schedule"))
			if err != nil {
				return err
			}

			slot := domain.TimeSlot{
				ID:          uuid.NewString(),
				ScheduleID:  schedules[i].ID,
				Title:       req.Title,
				StartTime:   req.StartTime,
				EndTime:     req.EndTime,
				Date:        req.Date,
				Category:    req.Category,
				Description: req.Description,
				Location:    req.Location,
				Priority:    req.Priority,
			}
			schedules[i].TimeSlots = append(schedules[i].TimeSlots, slot)
			schedules[i].UpdatedAt = now().UTC()

			if err := store.Save(schedules); err != nil {
				return err
			}

			// Overlaps are allowed; point them out right away.
			for _, other := range schedules[i].TimeSlots {
				if other.ID != slot.ID {
					if minutes := analysis.Overlap(slot, other); minutes > 0 {
						fmt.Fprintf(c.App.Writer, "warning: overlaps %q by %s\n", other.Title, analysis.FormatDuration(minutes))
					}
				}
			}
			fmt.Fprintln(c.App.Writer, slot.ID)
			return nil
		},
	}
}

func removeSlotCommand() *cli.Command {
	return &cli.Command{
		Name:  "remove-slot",
		Usage: "Remove a time slot from a schedule.",
		Flags: []cli.Flag{
			scheduleFlag(),
			&cli.StringFlag{Name: "slot", Required: true, Usage: "time slot ID"},
		},
		Action: func(c *cli.Context) error {
			store := storeFrom(c)
			schedules, err := store.Load()
			if err != nil {
				return err
			}
			i, err := findSchedule(schedules, c.String("schedule"))
			if err != nil {
				return err
			}

			slots := schedules[i].TimeSlots
			kept := slots[:0]
			for _, slot := range slots {
				if slot.ID != c.String("slot") {
					kept = append(kept, slot)
				}
			}
			if len(kept) == len(slots) {
				return fmt.Errorf("time slot %q: %w", c.String("slot"), domain.ErrNotFound)
			}
			schedules[i].TimeSlots = kept
			schedules[i].UpdatedAt = now().UTC()

			return store.Save(schedules)
		},
	}
}

func analyzeCommand() *cli.Command {
	return &cli.Command{
		Name:  "analyze",
		Usage: "Report conflicts, gaps, utilization and suggestions.",
		Flags: []cli.Flag{
			scheduleFlag(),
			&cli.StringFlag{Name: "view", Usage: "day, week, month or custom (defaults to the schedule's view)"},
			&cli.StringFlag{Name: "date", Usage: "reference date (defaults to the schedule's target date, then today)"},
			&cli.StringFlag{Name: "from", Usage: "first day of a custom range"},
			&cli.StringFlag{Name: "to", Usage: "last day of a custom range"},
			&cli.BoolFlag{Name: "json", Usage: "print the analysis as JSON"},
		},
		Action: func(c *cli.Context) error {
			req := domain.AnalysisRequest{
				View: domain.ViewType(c.String("view")),
				Date: c.String("date"),
				From: c.String("from"),
				To:   c.String("to"),
			}
			if errs := validation.Validate(req); errs != nil {
				return fieldErrors(errs)
			}

			schedules, err := storeFrom(c).Load()
			if err != nil {
				return err
			}
			i, err := findSchedule(schedules, c.String("schedule"))
			if err != nil {
				return err
			}
			schedule := schedules[i]

			scope, err := analysis.ResolveScope(req, schedule.ViewType, schedule.TargetDate, now())
			if err != nil {
				return err
			}
			result := analysis.Analyze(schedule.TimeSlots, scope)

			if c.Bool("json") {
				enc := json.NewEncoder(c.App.Writer)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			return printAnalysis(c.App.Writer, schedule, scope, result)
		},
	}
}

func printAnalysis(w io.Writer, schedule domain.Schedule, scope analysis.Scope, result domain.ScheduleAnalysis) error {
	from, to := scope.FormatBounds()
	fmt.Fprintf(w, "%s (%s view, %s to %s)\n", schedule.Name, scope.View, from, to)
	fmt.Fprintf(w, "Utilization: %.1f%%\n", result.Utilization)

	fmt.Fprintf(w, "\nConflicts (%d)\n", len(result.Conflicts))
	for _, conflict := range result.Conflicts {
		fmt.Fprintf(w, "  %s  %s %s-%s overlaps %s %s-%s by %s\n",
			conflict.SlotA.Date,
			conflict.SlotA.Title, analysis.FormatClock(conflict.SlotA.StartTime), analysis.FormatClock(conflict.SlotA.EndTime),
			conflict.SlotB.Title, analysis.FormatClock(conflict.SlotB.StartTime), analysis.FormatClock(conflict.SlotB.EndTime),
			analysis.FormatDuration(conflict.OverlapDuration))
	}

	fmt.Fprintf(w, "\nGaps (%d)\n", len(result.Gaps))
	for _, gap := range result.Gaps {
		fmt.Fprintf(w, "  %s-%s  %s\n",
			analysis.FormatClock(gap.StartTime), analysis.FormatClock(gap.EndTime), analysis.FormatDuration(gap.Duration))
	}

	fmt.Fprintf(w, "\nSuggestions (%d)\n", len(result.Suggestions))
	for _, suggestion := range result.Suggestions {
		fmt.Fprintf(w, "  [%s] %s\n", suggestion.Type, suggestion.Description)
	}
	return nil
}

func exportICSCommand() *cli.Command {
	return &cli.Command{
		Name:  "export-ics",
		Usage: "Write a schedule as an iCalendar file.",
		Flags: []cli.Flag{
			scheduleFlag(),
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file (defaults to stdout)"},
			&cli.StringFlag{Name: "tz", Value: "UTC", Usage: "IANA time zone of the slot times"},
		},
		Action: func(c *cli.Context) error {
			loc, err := time.LoadLocation(c.String("tz"))
			if err != nil {
				return fmt.Errorf("invalid timezone '%s': %w", c.String("tz"), err)
			}

			schedules, err := storeFrom(c).Load()
			if err != nil {
				return err
			}
			i, err := findSchedule(schedules, c.String("schedule"))
			if err != nil {
				return err
			}

			out := c.String("out")
			if out == "" {
				return calendar.Encode(c.App.Writer, &schedules[i], loc)
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := calendar.Encode(f, &schedules[i], loc); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "Wrote %d events to %s\n", len(schedules[i].TimeSlots), out)
			return nil
		},
	}
}

func clearCommand() *cli.Command {
	return &cli.Command{
		Name:  "clear",
		Usage: "Delete the snapshot file and every schedule in it.",
		Action: func(c *cli.Context) error {
			store := storeFrom(c)
			if err := store.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, "Cleared", store.Path())
			return nil
		},
	}
}
