package analysis

import (
	"fmt"
	"time"

	"github.com/blaisecz/schedule-builder/internal/domain"
)

// ResolveScope turns request parameters into a Scope. An empty view falls
// back to fallbackView, then week. An empty date falls back to fallbackDate,
// then the calendar day of today in its own location. Custom views need
// both From and To.
func ResolveScope(req domain.AnalysisRequest, fallbackView domain.ViewType, fallbackDate string, today time.Time) (Scope, error) {
	view := req.View
	if view == "" {
		view = fallbackView
		if !view.Valid() || view == domain.ViewCustom {
			view = domain.ViewWeek
		}
	}
	if !view.Valid() {
		return Scope{}, fmt.Errorf("%w: unknown view %q", domain.ErrInvalidInput, view)
	}

	if view == domain.ViewCustom {
		if req.From == "" || req.To == "" {
			return Scope{}, fmt.Errorf("%w: custom view needs from and to", domain.ErrInvalidInput)
		}
		from, err := ParseDate(req.From)
		if err != nil {
			return Scope{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		to, err := ParseDate(req.To)
		if err != nil {
			return Scope{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return CustomScope(from, to), nil
	}

	ref := civil(today)
	switch {
	case req.Date != "":
		d, err := ParseDate(req.Date)
		if err != nil {
			return Scope{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		ref = d
	case fallbackDate != "":
		// A stored target date that no longer parses is ignored.
		if d, err := ParseDate(fallbackDate); err == nil {
			ref = d
		}
	}

	return NewScope(view, ref, time.Time{}, time.Time{}), nil
}

// FormatBounds returns the scope's first and last day as YYYY-MM-DD.
func (s Scope) FormatBounds() (string, string) {
	first, last := s.Bounds()
	return first.Format(dateLayout), last.Format(dateLayout)
}
