package service

import (
	"context"
	"time"

	"github.com/blaisecz/schedule-builder/internal/analysis"
	"github.com/blaisecz/schedule-builder/internal/domain"
	"github.com/blaisecz/schedule-builder/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// AnalysisResult is an analysis together with the scope and slots it covers.
type AnalysisResult struct {
	Schedule *domain.Schedule
	Scope    analysis.Scope
	// Slots of the schedule that fall inside the scope
	Slots    []domain.TimeSlot
	Analysis domain.ScheduleAnalysis
}

// AnalysisService runs the schedule analysis for stored schedules.
type AnalysisService interface {
	// Analyze computes conflicts, gaps, utilization and suggestions for the
	// schedule within the scope selected by req.
	Analyze(ctx context.Context, scheduleID string, req domain.AnalysisRequest) (*AnalysisResult, error)
}

type analysisService struct {
	scheduleRepo repository.ScheduleRepository
	defaultView  domain.ViewType
	now          func() time.Time
}

// NewAnalysisService creates a new AnalysisService. defaultView applies when
// neither the request nor the schedule names a usable view.
func NewAnalysisService(scheduleRepo repository.ScheduleRepository, defaultView domain.ViewType) AnalysisService {
	if !defaultView.Valid() || defaultView == domain.ViewCustom {
		defaultView = domain.ViewWeek
	}
	return &analysisService{
		scheduleRepo: scheduleRepo,
		defaultView:  defaultView,
		now:          time.Now,
	}
}

func (s *analysisService) Analyze(ctx context.Context, scheduleID string, req domain.AnalysisRequest) (*AnalysisResult, error) {
	tracer := otel.Tracer("schedule-builder-api/analysis")
	ctx, span := tracer.Start(ctx, "AnalysisService.Analyze",
		trace.WithAttributes(
			attribute.String("schedule.id", scheduleID),
			attribute.String("analysis.view", string(req.View)),
		),
	)
	defer span.End()

	schedule, err := s.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	fallback := schedule.ViewType
	if !fallback.Valid() || fallback == domain.ViewCustom {
		fallback = s.defaultView
	}

	scope, err := analysis.ResolveScope(req, fallback, schedule.TargetDate, s.now())
	if err != nil {
		return nil, err
	}
	from, to := scope.FormatBounds()
	span.SetAttributes(
		attribute.String("scope.view", string(scope.View)),
		attribute.String("scope.from", from),
		attribute.String("scope.to", to),
		attribute.Int("slots.total", len(schedule.TimeSlots)),
	)

	result := analysis.Analyze(schedule.TimeSlots, scope)

	span.SetAttributes(
		attribute.Int("analysis.conflicts", len(result.Conflicts)),
		attribute.Int("analysis.gaps", len(result.Gaps)),
		attribute.Float64("analysis.utilization", result.Utilization),
	)

	zap.L().Debug("schedule analysed",
		zap.String("schedule_id", scheduleID),
		zap.String("view", string(scope.View)),
		zap.String("from", from),
		zap.String("to", to),
		zap.Int("conflicts", len(result.Conflicts)),
		zap.Int("gaps", len(result.Gaps)),
		zap.Float64("utilization", result.Utilization),
	)

	return &AnalysisResult{
		Schedule: schedule,
		Scope:    scope,
		Slots:    analysis.FilterSlots(schedule.TimeSlots, scope),
		Analysis: result,
	}, nil
}
